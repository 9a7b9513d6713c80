// Package internal holds the engine shared by the buildsort analyzer and the
// buildergen generator.
//
// # Architecture Overview
//
//	     +-------------------+            +--------------------+
//	     |   analyzer.go     |            |  cmd/buildergen    |
//	     | (go/analysis)     |            |  (cobra CLI)       |
//	     +----+---------+----+            +---------+----------+
//	          |         |                           |
//	  +-------v---+ +---v----------+        +-------v-------+
//	  | declorder | | switchorder  |        |     synth     |
//	  +-------+---+ +---+----------+        +---+-------+---+
//	          |         |                       |       |
//	          +----+----+                       |       |
//	               |                            |       |
//	          +----v----+   +----------+   +----v----+  |
//	          |  order  |   |  marker  |   | builder |  |
//	          +----+----+   +----------+   +----+----+  |
//	               |                            |       |
//	               +--------------+-------------+-------+
//	                              |
//	                    +---------v---------+
//	                    |  syntax  /  diag  |
//	                    +-------------------+
//
// # Passes
//
// Every pass takes syntax and returns syntax plus diagnostics:
//
//   - [synth.Run]: struct declaration -> builder source
//   - declorder.Checker.CheckDecl: const block -> same block, first violation
//   - switchorder.Checker.CheckFunc: function -> same function with the
//     sorted markers removed from its comments, first violation
//
// Diagnostics are values of [diag.Diagnostic]; the analyzer converts them
// with [diag.Diagnostic.Analysis], the generator prints them with
// [diag.Diagnostic.Format].
package internal
