// Package apsp computes all-pairs shortest-path distances on small dense
// weighted directed graphs with the recursive form of Floyd–Warshall.
//
// What is in the module?
//
//	• matrix/: integer Distance with an Inf sentinel, overflow-checked Add,
//	  square row-major Dense used for graphs and distance tables,
//	  builders from raw rows (custom "no edge" marker) or edge lists
//	• floyd/: Evaluator for shortest(i, j, k) with dense, LRU-bounded or no
//	  memoization, and Solve for the full n×n distance matrix
//	• render/: plain-text output, one row per line ("INF" for no path)
//	• config/: koanf loader: defaults, then YAML, then FLOYD_* environment
//	• logger/: slog JSON/text handlers, optional lumberjack file rotation
//	• cmd/floyd-demo: solves the built-in graphs and prints them
//
// The recurrence:
//
//	shortest(i, j, −1) = g[i][j]
//	shortest(i, j, k)  = min( shortest(i, j, k−1),
//	                shortest(i, k, k−1) + shortest(k, j, k−1) )
//
// Quick ASCII example:
//
//	      [2]
//	    4/   \2
//	    v     v
//	  [0]--2->[1]
//	    <--3--
//
//	dist = [ 0  2  INF ]
//	       [ 3  0  INF ]
//	       [ 4  2   0  ]
//
// Nothing reaches vertex 2, so its column stays INF off the diagonal.
//
//	go get github.com/katalvlaran/apsp
package apsp
