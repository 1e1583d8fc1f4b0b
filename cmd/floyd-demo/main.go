// SPDX-License-Identifier: MIT

// Command floyd-demo solves a few built-in graphs with the recursive
// Floyd–Warshall evaluator and prints their distance matrices.
//
// It takes no arguments. Settings come from defaults, an optional YAML file
// (FLOYD_CONFIG_PATH or ./floyd.yaml) and FLOYD_* environment variables; see
// package config.
//
// Graphs:
//
//	"three-vertex":   0⇄1 (2, 3), 2→0 (4), 2→1 (2). Vertex 2 is a pure source,
//	                  so column 2 stays INF outside the diagonal.
//
//	        [2]
//	      4/   \2
//	      v     v
//	    [0]--2->[1]
//	      <--3--
//
//	"negative-edge":  3 vertices with a −1 shortcut 0→2.
//	"four-ring":      4 vertices, ring 0→1→2→3→0 plus chords.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/katalvlaran/apsp/config"
	"github.com/katalvlaran/apsp/floyd"
	"github.com/katalvlaran/apsp/logger"
	"github.com/katalvlaran/apsp/matrix"
	"github.com/katalvlaran/apsp/render"
)

// noEdge marks a missing edge in the raw tables below, like INT_MAX in C.
const noEdge = math.MaxInt32

// namedGraph is one demo input.
type namedGraph struct {
	name  string
	build func() (*matrix.Dense, error)
}

var demoGraphs = []namedGraph{
	{
		name: "three-vertex",
		build: func() (*matrix.Dense, error) {
			return matrix.FromEdges(3, []matrix.Edge{
				{From: 0, To: 1, Weight: 2},
				{From: 1, To: 0, Weight: 3},
				{From: 2, To: 0, Weight: 4},
				{From: 2, To: 1, Weight: 2},
			})
		},
	},
	{
		name: "negative-edge",
		build: func() (*matrix.Dense, error) {
			return matrix.FromRows([][]int64{
				{0, 2, -1},
				{3, 0, noEdge},
				{4, 2, 0},
			}, matrix.WithSentinel(noEdge))
		},
	},
	{
		name: "four-ring",
		build: func() (*matrix.Dense, error) {
			return matrix.FromRows([][]int64{
				{0, 3, noEdge, 7},
				{8, 0, 2, noEdge},
				{5, noEdge, 0, 1},
				{2, noEdge, noEdge, 0},
			}, matrix.WithSentinel(noEdge))
		},
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "floyd-demo:", err)
		os.Exit(1)
	}

	log, closer, err := logger.New(cfg.LoggerConfig())
	if err != nil {
		fmt.Fprintln(os.Stderr, "floyd-demo:", err)
		os.Exit(1)
	}
	defer closer.Close()

	if cfg.Source != "" {
		log.Info("config loaded", "path", cfg.Source)
	}

	if err = run(os.Stdout, cfg, log); err != nil {
		log.Error("demo failed", "err", err)
		closer.Close()
		os.Exit(1)
	}
}

// run solves every demo graph and writes the titled matrices to out.
func run(out io.Writer, cfg *config.Config, log *slog.Logger) error {
	solverOpts, err := cfg.SolverOptions()
	if err != nil {
		return err
	}
	solverOpts = append(solverOpts, floyd.WithLogger(log))
	renderOpts := cfg.RenderOptions()

	for idx, ng := range demoGraphs {
		g, err := ng.build()
		if err != nil {
			return fmt.Errorf("%s: build: %w", ng.name, err)
		}

		dist, stats, err := floyd.SolveStats(g, solverOpts...)
		if err != nil {
			return fmt.Errorf("%s: %w", ng.name, err)
		}
		log.Info("graph solved",
			"graph", ng.name,
			"n", g.Order(),
			"calls", stats.Calls,
			"memo_hits", stats.MemoHits,
			"max_depth", stats.MaxDepth,
		)

		if idx > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s (n=%d):\n", ng.name, g.Order())
		if err = render.Write(out, dist, renderOpts...); err != nil {
			return fmt.Errorf("%s: %w", ng.name, err)
		}
	}

	return nil
}
