// Command graphpick solves maximum-weight-closure selection over a chunk
// dependency graph: it reads a graph document as JSON, picks the best
// dependency-complete subset (optionally capped at a target size), and
// writes the solution as JSON.
//
// Usage:
//
//	graphpick solve < graph.json
//	graphpick solve --size 25 --input graph.json
//	graphpick solve -k 10 --format pretty --config tuning.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "graphpick:", err)
		os.Exit(1)
	}
}
