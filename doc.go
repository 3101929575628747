// Package graphpick selects high-value, dependency-complete subsets of
// weighted content fragments.
//
// Given a graph of chunks (each with a real-valued weight, possibly
// negative) and directed dependency edges, graphpick computes the
// maximum-weight closure — the closed subset maximizing total weight — by
// reducing the problem to an s–t minimum cut, and can steer the result
// toward a requested cardinality with a penalty binary search plus a
// deterministic size enforcer.
//
// Everything is organized under three subpackages plus a CLI:
//
//	flow/         — dense integer-indexed flow network + Dinic max-flow
//	closure/      — chunk graph model, closure reduction, penalty search,
//	                size enforcement
//	chunkio/      — JSON interchange: graph documents in, solutions out
//	cmd/graphpick — the command-line solver
//
// Quick example:
//
//	g := closure.NewGraph()
//	g.AddChunk(closure.Chunk{ID: "A", Weight: 10})
//	g.AddChunk(closure.Chunk{ID: "B", Weight: -3})
//	g.AddEdge("A", "B") // A depends on B
//
//	sol := closure.MaximumWeightClosure(g)
//	// sol.Closure == ["A", "B"], sol.TotalWeight == 7
//
// Solves are pure, synchronous, and deterministic: identical inputs always
// produce identical outputs, down to the ordering of the returned ids.
package graphpick
