// Package flow implements a capacitated flow network over a dense range of
// integer-indexed nodes, together with Dinic's maximum-flow algorithm and
// residual-graph reachability.
//
// The network stores, per node, a slice of residual arcs {to, capacity, rev}.
// AddEdge(u, v, cap) appends a forward arc on u with the given capacity and a
// paired reverse arc on v with capacity 0; each arc records the index of its
// twin so residual updates after an augmenting path are O(1).
//
// # Algorithm
//
//   - Dinic
//
//   - Method: BFS level graph + blocking flow via an explicit-stack DFS with
//     per-node arc cursors, so saturated arcs are skipped on subsequent
//     probes within the same phase.
//
//   - Time:   O(V² · E) in general; O(E · √V) on unit-capacity networks.
//
//   - Memory: O(V + E) for arcs, levels, and cursors.
//
// Capacities are float64. Any capacity at or below Options.Epsilon
// (default 1e-9) is treated as exactly zero, both while building the level
// graph and while probing for augmenting paths; this guards the main loop
// against non-termination from floating-point round-off.
//
// # API
//
//	net := flow.NewNetwork(4)
//	_ = net.AddEdge(0, 2, 3)
//	_ = net.AddEdge(2, 1, 3)
//	mf, err := net.MaxFlow(0, 1, flow.DefaultOptions())
//	seen, err := net.Reachable(0, flow.DefaultOptions())
//
// Reachable walks the final residual graph following arcs with capacity above
// Epsilon; by max-flow/min-cut duality the visited set identifies the source
// side of a minimum cut, which is how the closure package reads off the
// optimal closed subset.
//
// # Errors
//
//	ErrNodeOutOfRange   - an endpoint, source, or sink index is outside [0, n).
//	ErrNegativeCapacity - AddEdge was given a capacity below zero.
//
// MaxFlow mutates the network's residual capacities in place; build a fresh
// Network per computation.
package flow
