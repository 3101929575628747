// Package closure selects a maximum-weight, dependency-complete subset of
// weighted content chunks by reducing the maximum-weight-closure problem to
// an s–t minimum cut.
//
// A Graph holds chunks (id + weight + descriptive fields) in insertion order
// plus directed dependency edges, where an edge (from, to) means "from
// depends on to": any closed subset containing from must also contain to.
//
// # Reduction
//
// For a penalty p, each chunk contributes profit = weight − p. Chunks with
// non-negative profit receive a source→chunk arc of that capacity; the rest
// receive a chunk→sink arc of capacity −profit. Every dependency edge
// becomes an arc of capacity Σ|weight−p| + 1, large enough that no minimum
// cut severs it, which forces the closure property. After max-flow, the
// residual source-reachable chunks form the optimal closed subset
// (max-flow/min-cut duality).
//
// # Entry points
//
//	MaximumWeightClosure(g)      - globally weight-maximizing closed subset
//	                               (penalty 0).
//	SolveClosureBySize(g, k)     - binary-searches the penalty so the closure
//	                               size approaches k, then enforces size ≤ k.
//	SolveWithPenalty(g, p)       - a single reduction at penalty p.
//	EnforceSizeLimit(g, ids, k)  - deterministic trim of an over-sized
//	                               closure down to at most k members.
//
// Raising the penalty uniformly lowers every profit, so the optimal closure
// can only shrink; SolveClosureBySize exploits this monotonicity with a
// fixed-iteration binary search (DefaultSearchIterations, tunable via
// WithSearchIterations).
//
// # Degradation
//
// The entry points never fail: a nil or empty graph yields an empty
// Solution, k ≤ 0 yields an empty Solution, edges naming unknown chunk ids
// are dropped, and a missing weight counts as 0. When dependency chains pin
// more than k members, EnforceSizeLimit falls back to the k highest-weight
// members without re-checking closedness and reports this through
// Solution.Relaxed.
//
// # Determinism
//
// Identical inputs produce identical Solutions: chunks are iterated in
// graph insertion order, closure ids are emitted in that order, and all
// tie-breaks are stable. Each call works on its own private flow network,
// so concurrent solves over separate graphs need no locking.
package closure
