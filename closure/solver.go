package closure

import (
	"math"

	"github.com/graphpick/graphpick/flow"
)

// Node layout of the reduction network: two extra terminals ahead of one
// node per chunk, so chunk i sits at index i+nodeOffset.
const (
	sourceNode = 0
	sinkNode   = 1
	nodeOffset = 2
)

// MaximumWeightClosure returns the globally weight-maximizing closed subset
// of g: every chunk whose inclusion, counting the dependencies it drags in,
// raises total weight is included. Equivalent to SolveWithPenalty(g, 0).
func MaximumWeightClosure(g *Graph, opts ...Option) Solution {
	return solveWithPenalty(g, 0, applyOptions(opts))
}

// SolveWithPenalty computes the maximum-weight closure of g after uniformly
// offsetting every chunk weight by -penalty. It is a pure function of
// (g, penalty) and never fails; a nil or empty graph yields an empty
// Solution.
//
// Steps:
//  1. Build a flow network with source and sink terminals plus one node per
//     chunk (O(V)).
//  2. For each chunk, profit = weight − penalty: attach source→chunk with
//     capacity profit when ≥ 0, else chunk→sink with capacity −profit.
//  3. For each dependency edge, attach chunk(from)→chunk(to) with capacity
//     Σ|weight−penalty| + 1 — no minimum cut ever severs it, which forces
//     the closure property. Edges naming unknown ids are dropped (O(E)).
//  4. Run max-flow, then read the residual source-reachable chunks as the
//     closure. Zero-profit chunks whose dependencies are all members join
//     too (their source arc has zero capacity, so reachability alone would
//     skip them at no gain). TotalWeight sums original weights.
//
// Complexity:
//
//	Time:   dominated by Dinic on a network with V+2 nodes and V+E arcs.
//	Memory: O(V + E).
func SolveWithPenalty(g *Graph, penalty float64, opts ...Option) Solution {
	return solveWithPenalty(g, penalty, applyOptions(opts))
}

func solveWithPenalty(g *Graph, penalty float64, o Options) Solution {
	if g == nil || len(g.chunks) == 0 {
		return Solution{Closure: []string{}, Penalty: penalty}
	}

	n := len(g.chunks)
	inf := infCapacity(g.chunks, penalty)
	net := flow.NewNetwork(n + nodeOffset)
	fopts := flow.Options{Epsilon: o.Epsilon}

	// Terminal arcs: positive profit hangs off the source, negative off the
	// sink. AddEdge cannot fail here: indices are in range and capacities
	// are non-negative by construction.
	for i, c := range g.chunks {
		if profit := c.Weight - penalty; profit >= 0 {
			_ = net.AddEdge(sourceNode, i+nodeOffset, profit)
		} else {
			_ = net.AddEdge(i+nodeOffset, sinkNode, -profit)
		}
	}

	// Dependency arcs at effectively infinite capacity. deps keeps the
	// resolved adjacency for the zero-profit pass below.
	deps := make([][]int, n)
	for _, e := range g.edges {
		from, okFrom := g.index[e.From]
		to, okTo := g.index[e.To]
		if !okFrom || !okTo {
			continue
		}
		_ = net.AddEdge(from+nodeOffset, to+nodeOffset, inf)
		deps[from] = append(deps[from], to)
	}

	_, _ = net.MaxFlow(sourceNode, sinkNode, fopts)
	seen, _ := net.Reachable(sourceNode, fopts)

	inClosure := make([]bool, n)
	for i := range g.chunks {
		inClosure[i] = seen[i+nodeOffset]
	}

	// A zero-profit chunk hangs off the source through a zero-capacity arc,
	// so reachability alone leaves it out even though including it neither
	// helps nor hurts the cut. Pull such chunks in whenever all their
	// dependencies are already members; repeated passes resolve chains of
	// zero-profit chunks. The objective is unchanged and closedness holds.
	for changed := true; changed; {
		changed = false
		for i, c := range g.chunks {
			if inClosure[i] || c.Weight-penalty < 0 {
				continue
			}
			satisfied := true
			for _, d := range deps[i] {
				if !inClosure[d] {
					satisfied = false

					break
				}
			}
			if satisfied {
				inClosure[i] = true
				changed = true
			}
		}
	}

	ids := make([]string, 0, n)
	var total float64
	for i, c := range g.chunks {
		if inClosure[i] {
			ids = append(ids, c.ID)
			total += c.Weight
		}
	}

	return Solution{
		Closure:     ids,
		TotalWeight: total,
		Size:        len(ids),
		Penalty:     penalty,
	}
}

// infCapacity returns a capacity larger than any cut that only crosses
// terminal arcs could ever need: Σ|weight−penalty| over all chunks, plus 1.
func infCapacity(chunks []Chunk, penalty float64) float64 {
	var sum float64
	for _, c := range chunks {
		sum += math.Abs(c.Weight - penalty)
	}

	return sum + 1
}
