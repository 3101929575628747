package closure

import "math"

// SolveClosureBySize steers the closure toward a target cardinality k and
// guarantees the result holds at most k chunks.
//
// Behavior:
//   - k ≤ 0 or an empty graph ⇒ empty Solution.
//   - k ≥ the chunk count ⇒ MaximumWeightClosure(g).
//   - Otherwise, binary-search the penalty over
//     [min(weight)−|min(weight)|−5, max(weight)+|max(weight)|+5] for
//     Options.SearchIterations rounds. Raising the penalty uniformly lowers
//     every profit, so the optimal closure can only shrink; an over-sized
//     candidate moves the low bound up, anything else moves the high bound
//     down. The best candidate seen is the one with the smallest |size−k|,
//     ties broken by larger TotalWeight.
//   - Candidates then pass through EnforceSizeLimit, which trims to at most
//     k members and sets Solution.Relaxed when it had to abandon the
//     closedness guarantee. Because closure sizes can jump across the
//     target (a chain of n mutually pinned chunks only ever solves to size
//     n or 0), the smallest over-sized candidate is trimmed as well and the
//     closer of the two final results wins.
//
// The fixed iteration count trades exactness for bounded, predictable cost;
// tune it with WithSearchIterations.
func SolveClosureBySize(g *Graph, k int, opts ...Option) Solution {
	o := applyOptions(opts)

	if g == nil || k <= 0 || len(g.chunks) == 0 {
		return Solution{Closure: []string{}}
	}
	if k >= len(g.chunks) {
		return solveWithPenalty(g, 0, o)
	}

	minW, maxW := weightBounds(g.chunks)
	low := minW - math.Abs(minW) - searchPadding
	high := maxW + math.Abs(maxW) + searchPadding

	// best is the candidate closest to k; bestOver tracks the same metric
	// restricted to over-sized candidates, which the enforcer can still
	// trim toward k.
	var best, bestOver *Solution
	for i := 0; i < o.SearchIterations; i++ {
		penalty := (low + high) / 2
		cand := solveWithPenalty(g, penalty, o)
		if best == nil || closerToTarget(cand, *best, k) {
			c := cand
			best = &c
		}
		if cand.Size > k && (bestOver == nil || closerToTarget(cand, *bestOver, k)) {
			c := cand
			bestOver = &c
		}
		if cand.Size > k {
			low = penalty
		} else {
			high = penalty
		}
	}
	if best == nil {
		// Unreachable with a positive iteration count; kept as a safety net.
		fallback := solveWithPenalty(g, 0, o)
		best = &fallback
	}

	final := finalize(g, *best, k)
	if bestOver != nil && bestOver.Size != best.Size {
		if trimmed := finalize(g, *bestOver, k); closerToTarget(trimmed, final, k) {
			final = trimmed
		}
	}

	return final
}

// finalize caps a candidate at k members and recomputes its totals.
func finalize(g *Graph, cand Solution, k int) Solution {
	kept, relaxed := enforceSizeLimit(g, cand.Closure, k)

	return Solution{
		Closure:     kept,
		TotalWeight: g.sumWeights(kept),
		Size:        len(kept),
		Penalty:     cand.Penalty,
		Relaxed:     relaxed,
	}
}

// closerToTarget reports whether cand beats best for a target size k:
// smaller |size−k| wins, ties go to the larger total weight.
func closerToTarget(cand, best Solution, k int) bool {
	candDiff := absInt(cand.Size - k)
	bestDiff := absInt(best.Size - k)
	if candDiff != bestDiff {
		return candDiff < bestDiff
	}

	return cand.TotalWeight > best.TotalWeight
}

// weightBounds returns the minimum and maximum chunk weight.
func weightBounds(chunks []Chunk) (minW, maxW float64) {
	minW, maxW = chunks[0].Weight, chunks[0].Weight
	for _, c := range chunks[1:] {
		if c.Weight < minW {
			minW = c.Weight
		}
		if c.Weight > maxW {
			maxW = c.Weight
		}
	}

	return minW, maxW
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
