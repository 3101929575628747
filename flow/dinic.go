package flow

import "math"

// MaxFlow computes the maximum flow from source to sink using Dinic's
// algorithm and returns the total flow pushed.
//
// Steps:
//  1. Normalize options (O(1)).
//  2. Validate that source and sink lie in [0, n) (O(1)).
//  3. Repeat until the sink drops out of the level graph:
//     a. BFS from source over arcs with capacity > Epsilon, assigning each
//     reached node its distance from source (O(V + E)).
//     b. If level[sink] < 0, stop.
//     c. Send blocking flows via an explicit-stack DFS restricted to arcs
//     with level[to] = level[from]+1. A per-node cursor remembers the next
//     arc to try, so arcs saturated earlier in the phase are never
//     re-probed.
//     d. For every augmenting path, decrement the forward capacities by the
//     bottleneck and increment the paired reverse capacities.
//
// The residual capacities are updated in place; call Reachable afterwards to
// obtain the source side of a minimum cut.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E · √V) on unit-capacity networks.
//	Memory: O(V) per phase for levels, cursors, and the DFS stack.
func (nw *Network) MaxFlow(source, sink int, opts Options) (float64, error) {
	opts.normalize()

	n := len(nw.arcs)
	if source < 0 || source >= n {
		return 0, ErrNodeOutOfRange
	}
	if sink < 0 || sink >= n {
		return 0, ErrNodeOutOfRange
	}
	if source == sink {
		return 0, nil
	}

	var total float64
	level := make([]int, n)
	iter := make([]int, n)
	queue := make([]int, 0, n)

	for {
		// Phase: BFS level graph from source.
		for i := range level {
			level[i] = -1
		}
		queue = queue[:0]
		queue = append(queue, source)
		level[source] = 0
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			for _, a := range nw.arcs[u] {
				if a.cap > opts.Epsilon && level[a.to] < 0 {
					level[a.to] = level[u] + 1
					queue = append(queue, a.to)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		// Blocking flow: reset cursors, then push until the phase is exhausted.
		for i := range iter {
			iter[i] = 0
		}
		for {
			pushed := nw.augment(source, sink, level, iter, opts.Epsilon)
			if pushed <= 0 {
				break
			}
			total += pushed
		}
	}

	return total, nil
}

// augment walks one augmenting path source→sink inside the current level
// graph using an explicit stack, applies the bottleneck along it, and
// returns the amount pushed (0 when the phase holds no further path).
//
// Dead ends are pruned by resetting the node's level to -1, so no later
// probe within the phase descends into them again.
func (nw *Network) augment(source, sink int, level, iter []int, eps float64) float64 {
	stack := []int{source}
	// path[i] is the arc index taken out of stack[i] toward stack[i+1].
	path := make([]int, 0, len(nw.arcs))

	for len(stack) > 0 {
		u := stack[len(stack)-1]

		if u == sink {
			// Bottleneck over the path, then residual updates via rev indices.
			pushed := math.Inf(1)
			v := source
			for _, ai := range path {
				if a := nw.arcs[v][ai]; a.cap < pushed {
					pushed = a.cap
				}
				v = nw.arcs[v][ai].to
			}
			v = source
			for _, ai := range path {
				a := &nw.arcs[v][ai]
				a.cap -= pushed
				nw.arcs[a.to][a.rev].cap += pushed
				v = a.to
			}

			return pushed
		}

		advanced := false
		for iter[u] < len(nw.arcs[u]) {
			a := nw.arcs[u][iter[u]]
			if a.cap > eps && level[a.to] == level[u]+1 {
				// Descend; the cursor stays put so the same arc is retried
				// until it saturates.
				stack = append(stack, a.to)
				path = append(path, iter[u])
				advanced = true
				break
			}
			iter[u]++
		}
		if !advanced {
			level[u] = -1
			stack = stack[:len(stack)-1]
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
		}
	}

	return 0
}

// Reachable performs a DFS from source over the final residual graph,
// following only arcs with capacity > Epsilon, and returns the visited set
// as a boolean slice indexed by node.
//
// After MaxFlow has run, the visited set is the source side of a minimum
// cut (max-flow/min-cut duality).
func (nw *Network) Reachable(source int, opts Options) ([]bool, error) {
	opts.normalize()

	n := len(nw.arcs)
	if source < 0 || source >= n {
		return nil, ErrNodeOutOfRange
	}

	seen := make([]bool, n)
	stack := []int{source}
	seen[source] = true
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range nw.arcs[u] {
			if a.cap > opts.Epsilon && !seen[a.to] {
				seen[a.to] = true
				stack = append(stack, a.to)
			}
		}
	}

	return seen, nil
}
