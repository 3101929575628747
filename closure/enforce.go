package closure

import "sort"

// EnforceSizeLimit trims ids down to at most k members, preferring to keep
// the dependency-closure property and as much total weight as possible. The
// returned slice preserves the relative order of ids; the boolean is true
// when the final fallback had to ignore closedness.
//
// Steps:
//  1. At or under k already ⇒ return ids unchanged (copied).
//  2. Build a reverse-dependency index: for every edge (from, to), from is
//     recorded as a dependent of to.
//  3. Stable-sort the members ascending by weight (ties keep their original
//     relative order, which keeps the walk deterministic).
//  4. Walk the ascending list; a member is removable only when none of its
//     dependents remain in the keep set, so removing it cannot strand a
//     retained dependent. Passes repeat until the keep set reaches k or no
//     removable member remains, since each removal can unpin further
//     members up the dependency chain.
//  5. If dependency chains pinned more than k members, fall back to the k
//     highest-weight members without re-checking closedness and report it
//     via the second return value.
func EnforceSizeLimit(g *Graph, ids []string, k int) ([]string, bool) {
	if g == nil {
		g = NewGraph()
	}

	return enforceSizeLimit(g, ids, k)
}

func enforceSizeLimit(g *Graph, ids []string, k int) ([]string, bool) {
	if k < 0 {
		k = 0
	}
	if len(ids) <= k {
		out := make([]string, len(ids))
		copy(out, ids)

		return out, false
	}

	// Reverse-dependency index over the whole edge list; only membership of
	// a dependent in the keep set is ever queried, so map order is moot.
	dependents := make(map[string][]string)
	for _, e := range g.edges {
		if e.From == "" || e.To == "" {
			continue
		}
		dependents[e.To] = append(dependents[e.To], e.From)
	}

	ascending := make([]string, len(ids))
	copy(ascending, ids)
	sort.SliceStable(ascending, func(i, j int) bool {
		return g.weightOf(ascending[i]) < g.weightOf(ascending[j])
	})

	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}

	// Repeat ascending passes until the cap is met or a pass removes
	// nothing: dropping a dependent can unpin the chunks it depended on,
	// so a single pass may leave removable members behind.
	for len(keep) > k {
		removed := false
		for _, id := range ascending {
			if len(keep) <= k {
				break
			}
			if _, ok := keep[id]; !ok {
				continue
			}
			if retainedDependent(dependents[id], keep) {
				continue
			}
			delete(keep, id)
			removed = true
		}
		if !removed {
			break
		}
	}

	relaxed := false
	if len(keep) > k {
		// Escape valve: chains pinned too many members. Take the k heaviest
		// and accept that the result may no longer be closed.
		relaxed = true
		descending := make([]string, len(ids))
		copy(descending, ids)
		sort.SliceStable(descending, func(i, j int) bool {
			return g.weightOf(descending[i]) > g.weightOf(descending[j])
		})
		keep = make(map[string]struct{}, k)
		for _, id := range descending[:k] {
			keep[id] = struct{}{}
		}
	}

	out := make([]string, 0, len(keep))
	for _, id := range ids {
		if _, ok := keep[id]; ok {
			out = append(out, id)
		}
	}

	return out, relaxed
}

// retainedDependent reports whether any dependent is still in the keep set.
func retainedDependent(deps []string, keep map[string]struct{}) bool {
	for _, d := range deps {
		if _, ok := keep[d]; ok {
			return true
		}
	}

	return false
}
