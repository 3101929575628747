package flow

import "errors"

var (
	// ErrNodeOutOfRange is returned when a node index lies outside [0, n).
	ErrNodeOutOfRange = errors.New("flow: node index out of range")
	// ErrNegativeCapacity is returned by AddEdge for a capacity below zero.
	ErrNegativeCapacity = errors.New("flow: negative edge capacity")
)

// DefaultEpsilon is the capacity threshold below which a residual arc is
// considered saturated. 1e-9 absorbs the round-off that repeated float64
// augmentations accumulate.
const DefaultEpsilon = 1e-9

// Options configures MaxFlow and Reachable.
//   - Epsilon: treat capacities ≤ Epsilon as zero (default 1e-9).
type Options struct {
	Epsilon float64
}

// DefaultOptions returns production-safe defaults: Epsilon = 1e-9.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// normalize fills zero-valued fields with their defaults.
func (o *Options) normalize() {
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
}

// arc is a single residual edge: destination node, remaining capacity, and
// the index of the paired reverse arc within arcs[to].
type arc struct {
	to  int
	cap float64
	rev int
}

// Network is a capacitated flow network on nodes 0..n-1.
// It is not safe for concurrent use; MaxFlow mutates residual capacities.
type Network struct {
	arcs [][]arc
}

// NewNetwork allocates a network with n nodes and no edges.
func NewNetwork(n int) *Network {
	if n < 0 {
		n = 0
	}

	return &Network{arcs: make([][]arc, n)}
}

// NumNodes reports the number of nodes the network was created with.
func (nw *Network) NumNodes() int {
	return len(nw.arcs)
}

// AddEdge appends a forward arc from→to with the given capacity and a paired
// zero-capacity reverse arc to→from. Each arc records its twin's index so
// residual updates on an augmenting path are O(1).
func (nw *Network) AddEdge(from, to int, capacity float64) error {
	if from < 0 || from >= len(nw.arcs) || to < 0 || to >= len(nw.arcs) {
		return ErrNodeOutOfRange
	}
	if capacity < 0 {
		return ErrNegativeCapacity
	}

	nw.arcs[from] = append(nw.arcs[from], arc{to: to, cap: capacity, rev: len(nw.arcs[to])})
	nw.arcs[to] = append(nw.arcs[to], arc{to: from, cap: 0, rev: len(nw.arcs[from]) - 1})

	return nil
}
