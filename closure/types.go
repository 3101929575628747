package closure

import "time"

// Chunk is one content fragment: a unique id, a solver-relevant weight, and
// descriptive fields the solver treats as opaque.
type Chunk struct {
	ID        string
	Weight    float64
	Title     string
	Summary   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Edge is a directed dependency: From depends on To, so a closed subset
// containing From must contain To. Parallel edges are redundant but harmless.
type Edge struct {
	From string
	To   string
}

// Graph is an insertion-ordered collection of chunks and dependency edges.
// The solver never mutates it; iteration order is the order chunks and edges
// were added, which is what makes solves deterministic.
//
// Graph is not safe for concurrent mutation; concurrent read-only solves
// over the same Graph are fine.
type Graph struct {
	chunks []Chunk
	index  map[string]int
	edges  []Edge
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{index: make(map[string]int)}
}

// AddChunk inserts c, keyed by c.ID. Re-adding an existing id replaces the
// chunk in place, preserving its original position. Chunks with an empty id
// are ignored.
func (g *Graph) AddChunk(c Chunk) {
	if c.ID == "" {
		return
	}
	if i, ok := g.index[c.ID]; ok {
		g.chunks[i] = c

		return
	}
	g.index[c.ID] = len(g.chunks)
	g.chunks = append(g.chunks, c)
}

// AddEdge appends the dependency "from depends on to". Endpoints need not
// exist yet; edges whose endpoints never materialize are dropped at solve
// time.
func (g *Graph) AddEdge(from, to string) {
	g.edges = append(g.edges, Edge{From: from, To: to})
}

// Chunk returns the chunk stored under id, if any.
func (g *Graph) Chunk(id string) (Chunk, bool) {
	if i, ok := g.index[id]; ok {
		return g.chunks[i], true
	}

	return Chunk{}, false
}

// NumChunks reports how many chunks the graph holds.
func (g *Graph) NumChunks() int {
	return len(g.chunks)
}

// NumEdges reports how many dependency edges the graph holds.
func (g *Graph) NumEdges() int {
	return len(g.edges)
}

// Chunks returns a copy of the chunks in insertion order.
func (g *Graph) Chunks() []Chunk {
	out := make([]Chunk, len(g.chunks))
	copy(out, g.chunks)

	return out
}

// Edges returns a copy of the dependency edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// weightOf resolves an id to its chunk weight; unknown ids weigh 0.
func (g *Graph) weightOf(id string) float64 {
	if i, ok := g.index[id]; ok {
		return g.chunks[i].Weight
	}

	return 0
}

// sumWeights totals the original weights of the given ids.
func (g *Graph) sumWeights(ids []string) float64 {
	var total float64
	for _, id := range ids {
		total += g.weightOf(id)
	}

	return total
}

// Solution is the outcome of a solve: the selected chunk ids in graph
// insertion order, their total original weight, the count, and the penalty
// that produced them.
//
// Relaxed is true when the size-enforcement fallback had to drop the
// closedness guarantee (dependency chains pinned more than k members); see
// EnforceSizeLimit.
type Solution struct {
	Closure     []string
	TotalWeight float64
	Size        int
	Penalty     float64
	Relaxed     bool
}
