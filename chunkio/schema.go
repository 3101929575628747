package chunkio

import (
	"time"

	"github.com/graphpick/graphpick/closure"
)

// Document is the top-level structure of a graph interchange file: chunk
// records in input key order, dependency edges, and optional metadata.
type Document struct {
	Chunks []ChunkRecord
	Edges  []EdgeRecord
	Meta   Metadata
}

// ChunkRecord is the wire form of one chunk. Weight is a pointer so a
// missing field is distinguishable from an explicit 0; both solve as 0.
type ChunkRecord struct {
	ID        string     `json:"id,omitempty"`
	Weight    *float64   `json:"weight,omitempty"`
	Title     string     `json:"title,omitempty"`
	Summary   string     `json:"summary,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// EdgeRecord is a directed dependency pair: From depends on To.
type EdgeRecord struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

// Metadata carries non-solver information about the export. All fields are
// optional.
type Metadata struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Labels      []string `json:"labels,omitempty"`
}

// Graph converts the document into a solver graph, preserving record order
// as insertion order. Nil weights become 0; records without an id are
// skipped (the decoder always fills ids from object keys, so this only
// matters for hand-built documents).
func (d *Document) Graph() *closure.Graph {
	g := closure.NewGraph()
	for _, rec := range d.Chunks {
		c := closure.Chunk{
			ID:      rec.ID,
			Title:   rec.Title,
			Summary: rec.Summary,
			Tags:    rec.Tags,
		}
		if rec.Weight != nil {
			c.Weight = *rec.Weight
		}
		if rec.CreatedAt != nil {
			c.CreatedAt = *rec.CreatedAt
		}
		if rec.UpdatedAt != nil {
			c.UpdatedAt = *rec.UpdatedAt
		}
		g.AddChunk(c)
	}
	for _, e := range d.Edges {
		g.AddEdge(e.From, e.To)
	}

	return g
}
