package chunkio_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/graphpick/graphpick/chunkio"
	"github.com/graphpick/graphpick/closure"
)

// ChunkIOSuite exercises document decoding, validation, and solution
// encoding.
type ChunkIOSuite struct {
	suite.Suite
}

// TestDecodePreservesKeyOrder verifies that chunk records come out in file
// order, not in any sorted or map order.
func (s *ChunkIOSuite) TestDecodePreservesKeyOrder() {
	input := `{
		"chunks": {
			"zeta":  {"weight": 1},
			"alpha": {"weight": 2},
			"mid":   {"weight": 3}
		},
		"edges": []
	}`

	doc, err := chunkio.DecodeDocument(strings.NewReader(input))
	require.NoError(s.T(), err)
	require.Len(s.T(), doc.Chunks, 3)
	require.Equal(s.T(), "zeta", doc.Chunks[0].ID)
	require.Equal(s.T(), "alpha", doc.Chunks[1].ID)
	require.Equal(s.T(), "mid", doc.Chunks[2].ID)
}

// TestDecodeKeyOverridesEmbeddedID makes the object key authoritative.
func (s *ChunkIOSuite) TestDecodeKeyOverridesEmbeddedID() {
	input := `{"chunks": {"real": {"id": "imposter", "weight": 1}}}`

	doc, err := chunkio.DecodeDocument(strings.NewReader(input))
	require.NoError(s.T(), err)
	require.Len(s.T(), doc.Chunks, 1)
	require.Equal(s.T(), "real", doc.Chunks[0].ID)
}

// TestDecodeMissingWeight leaves Weight nil; Graph() solves it as 0.
func (s *ChunkIOSuite) TestDecodeMissingWeight() {
	input := `{"chunks": {"a": {"title": "no weight"}, "b": {"weight": 0}}}`

	doc, err := chunkio.DecodeDocument(strings.NewReader(input))
	require.NoError(s.T(), err)
	require.Nil(s.T(), doc.Chunks[0].Weight)
	require.NotNil(s.T(), doc.Chunks[1].Weight)

	g := doc.Graph()
	a, ok := g.Chunk("a")
	require.True(s.T(), ok)
	require.Equal(s.T(), 0.0, a.Weight)
}

// TestDecodeDescriptiveFields carries titles, summaries, and tags through.
func (s *ChunkIOSuite) TestDecodeDescriptiveFields() {
	input := `{
		"chunks": {
			"auth": {
				"weight": 4.5,
				"title": "Auth flow",
				"summary": "token refresh discussion",
				"tags": ["security", "api"]
			}
		},
		"edges": [{"from": "auth", "to": "store"}],
		"metadata": {"name": "export-1", "labels": ["weekly"]}
	}`

	doc, err := chunkio.DecodeDocument(strings.NewReader(input))
	require.NoError(s.T(), err)
	require.Equal(s.T(), "Auth flow", doc.Chunks[0].Title)
	require.Equal(s.T(), []string{"security", "api"}, doc.Chunks[0].Tags)
	require.Equal(s.T(), []chunkio.EdgeRecord{{From: "auth", To: "store"}}, doc.Edges)
	require.Equal(s.T(), "export-1", doc.Meta.Name)
}

// TestDecodeNullOrMissingChunks yields an empty document.
func (s *ChunkIOSuite) TestDecodeNullOrMissingChunks() {
	for _, input := range []string{`{}`, `{"chunks": null}`, `{"edges": []}`} {
		doc, err := chunkio.DecodeDocument(strings.NewReader(input))
		require.NoError(s.T(), err, "input %s", input)
		require.Empty(s.T(), doc.Chunks)
	}
}

// TestDecodeMalformed rejects non-JSON and non-object chunks.
func (s *ChunkIOSuite) TestDecodeMalformed() {
	for _, input := range []string{`not json`, `{"chunks": [1, 2]}`, `{"chunks": {"a": 5}}`} {
		_, err := chunkio.DecodeDocument(strings.NewReader(input))
		require.Error(s.T(), err, "input %s", input)
		require.True(s.T(), errors.Is(err, chunkio.ErrMalformedDocument))
	}
}

// TestValidateDocument flags edges with missing endpoints.
func (s *ChunkIOSuite) TestValidateDocument() {
	valid := &chunkio.Document{Edges: []chunkio.EdgeRecord{{From: "a", To: "b"}}}
	require.NoError(s.T(), chunkio.ValidateDocument(valid))

	invalid := &chunkio.Document{Edges: []chunkio.EdgeRecord{{From: "a"}}}
	err := chunkio.ValidateDocument(invalid)
	require.Error(s.T(), err)
	require.True(s.T(), errors.Is(err, chunkio.ErrInvalidDocument))

	require.Error(s.T(), chunkio.ValidateDocument(nil))
}

// TestEncodeSolution pins the output field order and newline.
func (s *ChunkIOSuite) TestEncodeSolution() {
	sol := closure.Solution{
		Closure:     []string{"A", "B"},
		TotalWeight: 7,
		Size:        2,
		Penalty:     0,
	}

	var buf bytes.Buffer
	require.NoError(s.T(), chunkio.EncodeSolution(&buf, sol))
	require.Equal(s.T(),
		`{"closure":["A","B"],"totalWeight":7,"size":2,"penalty":0,"relaxed":false}`+"\n",
		buf.String())
}

// TestEncodeEmptyClosure emits [] rather than null.
func (s *ChunkIOSuite) TestEncodeEmptyClosure() {
	var buf bytes.Buffer
	require.NoError(s.T(), chunkio.EncodeSolution(&buf, closure.Solution{}))
	require.Equal(s.T(),
		`{"closure":[],"totalWeight":0,"size":0,"penalty":0,"relaxed":false}`+"\n",
		buf.String())
}

// TestDecodeSolveEncode runs the full boundary path on a small document.
func (s *ChunkIOSuite) TestDecodeSolveEncode() {
	input := `{
		"chunks": {
			"A": {"weight": 10},
			"B": {"weight": -3}
		},
		"edges": [{"from": "A", "to": "B"}]
	}`

	doc, err := chunkio.DecodeDocument(strings.NewReader(input))
	require.NoError(s.T(), err)
	require.NoError(s.T(), chunkio.ValidateDocument(doc))

	sol := closure.MaximumWeightClosure(doc.Graph())

	var buf bytes.Buffer
	require.NoError(s.T(), chunkio.EncodeSolution(&buf, sol))
	require.Equal(s.T(),
		`{"closure":["A","B"],"totalWeight":7,"size":2,"penalty":0,"relaxed":false}`+"\n",
		buf.String())
}

// Entry point for running the suite.
func TestChunkIOSuite(t *testing.T) {
	suite.Run(t, new(ChunkIOSuite))
}
