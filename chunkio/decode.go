package chunkio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedDocument is returned when the input is not a valid graph
// document.
var ErrMalformedDocument = errors.New("chunkio: malformed document")

// documentWire defers the chunks object so its keys can be re-read in file
// order; encoding/json map decoding would scramble them.
type documentWire struct {
	Chunks   json.RawMessage `json:"chunks"`
	Edges    []EdgeRecord    `json:"edges"`
	Metadata Metadata        `json:"metadata"`
}

// DecodeDocument parses a graph document from r. The "chunks" object is
// walked token by token so that its key order is preserved as record order;
// the object key becomes the record's ID, overriding any embedded "id"
// field.
func DecodeDocument(r io.Reader) (*Document, error) {
	var wire documentWire
	dec := json.NewDecoder(r)
	if err := dec.Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	chunks, err := decodeChunkObject(wire.Chunks)
	if err != nil {
		return nil, err
	}

	return &Document{
		Chunks: chunks,
		Edges:  wire.Edges,
		Meta:   wire.Metadata,
	}, nil
}

// decodeChunkObject reads {"id": {record}, ...} preserving key order.
// A missing or null chunks field yields no records.
func decodeChunkObject(raw json.RawMessage) ([]ChunkRecord, error) {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: chunks must be a JSON object", ErrMalformedDocument)
	}

	var records []ChunkRecord
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: chunk key is not a string", ErrMalformedDocument)
		}

		var rec ChunkRecord
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("%w: chunk %q: %v", ErrMalformedDocument, key, err)
		}
		rec.ID = key
		records = append(records, rec)
	}
	// Consume the closing '}' so trailing garbage is still reported.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	return records, nil
}
