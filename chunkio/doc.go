// Package chunkio reads and writes the JSON interchange format that
// surrounds the closure solver: a graph Document on the way in, a solved
// Solution on the way out.
//
// A Document looks like:
//
//	{
//	  "chunks": {
//	    "auth":  {"weight": 4.5, "title": "Auth flow", "tags": ["security"]},
//	    "store": {"weight": -1.0, "summary": "storage layer"}
//	  },
//	  "edges": [
//	    {"from": "auth", "to": "store"}
//	  ],
//	  "metadata": {"name": "export-2026-08"}
//	}
//
// "chunks" is a JSON object keyed by chunk id. DecodeDocument walks it with
// a token stream instead of unmarshalling into a map, so the key order of
// the input file becomes the graph's insertion order; identical input bytes
// therefore always produce identical solver output. The object key is the
// authoritative id and overrides any embedded "id" field.
//
// Missing or null "weight" decodes as 0; descriptive fields (title,
// summary, tags, timestamps) ride along untouched and never influence the
// solver.
//
// EncodeSolution writes the solver result with a fixed field order:
//
//	{"closure":["auth","store"],"totalWeight":3.5,"size":2,"penalty":0,"relaxed":false}
//
// ValidateDocument applies boundary validation (non-empty edge endpoints)
// with go-playground/validator; the solver itself degrades gracefully
// either way, so validation is for callers that prefer loud rejection over
// silent dropping.
package chunkio
