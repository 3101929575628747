package chunkio

import (
	"encoding/json"
	"io"

	"github.com/graphpick/graphpick/closure"
)

// solutionWire fixes the output field order of a solved closure.
type solutionWire struct {
	Closure     []string `json:"closure"`
	TotalWeight float64  `json:"totalWeight"`
	Size        int      `json:"size"`
	Penalty     float64  `json:"penalty"`
	Relaxed     bool     `json:"relaxed"`
}

// EncodeSolution writes sol to w as a single JSON object followed by a
// newline. The closure array is never null, even when empty.
func EncodeSolution(w io.Writer, sol closure.Solution) error {
	return json.NewEncoder(w).Encode(wireSolution(sol))
}

// EncodeSolutionIndent is EncodeSolution with two-space indentation.
func EncodeSolutionIndent(w io.Writer, sol closure.Solution) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(wireSolution(sol))
}

func wireSolution(sol closure.Solution) solutionWire {
	ids := sol.Closure
	if ids == nil {
		ids = []string{}
	}

	return solutionWire{
		Closure:     ids,
		TotalWeight: sol.TotalWeight,
		Size:        sol.Size,
		Penalty:     sol.Penalty,
		Relaxed:     sol.Relaxed,
	}
}
