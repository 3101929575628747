package chunkio

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidDocument is returned by ValidateDocument when a record violates
// its constraints.
var ErrInvalidDocument = errors.New("chunkio: invalid document")

var validate = validator.New(validator.WithRequiredStructEnabled())

// documentConstraints is the validation view of a Document.
type documentConstraints struct {
	Edges []EdgeRecord `validate:"dive"`
}

// ValidateDocument checks boundary constraints: every edge must name both
// endpoints. The solver tolerates violations (it drops unresolvable edges),
// so validation is opt-in for callers that want malformed exports rejected
// loudly instead.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}
	if err := validate.Struct(documentConstraints{Edges: doc.Edges}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return nil
}
