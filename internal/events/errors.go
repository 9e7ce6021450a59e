package events

import (
	"errors"
	"strings"

	v1 "github.com/unclelab/sportevents/internal/api/v1"
)

// ErrEmptyUpdate is returned when an update body contains none of the
// updatable fields. Distinct from per-field validation failures.
var ErrEmptyUpdate = errors.New("no changes provided")

// ValidationError aggregates per-field validation failures for one request.
type ValidationError struct {
	Fields []v1.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
