package validation

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

type Validator interface {
	// Returns a map of field and human readable explanation of what's wrong
	Valid(ctx context.Context) (problems map[string]string)
}

// ValidationError carries the per-field problems of a rejected payload.
type ValidationError struct {
	Problems map[string]string
}

func NewValidationError(problems map[string]string) *ValidationError {
	return &ValidationError{Problems: problems}
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Problems))
	for field := range e.Problems {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed")
	for _, field := range fields {
		fmt.Fprintf(&b, "; %s: %s", field, e.Problems[field])
	}
	return b.String()
}

func (e *ValidationError) Is(other error) bool {
	_, ok := other.(*ValidationError)
	return ok
}
