package domain

import (
	"fmt"
)

// ValidationError reports the first field whose value violates its declared
// constraint. Invalid input is rejected outright, never coerced.
type ValidationError struct {
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on field %q: %s", e.Field, e.Constraint)
}

// ReferentialError reports a foreign key pointing at a row that does not exist.
type ReferentialError struct {
	Entity string
	Field  string
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("%s references a missing row via %s", e.Entity, e.Field)
}
