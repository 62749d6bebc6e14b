package pggeom

import (
	"errors"
	"fmt"
)

// ErrInvalidArguments is returned by CircleOf when the argument list
// matches none of the supported construction forms.
var ErrInvalidArguments = errors.New("pggeom: invalid circle arguments")

// FormatError reports input text that does not match a shape's grammar.
type FormatError struct {
	Kind  string // PostgreSQL type name of the shape being parsed
	Value string // the offending input
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("pggeom: value %q is not a valid %s", e.Value, e.Kind)
}

// ArityError reports a point count that violates a shape's constraint.
type ArityError struct {
	Kind       string // PostgreSQL type name of the shape being encoded
	Constraint string // human-readable requirement, e.g. "Needs at minimum 2 points"
}

func (e *ArityError) Error() string {
	return "pggeom: " + e.Constraint
}

// ClosureError reports a polygon whose first and last points differ.
type ClosureError struct{}

func (e *ClosureError) Error() string {
	return "pggeom: Not self-closing polygon"
}
