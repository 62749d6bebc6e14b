package pggeom

// Path is an open polyline: an ordered run of at least two points.
// The arity rule is enforced by Encode, not at construction.
type Path []Point

// ParsePath reads the point run out of PostgreSQL path text. Both the
// open "[...]" and closed "(...)" path syntax are accepted, since only
// the parenthesized point groups are consumed. No arity validation
// happens on the way in.
func ParsePath(s string) (Path, error) {
	pts, err := ParsePoints(s)
	return Path(pts), err
}

// Encode validates the path and renders it in PostgreSQL's open-path
// syntax, "[(x1,y1),(x2,y2),...]". A nil or empty path encodes to the
// empty string without validation, preserving never-set semantics.
// Fewer than two points fails with an *ArityError.
func (p Path) Encode() (string, error) {
	if len(p) == 0 {
		return "", nil
	}
	if len(p) < 2 {
		return "", &ArityError{Kind: "path", Constraint: "Needs at minimum 2 points"}
	}
	return "[" + joinPoints(p) + "]", nil
}

// PGType returns the PostgreSQL type name backing Path columns.
func (p Path) PGType() string {
	return "path"
}
