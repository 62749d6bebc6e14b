package pggeom

// Segment is a line segment: exactly two points at encode time.
type Segment []Point

// ParseSegment reads the point run out of PostgreSQL lseg text.
// No arity validation happens on the way in.
func ParseSegment(s string) (Segment, error) {
	pts, err := ParsePoints(s)
	return Segment(pts), err
}

// Encode validates the segment and renders it as a bare point run,
// "(x1,y1),(x2,y2)". A nil or empty segment encodes to the empty
// string without validation. Any other count than two fails with an
// *ArityError.
func (s Segment) Encode() (string, error) {
	if len(s) == 0 {
		return "", nil
	}
	if len(s) != 2 {
		return "", &ArityError{Kind: "lseg", Constraint: "Segment needs exactly two points"}
	}
	return joinPoints(s), nil
}

// PGType returns the PostgreSQL type name backing Segment columns.
func (s Segment) PGType() string {
	return "lseg"
}
