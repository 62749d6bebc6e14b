package pggeom

// Polygon is a closed ring: at least three points with the first and
// last equal. Both rules are enforced by Encode, not at construction.
type Polygon []Point

// ParsePolygon reads the point run out of PostgreSQL polygon text.
// No arity or closure validation happens on the way in.
func ParsePolygon(s string) (Polygon, error) {
	pts, err := ParsePoints(s)
	return Polygon(pts), err
}

// Encode validates the polygon and renders it in PostgreSQL's polygon
// syntax, "((x1,y1),...,(x1,y1))". A nil or empty polygon encodes to
// the empty string without validation. Fewer than three points fails
// with an *ArityError; an open ring fails with a *ClosureError. The
// count rule is checked first.
func (p Polygon) Encode() (string, error) {
	if len(p) == 0 {
		return "", nil
	}
	if len(p) < 3 {
		return "", &ArityError{Kind: "polygon", Constraint: "Needs at minimum 3 points"}
	}
	if !p[0].Eq(p[len(p)-1]) {
		return "", &ClosureError{}
	}
	return "(" + joinPoints(p) + ")", nil
}

// PGType returns the PostgreSQL type name backing Polygon columns.
func (p Polygon) PGType() string {
	return "polygon"
}
