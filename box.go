package pggeom

// Box is a rectangle given by two opposite corners. Exactly two points
// are required at encode time, in any order; output always carries the
// canonical corner order.
type Box []Point

// ParseBox reads the point run out of PostgreSQL box text.
// No arity validation happens on the way in.
func ParseBox(s string) (Box, error) {
	pts, err := ParsePoints(s)
	return Box(pts), err
}

// Canonical returns the box with its corners reordered to
// [upper-right, lower-left], taking each coordinate independently:
// the first corner is (max x, max y) of the two inputs, the second is
// (min x, min y). Canonical is idempotent. Boxes that do not hold
// exactly two points are returned unchanged.
func (b Box) Canonical() Box {
	if len(b) != 2 {
		return b
	}
	return Box{b[0].Max(b[1]), b[0].Min(b[1])}
}

// Encode validates the box and renders its canonical form as a bare
// point run, "(x2,y2),(x1,y1)". A nil or empty box encodes to the
// empty string without validation. Any other count than two fails
// with an *ArityError.
func (b Box) Encode() (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	if len(b) != 2 {
		return "", &ArityError{Kind: "box", Constraint: "Box needs exactly two points"}
	}
	return joinPoints(b.Canonical()), nil
}

// PGType returns the PostgreSQL type name backing Box columns.
func (b Box) PGType() string {
	return "box"
}
