package pggeom

import (
	"math"
	"regexp"
	"strconv"
)

// floatPattern matches an optionally signed decimal number with an
// optional fractional part and an optional exponent. Shared by every
// shape grammar.
const floatPattern = `[-+]?[0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?`

// pointRE is anchored at the start of the input but does not demand it
// consume the whole string; trailing text after a valid point is
// ignored. See ParsePoint.
var pointRE = regexp.MustCompile(`^\((` + floatPattern + `),(` + floatPattern + `)\)`)

// Point represents a 2D position. The zero value is the origin.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// ParsePoint parses the textual form "(x,y)". Coordinates may be
// signed integers or decimals, with or without a leading digit
// (".5", "-.5") and with an optional exponent. The match is anchored
// at the first byte of the input and stops at the closing parenthesis;
// trailing text is ignored. Input that does not begin with a
// well-formed point fails with a *FormatError.
func ParsePoint(s string) (Point, error) {
	m := pointRE.FindStringSubmatch(s)
	if m == nil {
		return Point{}, &FormatError{Kind: "point", Value: s}
	}
	x, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Point{}, &FormatError{Kind: "point", Value: s}
	}
	y, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Point{}, &FormatError{Kind: "point", Value: s}
	}
	return Point{X: x, Y: y}, nil
}

// String renders the point in PostgreSQL's point syntax, "(x,y)".
func (p Point) String() string {
	return "(" + formatFloat(p.X) + "," + formatFloat(p.Y) + ")"
}

// Eq reports exact equality of both coordinates. No epsilon is
// applied; values that survived a parse/format round trip compare
// equal, values that differ in the last bit do not.
func (p Point) Eq(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// LessEq reports whether p is component-wise less than or equal to q.
// This is a partial order, not a total one: for points like (1,2) and
// (2,1) neither p.LessEq(q) nor q.LessEq(p) holds.
func (p Point) LessEq(q Point) bool {
	return p.X <= q.X && p.Y <= q.Y
}

// Min returns the component-wise minimum of two points.
func (p Point) Min(q Point) Point {
	return Point{X: math.Min(p.X, q.X), Y: math.Min(p.Y, q.Y)}
}

// Max returns the component-wise maximum of two points.
func (p Point) Max(q Point) Point {
	return Point{X: math.Max(p.X, q.X), Y: math.Max(p.Y, q.Y)}
}

// PGType returns the PostgreSQL type name backing Point columns.
func (p Point) PGType() string {
	return "point"
}

// formatFloat renders a coordinate with the shortest representation
// that parses back to the same value.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
