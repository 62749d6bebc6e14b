package pggeom

import (
	"regexp"
	"strconv"
)

// circleRE accepts both the documented input form "<(x,y), r>" and the
// comma-tight variant the server actually emits, "<(x,y),r>".
var circleRE = regexp.MustCompile(`^<\((` + floatPattern + `),(` + floatPattern + `)\), ?(` + floatPattern + `)>`)

// Circle represents a circle as a center point and a radius.
// The zero value is a degenerate circle of radius 0 on the origin.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle returns a circle of the given radius centered on the origin.
func NewCircle(radius float64) Circle {
	return Circle{Radius: radius}
}

// CircleAt returns a circle with the given center and radius.
func CircleAt(center Point, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// CircleXY returns a circle centered on (x,y) with the given radius.
func CircleXY(x, y, radius float64) Circle {
	return Circle{Center: Point{X: x, Y: y}, Radius: radius}
}

// CircleOf builds a Circle from a loosely typed argument list, for
// callers materializing values from dynamic data. Exactly three forms
// are supported:
//
//	CircleOf(radius)            center defaults to the origin
//	CircleOf(center, radius)    center is a Point
//	CircleOf(x, y, radius)
//
// Numeric arguments may be any Go integer or float type. Any other
// argument count or shape fails with ErrInvalidArguments.
func CircleOf(args ...any) (Circle, error) {
	switch len(args) {
	case 1:
		r, ok := toFloat(args[0])
		if !ok {
			return Circle{}, ErrInvalidArguments
		}
		return NewCircle(r), nil
	case 2:
		center, ok := args[0].(Point)
		if !ok {
			return Circle{}, ErrInvalidArguments
		}
		r, ok := toFloat(args[1])
		if !ok {
			return Circle{}, ErrInvalidArguments
		}
		return CircleAt(center, r), nil
	case 3:
		x, xok := toFloat(args[0])
		y, yok := toFloat(args[1])
		r, rok := toFloat(args[2])
		if !xok || !yok || !rok {
			return Circle{}, ErrInvalidArguments
		}
		return CircleXY(x, y, r), nil
	}
	return Circle{}, ErrInvalidArguments
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// ParseCircle parses PostgreSQL circle text. Like ParsePoint, the
// match is anchored at the first byte and trailing text is ignored.
// Input that does not begin with a well-formed circle fails with a
// *FormatError.
func ParseCircle(s string) (Circle, error) {
	m := circleRE.FindStringSubmatch(s)
	if m == nil {
		return Circle{}, &FormatError{Kind: "circle", Value: s}
	}
	x, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Circle{}, &FormatError{Kind: "circle", Value: s}
	}
	y, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Circle{}, &FormatError{Kind: "circle", Value: s}
	}
	r, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return Circle{}, &FormatError{Kind: "circle", Value: s}
	}
	return Circle{Center: Point{X: x, Y: y}, Radius: r}, nil
}

// String renders the circle as "<(x,y), r>", re-parseable by
// ParseCircle and accepted by the server.
func (c Circle) String() string {
	return "<" + c.Center.String() + ", " + formatFloat(c.Radius) + ">"
}

// Eq reports structural equality of center and radius.
func (c Circle) Eq(d Circle) bool {
	return c.Center.Eq(d.Center) && c.Radius == d.Radius
}

// PGType returns the PostgreSQL type name backing Circle columns.
func (c Circle) PGType() string {
	return "circle"
}
