package pgxgeo

import (
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pgkit/pggeom"
)

// textOf normalizes a database/sql source value to its textual form.
// Geometry arrives from the driver as text; anything else is a
// configuration or usage error.
func textOf(src any) (string, error) {
	switch s := src.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	}
	return "", fmt.Errorf("pgxgeo: cannot scan %T into a geometry value", src)
}

// Point is a nullable pggeom.Point usable as a query argument and scan
// target with both pgx and database/sql.
type Point struct {
	Point pggeom.Point
	Valid bool
}

// ScanText implements pgtype.TextScanner.
func (p *Point) ScanText(v pgtype.Text) error {
	if !v.Valid {
		*p = Point{}
		return nil
	}
	pt, err := pggeom.ParsePoint(v.String)
	if err != nil {
		logReject("scan", "point", v.String, err)
		return err
	}
	*p = Point{Point: pt, Valid: true}
	return nil
}

// TextValue implements pgtype.TextValuer.
func (p Point) TextValue() (pgtype.Text, error) {
	if !p.Valid {
		return pgtype.Text{}, nil
	}
	return pgtype.Text{String: p.Point.String(), Valid: true}, nil
}

// Scan implements sql.Scanner.
func (p *Point) Scan(src any) error {
	if src == nil {
		*p = Point{}
		return nil
	}
	s, err := textOf(src)
	if err != nil {
		return err
	}
	return p.ScanText(pgtype.Text{String: s, Valid: true})
}

// Value implements driver.Valuer.
func (p Point) Value() (driver.Value, error) {
	return valueOf(p.TextValue())
}

// Circle is a nullable pggeom.Circle usable as a query argument and
// scan target.
type Circle struct {
	Circle pggeom.Circle
	Valid  bool
}

// ScanText implements pgtype.TextScanner.
func (c *Circle) ScanText(v pgtype.Text) error {
	if !v.Valid {
		*c = Circle{}
		return nil
	}
	circ, err := pggeom.ParseCircle(v.String)
	if err != nil {
		logReject("scan", "circle", v.String, err)
		return err
	}
	*c = Circle{Circle: circ, Valid: true}
	return nil
}

// TextValue implements pgtype.TextValuer.
func (c Circle) TextValue() (pgtype.Text, error) {
	if !c.Valid {
		return pgtype.Text{}, nil
	}
	return pgtype.Text{String: c.Circle.String(), Valid: true}, nil
}

// Scan implements sql.Scanner.
func (c *Circle) Scan(src any) error {
	if src == nil {
		*c = Circle{}
		return nil
	}
	s, err := textOf(src)
	if err != nil {
		return err
	}
	return c.ScanText(pgtype.Text{String: s, Valid: true})
}

// Value implements driver.Valuer.
func (c Circle) Value() (driver.Value, error) {
	return valueOf(c.TextValue())
}

// Path is a nullable pggeom.Path. Valuing runs the path arity rule; a
// wrapper that was never set, or holds an empty sequence, produces
// NULL without validation.
type Path struct {
	Path  pggeom.Path
	Valid bool
}

// ScanText implements pgtype.TextScanner.
func (p *Path) ScanText(v pgtype.Text) error {
	if !v.Valid {
		*p = Path{}
		return nil
	}
	pts, err := pggeom.ParsePath(v.String)
	if err != nil {
		logReject("scan", "path", v.String, err)
		return err
	}
	*p = Path{Path: pts, Valid: true}
	return nil
}

// TextValue implements pgtype.TextValuer.
func (p Path) TextValue() (pgtype.Text, error) {
	if !p.Valid {
		return pgtype.Text{}, nil
	}
	return encodeText("path", p.Path.Encode)
}

// Scan implements sql.Scanner.
func (p *Path) Scan(src any) error {
	if src == nil {
		*p = Path{}
		return nil
	}
	s, err := textOf(src)
	if err != nil {
		return err
	}
	return p.ScanText(pgtype.Text{String: s, Valid: true})
}

// Value implements driver.Valuer.
func (p Path) Value() (driver.Value, error) {
	return valueOf(p.TextValue())
}

// Polygon is a nullable pggeom.Polygon. Valuing runs the polygon arity
// and closure rules.
type Polygon struct {
	Polygon pggeom.Polygon
	Valid   bool
}

// ScanText implements pgtype.TextScanner.
func (p *Polygon) ScanText(v pgtype.Text) error {
	if !v.Valid {
		*p = Polygon{}
		return nil
	}
	pts, err := pggeom.ParsePolygon(v.String)
	if err != nil {
		logReject("scan", "polygon", v.String, err)
		return err
	}
	*p = Polygon{Polygon: pts, Valid: true}
	return nil
}

// TextValue implements pgtype.TextValuer.
func (p Polygon) TextValue() (pgtype.Text, error) {
	if !p.Valid {
		return pgtype.Text{}, nil
	}
	return encodeText("polygon", p.Polygon.Encode)
}

// Scan implements sql.Scanner.
func (p *Polygon) Scan(src any) error {
	if src == nil {
		*p = Polygon{}
		return nil
	}
	s, err := textOf(src)
	if err != nil {
		return err
	}
	return p.ScanText(pgtype.Text{String: s, Valid: true})
}

// Value implements driver.Valuer.
func (p Polygon) Value() (driver.Value, error) {
	return valueOf(p.TextValue())
}

// Segment is a nullable pggeom.Segment. Valuing runs the exact-count
// rule.
type Segment struct {
	Segment pggeom.Segment
	Valid   bool
}

// ScanText implements pgtype.TextScanner.
func (s *Segment) ScanText(v pgtype.Text) error {
	if !v.Valid {
		*s = Segment{}
		return nil
	}
	pts, err := pggeom.ParseSegment(v.String)
	if err != nil {
		logReject("scan", "lseg", v.String, err)
		return err
	}
	*s = Segment{Segment: pts, Valid: true}
	return nil
}

// TextValue implements pgtype.TextValuer.
func (s Segment) TextValue() (pgtype.Text, error) {
	if !s.Valid {
		return pgtype.Text{}, nil
	}
	return encodeText("lseg", s.Segment.Encode)
}

// Scan implements sql.Scanner.
func (s *Segment) Scan(src any) error {
	if src == nil {
		*s = Segment{}
		return nil
	}
	text, err := textOf(src)
	if err != nil {
		return err
	}
	return s.ScanText(pgtype.Text{String: text, Valid: true})
}

// Value implements driver.Valuer.
func (s Segment) Value() (driver.Value, error) {
	return valueOf(s.TextValue())
}

// Box is a nullable pggeom.Box. Valuing runs the exact-count rule and
// emits the canonical corner order.
type Box struct {
	Box   pggeom.Box
	Valid bool
}

// ScanText implements pgtype.TextScanner.
func (b *Box) ScanText(v pgtype.Text) error {
	if !v.Valid {
		*b = Box{}
		return nil
	}
	pts, err := pggeom.ParseBox(v.String)
	if err != nil {
		logReject("scan", "box", v.String, err)
		return err
	}
	*b = Box{Box: pts, Valid: true}
	return nil
}

// TextValue implements pgtype.TextValuer.
func (b Box) TextValue() (pgtype.Text, error) {
	if !b.Valid {
		return pgtype.Text{}, nil
	}
	return encodeText("box", b.Box.Encode)
}

// Scan implements sql.Scanner.
func (b *Box) Scan(src any) error {
	if src == nil {
		*b = Box{}
		return nil
	}
	s, err := textOf(src)
	if err != nil {
		return err
	}
	return b.ScanText(pgtype.Text{String: s, Valid: true})
}

// Value implements driver.Valuer.
func (b Box) Value() (driver.Value, error) {
	return valueOf(b.TextValue())
}

// encodeText runs a shape's Encode at the output boundary. An empty
// encoded form means the value was never populated and maps to NULL.
func encodeText(kind string, encode func() (string, error)) (pgtype.Text, error) {
	text, err := encode()
	if err != nil {
		logReject("encode", kind, "", err)
		return pgtype.Text{}, err
	}
	if text == "" {
		return pgtype.Text{}, nil
	}
	return pgtype.Text{String: text, Valid: true}, nil
}

// valueOf adapts a TextValue result to the driver.Valuer contract.
func valueOf(v pgtype.Text, err error) (driver.Value, error) {
	if err != nil || !v.Valid {
		return nil, err
	}
	return v.String, nil
}
