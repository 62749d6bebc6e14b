package pgxgeo_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pgkit/pggeom"
	"github.com/pgkit/pggeom/pgxgeo"
)

func TestPoint_ScanValue(t *testing.T) {
	var p pgxgeo.Point
	if err := p.Scan("(1,2)"); err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if !p.Valid || !p.Point.Eq(pggeom.Pt(1, 2)) {
		t.Fatalf("Scan result = %+v", p)
	}

	v, err := p.Value()
	if err != nil {
		t.Fatalf("Value error: %v", err)
	}
	if v != "(1,2)" {
		t.Errorf("Value = %v, want %q", v, "(1,2)")
	}
}

func TestPoint_ScanBytes(t *testing.T) {
	var p pgxgeo.Point
	if err := p.Scan([]byte("(-.5,.5)")); err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if !p.Point.Eq(pggeom.Pt(-0.5, 0.5)) {
		t.Errorf("Scan result = %+v", p)
	}
}

func TestPoint_ScanNull(t *testing.T) {
	p := pgxgeo.Point{Point: pggeom.Pt(9, 9), Valid: true}
	if err := p.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error: %v", err)
	}
	if p.Valid {
		t.Error("Scan(nil) left wrapper valid")
	}
	v, err := p.Value()
	if err != nil || v != nil {
		t.Errorf("invalid wrapper Value = (%v, %v), want NULL", v, err)
	}
}

func TestPoint_ScanUnsupportedType(t *testing.T) {
	var p pgxgeo.Point
	if err := p.Scan(42); err == nil {
		t.Error("Scan(int) succeeded, want error")
	}
}

func TestPoint_ScanMalformed(t *testing.T) {
	var p pgxgeo.Point
	err := p.Scan("abc")
	var ferr *pggeom.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("error = %v, want *pggeom.FormatError", err)
	}
}

func TestCircle_ScanValue(t *testing.T) {
	var c pgxgeo.Circle
	if err := c.Scan("<(1,1), 1.5>"); err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if !c.Circle.Eq(pggeom.CircleXY(1, 1, 1.5)) {
		t.Fatalf("Scan result = %+v", c)
	}
	v, err := c.Value()
	if err != nil {
		t.Fatalf("Value error: %v", err)
	}
	got, err := pggeom.ParseCircle(v.(string))
	if err != nil || !got.Eq(c.Circle) {
		t.Errorf("Value %v does not round trip: %v", v, err)
	}
}

func TestPath_ValueValidates(t *testing.T) {
	p := pgxgeo.Path{Path: pggeom.Path{pggeom.Pt(0, 0)}, Valid: true}
	_, err := p.Value()
	var aerr *pggeom.ArityError
	if !errors.As(err, &aerr) {
		t.Fatalf("error = %v, want *pggeom.ArityError", err)
	}
}

func TestPath_EmptyIsNull(t *testing.T) {
	p := pgxgeo.Path{Path: pggeom.Path{}, Valid: true}
	v, err := p.Value()
	if err != nil || v != nil {
		t.Errorf("empty path Value = (%v, %v), want NULL", v, err)
	}
}

func TestPath_ScanValueRoundTrip(t *testing.T) {
	var p pgxgeo.Path
	if err := p.Scan("[(1,1),(2,2)]"); err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	v, err := p.Value()
	if err != nil {
		t.Fatalf("Value error: %v", err)
	}
	if v != "[(1,1),(2,2)]" {
		t.Errorf("Value = %v", v)
	}
}

func TestPolygon_ValueValidates(t *testing.T) {
	open := pgxgeo.Polygon{
		Polygon: pggeom.Polygon{pggeom.Pt(0, 0), pggeom.Pt(1, 1), pggeom.Pt(2, 2)},
		Valid:   true,
	}
	_, err := open.Value()
	var cerr *pggeom.ClosureError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %v, want *pggeom.ClosureError", err)
	}

	closed := pgxgeo.Polygon{
		Polygon: pggeom.Polygon{pggeom.Pt(0, 0), pggeom.Pt(1, 1), pggeom.Pt(0, 0)},
		Valid:   true,
	}
	v, err := closed.Value()
	if err != nil {
		t.Fatalf("Value error: %v", err)
	}
	if v != "((0,0),(1,1),(0,0))" {
		t.Errorf("Value = %v", v)
	}
}

func TestSegment_ValueValidates(t *testing.T) {
	s := pgxgeo.Segment{
		Segment: pggeom.Segment{pggeom.Pt(1, 1), pggeom.Pt(2, 2), pggeom.Pt(3, 3)},
		Valid:   true,
	}
	_, err := s.Value()
	var aerr *pggeom.ArityError
	if !errors.As(err, &aerr) {
		t.Fatalf("error = %v, want *pggeom.ArityError", err)
	}
}

func TestBox_ValueCanonicalizes(t *testing.T) {
	b := pgxgeo.Box{
		Box:   pggeom.Box{pggeom.Pt(1, 2), pggeom.Pt(2, 1)},
		Valid: true,
	}
	v, err := b.Value()
	if err != nil {
		t.Fatalf("Value error: %v", err)
	}
	if v != "(2,2),(1,1)" {
		t.Errorf("Value = %v, want canonical corner order", v)
	}
}

func TestTextScannerSurface(t *testing.T) {
	var p pgxgeo.Point
	if err := p.ScanText(pgtype.Text{String: "(3,4)", Valid: true}); err != nil {
		t.Fatalf("ScanText error: %v", err)
	}
	if !p.Point.Eq(pggeom.Pt(3, 4)) {
		t.Errorf("ScanText result = %+v", p)
	}

	if err := p.ScanText(pgtype.Text{}); err != nil {
		t.Fatalf("ScanText(NULL) error: %v", err)
	}
	if p.Valid {
		t.Error("ScanText(NULL) left wrapper valid")
	}

	tv, err := pgxgeo.Point{Point: pggeom.Pt(3, 4), Valid: true}.TextValue()
	if err != nil || !tv.Valid || tv.String != "(3,4)" {
		t.Errorf("TextValue = (%+v, %v)", tv, err)
	}
}
