package pggeom

import (
	"errors"
	"strings"
	"testing"
)

func TestPolygon_Encode(t *testing.T) {
	p := Polygon{Pt(0, 0), Pt(1, 1), Pt(0, 0)}
	got, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if got != "((0,0),(1,1),(0,0))" {
		t.Errorf("Encode = %q, want %q", got, "((0,0),(1,1),(0,0))")
	}
}

func TestPolygon_Encode_MinimumPoints(t *testing.T) {
	_, err := Polygon{Pt(0, 0), Pt(0, 0)}.Encode()
	var aerr *ArityError
	if !errors.As(err, &aerr) {
		t.Fatalf("error = %v, want *ArityError", err)
	}
	if !strings.Contains(aerr.Error(), "Needs at minimum 3 points") {
		t.Errorf("message = %q", aerr.Error())
	}
}

func TestPolygon_Encode_NotClosed(t *testing.T) {
	_, err := Polygon{Pt(0, 0), Pt(1, 1), Pt(2, 2)}.Encode()
	var cerr *ClosureError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %v, want *ClosureError", err)
	}
	if !strings.Contains(cerr.Error(), "Not self-closing polygon") {
		t.Errorf("message = %q", cerr.Error())
	}
}

// The count rule is checked before closure: an open two-point ring
// reports the count violation, not the closure one.
func TestPolygon_Encode_CountBeforeClosure(t *testing.T) {
	_, err := Polygon{Pt(0, 0), Pt(1, 1)}.Encode()
	var aerr *ArityError
	if !errors.As(err, &aerr) {
		t.Fatalf("error = %v, want *ArityError", err)
	}
}

func TestPolygon_Encode_Empty(t *testing.T) {
	for _, p := range []Polygon{nil, {}} {
		got, err := p.Encode()
		if err != nil || got != "" {
			t.Errorf("empty polygon Encode = (%q, %v), want absence", got, err)
		}
	}
}

func TestPolygon_RoundTrip(t *testing.T) {
	p := Polygon{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 0)}
	text, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	got, err := ParsePolygon(text)
	if err != nil {
		t.Fatalf("ParsePolygon(%q) error: %v", text, err)
	}
	if len(got) != len(p) {
		t.Fatalf("round trip = %v, want %v", got, p)
	}
	for i := range got {
		if !got[i].Eq(p[i]) {
			t.Errorf("point %d = %v, want %v", i, got[i], p[i])
		}
	}
}

func TestPolygon_PGType(t *testing.T) {
	if got := (Polygon{}).PGType(); got != "polygon" {
		t.Errorf("PGType = %q, want %q", got, "polygon")
	}
}
