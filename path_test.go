package pggeom

import (
	"errors"
	"strings"
	"testing"
)

func TestPath_Encode(t *testing.T) {
	p := Path{Pt(1, 1), Pt(2, 2)}
	got, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if got != "[(1,1),(2,2)]" {
		t.Errorf("Encode = %q, want %q", got, "[(1,1),(2,2)]")
	}
}

func TestPath_Encode_MinimumPoints(t *testing.T) {
	_, err := Path{Pt(0, 0)}.Encode()
	var aerr *ArityError
	if !errors.As(err, &aerr) {
		t.Fatalf("error = %v, want *ArityError", err)
	}
	if !strings.Contains(aerr.Error(), "Needs at minimum 2 points") {
		t.Errorf("message = %q", aerr.Error())
	}
}

func TestPath_Encode_Empty(t *testing.T) {
	for _, p := range []Path{nil, {}} {
		got, err := p.Encode()
		if err != nil || got != "" {
			t.Errorf("empty path Encode = (%q, %v), want absence", got, err)
		}
	}
}

func TestPath_RoundTrip(t *testing.T) {
	p := Path{Pt(1, 1), Pt(2, 2), Pt(-0.5, 3.25)}
	text, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	got, err := ParsePath(text)
	if err != nil {
		t.Fatalf("ParsePath(%q) error: %v", text, err)
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

func TestPath_PGType(t *testing.T) {
	if got := (Path{}).PGType(); got != "path" {
		t.Errorf("PGType = %q, want %q", got, "path")
	}
}
