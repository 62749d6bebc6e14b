// Package pggeom parses, validates, and serializes PostgreSQL's planar
// geometry types in their textual wire form.
//
// # Overview
//
// pggeom is a pure value library: every type is an immutable snapshot,
// every operation is a synchronous function over its inputs, and the
// only failure mode is explicit validation. The supported shapes are
// the six built-in PostgreSQL geometry types:
//
//	Point    (x,y)                     point
//	Circle   <(x,y), r>                circle
//	Path     [(x1,y1),(x2,y2),...]     path
//	Polygon  ((x1,y1),...,(x1,y1))     polygon
//	Segment  (x1,y1),(x2,y2)           lseg
//	Box      (x1,y1),(x2,y2)           box
//
// # Quick Start
//
//	import "github.com/pgkit/pggeom"
//
//	p, err := pggeom.ParsePoint("(1.5,-.5)")
//	poly := pggeom.Polygon{pggeom.Pt(0, 0), pggeom.Pt(1, 1), pggeom.Pt(0, 0)}
//	text, err := poly.Encode() // "((0,0),(1,1),(0,0))"
//
// # Validation Model
//
// Shape sequences (Path, Polygon, Segment, Box) are plain point slices.
// Arity and closure rules are enforced by Encode, on the way to the
// external representation, never at construction: callers may build a
// value up incrementally and only the encoded form must be valid. A nil
// or empty sequence encodes to the empty string without validation,
// which adapters map to NULL.
//
// # Database Integration
//
// The pgxgeo subpackage binds these values into the pgx driver stack:
// nullable wrapper types implementing the database/sql and pgtype
// scan/value interfaces, plus type-map registration for the geometry
// OIDs. The core itself performs no I/O.
package pggeom
