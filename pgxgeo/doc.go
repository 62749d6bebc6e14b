// Package pgxgeo binds pggeom's geometry values into the pgx driver
// stack and database/sql.
//
// Each shape has a nullable wrapper type (Point, Circle, Path, Polygon,
// Segment, Box) usable directly as a query argument and scan target.
// Scanning SQL NULL leaves the wrapper invalid; valuing an invalid or
// empty wrapper produces NULL. Shape validation (arity, closure, box
// canonicalization) runs when a value heads to the database, never when
// it is scanned in or built up in memory.
//
// Register installs text-format codecs for the six PostgreSQL geometry
// type OIDs on a pgtype.Map, so pgx moves these values in the textual
// wire form pggeom understands:
//
//	conn, _ := pgx.Connect(ctx, dsn)
//	pgxgeo.Register(conn.TypeMap())
package pgxgeo
