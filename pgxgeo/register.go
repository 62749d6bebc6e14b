package pgxgeo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// ErrNotPostgres reports a backing store that is not PostgreSQL.
var ErrNotPostgres = errors.New("pgxgeo: current database is not a PostgreSQL instance")

// Register maps the six PostgreSQL geometry type OIDs to text-format
// codecs on the given type map, so query results decode through the
// pggeom grammar and arguments encode through it. Binary-format
// geometry is deliberately not negotiated: the textual wire form is
// the library's interchange format.
//
// Call once per connection, e.g. in a pgx AfterConnect hook:
//
//	pgxgeo.Register(conn.TypeMap())
func Register(m *pgtype.Map) {
	for _, t := range []struct {
		name string
		oid  uint32
	}{
		{"point", pgtype.PointOID},
		{"lseg", pgtype.LsegOID},
		{"path", pgtype.PathOID},
		{"box", pgtype.BoxOID},
		{"polygon", pgtype.PolygonOID},
		{"circle", pgtype.CircleOID},
	} {
		m.RegisterType(&pgtype.Type{
			Name:  t.name,
			OID:   t.oid,
			Codec: &pgtype.TextFormatOnlyCodec{Codec: pgtype.TextCodec{}},
		})
	}
}

// RequirePostgres rejects backing stores that are not PostgreSQL.
// Geometry text is a PostgreSQL wire format; refusing other engines up
// front turns silent data corruption into a configuration error.
// The driver name is the one the caller opened its store with
// ("pgx", "postgres", "pq", ...).
func RequirePostgres(driverName string) error {
	switch {
	case strings.Contains(driverName, "pgx"),
		strings.Contains(driverName, "postgres"),
		driverName == "pq":
		return nil
	}
	return fmt.Errorf("%w (driver %q)", ErrNotPostgres, driverName)
}
