// Command pggeom recodes PostgreSQL geometry text and verifies wire
// compatibility against a live server.
//
// Usage:
//
//	pggeom <type> <text>   parse a value and print its canonical form
//	pggeom verify          round-trip sample values through PostgreSQL
//
// Types: point, lseg, path, polygon, box, circle. Database settings
// for verify come from config.yaml or PGGEOM_* environment variables.
package main

import (
	"context"
	"database/sql/driver"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pgkit/pggeom"
	"github.com/pgkit/pggeom/internal/config"
	"github.com/pgkit/pggeom/pgxgeo"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "verify":
		if err := verify(context.Background()); err != nil {
			slog.Error("verify failed", "error", err)
			os.Exit(1)
		}
	default:
		if len(os.Args) != 3 {
			usage()
			os.Exit(2)
		}
		out, err := recode(os.Args[1], os.Args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(out)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: pggeom <point|lseg|path|polygon|box|circle> <text>")
	fmt.Fprintln(os.Stderr, "       pggeom verify")
}

// recode parses geometry text of the given type and renders its
// canonical form, applying the type's validation rules on the way out.
func recode(typeName, text string) (string, error) {
	switch typeName {
	case "point":
		p, err := pggeom.ParsePoint(text)
		if err != nil {
			return "", err
		}
		return p.String(), nil
	case "circle":
		c, err := pggeom.ParseCircle(text)
		if err != nil {
			return "", err
		}
		return c.String(), nil
	case "path":
		p, err := pggeom.ParsePath(text)
		if err != nil {
			return "", err
		}
		return p.Encode()
	case "polygon":
		p, err := pggeom.ParsePolygon(text)
		if err != nil {
			return "", err
		}
		return p.Encode()
	case "lseg", "segment":
		s, err := pggeom.ParseSegment(text)
		if err != nil {
			return "", err
		}
		return s.Encode()
	case "box":
		b, err := pggeom.ParseBox(text)
		if err != nil {
			return "", err
		}
		return b.Encode()
	}
	return "", fmt.Errorf("unknown geometry type %q", typeName)
}

// verify connects to PostgreSQL and round-trips a sample value of
// every shape through the server, proving the codec speaks the
// server's textual wire form.
func verify(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogging(cfg.Log)
	pgxgeo.SetLogger(slog.Default())

	if err := pgxgeo.RequirePostgres("pgx"); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(ctx)

	pgxgeo.Register(conn.TypeMap())

	checks := []struct {
		typeName string
		in       driver.Valuer
		out      driver.Valuer // pointer, also the scan target
	}{
		{"point",
			pgxgeo.Point{Point: pggeom.Pt(1.5, -0.5), Valid: true},
			&pgxgeo.Point{}},
		{"lseg",
			pgxgeo.Segment{Segment: pggeom.Segment{pggeom.Pt(1, 1), pggeom.Pt(2, 2)}, Valid: true},
			&pgxgeo.Segment{}},
		{"path",
			pgxgeo.Path{Path: pggeom.Path{pggeom.Pt(0, 0), pggeom.Pt(1, 1), pggeom.Pt(2, 0)}, Valid: true},
			&pgxgeo.Path{}},
		{"polygon",
			pgxgeo.Polygon{Polygon: pggeom.Polygon{pggeom.Pt(0, 0), pggeom.Pt(1, 1), pggeom.Pt(0, 0)}, Valid: true},
			&pgxgeo.Polygon{}},
		{"box",
			pgxgeo.Box{Box: pggeom.Box{pggeom.Pt(1, 2), pggeom.Pt(2, 1)}, Valid: true},
			&pgxgeo.Box{}},
		{"circle",
			pgxgeo.Circle{Circle: pggeom.CircleXY(1, 1, 1.5), Valid: true},
			&pgxgeo.Circle{}},
	}

	for _, c := range checks {
		query := "select $1::" + c.typeName
		if err := conn.QueryRow(ctx, query, c.in).Scan(c.out); err != nil {
			return fmt.Errorf("%s: %w", c.typeName, err)
		}
		want, err := c.in.Value()
		if err != nil {
			return fmt.Errorf("%s: %w", c.typeName, err)
		}
		got, err := c.out.Value()
		if err != nil {
			return fmt.Errorf("%s: %w", c.typeName, err)
		}
		if got != want {
			return fmt.Errorf("%s: round trip mismatch: sent %v, got back %v", c.typeName, want, got)
		}
		slog.Info("round trip ok", "type", c.typeName, "text", want)
	}

	return nil
}

// setupLogging installs the default slog handler per the log config.
func setupLogging(cfg config.LogConfig) {
	var lvl slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}
