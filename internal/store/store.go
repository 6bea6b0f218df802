// SPDX-License-Identifier: MIT

// Package store persists computed curves and detector images in DuckDB.
//
// A run is one evaluation of a model: its name, the job it came from, the
// effective radius and volume ratio, and the evaluated points. 1D points carry
// q; 2D points carry qx and qy with q = |(qx, qy)|.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb"
	"go.uber.org/zap"
)

// ErrClosed is returned by calls on a closed Store.
var ErrClosed = errors.New("store: closed")

// Run kinds.
const (
	Kind1D = "1d"
	Kind2D = "2d"
)

const schema = `
CREATE SEQUENCE IF NOT EXISTS run_id_seq START 1;
CREATE TABLE IF NOT EXISTS runs (
	id      BIGINT PRIMARY KEY DEFAULT nextval('run_id_seq'),
	model   VARCHAR NOT NULL,
	source  VARCHAR NOT NULL,
	kind    VARCHAR NOT NULL,
	er      DOUBLE,
	vr      DOUBLE,
	created TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS points (
	run_id BIGINT  NOT NULL,
	idx    INTEGER NOT NULL,
	q      DOUBLE  NOT NULL,
	qx     DOUBLE  NOT NULL,
	qy     DOUBLE  NOT NULL,
	iq     DOUBLE  NOT NULL,
	PRIMARY KEY (run_id, idx)
);`

// Point is one evaluated sample.
type Point struct {
	Q, QX, QY, IQ float64
}

// Run is one stored evaluation. Points is filled on save only; Runs reports
// the count in NPoints and Points loads them.
type Run struct {
	ID      int64
	Model   string
	Source  string
	Kind    string
	ER, VR  float64
	Created time.Time
	NPoints int
	Points  []Point
}

// Store wraps a DuckDB database.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for store events; the default is a no-op.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open opens (or creates) the database at path and ensures the schema.
// An empty path opens a private in-memory database.
func Open(path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err = db.Exec(schema); err != nil {
		db.Close()

		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	s := &Store{db: db, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Close releases the database. A second Close is a no-op.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}

// SaveRun stores run and its points in one transaction and returns the new
// run id. Created defaults to now.
func (s *Store) SaveRun(ctx context.Context, run Run) (id int64, err error) {
	if s.db == nil {
		return 0, ErrClosed
	}
	if run.Created.IsZero() {
		run.Created = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("store: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO runs (model, source, kind, er, vr, created) VALUES (?, ?, ?, ?, ?, ?) RETURNING id`,
		run.Model, run.Source, run.Kind, run.ER, run.VR, run.Created,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("store: insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO points (run_id, idx, q, qx, qy, iq) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("store: prepare points: %w", err)
	}
	defer stmt.Close()
	for i, p := range run.Points {
		if _, err = stmt.ExecContext(ctx, id, i, p.Q, p.QX, p.QY, p.IQ); err != nil {
			return 0, fmt.Errorf("store: insert point %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: commit: %w", err)
	}
	s.logger.Debug("run saved",
		zap.Int64("id", id),
		zap.String("model", run.Model),
		zap.Int("points", len(run.Points)))

	return id, nil
}

// Runs lists stored runs, oldest first, without their points.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.model, r.source, r.kind, r.er, r.vr, r.created,
		       (SELECT count(*) FROM points p WHERE p.run_id = r.id)
		FROM runs r
		ORDER BY r.id`)
	if err != nil {
		return nil, fmt.Errorf("store: query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var er, vr sql.NullFloat64
		if err = rows.Scan(&r.ID, &r.Model, &r.Source, &r.Kind, &er, &vr, &r.Created, &r.NPoints); err != nil {
			return nil, fmt.Errorf("store: scan run: %w", err)
		}
		r.ER, r.VR = er.Float64, vr.Float64
		runs = append(runs, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate runs: %w", err)
	}

	return runs, nil
}

// Points returns the points of run id in evaluation order.
func (s *Store) Points(ctx context.Context, id int64) ([]Point, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT q, qx, qy, iq FROM points WHERE run_id = ? ORDER BY idx`, id)
	if err != nil {
		return nil, fmt.Errorf("store: query points: %w", err)
	}
	defer rows.Close()

	var pts []Point
	for rows.Next() {
		var p Point
		if err = rows.Scan(&p.Q, &p.QX, &p.QY, &p.IQ); err != nil {
			return nil, fmt.Errorf("store: scan point: %w", err)
		}
		pts = append(pts, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate points: %w", err)
	}

	return pts, nil
}
