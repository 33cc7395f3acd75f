package server

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const dbTimeout = 10 * time.Second

// OpenDB opens a bounded PostgreSQL connection pool. The pool hands every
// probe request a connection and takes it back on every exit path, so no
// request can leak one.
func OpenDB(databaseURL string) (*sql.DB, error) {
	if databaseURL == "" {
		return nil, errors.New("database URL is empty")
	}

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// PingDB reports whether the pool can reach the database right now. Callers
// decide what to do with a failure; the service itself starts regardless.
func PingDB(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}

const (
	probeCreateStmt = `CREATE TABLE IF NOT EXISTS test (id serial PRIMARY KEY, data varchar(100))`
	probeInsertStmt = `INSERT INTO test (data) VALUES ('GeoIQ')`
	probeSelectStmt = `SELECT id, data FROM test`
)

// handleDBTest is the database connectivity smoke test: idempotently create
// the probe table, insert one fixed row, return everything in the table.
// Deliberately non-idempotent: every call grows the table by one row.
func (s *Server) handleDBTest(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, probeCreateStmt); err != nil {
		s.dbTestError(w, r, err)
		return
	}
	if _, err := s.db.ExecContext(ctx, probeInsertStmt); err != nil {
		s.dbTestError(w, r, err)
		return
	}

	rows, err := s.db.QueryContext(ctx, probeSelectStmt)
	if err != nil {
		s.dbTestError(w, r, err)
		return
	}
	defer func() { _ = rows.Close() }()

	results := [][]any{}
	for rows.Next() {
		var (
			id   int64
			data string
		)
		if err := rows.Scan(&id, &data); err != nil {
			s.dbTestError(w, r, err)
			return
		}
		results = append(results, []any{id, data})
	}
	if err := rows.Err(); err != nil {
		s.dbTestError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (s *Server) dbTestError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error("db probe failed", map[string]any{
		"request_id": RequestIDFromContext(r.Context()),
	}, err)
	writeAPIError(w, errDatabase(err))
}
