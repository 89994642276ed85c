// internal/featurelog/postgres.go
package featurelog

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresStore appends entries as rows in a feature_requests table. The
// table is insert-only; each INSERT is one entry, so atomicity comes for
// free from the database.
type PostgresStore struct {
	db    *sql.DB
	table string
}

// NewPostgresStore wraps an open database handle. The expected schema:
//
//	CREATE TABLE feature_requests (
//	    id           BIGSERIAL PRIMARY KEY,
//	    requested_at TIMESTAMPTZ NOT NULL,
//	    query        TEXT        NOT NULL
//	);
func NewPostgresStore(db *sql.DB, table string) *PostgresStore {
	if table == "" {
		table = "feature_requests"
	}
	return &PostgresStore{db: db, table: table}
}

func (s *PostgresStore) Append(ctx context.Context, entry Entry) error {
	query := fmt.Sprintf("INSERT INTO %s (requested_at, query) VALUES ($1, $2)", s.table)
	if _, err := s.db.ExecContext(ctx, query, entry.Timestamp, entry.Query); err != nil {
		return fmt.Errorf("insert feature request: %w", err)
	}
	return nil
}

// Close is a no-op: the database handle is owned by the caller.
func (s *PostgresStore) Close() error {
	return nil
}
