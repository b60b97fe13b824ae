package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tpctools/internal/domain"
)

// RunStore implements domain.RunStore on a SQL ledger.
type RunStore struct {
	db *DB
}

var _ domain.RunStore = (*RunStore)(nil)

// NewRunStore creates a new RunStore.
func NewRunStore(db *DB) *RunStore {
	return &RunStore{db: db}
}

// ── Run CRUD ───────────────────────────────────────────────

func (s *RunStore) CreateRun(ctx context.Context, r *domain.RunRecord) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.StartedAt.IsZero() {
		r.StartedAt = time.Now()
	}
	if r.FinishedAt.IsZero() {
		r.FinishedAt = r.StartedAt.Add(r.Duration)
	}

	_, err := s.db.conn.ExecContext(ctx, s.db.rebind(
		`INSERT INTO runs (id, kind, benchmark, table_name, status, partitions, rows_written,
		 files, detail, error, started_at, finished_at, duration_ns)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		r.ID, string(r.Kind), string(r.Benchmark), r.Table, string(r.Status), r.Partitions, r.Rows,
		r.Files, r.Detail, r.Error, r.StartedAt.UTC(), r.FinishedAt.UTC(), int64(r.Duration),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs first. An empty kind lists all kinds;
// a non-positive limit means no limit.
func (s *RunStore) ListRuns(ctx context.Context, kind domain.RunKind, limit int) ([]domain.RunRecord, error) {
	query := `SELECT id, kind, benchmark, table_name, status, partitions, rows_written,
		 files, detail, error, started_at, finished_at, duration_ns FROM runs`
	var args []any
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY started_at DESC, id`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.conn.QueryContext(ctx, s.db.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]domain.RunRecord, error) {
	var runs []domain.RunRecord
	for rows.Next() {
		var r domain.RunRecord
		var durNS int64
		if err := rows.Scan(
			&r.ID, &r.Kind, &r.Benchmark, &r.Table, &r.Status, &r.Partitions, &r.Rows,
			&r.Files, &r.Detail, &r.Error, &r.StartedAt, &r.FinishedAt, &durNS,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Duration = time.Duration(durNS)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Close closes the underlying database.
func (s *RunStore) Close() error {
	return s.db.Close()
}
