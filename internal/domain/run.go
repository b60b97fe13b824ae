package domain

import (
	"context"
	"time"
)

// LedgerDriver represents the backend a run ledger is stored in.
type LedgerDriver string

const (
	LedgerDriverSQLite   LedgerDriver = "sqlite"
	LedgerDriverPostgres LedgerDriver = "postgres"
	LedgerDriverMySQL    LedgerDriver = "mysql"
	LedgerDriverMongoDB  LedgerDriver = "mongodb"
)

// RunKind distinguishes generate runs from per-table convert runs.
type RunKind string

const (
	RunKindGenerate RunKind = "generate"
	RunKindConvert  RunKind = "convert"
)

// RunRecord is one row of the run ledger.
type RunRecord struct {
	ID         string        `json:"id" bson:"_id"`
	Kind       RunKind       `json:"kind" bson:"kind"`
	Benchmark  Benchmark     `json:"benchmark" bson:"benchmark"`
	Table      string        `json:"table" bson:"table"` // empty for generate runs
	Status     Status        `json:"status" bson:"status"`
	Partitions int           `json:"partitions" bson:"partitions"`
	Rows       int64         `json:"rows" bson:"rows"`
	Files      int           `json:"files" bson:"files"`
	Detail     string        `json:"detail" bson:"detail"` // JSON report
	Error      string        `json:"error,omitempty" bson:"error"`
	StartedAt  time.Time     `json:"startedAt" bson:"started_at"`
	FinishedAt time.Time     `json:"finishedAt" bson:"finished_at"`
	Duration   time.Duration `json:"duration" bson:"duration"`
}

// RunStore persists run records.
type RunStore interface {
	CreateRun(ctx context.Context, r *RunRecord) error
	ListRuns(ctx context.Context, kind RunKind, limit int) ([]RunRecord, error)
	Close() error
}
