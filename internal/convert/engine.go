// Package convert turns canonical delimited partitions into columnar or row
// output under a bounded worker pool, staging each partition before
// promoting it into the table directory.
package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"golang.org/x/sync/semaphore"

	"tpctools/internal/domain"
	"tpctools/internal/etl"
	"tpctools/internal/reconcile"
)

// Transition is one state change of a partition task.
type Transition struct {
	Table     string
	Partition int
	From      domain.TaskState
	To        domain.TaskState
	Err       error // set when To is TaskFailed
}

// Engine converts one table at a time.
type Engine struct {
	log *slog.Logger
	mem memory.Allocator

	// OnTransition, when set, is called synchronously from the task goroutine
	// on every state change. It must be safe for concurrent use.
	OnTransition func(Transition)
}

// NewEngine creates an engine. A nil logger uses slog.Default().
func NewEngine(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{log: log, mem: memory.NewGoAllocator()}
}

// ConvertTable converts every partition of job.InputDir into job.OutputDir.
//
// Format and codec are validated and the input layout re-checked before
// anything is created. The output directory must not exist. At most
// job.Concurrency partitions run at once. When a task fails no further
// tasks are scheduled, running ones finish, and promoted output stays in
// place; the report is Failed and the error wraps ErrConversionTaskFailure.
func (e *Engine) ConvertTable(ctx context.Context, job domain.ConversionJob) (*domain.ConversionReport, error) {
	if err := etl.ValidateOutput(job.Format, job.Codec); err != nil {
		return nil, fmt.Errorf("convert %s: %w", job.Table.Name, err)
	}
	if job.BatchSize <= 0 {
		job.BatchSize = domain.DefaultBatchSize
	}
	if job.Concurrency <= 0 {
		job.Concurrency = domain.DefaultConcurrency
	}

	parts, err := reconcile.Inspect(job.InputDir, job.InputExt)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", job.Table.Name, err)
	}
	if job.ExpectPartitions > 0 && len(parts) != job.ExpectPartitions {
		return nil, fmt.Errorf("convert %s: found %d partitions in %s, expected %d: %w",
			job.Table.Name, len(parts), job.InputDir, job.ExpectPartitions, domain.ErrPartitionGap)
	}

	if err := reconcile.EnsureAbsent(job.OutputDir); err != nil {
		return nil, fmt.Errorf("convert %s: %w", job.Table.Name, err)
	}
	if err := os.MkdirAll(filepath.Dir(job.OutputDir), 0o755); err != nil {
		return nil, fmt.Errorf("convert %s: create output root: %w", job.Table.Name, err)
	}
	if err := os.Mkdir(job.OutputDir, 0o755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("convert %s: %s: %w", job.Table.Name, job.OutputDir, domain.ErrOutputAlreadyExists)
		}
		return nil, fmt.Errorf("convert %s: create output dir: %w", job.Table.Name, err)
	}

	report := &domain.ConversionReport{
		Table:      job.Table.Name,
		OutputDir:  job.OutputDir,
		Format:     job.Format,
		Codec:      job.Codec,
		Partitions: make([]domain.PartitionResult, len(parts)),
	}
	for i, p := range parts {
		report.Partitions[i] = domain.PartitionResult{Partition: p.Index, Input: p.Path, State: domain.TaskPending}
	}

	e.log.Info("converting table", "table", job.Table.Name, "partitions", len(parts),
		"format", job.Format, "codec", job.Codec.String(), "concurrency", job.Concurrency)
	start := time.Now()

	run := &tableRun{engine: e, job: job}
	sem := semaphore.NewWeighted(int64(job.Concurrency))
	var wg sync.WaitGroup
	var schedErr error

	for i := range parts {
		if run.failed.Load() {
			break
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			schedErr = err
			break
		}
		// a task may have failed while we waited for a slot
		if run.failed.Load() {
			sem.Release(1)
			break
		}
		wg.Add(1)
		go func(res *domain.PartitionResult, p domain.Partition) {
			defer wg.Done()
			defer sem.Release(1)
			run.convertPartition(p, res)
		}(&report.Partitions[i], parts[i])
	}
	wg.Wait()

	report.Duration = time.Since(start)
	report.Status = domain.StatusSucceeded
	for _, p := range report.Partitions {
		report.Rows += p.Rows
		report.Files += len(p.Outputs)
	}

	failed := report.Failed()
	if len(failed) > 0 {
		report.Status = domain.StatusFailed
		pending := 0
		for _, p := range report.Partitions {
			if p.State == domain.TaskPending {
				pending++
			}
		}
		e.log.Error("table conversion failed", "table", job.Table.Name, "failed", len(failed), "unscheduled", pending)
		return report, fmt.Errorf("%w: %s partition %d: %s",
			domain.ErrConversionTaskFailure, job.Table.Name, failed[0].Partition, failed[0].Error)
	}
	if schedErr != nil {
		report.Status = domain.StatusFailed
		return report, fmt.Errorf("convert %s: %w", job.Table.Name, schedErr)
	}

	e.log.Info("converted table", "table", job.Table.Name, "rows", report.Rows, "files", report.Files, "duration", report.Duration)
	return report, nil
}

// tableRun is the state shared by the tasks of one table.
type tableRun struct {
	engine *Engine
	job    domain.ConversionJob
	next   atomic.Int64 // next canonical output index
	failed atomic.Bool
}

// reserve allocates n consecutive canonical indices and returns the first.
func (r *tableRun) reserve(n int) int {
	return int(r.next.Add(int64(n))) - n
}
