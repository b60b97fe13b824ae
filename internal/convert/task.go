package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/apache/arrow-go/v18/arrow"

	"tpctools/internal/domain"
	"tpctools/internal/etl"
	"tpctools/internal/etl/sources"
)

// StagingDir is the transient directory a partition is written into before
// promotion.
func StagingDir(outputDir string, p domain.Partition) string {
	return filepath.Join(outputDir, p.Stub()+"-staging")
}

// task tracks the state machine of one partition.
type task struct {
	run   *tableRun
	res   *domain.PartitionResult
	state domain.TaskState
}

func (t *task) to(next domain.TaskState, cause error) {
	if !domain.CanTransition(t.state, next) {
		panic(fmt.Sprintf("convert: illegal task transition %s -> %s", t.state, next))
	}
	prev := t.state
	t.state = next
	t.res.State = next
	if cb := t.run.engine.OnTransition; cb != nil {
		cb(Transition{Table: t.run.job.Table.Name, Partition: t.res.Partition, From: prev, To: next, Err: cause})
	}
}

func (r *tableRun) convertPartition(p domain.Partition, res *domain.PartitionResult) {
	start := time.Now()
	t := &task{run: r, res: res, state: domain.TaskPending}
	log := r.engine.log.With("table", r.job.Table.Name, "partition", p.Index)

	outputs, rows, err := t.execute(p)
	res.Rows = rows
	res.Duration = time.Since(start)
	if err != nil {
		r.failed.Store(true)
		res.Error = err.Error()
		t.to(domain.TaskFailed, err)
		log.Error("partition failed", "error", err)
		return
	}
	res.Outputs = outputs
	t.to(domain.TaskDone, nil)
	log.Debug("partition done", "rows", rows, "files", len(outputs), "duration", res.Duration)
}

func (t *task) execute(p domain.Partition) ([]string, int64, error) {
	job := t.run.job

	t.to(domain.TaskReading, nil)
	src, err := sources.Open(p.Path, job.Table, sources.Options{
		BatchSize: job.BatchSize,
		Partition: p.Index,
		Allocator: t.run.engine.mem,
	})
	if err != nil {
		return nil, 0, err
	}
	defer src.Close()

	t.to(domain.TaskParsing, nil)
	first, err := src.Next()
	if err != nil && err != io.EOF {
		return nil, src.Rows(), err
	}
	t.to(domain.TaskBatching, nil)

	staging := StagingDir(job.OutputDir, p)
	if err := os.Mkdir(staging, 0o755); err != nil {
		if first != nil {
			first.Release()
		}
		return nil, src.Rows(), fmt.Errorf("create staging: %w", err)
	}

	t.to(domain.TaskWritingStaging, nil)
	files, written, err := writeStaging(src, first, staging, job)
	if err == nil && written != src.Rows() {
		err = fmt.Errorf("staged %d of %d parsed rows", written, src.Rows())
	}
	if err != nil {
		os.RemoveAll(staging)
		return nil, src.Rows(), err
	}

	t.to(domain.TaskPromoting, nil)
	outputs, err := t.run.promote(staging, files)
	if err != nil {
		os.RemoveAll(staging)
		return nil, src.Rows(), err
	}
	return outputs, src.Rows(), nil
}

func writeStaging(src etl.Source, first arrow.Record, staging string, job domain.ConversionJob) ([]string, int64, error) {
	dest, err := etl.NewDestination(staging, src.Schema(), etl.DestinationOptions{
		Format:         job.Format,
		Codec:          job.Codec,
		MaxRowsPerFile: job.MaxRowsPerFile,
	})
	if err != nil {
		if first != nil {
			first.Release()
		}
		return nil, 0, err
	}

	rec := first
	for rec != nil {
		werr := dest.Write(rec)
		rec.Release()
		if werr != nil {
			dest.Abort()
			return nil, 0, werr
		}
		rec, err = src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			dest.Abort()
			return nil, 0, err
		}
	}
	if err := dest.Close(); err != nil {
		dest.Abort()
		return nil, 0, err
	}
	return dest.Files(), dest.Rows(), nil
}

// promote renames every staged file to part-<n>.<ext> under the output
// directory, n drawn from the table-wide counter, then removes staging. If a
// rename fails, the files already moved go back into staging.
func (r *tableRun) promote(staging string, files []string) ([]string, error) {
	ext := r.job.Format.Ext()
	base := r.reserve(len(files))

	outputs := make([]string, 0, len(files))
	for i, f := range files {
		dst := filepath.Join(r.job.OutputDir, domain.PartFileName(base+i, ext))
		if _, err := os.Lstat(dst); err == nil {
			r.unpromote(files[:i], outputs)
			return nil, fmt.Errorf("promote %s: %s: %w", filepath.Base(f), dst, domain.ErrOutputAlreadyExists)
		}
		if err := os.Rename(f, dst); err != nil {
			r.unpromote(files[:i], outputs)
			return nil, fmt.Errorf("promote %s: %w", filepath.Base(f), err)
		}
		outputs = append(outputs, dst)
	}
	if err := os.Remove(staging); err != nil && !errors.Is(err, os.ErrNotExist) {
		r.engine.log.Warn("staging not removed", "dir", staging, "error", err)
	}
	return outputs, nil
}

func (r *tableRun) unpromote(staged, promoted []string) {
	for i := len(promoted) - 1; i >= 0; i-- {
		if err := os.Rename(promoted[i], staged[i]); err != nil {
			r.engine.log.Error("promotion rollback failed", "file", promoted[i], "error", err)
		}
	}
}
