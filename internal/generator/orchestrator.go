package generator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"tpctools/internal/domain"
)

// maxOutput caps how much of a shard's captured output is kept in the report.
const maxOutput = 4096

// Orchestrator runs one generator process per shard.
type Orchestrator struct {
	runner ProcessRunner
	log    *slog.Logger

	// OnShard, when set, is called from the shard's goroutine as soon as it exits.
	OnShard func(domain.ShardResult)
}

// NewOrchestrator creates an orchestrator. A nil logger uses slog.Default().
func NewOrchestrator(runner ProcessRunner, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{runner: runner, log: log}
}

// Generate spawns job.Partitions generator processes concurrently and waits
// for every one of them; a failing shard never cancels its siblings. The
// report is always returned once processes were spawned. When any shard
// failed, Overall is Failed and the error wraps ErrWorkerFailure.
func (o *Orchestrator) Generate(ctx context.Context, job domain.GenerationJob) (*domain.GenerationReport, error) {
	if job.Partitions < 1 {
		return nil, fmt.Errorf("generate: partitions must be >= 1, got %d", job.Partitions)
	}
	if job.Scale < 1 {
		return nil, fmt.Errorf("generate: scale must be >= 1, got %d", job.Scale)
	}
	if st, err := os.Stat(job.GeneratorDir); err != nil || !st.IsDir() {
		return nil, fmt.Errorf("generate: generator dir %s: %w", job.GeneratorDir, domain.ErrPathNotFound)
	}

	// dsdgen runs inside the generator dir, so its -DIR target must be absolute.
	root, err := filepath.Abs(job.OutputRoot)
	if err != nil {
		return nil, fmt.Errorf("generate: resolve output: %w", err)
	}
	job.OutputRoot = root
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("generate: create output root: %w", err)
	}

	cmds := Commands(job)
	report := &domain.GenerationReport{
		Benchmark:  job.Benchmark,
		Scale:      job.Scale,
		Partitions: job.Partitions,
		Shards:     make([]domain.ShardResult, len(cmds)),
	}

	o.log.Info("spawning generators", "benchmark", job.Benchmark, "scale", job.Scale, "partitions", job.Partitions)
	start := time.Now()

	var wg sync.WaitGroup
	for i, cmd := range cmds {
		wg.Add(1)
		go func(i int, cmd Command) {
			defer wg.Done()
			o.log.Debug("spawn", "shard", i+1, "cmd", cmd.String(), "dir", cmd.Dir)
			res := o.runner.Run(ctx, cmd)
			shard := shardResult(i+1, res)
			report.Shards[i] = shard

			if shard.Status == domain.StatusFailed {
				o.log.Error("generator shard failed", "shard", shard.Shard, "exit", shard.ExitCode, "error", shard.Error)
			} else {
				o.log.Info("generator shard done", "shard", shard.Shard, "duration", shard.Duration)
			}
			if o.OnShard != nil {
				o.OnShard(shard)
			}
		}(i, cmd)
	}
	wg.Wait()

	report.Duration = time.Since(start)
	report.Overall = domain.StatusSucceeded
	failed := report.FailedShards()
	if len(failed) > 0 {
		report.Overall = domain.StatusFailed
		return report, fmt.Errorf("%w: %d of %d shards failed (first: shard %d: %s)",
			domain.ErrWorkerFailure, len(failed), len(report.Shards), failed[0].Shard, failed[0].Error)
	}

	o.log.Info("generated", "benchmark", job.Benchmark, "scale", job.Scale, "partitions", job.Partitions, "duration", report.Duration)
	return report, nil
}

func shardResult(shard int, res Result) domain.ShardResult {
	s := domain.ShardResult{
		Shard:    shard,
		Status:   domain.StatusSucceeded,
		ExitCode: res.ExitCode,
		Output:   tail(res.Output, maxOutput),
		Duration: res.Duration,
	}
	if res.Err != nil || res.ExitCode != 0 {
		s.Status = domain.StatusFailed
		if res.Err != nil {
			s.Error = res.Err.Error()
		} else {
			s.Error = fmt.Sprintf("exit status %d", res.ExitCode)
		}
	}
	return s
}

func tail(b []byte, n int) string {
	if len(b) > n {
		b = b[len(b)-n:]
	}
	return string(b)
}
