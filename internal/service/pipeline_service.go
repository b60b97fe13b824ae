package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"tpctools/internal/convert"
	"tpctools/internal/domain"
	"tpctools/internal/etl"
	"tpctools/internal/generator"
	"tpctools/internal/reconcile"
	"tpctools/internal/schema"
)

// ─────────────────────────────────────────────────────────────
// Pipeline Service: generate, convert and inspect datasets
// ─────────────────────────────────────────────────────────────

// PipelineService drives the generator, the reconciler and the conversion
// engine for whole datasets. Tables are always processed one at a time.
type PipelineService struct {
	registry *schema.Registry
	runner   generator.ProcessRunner
	ledger   domain.RunStore
	emitter  EventEmitter
	base     *slog.Logger // untagged; see logger
	log      *slog.Logger

	runningTables runningTablesGuard
}

// Options configures a PipelineService. Zero fields get defaults: the
// built-in schemas, an ExecRunner, no ledger, and a LogEmitter.
type Options struct {
	Registry *schema.Registry
	Runner   generator.ProcessRunner
	Ledger   domain.RunStore
	Emitter  EventEmitter
	Logger   *slog.Logger
}

// NewPipelineService creates a PipelineService ready for use.
func NewPipelineService(opts Options) *PipelineService {
	s := &PipelineService{
		registry: opts.Registry,
		runner:   opts.Runner,
		ledger:   opts.Ledger,
		emitter:  opts.Emitter,
		base:     opts.Logger,
	}
	if s.base == nil {
		s.base = slog.Default()
	}
	s.log = s.logger("pipeline")
	if s.registry == nil {
		s.registry = schema.Default()
	}
	if s.runner == nil {
		s.runner = generator.ExecRunner{}
	}
	if s.emitter == nil {
		s.emitter = LogEmitter{Log: s.logger("events")}
	}
	return s
}

// logger tags the service's untagged logger with one component attribute.
func (s *PipelineService) logger(component string) *slog.Logger {
	return s.base.With("component", component)
}

// ── Generate ───────────────────────────────────────────────

type GenerateInput struct {
	Benchmark    string   `json:"benchmark"`
	Tables       []string `json:"tables"` // empty = every table of the benchmark
	Scale        int      `json:"scale"`
	Partitions   int      `json:"partitions"`
	GeneratorDir string   `json:"generatorDir"`
	OutputRoot   string   `json:"outputRoot"`
}

// Generate runs the generator shards and, only if every shard succeeded,
// reconciles each table into <OutputRoot>/<table>/part-<i>.<ext>.
//
// Every table directory is checked before any process is spawned, so a
// conflict leaves the filesystem untouched. A failed shard fails the whole
// run; the raw files are left where the generator wrote them.
func (s *PipelineService) Generate(ctx context.Context, input GenerateInput) (*domain.GenerationReport, error) {
	kind, err := domain.ParseBenchmark(input.Benchmark)
	if err != nil {
		return nil, err
	}
	tables, err := s.registry.Resolve(kind, input.Tables)
	if err != nil {
		return nil, err
	}
	root, err := filepath.Abs(input.OutputRoot)
	if err != nil {
		return nil, fmt.Errorf("resolve output root: %w", err)
	}
	for _, t := range tables {
		if err := reconcile.EnsureAbsent(filepath.Join(root, t.Name)); err != nil {
			return nil, fmt.Errorf("generate %s: %w", t.Name, err)
		}
	}

	job := domain.GenerationJob{
		Benchmark:    kind,
		Tables:       tableNames(tables),
		Scale:        input.Scale,
		Partitions:   input.Partitions,
		GeneratorDir: input.GeneratorDir,
		OutputRoot:   root,
	}

	orch := generator.NewOrchestrator(s.runner, s.logger("generator"))
	orch.OnShard = func(r domain.ShardResult) {
		s.emitter.Emit(ctx, EventShardDone, r)
	}

	start := time.Now()
	report, err := orch.Generate(ctx, job)
	if err != nil {
		s.recordGeneration(ctx, job, report, start, err)
		return report, err
	}

	rec := reconcile.New(s.logger("reconcile"), s.registry.FixedTables(kind)...)
	scratch := generator.ScratchDir(job)
	report.Reconciled = make(map[string]*domain.ReconcileReport, len(tables))
	for _, t := range tables {
		rr, err := rec.Reconcile(t.Name, kind.Ext(), scratch, root, job.Partitions)
		if err != nil {
			report.Overall = domain.StatusFailed
			s.recordGeneration(ctx, job, report, start, err)
			return report, err
		}
		report.Reconciled[t.Name] = rr
	}
	report.Duration = time.Since(start)

	s.log.Info("dataset ready", "benchmark", kind, "tables", len(tables), "root", root, "duration", report.Duration)
	s.recordGeneration(ctx, job, report, start, nil)
	return report, nil
}

// ── Convert ────────────────────────────────────────────────

type ConvertInput struct {
	Benchmark      string   `json:"benchmark"`
	Tables         []string `json:"tables"`
	InputRoot      string   `json:"inputRoot"`
	OutputRoot     string   `json:"outputRoot"`
	Format         string   `json:"format"`
	Compression    string   `json:"compression"`
	Partitions     int      `json:"partitions"` // 0 = accept any count
	BatchSize      int      `json:"batchSize"`
	Concurrency    int      `json:"concurrency"`
	MaxRowsPerFile int64    `json:"maxRowsPerFile"`
}

// ConvertResult holds one report per table attempted, in order.
type ConvertResult struct {
	Tables   []*domain.ConversionReport `json:"tables"`
	Duration time.Duration              `json:"duration"`
}

// Convert converts each table sequentially. Format and compression are
// validated before any table is touched; the first failing table aborts the
// remaining ones.
func (s *PipelineService) Convert(ctx context.Context, input ConvertInput) (*ConvertResult, error) {
	format, err := domain.ParseFormat(input.Format)
	if err != nil {
		return nil, err
	}
	codec, err := domain.ParseCodec(input.Compression)
	if err != nil {
		return nil, err
	}
	if err := etl.ValidateOutput(format, codec); err != nil {
		return nil, err
	}
	kind, err := domain.ParseBenchmark(input.Benchmark)
	if err != nil {
		return nil, err
	}
	tables, err := s.registry.Resolve(kind, input.Tables)
	if err != nil {
		return nil, err
	}

	engine := convert.NewEngine(s.logger("convert"))
	engine.OnTransition = func(t convert.Transition) {
		ev := TaskStateEvent{Table: t.Table, Partition: t.Partition, From: string(t.From), To: string(t.To)}
		if t.Err != nil {
			ev.Error = t.Err.Error()
		}
		s.emitter.Emit(ctx, EventTaskState, ev)
	}

	result := &ConvertResult{}
	start := time.Now()
	for _, t := range tables {
		job := domain.ConversionJob{
			Benchmark:        kind,
			Table:            t,
			InputDir:         filepath.Join(input.InputRoot, t.Name),
			InputExt:         kind.Ext(),
			OutputDir:        filepath.Join(input.OutputRoot, t.Name),
			Format:           format,
			Codec:            codec,
			BatchSize:        input.BatchSize,
			Concurrency:      input.Concurrency,
			MaxRowsPerFile:   input.MaxRowsPerFile,
			ExpectPartitions: input.Partitions,
		}
		report, err := s.convertTable(ctx, engine, job)
		if report != nil {
			result.Tables = append(result.Tables, report)
			s.emitter.Emit(ctx, EventTableDone, report)
		}
		if err != nil {
			result.Duration = time.Since(start)
			return result, err
		}
	}
	result.Duration = time.Since(start)
	return result, nil
}

func (s *PipelineService) convertTable(ctx context.Context, engine *convert.Engine, job domain.ConversionJob) (*domain.ConversionReport, error) {
	key, err := filepath.Abs(job.OutputDir)
	if err != nil {
		key = job.OutputDir
	}
	if !s.runningTables.TryLock(key) {
		return nil, fmt.Errorf("convert %s: %s is already being converted", job.Table.Name, job.OutputDir)
	}
	defer s.runningTables.Unlock(key)

	start := time.Now()
	report, err := engine.ConvertTable(ctx, job)
	s.recordConversion(ctx, job, report, start, err)
	return report, err
}

// ── Inspect ────────────────────────────────────────────────

type InspectInput struct {
	Benchmark string   `json:"benchmark"`
	Tables    []string `json:"tables"`
	InputRoot string   `json:"inputRoot"`
	Format    string   `json:"format"` // empty = columnar
}

// TableSummary describes one converted table directory.
type TableSummary struct {
	Table string `json:"table"`
	Dir   string `json:"dir"`
	Files int    `json:"files"`
	Rows  int64  `json:"rows"`
	Bytes int64  `json:"bytes"`
}

// Inspect counts files, rows and bytes of converted tables. Tables that were
// never converted are skipped; a broken layout is an error.
func (s *PipelineService) Inspect(ctx context.Context, input InspectInput) ([]TableSummary, error) {
	format := domain.FormatColumnar
	if input.Format != "" {
		f, err := domain.ParseFormat(input.Format)
		if err != nil {
			return nil, err
		}
		format = f
	}
	kind, err := domain.ParseBenchmark(input.Benchmark)
	if err != nil {
		return nil, err
	}
	tables, err := s.registry.Resolve(kind, input.Tables)
	if err != nil {
		return nil, err
	}

	var out []TableSummary
	for _, t := range tables {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		dir := filepath.Join(input.InputRoot, t.Name)
		parts, err := reconcile.Inspect(dir, format.Ext())
		if errors.Is(err, domain.ErrPathNotFound) && len(input.Tables) == 0 {
			continue
		}
		if err != nil {
			return out, fmt.Errorf("inspect %s: %w", t.Name, err)
		}

		sum := TableSummary{Table: t.Name, Dir: dir, Files: len(parts)}
		for _, p := range parts {
			n, err := countRows(p.Path, format)
			if err != nil {
				return out, fmt.Errorf("inspect %s: %w", t.Name, err)
			}
			sum.Rows += n
			sum.Bytes += p.Size
		}
		out = append(out, sum)
	}
	return out, nil
}

func countRows(path string, format domain.Format) (int64, error) {
	if format == domain.FormatColumnar {
		return etl.ParquetRowCount(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var n int64
	buf := make([]byte, 64*1024)
	for {
		k, err := f.Read(buf)
		n += int64(bytes.Count(buf[:k], []byte{'\n'}))
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}

// ── Ledger ─────────────────────────────────────────────────

func (s *PipelineService) recordGeneration(ctx context.Context, job domain.GenerationJob, report *domain.GenerationReport, start time.Time, runErr error) {
	rec := &domain.RunRecord{
		Kind:       domain.RunKindGenerate,
		Benchmark:  job.Benchmark,
		Status:     domain.StatusSucceeded,
		Partitions: job.Partitions,
		StartedAt:  start,
		Duration:   time.Since(start),
	}
	if report != nil {
		rec.Detail = detailJSON(report)
		for _, rr := range report.Reconciled {
			rec.Files += len(rr.Partitions)
		}
	}
	if runErr != nil {
		rec.Status = domain.StatusFailed
		rec.Error = runErr.Error()
	}
	s.record(ctx, rec)
}

func (s *PipelineService) recordConversion(ctx context.Context, job domain.ConversionJob, report *domain.ConversionReport, start time.Time, runErr error) {
	rec := &domain.RunRecord{
		Kind:      domain.RunKindConvert,
		Benchmark: job.Benchmark,
		Table:     job.Table.Name,
		Status:    domain.StatusSucceeded,
		StartedAt: start,
		Duration:  time.Since(start),
	}
	if report != nil {
		rec.Partitions = len(report.Partitions)
		rec.Rows = report.Rows
		rec.Files = report.Files
		rec.Detail = detailJSON(report)
	}
	if runErr != nil {
		rec.Status = domain.StatusFailed
		rec.Error = runErr.Error()
	}
	s.record(ctx, rec)
}

// record writes rec to the ledger. Ledger errors never fail a run.
func (s *PipelineService) record(ctx context.Context, rec *domain.RunRecord) {
	if s.ledger == nil {
		return
	}
	if err := s.ledger.CreateRun(ctx, rec); err != nil {
		s.logger("ledger").Warn("ledger write failed", "kind", rec.Kind, "table", rec.Table, "error", err)
		return
	}
	s.logger("ledger").Debug("recorded run", "id", rec.ID, "kind", rec.Kind, "status", rec.Status)
}

func detailJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func tableNames(tables []domain.Table) []string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	return names
}
