package app

import (
	"context"
	"flag"
	"fmt"

	"tpctools/internal/domain"
	"tpctools/internal/generator"
	"tpctools/internal/service"
)

// ============================================================
// generate
// ============================================================

func defineGenerate(fs *flag.FlagSet) func(context.Context, *App) error {
	var (
		benchmark  = fs.String("benchmark", "", "tpch or tpcds")
		scale      = fs.Int("scale", 1, "scale factor")
		partitions = fs.Int("partitions", 1, "number of generator processes to run in parallel")
		genPath    = fs.String("generator-path", "", "directory holding dbgen or dsdgen")
		output     = fs.String("output", "", "dataset root; tables land in <output>/<table>/part-<i>.<ext>")
		tables     = fs.String("tables", "", "comma-separated tables to reconcile (default all)")
		usePTY     = fs.Bool("pty", false, "run generators under a pseudo-terminal")
	)

	return func(ctx context.Context, a *App) error {
		set := setFlags(fs)
		if !set["generator-path"] {
			*genPath = a.cfg.Generate.GeneratorPath
		}
		if !set["pty"] {
			*usePTY = a.cfg.Generate.UsePTY
		}
		if err := required(map[string]string{"benchmark": *benchmark, "generator-path": *genPath, "output": *output}); err != nil {
			return err
		}
		if *usePTY && a.Runner == nil {
			a.svc = a.newService(generator.PTYRunner{})
		}

		report, err := a.svc.Generate(ctx, service.GenerateInput{
			Benchmark:    *benchmark,
			Tables:       splitList(*tables),
			Scale:        *scale,
			Partitions:   *partitions,
			GeneratorDir: *genPath,
			OutputRoot:   *output,
		})
		if report != nil {
			fmt.Fprintln(a.stdout, RenderGeneration(report))
		}
		return err
	}
}

// ============================================================
// convert
// ============================================================

func defineConvert(fs *flag.FlagSet) func(context.Context, *App) error {
	var (
		benchmark   = fs.String("benchmark", "", "tpch or tpcds")
		input       = fs.String("input", "", "dataset root holding <table>/part-<i>.<ext>")
		output      = fs.String("output", "", "root for converted tables")
		format      = fs.String("format", "", "row|columnar (aliases csv|parquet)")
		compression = fs.String("compression", "", "none|fast|balanced|strong-1..strong-22|snappy|gzip|brotli|lz4|zstd")
		partitions  = fs.Int("partitions", 0, "input partitions each table must have, checked not produced; output file count follows the input and --max-rows-per-file (0 = any)")
		batchSize   = fs.Int("batch-size", 0, "rows per record batch")
		concurrency = fs.Int("concurrency", 0, "partitions converted at once")
		maxRows     = fs.Int64("max-rows-per-file", 0, "roll over to a new output file after this many rows (0 = one file per partition)")
		tables      = fs.String("tables", "", "comma-separated tables to convert (default all)")
	)

	return func(ctx context.Context, a *App) error {
		set := setFlags(fs)
		conv := a.cfg.Convert
		if !set["format"] {
			*format = conv.Format
		}
		if !set["compression"] {
			*compression = conv.Compression
		}
		if !set["batch-size"] {
			*batchSize = conv.BatchSize
		}
		if !set["concurrency"] {
			*concurrency = conv.Concurrency
		}
		if !set["max-rows-per-file"] {
			*maxRows = conv.MaxRowsPerFile
		}
		if err := required(map[string]string{"benchmark": *benchmark, "input": *input, "output": *output}); err != nil {
			return err
		}
		if *partitions < 0 || *batchSize < 0 || *concurrency < 0 || *maxRows < 0 {
			return fmt.Errorf("%w: numeric flags must not be negative", errUsage)
		}

		result, err := a.svc.Convert(ctx, service.ConvertInput{
			Benchmark:      *benchmark,
			Tables:         splitList(*tables),
			InputRoot:      *input,
			OutputRoot:     *output,
			Format:         *format,
			Compression:    *compression,
			Partitions:     *partitions,
			BatchSize:      *batchSize,
			Concurrency:    *concurrency,
			MaxRowsPerFile: *maxRows,
		})
		if result != nil {
			fmt.Fprintln(a.stdout, RenderConversion(result))
		}
		return err
	}
}

// ============================================================
// inspect
// ============================================================

func defineInspect(fs *flag.FlagSet) func(context.Context, *App) error {
	var (
		benchmark = fs.String("benchmark", "", "tpch or tpcds")
		input     = fs.String("input", "", "root of converted tables")
		format    = fs.String("format", "columnar", "format the tables were converted to")
		tables    = fs.String("tables", "", "comma-separated tables (default every converted table)")
	)

	return func(ctx context.Context, a *App) error {
		if err := required(map[string]string{"benchmark": *benchmark, "input": *input}); err != nil {
			return err
		}
		summaries, err := a.svc.Inspect(ctx, service.InspectInput{
			Benchmark: *benchmark,
			Tables:    splitList(*tables),
			InputRoot: *input,
			Format:    *format,
		})
		if len(summaries) > 0 {
			fmt.Fprintln(a.stdout, RenderInspect(summaries))
		}
		return err
	}
}

// ============================================================
// runs
// ============================================================

func defineRuns(fs *flag.FlagSet) func(context.Context, *App) error {
	var (
		kind  = fs.String("kind", "", "generate or convert (default both)")
		limit = fs.Int("limit", 20, "most recent runs to show")
	)

	return func(ctx context.Context, a *App) error {
		if a.ledger == nil {
			return fmt.Errorf("%w: no run ledger configured (use --ledger or ledger.dsn)", errUsage)
		}
		k := domain.RunKind(*kind)
		if k != "" && k != domain.RunKindGenerate && k != domain.RunKindConvert {
			return fmt.Errorf("%w: --kind must be generate or convert", errUsage)
		}
		runs, err := a.ledger.ListRuns(ctx, k, *limit)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, RenderRuns(runs))
		return nil
	}
}
