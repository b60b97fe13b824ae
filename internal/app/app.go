// Package app is the tpctools command line: it parses flags, merges them
// over the config file, wires the pipeline service and renders its reports.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"tpctools/internal/config"
	"tpctools/internal/domain"
	"tpctools/internal/generator"
	"tpctools/internal/logging"
	"tpctools/internal/service"
	"tpctools/internal/storage"
)

// Process exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// errUsage marks command-line mistakes; Run maps it to ExitUsage.
var errUsage = errors.New("usage")

// App is one CLI invocation.
type App struct {
	stdout io.Writer
	stderr io.Writer

	cfg    config.Config
	log    *slog.Logger
	svc    *service.PipelineService
	ledger domain.RunStore
	amqp   *service.AMQPEmitter
	events service.MultiEmitter

	// Runner replaces the generator process runner when set.
	Runner generator.ProcessRunner
	// Emitter receives pipeline events in addition to the configured ones.
	Emitter service.EventEmitter
}

// New creates an App writing reports to stdout and diagnostics to stderr.
func New(stdout, stderr io.Writer) *App {
	return &App{stdout: stdout, stderr: stderr}
}

// command is one subcommand: its flags are bound by define, run executes it.
type command struct {
	name    string
	summary string
	define  func(fs *flag.FlagSet) func(ctx context.Context, a *App) error
}

var commands = []command{
	{name: "generate", summary: "run the benchmark generator in parallel shards", define: defineGenerate},
	{name: "convert", summary: "convert canonical partitions to columnar or row files", define: defineConvert},
	{name: "inspect", summary: "count files and rows of converted tables", define: defineInspect},
	{name: "runs", summary: "list recorded runs from the ledger", define: defineRuns},
}

// Run executes args (without the program name) and returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		a.usage()
		if len(args) == 0 {
			return ExitUsage
		}
		return ExitOK
	}

	var cmd *command
	for i := range commands {
		if commands[i].name == args[0] {
			cmd = &commands[i]
		}
	}
	if cmd == nil {
		fmt.Fprintf(a.stderr, "tpctools: unknown command %q\n\n", args[0])
		a.usage()
		return ExitUsage
	}

	fs := flag.NewFlagSet("tpctools "+cmd.name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	var g globalFlags
	g.register(fs)
	run := cmd.define(fs)

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(a.stderr, "tpctools %s: unexpected arguments: %s\n", cmd.name, strings.Join(fs.Args(), " "))
		return ExitUsage
	}

	if err := a.startup(ctx, fs, g); err != nil {
		fmt.Fprintf(a.stderr, "tpctools: %v\n", err)
		return ExitError
	}
	defer a.shutdown()

	if err := run(ctx, a); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(a.stderr, "tpctools %s: %v\n", cmd.name, err)
			fs.Usage()
			return ExitUsage
		}
		a.log.Error("command failed", "command", cmd.name, "error", err)
		fmt.Fprintf(a.stderr, "tpctools %s: %v\n", cmd.name, err)
		return ExitError
	}
	return ExitOK
}

func (a *App) usage() {
	fmt.Fprintln(a.stderr, "usage: tpctools <command> [flags]")
	fmt.Fprintln(a.stderr)
	for _, c := range commands {
		fmt.Fprintf(a.stderr, "  %-9s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(a.stderr)
	fmt.Fprintln(a.stderr, "Run 'tpctools <command> -h' for the flags of a command.")
}

// ── Global flags ───────────────────────────────────────────

type globalFlags struct {
	config     string
	logLevel   string
	logFormat  string
	logFile    string
	ledger     string
	eventsAMQP string
}

func (g *globalFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&g.config, "config", "", "YAML config file (default $"+config.EnvConfigPath+")")
	fs.StringVar(&g.logLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&g.logFormat, "log-format", "", "text or json")
	fs.StringVar(&g.logFile, "log-file", "", "write logs to this file instead of stderr")
	fs.StringVar(&g.ledger, "ledger", "", "run ledger DSN (sqlite path, postgres://, mysql://, mongodb://)")
	fs.StringVar(&g.eventsAMQP, "events-amqp", "", "publish pipeline events to this AMQP broker")
}

// setFlags returns the names of the flags given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// ── Lifecycle ──────────────────────────────────────────────

// startup loads config, installs the logger, opens the ledger and the event
// broker, and builds the pipeline service. Ledger and broker failures are
// logged and the run continues without them.
func (a *App) startup(ctx context.Context, fs *flag.FlagSet, g globalFlags) error {
	cfg, err := config.Load(g.config)
	if err != nil {
		return err
	}
	set := setFlags(fs)
	if set["log-level"] {
		cfg.Log.Level = g.logLevel
	}
	if set["log-format"] {
		cfg.Log.Format = g.logFormat
	}
	if set["log-file"] {
		cfg.Log.File = g.logFile
	}
	if set["ledger"] {
		cfg.Ledger.DSN = g.ledger
	}
	if set["events-amqp"] {
		cfg.Events.AMQPURL = g.eventsAMQP
	}
	a.cfg = cfg

	if err := logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, OutputPath: cfg.Log.File}); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	a.log = logging.For("cli")

	emitters := service.MultiEmitter{service.LogEmitter{Log: logging.For("events")}}
	if a.Emitter != nil {
		emitters = append(emitters, a.Emitter)
	}
	if cfg.Events.AMQPURL != "" {
		em, err := service.NewAMQPEmitter(cfg.Events.AMQPURL, cfg.Events.Exchange, logging.For("events"))
		if err != nil {
			a.log.Warn("event broker unavailable, continuing without it", "error", err)
		} else {
			a.amqp = em
			emitters = append(emitters, em)
		}
	}

	if cfg.Ledger.DSN != "" {
		store, err := storage.Open(ctx, cfg.Ledger.DSN)
		if err != nil {
			logging.For("ledger").Warn("run ledger unavailable, continuing without it", "error", err)
		} else {
			a.ledger = store
		}
	}

	a.events = emitters
	a.svc = a.newService(a.Runner)
	return nil
}

func (a *App) newService(runner generator.ProcessRunner) *service.PipelineService {
	return service.NewPipelineService(service.Options{
		Runner:  runner,
		Ledger:  a.ledger,
		Emitter: a.events,
		Logger:  slog.Default(),
	})
}

func (a *App) shutdown() {
	if a.amqp != nil {
		a.amqp.Close()
	}
	if a.ledger != nil {
		a.ledger.Close()
	}
	logging.Close()
}

// ── Helpers ────────────────────────────────────────────────

// splitList parses a comma-separated flag value, dropping blanks and duplicates.
func splitList(s string) []string {
	var out []string
	seen := map[string]bool{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		out = append(out, part)
	}
	return out
}

func required(flags map[string]string) error {
	var missing []string
	for name, v := range flags {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%w: missing %s", errUsage, strings.Join(missing, ", "))
}
