// Package generator fans a generate job out to one external generator
// process per shard and joins on all of them.
package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/creack/pty"
)

// Command is one generator invocation. A relative Path is resolved against Dir.
type Command struct {
	Path string
	Args []string
	Dir  string
}

func (c Command) String() string {
	return strings.TrimSpace(c.Path + " " + strings.Join(c.Args, " "))
}

// Result is how a process ended. Err is set when the process could not be
// started or did not exit cleanly; ExitCode is -1 when there is no exit status.
type Result struct {
	ExitCode int
	Output   []byte
	Err      error
	Duration time.Duration
}

// ProcessRunner spawns a process and blocks until it exits.
type ProcessRunner interface {
	Run(ctx context.Context, cmd Command) Result
}

// ── ExecRunner ─────────────────────────────────────────────

// ExecRunner runs generators with os/exec and captures combined output.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, c Command) Result {
	start := time.Now()
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = c.Dir
	out, err := cmd.CombinedOutput()
	return finish(cmd, out, err, start)
}

// ── PTYRunner ──────────────────────────────────────────────

// PTYRunner runs generators attached to a pseudo-terminal. dbgen and dsdgen
// only print progress when stdout is a terminal.
type PTYRunner struct {
	Cols, Rows uint16
}

func (r PTYRunner) Run(ctx context.Context, c Command) Result {
	start := time.Now()
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = c.Dir

	cols, rows := r.Cols, r.Rows
	if cols == 0 {
		cols = 120
	}
	if rows == 0 {
		rows = 40
	}
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: cols, Rows: rows})
	if err != nil {
		return Result{ExitCode: -1, Err: fmt.Errorf("start pty: %w", err), Duration: time.Since(start)}
	}
	defer ptmx.Close()

	var buf bytes.Buffer
	// Reading the master returns EIO once the child closes its side.
	if _, err := io.Copy(&buf, ptmx); err != nil && !errors.Is(err, syscall.EIO) {
		cmd.Process.Kill()
	}
	return finish(cmd, buf.Bytes(), cmd.Wait(), start)
}

func finish(cmd *exec.Cmd, out []byte, err error, start time.Time) Result {
	res := Result{Output: out, Duration: time.Since(start), ExitCode: -1}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.Err = fmt.Errorf("exit status %d", exitErr.ExitCode())
		} else {
			res.Err = err
		}
	}
	return res
}
