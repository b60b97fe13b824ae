// Package reconcile moves generator output into the canonical layout
// <root>/<table>/part-<i>.<ext> and re-checks that layout before conversion.
package reconcile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"syscall"

	"tpctools/internal/domain"
)

// Reconciler renames raw generator files into canonical partitions.
type Reconciler struct {
	log   *slog.Logger
	fixed map[string]bool
}

// New creates a reconciler. A nil logger uses slog.Default(). writtenOnce
// names the tables the generator emits from shard 1 only; every other table
// must be present in all shards.
func New(log *slog.Logger, writtenOnce ...string) *Reconciler {
	if log == nil {
		log = slog.Default()
	}
	fixed := make(map[string]bool, len(writtenOnce))
	for _, name := range writtenOnce {
		fixed[name] = true
	}
	return &Reconciler{log: log, fixed: fixed}
}

// ── Naming conventions ─────────────────────────────────────

// Candidates lists the raw file names shard i (1-based) of n may have been
// written under, in lookup order:
//
//	<table>_<i>_<n>.<ext>    indexed suffix (dsdgen)
//	<table>.<ext>.<i>        extension suffix (dbgen -C/-S)
//	<table>.<ext>            unsuffixed first shard, or a single-shard run
func Candidates(table, ext string, i, n int) []string {
	names := []string{
		fmt.Sprintf("%s_%d_%d.%s", table, i, n, ext),
		fmt.Sprintf("%s.%s.%d", table, ext, i),
	}
	if i == 1 {
		names = append(names, fmt.Sprintf("%s.%s", table, ext))
	}
	return names
}

func locate(dir, table, ext string, i, n int) (string, bool) {
	for _, name := range Candidates(table, ext, i, n) {
		path := filepath.Join(dir, name)
		if st, err := os.Stat(path); err == nil && st.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

// ── Reconcile ──────────────────────────────────────────────

// Reconcile moves the shards of one table from sourceDir into
// outputRoot/<table>/part-<i-1>.<ext>.
//
// Nothing is moved unless every check passes: the table directory must not
// exist (ErrOutputAlreadyExists), shard 1 must exist (ErrPathNotFound), and the
// shards found must be contiguous (ErrPartitionGap). Only tables registered
// as written once may stop short of partitions; for any other table a missing
// trailing shard is ErrPartitionGap too.
//
// A failed move puts every already-moved file back and removes the table
// directory, so the call can be retried.
func (r *Reconciler) Reconcile(table, ext, sourceDir, outputRoot string, partitions int) (*domain.ReconcileReport, error) {
	if partitions < 1 {
		return nil, fmt.Errorf("reconcile %s: partitions must be >= 1, got %d", table, partitions)
	}
	dest := filepath.Join(outputRoot, table)
	if err := EnsureAbsent(dest); err != nil {
		return nil, fmt.Errorf("reconcile %s: %w", table, err)
	}

	var sources []string
	missing := 0
	for i := 1; i <= partitions; i++ {
		path, ok := locate(sourceDir, table, ext, i, partitions)
		if !ok {
			if missing == 0 {
				missing = i
			}
			continue
		}
		if missing != 0 {
			return nil, fmt.Errorf("reconcile %s: shard %d of %d missing but shard %d present: %w",
				table, missing, partitions, i, domain.ErrPartitionGap)
		}
		sources = append(sources, path)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("reconcile %s: no generator output in %s: %w", table, sourceDir, domain.ErrPathNotFound)
	}
	if len(sources) < partitions {
		if !r.fixed[table] {
			return nil, fmt.Errorf("reconcile %s: found %d of %d shards: %w",
				table, len(sources), partitions, domain.ErrPartitionGap)
		}
		r.log.Debug("table written once", "table", table, "found", len(sources), "partitions", partitions)
	}

	if err := os.MkdirAll(outputRoot, 0o755); err != nil {
		return nil, fmt.Errorf("reconcile %s: create output root: %w", table, err)
	}
	if err := os.Mkdir(dest, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("reconcile %s: %s: %w", table, dest, domain.ErrOutputAlreadyExists)
		}
		return nil, fmt.Errorf("reconcile %s: create table dir: %w", table, err)
	}

	report := &domain.ReconcileReport{Table: table, Dir: dest}
	for i, src := range sources {
		to := filepath.Join(dest, domain.PartFileName(i, ext))
		if err := moveFile(src, to); err != nil {
			r.rollback(report.Moves, dest)
			return nil, fmt.Errorf("reconcile %s: move %s: %w", table, src, err)
		}
		r.log.Debug("mv", "from", src, "to", to)
		report.Moves = append(report.Moves, domain.FileMove{From: src, To: to})
	}

	parts, err := Inspect(dest, ext)
	if err != nil {
		return nil, fmt.Errorf("reconcile %s: %w", table, err)
	}
	report.Partitions = parts
	return report, nil
}

func (r *Reconciler) rollback(moves []domain.FileMove, dest string) {
	for i := len(moves) - 1; i >= 0; i-- {
		if err := moveFile(moves[i].To, moves[i].From); err != nil {
			r.log.Error("rollback move failed", "from", moves[i].To, "to", moves[i].From, "error", err)
		}
	}
	if err := os.Remove(dest); err != nil {
		r.log.Error("rollback remove failed", "dir", dest, "error", err)
	}
}

// EnsureAbsent fails with ErrOutputAlreadyExists when path exists in any form.
func EnsureAbsent(path string) error {
	_, err := os.Lstat(path)
	if err == nil {
		return fmt.Errorf("%s: %w", path, domain.ErrOutputAlreadyExists)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("stat %s: %w", path, err)
}

var rename = os.Rename

// moveFile renames src to dst, copying across filesystems when rename cannot.
func moveFile(src, dst string) error {
	err := rename(src, dst)
	if err == nil || !errors.Is(err, syscall.EXDEV) {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}
	return os.Remove(src)
}

// ── Inspect ────────────────────────────────────────────────

// Inspect lists the canonical partitions of a table directory, ordered by
// index. The indices must run 0..n-1 without gaps (ErrPartitionGap). A missing
// directory, or one without any part file, is ErrPathNotFound. Other entries,
// such as staging directories, are ignored.
func Inspect(tableDir, ext string) ([]domain.Partition, error) {
	entries, err := os.ReadDir(tableDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", tableDir, domain.ErrPathNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", tableDir, err)
	}

	table := filepath.Base(tableDir)
	var parts []domain.Partition
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		i, ok := domain.ParsePartFileName(e.Name(), ext)
		if !ok {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		parts = append(parts, domain.Partition{
			Table: table,
			Index: i,
			Path:  filepath.Join(tableDir, e.Name()),
			Size:  info.Size(),
		})
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%s: no part-*.%s files: %w", tableDir, ext, domain.ErrPathNotFound)
	}

	sort.Slice(parts, func(a, b int) bool { return parts[a].Index < parts[b].Index })
	for want, p := range parts {
		if p.Index != want {
			return nil, fmt.Errorf("%s: expected part-%d.%s, found part-%d.%s: %w",
				tableDir, want, ext, p.Index, ext, domain.ErrPartitionGap)
		}
	}
	return parts, nil
}
