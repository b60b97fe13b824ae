package etl

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/apache/arrow-go/v18/arrow"

	"tpctools/internal/domain"
)

// ── Destination ────────────────────────────────────────────
// A Destination writes record batches into a directory, rolling over to a
// new file every MaxRowsPerFile rows. Files are named data-<n>.<ext>.

// FileWriter writes one output file.
type FileWriter interface {
	Write(rec arrow.Record) error
	Close() error
}

// FileWriterFactory opens a FileWriter at path.
type FileWriterFactory func(path string, schema *arrow.Schema, codec domain.Codec) (FileWriter, error)

var (
	registryMu sync.RWMutex
	registry   = map[domain.Format]FileWriterFactory{}
)

// RegisterFormat registers the file writer of a format.
// Called from init() in each format implementation file.
func RegisterFormat(f domain.Format, factory FileWriterFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[f] = factory
}

func lookupFormat(f domain.Format) (FileWriterFactory, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	factory, ok := registry[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, f)
	}
	return factory, nil
}

// ValidateOutput checks that a format and codec can be written, without
// touching the filesystem.
func ValidateOutput(f domain.Format, c domain.Codec) error {
	if _, err := lookupFormat(f); err != nil {
		return err
	}
	if f == domain.FormatColumnar {
		if _, _, err := ParquetCompression(c); err != nil {
			return err
		}
	}
	return nil
}

// DestinationOptions configures a Destination.
type DestinationOptions struct {
	Format         domain.Format
	Codec          domain.Codec
	MaxRowsPerFile int64 // 0 means a single file
}

// Destination writes batches into Dir.
type Destination struct {
	dir     string
	schema  *arrow.Schema
	opts    DestinationOptions
	factory FileWriterFactory

	cur     FileWriter
	curRows int64
	files   []string
	rows    int64
}

// NewDestination prepares a destination in dir, which must already exist.
// No file is created until the first Write.
func NewDestination(dir string, schema *arrow.Schema, opts DestinationOptions) (*Destination, error) {
	factory, err := lookupFormat(opts.Format)
	if err != nil {
		return nil, err
	}
	if opts.MaxRowsPerFile < 0 {
		return nil, fmt.Errorf("max rows per file must be >= 0")
	}
	return &Destination{dir: dir, schema: schema, opts: opts, factory: factory}, nil
}

// Write appends rec, splitting it across files when it crosses the row limit.
func (d *Destination) Write(rec arrow.Record) error {
	var off int64
	n := rec.NumRows()
	for off < n {
		if d.cur == nil {
			if err := d.open(); err != nil {
				return err
			}
		}
		take := n - off
		if limit := d.opts.MaxRowsPerFile; limit > 0 && d.curRows+take > limit {
			take = limit - d.curRows
		}

		part := rec
		if off != 0 || take != n {
			part = rec.NewSlice(off, off+take)
		}
		err := d.cur.Write(part)
		if part != rec {
			part.Release()
		}
		if err != nil {
			return fmt.Errorf("write %s: %w", d.files[len(d.files)-1], err)
		}

		off += take
		d.curRows += take
		d.rows += take
		if limit := d.opts.MaxRowsPerFile; limit > 0 && d.curRows >= limit {
			if err := d.closeCurrent(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Destination) open() error {
	path := filepath.Join(d.dir, fmt.Sprintf("data-%d.%s", len(d.files), d.opts.Format.Ext()))
	w, err := d.factory(path, d.schema, d.opts.Codec)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	d.cur = w
	d.curRows = 0
	d.files = append(d.files, path)
	return nil
}

func (d *Destination) closeCurrent() error {
	if d.cur == nil {
		return nil
	}
	err := d.cur.Close()
	d.cur = nil
	if err != nil {
		return fmt.Errorf("close %s: %w", d.files[len(d.files)-1], err)
	}
	return nil
}

// Close finishes the current file. A destination that received no rows
// still produces one empty file so the partition stays visible.
func (d *Destination) Close() error {
	if len(d.files) == 0 {
		if err := d.open(); err != nil {
			return err
		}
	}
	return d.closeCurrent()
}

// Files lists the paths written, in creation order.
func (d *Destination) Files() []string { return d.files }

// Rows is the number of rows written across all files.
func (d *Destination) Rows() int64 { return d.rows }

// Abort closes the current file and removes everything written.
func (d *Destination) Abort() {
	d.closeCurrent()
	for _, f := range d.files {
		os.Remove(f)
	}
	d.files = nil
}
