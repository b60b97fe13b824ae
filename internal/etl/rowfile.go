package etl

import (
	"bufio"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/csv"

	"tpctools/internal/domain"
)

// ── Row format ─────────────────────────────────────────────
// Pipe-delimited text, no header, nulls as empty fields. The codec is
// accepted for symmetry with the columnar format but not applied.

func init() { RegisterFormat(domain.FormatRow, newRowFile) }

type rowFile struct {
	f  *os.File
	bw *bufio.Writer
	w  *csv.Writer
}

func newRowFile(path string, schema *arrow.Schema, _ domain.Codec) (FileWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	bw := bufio.NewWriterSize(f, 1<<20)
	w := csv.NewWriter(bw, schema,
		csv.WithComma('|'),
		csv.WithHeader(false),
		csv.WithNullWriter(""),
	)
	return &rowFile{f: f, bw: bw, w: w}, nil
}

func (r *rowFile) Write(rec arrow.Record) error { return r.w.Write(rec) }

func (r *rowFile) Close() error {
	err := r.w.Flush()
	if ferr := r.bw.Flush(); err == nil {
		err = ferr
	}
	if cerr := r.f.Close(); err == nil {
		err = cerr
	}
	return err
}
