// Package sources holds the readers that turn generator output into typed
// record batches.
package sources

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"tpctools/internal/domain"
	"tpctools/internal/etl"
)

// ── Delimited Source ───────────────────────────────────────
// Reads pipe-delimited generator output (no header, trailing delimiter)
// against a fixed table schema.

// DefaultDelimiter separates columns in dbgen and dsdgen output.
const DefaultDelimiter = '|'

const dateLayout = "2006-01-02"

var errEmptyValue = errors.New("empty value in non-nullable column")

// Options configures a delimited source.
type Options struct {
	Delimiter rune // defaults to '|'
	BatchSize int  // defaults to domain.DefaultBatchSize
	Partition int  // reported in coercion errors
	Allocator memory.Allocator
}

// Delimited is an etl.Source over one delimited file.
type Delimited struct {
	table     domain.Table
	schema    *arrow.Schema
	reader    *csv.Reader
	closer    io.Closer
	builder   *array.RecordBuilder
	batchSize int
	partition int
	line      int64
	rows      int64
	done      bool
}

var _ etl.Source = (*Delimited)(nil)

// Open opens path as a delimited source for table.
func Open(path string, table domain.Table, opts Options) (*Delimited, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	src, err := NewDelimited(bufio.NewReaderSize(f, 1<<20), table, opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	src.closer = f
	return src, nil
}

// NewDelimited reads delimited rows from r.
func NewDelimited(r io.Reader, table domain.Table, opts Options) (*Delimited, error) {
	schema, err := etl.ArrowSchema(table)
	if err != nil {
		return nil, err
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = DefaultDelimiter
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = domain.DefaultBatchSize
	}
	if opts.Allocator == nil {
		opts.Allocator = memory.NewGoAllocator()
	}

	cr := csv.NewReader(r)
	cr.Comma = opts.Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	return &Delimited{
		table:     table,
		schema:    schema,
		reader:    cr,
		builder:   array.NewRecordBuilder(opts.Allocator, schema),
		batchSize: opts.BatchSize,
		partition: opts.Partition,
	}, nil
}

func (d *Delimited) Schema() *arrow.Schema { return d.schema }

func (d *Delimited) Rows() int64 { return d.rows }

// Next parses up to BatchSize rows into a record.
func (d *Delimited) Next() (arrow.Record, error) {
	if d.done {
		return nil, io.EOF
	}
	n := 0
	for n < d.batchSize {
		fields, err := d.reader.Read()
		if err == io.EOF {
			d.done = true
			break
		}
		d.line++
		if err != nil {
			return nil, fmt.Errorf("%s partition %d line %d: %w", d.table.Name, d.partition, d.line, err)
		}
		if err := d.appendRow(fields); err != nil {
			return nil, err
		}
		n++
	}
	if n == 0 {
		return nil, io.EOF
	}
	d.rows += int64(n)
	return d.builder.NewRecord(), nil
}

func (d *Delimited) appendRow(fields []string) error {
	want := len(d.table.Fields)
	// generators terminate every row with the delimiter
	if len(fields) == want+1 && fields[want] == "" {
		fields = fields[:want]
	}
	if len(fields) != want {
		return fmt.Errorf("%s partition %d line %d: expected %d columns, got %d",
			d.table.Name, d.partition, d.line, want, len(fields))
	}
	for i, f := range d.table.Fields {
		if err := appendValue(d.builder.Field(i), f, fields[i]); err != nil {
			return &domain.CoercionError{
				Table:     d.table.Name,
				Partition: d.partition,
				Row:       d.line,
				Column:    f.Name,
				Type:      f.Type,
				Value:     fields[i],
				Err:       err,
			}
		}
	}
	return nil
}

func appendValue(b array.Builder, f domain.Field, raw string) error {
	if f.Type.Kind == domain.KindUtf8 {
		if raw == "" && f.Nullable {
			b.AppendNull()
			return nil
		}
		b.(*array.StringBuilder).Append(raw)
		return nil
	}

	s := strings.TrimSpace(raw)
	if s == "" {
		if !f.Nullable {
			return errEmptyValue
		}
		b.AppendNull()
		return nil
	}

	switch f.Type.Kind {
	case domain.KindInt32:
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return err
		}
		b.(*array.Int32Builder).Append(int32(v))
	case domain.KindInt64:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		b.(*array.Int64Builder).Append(v)
	case domain.KindFloat64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		b.(*array.Float64Builder).Append(v)
	case domain.KindDate32:
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return err
		}
		b.(*array.Date32Builder).Append(arrow.Date32FromTime(t))
	case domain.KindDecimal:
		v, err := decimal128.FromString(s, f.Type.Precision, f.Type.Scale)
		if err != nil {
			return err
		}
		b.(*array.Decimal128Builder).Append(v)
	default:
		return fmt.Errorf("unsupported column type %q", f.Type.Kind)
	}
	return nil
}

// Close releases the builder and the underlying file.
func (d *Delimited) Close() error {
	if d.builder != nil {
		d.builder.Release()
		d.builder = nil
	}
	if d.closer != nil {
		err := d.closer.Close()
		d.closer = nil
		return err
	}
	return nil
}
