package etl_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpctools/internal/domain"
	"tpctools/internal/etl"
	"tpctools/internal/etl/sources"
)

var mixed = domain.Table{
	Name: "mixed",
	Fields: []domain.Field{
		{Name: "id", Type: domain.Int32},
		{Name: "price", Type: domain.Decimal(7, 2), Nullable: true},
		{Name: "day", Type: domain.Date32, Nullable: true},
		{Name: "label", Type: domain.Utf8, Nullable: true},
		{Name: "qty", Type: domain.Float64},
		{Name: "big", Type: domain.Int64},
	},
}

const mixedRows = "1|12.50|1998-01-02|alpha|1.5|10|\n" +
	"2||||2.25|20|\n" +
	"3|-0.01|2000-02-29|gamma delta|0|30|\n"

// row is a decoded output row; nil marks a null.
type row []*string

func str(s string) *string { return &s }

// readRows decodes every record of every table into rows.
func readRows(t *testing.T, tables ...arrow.Table) []row {
	t.Helper()
	var out []row
	for _, tbl := range tables {
		tr := array.NewTableReader(tbl, -1)
		for tr.Next() {
			rec := tr.Record()
			for i := 0; i < int(rec.NumRows()); i++ {
				r := make(row, rec.NumCols())
				for c, col := range rec.Columns() {
					if !col.IsNull(i) {
						r[c] = str(etl.FormatValue(col, i))
					}
				}
				out = append(out, r)
			}
		}
		tr.Release()
	}
	return out
}

func convert(t *testing.T, table domain.Table, input string, opts etl.DestinationOptions, batch int) *etl.Destination {
	t.Helper()
	src, err := sources.NewDelimited(strings.NewReader(input), table, sources.Options{BatchSize: batch})
	require.NoError(t, err)
	defer src.Close()

	dest, err := etl.NewDestination(t.TempDir(), src.Schema(), opts)
	require.NoError(t, err)
	for {
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		require.NoError(t, dest.Write(rec))
		rec.Release()
	}
	require.NoError(t, dest.Close())
	assert.Equal(t, src.Rows(), dest.Rows())
	return dest
}

func TestRoundTrip_Parquet(t *testing.T) {
	codec, err := domain.ParseCodec("strong-3")
	require.NoError(t, err)
	dest := convert(t, mixed, mixedRows, etl.DestinationOptions{Format: domain.FormatColumnar, Codec: codec}, 2)
	require.Len(t, dest.Files(), 1)

	tbl, err := etl.ReadParquet(context.Background(), dest.Files()[0], nil)
	require.NoError(t, err)
	defer tbl.Release()

	assert.Equal(t, int64(3), tbl.NumRows())
	assert.Equal(t, arrow.PrimitiveTypes.Int32, tbl.Schema().Field(0).Type)
	assert.Equal(t, &arrow.Decimal128Type{Precision: 7, Scale: 2}, tbl.Schema().Field(1).Type)
	assert.Equal(t, arrow.FixedWidthTypes.Date32, tbl.Schema().Field(2).Type)
	assert.False(t, tbl.Schema().Field(0).Nullable)
	assert.True(t, tbl.Schema().Field(3).Nullable)

	rows := readRows(t, tbl)
	require.Len(t, rows, 3)
	assert.Equal(t, row{str("1"), str("12.50"), str("1998-01-02"), str("alpha"), str("1.5"), str("10")}, rows[0])
	assert.Equal(t, row{str("2"), nil, nil, nil, str("2.25"), str("20")}, rows[1])
	assert.Equal(t, row{str("3"), str("-0.01"), str("2000-02-29"), str("gamma delta"), str("0"), str("30")}, rows[2])

	n, err := etl.ParquetRowCount(dest.Files()[0])
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestDestination_RollsOverAtMaxRows(t *testing.T) {
	codec, _ := domain.ParseCodec("fast")
	dest := convert(t, mixed, mixedRows, etl.DestinationOptions{Format: domain.FormatColumnar, Codec: codec, MaxRowsPerFile: 2}, 3)
	require.Len(t, dest.Files(), 2)
	assert.Equal(t, "data-0.parquet", filepath.Base(dest.Files()[0]))

	var tables []arrow.Table
	for _, f := range dest.Files() {
		tbl, err := etl.ReadParquet(context.Background(), f, nil)
		require.NoError(t, err)
		defer tbl.Release()
		tables = append(tables, tbl)
	}
	assert.Equal(t, int64(2), tables[0].NumRows())
	assert.Equal(t, int64(1), tables[1].NumRows())
	assert.Len(t, readRows(t, tables...), 3)
}

func TestDestination_RowFormat(t *testing.T) {
	codec, _ := domain.ParseCodec("none")
	dest := convert(t, mixed, mixedRows, etl.DestinationOptions{Format: domain.FormatRow, Codec: codec}, 8)
	require.Len(t, dest.Files(), 1)
	assert.Equal(t, ".csv", filepath.Ext(dest.Files()[0]))

	data, err := os.ReadFile(dest.Files()[0])
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "2||||2.25|20", lines[1])

	// the row output parses back against the same schema
	src, err := sources.NewDelimited(strings.NewReader(string(data)), mixed, sources.Options{})
	require.NoError(t, err)
	defer src.Close()
	rec, err := src.Next()
	require.NoError(t, err)
	defer rec.Release()
	assert.Equal(t, int64(3), rec.NumRows())
	assert.Equal(t, "gamma delta", etl.FormatValue(rec.Column(3), 2))
}

func TestDestination_EmptyInputStillWritesFile(t *testing.T) {
	codec, _ := domain.ParseCodec("snappy")
	dest := convert(t, mixed, "", etl.DestinationOptions{Format: domain.FormatColumnar, Codec: codec}, 8)
	require.Len(t, dest.Files(), 1)
	n, err := etl.ParquetRowCount(dest.Files()[0])
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestValidateOutput(t *testing.T) {
	for _, name := range []string{"none", "fast", "balanced", "strong-22", "gzip", "brotli", "lz4", "zstd"} {
		codec, err := domain.ParseCodec(name)
		require.NoError(t, err, name)
		assert.NoError(t, etl.ValidateOutput(domain.FormatColumnar, codec), name)
	}
	assert.ErrorIs(t, etl.ValidateOutput(domain.Format("orc"), domain.Codec{Algorithm: domain.CodecNone}), domain.ErrUnsupportedFormat)
	assert.ErrorIs(t, etl.ValidateOutput(domain.FormatColumnar, domain.Codec{Name: "lzo", Algorithm: "lzo"}), domain.ErrUnsupportedCompression)
}

func TestArrowSchema_TableMetadata(t *testing.T) {
	schema, err := etl.ArrowSchema(mixed)
	require.NoError(t, err)
	assert.Equal(t, 6, schema.NumFields())
	v, ok := schema.Metadata().GetValue("table")
	assert.True(t, ok)
	assert.Equal(t, "mixed", v)

	_, err = etl.ArrowSchema(domain.Table{Name: "bad", Fields: []domain.Field{{Name: "d", Type: domain.Decimal(40, 2)}}})
	assert.Error(t, err)
}
