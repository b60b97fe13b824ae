package sources_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpctools/internal/domain"
	"tpctools/internal/etl"
	"tpctools/internal/etl/sources"
)

var region = domain.Table{
	Name: "region",
	Fields: []domain.Field{
		{Name: "r_regionkey", Type: domain.Int64},
		{Name: "r_name", Type: domain.Utf8},
		{Name: "r_comment", Type: domain.Utf8},
	},
}

func TestDelimited_BatchesAndTrailingDelimiter(t *testing.T) {
	input := "0|AFRICA|lar deposits|\n1|AMERICA|hs use ironic|\n2|ASIA|ges. thinly|\n"
	src, err := sources.NewDelimited(strings.NewReader(input), region, sources.Options{BatchSize: 2})
	require.NoError(t, err)
	defer src.Close()

	rec, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(2), rec.NumRows())
	assert.Equal(t, "AMERICA", etl.FormatValue(rec.Column(1), 1))
	rec.Release()

	rec, err = src.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.NumRows())
	assert.Equal(t, "2", etl.FormatValue(rec.Column(0), 0))
	rec.Release()

	_, err = src.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, int64(3), src.Rows())
}

func TestDelimited_CoercionErrorNamesValue(t *testing.T) {
	input := "0|AFRICA|x|\nNaN-key|AMERICA|y|\n"
	src, err := sources.NewDelimited(strings.NewReader(input), region, sources.Options{Partition: 7})
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Next()
	require.Error(t, err)
	var ce *domain.CoercionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "region", ce.Table)
	assert.Equal(t, 7, ce.Partition)
	assert.Equal(t, int64(2), ce.Row)
	assert.Equal(t, "r_regionkey", ce.Column)
	assert.Equal(t, "NaN-key", ce.Value)
	assert.Contains(t, err.Error(), "NaN-key")
}

func TestDelimited_EmptyNonNullable(t *testing.T) {
	src, err := sources.NewDelimited(strings.NewReader("|AFRICA|x|\n"), region, sources.Options{})
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Next()
	var ce *domain.CoercionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "r_regionkey", ce.Column)
}

func TestDelimited_EmptyStringNonNullableIsEmpty(t *testing.T) {
	src, err := sources.NewDelimited(strings.NewReader("4||x|\n"), region, sources.Options{})
	require.NoError(t, err)
	defer src.Close()

	rec, err := src.Next()
	require.NoError(t, err)
	defer rec.Release()
	assert.False(t, rec.Column(1).IsNull(0))
	assert.Equal(t, "", etl.FormatValue(rec.Column(1), 0))
}

func TestDelimited_WrongColumnCount(t *testing.T) {
	src, err := sources.NewDelimited(strings.NewReader("0|AFRICA\n"), region, sources.Options{})
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 3 columns, got 2")
}

func TestDelimited_BadDecimalAndDate(t *testing.T) {
	tbl := domain.Table{Name: "t", Fields: []domain.Field{
		{Name: "amt", Type: domain.Decimal(5, 2), Nullable: true},
		{Name: "day", Type: domain.Date32, Nullable: true},
	}}
	for _, input := range []string{"12345.67|2001-01-01|\n", "1.00|2001-13-01|\n"} {
		src, err := sources.NewDelimited(strings.NewReader(input), tbl, sources.Options{})
		require.NoError(t, err)
		_, err = src.Next()
		var ce *domain.CoercionError
		assert.True(t, errors.As(err, &ce), input)
		src.Close()
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := sources.Open(filepath.Join(t.TempDir(), "part-0.tbl"), region, sources.Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
