package etl

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"tpctools/internal/domain"
)

// ── Parquet ────────────────────────────────────────────────

func init() { RegisterFormat(domain.FormatColumnar, newParquetFile) }

// ParquetCompression maps a codec onto the parquet writer's compression and
// level. Level 0 selects the codec's default.
func ParquetCompression(c domain.Codec) (compress.Compression, int, error) {
	level := compress.DefaultCompressionLevel
	if c.Level > 0 {
		level = c.Level
	}
	switch c.Algorithm {
	case domain.CodecNone:
		return compress.Codecs.Uncompressed, level, nil
	case domain.CodecSnappy:
		return compress.Codecs.Snappy, level, nil
	case domain.CodecGzip:
		return compress.Codecs.Gzip, level, nil
	case domain.CodecBrotli:
		return compress.Codecs.Brotli, level, nil
	case domain.CodecLz4:
		// Hadoop-framed LZ4 is not writable; raw LZ4 is the portable variant.
		return compress.Codecs.Lz4Raw, level, nil
	case domain.CodecZstd:
		return compress.Codecs.Zstd, level, nil
	}
	return compress.Codecs.Uncompressed, 0, fmt.Errorf("%w: %q", domain.ErrUnsupportedCompression, c.Name)
}

type parquetFile struct {
	f  *os.File
	fw *pqarrow.FileWriter
}

func newParquetFile(path string, schema *arrow.Schema, codec domain.Codec) (FileWriter, error) {
	comp, level, err := ParquetCompression(codec)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	props := parquet.NewWriterProperties(
		parquet.WithCompression(comp),
		parquet.WithCompressionLevel(level),
		parquet.WithCreatedBy("tpctools"),
	)
	fw, err := pqarrow.NewFileWriter(schema, f, props, pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema()))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create parquet writer: %w", err)
	}
	return &parquetFile{f: f, fw: fw}, nil
}

func (p *parquetFile) Write(rec arrow.Record) error { return p.fw.Write(rec) }

func (p *parquetFile) Close() error {
	err := p.fw.Close()
	// the parquet writer closes its sink; closing again is harmless
	if cerr := p.f.Close(); cerr != nil && !errors.Is(cerr, os.ErrClosed) && err == nil {
		err = cerr
	}
	return err
}

// ReadParquet loads a whole parquet file as an arrow table. The caller must
// Release the table.
func ReadParquet(ctx context.Context, path string, mem memory.Allocator) (arrow.Table, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tbl, err := pqarrow.ReadTable(ctx, f, parquet.NewReaderProperties(mem), pqarrow.ArrowReadProperties{BatchSize: int64(domain.DefaultBatchSize)}, mem)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return tbl, nil
}

// ParquetRowCount reads the row count from a parquet footer without
// decoding any pages.
func ParquetRowCount(path string) (int64, error) {
	rdr, err := file.OpenParquetFile(path, false)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer rdr.Close()
	return rdr.NumRows(), nil
}
