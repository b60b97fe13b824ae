package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Format is the output file format of a conversion.
type Format string

const (
	FormatRow      Format = "row"      // pipe-delimited text
	FormatColumnar Format = "columnar" // parquet
)

// ParseFormat accepts both the generic names and the concrete file formats.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row", "csv":
		return FormatRow, nil
	case "columnar", "parquet":
		return FormatColumnar, nil
	}
	return "", fmt.Errorf("%w: %q (want row|columnar)", ErrUnsupportedFormat, s)
}

// Ext is the extension of files written in this format.
func (f Format) Ext() string {
	if f == FormatColumnar {
		return "parquet"
	}
	return "csv"
}

// CodecAlgorithm is a closed enumeration of the compression algorithms the
// columnar writer supports.
type CodecAlgorithm string

const (
	CodecNone   CodecAlgorithm = "none"
	CodecSnappy CodecAlgorithm = "snappy"
	CodecGzip   CodecAlgorithm = "gzip"
	CodecBrotli CodecAlgorithm = "brotli"
	CodecLz4    CodecAlgorithm = "lz4"
	CodecZstd   CodecAlgorithm = "zstd"
)

// MaxStrongLevel is the highest zstd level reachable through "strong-N".
const MaxStrongLevel = 22

// Codec is a parsed compression identifier. Level 0 means the algorithm's default.
type Codec struct {
	Name      string         `json:"name"`
	Algorithm CodecAlgorithm `json:"algorithm"`
	Level     int            `json:"level,omitempty"`
}

// ParseCodec maps a compression identifier onto a Codec:
//
//	none, uncompressed          -> no compression
//	fast, snappy                -> snappy
//	balanced, zstd              -> zstd at its default level
//	strong-1 .. strong-22       -> zstd at that level
//	gzip, brotli, lz4           -> as named
//
// Anything else, including "lzo", fails with ErrUnsupportedCompression.
func ParseCodec(s string) (Codec, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	c := Codec{Name: name}
	switch name {
	case "none", "uncompressed":
		c.Algorithm = CodecNone
	case "fast", "snappy":
		c.Algorithm = CodecSnappy
	case "balanced", "zstd":
		c.Algorithm = CodecZstd
	case "gzip":
		c.Algorithm = CodecGzip
	case "brotli":
		c.Algorithm = CodecBrotli
	case "lz4":
		c.Algorithm = CodecLz4
	default:
		level, ok := strings.CutPrefix(name, "strong-")
		if !ok {
			return Codec{}, fmt.Errorf("%w: %q", ErrUnsupportedCompression, s)
		}
		n, err := strconv.Atoi(level)
		if err != nil || n < 1 || n > MaxStrongLevel {
			return Codec{}, fmt.Errorf("%w: %q (strong level must be 1..%d)", ErrUnsupportedCompression, s, MaxStrongLevel)
		}
		c.Algorithm = CodecZstd
		c.Level = n
	}
	return c, nil
}

func (c Codec) String() string {
	if c.Level > 0 {
		return fmt.Sprintf("%s(level=%d)", c.Algorithm, c.Level)
	}
	return string(c.Algorithm)
}
