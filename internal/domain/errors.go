package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every pipeline stage. Callers match with errors.Is;
// the wrapping error carries the table, partition, or offending value.
var (
	ErrPathNotFound           = errors.New("path not found")
	ErrOutputAlreadyExists    = errors.New("output already exists")
	ErrUnsupportedFormat      = errors.New("unsupported format")
	ErrUnsupportedCompression = errors.New("unsupported compression")
	ErrWorkerFailure          = errors.New("generator worker failed")
	ErrConversionTaskFailure  = errors.New("conversion task failed")
	ErrUnknownTable           = errors.New("unknown table")
	ErrUnknownBenchmark       = errors.New("unknown benchmark")
	ErrPartitionGap           = errors.New("partition layout is not contiguous")
)

// CoercionError reports a delimited value that does not fit its column type.
type CoercionError struct {
	Table     string
	Partition int
	Row       int64 // 1-based line number inside the partition file
	Column    string
	Type      FieldType
	Value     string
	Err       error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("%s partition %d line %d column %s (%s): cannot coerce %q: %v",
		e.Table, e.Partition, e.Row, e.Column, e.Type, e.Value, e.Err)
}

func (e *CoercionError) Unwrap() error { return e.Err }
