package etl

import (
	"github.com/apache/arrow-go/v18/arrow"
)

// ── Source ──────────────────────────────────────────────────
// A Source yields typed record batches for one partition file.
// Implementations live in etl/sources/.

// Source streams record batches. Next returns io.EOF after the last batch.
// Each returned record is owned by the caller, who must Release it.
type Source interface {
	Schema() *arrow.Schema
	Next() (arrow.Record, error)
	// Rows is the number of rows emitted so far.
	Rows() int64
	Close() error
}
