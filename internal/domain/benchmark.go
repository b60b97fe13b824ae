package domain

import (
	"fmt"
	"strings"
)

// Benchmark identifies which TPC suite a dataset belongs to.
type Benchmark string

const (
	BenchmarkTPCH  Benchmark = "tpch"
	BenchmarkTPCDS Benchmark = "tpcds"
)

// ParseBenchmark accepts the CLI spelling of a benchmark ("tpch", "TPC-H", "tpcds", ...).
func ParseBenchmark(s string) (Benchmark, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	switch norm {
	case "tpch", "h":
		return BenchmarkTPCH, nil
	case "tpcds", "ds":
		return BenchmarkTPCDS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBenchmark, s)
}

// Ext is the file extension the benchmark's generator writes (without the dot).
func (b Benchmark) Ext() string {
	if b == BenchmarkTPCDS {
		return "dat"
	}
	return "tbl"
}

// Generator is the executable name expected inside the generator directory.
func (b Benchmark) Generator() string {
	if b == BenchmarkTPCDS {
		return "dsdgen"
	}
	return "dbgen"
}

func (b Benchmark) String() string {
	switch b {
	case BenchmarkTPCH:
		return "TPC-H"
	case BenchmarkTPCDS:
		return "TPC-DS"
	}
	return string(b)
}
