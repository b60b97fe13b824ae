package convert_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpctools/internal/convert"
	"tpctools/internal/domain"
	"tpctools/internal/etl"
	"tpctools/internal/logging"
	"tpctools/internal/reconcile"
	"tpctools/internal/schema"
)

func regionTable(t *testing.T) domain.Table {
	t.Helper()
	tbl, err := schema.Default().SchemaFor(domain.BenchmarkTPCH, "region")
	require.NoError(t, err)
	return tbl
}

// writeParts creates <dir>/region/part-<i>.tbl for each body.
func writeParts(t *testing.T, bodies ...string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "region")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for i, b := range bodies {
		require.NoError(t, os.WriteFile(filepath.Join(dir, domain.PartFileName(i, "tbl")), []byte(b), 0o644))
	}
	return dir
}

func regionRows(start, n int) string {
	var sb strings.Builder
	for i := start; i < start+n; i++ {
		fmt.Fprintf(&sb, "%d|REGION-%d|comment for %d|\n", i, i, i)
	}
	return sb.String()
}

func newJob(t *testing.T, tbl domain.Table, input string) domain.ConversionJob {
	t.Helper()
	codec, err := domain.ParseCodec("fast")
	require.NoError(t, err)
	return domain.ConversionJob{
		Benchmark:   domain.BenchmarkTPCH,
		Table:       tbl,
		InputDir:    input,
		InputExt:    "tbl",
		OutputDir:   filepath.Join(t.TempDir(), "out", tbl.Name),
		Format:      domain.FormatColumnar,
		Codec:       codec,
		BatchSize:   2,
		Concurrency: 2,
	}
}

func TestConvertTable_RegionScenario(t *testing.T) {
	input := writeParts(t, "0|AFRICA|lar deposits|\n1|AMERICA|hs use ironic|\n2|ASIA|ges. thinly even|\n")
	job := newJob(t, regionTable(t), input)

	report, err := convert.NewEngine(logging.Discard()).ConvertTable(context.Background(), job)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSucceeded, report.Status)
	assert.Equal(t, int64(3), report.Rows)
	assert.Equal(t, 1, report.Files)

	entries, err := os.ReadDir(job.OutputDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "part-0.parquet", entries[0].Name())

	tbl, err := etl.ReadParquet(context.Background(), filepath.Join(job.OutputDir, "part-0.parquet"), nil)
	require.NoError(t, err)
	defer tbl.Release()
	require.Equal(t, int64(3), tbl.NumRows())

	tr := array.NewTableReader(tbl, -1)
	defer tr.Release()
	require.True(t, tr.Next())
	rec := tr.Record()
	keys, ok := rec.Column(0).(*array.Int64)
	require.True(t, ok, "r_regionkey should read back as int64")
	names, ok := rec.Column(1).(*array.String)
	require.True(t, ok)
	assert.Equal(t, []int64{0, 1, 2}, keys.Int64Values())
	assert.Equal(t, "ASIA", names.Value(2))
	assert.Equal(t, "ges. thinly even", etl.FormatValue(rec.Column(2), 2))
}

func TestConvertTable_TransitionsInOrder(t *testing.T) {
	input := writeParts(t, regionRows(0, 5))
	job := newJob(t, regionTable(t), input)

	var mu sync.Mutex
	var states []domain.TaskState
	e := convert.NewEngine(logging.Discard())
	e.OnTransition = func(tr convert.Transition) {
		mu.Lock()
		states = append(states, tr.To)
		mu.Unlock()
	}

	_, err := e.ConvertTable(context.Background(), job)
	require.NoError(t, err)
	assert.Equal(t, []domain.TaskState{
		domain.TaskReading, domain.TaskParsing, domain.TaskBatching,
		domain.TaskWritingStaging, domain.TaskPromoting, domain.TaskDone,
	}, states)
}

func TestConvertTable_ConcurrencyBound(t *testing.T) {
	bodies := make([]string, 10)
	for i := range bodies {
		bodies[i] = regionRows(i*500, 500)
	}
	input := writeParts(t, bodies...)
	job := newJob(t, regionTable(t), input)
	job.Concurrency = 2
	job.BatchSize = 50

	var mu sync.Mutex
	writing, peak := 0, 0
	e := convert.NewEngine(logging.Discard())
	e.OnTransition = func(tr convert.Transition) {
		mu.Lock()
		if tr.To == domain.TaskWritingStaging {
			writing++
			if writing > peak {
				peak = writing
			}
		}
		if tr.From == domain.TaskWritingStaging {
			writing--
		}
		mu.Unlock()
		// widen the window so overlapping tasks are observed
		if tr.To == domain.TaskWritingStaging {
			time.Sleep(5 * time.Millisecond)
		}
	}

	report, err := e.ConvertTable(context.Background(), job)
	require.NoError(t, err)
	assert.LessOrEqual(t, peak, 2)
	assert.GreaterOrEqual(t, peak, 1)
	assert.Equal(t, int64(5000), report.Rows)

	parts, err := reconcile.Inspect(job.OutputDir, "parquet")
	require.NoError(t, err)
	assert.Len(t, parts, 10)

	var total int64
	for _, p := range parts {
		n, err := etl.ParquetRowCount(p.Path)
		require.NoError(t, err)
		total += n
	}
	assert.Equal(t, int64(5000), total)
}

func TestConvertTable_RollsOverIntoContiguousParts(t *testing.T) {
	input := writeParts(t, regionRows(0, 5), regionRows(5, 5))
	job := newJob(t, regionTable(t), input)
	job.MaxRowsPerFile = 2

	report, err := convert.NewEngine(logging.Discard()).ConvertTable(context.Background(), job)
	require.NoError(t, err)
	assert.Equal(t, 6, report.Files)

	parts, err := reconcile.Inspect(job.OutputDir, "parquet")
	require.NoError(t, err)
	assert.Len(t, parts, 6)
}

func TestConvertTable_FailedPromotionRollsBack(t *testing.T) {
	input := writeParts(t, regionRows(0, 5))
	job := newJob(t, regionTable(t), input)
	job.MaxRowsPerFile = 2
	foreign := filepath.Join(job.OutputDir, "part-1.parquet")

	e := convert.NewEngine(logging.Discard())
	e.OnTransition = func(tr convert.Transition) {
		if tr.To == domain.TaskPromoting {
			// another writer claims part-1 before this task promotes
			require.NoError(t, os.WriteFile(foreign, []byte("someone else"), 0o644))
		}
	}

	report, err := e.ConvertTable(context.Background(), job)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConversionTaskFailure)
	require.NotNil(t, report)
	assert.Equal(t, domain.StatusFailed, report.Status)
	assert.Equal(t, domain.TaskFailed, report.Partitions[0].State)
	assert.Empty(t, report.Partitions[0].Outputs)

	entries, err := os.ReadDir(job.OutputDir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"part-1.parquet"}, names, "part-0 went back to staging and staging is gone")

	data, err := os.ReadFile(foreign)
	require.NoError(t, err)
	assert.Equal(t, "someone else", string(data))
}

func TestConvertTable_FailureStopsScheduling(t *testing.T) {
	input := writeParts(t,
		regionRows(0, 3),
		"3|EUROPE|ok|\nnot-a-key|MIDDLE EAST|bad|\n",
		regionRows(10, 3),
		regionRows(20, 3),
	)
	job := newJob(t, regionTable(t), input)
	job.Concurrency = 1

	report, err := convert.NewEngine(logging.Discard()).ConvertTable(context.Background(), job)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConversionTaskFailure)
	assert.Contains(t, err.Error(), "not-a-key")
	require.NotNil(t, report)
	assert.Equal(t, domain.StatusFailed, report.Status)

	assert.Equal(t, domain.TaskDone, report.Partitions[0].State)
	assert.Equal(t, domain.TaskFailed, report.Partitions[1].State)
	assert.Contains(t, report.Partitions[1].Error, "r_regionkey")
	assert.Equal(t, domain.TaskPending, report.Partitions[2].State)
	assert.Equal(t, domain.TaskPending, report.Partitions[3].State)

	// completed output stays, the failed partition leaves nothing behind
	entries, err := os.ReadDir(job.OutputDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "part-0.parquet", entries[0].Name())
}

func TestConvertTable_BogusCodecCreatesNothing(t *testing.T) {
	_, err := domain.ParseCodec("bogus")
	require.ErrorIs(t, err, domain.ErrUnsupportedCompression)
	assert.Contains(t, err.Error(), "bogus")

	input := writeParts(t, regionRows(0, 1))
	job := newJob(t, regionTable(t), input)
	job.Codec = domain.Codec{Name: "bogus", Algorithm: "bogus"}

	_, err = convert.NewEngine(logging.Discard()).ConvertTable(context.Background(), job)
	assert.ErrorIs(t, err, domain.ErrUnsupportedCompression)
	assert.NoDirExists(t, job.OutputDir)
	assert.NoDirExists(t, filepath.Dir(job.OutputDir))
}

func TestConvertTable_NoClobber(t *testing.T) {
	input := writeParts(t, regionRows(0, 1))
	job := newJob(t, regionTable(t), input)
	require.NoError(t, os.MkdirAll(job.OutputDir, 0o755))
	sentinel := filepath.Join(job.OutputDir, "part-0.parquet")
	require.NoError(t, os.WriteFile(sentinel, []byte("previous run"), 0o644))

	_, err := convert.NewEngine(logging.Discard()).ConvertTable(context.Background(), job)
	assert.ErrorIs(t, err, domain.ErrOutputAlreadyExists)

	data, err := os.ReadFile(sentinel)
	require.NoError(t, err)
	assert.Equal(t, "previous run", string(data))
}

func TestConvertTable_InputChecks(t *testing.T) {
	e := convert.NewEngine(logging.Discard())

	job := newJob(t, regionTable(t), filepath.Join(t.TempDir(), "missing"))
	_, err := e.ConvertTable(context.Background(), job)
	assert.ErrorIs(t, err, domain.ErrPathNotFound)

	job = newJob(t, regionTable(t), writeParts(t, regionRows(0, 1), regionRows(1, 1)))
	job.ExpectPartitions = 4
	_, err = e.ConvertTable(context.Background(), job)
	assert.ErrorIs(t, err, domain.ErrPartitionGap)
	assert.NoDirExists(t, job.OutputDir)
}

func TestConvertTable_RowFormat(t *testing.T) {
	input := writeParts(t, regionRows(0, 3))
	job := newJob(t, regionTable(t), input)
	job.Format = domain.FormatRow

	_, err := convert.NewEngine(logging.Discard()).ConvertTable(context.Background(), job)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(job.OutputDir, "part-0.csv"))
	require.NoError(t, err)
	assert.Equal(t, "0|REGION-0|comment for 0\n1|REGION-1|comment for 1\n2|REGION-2|comment for 2\n", string(data))
}

func TestStagingDir(t *testing.T) {
	p := domain.Partition{Index: 3}
	assert.Equal(t, filepath.Join("out", "part-3-staging"), convert.StagingDir("out", p))
}
