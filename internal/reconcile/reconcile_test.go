package reconcile_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpctools/internal/domain"
	"tpctools/internal/logging"
	"tpctools/internal/reconcile"
)

func touch(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestReconcile_Canonicalization(t *testing.T) {
	cases := []struct {
		name       string
		partitions int
		raw        func(i, n int) string
	}{
		{"indexed/1", 1, func(i, n int) string { return fmt.Sprintf("region_%d_%d.dat", i, n) }},
		{"indexed/4", 4, func(i, n int) string { return fmt.Sprintf("region_%d_%d.dat", i, n) }},
		{"bare/1", 1, func(i, n int) string { return "region.dat" }},
		{"extension/4", 4, func(i, n int) string { return fmt.Sprintf("region.dat.%d", i) }},
		{"extension-bare-first/4", 4, func(i, n int) string {
			if i == 1 {
				return "region.dat"
			}
			return fmt.Sprintf("region.dat.%d", i)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := t.TempDir()
			root := filepath.Join(t.TempDir(), "out")
			for i := 1; i <= tc.partitions; i++ {
				touch(t, src, tc.raw(i, tc.partitions), fmt.Sprintf("%d|shard|\n", i))
			}

			report, err := reconcile.New(logging.Discard()).Reconcile("region", "dat", src, root, tc.partitions)
			require.NoError(t, err)

			var want []string
			for i := 0; i < tc.partitions; i++ {
				want = append(want, fmt.Sprintf("part-%d.dat", i))
			}
			assert.ElementsMatch(t, want, listDir(t, filepath.Join(root, "region")))
			assert.Len(t, report.Partitions, tc.partitions)
			assert.Len(t, report.Moves, tc.partitions)
			assert.Empty(t, listDir(t, src))

			// shard i lands in part-(i-1)
			data, err := os.ReadFile(filepath.Join(root, "region", "part-0.dat"))
			require.NoError(t, err)
			assert.Equal(t, "1|shard|\n", string(data))
		})
	}
}

func TestReconcile_NoClobber(t *testing.T) {
	src := t.TempDir()
	root := t.TempDir()
	touch(t, src, "region.tbl", "new")
	require.NoError(t, os.Mkdir(filepath.Join(root, "region"), 0o755))
	touch(t, filepath.Join(root, "region"), "part-0.tbl", "old")

	_, err := reconcile.New(logging.Discard()).Reconcile("region", "tbl", src, root, 1)
	assert.ErrorIs(t, err, domain.ErrOutputAlreadyExists)

	data, err := os.ReadFile(filepath.Join(root, "region", "part-0.tbl"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
	assert.Equal(t, []string{"region.tbl"}, listDir(t, src))
}

func TestReconcile_SecondRunFails(t *testing.T) {
	src := t.TempDir()
	root := t.TempDir()
	touch(t, src, "nation.tbl", "x")
	r := reconcile.New(logging.Discard())

	_, err := r.Reconcile("nation", "tbl", src, root, 1)
	require.NoError(t, err)
	touch(t, src, "nation.tbl", "y")
	_, err = r.Reconcile("nation", "tbl", src, root, 1)
	assert.ErrorIs(t, err, domain.ErrOutputAlreadyExists)
}

func TestReconcile_MissingFirstShard(t *testing.T) {
	root := t.TempDir()
	_, err := reconcile.New(logging.Discard()).Reconcile("orders", "tbl", t.TempDir(), root, 4)
	assert.ErrorIs(t, err, domain.ErrPathNotFound)
	assert.NoDirExists(t, filepath.Join(root, "orders"))
}

func TestReconcile_GapMovesNothing(t *testing.T) {
	src := t.TempDir()
	root := t.TempDir()
	touch(t, src, "orders.tbl.1", "a")
	touch(t, src, "orders.tbl.3", "c")

	_, err := reconcile.New(logging.Discard()).Reconcile("orders", "tbl", src, root, 4)
	assert.ErrorIs(t, err, domain.ErrPartitionGap)
	assert.NoDirExists(t, filepath.Join(root, "orders"))
	assert.ElementsMatch(t, []string{"orders.tbl.1", "orders.tbl.3"}, listDir(t, src))
}

func TestReconcile_FixedTableWrittenOnce(t *testing.T) {
	src := t.TempDir()
	root := t.TempDir()
	touch(t, src, "nation.tbl", "0|ALGERIA|0|x|\n")

	report, err := reconcile.New(logging.Discard(), "nation", "region").Reconcile("nation", "tbl", src, root, 4)
	require.NoError(t, err)
	require.Len(t, report.Partitions, 1)
	assert.Equal(t, []string{"part-0.tbl"}, listDir(t, filepath.Join(root, "nation")))
}

func TestReconcile_TruncatedShardsMoveNothing(t *testing.T) {
	src := t.TempDir()
	root := t.TempDir()
	touch(t, src, "lineitem.tbl.1", "a")
	touch(t, src, "lineitem.tbl.2", "b")

	// lineitem is split across every shard, so 2 of 4 means lost data
	_, err := reconcile.New(logging.Discard(), "nation", "region").Reconcile("lineitem", "tbl", src, root, 4)
	assert.ErrorIs(t, err, domain.ErrPartitionGap)
	assert.NoDirExists(t, filepath.Join(root, "lineitem"))
	assert.ElementsMatch(t, []string{"lineitem.tbl.1", "lineitem.tbl.2"}, listDir(t, src))
}

func TestReconcile_SingleShardOnlyForWrittenOnce(t *testing.T) {
	src := t.TempDir()
	touch(t, src, "nation.tbl", "x")

	_, err := reconcile.New(logging.Discard()).Reconcile("nation", "tbl", src, t.TempDir(), 2)
	assert.ErrorIs(t, err, domain.ErrPartitionGap)
	assert.Equal(t, []string{"nation.tbl"}, listDir(t, src))
}

func TestInspect(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "lineitem")
	require.NoError(t, os.Mkdir(dir, 0o755))
	touch(t, dir, "part-1.parquet", "b")
	touch(t, dir, "part-0.parquet", "a")
	touch(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "part-2-staging"), 0o755))

	parts, err := reconcile.Inspect(dir, "parquet")
	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.Equal(t, 0, parts[0].Index)
	assert.Equal(t, "lineitem", parts[0].Table)
	assert.EqualValues(t, 1, parts[1].Size)

	touch(t, dir, "part-3.parquet", "d")
	_, err = reconcile.Inspect(dir, "parquet")
	assert.ErrorIs(t, err, domain.ErrPartitionGap)
}

func TestInspect_Missing(t *testing.T) {
	_, err := reconcile.Inspect(filepath.Join(t.TempDir(), "absent"), "tbl")
	assert.ErrorIs(t, err, domain.ErrPathNotFound)

	_, err = reconcile.Inspect(t.TempDir(), "tbl")
	assert.ErrorIs(t, err, domain.ErrPathNotFound)
}

func TestCandidates(t *testing.T) {
	assert.Equal(t, []string{"store_1_1.dat", "store.dat.1", "store.dat"}, reconcile.Candidates("store", "dat", 1, 1))
	assert.Equal(t, []string{"store_2_4.dat", "store.dat.2"}, reconcile.Candidates("store", "dat", 2, 4))
}
