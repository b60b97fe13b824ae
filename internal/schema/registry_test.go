package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpctools/internal/domain"
	"tpctools/internal/schema"
)

func TestRegistry_TableCounts(t *testing.T) {
	r := schema.Default()
	assert.Len(t, r.TableNames(domain.BenchmarkTPCH), 8)
	assert.Len(t, r.TableNames(domain.BenchmarkTPCDS), 24)
}

func TestRegistry_EveryTableHasFields(t *testing.T) {
	r := schema.Default()
	for _, kind := range []domain.Benchmark{domain.BenchmarkTPCH, domain.BenchmarkTPCDS} {
		for _, name := range r.TableNames(kind) {
			tbl, err := r.SchemaFor(kind, name)
			require.NoError(t, err, "%s/%s", kind, name)
			assert.NotEmpty(t, tbl.Fields, "%s/%s", kind, name)

			seen := make(map[string]bool)
			for _, f := range tbl.Fields {
				assert.False(t, seen[f.Name], "duplicate column %s in %s", f.Name, name)
				seen[f.Name] = true
			}
		}
	}
}

func TestRegistry_Region(t *testing.T) {
	tbl, err := schema.Default().SchemaFor(domain.BenchmarkTPCH, "region")
	require.NoError(t, err)
	assert.Equal(t, []string{"r_regionkey", "r_name", "r_comment"}, tbl.FieldNames())
	assert.Equal(t, domain.Int64, tbl.Fields[0].Type)
	assert.False(t, tbl.Fields[0].Nullable)
}

func TestRegistry_TPCDSDecimals(t *testing.T) {
	tbl, err := schema.Default().SchemaFor(domain.BenchmarkTPCDS, "store_sales")
	require.NoError(t, err)

	var found bool
	for _, f := range tbl.Fields {
		if f.Name == "ss_sales_price" {
			found = true
			assert.Equal(t, domain.Decimal(7, 2), f.Type)
			assert.True(t, f.Nullable)
		}
	}
	assert.True(t, found, "ss_sales_price missing")
}

func TestRegistry_UnknownTable(t *testing.T) {
	_, err := schema.Default().SchemaFor(domain.BenchmarkTPCH, "store_sales")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownTable))
	assert.Contains(t, err.Error(), "store_sales")
}

func TestRegistry_SchemaForReturnsCopy(t *testing.T) {
	r := schema.New()
	tbl, err := r.SchemaFor(domain.BenchmarkTPCH, "nation")
	require.NoError(t, err)
	tbl.Fields[0].Name = "mutated"

	again, err := r.SchemaFor(domain.BenchmarkTPCH, "nation")
	require.NoError(t, err)
	assert.Equal(t, "n_nationkey", again.Fields[0].Name)
}

func TestRegistry_Resolve(t *testing.T) {
	r := schema.Default()

	all, err := r.Resolve(domain.BenchmarkTPCH, nil)
	require.NoError(t, err)
	assert.Len(t, all, 8)
	assert.Equal(t, "customer", all[0].Name)

	some, err := r.Resolve(domain.BenchmarkTPCH, []string{"region", "nation"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "region", some[0].Name)

	_, err = r.Resolve(domain.BenchmarkTPCH, []string{"region", "bogus"})
	assert.ErrorIs(t, err, domain.ErrUnknownTable)
}

func TestRegistry_FixedTables(t *testing.T) {
	r := schema.Default()
	assert.Equal(t, []string{"nation", "region"}, r.FixedTables(domain.BenchmarkTPCH))

	ds := r.FixedTables(domain.BenchmarkTPCDS)
	assert.Contains(t, ds, "date_dim")
	assert.NotContains(t, ds, "store_sales")
	for _, name := range ds {
		_, err := r.SchemaFor(domain.BenchmarkTPCDS, name)
		assert.NoError(t, err, name)
	}
	assert.Empty(t, r.FixedTables("bogus"))
}
