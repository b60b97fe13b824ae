// Package schema holds the fixed column layouts of the TPC-H and TPC-DS tables.
package schema

import (
	"fmt"
	"sync"

	"tpctools/internal/domain"
)

// Registry maps (benchmark, table) to an immutable table schema.
type Registry struct {
	names  map[domain.Benchmark][]string
	tables map[domain.Benchmark]map[string]domain.Table
	fixed  map[domain.Benchmark]map[string]bool
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, built on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// New builds a registry from the declarative table data.
func New() *Registry {
	r := &Registry{
		names:  make(map[domain.Benchmark][]string),
		tables: make(map[domain.Benchmark]map[string]domain.Table),
		fixed:  make(map[domain.Benchmark]map[string]bool),
	}
	r.add(domain.BenchmarkTPCH, tpchTableNames, tpchFields, tpchWrittenOnce)
	r.add(domain.BenchmarkTPCDS, tpcdsTableNames, tpcdsFields, tpcdsWrittenOnce)
	return r
}

func (r *Registry) add(kind domain.Benchmark, names []string, fields map[string][]domain.Field, once []string) {
	r.names[kind] = names
	r.fixed[kind] = make(map[string]bool, len(once))
	for _, name := range once {
		r.fixed[kind][name] = true
	}
	tables := make(map[string]domain.Table, len(names))
	for _, name := range names {
		tables[name] = domain.Table{Name: name, Fields: fields[name]}
	}
	r.tables[kind] = tables
}

// SchemaFor returns the schema of one table. The returned Fields slice is a
// copy; mutating it does not affect the registry.
func (r *Registry) SchemaFor(kind domain.Benchmark, table string) (domain.Table, error) {
	t, ok := r.tables[kind][table]
	if !ok {
		return domain.Table{}, fmt.Errorf("%w: %s has no table %q", domain.ErrUnknownTable, kind, table)
	}
	fields := make([]domain.Field, len(t.Fields))
	copy(fields, t.Fields)
	return domain.Table{Name: t.Name, Fields: fields}, nil
}

// TableNames lists every table of a benchmark in generation order.
func (r *Registry) TableNames(kind domain.Benchmark) []string {
	names := r.names[kind]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// FixedTables lists, in generation order, the tables the benchmark's
// generator writes from the first shard only, whatever the shard count.
func (r *Registry) FixedTables(kind domain.Benchmark) []string {
	var out []string
	for _, name := range r.names[kind] {
		if r.fixed[kind][name] {
			out = append(out, name)
		}
	}
	return out
}

// Resolve expands a table selection. An empty selection means every table;
// unknown names fail with ErrUnknownTable.
func (r *Registry) Resolve(kind domain.Benchmark, selected []string) ([]domain.Table, error) {
	if len(selected) == 0 {
		selected = r.names[kind]
	}
	tables := make([]domain.Table, 0, len(selected))
	for _, name := range selected {
		t, err := r.SchemaFor(kind, name)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func field(name string, t domain.FieldType, nullable bool) domain.Field {
	return domain.Field{Name: name, Type: t, Nullable: nullable}
}
