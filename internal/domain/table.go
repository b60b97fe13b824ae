package domain

import "fmt"

// FieldKind is the primitive type of a table column.
type FieldKind string

const (
	KindInt32   FieldKind = "int32"
	KindInt64   FieldKind = "int64"
	KindUtf8    FieldKind = "utf8"
	KindDate32  FieldKind = "date32"
	KindFloat64 FieldKind = "float64"
	KindDecimal FieldKind = "decimal"
)

// FieldType is a FieldKind plus the precision/scale used by decimals.
type FieldType struct {
	Kind      FieldKind `json:"kind"`
	Precision int32     `json:"precision,omitempty"`
	Scale     int32     `json:"scale,omitempty"`
}

var (
	Int32   = FieldType{Kind: KindInt32}
	Int64   = FieldType{Kind: KindInt64}
	Utf8    = FieldType{Kind: KindUtf8}
	Date32  = FieldType{Kind: KindDate32}
	Float64 = FieldType{Kind: KindFloat64}
)

// Decimal builds a decimal(precision, scale) field type.
func Decimal(precision, scale int32) FieldType {
	return FieldType{Kind: KindDecimal, Precision: precision, Scale: scale}
}

func (t FieldType) String() string {
	if t.Kind == KindDecimal {
		return fmt.Sprintf("decimal(%d,%d)", t.Precision, t.Scale)
	}
	return string(t.Kind)
}

// Field describes a single column in a table.
type Field struct {
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Nullable bool      `json:"nullable"`
}

// Table is an immutable, ordered column list.
type Table struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// FieldNames returns an ordered list of field names.
func (t *Table) FieldNames() []string {
	names := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		names[i] = f.Name
	}
	return names
}
