package etl

import (
	"fmt"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"tpctools/internal/domain"
)

// ── Schema ─────────────────────────────────────────────────
// Batches flowing from sources to destinations are arrow.Records. A table's
// arrow schema is derived from its registry definition, never inferred.

// ArrowSchema converts a table definition into an arrow schema, preserving
// column order and nullability.
func ArrowSchema(t domain.Table) (*arrow.Schema, error) {
	fields := make([]arrow.Field, len(t.Fields))
	for i, f := range t.Fields {
		dt, err := ArrowType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name, f.Name, err)
		}
		fields[i] = arrow.Field{Name: f.Name, Type: dt, Nullable: f.Nullable}
	}
	md := arrow.NewMetadata([]string{"table"}, []string{t.Name})
	return arrow.NewSchema(fields, &md), nil
}

// ArrowType maps a column type onto its arrow data type.
func ArrowType(t domain.FieldType) (arrow.DataType, error) {
	switch t.Kind {
	case domain.KindInt32:
		return arrow.PrimitiveTypes.Int32, nil
	case domain.KindInt64:
		return arrow.PrimitiveTypes.Int64, nil
	case domain.KindUtf8:
		return arrow.BinaryTypes.String, nil
	case domain.KindDate32:
		return arrow.FixedWidthTypes.Date32, nil
	case domain.KindFloat64:
		return arrow.PrimitiveTypes.Float64, nil
	case domain.KindDecimal:
		if t.Precision < 1 || t.Precision > 38 || t.Scale < 0 || t.Scale > t.Precision {
			return nil, fmt.Errorf("invalid %s", t)
		}
		return &arrow.Decimal128Type{Precision: t.Precision, Scale: t.Scale}, nil
	}
	return nil, fmt.Errorf("unsupported column type %q", t.Kind)
}

// FormatValue renders row i of arr the way the generators write it. Nulls
// render as the empty string; callers that care check arr.IsNull first.
func FormatValue(arr arrow.Array, i int) string {
	if arr.IsNull(i) {
		return ""
	}
	switch a := arr.(type) {
	case *array.Int32:
		return strconv.FormatInt(int64(a.Value(i)), 10)
	case *array.Int64:
		return strconv.FormatInt(a.Value(i), 10)
	case *array.Float64:
		return strconv.FormatFloat(a.Value(i), 'f', -1, 64)
	case *array.String:
		return a.Value(i)
	case *array.Date32:
		return a.Value(i).FormattedString()
	case *array.Decimal128:
		return a.Value(i).ToString(a.DataType().(*arrow.Decimal128Type).Scale)
	}
	return arr.ValueStr(i)
}
