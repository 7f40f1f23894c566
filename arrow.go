package csvframe

import (
	"fmt"
	"strconv"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
)

// ToArrowRecord exports the included cells as an arrow record with one
// float64 field per active column, rows in row order. Cells are
// converted with the same rules as Convert[float64], so empty cells
// become 0 and malformed cells fail with ErrConversion.
func (df *DataFrame) ToArrowRecord() (arrow.Record, error) {
	return df.ToArrowMatrix(-1, -1)
}

// ToArrowMatrix is ToArrowRecord with fixed extents. Pass -1 to leave an
// extent dynamic; a fixed extent that does not match the view's current
// Rows or Cols fails before any conversion happens.
func (df *DataFrame) ToArrowMatrix(rows, cols int) (arrow.Record, error) {
	if cols != -1 && df.Cols() != cols {
		return nil, fmt.Errorf("%w: view has %d active columns, fixed extent %d", ErrArityMismatch, df.Cols(), cols)
	}
	if rows != -1 && df.Rows() != rows {
		return nil, fmt.Errorf("%w: view has %d active rows, fixed extent %d", ErrSizeMismatch, df.Rows(), rows)
	}

	names := df.Columns()
	fields := make([]arrow.Field, len(names))
	for i, name := range names {
		fields[i] = arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Float64}
	}
	schema := arrow.NewSchema(fields, nil)

	pool := memory.NewGoAllocator()
	builders := make([]*array.Float64Builder, len(fields))
	for i := range builders {
		builders[i] = array.NewFloat64Builder(pool)
	}
	defer func() {
		for _, b := range builders {
			b.Release()
		}
	}()

	rowSeq, err := df.rowSeq()
	if err != nil {
		return nil, err
	}
	for _, rec := range rowSeq {
		cells, err := df.activeCells(rec)
		if err != nil {
			return nil, err
		}
		for j, cell := range cells {
			v, err := Convert[float64](cell)
			if err != nil {
				return nil, err
			}
			builders[j].Append(v)
		}
	}

	columns := make([]arrow.Array, len(builders))
	for i, b := range builders {
		columns[i] = b.NewArray()
	}
	defer func() {
		for _, col := range columns {
			col.Release()
		}
	}()

	return array.NewRecord(schema, columns, int64(df.Rows())), nil
}

// arrowCellString renders one arrow array element as a cell string.
// Nulls become empty cells, matching the empty-means-zero conversion
// rule on the way back out.
func arrowCellString(col arrow.Array, i int) string {
	if col.IsNull(i) {
		return ""
	}
	switch arr := col.(type) {
	case *array.String:
		return arr.Value(i)
	case *array.LargeString:
		return arr.Value(i)
	case *array.Int64:
		return strconv.FormatInt(arr.Value(i), 10)
	case *array.Int32:
		return strconv.FormatInt(int64(arr.Value(i)), 10)
	case *array.Float64:
		return strconv.FormatFloat(arr.Value(i), 'g', -1, 64)
	case *array.Float32:
		return strconv.FormatFloat(float64(arr.Value(i)), 'g', -1, 32)
	case *array.Boolean:
		return strconv.FormatBool(arr.Value(i))
	default:
		return col.ValueStr(i)
	}
}
