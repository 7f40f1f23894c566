package csvframe

// Vector extracts the view's single active column as a typed slice,
// rows in row order. The view must have exactly one active column.
func Vector[T Scalar](df *DataFrame) ([]T, error) {
	cols, err := df.stringColumns(1)
	if err != nil {
		return nil, err
	}
	return ConvertSlice[T](cols[0])
}

// Vectors2 extracts two active columns as typed slices, columns in
// header order, rows in row order.
func Vectors2[T1, T2 Scalar](df *DataFrame) ([]T1, []T2, error) {
	cols, err := df.stringColumns(2)
	if err != nil {
		return nil, nil, err
	}
	v1, err := ConvertSlice[T1](cols[0])
	if err != nil {
		return nil, nil, err
	}
	v2, err := ConvertSlice[T2](cols[1])
	if err != nil {
		return nil, nil, err
	}
	return v1, v2, nil
}

// Vectors3 extracts three active columns as typed slices.
func Vectors3[T1, T2, T3 Scalar](df *DataFrame) ([]T1, []T2, []T3, error) {
	cols, err := df.stringColumns(3)
	if err != nil {
		return nil, nil, nil, err
	}
	v1, err := ConvertSlice[T1](cols[0])
	if err != nil {
		return nil, nil, nil, err
	}
	v2, err := ConvertSlice[T2](cols[1])
	if err != nil {
		return nil, nil, nil, err
	}
	v3, err := ConvertSlice[T3](cols[2])
	if err != nil {
		return nil, nil, nil, err
	}
	return v1, v2, v3, nil
}

// Vectors4 extracts four active columns as typed slices.
func Vectors4[T1, T2, T3, T4 Scalar](df *DataFrame) ([]T1, []T2, []T3, []T4, error) {
	cols, err := df.stringColumns(4)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	v1, err := ConvertSlice[T1](cols[0])
	if err != nil {
		return nil, nil, nil, nil, err
	}
	v2, err := ConvertSlice[T2](cols[1])
	if err != nil {
		return nil, nil, nil, nil, err
	}
	v3, err := ConvertSlice[T3](cols[2])
	if err != nil {
		return nil, nil, nil, nil, err
	}
	v4, err := ConvertSlice[T4](cols[3])
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return v1, v2, v3, v4, nil
}

// RowVectors converts every included cell of every included row to T,
// rows in row order, columns in column order.
func RowVectors[T Scalar](df *DataFrame) ([][]T, error) {
	rows, err := df.rowSeq()
	if err != nil {
		return nil, err
	}
	out := make([][]T, 0, df.Rows())
	for _, rec := range rows {
		cells, err := df.activeCells(rec)
		if err != nil {
			return nil, err
		}
		converted, err := ConvertSlice[T](cells)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

// stringColumns gathers the included cells column-by-column after
// checking the active column count and declared arity against want.
func (df *DataFrame) stringColumns(want int) ([][]string, error) {
	if err := df.checkArity(want); err != nil {
		return nil, err
	}

	out := make([][]string, want)
	for i := range out {
		out[i] = make([]string, 0, df.Rows())
	}

	rows, err := df.rowSeq()
	if err != nil {
		return nil, err
	}
	for _, rec := range rows {
		cells, err := df.activeCells(rec)
		if err != nil {
			return nil, err
		}
		for j, cell := range cells {
			out[j] = append(out[j], cell)
		}
	}
	return out, nil
}
