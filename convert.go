package csvframe

import (
	"fmt"
	"strconv"
)

// Scalar enumerates the target types supported by typed extraction and
// conversion.
type Scalar interface {
	int | int64 | float64 | string
}

// Convert parses a cell into T. An empty cell converts to the zero value
// for numeric targets. A non-empty cell that fails to parse returns
// ErrConversion; the library never silently defaults a malformed value.
func Convert[T Scalar](cell string) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case *int:
		if cell == "" {
			return v, nil
		}
		n, err := strconv.Atoi(cell)
		if err != nil {
			return v, fmt.Errorf("%w: %q as int", ErrConversion, cell)
		}
		*p = n
	case *int64:
		if cell == "" {
			return v, nil
		}
		n, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return v, fmt.Errorf("%w: %q as int64", ErrConversion, cell)
		}
		*p = n
	case *float64:
		if cell == "" {
			return v, nil
		}
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return v, fmt.Errorf("%w: %q as float64", ErrConversion, cell)
		}
		*p = f
	case *string:
		*p = cell
	}
	return v, nil
}

// ConvertSlice converts cells element-wise, preserving order.
func ConvertSlice[T Scalar](cells []string) ([]T, error) {
	out := make([]T, 0, len(cells))
	for _, cell := range cells {
		v, err := Convert[T](cell)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// convertCell converts a cell to the dynamic type of ref, for the
// predicate engine where target types arrive as reference values.
func convertCell(cell string, ref any) (any, error) {
	switch ref.(type) {
	case int:
		return Convert[int](cell)
	case int64:
		return Convert[int64](cell)
	case float64:
		return Convert[float64](cell)
	case string:
		return Convert[string](cell)
	default:
		return nil, fmt.Errorf("%w: unsupported reference type %T", ErrConversion, ref)
	}
}
