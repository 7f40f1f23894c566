package csvframe

import (
	"cmp"
	"fmt"
)

// compareOp is a per-column comparison predicate.
type compareOp int

const (
	// opEqual keeps cells equal to the reference value
	opEqual compareOp = iota
	// opLess keeps cells strictly below the reference value
	opLess
	// opLessEqual keeps cells at or below the reference value
	opLessEqual
	// opGreater keeps cells strictly above the reference value
	opGreater
	// opGreaterEqual keeps cells at or above the reference value
	opGreaterEqual
)

// Equal keeps the rows whose active cells, converted to the reference
// types, all equal the corresponding reference value. len(refs) must
// match the active column count and the declared arity; the result
// carries arity len(refs).
func (df *DataFrame) Equal(refs ...any) (*DataFrame, error) {
	return df.rowWise(opEqual, false, refs)
}

// NotEqual keeps the rows for which Equal would exclude them: a row
// survives when not every column matched its reference value. This is
// the negation of the whole-row Equal result, not a column-wise
// inequality test.
func (df *DataFrame) NotEqual(refs ...any) (*DataFrame, error) {
	return df.rowWise(opEqual, true, refs)
}

// Less keeps the rows whose active cells are all strictly below their
// reference values.
func (df *DataFrame) Less(refs ...any) (*DataFrame, error) {
	return df.rowWise(opLess, false, refs)
}

// LessEqual keeps the rows whose active cells are all at or below their
// reference values.
func (df *DataFrame) LessEqual(refs ...any) (*DataFrame, error) {
	return df.rowWise(opLessEqual, false, refs)
}

// Greater keeps the rows whose active cells are all strictly above
// their reference values.
func (df *DataFrame) Greater(refs ...any) (*DataFrame, error) {
	return df.rowWise(opGreater, false, refs)
}

// GreaterEqual keeps the rows whose active cells are all at or above
// their reference values.
func (df *DataFrame) GreaterEqual(refs ...any) (*DataFrame, error) {
	return df.rowWise(opGreaterEqual, false, refs)
}

// In keeps the rows whose single active column's converted value equals
// one of the given candidates. The view must have exactly one active
// column.
func (df *DataFrame) In(candidates ...any) (*DataFrame, error) {
	if err := df.checkArity(1); err != nil {
		return nil, err
	}

	rowMask := df.rowMask.clone()
	rows, err := df.rowSeq()
	if err != nil {
		return nil, err
	}
	for i, rec := range rows {
		cells, err := df.activeCells(rec)
		if err != nil {
			return nil, err
		}
		member := false
		for _, candidate := range candidates {
			ok, err := cellMatches(opEqual, cells[0], candidate)
			if err != nil {
				return nil, err
			}
			if ok {
				member = true
				break
			}
		}
		if !member {
			rowMask.unset(i)
		}
	}
	return newDataFrame(df.tab, rowMask, df.colMask, 1)
}

// rowWise is the predicate engine behind all comparison operators. For
// each included row it converts the N active cells to the reference
// types and ANDs the per-column tests; negate inverts the whole-row
// result (used by NotEqual).
func (df *DataFrame) rowWise(op compareOp, negate bool, refs []any) (*DataFrame, error) {
	if err := df.checkArity(len(refs)); err != nil {
		return nil, err
	}

	rowMask := df.rowMask.clone()
	rows, err := df.rowSeq()
	if err != nil {
		return nil, err
	}
	for i, rec := range rows {
		cells, err := df.activeCells(rec)
		if err != nil {
			return nil, err
		}
		match := true
		for j, ref := range refs {
			ok, err := cellMatches(op, cells[j], ref)
			if err != nil {
				return nil, err
			}
			if !ok {
				match = false
				break
			}
		}
		if negate {
			match = !match
		}
		if !match {
			rowMask.unset(i)
		}
	}
	return newDataFrame(df.tab, rowMask, df.colMask, len(refs))
}

// checkArity verifies that the view currently has exactly n active
// columns and that n agrees with the declared arity.
func (df *DataFrame) checkArity(n int) error {
	if df.arity != arityUnset && df.arity != n {
		return fmt.Errorf("%w: declared arity %d, requested %d", ErrArityMismatch, df.arity, n)
	}
	if df.Cols() != n {
		return fmt.Errorf("%w: view has %d active columns, requested %d", ErrArityMismatch, df.Cols(), n)
	}
	return nil
}

// cellMatches converts cell to ref's type and applies the predicate.
func cellMatches(op compareOp, cell string, ref any) (bool, error) {
	converted, err := convertCell(cell, ref)
	if err != nil {
		return false, err
	}
	switch r := ref.(type) {
	case int:
		return compareOrdered(op, converted.(int), r), nil
	case int64:
		return compareOrdered(op, converted.(int64), r), nil
	case float64:
		return compareOrdered(op, converted.(float64), r), nil
	case string:
		return compareOrdered(op, converted.(string), r), nil
	default:
		return false, fmt.Errorf("%w: unsupported reference type %T", ErrConversion, ref)
	}
}

// compareOrdered applies the predicate to an ordered pair.
func compareOrdered[T cmp.Ordered](op compareOp, a, b T) bool {
	switch op {
	case opEqual:
		return a == b
	case opLess:
		return a < b
	case opLessEqual:
		return a <= b
	case opGreater:
		return a > b
	case opGreaterEqual:
		return a >= b
	default:
		return false
	}
}
