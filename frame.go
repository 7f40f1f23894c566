package csvframe

import (
	"fmt"
	"iter"
	"slices"
)

// arityUnset marks a DataFrame without a declared active-column count.
const arityUnset = -1

// DataFrame is a masked view over one loaded table. It holds a shared
// reference to the table plus an immutable row mask and column mask, so
// every transform yields a new DataFrame without copying or mutating
// cell data. Frames derived from the same Load call share one table and
// may be combined; frames from different loads may not.
//
// A DataFrame may carry a declared arity: the expected number of active
// columns. Every transform that changes the column selection verifies
// the result against it, so typed extraction errors surface as early as
// possible.
type DataFrame struct {
	tab     *table
	rowMask *bitmask
	colMask *bitmask
	arity   int
}

// newDataFrame assembles a view and enforces the declared arity against
// the actual active-column count.
func newDataFrame(tab *table, rowMask, colMask *bitmask, arity int) (*DataFrame, error) {
	df := &DataFrame{
		tab:     tab,
		rowMask: rowMask,
		colMask: colMask,
		arity:   arity,
	}
	if arity != arityUnset && df.Cols() != arity {
		return nil, fmt.Errorf("%w: view has %d active columns, expected %d", ErrArityMismatch, df.Cols(), arity)
	}
	return df, nil
}

// fullFrame creates the initial all-included view over a table.
func fullFrame(tab *table) (*DataFrame, error) {
	return newDataFrame(tab,
		newBitmask(tab.height(), true),
		newBitmask(tab.width(), true),
		arityUnset)
}

// Header returns the full header of the underlying table, including
// columns currently excluded from the view.
func (df *DataFrame) Header() []string {
	return slices.Clone([]string(df.tab.header))
}

// Columns returns the names of the active columns in header order.
func (df *DataFrame) Columns() []string {
	names := make([]string, 0, df.Cols())
	for i := range df.colMask.indices() {
		names = append(names, df.tab.header[i])
	}
	return names
}

// Rows returns the number of active rows.
func (df *DataFrame) Rows() int {
	return df.rowMask.count()
}

// Cols returns the number of active columns.
func (df *DataFrame) Cols() int {
	return df.colMask.count()
}

// At returns the raw cell at the given table coordinates, ignoring the
// view's masks. Access beyond the loaded extents fails with ErrOutOfRange.
func (df *DataFrame) At(row, col int) (string, error) {
	return df.tab.cell(row, col)
}

// Expect pins the expected active-column count. It fails immediately if
// the view does not currently have n active columns, and every later
// column-changing transform is checked against n.
func (df *DataFrame) Expect(n int) (*DataFrame, error) {
	return newDataFrame(df.tab, df.rowMask, df.colMask, n)
}

// Select returns a view restricted to the named columns. Unknown names
// fail with ErrUnknownColumn. Duplicate names collapse to a single mask
// bit, which then fails the arity check: the declared arity of the
// result is always len(names).
func (df *DataFrame) Select(names ...string) (*DataFrame, error) {
	colMask := newBitmask(df.tab.width(), false)
	for _, name := range names {
		idx, ok := df.tab.index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
		colMask.set(idx)
	}
	return newDataFrame(df.tab, df.rowMask, colMask, len(names))
}

// And combines two same-table views by element-wise conjunction of their
// row masks. The column mask and arity of the receiver are kept; the
// other view's column mask is ignored.
func (df *DataFrame) And(other *DataFrame) (*DataFrame, error) {
	if err := df.combinable(other); err != nil {
		return nil, err
	}
	rowMask, err := df.rowMask.and(other.rowMask)
	if err != nil {
		return nil, err
	}
	return newDataFrame(df.tab, rowMask, df.colMask, df.arity)
}

// Or combines two same-table views by element-wise disjunction of their
// row masks. The column mask and arity of the receiver are kept.
func (df *DataFrame) Or(other *DataFrame) (*DataFrame, error) {
	if err := df.combinable(other); err != nil {
		return nil, err
	}
	rowMask, err := df.rowMask.or(other.rowMask)
	if err != nil {
		return nil, err
	}
	return newDataFrame(df.tab, rowMask, df.colMask, df.arity)
}

// SelectRows returns a view with the other view's row mask and the
// receiver's column mask. This is the idiom for applying a filter that
// was computed against one column subset while keeping another subset
// for extraction:
//
//	filtered, _ := sub.Less(50, 50)
//	result, _ := full.SelectRows(filtered)
func (df *DataFrame) SelectRows(other *DataFrame) (*DataFrame, error) {
	if err := df.combinable(other); err != nil {
		return nil, err
	}
	return newDataFrame(df.tab, other.rowMask, df.colMask, df.arity)
}

// SelectCols returns a view with the receiver's row mask and the other
// view's column mask. The receiver's declared arity still applies, so
// adopting a column mask with a different column count fails.
func (df *DataFrame) SelectCols(other *DataFrame) (*DataFrame, error) {
	if df.tab != other.tab {
		return nil, ErrCrossFrame
	}
	return newDataFrame(df.tab, df.rowMask, other.colMask, df.arity)
}

// combinable checks the preconditions shared by all cross-view
// operations: an identical backing table, and compatible arities when
// both are declared.
func (df *DataFrame) combinable(other *DataFrame) error {
	if df.tab != other.tab {
		return ErrCrossFrame
	}
	if df.arity != arityUnset && other.arity != arityUnset && df.arity != other.arity {
		return fmt.Errorf("%w: arity %d vs %d", ErrArityMismatch, df.arity, other.arity)
	}
	return nil
}

// rowSeq returns the masked traversal over the table's rows.
func (df *DataFrame) rowSeq() (iter.Seq2[int, record], error) {
	return maskedSeq(df.tab.records, df.rowMask)
}

// activeCells returns the included cells of rec in column order.
func (df *DataFrame) activeCells(rec record) ([]string, error) {
	seq, err := maskedSeq(rec, df.colMask)
	if err != nil {
		return nil, err
	}
	cells := make([]string, 0, df.Cols())
	for _, cell := range seq {
		cells = append(cells, cell)
	}
	return cells, nil
}
