package csvframe

import "fmt"

// header is the ordered list of column names of a loaded file.
type header []string

// newHeader create new header.
func newHeader(h []string) header {
	return header(h)
}

// equal compare header.
func (h header) equal(h2 header) bool {
	if len(h) != len(h2) {
		return false
	}
	for i, v := range h {
		if v != h2[i] {
			return false
		}
	}
	return true
}

// record is a single row of string cells.
type record []string

// newRecord create new record.
func newRecord(r []string) record {
	return record(r)
}

// equal compare record.
func (r record) equal(r2 record) bool {
	if len(r) != len(r2) {
		return false
	}
	for i, v := range r {
		if v != r2[i] {
			return false
		}
	}
	return true
}

// normalize returns the record adjusted to exactly width cells: short
// records are padded with empty strings, long records are truncated.
func (r record) normalize(width int) record {
	if len(r) == width {
		return r
	}
	out := make(record, width)
	copy(out, r)
	return out
}

// table is the immutable in-memory representation of a loaded dataset.
// It is shared by reference across every DataFrame derived from it and
// is never mutated after construction.
type table struct {
	// header is the ordered column names, order = file column order.
	header header
	// index maps a column name to its position in header.
	index map[string]int
	// records is the row-major cell storage. Every record has exactly
	// len(header) cells.
	records []record
}

// newTable creates a table from a raw header and rows. It fails when the
// header contains duplicate column names, and normalizes every row to the
// header width.
func newTable(h header, records []record) (*table, error) {
	if err := validateColumnNames(h); err != nil {
		return nil, err
	}

	index := make(map[string]int, len(h))
	for i, name := range h {
		index[name] = i
	}

	rows := make([]record, len(records))
	for i, r := range records {
		rows[i] = r.normalize(len(h))
	}

	return &table{
		header:  h,
		index:   index,
		records: rows,
	}, nil
}

// validateColumnNames checks that no column name appears twice.
func validateColumnNames(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateColumnName, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// width returns the number of columns in the table.
func (t *table) width() int {
	return len(t.header)
}

// height returns the number of rows in the table.
func (t *table) height() int {
	return len(t.records)
}

// cell returns the cell at the given row and column with bounds checking.
func (t *table) cell(row, col int) (string, error) {
	if row < 0 || row >= t.height() {
		return "", fmt.Errorf("%w: table has %d rows, row %d requested", ErrOutOfRange, t.height(), row)
	}
	if col < 0 || col >= t.width() {
		return "", fmt.Errorf("%w: table has %d columns, column %d requested", ErrOutOfRange, t.width(), col)
	}
	return t.records[row][col], nil
}
