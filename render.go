package csvframe

import (
	"fmt"
	"io"
	"strings"
)

// WriteTo writes the view as text: the active header names on the first
// line, then one line per included row, fields separated by tabs and
// restricted to the included columns.
func (df *DataFrame) WriteTo(w io.Writer) (int64, error) {
	var total int64

	n, err := fmt.Fprintln(w, strings.Join(df.Columns(), "\t"))
	total += int64(n)
	if err != nil {
		return total, err
	}

	rows, err := df.rowSeq()
	if err != nil {
		return total, err
	}
	for _, rec := range rows {
		cells, err := df.activeCells(rec)
		if err != nil {
			return total, err
		}
		n, err := fmt.Fprintln(w, strings.Join(cells, "\t"))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String renders the view as WriteTo does. Rendering failures cannot
// occur against the in-memory builder, so String has no error return.
func (df *DataFrame) String() string {
	var sb strings.Builder
	_, _ = df.WriteTo(&sb)
	return sb.String()
}
