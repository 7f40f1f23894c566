package csvframe

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Save writes the view's included cells to path as CSV or TSV, with the
// format and optional compression detected from the extension chain
// (e.g. "out.csv", "out.tsv.gz", "out.csv.zst"). Only the active header
// names and included rows are written, so a reloaded file contains
// exactly what the view showed.
func (df *DataFrame) Save(path string) error {
	fileType, compression := detectFileType(path)
	delimiter, ok := fileType.delimiter()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvframe: create %s: %w", path, err)
	}

	writer, closeWriter, err := compression.newWriter(f)
	if err != nil {
		f.Close()
		return err
	}

	if err := df.writeDelimited(writer, delimiter); err != nil {
		closeWriter()
		f.Close()
		return err
	}
	if err := closeWriter(); err != nil {
		f.Close()
		return fmt.Errorf("csvframe: close compressor: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("csvframe: close %s: %w", path, err)
	}
	return nil
}

// writeDelimited writes the active header and included rows through
// encoding/csv with the given delimiter.
func (df *DataFrame) writeDelimited(w io.Writer, delimiter rune) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if err := csvWriter.Write(df.Columns()); err != nil {
		return fmt.Errorf("csvframe: write header: %w", err)
	}

	rows, err := df.rowSeq()
	if err != nil {
		return err
	}
	for _, rec := range rows {
		cells, err := df.activeCells(rec)
		if err != nil {
			return err
		}
		if err := csvWriter.Write(cells); err != nil {
			return fmt.Errorf("csvframe: write row: %w", err)
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("csvframe: flush: %w", err)
	}
	return nil
}
