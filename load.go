package csvframe

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apache/arrow/go/v18/arrow/array"
	pqfile "github.com/apache/arrow/go/v18/parquet/file"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
	"github.com/xuri/excelize/v2"
)

// Load reads the file at path into a DataFrame whose masks include every
// row and column. The file type and compression are detected from the
// extension chain (e.g. "data.csv", "data.tsv.gz", "data.parquet",
// "data.xlsx.zst"). A missing file fails with ErrFileNotFound, a header
// with duplicate column names with ErrDuplicateColumnName.
func Load(path string) (*DataFrame, error) {
	fileType, compression := detectFileType(path)
	if fileType == FileTypeUnsupported {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("csvframe: open %s: %w", path, err)
	}
	defer f.Close()

	reader, closeReader, err := compression.newReader(f)
	if err != nil {
		return nil, err
	}
	defer closeReader()

	return loadReader(reader, fileType)
}

// LoadReader reads already-decompressed data of the given type from
// reader into a DataFrame. It serves sources that are not files, such
// as strings, network bodies, or embedded data.
func LoadReader(reader io.Reader, fileType FileType) (*DataFrame, error) {
	return loadReader(reader, fileType)
}

func loadReader(reader io.Reader, fileType FileType) (*DataFrame, error) {
	var (
		tab *table
		err error
	)
	switch fileType {
	case FileTypeCSV:
		tab, err = parseDelimited(reader, csvDelimiter)
	case FileTypeTSV:
		tab, err = parseDelimited(reader, tsvDelimiter)
	case FileTypeParquet:
		tab, err = parseParquet(reader)
	case FileTypeXLSX:
		tab, err = parseXLSX(reader)
	default:
		return nil, fmt.Errorf("%w: file type %d", ErrUnsupportedFormat, fileType)
	}
	if err != nil {
		return nil, err
	}
	return fullFrame(tab)
}

// parseDelimited parses CSV or TSV data. The first row is the header;
// every field is trimmed of surrounding whitespace, and body rows are
// padded or truncated to the header width by newTable.
func parseDelimited(reader io.Reader, delimiter rune) (*table, error) {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvframe: read delimited data: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyData
	}

	h := newHeader(trimFields(rows[0]))
	records := make([]record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, newRecord(trimFields(row)))
	}
	return newTable(h, records)
}

// trimFields removes leading and trailing whitespace from every field.
func trimFields(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}

// parseParquet parses parquet data. Parquet needs random access, so the
// stream is buffered in memory first.
func parseParquet(reader io.Reader) (*table, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("csvframe: read parquet data: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	pqReader, err := pqfile.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("csvframe: create parquet reader: %w", err)
	}
	defer pqReader.Close()

	arrowReader, err := pqarrow.NewFileReader(pqReader, pqarrow.ArrowReadProperties{}, nil)
	if err != nil {
		return nil, fmt.Errorf("csvframe: create arrow reader: %w", err)
	}

	arrowTable, err := arrowReader.ReadTable(context.Background())
	if err != nil {
		return nil, fmt.Errorf("csvframe: read parquet table: %w", err)
	}
	defer arrowTable.Release()

	schema := arrowTable.Schema()
	h := make(header, schema.NumFields())
	for i, field := range schema.Fields() {
		h[i] = field.Name
	}

	tableReader := array.NewTableReader(arrowTable, 0)
	defer tableReader.Release()

	var records []record
	for tableReader.Next() {
		batch := tableReader.Record()
		numRows := batch.NumRows()
		for i := int64(0); i < numRows; i++ {
			row := make(record, batch.NumCols())
			for j, col := range batch.Columns() {
				row[j] = arrowCellString(col, int(i))
			}
			records = append(records, row)
		}
	}
	if err := tableReader.Err(); err != nil {
		return nil, fmt.Errorf("csvframe: read parquet records: %w", err)
	}

	return newTable(h, records)
}

// parseXLSX parses the first sheet of an XLSX workbook. The first row is
// the header, all later rows are records.
func parseXLSX(reader io.Reader) (*table, error) {
	workbook, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("csvframe: open XLSX data: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyData
	}

	rowIter, err := workbook.Rows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("csvframe: read sheet %s: %w", sheets[0], err)
	}
	defer rowIter.Close()

	var (
		h       header
		records []record
		first   = true
	)
	for rowIter.Next() {
		row, err := rowIter.Columns()
		if err != nil {
			return nil, fmt.Errorf("csvframe: read row in sheet %s: %w", sheets[0], err)
		}
		// Skip leading empty rows before the header
		if first && len(row) == 0 {
			continue
		}
		if first {
			h = newHeader(trimFields(row))
			first = false
			continue
		}
		records = append(records, newRecord(trimFields(row)))
	}
	if first {
		return nil, ErrEmptyData
	}

	return newTable(h, records)
}
