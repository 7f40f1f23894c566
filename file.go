package csvframe

import (
	"path/filepath"
	"strings"
)

// FileType represents supported input file types.
type FileType int

const (
	// FileTypeCSV represents CSV file type
	FileTypeCSV FileType = iota
	// FileTypeTSV represents TSV file type
	FileTypeTSV
	// FileTypeParquet represents Parquet file type
	FileTypeParquet
	// FileTypeXLSX represents Excel XLSX file type
	FileTypeXLSX
	// FileTypeUnsupported represents unsupported file type
	FileTypeUnsupported
)

// File extensions
const (
	// extCSV is the CSV file extension
	extCSV = ".csv"
	// extTSV is the TSV file extension
	extTSV = ".tsv"
	// extParquet is the Parquet file extension
	extParquet = ".parquet"
	// extXLSX is the Excel XLSX file extension
	extXLSX = ".xlsx"
	// extGZ is the gzip compression extension
	extGZ = ".gz"
	// extBZ2 is the bzip2 compression extension
	extBZ2 = ".bz2"
	// extXZ is the xz compression extension
	extXZ = ".xz"
	// extZSTD is the zstd compression extension
	extZSTD = ".zst"
)

// File format delimiters
const (
	// csvDelimiter is the delimiter for CSV files
	csvDelimiter = ','
	// tsvDelimiter is the delimiter for TSV files
	tsvDelimiter = '\t'
)

// detectFileType determines the base file type and compression from the
// path's extension chain (e.g. "data.csv.gz").
func detectFileType(path string) (FileType, compressionType) {
	name := strings.ToLower(filepath.Base(path))

	compression := compressionNone
	switch {
	case strings.HasSuffix(name, extGZ):
		compression = compressionGZ
		name = strings.TrimSuffix(name, extGZ)
	case strings.HasSuffix(name, extBZ2):
		compression = compressionBZ2
		name = strings.TrimSuffix(name, extBZ2)
	case strings.HasSuffix(name, extXZ):
		compression = compressionXZ
		name = strings.TrimSuffix(name, extXZ)
	case strings.HasSuffix(name, extZSTD):
		compression = compressionZSTD
		name = strings.TrimSuffix(name, extZSTD)
	}

	switch filepath.Ext(name) {
	case extCSV:
		return FileTypeCSV, compression
	case extTSV:
		return FileTypeTSV, compression
	case extParquet:
		return FileTypeParquet, compression
	case extXLSX:
		return FileTypeXLSX, compression
	default:
		return FileTypeUnsupported, compression
	}
}

// delimiter returns the field delimiter for delimited file types.
func (ft FileType) delimiter() (rune, bool) {
	switch ft {
	case FileTypeCSV:
		return csvDelimiter, true
	case FileTypeTSV:
		return tsvDelimiter, true
	default:
		return 0, false
	}
}

// isSupportedFile checks if the file has a supported extension,
// including compressed variants.
func isSupportedFile(fileName string) bool {
	ft, _ := detectFileType(fileName)
	return ft != FileTypeUnsupported
}
