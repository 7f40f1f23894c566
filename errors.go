package csvframe

import "errors"

// Standard error values for the failure conditions a caller can hit.
// Every operation that fails wraps one of these, so callers can branch
// with errors.Is regardless of the added context.
var (
	// ErrFileNotFound indicates the source file does not exist
	ErrFileNotFound = errors.New("csvframe: file not found")

	// ErrUnsupportedFormat indicates an unsupported file format
	ErrUnsupportedFormat = errors.New("csvframe: unsupported file format")

	// ErrEmptyData indicates that the data source contains no records
	ErrEmptyData = errors.New("csvframe: empty data source")

	// ErrDuplicateColumnName is returned when a file header contains duplicate column names
	ErrDuplicateColumnName = errors.New("csvframe: duplicate column name")

	// ErrSizeMismatch indicates a container/mask length mismatch.
	// This is an internal invariant violation and should be unreachable
	// through the public API, but it fails loudly rather than truncating.
	ErrSizeMismatch = errors.New("csvframe: mask size mismatch")

	// ErrArityMismatch indicates that a requested column count does not
	// match the view's active column count or its declared arity
	ErrArityMismatch = errors.New("csvframe: column count mismatch")

	// ErrUnknownColumn indicates a name-based projection referenced a
	// column that is not present in the header
	ErrUnknownColumn = errors.New("csvframe: unknown column")

	// ErrCrossFrame indicates an attempt to combine or cross-select
	// frames backed by different tables
	ErrCrossFrame = errors.New("csvframe: frames are backed by different tables")

	// ErrOutOfRange indicates direct cell access beyond the loaded extents
	ErrOutOfRange = errors.New("csvframe: cell index out of range")

	// ErrConversion indicates a non-empty cell failed to parse as the requested type
	ErrConversion = errors.New("csvframe: cell conversion failed")
)
