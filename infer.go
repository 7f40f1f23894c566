package csvframe

import (
	"strconv"
	"strings"
)

// columnType is the SQL storage type inferred for a column.
type columnType int

const (
	// columnTypeText represents TEXT column type
	columnTypeText columnType = iota
	// columnTypeInteger represents INTEGER column type
	columnTypeInteger
	// columnTypeReal represents REAL column type
	columnTypeReal
)

// String returns the SQL column type string.
func (ct columnType) String() string {
	switch ct {
	case columnTypeInteger:
		return "INTEGER"
	case columnTypeReal:
		return "REAL"
	default:
		return "TEXT"
	}
}

// inferColumnType infers the SQL storage type from the column's values.
// Empty values are skipped; a single non-numeric value makes the whole
// column TEXT, and a mix of integers and reals widens to REAL.
func inferColumnType(values []string) columnType {
	hasReal := false
	hasInteger := false

	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		if _, err := strconv.ParseInt(value, 10, 64); err == nil {
			hasInteger = true
			continue
		}
		if _, err := strconv.ParseFloat(value, 64); err == nil {
			hasReal = true
			continue
		}

		// If any value is text, the whole column is text
		return columnTypeText
	}

	if hasReal {
		return columnTypeReal
	}
	if hasInteger {
		return columnTypeInteger
	}
	return columnTypeText
}
