package csvframe

import (
	"errors"
	"testing"
)

func TestNewTable(t *testing.T) {
	t.Parallel()

	t.Run("Create table with header and records", func(t *testing.T) {
		t.Parallel()

		h := newHeader([]string{"col1", "col2"})
		records := []record{
			newRecord([]string{"val1", "val2"}),
			newRecord([]string{"val3", "val4"}),
		}

		tab, err := newTable(h, records)
		if err != nil {
			t.Fatalf("newTable() error = %v", err)
		}

		if !tab.header.equal(h) {
			t.Errorf("expected header %v, got %v", h, tab.header)
		}
		if tab.height() != 2 {
			t.Errorf("expected 2 records, got %d", tab.height())
		}
		if !tab.records[0].equal(records[0]) {
			t.Errorf("expected first record %v, got %v", records[0], tab.records[0])
		}
		if got := tab.index["col2"]; got != 1 {
			t.Errorf("expected index 1 for col2, got %d", got)
		}
	})

	t.Run("Short rows are padded to header width", func(t *testing.T) {
		t.Parallel()

		tab, err := newTable(newHeader([]string{"a", "b", "c"}), []record{
			newRecord([]string{"1"}),
		})
		if err != nil {
			t.Fatalf("newTable() error = %v", err)
		}

		want := newRecord([]string{"1", "", ""})
		if !tab.records[0].equal(want) {
			t.Errorf("expected padded record %v, got %v", want, tab.records[0])
		}
	})

	t.Run("Long rows are truncated to header width", func(t *testing.T) {
		t.Parallel()

		tab, err := newTable(newHeader([]string{"a", "b"}), []record{
			newRecord([]string{"1", "2", "3", "4"}),
		})
		if err != nil {
			t.Fatalf("newTable() error = %v", err)
		}

		want := newRecord([]string{"1", "2"})
		if !tab.records[0].equal(want) {
			t.Errorf("expected truncated record %v, got %v", want, tab.records[0])
		}
	})

	t.Run("Duplicate column names are rejected", func(t *testing.T) {
		t.Parallel()

		_, err := newTable(newHeader([]string{"a", "b", "a"}), nil)
		if !errors.Is(err, ErrDuplicateColumnName) {
			t.Errorf("expected ErrDuplicateColumnName, got %v", err)
		}
	})
}

func TestTable_Cell(t *testing.T) {
	t.Parallel()

	tab, err := newTable(newHeader([]string{"a", "b"}), []record{
		newRecord([]string{"1", "2"}),
		newRecord([]string{"3", "4"}),
	})
	if err != nil {
		t.Fatalf("newTable() error = %v", err)
	}

	t.Run("Valid access", func(t *testing.T) {
		t.Parallel()

		got, err := tab.cell(1, 0)
		if err != nil {
			t.Fatalf("cell() error = %v", err)
		}
		if got != "3" {
			t.Errorf("expected cell value 3, got %s", got)
		}
	})

	t.Run("Row out of range", func(t *testing.T) {
		t.Parallel()

		if _, err := tab.cell(2, 0); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("expected ErrOutOfRange, got %v", err)
		}
	})

	t.Run("Column out of range", func(t *testing.T) {
		t.Parallel()

		if _, err := tab.cell(0, 2); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("expected ErrOutOfRange, got %v", err)
		}
	})

	t.Run("Negative index", func(t *testing.T) {
		t.Parallel()

		if _, err := tab.cell(-1, 0); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("expected ErrOutOfRange, got %v", err)
		}
	})
}
