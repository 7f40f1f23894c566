package csvframe

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// ToSQL loads the view's included cells into a table of a fresh
// in-memory SQLite database and returns the open handle. Column storage
// types are inferred from the included values (INTEGER, REAL, or TEXT).
// The caller owns the returned database and must close it.
func (df *DataFrame) ToSQL(ctx context.Context, tableName string) (*sql.DB, error) {
	if df.Cols() == 0 {
		return nil, fmt.Errorf("%w: view has no active columns", ErrEmptyData)
	}
	columns, err := df.stringColumns(df.Cols())
	if err != nil {
		return nil, err
	}
	names := df.Columns()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("csvframe: open sqlite database: %w", err)
	}

	if err := insertView(ctx, db, tableName, names, columns, df); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// insertView creates the table and inserts every included row inside a
// single transaction.
func insertView(ctx context.Context, db *sql.DB, tableName string, names []string, columns [][]string, df *DataFrame) error {
	defs := make([]string, len(names))
	for i, name := range names {
		defs[i] = fmt.Sprintf("[%s] %s", name, inferColumnType(columns[i]))
	}
	createQuery := fmt.Sprintf("CREATE TABLE [%s] (%s)", tableName, strings.Join(defs, ", "))
	if _, err := db.ExecContext(ctx, createQuery); err != nil {
		return fmt.Errorf("csvframe: create table %s: %w", tableName, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("csvframe: begin transaction: %w", err)
	}
	defer tx.Rollback()

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	insertQuery := fmt.Sprintf("INSERT INTO [%s] VALUES (%s)", tableName, placeholders)
	stmt, err := tx.PrepareContext(ctx, insertQuery)
	if err != nil {
		return fmt.Errorf("csvframe: prepare insert: %w", err)
	}
	defer stmt.Close()

	rows, err := df.rowSeq()
	if err != nil {
		return err
	}
	for _, rec := range rows {
		cells, err := df.activeCells(rec)
		if err != nil {
			return err
		}
		args := make([]any, len(cells))
		for i, cell := range cells {
			args[i] = cell
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("csvframe: insert row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("csvframe: commit: %w", err)
	}
	return nil
}
