// Package csvframe provides immutable, masked views over delimited
// tabular data loaded into memory.
//
// A file is loaded once into an immutable table of string cells. Every
// DataFrame is a lightweight view onto that table: a shared table
// reference plus a row mask and a column mask. Filtering, projection,
// and logical combination are pure functions from view to view that
// compute new masks and never copy or mutate cell data, so chaining
// operations stays cheap regardless of table size.
//
// # Features
//
//   - Load CSV, TSV, Parquet, and Excel (XLSX) files
//   - Transparent decompression of gzip, bzip2, xz, and zstandard input
//   - Column projection by name and row filtering with typed comparisons
//   - Logical AND/OR combination of filters over the same table
//   - Typed extraction into Go slices with generics
//   - Export to Apache Arrow records, in-memory SQLite tables, or back
//     to (compressed) CSV/TSV files
//
// # Basic Usage
//
//	df, err := csvframe.Load("data.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Keep the rows where col2 < 50 and col3 < 50, then extract col1.
//	sub, err := df.Select("col2", "col3")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	filtered, err := sub.Less(50, 50)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := df.SelectRows(filtered)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ids, err := result.Select("col1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	col1, err := csvframe.Vector[int](ids)
//
// All operations return a new DataFrame; the receiver is never changed.
// Two views can be combined only when they were derived from the same
// Load call. Cell conversion is strict: empty cells convert to zero for
// numeric targets, while non-empty malformed cells fail with
// ErrConversion.
//
// The package performs no I/O after loading and no locking: tables and
// masks are immutable, so views may be shared freely across goroutines
// for reading.
package csvframe
