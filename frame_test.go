package csvframe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadTestFrame parses CSV content into a fresh DataFrame.
func loadTestFrame(t *testing.T, content string) *DataFrame {
	t.Helper()
	df, err := LoadReader(strings.NewReader(content), FileTypeCSV)
	require.NoError(t, err)
	return df
}

const scenarioCSV = "a,b,c\n1,10,x\n2,20,y\n3,30,z\n"

func TestDataFrame_Select(t *testing.T) {
	t.Parallel()

	t.Run("Projection by name", func(t *testing.T) {
		t.Parallel()

		df := loadTestFrame(t, scenarioCSV)
		sub, err := df.Select("b", "c")
		require.NoError(t, err)

		assert.Equal(t, 2, sub.Cols())
		assert.Equal(t, []string{"b", "c"}, sub.Columns())
		assert.Equal(t, 3, sub.Rows())
	})

	t.Run("Projection keeps header order not argument order", func(t *testing.T) {
		t.Parallel()

		df := loadTestFrame(t, scenarioCSV)
		sub, err := df.Select("c", "a")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c"}, sub.Columns())
	})

	t.Run("Projection is idempotent", func(t *testing.T) {
		t.Parallel()

		df := loadTestFrame(t, scenarioCSV)
		once, err := df.Select("a", "b")
		require.NoError(t, err)
		twice, err := once.Select("a", "b")
		require.NoError(t, err)

		assert.Equal(t, once.Cols(), twice.Cols())
		assert.True(t, once.colMask.equal(twice.colMask))
		assert.True(t, once.rowMask.equal(twice.rowMask))
	})

	t.Run("Unknown column", func(t *testing.T) {
		t.Parallel()

		df := loadTestFrame(t, scenarioCSV)
		_, err := df.Select("missing")
		assert.ErrorIs(t, err, ErrUnknownColumn)
	})

	t.Run("Duplicate names fail the arity check", func(t *testing.T) {
		t.Parallel()

		df := loadTestFrame(t, scenarioCSV)
		_, err := df.Select("a", "a")
		assert.ErrorIs(t, err, ErrArityMismatch)
	})

	t.Run("Transforms never change the source view", func(t *testing.T) {
		t.Parallel()

		df := loadTestFrame(t, scenarioCSV)
		rowsBefore, colsBefore := df.Rows(), df.Cols()

		sub, err := df.Select("a")
		require.NoError(t, err)
		_, err = sub.Less(2)
		require.NoError(t, err)

		assert.Equal(t, rowsBefore, df.Rows())
		assert.Equal(t, colsBefore, df.Cols())
		assert.Same(t, df.tab, sub.tab)
	})
}

func TestDataFrame_AndOr(t *testing.T) {
	t.Parallel()

	t.Run("AND/OR row-mask algebra", func(t *testing.T) {
		t.Parallel()

		df := loadTestFrame(t, scenarioCSV)
		a, err := df.Select("a")
		require.NoError(t, err)
		b, err := df.Select("b")
		require.NoError(t, err)

		// a > 1 keeps rows 1,2; b < 30 keeps rows 0,1
		fa, err := a.Greater(1)
		require.NoError(t, err)
		fbFiltered, err := b.Less(30)
		require.NoError(t, err)
		fbAligned, err := fa.SelectRows(fbFiltered)
		require.NoError(t, err)

		and, err := fa.And(fbAligned)
		require.NoError(t, err)
		or, err := fa.Or(fbAligned)
		require.NoError(t, err)

		for i := range 3 {
			wantAnd := fa.rowMask.test(i) && fbAligned.rowMask.test(i)
			wantOr := fa.rowMask.test(i) || fbAligned.rowMask.test(i)
			assert.Equal(t, wantAnd, and.rowMask.test(i), "AND row %d", i)
			assert.Equal(t, wantOr, or.rowMask.test(i), "OR row %d", i)
		}
		assert.Equal(t, 1, and.Rows())
		assert.Equal(t, 3, or.Rows())
	})

	t.Run("Column mask of the other view is ignored", func(t *testing.T) {
		t.Parallel()

		df := loadTestFrame(t, scenarioCSV)
		a, err := df.Select("a")
		require.NoError(t, err)
		b, err := df.Select("b")
		require.NoError(t, err)

		combined, err := a.And(b)
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, combined.Columns())
	})

	t.Run("Cross-table combination fails", func(t *testing.T) {
		t.Parallel()

		df1 := loadTestFrame(t, scenarioCSV)
		df2 := loadTestFrame(t, scenarioCSV)

		_, err := df1.And(df2)
		assert.ErrorIs(t, err, ErrCrossFrame)
		_, err = df1.Or(df2)
		assert.ErrorIs(t, err, ErrCrossFrame)
	})

	t.Run("Declared arity mismatch fails", func(t *testing.T) {
		t.Parallel()

		df := loadTestFrame(t, scenarioCSV)
		one, err := df.Select("a")
		require.NoError(t, err)
		two, err := df.Select("a", "b")
		require.NoError(t, err)

		_, err = one.And(two)
		assert.ErrorIs(t, err, ErrArityMismatch)
	})
}

func TestDataFrame_CrossSelect(t *testing.T) {
	t.Parallel()

	t.Run("SelectRows applies a sibling filter", func(t *testing.T) {
		t.Parallel()

		df := loadTestFrame(t, scenarioCSV)
		sub, err := df.Select("b")
		require.NoError(t, err)
		filtered, err := sub.Less(25)
		require.NoError(t, err)

		result, err := df.SelectRows(filtered)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Rows())
		assert.Equal(t, 3, result.Cols(), "column mask of the receiver is kept")
	})

	t.Run("SelectCols adopts a sibling projection", func(t *testing.T) {
		t.Parallel()

		df := loadTestFrame(t, scenarioCSV)
		sub, err := df.Select("a", "c")
		require.NoError(t, err)

		result, err := df.SelectCols(sub)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c"}, result.Columns())
		assert.Equal(t, 3, result.Rows())
	})

	t.Run("SelectCols keeps the receiver's declared arity", func(t *testing.T) {
		t.Parallel()

		df := loadTestFrame(t, scenarioCSV)
		two, err := df.Select("a", "b")
		require.NoError(t, err)
		three, err := df.Select("a", "b", "c")
		require.NoError(t, err)

		_, err = two.SelectCols(three)
		assert.ErrorIs(t, err, ErrArityMismatch)

		other, err := df.Select("b", "c")
		require.NoError(t, err)
		swapped, err := two.SelectCols(other)
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "c"}, swapped.Columns())
	})

	t.Run("Cross-table selection fails", func(t *testing.T) {
		t.Parallel()

		df1 := loadTestFrame(t, scenarioCSV)
		df2 := loadTestFrame(t, scenarioCSV)

		_, err := df1.SelectRows(df2)
		assert.ErrorIs(t, err, ErrCrossFrame)
		_, err = df1.SelectCols(df2)
		assert.ErrorIs(t, err, ErrCrossFrame)
	})
}

func TestDataFrame_Expect(t *testing.T) {
	t.Parallel()

	df := loadTestFrame(t, scenarioCSV)

	t.Run("Matching count is accepted", func(t *testing.T) {
		t.Parallel()

		pinned, err := df.Expect(3)
		require.NoError(t, err)
		assert.Equal(t, 3, pinned.Cols())
	})

	t.Run("Mismatching count fails immediately", func(t *testing.T) {
		t.Parallel()

		_, err := df.Expect(2)
		assert.ErrorIs(t, err, ErrArityMismatch)
	})

	t.Run("Later transforms are checked against the pin", func(t *testing.T) {
		t.Parallel()

		pinned, err := df.Expect(3)
		require.NoError(t, err)
		_, err = pinned.Select("a")
		assert.NoError(t, err, "Select declares its own arity")

		_, err = pinned.Less(1, 2)
		assert.ErrorIs(t, err, ErrArityMismatch)
	})
}

func TestDataFrame_EndToEnd(t *testing.T) {
	t.Parallel()

	df := loadTestFrame(t, scenarioCSV)

	sub, err := df.Select("b")
	require.NoError(t, err)
	filtered, err := sub.Less(25)
	require.NoError(t, err)
	assert.Equal(t, 2, filtered.Rows())

	result, err := df.SelectRows(filtered)
	require.NoError(t, err)
	ids, err := result.Select("a")
	require.NoError(t, err)

	got, err := Vector[int](ids)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
}
