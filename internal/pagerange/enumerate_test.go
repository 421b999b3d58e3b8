package pagerange_test

import (
	"testing"

	"workbook_service/internal/pagerange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4, 7, 8, 9}, pagerange.Expand(rs([2]int{2, 4}, [2]int{7, 9})))
	assert.Empty(t, pagerange.Expand(nil))
}

func TestCompress(t *testing.T) {
	t.Run("Runs", func(t *testing.T) {
		assert.Equal(t, rs([2]int{1, 3}, [2]int{5, 5}, [2]int{7, 8}), pagerange.Compress([]int{8, 1, 3, 2, 7, 5}))
	})

	t.Run("Empty", func(t *testing.T) {
		got := pagerange.Compress(nil)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("DuplicatesStartNewRun", func(t *testing.T) {
		got := pagerange.Compress([]int{4, 5, 5, 6, 4})
		assert.Equal(t, rs([2]int{4, 4}, [2]int{4, 5}, [2]int{5, 6}), got)

		n, err := pagerange.Length(got)
		require.NoError(t, err)
		assert.Equal(t, 5, n)
	})

	t.Run("DoesNotReorderInput", func(t *testing.T) {
		input := []int{3, 1, 2}
		pagerange.Compress(input)
		assert.Equal(t, []int{3, 1, 2}, input)
	})
}

func TestCompressExpandRoundTrip(t *testing.T) {
	normalized := rs([2]int{2, 4}, [2]int{7, 9})
	assert.Equal(t, normalized, pagerange.Compress(pagerange.Expand(normalized)))

	merged, err := pagerange.Normalize(rs([2]int{30, 31}, [2]int{1, 1}, [2]int{10, 20}, [2]int{15, 25}))
	require.NoError(t, err)
	assert.Equal(t, merged, pagerange.Compress(pagerange.Expand(merged)))
}
