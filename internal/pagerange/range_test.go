package pagerange_test

import (
	"testing"

	"workbook_service/internal/errdefs"
	"workbook_service/internal/pagerange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rs(pairs ...[2]int) []pagerange.Range {
	out := make([]pagerange.Range, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, pagerange.Range{Start: p[0], End: p[1]})
	}
	return out
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input []pagerange.Range
		want  []pagerange.Range
	}{
		{"Empty", nil, rs()},
		{"Single", rs([2]int{2, 4}), rs([2]int{2, 4})},
		{"TouchingMerge", rs([2]int{1, 3}, [2]int{4, 6}), rs([2]int{1, 6})},
		{"OverlappingMerge", rs([2]int{1, 5}, [2]int{3, 8}), rs([2]int{1, 8})},
		{"GapStaysSeparate", rs([2]int{1, 3}, [2]int{5, 7}), rs([2]int{1, 3}, [2]int{5, 7})},
		{"Contained", rs([2]int{1, 10}, [2]int{3, 4}), rs([2]int{1, 10})},
		{"Unsorted", rs([2]int{9, 9}, [2]int{1, 2}, [2]int{3, 3}), rs([2]int{1, 3}, [2]int{9, 9})},
		{"SinglePages", rs([2]int{5, 5}, [2]int{5, 5}, [2]int{6, 6}), rs([2]int{5, 6})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pagerange.Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	input := rs([2]int{7, 9}, [2]int{1, 2}, [2]int{3, 5}, [2]int{12, 14}, [2]int{8, 11})

	once, err := pagerange.Normalize(input)
	require.NoError(t, err)
	twice, err := pagerange.Normalize(once)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestNormalize_OrderIndependent(t *testing.T) {
	base := rs([2]int{1, 3}, [2]int{10, 12}, [2]int{4, 4}, [2]int{20, 25}, [2]int{11, 15})
	want, err := pagerange.Normalize(base)
	require.NoError(t, err)

	perms := [][]int{
		{4, 3, 2, 1, 0},
		{2, 0, 4, 1, 3},
		{1, 4, 0, 3, 2},
	}
	for _, perm := range perms {
		permuted := make([]pagerange.Range, 0, len(base))
		for _, i := range perm {
			permuted = append(permuted, base[i])
		}
		got, err := pagerange.Normalize(permuted)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestNormalize_InvalidAbortsWithoutMutation(t *testing.T) {
	input := rs([2]int{5, 6}, [2]int{3, 1}, [2]int{1, 2})
	snapshot := append([]pagerange.Range(nil), input...)

	got, err := pagerange.Normalize(input)
	assert.ErrorIs(t, err, errdefs.ErrInvalidRangeFormat)
	assert.Nil(t, got)
	assert.Equal(t, snapshot, input)
}

func TestLength(t *testing.T) {
	t.Run("SinglePage", func(t *testing.T) {
		n, err := pagerange.Length(rs([2]int{1, 1}))
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("Sum", func(t *testing.T) {
		n, err := pagerange.Length(rs([2]int{1, 3}, [2]int{10, 14}))
		require.NoError(t, err)
		assert.Equal(t, 8, n)
	})

	t.Run("Empty", func(t *testing.T) {
		n, err := pagerange.Length(nil)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("StartAfterEnd", func(t *testing.T) {
		_, err := pagerange.Length(rs([2]int{3, 1}))
		assert.ErrorIs(t, err, errdefs.ErrInvalidRangeFormat)
	})
}

func TestPairs(t *testing.T) {
	assert.Equal(t, [][2]int{{1, 3}, {5, 5}}, pagerange.Pairs(rs([2]int{1, 3}, [2]int{5, 5})))
	assert.Equal(t, [][2]int{}, pagerange.Pairs(nil))
}
