package pagerange_test

import (
	"encoding/json"
	"testing"

	"workbook_service/internal/errdefs"
	"workbook_service/internal/pagerange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("Pairs", func(t *testing.T) {
		got, err := pagerange.Decode([]byte(`[[1,3],[5,6]]`))
		require.NoError(t, err)
		assert.Equal(t, rs([2]int{1, 3}, [2]int{5, 6}), got)
	})

	t.Run("Objects", func(t *testing.T) {
		got, err := pagerange.Decode([]byte(`[{"start":4,"end":6}]`))
		require.NoError(t, err)
		assert.Equal(t, rs([2]int{4, 6}), got)
	})

	t.Run("KeyedMapping", func(t *testing.T) {
		got, err := pagerange.Decode([]byte(`{"b":{"start":8,"end":9},"a":[1,2]}`))
		require.NoError(t, err)
		assert.Equal(t, rs([2]int{1, 2}, [2]int{8, 9}), got)
	})

	t.Run("NullAndEmpty", func(t *testing.T) {
		for _, raw := range []string{``, `null`, `[]`, `{}`} {
			got, err := pagerange.Decode([]byte(raw))
			require.NoError(t, err, raw)
			assert.Empty(t, got, raw)
		}
	})

	t.Run("SameRangesForBothShapes", func(t *testing.T) {
		pairs, err := pagerange.Decode([]byte(`[[1,3],[4,6]]`))
		require.NoError(t, err)
		keyed, err := pagerange.Decode([]byte(`{"0":{"start":1,"end":3},"1":{"start":4,"end":6}}`))
		require.NoError(t, err)

		a, err := pagerange.Normalize(pairs)
		require.NoError(t, err)
		b, err := pagerange.Normalize(keyed)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, raw := range []string{
			`[[1,2,3]]`,
			`[[1]]`,
			`[[1.5,2]]`,
			`[["1",2]]`,
			`[{"start":1}]`,
			`[{"start":1,"end":2,"extra":3}]`,
			`[1,2]`,
			`"1-3"`,
			`[[1,2]`,
		} {
			_, err := pagerange.Decode([]byte(raw))
			assert.ErrorIs(t, err, errdefs.ErrInvalidRangeFormat, raw)
		}
	})

	t.Run("ReversedBoundsDecodeButFailNormalize", func(t *testing.T) {
		got, err := pagerange.Decode([]byte(`[[3,1]]`))
		require.NoError(t, err)
		_, err = pagerange.Normalize(got)
		assert.ErrorIs(t, err, errdefs.ErrInvalidRangeFormat)
	})
}

func TestPayloadJSON(t *testing.T) {
	var req struct {
		Ranges pagerange.Payload `json:"ranges"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"ranges":[[1,3]]}`), &req))
	assert.Equal(t, pagerange.Payload(rs([2]int{1, 3})), req.Ranges)

	err := json.Unmarshal([]byte(`{"ranges":[[1,3,4]]}`), &req)
	assert.ErrorIs(t, err, errdefs.ErrInvalidRangeFormat)

	out, err := json.Marshal(pagerange.Payload(rs([2]int{1, 3}, [2]int{5, 5})))
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,3],[5,5]]`, string(out))
}
