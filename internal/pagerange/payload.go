package pagerange

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"workbook_service/internal/errdefs"
)

// Payload is the wire form of a range list. It accepts a list of
// [start, end] pairs, a list of {"start", "end"} objects, or a keyed mapping
// whose values are either of those.
type Payload []Range

func (p *Payload) UnmarshalJSON(data []byte) error {
	ranges, err := Decode(data)
	if err != nil {
		return err
	}
	*p = ranges
	return nil
}

func (p Payload) MarshalJSON() ([]byte, error) {
	return json.Marshal(Pairs(p))
}

// Decode converts a raw range payload into a flat range list. It checks
// shape and integer bounds only; ordering is left to Normalize.
func Decode(data []byte) ([]Range, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []Range{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", errdefs.ErrInvalidRangeFormat, err)
	}

	var items []any
	switch t := v.(type) {
	case []any:
		items = t
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			items = append(items, t[k])
		}
	default:
		return nil, fmt.Errorf("%w: ranges must be a list or a mapping", errdefs.ErrInvalidRangeFormat)
	}

	ranges := make([]Range, 0, len(items))
	for _, item := range items {
		r, err := decodeItem(item)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

func decodeItem(item any) (Range, error) {
	var start, end any
	switch t := item.(type) {
	case []any:
		if len(t) != 2 {
			return Range{}, fmt.Errorf("%w: each range must contain exactly two elements, got %d", errdefs.ErrInvalidRangeFormat, len(t))
		}
		start, end = t[0], t[1]
	case map[string]any:
		var okStart, okEnd bool
		start, okStart = t["start"]
		end, okEnd = t["end"]
		if !okStart || !okEnd || len(t) != 2 {
			return Range{}, fmt.Errorf("%w: range object must have exactly start and end", errdefs.ErrInvalidRangeFormat)
		}
	default:
		return Range{}, fmt.Errorf("%w: unsupported range element %v", errdefs.ErrInvalidRangeFormat, item)
	}

	s, err := toInt(start)
	if err != nil {
		return Range{}, err
	}
	e, err := toInt(end)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: s, End: e}, nil
}

func toInt(v any) (int, error) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%w: bound %v is not an integer", errdefs.ErrInvalidRangeFormat, v)
	}
	i, err := strconv.Atoi(n.String())
	if err != nil {
		return 0, fmt.Errorf("%w: bound %s is not an integer", errdefs.ErrInvalidRangeFormat, n)
	}
	return i, nil
}
