// Package pagerange implements the inclusive page range algebra used for
// assignments and page completion: normalization, enumeration and payload
// decoding.
package pagerange

import (
	"fmt"
	"slices"

	"workbook_service/internal/errdefs"
)

// Range is an inclusive block of page numbers.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (r Range) Len() int {
	return r.End - r.Start + 1
}

func (r Range) Pair() [2]int {
	return [2]int{r.Start, r.End}
}

func validate(ranges []Range) error {
	for _, r := range ranges {
		if r.Start > r.End {
			return fmt.Errorf("%w: start %d is greater than end %d", errdefs.ErrInvalidRangeFormat, r.Start, r.End)
		}
	}
	return nil
}

// Normalize merges overlapping and touching ranges into the minimal sorted
// set. Any malformed range fails the whole call and nothing is merged.
func Normalize(ranges []Range) ([]Range, error) {
	if err := validate(ranges); err != nil {
		return nil, err
	}

	sorted := slices.Clone(ranges)
	slices.SortStableFunc(sorted, func(a, b Range) int {
		return a.Start - b.Start
	})

	merged := make([]Range, 0, len(sorted))
	for _, r := range sorted {
		if n := len(merged); n > 0 && r.Start <= merged[n-1].End+1 {
			merged[n-1].End = max(merged[n-1].End, r.End)
			continue
		}
		merged = append(merged, r)
	}

	return merged, nil
}

// Length sums the lengths of ranges.
func Length(ranges []Range) (int, error) {
	if err := validate(ranges); err != nil {
		return 0, err
	}

	total := 0
	for _, r := range ranges {
		total += r.Len()
	}
	return total, nil
}

func Pairs(ranges []Range) [][2]int {
	pairs := make([][2]int, 0, len(ranges))
	for _, r := range ranges {
		pairs = append(pairs, r.Pair())
	}
	return pairs
}
