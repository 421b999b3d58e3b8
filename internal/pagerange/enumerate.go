package pagerange

import "slices"

// Expand lists every page number covered by ranges, in range order. The
// result is sorted and unique only when ranges are normalized.
func Expand(ranges []Range) []int {
	total := 0
	for _, r := range ranges {
		if r.End >= r.Start {
			total += r.Len()
		}
	}

	numbers := make([]int, 0, total)
	for _, r := range ranges {
		for n := r.Start; n <= r.End; n++ {
			numbers = append(numbers, n)
		}
	}
	return numbers
}

// Compress groups page numbers into consecutive runs. Input order is
// irrelevant. A repeated number does not extend a run, it starts a new one,
// so the summed length of the output always equals len(numbers).
func Compress(numbers []int) []Range {
	ranges := make([]Range, 0)
	if len(numbers) == 0 {
		return ranges
	}

	sorted := slices.Clone(numbers)
	slices.Sort(sorted)

	cur := Range{Start: sorted[0], End: sorted[0]}
	for _, n := range sorted[1:] {
		if n == cur.End+1 {
			cur.End = n
			continue
		}
		ranges = append(ranges, cur)
		cur = Range{Start: n, End: n}
	}
	return append(ranges, cur)
}
