// Package progress derives completion metrics for assignments from their
// active page ranges and the workbook's persisted page states.
package progress

import (
	"slices"

	"workbook_service/internal/domain"
	"workbook_service/internal/pagerange"
)

// PageStates answers page lookups for a single workbook. Implementations
// must only report active pages.
type PageStates interface {
	Lookup(number int) (domain.Page, bool)
}

// PageIndex is an in-memory PageStates snapshot of a workbook.
type PageIndex map[int]domain.Page

func NewPageIndex(pages []domain.Page) PageIndex {
	idx := make(PageIndex, len(pages))
	for _, p := range domain.ActiveOnly(pages) {
		idx[p.Number] = p
	}
	return idx
}

func (idx PageIndex) Lookup(number int) (domain.Page, bool) {
	p, ok := idx[number]
	return p, ok
}

// IncompleteRanges lists the assignment pages that have no page record or
// are not completed. Numbers are collected range by range before being
// compressed, so the tail of one assigned range and the head of a
// numerically adjacent one come out as a single range.
func IncompleteRanges(a *domain.Assignment, pages PageStates) []pagerange.Range {
	if a == nil || len(a.Ranges) == 0 {
		return []pagerange.Range{}
	}

	ranges := domain.ActiveOnly(a.Ranges)
	slices.SortStableFunc(ranges, func(x, y domain.PageRange) int {
		return x.Start - y.Start
	})

	var incomplete []int
	for _, r := range ranges {
		for n := r.Start; n <= r.End; n++ {
			page, ok := pages.Lookup(n)
			if !ok || !page.Completed {
				incomplete = append(incomplete, n)
			}
		}
	}

	return pagerange.Compress(incomplete)
}
