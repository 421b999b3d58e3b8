package progress

import (
	"context"
	"fmt"

	"workbook_service/internal/domain"
	"workbook_service/internal/pagerange"
)

// CompletedCounter counts active completed pages of a workbook inside a range.
type CompletedCounter interface {
	CountCompletedPages(ctx context.Context, workbookID int64, r pagerange.Range) (int, error)
}

// CompletionPercentage queries completed pages range by range and divides by
// the summed length of the active ranges. No ranges yields 0.
func CompletionPercentage(ctx context.Context, counter CompletedCounter, a *domain.Assignment) (float64, error) {
	total, completed := 0, 0
	for _, r := range a.ActiveRanges() {
		total += r.Len()

		n, err := counter.CountCompletedPages(ctx, a.WorkbookID, r)
		if err != nil {
			return 0, err
		}
		completed += n
	}

	if total == 0 {
		return 0, nil
	}
	return float64(completed) / float64(total) * 100, nil
}

// CompletedFraction renders "completed/total" from the assigned and
// incomplete range lists. A malformed list yields an empty string.
func CompletedFraction(incomplete, assigned []pagerange.Range) string {
	incompleteLen, err := pagerange.Length(incomplete)
	if err != nil {
		return ""
	}
	assignedLen, err := pagerange.Length(assigned)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d/%d", assignedLen-incompleteLen, assignedLen)
}

// Report holds the read-side metrics of one assignment.
type Report struct {
	Assigned   []pagerange.Range
	Incomplete []pagerange.Range
	Percentage float64
	Fraction   string
}

// Evaluate computes every metric of a. Both the percentage and the fraction
// take the summed length of the raw active ranges as their total, so
// overlapping rows count every page they cover. Only Assigned is normalized.
func Evaluate(ctx context.Context, counter CompletedCounter, pages PageStates, a *domain.Assignment) (*Report, error) {
	active := a.ActiveRanges()
	assigned, err := pagerange.Normalize(active)
	if err != nil {
		assigned = active
	}

	incomplete := IncompleteRanges(a, pages)

	percentage, err := CompletionPercentage(ctx, counter, a)
	if err != nil {
		return nil, err
	}

	return &Report{
		Assigned:   assigned,
		Incomplete: incomplete,
		Percentage: percentage,
		Fraction:   CompletedFraction(incomplete, active),
	}, nil
}
