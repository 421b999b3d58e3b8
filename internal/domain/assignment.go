package domain

import (
	"time"

	"workbook_service/internal/pagerange"
)

// PageRange is a persisted range owned by one assignment. Rows are never
// edited; a rewrite creates new rows and replaces the association.
type PageRange struct {
	ID    int64 `db:"id"`
	Start int   `db:"start_page"`
	End   int   `db:"end_page"`
	Lifecycle
}

func (p PageRange) Range() pagerange.Range {
	return pagerange.Range{Start: p.Start, End: p.End}
}

type Assignment struct {
	ID            int64       `db:"id"`
	WorkbookID    int64       `db:"workbook_id"`
	Deadline      time.Time   `db:"deadline"`
	Supplementary string      `db:"supplementary"`
	Ranges        []PageRange `db:"-"`
	CreatedAt     time.Time   `db:"created_at"`
	UpdatedAt     *time.Time  `db:"updated_at"`
	Lifecycle
}

// ActiveRanges returns the assignment's non-tombstoned ranges in stored order.
func (a *Assignment) ActiveRanges() []pagerange.Range {
	if a == nil {
		return []pagerange.Range{}
	}
	active := ActiveOnly(a.Ranges)
	ranges := make([]pagerange.Range, 0, len(active))
	for _, r := range active {
		ranges = append(ranges, r.Range())
	}
	return ranges
}

type AssignmentSummary struct {
	ID                   int64      `json:"id"`
	Type                 string     `json:"type"`
	WorkbookID           int64      `json:"workbook_id"`
	WorkbookTitle        string     `json:"workbook_title"`
	Deadline             time.Time  `json:"deadline"`
	Supplementary        string     `json:"supplementary"`
	AssignmentPageRanges [][2]int   `json:"assignment_page_ranges"`
	IncompletePageRanges [][2]int   `json:"incomplete_page_ranges"`
	CompletionPercentage float64    `json:"completion_percentage"`
	CompletedFraction    string     `json:"completed_fraction"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            *time.Time `json:"updated_at"`
}
