package domain

import (
	"time"

	"github.com/google/uuid"

	"workbook_service/internal/pagerange"
)

type Workbook struct {
	ID        int64     `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
	Lifecycle
}

// Page tracks completion of a single page number within a workbook. It is
// created lazily the first time the number is marked.
type Page struct {
	ID         int64 `db:"id"`
	WorkbookID int64 `db:"workbook_id"`
	Number     int   `db:"number"`
	Completed  bool  `db:"completed"`
	Lifecycle
}

type WorkbookSummary struct {
	ID                  int64    `json:"id"`
	Type                string   `json:"type"`
	Title               string   `json:"title"`
	CompletedPageRanges [][2]int `json:"completed_page_ranges"`
}

// CompletedRanges compresses the active completed page numbers.
func CompletedRanges(pages []Page) []pagerange.Range {
	numbers := make([]int, 0, len(pages))
	for _, p := range ActiveOnly(pages) {
		if p.Completed {
			numbers = append(numbers, p.Number)
		}
	}
	return pagerange.Compress(numbers)
}
