package data

import (
	"context"
	"errors"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"workbook_service/internal/domain"
	"workbook_service/internal/pagerange"
	"workbook_service/internal/service"
)

type Tx struct {
	tx pgx.Tx
}

var _ service.Tx = (*Tx)(nil)

func (t *Tx) CreateWorkbook(ctx context.Context, workbook *domain.Workbook) error {
	query := `
INSERT INTO workbooks (user_id, title)
VALUES ($1, $2)
RETURNING id, created_at
`
	err := t.tx.QueryRow(ctx, query, workbook.UserID, workbook.Title).Scan(&workbook.ID, &workbook.CreatedAt)
	return handleError(err)
}

func (t *Tx) TombstoneWorkbook(ctx context.Context, id int64) error {
	tag, err := t.tx.Exec(ctx, `UPDATE workbooks SET is_deleted = TRUE WHERE id = $1`, id)
	return expectAffected(tag, err, "workbook", id)
}

func (t *Tx) TombstonePages(ctx context.Context, workbookID int64) error {
	_, err := t.tx.Exec(ctx, `UPDATE pages SET is_deleted = TRUE WHERE workbook_id = $1`, workbookID)
	return handleError(err)
}

// UpsertPage writes the completion flag of one page, reviving a tombstoned
// row if there is one.
func (t *Tx) UpsertPage(ctx context.Context, workbookID int64, number int, completed bool) (*domain.Page, error) {
	query := `
INSERT INTO pages (workbook_id, number, completed)
VALUES ($1, $2, $3)
ON CONFLICT (workbook_id, number)
DO UPDATE SET completed = EXCLUDED.completed, is_deleted = FALSE
RETURNING id, workbook_id, number, completed, is_deleted
`
	var page domain.Page
	if err := pgxscan.Get(ctx, t.tx, &page, query, workbookID, number, completed); err != nil {
		return nil, handleError(err)
	}
	return &page, nil
}

func (t *Tx) CreateAssignment(ctx context.Context, assignment *domain.Assignment) error {
	query := `
INSERT INTO assignments (workbook_id, deadline, supplementary)
VALUES ($1, $2, $3)
RETURNING id, created_at
`
	err := t.tx.QueryRow(ctx, query,
		assignment.WorkbookID,
		assignment.Deadline,
		assignment.Supplementary,
	).Scan(&assignment.ID, &assignment.CreatedAt)
	return handleError(err)
}

func (t *Tx) GetAssignmentForUpdate(ctx context.Context, id int64) (*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = $1 FOR UPDATE`

	var assignment domain.Assignment
	if err := pgxscan.Get(ctx, t.tx, &assignment, query, id); err != nil {
		return nil, handleError(err)
	}
	if err := loadRanges(ctx, t.tx, []*domain.Assignment{&assignment}); err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (t *Tx) UpdateAssignment(ctx context.Context, assignment *domain.Assignment) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE assignments SET supplementary = $2, updated_at = $3 WHERE id = $1`,
		assignment.ID, assignment.Supplementary, assignment.UpdatedAt,
	)
	return expectAffected(tag, err, "assignment", assignment.ID)
}

func (t *Tx) TombstoneAssignment(ctx context.Context, id int64) error {
	tag, err := t.tx.Exec(ctx, `UPDATE assignments SET is_deleted = TRUE WHERE id = $1`, id)
	return expectAffected(tag, err, "assignment", id)
}

func (t *Tx) ListAssignmentIDsByWorkbook(ctx context.Context, workbookID int64) ([]int64, error) {
	var ids []int64
	err := pgxscan.Select(ctx, t.tx, &ids,
		`SELECT id FROM assignments WHERE workbook_id = $1 AND NOT is_deleted ORDER BY id`,
		workbookID,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return ids, nil
}

func (t *Tx) CreatePageRange(ctx context.Context, r pagerange.Range) (*domain.PageRange, error) {
	query := `
INSERT INTO page_ranges (start_page, end_page)
VALUES ($1, $2)
RETURNING id, start_page, end_page, is_deleted
`
	var pr domain.PageRange
	if err := pgxscan.Get(ctx, t.tx, &pr, query, r.Start, r.End); err != nil {
		return nil, handleError(err)
	}
	return &pr, nil
}

func (t *Tx) ListAttachedRanges(ctx context.Context, assignmentID int64) ([]domain.PageRange, error) {
	query := `
SELECT pr.id, pr.start_page, pr.end_page, pr.is_deleted
FROM assignment_page_ranges apr
JOIN page_ranges pr ON pr.id = apr.page_range_id
WHERE apr.assignment_id = $1
ORDER BY pr.id
`
	var ranges []domain.PageRange
	if err := pgxscan.Select(ctx, t.tx, &ranges, query, assignmentID); err != nil {
		return nil, handleError(err)
	}
	return ranges, nil
}

func (t *Tx) AttachRanges(ctx context.Context, assignmentID int64, ranges []domain.PageRange) error {
	if len(ranges) == 0 {
		return nil
	}
	_, err := t.tx.CopyFrom(ctx,
		pgx.Identifier{"assignment_page_ranges"},
		[]string{"assignment_id", "page_range_id"},
		pgx.CopyFromSlice(len(ranges), func(i int) ([]any, error) {
			return []any{assignmentID, ranges[i].ID}, nil
		}),
	)
	return handleError(err)
}

// ClearRanges detaches every range from the assignment. The range rows
// themselves are kept.
func (t *Tx) ClearRanges(ctx context.Context, assignmentID int64) error {
	_, err := t.tx.Exec(ctx, `DELETE FROM assignment_page_ranges WHERE assignment_id = $1`, assignmentID)
	return handleError(err)
}

func (t *Tx) TombstoneRanges(ctx context.Context, assignmentID int64) error {
	query := `
UPDATE page_ranges
SET is_deleted = TRUE
WHERE id IN (
	SELECT page_range_id FROM assignment_page_ranges WHERE assignment_id = $1
)
`
	_, err := t.tx.Exec(ctx, query, assignmentID)
	return handleError(err)
}

func (t *Tx) Commit(ctx context.Context) error {
	return handleError(t.tx.Commit(ctx))
}

func (t *Tx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return handleError(err)
}
