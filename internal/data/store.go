package data

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"workbook_service/internal/domain"
	"workbook_service/internal/pagerange"
	"workbook_service/internal/service"
)

const assignmentColumns = `
	id, workbook_id, deadline, supplementary,
	created_at, updated_at, is_deleted
`

// DB is the part of *pgxpool.Pool the store uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

type Store struct {
	db DB
}

var _ service.Store = (*Store)(nil)

func NewStore(db DB) *Store {
	return &Store{db: db}
}

func (s *Store) Begin(ctx context.Context) (service.Tx, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, handleError(err)
	}
	return &Tx{tx: tx}, nil
}

func (s *Store) GetWorkbook(ctx context.Context, id int64) (*domain.Workbook, error) {
	query := `
SELECT id, user_id, title, created_at, is_deleted
FROM workbooks
WHERE id = $1
`
	var workbook domain.Workbook
	if err := pgxscan.Get(ctx, s.db, &workbook, query, id); err != nil {
		return nil, handleError(err)
	}
	return &workbook, nil
}

func (s *Store) ListWorkbooksByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Workbook, error) {
	query := `
SELECT id, user_id, title, created_at, is_deleted
FROM workbooks
WHERE user_id = $1
ORDER BY id
`
	var workbooks []*domain.Workbook
	if err := pgxscan.Select(ctx, s.db, &workbooks, query, userID); err != nil {
		return nil, handleError(err)
	}
	return workbooks, nil
}

func (s *Store) ListPages(ctx context.Context, workbookID int64) ([]domain.Page, error) {
	query := `
SELECT id, workbook_id, number, completed, is_deleted
FROM pages
WHERE workbook_id = $1
ORDER BY number
`
	var pages []domain.Page
	if err := pgxscan.Select(ctx, s.db, &pages, query, workbookID); err != nil {
		return nil, handleError(err)
	}
	return pages, nil
}

func (s *Store) CountCompletedPages(ctx context.Context, workbookID int64, r pagerange.Range) (int, error) {
	query := `
SELECT COUNT(*)
FROM pages
WHERE workbook_id = $1
	AND number BETWEEN $2 AND $3
	AND completed
	AND NOT is_deleted
`
	var n int
	if err := s.db.QueryRow(ctx, query, workbookID, r.Start, r.End).Scan(&n); err != nil {
		return 0, handleError(err)
	}
	return n, nil
}

func (s *Store) GetAssignment(ctx context.Context, id int64) (*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = $1`

	var assignment domain.Assignment
	if err := pgxscan.Get(ctx, s.db, &assignment, query, id); err != nil {
		return nil, handleError(err)
	}
	if err := loadRanges(ctx, s.db, []*domain.Assignment{&assignment}); err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (s *Store) FindDuplicateAssignments(ctx context.Context, workbookID int64, deadline time.Time) ([]int64, error) {
	query := `
SELECT id
FROM assignments
WHERE workbook_id = $1
	AND deadline = $2
	AND NOT is_deleted
ORDER BY id
`
	var ids []int64
	if err := pgxscan.Select(ctx, s.db, &ids, query, workbookID, deadline); err != nil {
		return nil, handleError(err)
	}
	return ids, nil
}

func (s *Store) ListAssignmentsByWorkbook(ctx context.Context, workbookID int64) ([]*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE workbook_id = $1 ORDER BY id`

	var assignments []*domain.Assignment
	if err := pgxscan.Select(ctx, s.db, &assignments, query, workbookID); err != nil {
		return nil, handleError(err)
	}
	if err := loadRanges(ctx, s.db, assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *Store) FindAssignmentsDueBetween(ctx context.Context, from, to time.Time) ([]*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + `
FROM assignments
WHERE deadline BETWEEN $1 AND $2
	AND NOT is_deleted
ORDER BY deadline, id
`
	var assignments []*domain.Assignment
	if err := pgxscan.Select(ctx, s.db, &assignments, query, from, to); err != nil {
		return nil, handleError(err)
	}
	if err := loadRanges(ctx, s.db, assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// attachedRange is a page range row together with the assignment it is
// attached to.
type attachedRange struct {
	AssignmentID int64 `db:"assignment_id"`
	domain.PageRange
}

// loadRanges fills Ranges of every assignment with all attached rows,
// tombstoned ones included, in creation order.
func loadRanges(ctx context.Context, q pgxscan.Querier, assignments []*domain.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.ID)
	}

	query := `
SELECT apr.assignment_id, pr.id, pr.start_page, pr.end_page, pr.is_deleted
FROM assignment_page_ranges apr
JOIN page_ranges pr ON pr.id = apr.page_range_id
WHERE apr.assignment_id = ANY($1)
ORDER BY apr.assignment_id, pr.id
`
	var rows []attachedRange
	if err := pgxscan.Select(ctx, q, &rows, query, ids); err != nil {
		return handleError(err)
	}

	groupRanges(assignments, rows)
	return nil
}

func groupRanges(assignments []*domain.Assignment, rows []attachedRange) {
	byID := make(map[int64][]domain.PageRange, len(assignments))
	for _, row := range rows {
		byID[row.AssignmentID] = append(byID[row.AssignmentID], row.PageRange)
	}
	for _, a := range assignments {
		a.Ranges = byID[a.ID]
	}
}
