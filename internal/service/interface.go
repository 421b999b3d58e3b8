package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"workbook_service/internal/domain"
	"workbook_service/internal/pagerange"
)

//go:generate mockgen -source=interface.go -destination=mocks/interface.go -package=mocks

type WorkbookRepository interface {
	// GetWorkbook returns the workbook regardless of its lifecycle.
	GetWorkbook(ctx context.Context, id int64) (*domain.Workbook, error)
	ListWorkbooksByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Workbook, error)
	ListPages(ctx context.Context, workbookID int64) ([]domain.Page, error)
	CountCompletedPages(ctx context.Context, workbookID int64, r pagerange.Range) (int, error)
}

type AssignmentRepository interface {
	// GetAssignment returns the assignment with every attached range,
	// tombstoned ones included.
	GetAssignment(ctx context.Context, id int64) (*domain.Assignment, error)
	FindDuplicateAssignments(ctx context.Context, workbookID int64, deadline time.Time) ([]int64, error)
	ListAssignmentsByWorkbook(ctx context.Context, workbookID int64) ([]*domain.Assignment, error)
	FindAssignmentsDueBetween(ctx context.Context, from, to time.Time) ([]*domain.Assignment, error)
}

type TaskRepository interface {
	CreateTask(ctx context.Context, task *domain.Task) error
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasksByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	SetTaskCompleted(ctx context.Context, id int64, completed bool) error
	TombstoneTask(ctx context.Context, id int64) error
}

type Store interface {
	WorkbookRepository
	AssignmentRepository
	TaskRepository

	Begin(ctx context.Context) (Tx, error)
}

// Tx is the write side of one logical operation. Nothing is visible to
// other readers until Commit; Rollback after Commit is a no-op.
type Tx interface {
	CreateWorkbook(ctx context.Context, workbook *domain.Workbook) error
	TombstoneWorkbook(ctx context.Context, id int64) error
	TombstonePages(ctx context.Context, workbookID int64) error
	UpsertPage(ctx context.Context, workbookID int64, number int, completed bool) (*domain.Page, error)

	CreateAssignment(ctx context.Context, assignment *domain.Assignment) error
	// GetAssignmentForUpdate locks the assignment row until the end of the
	// transaction.
	GetAssignmentForUpdate(ctx context.Context, id int64) (*domain.Assignment, error)
	UpdateAssignment(ctx context.Context, assignment *domain.Assignment) error
	TombstoneAssignment(ctx context.Context, id int64) error
	ListAssignmentIDsByWorkbook(ctx context.Context, workbookID int64) ([]int64, error)

	CreatePageRange(ctx context.Context, r pagerange.Range) (*domain.PageRange, error)
	ListAttachedRanges(ctx context.Context, assignmentID int64) ([]domain.PageRange, error)
	AttachRanges(ctx context.Context, assignmentID int64, ranges []domain.PageRange) error
	ClearRanges(ctx context.Context, assignmentID int64) error
	TombstoneRanges(ctx context.Context, assignmentID int64) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// EventPublisher delivers domain events after a successful commit.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
}

type OwnershipValidator interface {
	ValidateWorkbook(ctx context.Context, userID uuid.UUID, workbookID int64) (*domain.Workbook, error)
}
