package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"workbook_service/internal/domain"
	"workbook_service/internal/errdefs"
	"workbook_service/internal/metrics"
	"workbook_service/internal/pagerange"
	"workbook_service/internal/progress"
)

type AddType string

const (
	AddTypeNew AddType = "new"
	AddTypeTry AddType = "try"
)

type AddStatus string

const (
	AddStatusCreated  AddStatus = "created"
	AddStatusConflict AddStatus = "conflict"
)

type AddAssignmentInput struct {
	WorkbookID    int64
	Deadline      string
	Supplementary string
	Ranges        []pagerange.Range
	AddType       AddType
}

type AddAssignmentResult struct {
	Status         AddStatus
	Assignment     *domain.Assignment
	ConflictingIDs []int64
}

type MergeAssignmentInput struct {
	WorkbookID         int64
	TargetAssignmentID int64
	Supplementary      string
	Ranges             []pagerange.Range
}

type Reminder struct {
	AssignmentID         int64     `json:"assignment_id"`
	WorkbookID           int64     `json:"workbook_id"`
	WorkbookTitle        string    `json:"workbook_title"`
	UserID               string    `json:"user_id"`
	Deadline             time.Time `json:"deadline"`
	IncompletePageRanges [][2]int  `json:"incomplete_page_ranges"`
	CompletedFraction    string    `json:"completed_fraction"`
}

type AssignmentService struct {
	store     Store
	owner     OwnershipValidator
	publisher EventPublisher
	recorder  metrics.Recorder
}

func NewAssignmentService(
	store Store,
	owner OwnershipValidator,
	publisher EventPublisher,
	recorder metrics.Recorder,
) *AssignmentService {
	return &AssignmentService{
		store:     store,
		owner:     owner,
		publisher: publisher,
		recorder:  recorder,
	}
}

// AddAssignment creates an assignment unless another active assignment of
// the workbook already has the same deadline and the caller asked to try
// first, in which case the conflicting ids are returned and nothing is
// written.
func (s *AssignmentService) AddAssignment(ctx context.Context, userID uuid.UUID, input *AddAssignmentInput) (_ *AddAssignmentResult, err error) {
	defer observe(s.recorder, "add_assignment", time.Now(), &err)

	if input.WorkbookID == 0 {
		return nil, fmt.Errorf("%w: workbook id is required", errdefs.ErrValidation)
	}
	if _, err := s.owner.ValidateWorkbook(ctx, userID, input.WorkbookID); err != nil {
		return nil, err
	}

	deadline, err := parseDeadline(input.Deadline)
	if err != nil {
		return nil, err
	}

	ranges, err := pagerange.Normalize(input.Ranges)
	if err != nil {
		return nil, err
	}

	duplicates, err := s.store.FindDuplicateAssignments(ctx, input.WorkbookID, deadline)
	if err != nil {
		return nil, err
	}

	if input.AddType != AddTypeNew && len(duplicates) > 0 {
		if input.AddType == AddTypeTry {
			return &AddAssignmentResult{Status: AddStatusConflict, ConflictingIDs: duplicates}, nil
		}
		return nil, fmt.Errorf("%w: invalid add type %q", errdefs.ErrValidation, input.AddType)
	}

	assignment, err := s.createAssignment(ctx, input.WorkbookID, deadline, input.Supplementary, ranges)
	if err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, assignmentKey(assignment.ID), Event{
		Type:         EventAssignmentCreated,
		UserID:       userID.String(),
		WorkbookID:   assignment.WorkbookID,
		AssignmentID: assignment.ID,
		Ranges:       pagerange.Pairs(assignment.ActiveRanges()),
	})

	return &AddAssignmentResult{Status: AddStatusCreated, Assignment: assignment}, nil
}

func (s *AssignmentService) createAssignment(
	ctx context.Context,
	workbookID int64,
	deadline time.Time,
	supplementary string,
	ranges []pagerange.Range,
) (*domain.Assignment, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	assignment := &domain.Assignment{
		WorkbookID:    workbookID,
		Deadline:      deadline,
		Supplementary: supplementary,
	}
	if err := tx.CreateAssignment(ctx, assignment); err != nil {
		return nil, err
	}

	// Ranges may already be attached to the new row; the supplied ranges are
	// unioned with them rather than replacing them.
	attached, err := tx.ListAttachedRanges(ctx, assignment.ID)
	if err != nil {
		return nil, err
	}
	existing := (&domain.Assignment{Ranges: attached}).ActiveRanges()

	merged, err := pagerange.Normalize(append(existing, ranges...))
	if err != nil {
		return nil, err
	}

	created, err := materialize(ctx, tx, merged)
	if err != nil {
		return nil, err
	}
	if err := tx.AttachRanges(ctx, assignment.ID, created); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	s.recorder.AddRangesMaterialized(len(created))

	assignment.Ranges = append(attached, created...)
	return assignment, nil
}

// MergeAssignment folds new ranges and supplementary text into an existing
// assignment. The target row stays locked for the whole read-modify-write,
// so concurrent merges of one assignment are applied one after another.
func (s *AssignmentService) MergeAssignment(ctx context.Context, userID uuid.UUID, input *MergeAssignmentInput) (_ *domain.Assignment, err error) {
	defer observe(s.recorder, "merge_assignment", time.Now(), &err)

	if input.WorkbookID == 0 {
		return nil, fmt.Errorf("%w: workbook id is required", errdefs.ErrValidation)
	}
	if input.TargetAssignmentID == 0 {
		return nil, fmt.Errorf("%w: merge target assignment id is required", errdefs.ErrValidation)
	}
	if _, err := s.owner.ValidateWorkbook(ctx, userID, input.WorkbookID); err != nil {
		return nil, err
	}

	ranges, err := pagerange.Normalize(input.Ranges)
	if err != nil {
		return nil, err
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	target, err := tx.GetAssignmentForUpdate(ctx, input.TargetAssignmentID)
	if err != nil {
		return nil, err
	}
	if !target.IsActive() || target.WorkbookID != input.WorkbookID {
		return nil, fmt.Errorf("%w: merge target assignment %d", errdefs.ErrNotFound, input.TargetAssignmentID)
	}

	merged, err := pagerange.Normalize(append(target.ActiveRanges(), ranges...))
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	target.Supplementary = MergeSupplementary(target.Supplementary, input.Supplementary)
	target.UpdatedAt = &now
	if err := tx.UpdateAssignment(ctx, target); err != nil {
		return nil, err
	}

	if err := tx.ClearRanges(ctx, target.ID); err != nil {
		return nil, err
	}
	created, err := materialize(ctx, tx, merged)
	if err != nil {
		return nil, err
	}
	if err := tx.AttachRanges(ctx, target.ID, created); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	s.recorder.AddRangesMaterialized(len(created))
	target.Ranges = created

	publish(ctx, s.publisher, assignmentKey(target.ID), Event{
		Type:         EventAssignmentMerged,
		UserID:       userID.String(),
		WorkbookID:   target.WorkbookID,
		AssignmentID: target.ID,
		Ranges:       pagerange.Pairs(merged),
	})

	return target, nil
}

// DeleteAssignment tombstones the assignment and its page ranges. Page
// completion rows belong to the workbook and are left alone.
func (s *AssignmentService) DeleteAssignment(ctx context.Context, userID uuid.UUID, assignmentID int64) (err error) {
	defer observe(s.recorder, "delete_assignment", time.Now(), &err)

	if assignmentID == 0 {
		return fmt.Errorf("%w: assignment id is required", errdefs.ErrValidation)
	}

	assignment, err := s.store.GetAssignment(ctx, assignmentID)
	if err != nil {
		return err
	}
	if !assignment.IsActive() {
		return fmt.Errorf("%w: assignment %d", errdefs.ErrNotFound, assignmentID)
	}
	if _, err := s.owner.ValidateWorkbook(ctx, userID, assignment.WorkbookID); err != nil {
		return err
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, tx)

	if err := tx.TombstoneRanges(ctx, assignmentID); err != nil {
		return err
	}
	if err := tx.TombstoneAssignment(ctx, assignmentID); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	publish(ctx, s.publisher, assignmentKey(assignmentID), Event{
		Type:         EventAssignmentDeleted,
		UserID:       userID.String(),
		WorkbookID:   assignment.WorkbookID,
		AssignmentID: assignmentID,
	})
	return nil
}

// ListAssignments summarizes every active assignment of the user's active
// workbooks.
func (s *AssignmentService) ListAssignments(ctx context.Context, userID uuid.UUID) (_ []*domain.AssignmentSummary, err error) {
	defer observe(s.recorder, "list_assignments", time.Now(), &err)

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id is empty", errdefs.ErrUnauthorized)
	}

	workbooks, err := s.store.ListWorkbooksByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*domain.AssignmentSummary, 0)
	for _, wb := range domain.ActiveOnly(workbooks) {
		assignments, err := s.store.ListAssignmentsByWorkbook(ctx, wb.ID)
		if err != nil {
			return nil, err
		}
		pages, err := s.store.ListPages(ctx, wb.ID)
		if err != nil {
			return nil, err
		}
		idx := progress.NewPageIndex(pages)

		for _, a := range domain.ActiveOnly(assignments) {
			report, err := progress.Evaluate(ctx, s.store, idx, a)
			if err != nil {
				return nil, err
			}
			summaries = append(summaries, &domain.AssignmentSummary{
				ID:                   a.ID,
				Type:                 "assignment",
				WorkbookID:           a.WorkbookID,
				WorkbookTitle:        wb.Title,
				Deadline:             a.Deadline,
				Supplementary:        a.Supplementary,
				AssignmentPageRanges: pagerange.Pairs(report.Assigned),
				IncompletePageRanges: pagerange.Pairs(report.Incomplete),
				CompletionPercentage: report.Percentage,
				CompletedFraction:    report.Fraction,
				CreatedAt:            a.CreatedAt,
				UpdatedAt:            a.UpdatedAt,
			})
		}
	}

	return summaries, nil
}

// DueReminders lists active assignments with a deadline in [now, now+window]
// that still have incomplete pages.
func (s *AssignmentService) DueReminders(ctx context.Context, now time.Time, window time.Duration) ([]*Reminder, error) {
	assignments, err := s.store.FindAssignmentsDueBetween(ctx, now, now.Add(window))
	if err != nil {
		return nil, err
	}

	workbooks := make(map[int64]*domain.Workbook)
	indexes := make(map[int64]progress.PageIndex)

	reminders := make([]*Reminder, 0)
	for _, a := range domain.ActiveOnly(assignments) {
		wb, ok := workbooks[a.WorkbookID]
		if !ok {
			wb, err = s.store.GetWorkbook(ctx, a.WorkbookID)
			if err != nil {
				return nil, err
			}
			pages, err := s.store.ListPages(ctx, a.WorkbookID)
			if err != nil {
				return nil, err
			}
			workbooks[a.WorkbookID] = wb
			indexes[a.WorkbookID] = progress.NewPageIndex(pages)
		}
		if !wb.IsActive() {
			continue
		}

		report, err := progress.Evaluate(ctx, s.store, indexes[a.WorkbookID], a)
		if err != nil {
			return nil, err
		}
		if len(report.Incomplete) == 0 {
			continue
		}

		reminders = append(reminders, &Reminder{
			AssignmentID:         a.ID,
			WorkbookID:           a.WorkbookID,
			WorkbookTitle:        wb.Title,
			UserID:               wb.UserID.String(),
			Deadline:             a.Deadline,
			IncompletePageRanges: pagerange.Pairs(report.Incomplete),
			CompletedFraction:    report.Fraction,
		})
	}

	return reminders, nil
}

// MergeSupplementary joins two supplementary texts with a newline when both
// carry content, otherwise keeps whichever one does.
func MergeSupplementary(existing, incoming string) string {
	hasExisting := strings.TrimSpace(existing) != ""
	hasIncoming := strings.TrimSpace(incoming) != ""

	switch {
	case hasExisting && hasIncoming:
		return existing + "\n" + incoming
	case hasExisting:
		return existing
	case hasIncoming:
		return incoming
	default:
		return ""
	}
}

func materialize(ctx context.Context, tx Tx, ranges []pagerange.Range) ([]domain.PageRange, error) {
	created := make([]domain.PageRange, 0, len(ranges))
	for _, r := range ranges {
		pr, err := tx.CreatePageRange(ctx, r)
		if err != nil {
			return nil, err
		}
		created = append(created, *pr)
	}
	return created, nil
}

func assignmentKey(id int64) string {
	return "assignment-" + strconv.FormatInt(id, 10)
}
