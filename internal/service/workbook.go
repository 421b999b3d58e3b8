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
)

type WorkbookService struct {
	store     Store
	owner     OwnershipValidator
	publisher EventPublisher
	recorder  metrics.Recorder
}

func NewWorkbookService(
	store Store,
	owner OwnershipValidator,
	publisher EventPublisher,
	recorder metrics.Recorder,
) *WorkbookService {
	return &WorkbookService{
		store:     store,
		owner:     owner,
		publisher: publisher,
		recorder:  recorder,
	}
}

func (s *WorkbookService) CreateWorkbook(ctx context.Context, userID uuid.UUID, title string) (_ *domain.Workbook, err error) {
	defer observe(s.recorder, "create_workbook", time.Now(), &err)

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id is empty", errdefs.ErrUnauthorized)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", errdefs.ErrValidation)
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	workbook := &domain.Workbook{UserID: userID, Title: title}
	if err := tx.CreateWorkbook(ctx, workbook); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, workbookKey(workbook.ID), Event{
		Type:       EventWorkbookCreated,
		UserID:     userID.String(),
		WorkbookID: workbook.ID,
	})

	return workbook, nil
}

// ListWorkbooks returns the user's active workbooks with their completed
// pages compressed into ranges.
func (s *WorkbookService) ListWorkbooks(ctx context.Context, userID uuid.UUID) (_ []*domain.WorkbookSummary, err error) {
	defer observe(s.recorder, "list_workbooks", time.Now(), &err)

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id is empty", errdefs.ErrUnauthorized)
	}

	workbooks, err := s.store.ListWorkbooksByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*domain.WorkbookSummary, 0, len(workbooks))
	for _, wb := range domain.ActiveOnly(workbooks) {
		pages, err := s.store.ListPages(ctx, wb.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &domain.WorkbookSummary{
			ID:                  wb.ID,
			Type:                "workbook",
			Title:               wb.Title,
			CompletedPageRanges: pagerange.Pairs(domain.CompletedRanges(pages)),
		})
	}

	return summaries, nil
}

// DeleteWorkbook tombstones the workbook together with its assignments,
// their page ranges and its pages in one transaction.
func (s *WorkbookService) DeleteWorkbook(ctx context.Context, userID uuid.UUID, workbookID int64) (err error) {
	defer observe(s.recorder, "delete_workbook", time.Now(), &err)

	if _, err := s.owner.ValidateWorkbook(ctx, userID, workbookID); err != nil {
		return err
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return err
	}
	defer rollback(ctx, tx)

	assignmentIDs, err := tx.ListAssignmentIDsByWorkbook(ctx, workbookID)
	if err != nil {
		return err
	}
	for _, id := range assignmentIDs {
		if err := tx.TombstoneRanges(ctx, id); err != nil {
			return err
		}
		if err := tx.TombstoneAssignment(ctx, id); err != nil {
			return err
		}
	}
	if err := tx.TombstonePages(ctx, workbookID); err != nil {
		return err
	}
	if err := tx.TombstoneWorkbook(ctx, workbookID); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	publish(ctx, s.publisher, workbookKey(workbookID), Event{
		Type:       EventWorkbookDeleted,
		UserID:     userID.String(),
		WorkbookID: workbookID,
	})
	return nil
}

func workbookKey(id int64) string {
	return "workbook-" + strconv.FormatInt(id, 10)
}
