package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"workbook_service/internal/metrics"
	"workbook_service/internal/pagerange"
)

type PageService struct {
	store     Store
	owner     OwnershipValidator
	publisher EventPublisher
	recorder  metrics.Recorder
}

func NewPageService(
	store Store,
	owner OwnershipValidator,
	publisher EventPublisher,
	recorder metrics.Recorder,
) *PageService {
	return &PageService{
		store:     store,
		owner:     owner,
		publisher: publisher,
		recorder:  recorder,
	}
}

// MarkPages sets the completion flag of every page covered by ranges,
// creating page rows on first use. It returns the number of rows written.
func (s *PageService) MarkPages(
	ctx context.Context,
	userID uuid.UUID,
	workbookID int64,
	ranges []pagerange.Range,
	completed bool,
) (_ int, err error) {
	defer observe(s.recorder, "mark_pages", time.Now(), &err)

	if _, err := s.owner.ValidateWorkbook(ctx, userID, workbookID); err != nil {
		return 0, err
	}

	normalized, err := pagerange.Normalize(ranges)
	if err != nil {
		return 0, err
	}
	numbers := pagerange.Expand(normalized)
	if len(numbers) == 0 {
		return 0, nil
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer rollback(ctx, tx)

	for _, n := range numbers {
		if _, err := tx.UpsertPage(ctx, workbookID, n, completed); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	s.recorder.AddPagesMarked(len(numbers))

	publish(ctx, s.publisher, workbookKey(workbookID), Event{
		Type:       EventPagesMarked,
		UserID:     userID.String(),
		WorkbookID: workbookID,
		Ranges:     pagerange.Pairs(normalized),
		Completed:  &completed,
	})

	return len(numbers), nil
}
