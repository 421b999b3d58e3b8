package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"workbook_service/internal/domain"
	"workbook_service/internal/errdefs"
)

// WorkbookOwnership checks that a workbook exists, is active and belongs to
// the requesting user.
type WorkbookOwnership struct {
	repo WorkbookRepository
}

func NewWorkbookOwnership(repo WorkbookRepository) *WorkbookOwnership {
	return &WorkbookOwnership{repo: repo}
}

func (o *WorkbookOwnership) ValidateWorkbook(ctx context.Context, userID uuid.UUID, workbookID int64) (*domain.Workbook, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id is empty", errdefs.ErrUnauthorized)
	}
	if workbookID == 0 {
		return nil, fmt.Errorf("%w: workbook id is required", errdefs.ErrValidation)
	}

	workbook, err := o.repo.GetWorkbook(ctx, workbookID)
	if err != nil {
		return nil, err
	}
	if !workbook.IsActive() {
		return nil, fmt.Errorf("%w: workbook %d", errdefs.ErrNotFound, workbookID)
	}
	if workbook.UserID != userID {
		return nil, fmt.Errorf("%w: workbook %d does not belong to user", errdefs.ErrUnauthorized, workbookID)
	}

	return workbook, nil
}
