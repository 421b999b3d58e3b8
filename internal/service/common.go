package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"workbook_service/internal/errdefs"
	"workbook_service/internal/metrics"
	"workbook_service/pkg/logging"
)

const TopicWorkbookEvents = "workbook-events"

const (
	EventAssignmentCreated = "assignment.created"
	EventAssignmentMerged  = "assignment.merged"
	EventAssignmentDeleted = "assignment.deleted"
	EventPagesMarked       = "pages.marked"
	EventWorkbookCreated   = "workbook.created"
	EventWorkbookDeleted   = "workbook.deleted"
)

type Event struct {
	Type         string    `json:"type"`
	UserID       string    `json:"user_id"`
	WorkbookID   int64     `json:"workbook_id"`
	AssignmentID int64     `json:"assignment_id,omitempty"`
	Ranges       [][2]int  `json:"ranges,omitempty"`
	Completed    *bool     `json:"completed,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

var deadlineLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// parseDeadline accepts ISO-8601 dates and date-times. Values without an
// offset are read as UTC.
func parseDeadline(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: deadline is required", errdefs.ErrValidation)
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid deadline %q, expected an ISO-8601 date-time", errdefs.ErrValidation, raw)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, errdefs.ErrInvalidRangeFormat):
		return "invalid_range"
	case errors.Is(err, errdefs.ErrValidation):
		return "validation"
	case errors.Is(err, errdefs.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, errdefs.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}

func observe(recorder metrics.Recorder, op string, start time.Time, err *error) {
	recorder.RecordOperation(op, outcome(*err), time.Since(start))
}

func rollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Error(ctx, "Failed to Rollback", zap.Error(err))
		}
	}
}

// publish is best effort: the operation already committed.
func publish(ctx context.Context, publisher EventPublisher, key string, event Event) {
	if publisher == nil {
		return
	}
	event.OccurredAt = time.Now().UTC()
	if err := publisher.Publish(ctx, TopicWorkbookEvents, key, event); err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Warn(ctx, "failed to publish event",
				zap.String("type", event.Type),
				logging.WorkbookID(event.WorkbookID),
				zap.Error(err),
			)
		}
	}
}
