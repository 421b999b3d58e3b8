package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"workbook_service/internal/cache"
	"workbook_service/internal/errdefs"
	"workbook_service/internal/pagerange"
	"workbook_service/pkg/ctxdata"
	"workbook_service/pkg/logging"
	"workbook_service/pkg/retry"
)

// PageMarker applies completion updates.
type PageMarker interface {
	MarkPages(ctx context.Context, userID uuid.UUID, workbookID int64, ranges []pagerange.Range, completed bool) (int, error)
}

// Invalidator drops cached entries made stale by an applied update.
type Invalidator interface {
	Delete(ctx context.Context, key string)
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type ConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// ProgressUpdate is one message of the page-progress feed. A missing
// completed flag means the pages were completed.
type ProgressUpdate struct {
	UserID          uuid.UUID
	WorkbookID      int64
	CompletedRanges []pagerange.Range
	Completed       bool
}

type progressMessage struct {
	UserID          string            `json:"user_id"`
	WorkbookID      int64             `json:"workbook_id"`
	CompletedRanges pagerange.Payload `json:"completed_ranges"`
	Completed       *bool             `json:"completed"`
}

func DecodeProgress(data []byte) (*ProgressUpdate, error) {
	var msg progressMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(msg.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: user_id: %w", errdefs.ErrValidation, err)
	}
	if msg.WorkbookID == 0 {
		return nil, fmt.Errorf("%w: workbook_id is required", errdefs.ErrValidation)
	}

	completed := true
	if msg.Completed != nil {
		completed = *msg.Completed
	}

	return &ProgressUpdate{
		UserID:          userID,
		WorkbookID:      msg.WorkbookID,
		CompletedRanges: msg.CompletedRanges,
		Completed:       completed,
	}, nil
}

type Consumer struct {
	reader  messageReader
	marker  PageMarker
	cache   Invalidator
	logger  *logging.Logger
	retries int
	backoff time.Duration
}

func NewConsumer(cfg ConsumerConfig, marker PageMarker, invalidator Invalidator, logger *logging.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.Topic,
	})
	return newConsumer(reader, marker, invalidator, logger)
}

func newConsumer(reader messageReader, marker PageMarker, invalidator Invalidator, logger *logging.Logger) *Consumer {
	return &Consumer{
		reader:  reader,
		marker:  marker,
		cache:   invalidator,
		logger:  logger,
		retries: 3,
		backoff: 200 * time.Millisecond,
	}
}

// Run consumes until ctx is canceled. Every fetched message is committed,
// including ones that could not be applied.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info(ctx, "Consumer shutting down")
				return nil
			}
			c.logger.Error(ctx, "Failed to fetch message", zap.Error(err))
			continue
		}

		c.handle(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Error(ctx, "Failed to commit message", zap.Error(err))
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg kafka.Message) {
	update, err := DecodeProgress(msg.Value)
	if err != nil {
		c.logger.Warn(ctx, "Failed to decode progress message",
			zap.String("topic", msg.Topic),
			zap.Int64("offset", msg.Offset),
			zap.ByteString("value", msg.Value),
			zap.Error(err),
		)
		return
	}

	ctx = ctxdata.WithUserID(ctx, update.UserID)
	ctx = logging.ContextWithLogger(ctx, c.logger)

	n, err := retry.WithBackoff(ctx, c.retries, c.backoff, isTransient, func() (int, error) {
		return c.marker.MarkPages(ctx, update.UserID, update.WorkbookID, update.CompletedRanges, update.Completed)
	})
	if err != nil {
		c.logger.Warn(ctx, "Failed to apply progress message",
			logging.WorkbookID(update.WorkbookID),
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return
	}

	// Assignment listings embed completion, so the user's cached copy is stale.
	c.cache.Delete(ctx, cache.AssignmentsKey(update.UserID))

	c.logger.Debug(ctx, "Applied progress message",
		logging.WorkbookID(update.WorkbookID),
		zap.Int("pages", n),
	)
}

func isTransient(err error) bool {
	return errors.Is(err, errdefs.ErrPersistence)
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
