package main

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"workbook_service/internal/service"
	"workbook_service/pkg/logging"
)

type reminderSource interface {
	DueReminders(ctx context.Context, now time.Time, window time.Duration) ([]*service.Reminder, error)
}

type ReminderWorker struct {
	source    reminderSource
	publisher service.EventPublisher
	logger    *logging.Logger
	topic     string
	interval  time.Duration
	window    time.Duration
	now       func() time.Time
}

func NewReminderWorker(
	source reminderSource,
	publisher service.EventPublisher,
	logger *logging.Logger,
	topic string,
	interval time.Duration,
	window time.Duration,
) *ReminderWorker {
	return &ReminderWorker{
		source:    source,
		publisher: publisher,
		logger:    logger,
		topic:     topic,
		interval:  interval,
		window:    window,
		now:       time.Now,
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "reminder worker stopped")
			return
		case <-ticker.C:
			w.processReminders(ctx)
		}
	}
}

// processReminders returns the number of reminders published.
func (w *ReminderWorker) processReminders(ctx context.Context) int {
	reminders, err := w.source.DueReminders(ctx, w.now().UTC(), w.window)
	if err != nil {
		w.logger.Error(ctx, "failed to get assignments due soon", zap.Error(err))
		return 0
	}

	sent := 0
	for _, reminder := range reminders {
		key := "assignment-" + strconv.FormatInt(reminder.AssignmentID, 10)
		if err := w.publisher.Publish(ctx, w.topic, key, reminder); err != nil {
			w.logger.Error(ctx, "failed to send reminder",
				logging.AssignmentID(reminder.AssignmentID), zap.Error(err))
			continue
		}
		sent++
	}

	if sent > 0 {
		w.logger.Info(ctx, "sent reminders", zap.Int("count", sent))
	}
	return sent
}
