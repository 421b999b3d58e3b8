package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"workbook_service/internal/service"
	"workbook_service/pkg/logging"
)

type MockReminderSource struct {
	mock.Mock
}

func (m *MockReminderSource) DueReminders(ctx context.Context, now time.Time, window time.Duration) ([]*service.Reminder, error) {
	args := m.Called(ctx, now, window)
	res, _ := args.Get(0).([]*service.Reminder)
	return res, args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, key string, event any) error {
	args := m.Called(ctx, topic, key, event)
	return args.Error(0)
}

func newTestWorker(source *MockReminderSource, publisher *MockPublisher, now time.Time) *ReminderWorker {
	w := NewReminderWorker(source, publisher, logging.NewNop(), "assignment-reminders", time.Hour, 24*time.Hour)
	w.now = func() time.Time { return now }
	return w
}

func TestProcessReminders(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	t.Run("PublishesEachReminder", func(t *testing.T) {
		source := new(MockReminderSource)
		publisher := new(MockPublisher)
		first := &service.Reminder{AssignmentID: 1}
		second := &service.Reminder{AssignmentID: 2}

		source.On("DueReminders", mock.Anything, now, 24*time.Hour).Return([]*service.Reminder{first, second}, nil)
		publisher.On("Publish", mock.Anything, "assignment-reminders", "assignment-1", first).Return(errors.New("broker down"))
		publisher.On("Publish", mock.Anything, "assignment-reminders", "assignment-2", second).Return(nil)

		sent := newTestWorker(source, publisher, now).processReminders(context.Background())

		assert.Equal(t, 1, sent)
		source.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("SourceError", func(t *testing.T) {
		source := new(MockReminderSource)
		publisher := new(MockPublisher)
		source.On("DueReminders", mock.Anything, now, 24*time.Hour).Return(nil, errors.New("db down"))

		sent := newTestWorker(source, publisher, now).processReminders(context.Background())

		assert.Zero(t, sent)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReminderWorkerStops(t *testing.T) {
	w := newTestWorker(new(MockReminderSource), new(MockPublisher), time.Now())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestTopicPublisherRemapsEvents(t *testing.T) {
	publisher := new(MockPublisher)
	publisher.On("Publish", mock.Anything, "custom-events", "workbook-1", "evt").Return(nil)
	publisher.On("Publish", mock.Anything, "other", "k", "evt").Return(nil)

	p := newTopicPublisher(publisher, map[string]string{service.TopicWorkbookEvents: "custom-events"})

	assert.NoError(t, p.Publish(context.Background(), service.TopicWorkbookEvents, "workbook-1", "evt"))
	assert.NoError(t, p.Publish(context.Background(), "other", "k", "evt"))
	publisher.AssertExpectations(t)
}
