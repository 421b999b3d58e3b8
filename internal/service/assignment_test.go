package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"workbook_service/internal/domain"
	"workbook_service/internal/errdefs"
	"workbook_service/internal/metrics"
	"workbook_service/internal/pagerange"
	"workbook_service/internal/service"
	"workbook_service/internal/service/mocks"
)

type fixture struct {
	store     *mocks.MockStore
	tx        *mocks.MockTx
	owner     *mocks.MockOwnershipValidator
	publisher *mocks.MockEventPublisher
}

func setup(t *testing.T) (*service.AssignmentService, *fixture) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		store:     mocks.NewMockStore(ctrl),
		tx:        mocks.NewMockTx(ctrl),
		owner:     mocks.NewMockOwnershipValidator(ctrl),
		publisher: mocks.NewMockEventPublisher(ctrl),
	}
	svc := service.NewAssignmentService(f.store, f.owner, f.publisher, metrics.NewNop())
	return svc, f
}

// expectTx wires a transaction that is rolled back on return. Rollback after
// Commit is a no-op on the real store.
func (f *fixture) expectTx() {
	f.store.EXPECT().Begin(gomock.Any()).Return(f.tx, nil)
	f.tx.EXPECT().Rollback(gomock.Any()).Return(nil)
}

func (f *fixture) expectOwner(userID uuid.UUID, workbookID int64) {
	f.owner.EXPECT().ValidateWorkbook(gomock.Any(), userID, workbookID).
		Return(&domain.Workbook{ID: workbookID, UserID: userID, Title: "Algebra"}, nil)
}

var deadline = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func TestAddAssignment(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("CreatesWithNormalizedRanges", func(t *testing.T) {
		svc, f := setup(t)
		f.expectOwner(userID, 7)
		f.store.EXPECT().FindDuplicateAssignments(gomock.Any(), int64(7), deadline).Return(nil, nil)
		f.expectTx()
		f.tx.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *domain.Assignment) error {
				assert.Equal(t, "read carefully", a.Supplementary)
				a.ID = 42
				return nil
			})
		f.tx.EXPECT().ListAttachedRanges(gomock.Any(), int64(42)).Return(nil, nil)
		f.tx.EXPECT().CreatePageRange(gomock.Any(), pagerange.Range{Start: 1, End: 6}).
			Return(&domain.PageRange{ID: 100, Start: 1, End: 6}, nil)
		f.tx.EXPECT().AttachRanges(gomock.Any(), int64(42), []domain.PageRange{{ID: 100, Start: 1, End: 6}}).Return(nil)
		f.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), service.TopicWorkbookEvents, "assignment-42", gomock.Any()).Return(nil)

		res, err := svc.AddAssignment(ctx, userID, &service.AddAssignmentInput{
			WorkbookID:    7,
			Deadline:      "2024-06-01T00:00:00Z",
			Supplementary: "read carefully",
			Ranges:        []pagerange.Range{{Start: 4, End: 6}, {Start: 1, End: 3}},
			AddType:       service.AddTypeNew,
		})
		require.NoError(t, err)
		assert.Equal(t, service.AddStatusCreated, res.Status)
		assert.Equal(t, int64(42), res.Assignment.ID)
		assert.Equal(t, deadline, res.Assignment.Deadline)
		assert.Equal(t, []pagerange.Range{{Start: 1, End: 6}}, res.Assignment.ActiveRanges())
	})

	t.Run("UnionsWithAlreadyAttachedRanges", func(t *testing.T) {
		svc, f := setup(t)
		f.expectOwner(userID, 7)
		f.store.EXPECT().FindDuplicateAssignments(gomock.Any(), int64(7), deadline).Return(nil, nil)
		f.expectTx()
		f.tx.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *domain.Assignment) error {
				a.ID = 42
				return nil
			})
		attached := []domain.PageRange{
			{ID: 5, Start: 1, End: 2},
			{ID: 6, Start: 20, End: 30, Lifecycle: domain.Lifecycle{Deleted: true}},
			{ID: 7, Start: 9, End: 9},
		}
		f.tx.EXPECT().ListAttachedRanges(gomock.Any(), int64(42)).Return(attached, nil)

		created := []domain.PageRange{{ID: 101, Start: 1, End: 4}, {ID: 102, Start: 9, End: 12}}
		gomock.InOrder(
			f.tx.EXPECT().CreatePageRange(gomock.Any(), pagerange.Range{Start: 1, End: 4}).Return(&created[0], nil),
			f.tx.EXPECT().CreatePageRange(gomock.Any(), pagerange.Range{Start: 9, End: 12}).Return(&created[1], nil),
		)
		f.tx.EXPECT().AttachRanges(gomock.Any(), int64(42), created).Return(nil)
		f.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), service.TopicWorkbookEvents, "assignment-42", gomock.Any()).Return(nil)

		res, err := svc.AddAssignment(ctx, userID, &service.AddAssignmentInput{
			WorkbookID: 7,
			Deadline:   "2024-06-01T00:00:00Z",
			Ranges:     []pagerange.Range{{Start: 10, End: 12}, {Start: 3, End: 4}},
			AddType:    service.AddTypeNew,
		})
		require.NoError(t, err)

		// The tombstoned row stays out of the union but remains attached.
		assert.Len(t, res.Assignment.Ranges, 5)
		assert.NotContains(t, res.Assignment.ActiveRanges(), pagerange.Range{Start: 20, End: 30})
		merged, err := pagerange.Normalize(res.Assignment.ActiveRanges())
		require.NoError(t, err)
		assert.Equal(t, []pagerange.Range{{Start: 1, End: 4}, {Start: 9, End: 12}}, merged)
	})

	t.Run("NewIgnoresDuplicates", func(t *testing.T) {
		svc, f := setup(t)
		f.expectOwner(userID, 7)
		f.store.EXPECT().FindDuplicateAssignments(gomock.Any(), int64(7), deadline).Return([]int64{3}, nil)
		f.expectTx()
		f.tx.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).Return(nil)
		f.tx.EXPECT().ListAttachedRanges(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.tx.EXPECT().AttachRanges(gomock.Any(), gomock.Any(), []domain.PageRange{}).Return(nil)
		f.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.AddAssignment(ctx, userID, &service.AddAssignmentInput{
			WorkbookID: 7,
			Deadline:   "2024-06-01",
			AddType:    service.AddTypeNew,
		})
		require.NoError(t, err)
		assert.Equal(t, service.AddStatusCreated, res.Status)
	})

	t.Run("TryReportsConflictWithoutWriting", func(t *testing.T) {
		svc, f := setup(t)
		f.expectOwner(userID, 7)
		f.store.EXPECT().FindDuplicateAssignments(gomock.Any(), int64(7), deadline).Return([]int64{3, 9}, nil)

		res, err := svc.AddAssignment(ctx, userID, &service.AddAssignmentInput{
			WorkbookID: 7,
			Deadline:   "2024-06-01T00:00:00Z",
			Ranges:     []pagerange.Range{{Start: 1, End: 3}},
			AddType:    service.AddTypeTry,
		})
		require.NoError(t, err)
		assert.Equal(t, service.AddStatusConflict, res.Status)
		assert.Equal(t, []int64{3, 9}, res.ConflictingIDs)
		assert.Nil(t, res.Assignment)
	})

	t.Run("UnknownAddTypeWithDuplicates", func(t *testing.T) {
		svc, f := setup(t)
		f.expectOwner(userID, 7)
		f.store.EXPECT().FindDuplicateAssignments(gomock.Any(), int64(7), deadline).Return([]int64{3}, nil)

		_, err := svc.AddAssignment(ctx, userID, &service.AddAssignmentInput{
			WorkbookID: 7,
			Deadline:   "2024-06-01T00:00:00Z",
			AddType:    "maybe",
		})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("InvalidRangeRejectedBeforeLookup", func(t *testing.T) {
		svc, f := setup(t)
		f.expectOwner(userID, 7)

		_, err := svc.AddAssignment(ctx, userID, &service.AddAssignmentInput{
			WorkbookID: 7,
			Deadline:   "2024-06-01T00:00:00Z",
			Ranges:     []pagerange.Range{{Start: 5, End: 1}},
			AddType:    service.AddTypeNew,
		})
		assert.ErrorIs(t, err, errdefs.ErrInvalidRangeFormat)
	})

	t.Run("MissingDeadline", func(t *testing.T) {
		svc, f := setup(t)
		f.expectOwner(userID, 7)

		_, err := svc.AddAssignment(ctx, userID, &service.AddAssignmentInput{WorkbookID: 7, AddType: service.AddTypeNew})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("MissingWorkbook", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.AddAssignment(ctx, userID, &service.AddAssignmentInput{Deadline: "2024-06-01"})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("NotOwner", func(t *testing.T) {
		svc, f := setup(t)
		f.owner.EXPECT().ValidateWorkbook(gomock.Any(), userID, int64(7)).Return(nil, errdefs.ErrUnauthorized)

		_, err := svc.AddAssignment(ctx, userID, &service.AddAssignmentInput{WorkbookID: 7, Deadline: "2024-06-01"})
		assert.ErrorIs(t, err, errdefs.ErrUnauthorized)
	})

	t.Run("RangeWriteFailureRollsBack", func(t *testing.T) {
		svc, f := setup(t)
		f.expectOwner(userID, 7)
		f.store.EXPECT().FindDuplicateAssignments(gomock.Any(), int64(7), deadline).Return(nil, nil)
		f.expectTx()
		f.tx.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).Return(nil)
		f.tx.EXPECT().ListAttachedRanges(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.tx.EXPECT().CreatePageRange(gomock.Any(), gomock.Any()).Return(nil, errdefs.ErrPersistence)

		_, err := svc.AddAssignment(ctx, userID, &service.AddAssignmentInput{
			WorkbookID: 7,
			Deadline:   "2024-06-01T00:00:00Z",
			Ranges:     []pagerange.Range{{Start: 1, End: 2}},
			AddType:    service.AddTypeNew,
		})
		assert.ErrorIs(t, err, errdefs.ErrPersistence)
	})

	t.Run("PublishFailureIsNotFatal", func(t *testing.T) {
		svc, f := setup(t)
		f.expectOwner(userID, 7)
		f.store.EXPECT().FindDuplicateAssignments(gomock.Any(), int64(7), deadline).Return(nil, nil)
		f.expectTx()
		f.tx.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).Return(nil)
		f.tx.EXPECT().ListAttachedRanges(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.tx.EXPECT().AttachRanges(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		res, err := svc.AddAssignment(ctx, userID, &service.AddAssignmentInput{
			WorkbookID: 7,
			Deadline:   "2024-06-01T00:00:00Z",
			AddType:    service.AddTypeNew,
		})
		require.NoError(t, err)
		assert.Equal(t, service.AddStatusCreated, res.Status)
	})
}

func TestMergeAssignment(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("UnionsRangesAndSupplementary", func(t *testing.T) {
		svc, f := setup(t)
		f.expectOwner(userID, 7)
		f.expectTx()
		f.tx.EXPECT().GetAssignmentForUpdate(gomock.Any(), int64(42)).Return(&domain.Assignment{
			ID:            42,
			WorkbookID:    7,
			Deadline:      deadline,
			Supplementary: "chapter 1",
			Ranges:        []domain.PageRange{{ID: 100, Start: 1, End: 3}},
		}, nil)
		f.tx.EXPECT().UpdateAssignment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *domain.Assignment) error {
				assert.Equal(t, "chapter 1\nchapter 2", a.Supplementary)
				assert.NotNil(t, a.UpdatedAt)
				return nil
			})
		f.tx.EXPECT().ClearRanges(gomock.Any(), int64(42)).Return(nil)
		f.tx.EXPECT().CreatePageRange(gomock.Any(), pagerange.Range{Start: 1, End: 6}).
			Return(&domain.PageRange{ID: 101, Start: 1, End: 6}, nil)
		f.tx.EXPECT().AttachRanges(gomock.Any(), int64(42), []domain.PageRange{{ID: 101, Start: 1, End: 6}}).Return(nil)
		f.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), service.TopicWorkbookEvents, "assignment-42", gomock.Any()).Return(nil)

		got, err := svc.MergeAssignment(ctx, userID, &service.MergeAssignmentInput{
			WorkbookID:         7,
			TargetAssignmentID: 42,
			Supplementary:      "chapter 2",
			Ranges:             []pagerange.Range{{Start: 4, End: 6}},
		})
		require.NoError(t, err)
		assert.Equal(t, []pagerange.Range{{Start: 1, End: 6}}, got.ActiveRanges())
		assert.Equal(t, deadline, got.Deadline)
	})

	t.Run("TombstonedTarget", func(t *testing.T) {
		svc, f := setup(t)
		f.expectOwner(userID, 7)
		f.expectTx()
		f.tx.EXPECT().GetAssignmentForUpdate(gomock.Any(), int64(42)).Return(&domain.Assignment{
			ID:         42,
			WorkbookID: 7,
			Lifecycle:  domain.Lifecycle{Deleted: true},
		}, nil)

		_, err := svc.MergeAssignment(ctx, userID, &service.MergeAssignmentInput{WorkbookID: 7, TargetAssignmentID: 42})
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})

	t.Run("TargetInOtherWorkbook", func(t *testing.T) {
		svc, f := setup(t)
		f.expectOwner(userID, 7)
		f.expectTx()
		f.tx.EXPECT().GetAssignmentForUpdate(gomock.Any(), int64(42)).Return(&domain.Assignment{ID: 42, WorkbookID: 8}, nil)

		_, err := svc.MergeAssignment(ctx, userID, &service.MergeAssignmentInput{WorkbookID: 7, TargetAssignmentID: 42})
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})

	t.Run("MissingTarget", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.MergeAssignment(ctx, userID, &service.MergeAssignmentInput{WorkbookID: 7})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("InvalidRange", func(t *testing.T) {
		svc, f := setup(t)
		f.expectOwner(userID, 7)

		_, err := svc.MergeAssignment(ctx, userID, &service.MergeAssignmentInput{
			WorkbookID:         7,
			TargetAssignmentID: 42,
			Ranges:             []pagerange.Range{{Start: 3, End: 2}},
		})
		assert.ErrorIs(t, err, errdefs.ErrInvalidRangeFormat)
	})
}

func TestDeleteAssignment(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("TombstonesRangesAndAssignment", func(t *testing.T) {
		svc, f := setup(t)
		f.store.EXPECT().GetAssignment(gomock.Any(), int64(42)).Return(&domain.Assignment{ID: 42, WorkbookID: 7}, nil)
		f.expectOwner(userID, 7)
		f.expectTx()
		f.tx.EXPECT().TombstoneRanges(gomock.Any(), int64(42)).Return(nil)
		f.tx.EXPECT().TombstoneAssignment(gomock.Any(), int64(42)).Return(nil)
		f.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), "assignment-42", gomock.Any()).Return(nil)

		require.NoError(t, svc.DeleteAssignment(ctx, userID, 42))
	})

	t.Run("AlreadyDeleted", func(t *testing.T) {
		svc, f := setup(t)
		f.store.EXPECT().GetAssignment(gomock.Any(), int64(42)).
			Return(&domain.Assignment{ID: 42, WorkbookID: 7, Lifecycle: domain.Lifecycle{Deleted: true}}, nil)

		assert.ErrorIs(t, svc.DeleteAssignment(ctx, userID, 42), errdefs.ErrNotFound)
	})

	t.Run("Unknown", func(t *testing.T) {
		svc, f := setup(t)
		f.store.EXPECT().GetAssignment(gomock.Any(), int64(42)).Return(nil, errdefs.ErrNotFound)

		assert.ErrorIs(t, svc.DeleteAssignment(ctx, userID, 42), errdefs.ErrNotFound)
	})
}

func TestListAssignments(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("MergedAssignmentWithoutProgress", func(t *testing.T) {
		svc, f := setup(t)
		f.store.EXPECT().ListWorkbooksByUser(gomock.Any(), userID).Return([]*domain.Workbook{
			{ID: 7, UserID: userID, Title: "Algebra"},
			{ID: 8, UserID: userID, Title: "Gone", Lifecycle: domain.Lifecycle{Deleted: true}},
		}, nil)
		f.store.EXPECT().ListAssignmentsByWorkbook(gomock.Any(), int64(7)).Return([]*domain.Assignment{
			{
				ID:         42,
				WorkbookID: 7,
				Deadline:   deadline,
				Ranges: []domain.PageRange{
					{ID: 100, Start: 1, End: 3, Lifecycle: domain.Lifecycle{Deleted: true}},
					{ID: 101, Start: 1, End: 6},
				},
			},
			{ID: 43, WorkbookID: 7, Lifecycle: domain.Lifecycle{Deleted: true}},
		}, nil)
		f.store.EXPECT().ListPages(gomock.Any(), int64(7)).Return(nil, nil)
		f.store.EXPECT().CountCompletedPages(gomock.Any(), int64(7), pagerange.Range{Start: 1, End: 6}).Return(0, nil)

		got, err := svc.ListAssignments(ctx, userID)
		require.NoError(t, err)
		require.Len(t, got, 1)

		summary := got[0]
		assert.Equal(t, int64(42), summary.ID)
		assert.Equal(t, "Algebra", summary.WorkbookTitle)
		assert.Equal(t, [][2]int{{1, 6}}, summary.AssignmentPageRanges)
		assert.Equal(t, [][2]int{{1, 6}}, summary.IncompletePageRanges)
		assert.Zero(t, summary.CompletionPercentage)
		assert.Equal(t, "0/6", summary.CompletedFraction)
	})

	t.Run("PartiallyCompleted", func(t *testing.T) {
		svc, f := setup(t)
		f.store.EXPECT().ListWorkbooksByUser(gomock.Any(), userID).Return([]*domain.Workbook{{ID: 7, UserID: userID}}, nil)
		f.store.EXPECT().ListAssignmentsByWorkbook(gomock.Any(), int64(7)).Return([]*domain.Assignment{
			{ID: 42, WorkbookID: 7, Ranges: []domain.PageRange{{ID: 1, Start: 1, End: 5}}},
		}, nil)
		f.store.EXPECT().ListPages(gomock.Any(), int64(7)).Return([]domain.Page{{WorkbookID: 7, Number: 3, Completed: true}}, nil)
		f.store.EXPECT().CountCompletedPages(gomock.Any(), int64(7), pagerange.Range{Start: 1, End: 5}).Return(1, nil)

		got, err := svc.ListAssignments(ctx, userID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, [][2]int{{1, 2}, {4, 5}}, got[0].IncompletePageRanges)
		assert.InDelta(t, 20.0, got[0].CompletionPercentage, 1e-9)
		assert.Equal(t, "1/5", got[0].CompletedFraction)
	})

	t.Run("NoWorkbooks", func(t *testing.T) {
		svc, f := setup(t)
		f.store.EXPECT().ListWorkbooksByUser(gomock.Any(), userID).Return(nil, nil)

		got, err := svc.ListAssignments(ctx, userID)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("NoUser", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.ListAssignments(ctx, uuid.Nil)
		assert.ErrorIs(t, err, errdefs.ErrUnauthorized)
	})
}

func TestDueReminders(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC)
	owner := uuid.New()

	svc, f := setup(t)
	f.store.EXPECT().FindAssignmentsDueBetween(gomock.Any(), now, now.Add(24*time.Hour)).Return([]*domain.Assignment{
		{ID: 1, WorkbookID: 7, Deadline: deadline, Ranges: []domain.PageRange{{ID: 1, Start: 1, End: 2}}},
		{ID: 2, WorkbookID: 7, Deadline: deadline, Ranges: []domain.PageRange{{ID: 2, Start: 3, End: 3}}},
	}, nil)
	f.store.EXPECT().GetWorkbook(gomock.Any(), int64(7)).Return(&domain.Workbook{ID: 7, UserID: owner, Title: "Algebra"}, nil)
	f.store.EXPECT().ListPages(gomock.Any(), int64(7)).Return([]domain.Page{{Number: 3, Completed: true}}, nil)
	f.store.EXPECT().CountCompletedPages(gomock.Any(), int64(7), pagerange.Range{Start: 1, End: 2}).Return(0, nil)
	f.store.EXPECT().CountCompletedPages(gomock.Any(), int64(7), pagerange.Range{Start: 3, End: 3}).Return(1, nil)

	got, err := svc.DueReminders(ctx, now, 24*time.Hour)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].AssignmentID)
	assert.Equal(t, owner.String(), got[0].UserID)
	assert.Equal(t, [][2]int{{1, 2}}, got[0].IncompletePageRanges)
	assert.Equal(t, "0/2", got[0].CompletedFraction)
}

func TestMergeSupplementary(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		incoming string
		want     string
	}{
		{"Both", "a", "b", "a\nb"},
		{"OnlyExisting", "a", "", "a"},
		{"OnlyIncoming", "", "b", "b"},
		{"BlankIncoming", "a", "  ", "a"},
		{"Neither", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.MergeSupplementary(tt.existing, tt.incoming))
		})
	}
}
