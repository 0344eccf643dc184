package postgres

import (
	"context"
	"testing"
	"time"

	"clubrelay/internal/domain/entity"
	"clubrelay/internal/domain/repository"
	"clubrelay/internal/testutil/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingRequest(userID string, autoDeleteAt time.Time) *entity.DeletionRequest {
	return &entity.DeletionRequest{
		UserID:       userID,
		Status:       entity.DeletionStatusPending,
		RequestedAt:  autoDeleteAt.Add(-24 * time.Hour),
		AutoDeleteAt: autoDeleteAt,
	}
}

func TestDeletionRequestRepository_CreateAndFindActive(t *testing.T) {
	db := dbtest.NewSQLiteDB(t)
	repo := NewDeletionRequestRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "AHC2601", "jane@example.com")

	req := newPendingRequest(user.ID, time.Now().UTC().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, req))
	assert.NotEqual(t, uuid.Nil, req.ID)

	active, err := repo.FindActiveByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, req.ID, active.ID)

	err = repo.Create(ctx, newPendingRequest(user.ID, time.Now().UTC()))
	assert.ErrorIs(t, err, repository.ErrDuplicateActiveRequest)
}

func TestDeletionRequestRepository_DeletedRequestFreesActiveSlot(t *testing.T) {
	db := dbtest.NewSQLiteDB(t)
	repo := NewDeletionRequestRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "AHC2601", "jane@example.com")

	req := newPendingRequest(user.ID, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, req))

	resolvedAt := time.Now().UTC()
	_, err := repo.Transition(ctx, req.ID, entity.DeletionTransition{
		From:       entity.ActiveDeletionStatuses,
		To:         entity.DeletionStatusDeleted,
		ResolvedAt: &resolvedAt,
	})
	require.NoError(t, err)

	_, err = repo.FindActiveByUser(ctx, user.ID)
	require.ErrorIs(t, err, repository.ErrDeletionRequestNotFound)

	require.NoError(t, repo.Create(ctx, newPendingRequest(user.ID, time.Now().UTC())))
}

func TestDeletionRequestRepository_Transition(t *testing.T) {
	db := dbtest.NewSQLiteDB(t)
	repo := NewDeletionRequestRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "AHC2601", "jane@example.com")

	req := newPendingRequest(user.ID, time.Now().UTC().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, req))

	held, err := repo.Transition(ctx, req.ID, entity.DeletionTransition{
		From: entity.ActiveDeletionStatuses,
		To:   entity.DeletionStatusOnHold,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DeletionStatusOnHold, held.Status)

	resolvedAt := time.Now().UTC()
	deleted, err := repo.Transition(ctx, req.ID, entity.DeletionTransition{
		From:       entity.ActiveDeletionStatuses,
		To:         entity.DeletionStatusDeleted,
		ResolvedAt: &resolvedAt,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DeletionStatusDeleted, deleted.Status)
	assert.NotNil(t, deleted.ResolvedAt)

	current, err := repo.Transition(ctx, req.ID, entity.DeletionTransition{
		From: entity.ActiveDeletionStatuses,
		To:   entity.DeletionStatusPending,
	})
	require.ErrorIs(t, err, repository.ErrTransitionRejected)
	assert.Equal(t, entity.DeletionStatusDeleted, current.Status)

	_, err = repo.Transition(ctx, uuid.New(), entity.DeletionTransition{
		From: entity.ActiveDeletionStatuses,
		To:   entity.DeletionStatusOnHold,
	})
	assert.ErrorIs(t, err, repository.ErrDeletionRequestNotFound)
}

func TestDeletionRequestRepository_FindDue(t *testing.T) {
	db := dbtest.NewSQLiteDB(t)
	repo := NewDeletionRequestRepository(db)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	overdue := seedUser(t, db, "AHC2601", "a@example.com")
	dueNow := seedUser(t, db, "AHC2602", "b@example.com")
	future := seedUser(t, db, "AHC2603", "c@example.com")
	held := seedUser(t, db, "AHC2604", "d@example.com")

	require.NoError(t, repo.Create(ctx, newPendingRequest(overdue.ID, now.Add(-2*time.Hour))))
	require.NoError(t, repo.Create(ctx, newPendingRequest(dueNow.ID, now)))
	require.NoError(t, repo.Create(ctx, newPendingRequest(future.ID, now.Add(time.Minute))))

	heldReq := newPendingRequest(held.ID, now.Add(-time.Hour))
	heldReq.Status = entity.DeletionStatusOnHold
	require.NoError(t, repo.Create(ctx, heldReq))

	due, err := repo.FindDue(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, overdue.ID, due[0].UserID)
	assert.Equal(t, dueNow.ID, due[1].UserID)
}

func TestDeletionRequestRepository_CascadeWithUser(t *testing.T) {
	db := dbtest.NewSQLiteDB(t)
	repo := NewDeletionRequestRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "AHC2601", "jane@example.com")

	req := newPendingRequest(user.ID, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, req))

	require.NoError(t, NewUserRepository(db).Delete(ctx, user.ID))

	_, err := repo.FindByID(ctx, req.ID)
	assert.ErrorIs(t, err, repository.ErrDeletionRequestNotFound)
}
