package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"clubrelay/internal/domain/entity"
	"clubrelay/internal/domain/repository"
	"clubrelay/internal/infra/persistence/model"
	"clubrelay/internal/testutil/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceRepository_Next(t *testing.T) {
	db := dbtest.NewSQLiteDB(t)
	repo := NewSequenceRepository(db)
	ctx := context.Background()

	first, err := repo.Next(ctx, "user_id", 2601)
	require.NoError(t, err)
	assert.Equal(t, int64(2601), first)

	second, err := repo.Next(ctx, "user_id", 2601)
	require.NoError(t, err)
	assert.Equal(t, int64(2602), second)

	other, err := repo.Next(ctx, "other", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), other)
}

func TestSequenceRepository_Next_Concurrent(t *testing.T) {
	db := dbtest.NewSQLiteDB(t)
	repo := NewSequenceRepository(db)
	ctx := context.Background()

	const callers = 20
	values := make(chan int64, callers)

	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := repo.Next(ctx, "user_id", 100)
			assert.NoError(t, err)
			values <- v
		}()
	}
	wg.Wait()
	close(values)

	seen := make(map[int64]bool, callers)
	for v := range values {
		assert.False(t, seen[v], "value %d handed out twice", v)
		seen[v] = true
	}
	assert.Len(t, seen, callers)
}

func TestSettingRepository_FindByKey(t *testing.T) {
	db := dbtest.NewSQLiteDB(t)
	repo := NewSettingRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.AppSettingModel{
		Key:   "notification.order.completed",
		Value: `{"title":"Done"}`,
	}).Error)

	setting, err := repo.FindByKey(ctx, "notification.order.completed")
	require.NoError(t, err)
	assert.Equal(t, `{"title":"Done"}`, setting.Value)

	_, err = repo.FindByKey(ctx, "notification.order.missing")
	assert.ErrorIs(t, err, repository.ErrSettingNotFound)
}

func TestWebhookLogRepository_ExistsRecent(t *testing.T) {
	db := dbtest.NewSQLiteDB(t)
	repo := NewWebhookLogRepository(db)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &entity.WebhookLog{
		Source: "woocommerce", Topic: "order.updated", ResourceID: "7", Status: "completed",
		DedupKey: "k1", Processed: true, ReceivedAt: now.Add(-time.Minute),
	}))
	require.NoError(t, repo.Create(ctx, &entity.WebhookLog{
		Source: "woocommerce", Topic: "order.updated", ResourceID: "8", Status: "completed",
		DedupKey: "k2", Deduplicated: true, ReceivedAt: now.Add(-time.Minute),
	}))

	found, err := repo.ExistsRecent(ctx, "k1", now.Add(-5*time.Minute))
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.ExistsRecent(ctx, "k1", now)
	require.NoError(t, err)
	assert.False(t, found, "row older than the window")

	found, err = repo.ExistsRecent(ctx, "k2", now.Add(-5*time.Minute))
	require.NoError(t, err)
	assert.False(t, found, "deduplicated rows do not count")
}

func TestPushLogRepository_CreateBatch(t *testing.T) {
	db := dbtest.NewSQLiteDB(t)
	repo := NewPushLogRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateBatch(ctx, nil))

	logs := []*entity.PushLog{
		{Email: "a@example.com", TokenPrefix: "abc", Title: "t", Body: "b", Trigger: "order.updated", Success: true},
		{Email: "a@example.com", TokenPrefix: "def", Title: "t", Body: "b", Trigger: "order.updated", Error: strPtr("boom")},
	}
	require.NoError(t, repo.CreateBatch(ctx, logs))

	var count int64
	require.NoError(t, db.Model(&model.PushNotificationLogModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
