package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"CleanHome/internal/history"
	"CleanHome/internal/model"
	"CleanHome/internal/repository"
)

// 不建表的 sqlite 句柄，任何持久化操作都会失败
func newBrokenRepoService(t *testing.T) *HistoryService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return &HistoryService{
		store: history.NewStore(),
		repo:  repository.NewCompletionRepository(db),
	}
}

func TestUncompleteRestoresMemoryOnDeleteFailure(t *testing.T) {
	svc := newBrokenRepoService(t)

	event := model.CompletionEvent{
		ID:          1,
		TaskID:      1,
		Day:         "2026-08-10",
		CompletedAt: time.Date(2026, time.August, 10, 9, 0, 0, 0, time.Local),
	}
	svc.store.Record(event)

	removed, err := svc.Uncomplete(context.Background(), 1, "2026-08-10", "")
	require.Error(t, err)
	assert.False(t, removed)

	// 持久层删除失败时把事件放回内存日志，两边保持一致
	svc.Read(func(store *history.Store) {
		assert.True(t, store.IsCompletedOn(1, "2026-08-10"))
		events := store.EventsInRange("2026-08-10", "2026-08-10")
		require.Len(t, events, 1)
		assert.Equal(t, event, events[0])
	})
}

func TestUncompleteAbsentIsNoOp(t *testing.T) {
	svc := newBrokenRepoService(t)

	// 缺席时在碰到持久层之前就返回，no-op 而非错误
	removed, err := svc.Uncomplete(context.Background(), 1, "2026-08-10", "")
	require.NoError(t, err)
	assert.False(t, removed)
}
