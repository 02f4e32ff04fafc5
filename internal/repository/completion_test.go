package repository

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

	"CleanHome/internal/model"
)

// 表结构里的 timestamptz / now() 是 PostgreSQL 方言，
// sqlite 下直接建表跑仓库逻辑
const createTableSQL = `
CREATE TABLE completion_events (
	id           INTEGER PRIMARY KEY,
	task_id      INTEGER NOT NULL,
	day          VARCHAR(10) NOT NULL,
	completed_at DATETIME NOT NULL,
	member_id    VARCHAR(64) NOT NULL DEFAULT '',
	created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX idx_completion_events_task_day ON completion_events (task_id, day);
CREATE INDEX idx_completion_events_day ON completion_events (day);
`

func newTestRepo(t *testing.T) *CompletionRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec(createTableSQL).Error)

	return NewCompletionRepository(db)
}

func testEvent(id, taskID int64, day string) *model.CompletionEvent {
	return &model.CompletionEvent{
		ID:          id,
		TaskID:      taskID,
		Day:         day,
		CompletedAt: time.Date(2026, time.August, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestUpsertCreatesAndUpdates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := testEvent(1, 100, "2026-08-10")
	first.MemberID = "m-1"
	require.NoError(t, repo.Upsert(ctx, first))

	events, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "m-1", events[0].MemberID)

	// (task_id, day) 冲突：保留原 id，更新时间戳和成员
	second := testEvent(2, 100, "2026-08-10")
	second.MemberID = "m-2"
	second.CompletedAt = second.CompletedAt.Add(3 * time.Hour)
	require.NoError(t, repo.Upsert(ctx, second))

	events, err = repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(1), events[0].ID)
	assert.Equal(t, "m-2", events[0].MemberID)
	assert.WithinDuration(t, second.CompletedAt, events[0].CompletedAt, time.Second)
}

func TestDeleteByTaskAndDay(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testEvent(1, 100, "2026-08-10")))
	require.NoError(t, repo.Upsert(ctx, testEvent(2, 100, "2026-08-11")))

	require.NoError(t, repo.DeleteByTaskAndDay(ctx, 100, "2026-08-10"))

	events, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "2026-08-11", events[0].Day)

	// 缺席时不报错
	require.NoError(t, repo.DeleteByTaskAndDay(ctx, 100, "2026-08-10"))
	require.NoError(t, repo.DeleteByTaskAndDay(ctx, 999, "2000-01-01"))
}

func TestListInRange(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testEvent(1, 30, "2026-08-12")))
	require.NoError(t, repo.Upsert(ctx, testEvent(2, 10, "2026-08-12")))
	require.NoError(t, repo.Upsert(ctx, testEvent(3, 20, "2026-08-10")))
	require.NoError(t, repo.Upsert(ctx, testEvent(4, 5, "2026-08-14")))

	events, err := repo.ListInRange(ctx, "2026-08-10", "2026-08-12")
	require.NoError(t, err)
	require.Len(t, events, 3)

	// (day, task_id) 升序
	assert.Equal(t, int64(20), events[0].TaskID)
	assert.Equal(t, int64(10), events[1].TaskID)
	assert.Equal(t, int64(30), events[2].TaskID)
}

func TestReplaceAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testEvent(1, 100, "2026-08-10")))
	require.NoError(t, repo.Upsert(ctx, testEvent(2, 200, "2026-08-10")))

	replacement := []model.CompletionEvent{
		*testEvent(10, 300, "2026-08-11"),
		*testEvent(11, 400, "2026-08-12"),
	}
	require.NoError(t, repo.ReplaceAll(ctx, replacement))

	events, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(300), events[0].TaskID)
	assert.Equal(t, int64(400), events[1].TaskID)

	// 空快照清空本地状态
	require.NoError(t, repo.ReplaceAll(ctx, nil))
	events, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}
