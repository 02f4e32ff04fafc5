package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CleanHome/internal/model"
)

func event(id, taskID int64, day string, at time.Time) model.CompletionEvent {
	return model.CompletionEvent{
		ID:          id,
		TaskID:      taskID,
		Day:         day,
		CompletedAt: at,
	}
}

func TestRecordIdempotent(t *testing.T) {
	s := NewStore()
	at := time.Date(2026, time.August, 10, 9, 0, 0, 0, time.Local)

	first, created := s.Record(event(1, 100, "2026-08-10", at))
	require.True(t, created)
	assert.Equal(t, int64(1), first.ID)

	// 同一 (taskID, day) 重复记录返回已有事件
	second, created := s.Record(event(2, 100, "2026-08-10", at.Add(time.Hour)))
	assert.False(t, created)
	assert.Equal(t, int64(1), second.ID)
	assert.Equal(t, 1, s.Len())

	// 另一天是新事件
	_, created = s.Record(event(3, 100, "2026-08-11", at.AddDate(0, 0, 1)))
	assert.True(t, created)
	assert.Equal(t, 2, s.Len())
}

func TestRecordFillsDayFromTimestamp(t *testing.T) {
	s := NewStore()
	at := time.Date(2026, time.August, 10, 23, 30, 0, 0, time.Local)

	e, created := s.Record(model.CompletionEvent{ID: 1, TaskID: 5, CompletedAt: at})
	require.True(t, created)
	assert.Equal(t, "2026-08-10", e.Day)
	assert.True(t, s.IsCompletedOn(5, "2026-08-10"))
}

func TestUnrecord(t *testing.T) {
	s := NewStore()
	at := time.Date(2026, time.August, 10, 9, 0, 0, 0, time.Local)
	s.Record(event(1, 100, "2026-08-10", at))

	removed, ok := s.Unrecord(100, "2026-08-10")
	assert.True(t, ok)
	assert.Equal(t, int64(1), removed.ID)
	assert.False(t, s.IsCompletedOn(100, "2026-08-10"))
	assert.Equal(t, 0, s.Len())

	// 缺席时是 no-op
	_, ok = s.Unrecord(100, "2026-08-10")
	assert.False(t, ok)
	_, ok = s.Unrecord(999, "2026-08-11")
	assert.False(t, ok)

	// 撤销后可以再次记录
	_, created := s.Record(event(2, 100, "2026-08-10", at))
	assert.True(t, created)
}

func TestReplayLastWriteWins(t *testing.T) {
	s := NewStore()
	early := time.Date(2026, time.August, 10, 9, 0, 0, 0, time.Local)
	late := early.Add(2 * time.Hour)

	s.Record(event(99, 1, "2026-01-01", early))

	s.Replay([]model.CompletionEvent{
		event(1, 100, "2026-08-10", early),
		event(2, 100, "2026-08-10", late),
		event(3, 200, "2026-08-10", late),
		event(4, 200, "2026-08-10", early), // 较旧，应被忽略
	})

	// Replay 整体替换，旧内容不保留
	assert.False(t, s.IsCompletedOn(1, "2026-01-01"))
	assert.Equal(t, 2, s.Len())

	events := s.All()
	require.Len(t, events, 2)
	assert.Equal(t, int64(2), events[0].ID)
	assert.Equal(t, int64(3), events[1].ID)
}

func TestEventsInRangeOrdering(t *testing.T) {
	s := NewStore()
	at := time.Date(2026, time.August, 10, 9, 0, 0, 0, time.Local)

	s.Record(event(1, 30, "2026-08-12", at))
	s.Record(event(2, 10, "2026-08-12", at))
	s.Record(event(3, 20, "2026-08-10", at))
	s.Record(event(4, 5, "2026-08-14", at))

	events := s.EventsInRange("2026-08-10", "2026-08-12")
	require.Len(t, events, 3)
	assert.Equal(t, int64(20), events[0].TaskID)
	assert.Equal(t, "2026-08-10", events[0].Day)
	assert.Equal(t, int64(10), events[1].TaskID)
	assert.Equal(t, int64(30), events[2].TaskID)
}

func TestDaySet(t *testing.T) {
	s := NewStore()
	now := time.Date(2026, time.August, 10, 15, 0, 0, 0, time.Local)

	s.Record(event(1, 100, "2026-08-10", now))
	s.Record(event(2, 200, "2026-08-10", now))
	s.Record(event(3, 300, "2026-08-09", now.AddDate(0, 0, -1)))

	set := s.TodaySet(now)
	assert.Len(t, set, 2)
	assert.Contains(t, set, int64(100))
	assert.Contains(t, set, int64(200))

	assert.Empty(t, s.DaySet("2026-08-08"))
}
