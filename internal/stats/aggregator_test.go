package stats

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CleanHome/internal/gamification"
	"CleanHome/internal/history"
	"CleanHome/internal/model"
)

// 2026-08-12 是周三，本周周一为 2026-08-10
var wednesday = time.Date(2026, time.August, 12, 14, 0, 0, 0, time.Local)

func newStore(events ...model.CompletionEvent) *history.Store {
	s := history.NewStore()
	s.Replay(events)
	return s
}

func at(day string, hour int) time.Time {
	t, err := time.ParseInLocation(model.DayFormat, day, time.Local)
	if err != nil {
		panic(err)
	}
	return t.Add(time.Duration(hour) * time.Hour)
}

func completed(taskID int64, day string, hour int) model.CompletionEvent {
	return model.CompletionEvent{
		ID:          taskID*1000 + int64(hour),
		TaskID:      taskID,
		Day:         day,
		CompletedAt: at(day, hour),
	}
}

func TestTotals(t *testing.T) {
	// 任务 1 = 15 分钟 → 6 分；任务 2 = 5 分钟 → 5 分
	s := newStore(
		completed(1, "2026-08-10", 9),
		completed(2, "2026-08-11", 9),
	)

	assert.Equal(t, 2, TotalCompletions(s))
	assert.Equal(t, 11, TotalPoints(s))
}

func TestTotalPointsUnknownTaskUsesDefault(t *testing.T) {
	s := newStore(completed(99999, "2026-08-10", 9))

	// 目录外任务按默认时长计分
	assert.Equal(t, gamification.CalculatePoints(gamification.DefaultTaskMinutes), TotalPoints(s))
}

func TestZoneProgress(t *testing.T) {
	day := model.DayOf(wednesday)
	// Office 区共 4 个任务（31..34），完成 2 个；Kitchen 12 个任务完成 2 个
	s := newStore(
		completed(31, day, 9),
		completed(32, day, 10),
		completed(1, day, 9),
		completed(2, day, 9),
	)

	progress := ZoneProgress(s, wednesday)
	require.Len(t, progress, 8)

	byZone := make(map[string]int)
	for i, item := range progress {
		byZone[item.Zone] = i
	}

	office := progress[byZone["Office"]]
	assert.Equal(t, 2, office.Completed)
	assert.Equal(t, 4, office.Total)
	assert.Equal(t, 50, office.Percentage)

	// 2/12 = 16.67%，四舍五入到 17
	kitchen := progress[byZone["Kitchen"]]
	assert.Equal(t, 2, kitchen.Completed)
	assert.Equal(t, 12, kitchen.Total)
	assert.Equal(t, 17, kitchen.Percentage)

	bedroom := progress[byZone["Bedroom"]]
	assert.Equal(t, 0, bedroom.Completed)
	assert.Equal(t, 0, bedroom.Percentage)
}

func TestLastSevenDays(t *testing.T) {
	s := newStore(
		completed(1, "2026-08-12", 9), // 今天
		completed(2, "2026-08-12", 10),
		completed(3, "2026-08-06", 9), // 7 天窗口的第一天
		completed(4, "2026-08-05", 9), // 窗口之外
	)

	buckets := LastSevenDays(s, wednesday)
	require.Len(t, buckets, 7)

	// 最旧的一天在前
	assert.Equal(t, "2026-08-06", buckets[0].Day)
	assert.Equal(t, "Thu", buckets[0].Weekday)
	assert.Equal(t, 1, buckets[0].Count)

	assert.Equal(t, "2026-08-12", buckets[6].Day)
	assert.Equal(t, "Wed", buckets[6].Weekday)
	assert.Equal(t, 2, buckets[6].Count)

	for _, b := range buckets[1:6] {
		assert.Equal(t, 0, b.Count, "day %s", b.Day)
	}
}

func TestCurrentStreak(t *testing.T) {
	today := model.DayOf(wednesday)
	yesterday := model.DayOf(wednesday.AddDate(0, 0, -1))
	dayBefore := model.DayOf(wednesday.AddDate(0, 0, -2))

	t.Run("anchored on today", func(t *testing.T) {
		s := newStore(
			completed(1, today, 9),
			completed(1, yesterday, 9),
			completed(1, dayBefore, 9),
		)
		assert.Equal(t, 3, CurrentStreak(s, wednesday))
	})

	t.Run("today pending falls back to yesterday", func(t *testing.T) {
		s := newStore(
			completed(1, yesterday, 9),
			completed(1, dayBefore, 9),
		)
		assert.Equal(t, 2, CurrentStreak(s, wednesday))
	})

	t.Run("gap breaks the streak", func(t *testing.T) {
		s := newStore(
			completed(1, today, 9),
			completed(1, dayBefore, 9),
		)
		assert.Equal(t, 1, CurrentStreak(s, wednesday))
	})

	t.Run("neither today nor yesterday", func(t *testing.T) {
		s := newStore(completed(1, dayBefore, 9))
		assert.Equal(t, 0, CurrentStreak(s, wednesday))
	})

	t.Run("empty history", func(t *testing.T) {
		assert.Equal(t, 0, CurrentStreak(newStore(), wednesday))
	})
}

func TestWeeklyAggregates(t *testing.T) {
	s := newStore(
		completed(1, "2026-08-10", 9),  // 周一，Kitchen，15 分钟 → 6 分
		completed(2, "2026-08-10", 10), // 周一，Kitchen，5 分钟 → 5 分
		completed(25, "2026-08-11", 9), // 周二，Bedroom，5 分钟 → 5 分
		completed(1, "2026-08-09", 9),  // 周日，上一周，不计
	)

	assert.Equal(t, 3, WeeklyCompletions(s, wednesday))
	assert.Equal(t, 16, WeeklyPoints(s, wednesday))
	assert.Equal(t, 2, WeeklyDistinctDays(s, wednesday))
	assert.Equal(t, 2, WeeklyZonesTouched(s, wednesday))
}

func TestBuildBadgeStatsSpecialSignals(t *testing.T) {
	day := model.DayOf(wednesday)

	t.Run("early bird", func(t *testing.T) {
		stats := BuildBadgeStats(newStore(completed(1, day, 7)), wednesday)
		assert.True(t, stats.EarlyBird)
		assert.False(t, stats.NightOwl)
	})

	t.Run("night owl", func(t *testing.T) {
		stats := BuildBadgeStats(newStore(completed(1, day, 22)), wednesday)
		assert.True(t, stats.NightOwl)
		assert.False(t, stats.EarlyBird)
	})

	t.Run("zone mastered", func(t *testing.T) {
		// Office 区 4 个任务全部在同一天完成
		s := newStore(
			completed(31, day, 9),
			completed(32, day, 10),
			completed(33, day, 11),
			completed(34, day, 12),
		)
		assert.True(t, BuildBadgeStats(s, wednesday).ZoneMastered)

		s.Unrecord(34, day)
		assert.False(t, BuildBadgeStats(s, wednesday).ZoneMastered)
	})

	t.Run("speed demon needs five within an hour", func(t *testing.T) {
		base := at(day, 9)
		s := history.NewStore()
		for i := 0; i < 5; i++ {
			s.Record(model.CompletionEvent{
				ID:          int64(i + 1),
				TaskID:      int64(i + 1),
				Day:         day,
				CompletedAt: base.Add(time.Duration(i) * 10 * time.Minute),
			})
		}
		assert.True(t, BuildBadgeStats(s, wednesday).SpeedDemon)

		// 分散在 4 小时内则不触发
		spread := history.NewStore()
		for i := 0; i < 5; i++ {
			spread.Record(model.CompletionEvent{
				ID:          int64(i + 1),
				TaskID:      int64(i + 1),
				Day:         day,
				CompletedAt: base.Add(time.Duration(i) * time.Hour),
			})
		}
		assert.False(t, BuildBadgeStats(spread, wednesday).SpeedDemon)
	})
}

func TestUnlockedBadgesRelockOnRecompute(t *testing.T) {
	stats := gamification.BadgeStats{TotalTasks: 10, TotalPoints: 100}
	unlocked := UnlockedBadges(stats)
	assert.Contains(t, unlocked, "first-task")
	assert.Contains(t, unlocked, "task-10")
	assert.Contains(t, unlocked, "points-100")

	// 撤销完成后统计回退，徽章随之重新锁定
	stats.TotalTasks = 9
	stats.TotalPoints = 90
	unlocked = UnlockedBadges(stats)
	assert.Contains(t, unlocked, "first-task")
	assert.NotContains(t, unlocked, "task-10")
	assert.NotContains(t, unlocked, "points-100")
}

func TestChallengeProgress(t *testing.T) {
	weekKey := gamification.WeekKey(wednesday)
	challenges := gamification.GenerateWeekly(weekKey, wednesday)
	byID := make(map[string]model.Challenge)
	for _, c := range challenges {
		byID[c.ID] = c
	}
	marathon := byID[fmt.Sprintf("%s-%s", weekKey, gamification.ChallengeMarathon)]
	regularity := byID[fmt.Sprintf("%s-%s", weekKey, gamification.ChallengeRegularity)]

	s := newStore(
		completed(1, "2026-08-10", 9),
		completed(2, "2026-08-10", 10),
		completed(3, "2026-08-11", 9),
	)

	progress, achieved := ChallengeProgress(s, marathon, wednesday)
	assert.Equal(t, 3, progress)
	assert.False(t, achieved)

	progress, achieved = ChallengeProgress(s, regularity, wednesday)
	assert.Equal(t, 2, progress)
	assert.False(t, achieved)
}

func TestChallengeProgressCapsAtTarget(t *testing.T) {
	weekKey := gamification.WeekKey(wednesday)
	marathon := gamification.GenerateWeekly(weekKey, wednesday)[0]
	require.Equal(t, 10, marathon.Target)

	s := history.NewStore()
	for i := 1; i <= 12; i++ {
		s.Record(completed(int64(i), "2026-08-10", 9))
	}

	progress, achieved := ChallengeProgress(s, marathon, wednesday)
	assert.Equal(t, 10, progress)
	assert.True(t, achieved)
}
