package gamification

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CleanHome/internal/catalog"
)

func TestWeekKey(t *testing.T) {
	// 2026-08-12 是 2026 年第 33 个 ISO 周
	now := time.Date(2026, time.August, 12, 14, 0, 0, 0, time.Local)
	assert.Equal(t, "2026-W33", WeekKey(now))

	// ISO 周跨年：2027-01-01 仍属于 2026 年第 53 周
	newYear := time.Date(2027, time.January, 1, 10, 0, 0, 0, time.Local)
	assert.Equal(t, "2026-W53", WeekKey(newYear))
}

func TestWeekStart(t *testing.T) {
	monday := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.Local)

	// 周内任意一天都回到同一个周一
	for offset := 0; offset < 7; offset++ {
		now := monday.AddDate(0, 0, offset).Add(13 * time.Hour)
		assert.Equal(t, monday, WeekStart(now), "offset %d", offset)
	}

	// 周日折算为一周的最后一天而不是下一周的开始
	sunday := time.Date(2026, time.August, 16, 23, 0, 0, 0, time.Local)
	assert.Equal(t, time.Sunday, sunday.Weekday())
	assert.Equal(t, monday, WeekStart(sunday))
}

func TestEndOfWeek(t *testing.T) {
	now := time.Date(2026, time.August, 12, 14, 0, 0, 0, time.Local)
	end := EndOfWeek(now)

	assert.Equal(t, time.Sunday, end.Weekday())
	assert.Equal(t, 16, end.Day())
	assert.Equal(t, 23, end.Hour())

	// 周日末尾到下周一 00:00 恰好差 1 毫秒
	nextMonday := time.Date(2026, time.August, 17, 0, 0, 0, 0, time.Local)
	assert.Equal(t, time.Millisecond, nextMonday.Sub(end))
}

func TestGenerateWeeklyDeterministic(t *testing.T) {
	now := time.Date(2026, time.August, 12, 14, 0, 0, 0, time.Local)
	weekKey := WeekKey(now)

	first := GenerateWeekly(weekKey, now)
	second := GenerateWeekly(weekKey, now)
	assert.Equal(t, first, second)

	require.Len(t, first, 4)
	for _, c := range first {
		assert.True(t, strings.HasPrefix(c.ID, weekKey+"-"), "challenge id %s", c.ID)
		assert.Equal(t, "weekly", c.Type)
		assert.NotEmpty(t, c.ExpiresAt)
		assert.Greater(t, c.Target, 0)
		assert.Greater(t, c.Reward, 0)
	}
}

func TestGenerateWeeklyTargets(t *testing.T) {
	now := time.Date(2026, time.August, 12, 14, 0, 0, 0, time.Local)
	challenges := GenerateWeekly(WeekKey(now), now)

	targets := make(map[string]int)
	for _, c := range challenges {
		parts := strings.SplitN(c.ID, "-", 3)
		require.Len(t, parts, 3)
		targets[parts[2]] = c.Target
	}

	assert.Equal(t, 10, targets[ChallengeMarathon])
	assert.Equal(t, len(catalog.Zones), targets[ChallengeFullTour])
	assert.Equal(t, 7, targets[ChallengeRegularity])
	assert.Equal(t, 500, targets[ChallengePointHunt])
}
