package gamification

import (
	"fmt"
	"time"

	"CleanHome/internal/catalog"
	"CleanHome/internal/model"
)

// 周挑战：按周期键确定性生成，无随机、无外部状态
// 进度追踪完全从历史推导，周期键变化时自然归零

// 挑战槽位，ID 后缀与进度解释方式绑定
const (
	ChallengeMarathon   = "complete-10"
	ChallengeFullTour   = "complete-all-zones"
	ChallengeRegularity = "daily-streak"
	ChallengePointHunt  = "points-500"
)

// WeekKey 当前周期键，ISO 年-周
func WeekKey(now time.Time) string {
	year, week := now.Local().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// WeekStart 本周周一 00:00（本地时区）
func WeekStart(now time.Time) time.Time {
	now = now.Local()
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7 // 周日折算为 7，周以周一开始
	}
	start := now.AddDate(0, 0, -(weekday - 1))
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
}

// EndOfWeek 本周周日 23:59:59.999（本地时区）
func EndOfWeek(now time.Time) time.Time {
	start := WeekStart(now)
	return start.AddDate(0, 0, 7).Add(-time.Millisecond)
}

// GenerateWeekly 为指定周期生成四个挑战，同一 weekKey 结果恒定
func GenerateWeekly(weekKey string, now time.Time) []model.Challenge {
	expiresAt := EndOfWeek(now).Format("2006-01-02T15:04:05.000Z07:00")

	return []model.Challenge{
		{
			ID:          weekKey + "-" + ChallengeMarathon,
			Name:        "Weekly Marathon",
			Description: "Complete 10 tasks this week",
			Icon:        "🏃",
			Target:      10,
			Reward:      50,
			Type:        "weekly",
			ExpiresAt:   expiresAt,
		},
		{
			ID:          weekKey + "-" + ChallengeFullTour,
			Name:        "Full Tour",
			Description: "Complete at least 1 task in every zone",
			Icon:        "🗺️",
			Target:      len(catalog.Zones),
			Reward:      100,
			Type:        "weekly",
			ExpiresAt:   expiresAt,
		},
		{
			ID:          weekKey + "-" + ChallengeRegularity,
			Name:        "Perfect Regularity",
			Description: "Complete at least 1 task every day (7/7)",
			Icon:        "📅",
			Target:      7,
			Reward:      150,
			Type:        "weekly",
			ExpiresAt:   expiresAt,
		},
		{
			ID:          weekKey + "-" + ChallengePointHunt,
			Name:        "Point Hunter",
			Description: "Earn 500 points this week",
			Icon:        "🎯",
			Target:      500,
			Reward:      75,
			Type:        "weekly",
			ExpiresAt:   expiresAt,
		},
	}
}
