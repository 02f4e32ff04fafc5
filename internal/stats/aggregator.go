package stats

import (
	"sort"
	"strings"
	"time"

	"CleanHome/internal/catalog"
	"CleanHome/internal/gamification"
	"CleanHome/internal/history"
	"CleanHome/internal/model"
	"CleanHome/internal/model/dto"
)

// 聚合层：所有统计都是对完成历史的无状态重算
// 撤销完成后所有派生值自然回退，不存在需要补偿的存量

// pointsOf 单条事件的积分，按目录时长计算，目录查不到时按默认时长
func pointsOf(e model.CompletionEvent) int {
	if task, ok := catalog.TaskByID(e.TaskID); ok {
		return gamification.CalculatePoints(task.EstimatedMinutes)
	}
	return gamification.CalculatePoints(gamification.DefaultTaskMinutes)
}

// TotalCompletions 历史完成总数
func TotalCompletions(store *history.Store) int {
	return store.Len()
}

// TotalPoints 历史累计积分
func TotalPoints(store *history.Store) int {
	total := 0
	for _, e := range store.All() {
		total += pointsOf(e)
	}
	return total
}

// ZoneProgress 按区域统计当天进度，顺序与目录区域一致
// 百分比四舍五入，区域任务数为 0 时为 0
func ZoneProgress(store *history.Store, now time.Time) []dto.ZoneProgressItem {
	daySet := store.TodaySet(now)

	out := make([]dto.ZoneProgressItem, 0, len(catalog.Zones))
	for _, zone := range catalog.Zones {
		tasks := catalog.TasksByZone(zone)
		completed := 0
		for _, task := range tasks {
			if _, ok := daySet[task.ID]; ok {
				completed++
			}
		}

		percentage := 0
		if len(tasks) > 0 {
			percentage = (completed*100 + len(tasks)/2) / len(tasks)
		}
		out = append(out, dto.ZoneProgressItem{
			Zone:       zone,
			Completed:  completed,
			Total:      len(tasks),
			Percentage: percentage,
		})
	}
	return out
}

// LastSevenDays 最近 7 天（含今天）的完成数直方图，最旧的一天在前
func LastSevenDays(store *history.Store, now time.Time) []dto.DayBucket {
	out := make([]dto.DayBucket, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := now.AddDate(0, 0, -offset)
		key := model.DayOf(day)
		out = append(out, dto.DayBucket{
			Day:     key,
			Weekday: day.Local().Weekday().String()[:3],
			Count:   len(store.DaySet(key)),
		})
	}
	return out
}

// CurrentStreak 当前连续完成天数
// 今天有事件则从今天起算，否则从昨天起算；两天都没有则为 0
func CurrentStreak(store *history.Store, now time.Time) int {
	anchor := now
	if len(store.DaySet(model.DayOf(anchor))) == 0 {
		anchor = now.AddDate(0, 0, -1)
		if len(store.DaySet(model.DayOf(anchor))) == 0 {
			return 0
		}
	}

	streak := 0
	for len(store.DaySet(model.DayOf(anchor))) > 0 {
		streak++
		anchor = anchor.AddDate(0, 0, -1)
	}
	return streak
}

// weekEvents 本周（周一起）截至 now 的事件
func weekEvents(store *history.Store, now time.Time) []model.CompletionEvent {
	fromDay := model.DayOf(gamification.WeekStart(now))
	toDay := model.DayOf(now)
	return store.EventsInRange(fromDay, toDay)
}

// WeeklyCompletions 本周完成数
func WeeklyCompletions(store *history.Store, now time.Time) int {
	return len(weekEvents(store, now))
}

// WeeklyPoints 本周积分
func WeeklyPoints(store *history.Store, now time.Time) int {
	total := 0
	for _, e := range weekEvents(store, now) {
		total += pointsOf(e)
	}
	return total
}

// WeeklyDistinctDays 本周有完成记录的天数
func WeeklyDistinctDays(store *history.Store, now time.Time) int {
	days := make(map[string]struct{})
	for _, e := range weekEvents(store, now) {
		days[e.Day] = struct{}{}
	}
	return len(days)
}

// WeeklyZonesTouched 本周至少完成过 1 个任务的区域数
func WeeklyZonesTouched(store *history.Store, now time.Time) int {
	zones := make(map[string]struct{})
	for _, e := range weekEvents(store, now) {
		if task, ok := catalog.TaskByID(e.TaskID); ok {
			zones[task.Zone] = struct{}{}
		}
	}
	return len(zones)
}

// BuildBadgeStats 汇总徽章判定所需的全部信号
func BuildBadgeStats(store *history.Store, now time.Time) gamification.BadgeStats {
	return gamification.BadgeStats{
		TotalTasks:    TotalCompletions(store),
		TotalPoints:   TotalPoints(store),
		CurrentStreak: CurrentStreak(store, now),
		ZoneMastered:  hasZoneMasteredDay(store),
		EarlyBird:     hasEventBefore(store, 8),
		NightOwl:      hasEventAtOrAfter(store, 22),
		SpeedDemon:    hasBurst(store, 5, time.Hour),
	}
}

// UnlockedBadges 当前解锁的徽章 ID，顺序与徽章目录一致
func UnlockedBadges(stats gamification.BadgeStats) []string {
	out := make([]string, 0)
	for _, badge := range gamification.Badges {
		if gamification.CheckBadge(badge, stats) {
			out = append(out, badge.ID)
		}
	}
	return out
}

// ChallengeProgress 计算单个挑战的实时进度，进度封顶在目标值
// 挑战 ID 形如 "<weekKey>-<slug>"，按 slug 解释进度
func ChallengeProgress(store *history.Store, challenge model.Challenge, now time.Time) (int, bool) {
	progress := 0
	switch {
	case strings.HasSuffix(challenge.ID, gamification.ChallengeMarathon):
		progress = WeeklyCompletions(store, now)
	case strings.HasSuffix(challenge.ID, gamification.ChallengeFullTour):
		progress = WeeklyZonesTouched(store, now)
	case strings.HasSuffix(challenge.ID, gamification.ChallengeRegularity):
		progress = WeeklyDistinctDays(store, now)
	case strings.HasSuffix(challenge.ID, gamification.ChallengePointHunt):
		progress = WeeklyPoints(store, now)
	}

	achieved := progress >= challenge.Target
	if progress > challenge.Target {
		progress = challenge.Target
	}
	return progress, achieved
}

// hasZoneMasteredDay 是否存在某天把某个区域的任务全部完成
func hasZoneMasteredDay(store *history.Store) bool {
	// day -> zone -> 该区域当天完成的任务数
	byDayZone := make(map[string]map[string]int)
	for _, e := range store.All() {
		task, ok := catalog.TaskByID(e.TaskID)
		if !ok {
			continue
		}
		if byDayZone[e.Day] == nil {
			byDayZone[e.Day] = make(map[string]int)
		}
		byDayZone[e.Day][task.Zone]++
	}

	for _, zones := range byDayZone {
		for zone, count := range zones {
			if count >= len(catalog.TasksByZone(zone)) {
				return true
			}
		}
	}
	return false
}

func hasEventBefore(store *history.Store, hour int) bool {
	for _, e := range store.All() {
		if e.CompletedAt.Local().Hour() < hour {
			return true
		}
	}
	return false
}

func hasEventAtOrAfter(store *history.Store, hour int) bool {
	for _, e := range store.All() {
		if e.CompletedAt.Local().Hour() >= hour {
			return true
		}
	}
	return false
}

// hasBurst 是否存在长度 window 的时间窗内至少 n 次完成
func hasBurst(store *history.Store, n int, window time.Duration) bool {
	events := store.All()
	if len(events) < n {
		return false
	}

	times := make([]time.Time, 0, len(events))
	for _, e := range events {
		times = append(times, e.CompletedAt)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	for i := 0; i+n-1 < len(times); i++ {
		if times[i+n-1].Sub(times[i]) <= window {
			return true
		}
	}
	return false
}
