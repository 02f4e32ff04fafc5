package service

import (
	"context"
	"math"
	"sync"
	"time"

	"CleanHome/internal/gamification"
	"CleanHome/internal/history"
	"CleanHome/internal/model"
	"CleanHome/internal/model/dto"
	"CleanHome/internal/stats"
)

// StatsService 统计与游戏化档案，全部是对完成历史的重算
type StatsService struct{}

var (
	statsService *StatsService
	statsOnce    sync.Once
)

func Stats() *StatsService {
	statsOnce.Do(func() {
		statsService = &StatsService{}
	})

	return statsService
}

// Summary 统计总览：区域进度、7 天直方图、连续天数、周指标
func (s *StatsService) Summary(ctx context.Context) dto.StatsSummary {
	now := time.Now()

	var summary dto.StatsSummary
	History().Read(func(store *history.Store) {
		summary = dto.StatsSummary{
			Zones:             stats.ZoneProgress(store, now),
			LastSevenDays:     stats.LastSevenDays(store, now),
			CurrentStreak:     stats.CurrentStreak(store, now),
			TotalCompletions:  stats.TotalCompletions(store),
			WeeklyCompletions: stats.WeeklyCompletions(store, now),
			WeeklyPoints:      stats.WeeklyPoints(store, now),
		}
	})

	return summary
}

// Profile 游戏化档案：积分、等级、进度、徽章
func (s *StatsService) Profile(ctx context.Context) dto.GamificationProfile {
	now := time.Now()

	var badgeStats gamification.BadgeStats
	History().Read(func(store *history.Store) {
		badgeStats = stats.BuildBadgeStats(store, now)
	})

	points := badgeStats.TotalPoints
	level := gamification.CurrentLevel(points)
	next := gamification.NextLevel(points)

	unlocked := stats.UnlockedBadges(badgeStats)
	unlockedSet := make(map[string]struct{}, len(unlocked))
	for _, id := range unlocked {
		unlockedSet[id] = struct{}{}
	}

	badges := make([]dto.BadgeItem, 0, len(gamification.Badges))
	for _, badge := range gamification.Badges {
		_, isUnlocked := unlockedSet[badge.ID]
		badges = append(badges, dto.BadgeItem{
			ID:          badge.ID,
			Name:        badge.Name,
			Description: badge.Description,
			Icon:        badge.Icon,
			Requirement: badge.Requirement,
			Category:    string(badge.Category),
			Tier:        string(badge.Tier),
			Unlocked:    isUnlocked,
		})
	}

	profile := dto.GamificationProfile{
		TotalPoints:      points,
		Level:            levelItem(level),
		ProgressToNext:   gamification.ProgressToNextLevel(points),
		Badges:           badges,
		UnlockedBadgeIDs: unlocked,
	}
	if next != nil {
		item := levelItem(*next)
		profile.NextLevel = &item
	}

	return profile
}

func levelItem(l model.Level) dto.LevelItem {
	item := dto.LevelItem{
		Level:     l.Level,
		Name:      l.Name,
		MinPoints: l.MinPoints,
		Icon:      l.Icon,
		Color:     l.Color,
	}
	// 最高档没有上界，视图里省略
	if l.MaxPoints != math.MaxInt {
		item.MaxPoints = l.MaxPoints
	}
	return item
}
