package gamification

import "CleanHome/internal/model"

// Badges 静态徽章目录
var Badges = []model.Badge{
	// 基于累计完成数
	{ID: "first-task", Name: "First Step", Description: "Complete your first task", Icon: "🌟", Requirement: 1, Category: model.BadgeCategoryTaskCount, Tier: model.BadgeTierBronze, Color: "#cd7f32"},
	{ID: "task-10", Name: "Motivated Starter", Description: "Complete 10 tasks", Icon: "⭐", Requirement: 10, Category: model.BadgeCategoryTaskCount, Tier: model.BadgeTierBronze, Color: "#cd7f32"},
	{ID: "task-50", Name: "Diligent Worker", Description: "Complete 50 tasks", Icon: "🌟", Requirement: 50, Category: model.BadgeCategoryTaskCount, Tier: model.BadgeTierSilver, Color: "#c0c0c0"},
	{ID: "task-100", Name: "Centurion", Description: "Complete 100 tasks", Icon: "💫", Requirement: 100, Category: model.BadgeCategoryTaskCount, Tier: model.BadgeTierGold, Color: "#ffd700"},
	{ID: "task-250", Name: "Housekeeping Expert", Description: "Complete 250 tasks", Icon: "✨", Requirement: 250, Category: model.BadgeCategoryTaskCount, Tier: model.BadgeTierPlatinum, Color: "#e5e4e2"},
	{ID: "task-500", Name: "Absolute Master", Description: "Complete 500 tasks", Icon: "💎", Requirement: 500, Category: model.BadgeCategoryTaskCount, Tier: model.BadgeTierDiamond, Color: "#b9f2ff"},

	// 基于连续天数
	{ID: "streak-3", Name: "Regular", Description: "3 consecutive days", Icon: "🔥", Requirement: 3, Category: model.BadgeCategoryStreak, Tier: model.BadgeTierBronze, Color: "#cd7f32"},
	{ID: "streak-7", Name: "Full Week", Description: "7 consecutive days", Icon: "🔥", Requirement: 7, Category: model.BadgeCategoryStreak, Tier: model.BadgeTierSilver, Color: "#c0c0c0"},
	{ID: "streak-30", Name: "Full Month", Description: "30 consecutive days", Icon: "🔥", Requirement: 30, Category: model.BadgeCategoryStreak, Tier: model.BadgeTierGold, Color: "#ffd700"},
	{ID: "streak-100", Name: "Centennial", Description: "100 consecutive days", Icon: "🔥", Requirement: 100, Category: model.BadgeCategoryStreak, Tier: model.BadgeTierDiamond, Color: "#b9f2ff"},

	// 基于累计积分
	{ID: "points-100", Name: "Climber", Description: "Earn 100 points", Icon: "📈", Requirement: 100, Category: model.BadgeCategoryPoints, Tier: model.BadgeTierBronze, Color: "#cd7f32"},
	{ID: "points-500", Name: "Collector", Description: "Earn 500 points", Icon: "📈", Requirement: 500, Category: model.BadgeCategoryPoints, Tier: model.BadgeTierSilver, Color: "#c0c0c0"},
	{ID: "points-1000", Name: "Champion", Description: "Earn 1000 points", Icon: "📈", Requirement: 1000, Category: model.BadgeCategoryPoints, Tier: model.BadgeTierGold, Color: "#ffd700"},
	{ID: "points-5000", Name: "Legend", Description: "Earn 5000 points", Icon: "📈", Requirement: 5000, Category: model.BadgeCategoryPoints, Tier: model.BadgeTierPlatinum, Color: "#e5e4e2"},
	{ID: "points-10000", Name: "Cleaning Deity", Description: "Earn 10000 points", Icon: "👑", Requirement: 10000, Category: model.BadgeCategoryPoints, Tier: model.BadgeTierDiamond, Color: "#b9f2ff"},

	// 特殊徽章，谓词直接从历史推导
	{ID: "zone-master", Name: "Zone Master", Description: "Complete every task of one zone in a day", Icon: "🎯", Requirement: 1, Category: model.BadgeCategorySpecial, Tier: model.BadgeTierGold, Color: "#ffd700"},
	{ID: "early-bird", Name: "Early Bird", Description: "Complete a task before 8am", Icon: "🌅", Requirement: 1, Category: model.BadgeCategorySpecial, Tier: model.BadgeTierSilver, Color: "#c0c0c0"},
	{ID: "night-owl", Name: "Night Owl", Description: "Complete a task after 10pm", Icon: "🦉", Requirement: 1, Category: model.BadgeCategorySpecial, Tier: model.BadgeTierSilver, Color: "#c0c0c0"},
	{ID: "speed-demon", Name: "Lightning Fast", Description: "Complete 5 tasks within one hour", Icon: "⚡", Requirement: 1, Category: model.BadgeCategorySpecial, Tier: model.BadgeTierGold, Color: "#ffd700"},
}

// BadgeStats 徽章判定输入，由聚合层从目录 + 历史重算得出
type BadgeStats struct {
	TotalTasks    int
	TotalPoints   int
	CurrentStreak int

	// 特殊徽章信号
	ZoneMastered bool // 某个区域当天任务全部完成过
	EarlyBird    bool // 存在 8 点前的完成事件
	NightOwl     bool // 存在 22 点后的完成事件
	SpeedDemon   bool // 一小时内存在 5 次完成
}

// CheckBadge 判定徽章是否解锁，纯函数、无状态
// 底层统计回退时徽章会重新锁定，这是重算而非存储的既定语义
func CheckBadge(badge model.Badge, stats BadgeStats) bool {
	switch badge.Category {
	case model.BadgeCategoryTaskCount:
		return stats.TotalTasks >= badge.Requirement
	case model.BadgeCategoryStreak:
		return stats.CurrentStreak >= badge.Requirement
	case model.BadgeCategoryPoints:
		return stats.TotalPoints >= badge.Requirement
	case model.BadgeCategorySpecial:
		switch badge.ID {
		case "zone-master":
			return stats.ZoneMastered
		case "early-bird":
			return stats.EarlyBird
		case "night-owl":
			return stats.NightOwl
		case "speed-demon":
			return stats.SpeedDemon
		}
	}
	return false
}
