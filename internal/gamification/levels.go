package gamification

import (
	"math"

	"CleanHome/internal/model"
)

// Levels 等级表：10 档，区间连续不重叠，覆盖 [0, +∞)
var Levels = []model.Level{
	{Level: 1, Name: "Beginner", MinPoints: 0, MaxPoints: 99, Icon: "🌱", Color: "#22c55e"},
	{Level: 2, Name: "Apprentice", MinPoints: 100, MaxPoints: 299, Icon: "🌿", Color: "#10b981"},
	{Level: 3, Name: "Practitioner", MinPoints: 300, MaxPoints: 599, Icon: "🍀", Color: "#14b8a6"},
	{Level: 4, Name: "Seasoned", MinPoints: 600, MaxPoints: 999, Icon: "🌳", Color: "#06b6d4"},
	{Level: 5, Name: "Expert", MinPoints: 1000, MaxPoints: 1999, Icon: "⭐", Color: "#3b82f6"},
	{Level: 6, Name: "Master", MinPoints: 2000, MaxPoints: 3999, Icon: "💫", Color: "#6366f1"},
	{Level: 7, Name: "Grand Master", MinPoints: 4000, MaxPoints: 7999, Icon: "✨", Color: "#8b5cf6"},
	{Level: 8, Name: "Champion", MinPoints: 8000, MaxPoints: 14999, Icon: "🏆", Color: "#a855f7"},
	{Level: 9, Name: "Legend", MinPoints: 15000, MaxPoints: 29999, Icon: "👑", Color: "#d946ef"},
	{Level: 10, Name: "Cleaning Deity", MinPoints: 30000, MaxPoints: math.MaxInt, Icon: "💎", Color: "#ec4899"},
}

// CurrentLevel 返回覆盖 points 的唯一等级
// 等级表连续覆盖 [0, +∞)，理论上不会落空，落空时回退到第 1 级
func CurrentLevel(points int) model.Level {
	for _, level := range Levels {
		if points >= level.MinPoints && points <= level.MaxPoints {
			return level
		}
	}
	return Levels[0]
}

// NextLevel 返回下一等级，已是最高档时返回 nil
func NextLevel(points int) *model.Level {
	current := CurrentLevel(points)
	for i, level := range Levels {
		if level.Level == current.Level && i < len(Levels)-1 {
			next := Levels[i+1]
			return &next
		}
	}
	return nil
}

// ProgressToNextLevel 当前档位内的进度百分比，0..100
// 已是最高档时恒为 100
func ProgressToNextLevel(points int) int {
	current := CurrentLevel(points)
	if NextLevel(points) == nil {
		return 100
	}

	levelRange := current.MaxPoints - current.MinPoints + 1
	return (points - current.MinPoints) * 100 / levelRange
}
