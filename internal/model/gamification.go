package model

// BadgeCategory 徽章判定类别
type BadgeCategory string

const (
	BadgeCategoryTaskCount BadgeCategory = "task-count" // 对比累计完成数
	BadgeCategoryStreak    BadgeCategory = "streak"     // 对比当前连续天数
	BadgeCategoryPoints    BadgeCategory = "points"     // 对比累计积分
	BadgeCategorySpecial   BadgeCategory = "special"    // 特殊谓词，直接从历史推导
)

// BadgeTier 徽章档位，仅展示用
type BadgeTier string

const (
	BadgeTierBronze   BadgeTier = "bronze"
	BadgeTierSilver   BadgeTier = "silver"
	BadgeTierGold     BadgeTier = "gold"
	BadgeTierPlatinum BadgeTier = "platinum"
	BadgeTierDiamond  BadgeTier = "diamond"
)

// Badge 静态徽章目录条目
// 解锁状态永远是对聚合统计的无状态重算，不落库
type Badge struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Requirement int           `json:"requirement"`
	Category    BadgeCategory `json:"category"`
	Tier        BadgeTier     `json:"tier"`
	Color       string        `json:"color"`
}

// Level 等级表条目，10 档覆盖 [0, +∞)，区间连续不重叠
type Level struct {
	Level     int    `json:"level"`
	Name      string `json:"name"`
	MinPoints int    `json:"min_points"`
	MaxPoints int    `json:"max_points"` // 最高档为 math.MaxInt
	Icon      string `json:"icon"`
	Color     string `json:"color"`
}

// Challenge 按周期生成的挑战，同一 periodKey 生成结果恒定
type Challenge struct {
	ID          string `json:"id"` // "<weekKey>-<slug>"
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Target      int    `json:"target"`
	Reward      int    `json:"reward"` // 达成后的积分奖励
	Type        string `json:"type"`   // weekly
	ExpiresAt   string `json:"expires_at"`
}
