package dto

// ZoneProgressItem 单个区域的完成进度
type ZoneProgressItem struct {
	Zone       string `json:"zone"`
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

// DayBucket 7 天直方图中的一天
type DayBucket struct {
	Day     string `json:"day"`
	Weekday string `json:"weekday"`
	Count   int    `json:"count"`
}

// StatsSummary 统计总览
type StatsSummary struct {
	Zones             []ZoneProgressItem `json:"zones"`
	LastSevenDays     []DayBucket        `json:"last_seven_days"`
	CurrentStreak     int                `json:"current_streak"`
	TotalCompletions  int                `json:"total_completions"`
	WeeklyCompletions int                `json:"weekly_completions"`
	WeeklyPoints      int                `json:"weekly_points"`
}

// LevelItem 等级视图
type LevelItem struct {
	Level     int    `json:"level"`
	Name      string `json:"name"`
	MinPoints int    `json:"min_points"`
	MaxPoints int    `json:"max_points,omitempty"` // 最高档省略
	Icon      string `json:"icon"`
	Color     string `json:"color"`
}

// BadgeItem 徽章视图，附带解锁状态
type BadgeItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Requirement int    `json:"requirement"`
	Category    string `json:"category"`
	Tier        string `json:"tier"`
	Unlocked    bool   `json:"unlocked"`
}

// GamificationProfile 游戏化档案
type GamificationProfile struct {
	TotalPoints       int         `json:"total_points"`
	Level             LevelItem   `json:"level"`
	NextLevel         *LevelItem  `json:"next_level,omitempty"`
	ProgressToNext    int         `json:"progress_to_next"` // 0..100
	Badges            []BadgeItem `json:"badges"`
	UnlockedBadgeIDs  []string    `json:"unlocked_badge_ids"`
}

// ChallengeItem 挑战视图，附带实时进度
type ChallengeItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Target      int    `json:"target"`
	Reward      int    `json:"reward"`
	Type        string `json:"type"`
	ExpiresAt   string `json:"expires_at"`
	Progress    int    `json:"progress"`
	Achieved    bool   `json:"achieved"`
}
