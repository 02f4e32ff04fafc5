package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CleanHome/internal/model"
)

func badgeByID(t *testing.T, id string) model.Badge {
	t.Helper()
	for _, b := range Badges {
		if b.ID == id {
			return b
		}
	}
	t.Fatalf("badge %s not in catalog", id)
	return model.Badge{}
}

func TestBadgeIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, b := range Badges {
		assert.False(t, seen[b.ID], "duplicate badge id %s", b.ID)
		seen[b.ID] = true
	}
}

func TestCheckBadgeTaskCount(t *testing.T) {
	badge := badgeByID(t, "task-10")

	assert.False(t, CheckBadge(badge, BadgeStats{TotalTasks: 9}))
	assert.True(t, CheckBadge(badge, BadgeStats{TotalTasks: 10}))
	assert.True(t, CheckBadge(badge, BadgeStats{TotalTasks: 11}))
}

func TestCheckBadgeStreak(t *testing.T) {
	badge := badgeByID(t, "streak-7")

	assert.False(t, CheckBadge(badge, BadgeStats{CurrentStreak: 6}))
	assert.True(t, CheckBadge(badge, BadgeStats{CurrentStreak: 7}))
}

func TestCheckBadgePoints(t *testing.T) {
	badge := badgeByID(t, "points-500")

	assert.False(t, CheckBadge(badge, BadgeStats{TotalPoints: 499}))
	assert.True(t, CheckBadge(badge, BadgeStats{TotalPoints: 500}))
}

func TestCheckBadgeSpecial(t *testing.T) {
	cases := []struct {
		id    string
		stats BadgeStats
	}{
		{"zone-master", BadgeStats{ZoneMastered: true}},
		{"early-bird", BadgeStats{EarlyBird: true}},
		{"night-owl", BadgeStats{NightOwl: true}},
		{"speed-demon", BadgeStats{SpeedDemon: true}},
	}

	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			badge := badgeByID(t, tc.id)
			assert.False(t, CheckBadge(badge, BadgeStats{}))
			assert.True(t, CheckBadge(badge, tc.stats))
		})
	}
}

func TestCheckBadgeUnknownCategory(t *testing.T) {
	badge := model.Badge{ID: "mystery", Category: model.BadgeCategory("mystery"), Requirement: 1}
	require.False(t, CheckBadge(badge, BadgeStats{TotalTasks: 100, TotalPoints: 100}))
}
