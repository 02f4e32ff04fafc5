package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelsArePartition(t *testing.T) {
	// 等级表连续不重叠，覆盖 [0, +∞)
	require.NotEmpty(t, Levels)
	assert.Equal(t, 0, Levels[0].MinPoints)

	for i := 1; i < len(Levels); i++ {
		assert.Equal(t, Levels[i-1].MaxPoints+1, Levels[i].MinPoints,
			"gap between level %d and %d", Levels[i-1].Level, Levels[i].Level)
	}
}

func TestCurrentLevelBoundaries(t *testing.T) {
	assert.Equal(t, 1, CurrentLevel(0).Level)
	assert.Equal(t, 1, CurrentLevel(99).Level)
	assert.Equal(t, 2, CurrentLevel(100).Level)
	assert.Equal(t, 5, CurrentLevel(1500).Level)
	assert.Equal(t, 10, CurrentLevel(30000).Level)
	assert.Equal(t, 10, CurrentLevel(1_000_000).Level)
}

func TestNextLevel(t *testing.T) {
	next := NextLevel(0)
	require.NotNil(t, next)
	assert.Equal(t, 2, next.Level)

	next = NextLevel(14999)
	require.NotNil(t, next)
	assert.Equal(t, 9, next.Level)

	// 最高档没有下一级
	assert.Nil(t, NextLevel(30000))
}

func TestProgressToNextLevel(t *testing.T) {
	assert.Equal(t, 0, ProgressToNextLevel(0))
	assert.Equal(t, 50, ProgressToNextLevel(50))
	assert.Equal(t, 99, ProgressToNextLevel(99))
	assert.Equal(t, 0, ProgressToNextLevel(100))

	// 最高档恒为 100
	assert.Equal(t, 100, ProgressToNextLevel(30000))
	assert.Equal(t, 100, ProgressToNextLevel(999_999))
}
