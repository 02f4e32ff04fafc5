package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CleanHome/internal/model"
)

func TestTaskIDsUnique(t *testing.T) {
	seen := make(map[int64]string)
	for _, task := range Tasks {
		prev, dup := seen[task.ID]
		assert.False(t, dup, "task id %d used by %q and %q", task.ID, prev, task.Name)
		seen[task.ID] = task.Name
	}
}

func TestTasksWellFormed(t *testing.T) {
	valid := map[model.Frequency]bool{
		model.FrequencyDaily:     true,
		model.FrequencyWeekly:    true,
		model.FrequencyMonthly:   true,
		model.FrequencyQuarterly: true,
		model.FrequencySeasonal:  true,
		model.FrequencyYearly:    true,
	}

	for _, task := range Tasks {
		assert.NotEmpty(t, task.Name, "task %d", task.ID)
		assert.True(t, ZoneExists(task.Zone), "task %d zone %q", task.ID, task.Zone)
		assert.True(t, valid[task.Frequency], "task %d frequency %q", task.ID, task.Frequency)
		assert.Greater(t, task.EstimatedMinutes, 0, "task %d", task.ID)
	}
}

func TestEveryZoneHasTasks(t *testing.T) {
	for _, zone := range Zones {
		assert.NotEmpty(t, TasksByZone(zone), "zone %q", zone)
	}
}

func TestTaskByID(t *testing.T) {
	task, ok := TaskByID(1)
	require.True(t, ok)
	assert.Equal(t, "Wash the dishes", task.Name)

	_, ok = TaskByID(99999)
	assert.False(t, ok)
}
