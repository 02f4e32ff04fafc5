package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CleanHome/internal/model"
	pkgerrors "CleanHome/pkg/errors"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestIsDueDaily(t *testing.T) {
	task := model.Task{ID: 1, Frequency: model.FrequencyDaily}

	for offset := 0; offset < 14; offset++ {
		due, err := IsDue(task, day(2026, time.August, 1).AddDate(0, 0, offset))
		require.NoError(t, err)
		assert.True(t, due)
	}
}

func TestIsDueWeeklyOnlyMondays(t *testing.T) {
	task := model.Task{ID: 2, Frequency: model.FrequencyWeekly}

	// 连续四周，只有周一到期
	start := day(2026, time.August, 3) // 周一
	require.Equal(t, time.Monday, start.Weekday())

	for offset := 0; offset < 28; offset++ {
		date := start.AddDate(0, 0, offset)
		due, err := IsDue(task, date)
		require.NoError(t, err)
		assert.Equal(t, date.Weekday() == time.Monday, due, "date %s", date.Format(model.DayFormat))
	}
}

func TestIsDueMonthlyFirstDay(t *testing.T) {
	task := model.Task{ID: 3, Frequency: model.FrequencyMonthly}

	due, err := IsDue(task, day(2024, time.February, 1))
	require.NoError(t, err)
	assert.True(t, due)

	// 闰年 2 月末不触发
	due, err = IsDue(task, day(2024, time.February, 29))
	require.NoError(t, err)
	assert.False(t, due)

	due, err = IsDue(task, day(2024, time.March, 1))
	require.NoError(t, err)
	assert.True(t, due)
}

func TestIsDueQuarterlyAndSeasonal(t *testing.T) {
	quarterly := model.Task{ID: 4, Frequency: model.FrequencyQuarterly}
	seasonal := model.Task{ID: 5, Frequency: model.FrequencySeasonal}

	quarterMonths := map[time.Month]bool{time.January: true, time.April: true, time.July: true, time.October: true}
	seasonMonths := map[time.Month]bool{time.March: true, time.June: true, time.September: true, time.December: true}

	for m := time.January; m <= time.December; m++ {
		due, err := IsDue(quarterly, day(2026, m, 1))
		require.NoError(t, err)
		assert.Equal(t, quarterMonths[m], due, "quarterly month %s", m)

		due, err = IsDue(seasonal, day(2026, m, 1))
		require.NoError(t, err)
		assert.Equal(t, seasonMonths[m], due, "seasonal month %s", m)
	}

	due, err := IsDue(quarterly, day(2026, time.April, 2))
	require.NoError(t, err)
	assert.False(t, due)
}

func TestIsDueYearly(t *testing.T) {
	task := model.Task{ID: 6, Frequency: model.FrequencyYearly}

	due, err := IsDue(task, day(2026, time.January, 1))
	require.NoError(t, err)
	assert.True(t, due)

	due, err = IsDue(task, day(2026, time.February, 1))
	require.NoError(t, err)
	assert.False(t, due)
}

func TestIsDueUnsupportedFrequency(t *testing.T) {
	task := model.Task{ID: 7, Frequency: model.Frequency("fortnightly")}

	due, err := IsDue(task, day(2026, time.August, 3))
	assert.False(t, due)
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.UnsupportedFrequency)
}

func TestExpandOrderingAndBounds(t *testing.T) {
	tasks := []model.Task{
		{ID: 30, Name: "b", Frequency: model.FrequencyDaily},
		{ID: 10, Name: "a", Frequency: model.FrequencyDaily},
		{ID: 20, Name: "c", Frequency: model.FrequencyWeekly},
	}

	from := day(2026, time.August, 3) // 周一
	to := day(2026, time.August, 4)

	instances, err := Expand(tasks, from, to)
	require.NoError(t, err)

	// 周一：10, 20, 30；周二：10, 30
	require.Len(t, instances, 5)
	assert.Equal(t, int64(10), instances[0].TaskID)
	assert.Equal(t, int64(20), instances[1].TaskID)
	assert.Equal(t, int64(30), instances[2].TaskID)
	assert.Equal(t, "2026-08-03", instances[0].Date)
	assert.Equal(t, "2026-08-04", instances[3].Date)
	assert.Equal(t, int64(10), instances[3].TaskID)
	assert.Equal(t, int64(30), instances[4].TaskID)
}

func TestExpandWeeklySpanningFullWeeks(t *testing.T) {
	tasks := []model.Task{{ID: 7, Frequency: model.FrequencyWeekly}}

	// 4 个整周：2026-08-03（周一）到 2026-08-30（周日），每周恰好一个实例
	from := day(2026, time.August, 3)
	instances, err := Expand(tasks, from, day(2026, time.August, 30))
	require.NoError(t, err)
	require.Len(t, instances, 4)

	for i, inst := range instances {
		date, err := time.ParseInLocation(model.DayFormat, inst.Date, time.Local)
		require.NoError(t, err)
		assert.Equal(t, time.Monday, date.Weekday())
		assert.Equal(t, from.AddDate(0, 0, 7*i), date)
	}
}

func TestExpandSingleDayEqualsDueOn(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Frequency: model.FrequencyDaily},
		{ID: 2, Frequency: model.FrequencyWeekly},
	}

	date := day(2026, time.August, 5) // 周三
	expanded, err := Expand(tasks, date, date)
	require.NoError(t, err)

	dueOn, err := DueOn(tasks, date)
	require.NoError(t, err)

	assert.Equal(t, expanded, dueOn)
	require.Len(t, dueOn, 1)
	assert.Equal(t, int64(1), dueOn[0].TaskID)
}

func TestExpandInvalidRange(t *testing.T) {
	tasks := []model.Task{{ID: 1, Frequency: model.FrequencyDaily}}

	_, err := Expand(tasks, day(2026, time.August, 5), day(2026, time.August, 4))
	assert.ErrorIs(t, err, pkgerrors.InvalidDateRange)
}

func TestExpandPropagatesResolverError(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Frequency: model.FrequencyDaily},
		{ID: 2, Frequency: model.Frequency("bogus")},
	}

	_, err := Expand(tasks, day(2026, time.August, 3), day(2026, time.August, 3))
	assert.ErrorIs(t, err, pkgerrors.UnsupportedFrequency)
}
