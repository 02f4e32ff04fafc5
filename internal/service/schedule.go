package service

import (
	"context"
	"sync"
	"time"

	"CleanHome/internal/catalog"
	"CleanHome/internal/history"
	"CleanHome/internal/model"
	"CleanHome/internal/schedule"
	"CleanHome/pkg/errors"
)

// ScheduleService 目录与排期的只读门面
type ScheduleService struct{}

var (
	scheduleService *ScheduleService
	scheduleOnce    sync.Once
)

func Schedule() *ScheduleService {
	scheduleOnce.Do(func() {
		scheduleService = &ScheduleService{}
	})

	return scheduleService
}

// Tasks 全量任务目录
func (s *ScheduleService) Tasks(ctx context.Context) []model.Task {
	return catalog.Tasks
}

// Zones 区域列表
func (s *ScheduleService) Zones(ctx context.Context) []string {
	return catalog.Zones
}

// TasksByZone 某区域的任务
func (s *ScheduleService) TasksByZone(ctx context.Context, zone string) ([]model.Task, error) {
	if !catalog.ZoneExists(zone) {
		return nil, errors.TaskNotFound
	}
	return catalog.TasksByZone(zone), nil
}

// Expand 展开 [fromDay, toDay] 的排期实例
func (s *ScheduleService) Expand(ctx context.Context, fromDay, toDay string) ([]model.ScheduledInstance, error) {
	from, err := time.ParseInLocation(model.DayFormat, fromDay, time.Local)
	if err != nil {
		return nil, errors.InvalidDay
	}
	to, err := time.ParseInLocation(model.DayFormat, toDay, time.Local)
	if err != nil {
		return nil, errors.InvalidDay
	}

	return schedule.Expand(catalog.Tasks, from, to)
}

// DueToday 今天到期的任务实例，附带完成状态
type DueInstance struct {
	model.ScheduledInstance
	Completed bool `json:"completed"`
}

func (s *ScheduleService) DueToday(ctx context.Context) ([]DueInstance, error) {
	now := time.Now()
	instances, err := schedule.DueOn(catalog.Tasks, now)
	if err != nil {
		return nil, err
	}

	var completed map[int64]struct{}
	History().Read(func(store *history.Store) {
		completed = store.TodaySet(now)
	})

	out := make([]DueInstance, 0, len(instances))
	for _, inst := range instances {
		_, done := completed[inst.TaskID]
		out = append(out, DueInstance{
			ScheduledInstance: inst,
			Completed:         done,
		})
	}
	return out, nil
}
