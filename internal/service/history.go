package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"CleanHome/internal/cache"
	"CleanHome/internal/catalog"
	"CleanHome/internal/history"
	"CleanHome/internal/model"
	"CleanHome/internal/model/dto"
	"CleanHome/internal/repository"
	"CleanHome/pkg/errors"
	"CleanHome/pkg/logger"
	"CleanHome/pkg/metrics"
	"CleanHome/pkg/snowflake"
	"CleanHome/storage/database"
)

// HistoryService 完成历史的唯一写入口
// 内存日志是权威视图，PostgreSQL 持久化、Redis 日键集合、家庭树同步都挂在写路径上
type HistoryService struct {
	mu    sync.RWMutex
	store *history.Store
	repo  *repository.CompletionRepository
}

var (
	historyService *HistoryService
	historyOnce    sync.Once
)

func History() *HistoryService {
	historyOnce.Do(func() {
		historyService = &HistoryService{
			store: history.NewStore(),
			repo:  repository.NewCompletionRepository(database.DB()),
		}
	})

	return historyService
}

// Load 启动时从持久层整体重放内存日志
func (s *HistoryService) Load(ctx context.Context) error {
	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.store.Replay(events)
	s.mu.Unlock()

	logger.Logger.Info("Completion history loaded",
		zap.Int("event_count", len(events)),
	)

	return nil
}

// Read 在读锁下访问内存日志，统计聚合走这里
func (s *HistoryService) Read(fn func(store *history.Store)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.store)
}

// Complete 记录一次完成，幂等：同一任务同一天重复打勾只保留一条
// familyCode 非空时把事件同步进家庭树
func (s *HistoryService) Complete(ctx context.Context, taskID int64, memberID, familyCode string) (dto.CompletionItem, bool, error) {
	task, ok := catalog.TaskByID(taskID)
	if !ok {
		return dto.CompletionItem{}, false, errors.TaskNotFound
	}

	id, err := snowflake.NextID()
	if err != nil {
		return dto.CompletionItem{}, false, err
	}

	now := time.Now()
	event := model.CompletionEvent{
		ID:          id,
		TaskID:      taskID,
		Day:         model.DayOf(now),
		CompletedAt: now,
		MemberID:    memberID,
	}

	s.mu.Lock()
	recorded, created := s.store.Record(event)
	s.mu.Unlock()

	if !created {
		return dto.NewCompletionItem(recorded), false, nil
	}

	if err := s.repo.Upsert(ctx, &recorded); err != nil {
		// 持久化失败时回滚内存日志，保持两边一致
		s.mu.Lock()
		s.store.Unrecord(recorded.TaskID, recorded.Day)
		s.mu.Unlock()
		return dto.CompletionItem{}, false, err
	}

	if err := cache.AddDailyCompletion(ctx, recorded.Day, recorded.TaskID); err != nil {
		logger.Logger.Warn("Failed to mirror completion to daily set",
			zap.Int64("task_id", recorded.TaskID),
			zap.String("day", recorded.Day),
			zap.Error(err),
		)
	}

	if familyCode != "" {
		Family().PushCompletion(ctx, familyCode, recorded)
	}

	metrics.GetMetrics().RecordCompletion(ctx, task.Zone)

	logger.Logger.Info("Task completed",
		zap.Int64("task_id", recorded.TaskID),
		zap.String("day", recorded.Day),
		zap.String("zone", task.Zone),
	)

	return dto.NewCompletionItem(recorded), true, nil
}

// Uncomplete 撤销某天的完成记录，缺席时为 no-op
func (s *HistoryService) Uncomplete(ctx context.Context, taskID int64, day, familyCode string) (bool, error) {
	if _, ok := catalog.TaskByID(taskID); !ok {
		return false, errors.TaskNotFound
	}
	if err := validateDay(day); err != nil {
		return false, err
	}

	s.mu.Lock()
	event, removed := s.store.Unrecord(taskID, day)
	s.mu.Unlock()

	if !removed {
		return false, nil
	}

	if err := s.repo.DeleteByTaskAndDay(ctx, taskID, day); err != nil {
		// 持久层删除失败时把事件放回内存日志，保持两边一致
		s.mu.Lock()
		s.store.Record(event)
		s.mu.Unlock()
		return false, err
	}

	if err := cache.RemoveDailyCompletion(ctx, day, taskID); err != nil {
		logger.Logger.Warn("Failed to remove completion from daily set",
			zap.Int64("task_id", taskID),
			zap.String("day", day),
			zap.Error(err),
		)
	}

	if familyCode != "" {
		Family().RemoveCompletion(ctx, familyCode, taskID, day)
	}

	task, _ := catalog.TaskByID(taskID)
	metrics.GetMetrics().RecordUncompletion(ctx, task.Zone)

	logger.Logger.Info("Task completion undone",
		zap.Int64("task_id", taskID),
		zap.String("day", day),
	)

	return true, nil
}

// Today 当天已完成的任务 ID 集合
func (s *HistoryService) Today(ctx context.Context) dto.TodayCompletions {
	now := time.Now()
	day := model.DayOf(now)

	var taskIDs []int64
	s.Read(func(store *history.Store) {
		set := store.DaySet(day)
		taskIDs = make([]int64, 0, len(set))
		for id := range set {
			taskIDs = append(taskIDs, id)
		}
	})

	sort.Slice(taskIDs, func(i, j int) bool { return taskIDs[i] < taskIDs[j] })

	return dto.TodayCompletions{
		Day:     day,
		TaskIDs: taskIDs,
	}
}

// Range 查询 [fromDay, toDay] 内的完成事件
func (s *HistoryService) Range(ctx context.Context, fromDay, toDay string) ([]dto.CompletionItem, error) {
	if err := validateDay(fromDay); err != nil {
		return nil, err
	}
	if err := validateDay(toDay); err != nil {
		return nil, err
	}
	if toDay < fromDay {
		return nil, errors.InvalidDateRange
	}

	var events []model.CompletionEvent
	s.Read(func(store *history.Store) {
		events = store.EventsInRange(fromDay, toDay)
	})

	items := make([]dto.CompletionItem, 0, len(events))
	for _, e := range events {
		items = append(items, dto.NewCompletionItem(e))
	}
	return items, nil
}

// ReplaceFromFamily 用家庭树快照整体替换本地历史（远端变更送达）
// 整体替换不可重入，锁内进行；拿不到锁说明有同步正在进行
func (s *HistoryService) ReplaceFromFamily(ctx context.Context, events []model.CompletionEvent) error {
	locked, err := cache.TryLock(ctx, "history:replace", 30*time.Second)
	if err != nil {
		return err
	}
	if !locked {
		return errors.TooManyRequests
	}
	defer func() {
		if err := cache.Unlock(ctx, "history:replace"); err != nil {
			logger.Logger.Warn("Failed to release history replace lock", zap.Error(err))
		}
	}()

	// 快照条目不携带本地 ID，落库前补雪花 ID
	for i := range events {
		if events[i].ID == 0 {
			id, err := snowflake.NextID()
			if err != nil {
				return err
			}
			events[i].ID = id
		}
	}

	if err := s.repo.ReplaceAll(ctx, events); err != nil {
		return err
	}

	s.mu.Lock()
	s.store.Replay(events)
	s.mu.Unlock()

	logger.Logger.Info("Completion history replaced from family snapshot",
		zap.Int("event_count", len(events)),
	)

	return nil
}

func validateDay(day string) error {
	if _, err := time.Parse(model.DayFormat, day); err != nil {
		return errors.InvalidDay
	}
	return nil
}
