package history

import (
	"sort"
	"time"

	"CleanHome/internal/model"
)

// Store 完成历史的内存日志，append-only、按 (taskID, day) 去重
// 外部持久化（PostgreSQL / Redis 日键 / 家庭共享树）由 service 层负责同步，
// Store 本身只维护一致的内存视图，加载时整体 Replay
//
// 单写者模型：调用方负责串行化，Store 内部不加锁
type Store struct {
	// day -> taskID -> event
	byDay map[string]map[int64]model.CompletionEvent
}

func NewStore() *Store {
	return &Store{
		byDay: make(map[string]map[int64]model.CompletionEvent),
	}
}

// Replay 用完整事件集重建内存日志（启动加载、远端快照替换）
// 同一 (taskID, day) 出现多次时保留时间戳最新的一条，last-write-wins
func (s *Store) Replay(events []model.CompletionEvent) {
	s.byDay = make(map[string]map[int64]model.CompletionEvent)
	for _, e := range events {
		existing, ok := s.byDay[e.Day][e.TaskID]
		if ok && existing.CompletedAt.After(e.CompletedAt) {
			continue
		}
		s.put(e)
	}
}

// Record 记录一次完成，幂等：同一 (taskID, day) 重复记录只保留一条
// 返回最终生效的事件以及本次调用是否产生了新事件
func (s *Store) Record(event model.CompletionEvent) (model.CompletionEvent, bool) {
	if event.Day == "" {
		event.Day = model.DayOf(event.CompletedAt)
	}

	if existing, ok := s.byDay[event.Day][event.TaskID]; ok {
		return existing, false
	}

	s.put(event)
	return event, true
}

// Unrecord 移除某天的完成记录，缺席时为 no-op 而非错误
// 返回被移除的事件，调用方在外部 sink 失败时可以原样放回
func (s *Store) Unrecord(taskID int64, day string) (model.CompletionEvent, bool) {
	tasks, ok := s.byDay[day]
	if !ok {
		return model.CompletionEvent{}, false
	}
	event, ok := tasks[taskID]
	if !ok {
		return model.CompletionEvent{}, false
	}

	delete(tasks, taskID)
	if len(tasks) == 0 {
		delete(s.byDay, day)
	}
	return event, true
}

// IsCompletedOn 查询某任务某天是否已完成
func (s *Store) IsCompletedOn(taskID int64, day string) bool {
	_, ok := s.byDay[day][taskID]
	return ok
}

// EventsInRange 返回 [fromDay, toDay]（含端点）内的全部事件，
// 按 (day, taskID) 升序
func (s *Store) EventsInRange(fromDay, toDay string) []model.CompletionEvent {
	out := make([]model.CompletionEvent, 0)
	for day, tasks := range s.byDay {
		if day < fromDay || day > toDay {
			continue
		}
		for _, e := range tasks {
			out = append(out, e)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].TaskID < out[j].TaskID
	})

	return out
}

// All 返回全量事件，按 (day, taskID) 升序
func (s *Store) All() []model.CompletionEvent {
	return s.EventsInRange("0000-00-00", "9999-99-99")
}

// DaySet 某天已完成的任务 ID 集合（DailyCompletionSet 投影）
func (s *Store) DaySet(day string) map[int64]struct{} {
	set := make(map[int64]struct{}, len(s.byDay[day]))
	for taskID := range s.byDay[day] {
		set[taskID] = struct{}{}
	}
	return set
}

// TodaySet 当天已完成的任务 ID 集合
func (s *Store) TodaySet(now time.Time) map[int64]struct{} {
	return s.DaySet(model.DayOf(now))
}

// Len 事件总数
func (s *Store) Len() int {
	n := 0
	for _, tasks := range s.byDay {
		n += len(tasks)
	}
	return n
}

func (s *Store) put(e model.CompletionEvent) {
	tasks, ok := s.byDay[e.Day]
	if !ok {
		tasks = make(map[int64]model.CompletionEvent)
		s.byDay[e.Day] = tasks
	}
	tasks[e.TaskID] = e
}
