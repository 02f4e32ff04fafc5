package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"CleanHome/internal/cache"
	"CleanHome/internal/family"
	"CleanHome/internal/model"
	"CleanHome/internal/model/dto"
	"CleanHome/pkg/errors"
	"CleanHome/pkg/logger"
	"CleanHome/pkg/metrics"
	"CleanHome/pkg/token"
)

// FamilyService 家庭共享：创建/加入、任务分配、评论、完成历史的同步与广播
type FamilyService struct{}

var (
	familyService *FamilyService
	familyOnce    sync.Once
)

func Family() *FamilyService {
	familyOnce.Do(func() {
		familyService = &FamilyService{}
	})

	return familyService
}

const claimAttempts = 5

// Create 创建家庭：占用一个新家庭码，写入创建者成员，签发成员令牌
func (s *FamilyService) Create(ctx context.Context, req dto.CreateFamilyRequest) (dto.FamilyConnection, error) {
	if req.Name == "" {
		return dto.FamilyConnection{}, errors.MemberNameRequired
	}

	now := time.Now()

	var code string
	claimed := false
	for i := 0; i < claimAttempts; i++ {
		candidate := family.GenerateCode()
		ok, err := cache.ClaimFamilyCode(ctx, candidate, now.Format(time.RFC3339))
		if err != nil {
			return dto.FamilyConnection{}, err
		}
		if ok {
			code = candidate
			claimed = true
			break
		}
	}
	if !claimed {
		return dto.FamilyConnection{}, fmt.Errorf("failed to claim a family code after %d attempts", claimAttempts)
	}

	return s.addMember(ctx, code, req.Name, req.Color, req.Avatar)
}

// Join 加入已有家庭
func (s *FamilyService) Join(ctx context.Context, req dto.JoinFamilyRequest) (dto.FamilyConnection, error) {
	if !family.ValidCode(req.Code) {
		return dto.FamilyConnection{}, errors.FamilyCodeInvalid
	}
	if req.Name == "" {
		return dto.FamilyConnection{}, errors.MemberNameRequired
	}

	exists, err := cache.FamilyExists(ctx, req.Code)
	if err != nil {
		return dto.FamilyConnection{}, err
	}
	if !exists {
		return dto.FamilyConnection{}, errors.FamilyNotFound
	}

	return s.addMember(ctx, req.Code, req.Name, req.Color, req.Avatar)
}

func (s *FamilyService) addMember(ctx context.Context, code, name, color, avatar string) (dto.FamilyConnection, error) {
	memberID := uuid.NewString()
	member := model.FamilyMember{
		ID:     memberID,
		Name:   name,
		Color:  color,
		Avatar: avatar,
	}

	data, err := json.Marshal(member)
	if err != nil {
		return dto.FamilyConnection{}, fmt.Errorf("failed to marshal member: %w", err)
	}

	if err := cache.PutSubtreeEntry(ctx, code, cache.SubtreeMembers, memberID, data); err != nil {
		return dto.FamilyConnection{}, err
	}

	s.broadcast(ctx, code, cache.SubtreeMembers)

	memberToken, expiresIn, err := token.GenerateMemberToken(memberID, code)
	if err != nil {
		return dto.FamilyConnection{}, err
	}

	logger.Logger.Info("Member joined family",
		zap.String("family_code", code),
		zap.String("member_id", memberID),
	)

	return dto.FamilyConnection{
		Code:        code,
		MemberID:    memberID,
		MemberToken: memberToken,
		ExpiresIn:   expiresIn,
	}, nil
}

// Leave 离开家庭：移除成员记录并广播
func (s *FamilyService) Leave(ctx context.Context, code, memberID string) error {
	exists, err := cache.FamilyExists(ctx, code)
	if err != nil {
		return err
	}
	if !exists {
		return errors.FamilyNotFound
	}

	if err := cache.RemoveSubtreeEntry(ctx, code, cache.SubtreeMembers, memberID); err != nil {
		return err
	}

	s.broadcast(ctx, code, cache.SubtreeMembers)

	logger.Logger.Info("Member left family",
		zap.String("family_code", code),
		zap.String("member_id", memberID),
	)

	return nil
}

// Snapshot 读取归一化后的家庭树快照
func (s *FamilyService) Snapshot(ctx context.Context, code string) (dto.FamilySnapshotView, error) {
	createdAt, err := cache.FamilyCreatedAt(ctx, code)
	if err != nil {
		return dto.FamilySnapshotView{}, err
	}
	if createdAt == "" {
		return dto.FamilySnapshotView{}, errors.FamilyNotFound
	}

	members, err := s.loadMembers(ctx, code)
	if err != nil {
		return dto.FamilySnapshotView{}, err
	}

	events, err := s.loadHistory(ctx, code)
	if err != nil {
		return dto.FamilySnapshotView{}, err
	}

	assignmentsRaw, err := cache.GetSubtree(ctx, code, cache.SubtreeAssignments)
	if err != nil {
		return dto.FamilySnapshotView{}, err
	}
	assignments, err := family.NormalizeAssignments(family.SubtreeFromStrings(assignmentsRaw))
	if err != nil {
		return dto.FamilySnapshotView{}, err
	}

	commentsRaw, err := cache.GetSubtree(ctx, code, cache.SubtreeComments)
	if err != nil {
		return dto.FamilySnapshotView{}, err
	}
	comments, err := family.NormalizeComments(family.SubtreeFromStrings(commentsRaw))
	if err != nil {
		return dto.FamilySnapshotView{}, err
	}

	history := make([]dto.CompletionItem, 0, len(events))
	for _, e := range events {
		history = append(history, dto.NewCompletionItem(e))
	}

	return dto.FamilySnapshotView{
		Code:        code,
		CreatedAt:   createdAt,
		Members:     members,
		History:     history,
		Assignments: assignments,
		Comments:    comments,
	}, nil
}

func (s *FamilyService) loadMembers(ctx context.Context, code string) ([]model.FamilyMember, error) {
	raw, err := cache.GetSubtree(ctx, code, cache.SubtreeMembers)
	if err != nil {
		return nil, err
	}
	return family.NormalizeMembers(family.SubtreeFromStrings(raw))
}

func (s *FamilyService) loadHistory(ctx context.Context, code string) ([]model.CompletionEvent, error) {
	raw, err := cache.GetSubtree(ctx, code, cache.SubtreeHistory)
	if err != nil {
		return nil, err
	}
	return family.NormalizeHistory(family.SubtreeFromStrings(raw))
}

// AssignTask 把任务分配给指定成员并广播
func (s *FamilyService) AssignTask(ctx context.Context, code, memberID string, req dto.AssignTaskRequest) (model.TaskAssignment, error) {
	assignment := model.TaskAssignment{
		ID:         uuid.NewString(),
		TaskID:     req.TaskID,
		MemberID:   memberID,
		AssignedAt: time.Now().Format(time.RFC3339),
	}

	data, err := json.Marshal(assignment)
	if err != nil {
		return model.TaskAssignment{}, fmt.Errorf("failed to marshal assignment: %w", err)
	}

	if err := cache.PutSubtreeEntry(ctx, code, cache.SubtreeAssignments, assignment.ID, data); err != nil {
		return model.TaskAssignment{}, err
	}

	s.broadcast(ctx, code, cache.SubtreeAssignments)
	return assignment, nil
}

// CommentTask 给任务留言并广播
func (s *FamilyService) CommentTask(ctx context.Context, code, memberID string, req dto.CommentTaskRequest) (model.TaskComment, error) {
	comment := model.TaskComment{
		ID:        uuid.NewString(),
		TaskID:    req.TaskID,
		MemberID:  memberID,
		Comment:   req.Comment,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	data, err := json.Marshal(comment)
	if err != nil {
		return model.TaskComment{}, fmt.Errorf("failed to marshal comment: %w", err)
	}

	if err := cache.PutSubtreeEntry(ctx, code, cache.SubtreeComments, comment.ID, data); err != nil {
		return model.TaskComment{}, err
	}

	s.broadcast(ctx, code, cache.SubtreeComments)
	return comment, nil
}

// PushCompletion 把完成事件同步进家庭树并广播
// 同步失败只记录，不影响本地打勾（离线优先）
func (s *FamilyService) PushCompletion(ctx context.Context, code string, e model.CompletionEvent) {
	data, err := json.Marshal(e)
	if err != nil {
		logger.Logger.Warn("Failed to marshal completion for family sync",
			zap.String("family_code", code),
			zap.Int64("task_id", e.TaskID),
			zap.Error(err),
		)
		return
	}

	entryID := historyEntryID(e.TaskID, e.Day)
	if err := cache.PutSubtreeEntry(ctx, code, cache.SubtreeHistory, entryID, data); err != nil {
		metrics.GetMetrics().RecordFamilySync(ctx, cache.SubtreeHistory, false)
		logger.Logger.Warn("Failed to push completion to family tree",
			zap.String("family_code", code),
			zap.Int64("task_id", e.TaskID),
			zap.Error(err),
		)
		return
	}

	metrics.GetMetrics().RecordFamilySync(ctx, cache.SubtreeHistory, true)
	s.broadcast(ctx, code, cache.SubtreeHistory)
}

// RemoveCompletion 从家庭树移除完成事件并广播
func (s *FamilyService) RemoveCompletion(ctx context.Context, code string, taskID int64, day string) {
	entryID := historyEntryID(taskID, day)
	if err := cache.RemoveSubtreeEntry(ctx, code, cache.SubtreeHistory, entryID); err != nil {
		metrics.GetMetrics().RecordFamilySync(ctx, cache.SubtreeHistory, false)
		logger.Logger.Warn("Failed to remove completion from family tree",
			zap.String("family_code", code),
			zap.Int64("task_id", taskID),
			zap.Error(err),
		)
		return
	}

	metrics.GetMetrics().RecordFamilySync(ctx, cache.SubtreeHistory, true)
	s.broadcast(ctx, code, cache.SubtreeHistory)
}

// WaitEvent 长轮询：阻塞等待家庭频道的下一条事件
// 超时返回 (nil, nil)，由调用方回 204
func (s *FamilyService) WaitEvent(ctx context.Context, code string, timeout time.Duration) (*family.Event, error) {
	exists, err := cache.FamilyExists(ctx, code)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.FamilyNotFound
	}

	sub := cache.SubscribeFamily(ctx, code)
	defer sub.Close()

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	select {
	case msg, ok := <-sub.Channel():
		if !ok {
			return nil, nil
		}
		var event family.Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			return nil, fmt.Errorf("failed to decode family event: %w", err)
		}
		return &event, nil
	case <-waitCtx.Done():
		return nil, nil
	}
}

func (s *FamilyService) broadcast(ctx context.Context, code, subtree string) {
	event := family.NewEvent(code, subtree)
	if err := cache.PublishFamilyEvent(ctx, code, event.Encode()); err != nil {
		logger.Logger.Warn("Failed to broadcast family event",
			zap.String("family_code", code),
			zap.String("subtree", subtree),
			zap.Error(err),
		)
	}
}

func historyEntryID(taskID int64, day string) string {
	return fmt.Sprintf("%d_%s", taskID, day)
}
