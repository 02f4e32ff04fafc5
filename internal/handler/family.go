package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/cloudwego/hertz/pkg/app"

	"CleanHome/internal/middleware"
	"CleanHome/internal/model"
	"CleanHome/internal/model/dto"
	"CleanHome/internal/service"
	"CleanHome/pkg/errors"
	"CleanHome/pkg/response"
)

// CreateFamily 创建家庭并成为第一个成员
// POST /v1/families
func CreateFamily(ctx context.Context, c *app.RequestContext) {
	var req dto.CreateFamilyRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	conn, err := service.Family().Create(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, conn)
}

// JoinFamily 凭家庭码加入
// POST /v1/families/join
func JoinFamily(ctx context.Context, c *app.RequestContext) {
	var req dto.JoinFamilyRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	conn, err := service.Family().Join(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, conn)
}

// LeaveFamily 离开当前家庭
// DELETE /v1/families/me
func LeaveFamily(ctx context.Context, c *app.RequestContext) {
	memberID, ok := middleware.GetMemberID(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.Unauthorized)
		return
	}
	familyCode, ok := middleware.GetFamilyCode(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.FamilyNotJoined)
		return
	}

	if err := service.Family().Leave(ctx, familyCode, memberID); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}

// GetFamilySnapshot 当前家庭的归一化快照
// GET /v1/families/me
func GetFamilySnapshot(ctx context.Context, c *app.RequestContext) {
	familyCode, ok := middleware.GetFamilyCode(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.FamilyNotJoined)
		return
	}

	snapshot, err := service.Family().Snapshot(ctx, familyCode)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, snapshot)
}

// AssignTask 把任务分配给当前成员
// POST /v1/families/assignments
func AssignTask(ctx context.Context, c *app.RequestContext) {
	memberID, ok := middleware.GetMemberID(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.Unauthorized)
		return
	}
	familyCode, ok := middleware.GetFamilyCode(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.FamilyNotJoined)
		return
	}

	var req dto.AssignTaskRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	assignment, err := service.Family().AssignTask(ctx, familyCode, memberID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, assignment)
}

// CommentTask 给任务留言
// POST /v1/families/comments
func CommentTask(ctx context.Context, c *app.RequestContext) {
	memberID, ok := middleware.GetMemberID(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.Unauthorized)
		return
	}
	familyCode, ok := middleware.GetFamilyCode(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.FamilyNotJoined)
		return
	}

	var req dto.CommentTaskRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	comment, err := service.Family().CommentTask(ctx, familyCode, memberID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, comment)
}

// WaitFamilyEvents 长轮询家庭变更事件，超时返回 204
// GET /v1/families/events?timeout=30
func WaitFamilyEvents(ctx context.Context, c *app.RequestContext) {
	familyCode, ok := middleware.GetFamilyCode(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.FamilyNotJoined)
		return
	}

	timeout := 30 * time.Second
	if raw := c.Query("timeout"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 && seconds <= 60 {
			timeout = time.Duration(seconds) * time.Second
		}
	}

	event, err := service.Family().WaitEvent(ctx, familyCode, timeout)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	if event == nil {
		response.NoContent(ctx, c)
		return
	}

	response.Success(ctx, c, event)
}

// SyncFromFamily 用家庭树的完成历史整体替换本地历史
// POST /v1/families/sync
func SyncFromFamily(ctx context.Context, c *app.RequestContext) {
	familyCode, ok := middleware.GetFamilyCode(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.FamilyNotJoined)
		return
	}

	snapshot, err := service.Family().Snapshot(ctx, familyCode)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	events := make([]model.CompletionEvent, 0, len(snapshot.History))
	for _, item := range snapshot.History {
		completedAt, err := time.Parse("2006-01-02T15:04:05Z07:00", item.CompletedAt)
		if err != nil {
			completedAt = time.Now()
		}
		events = append(events, model.CompletionEvent{
			TaskID:      item.TaskID,
			Day:         item.Day,
			CompletedAt: completedAt,
			MemberID:    item.MemberID,
		})
	}

	if err := service.History().ReplaceFromFamily(ctx, events); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, service.History().Today(ctx))
}
