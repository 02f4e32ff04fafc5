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

// CompleteTask 给任务打勾
// POST /v1/completions
func CompleteTask(ctx context.Context, c *app.RequestContext) {
	var req dto.CompleteTaskRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	memberID, _ := middleware.GetMemberID(ctx, c)
	familyCode, _ := middleware.GetFamilyCode(ctx, c)

	item, created, err := service.History().Complete(ctx, req.TaskID, memberID, familyCode)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.SuccessWithMeta(ctx, c, item, map[string]interface{}{
		"created": created,
	})
}

// UncompleteTask 撤销打勾，缺省撤销今天的记录
// DELETE /v1/completions/:task_id?day=2026-08-29
func UncompleteTask(ctx context.Context, c *app.RequestContext) {
	taskID, err := strconv.ParseInt(c.Param("task_id"), 10, 64)
	if err != nil || taskID <= 0 {
		response.Error(ctx, c, errors.TaskNotFound)
		return
	}

	day := c.Query("day")
	if day == "" {
		day = model.DayOf(time.Now())
	}

	familyCode, _ := middleware.GetFamilyCode(ctx, c)

	// 记录缺席时撤销是 no-op，同样返回 204
	if _, err := service.History().Uncomplete(ctx, taskID, day, familyCode); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}

// GetTodayCompletions 当天已完成的任务 ID 集合
// GET /v1/completions/today
func GetTodayCompletions(ctx context.Context, c *app.RequestContext) {
	response.Success(ctx, c, service.History().Today(ctx))
}

// ListCompletions 查询日期范围内的完成事件
// GET /v1/completions?from=2026-08-01&to=2026-08-29
func ListCompletions(ctx context.Context, c *app.RequestContext) {
	from := c.Query("from")
	to := c.Query("to")

	items, err := service.History().Range(ctx, from, to)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, items)
}
