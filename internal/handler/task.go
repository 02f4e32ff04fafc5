package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"CleanHome/internal/service"
	"CleanHome/pkg/response"
)

// ListTasks 任务目录，可按区域过滤
// GET /v1/tasks?zone=Kitchen
func ListTasks(ctx context.Context, c *app.RequestContext) {
	scheduleService := service.Schedule()

	zone := c.Query("zone")
	if zone != "" {
		tasks, err := scheduleService.TasksByZone(ctx, zone)
		if err != nil {
			response.Error(ctx, c, err)
			return
		}
		response.Success(ctx, c, tasks)
		return
	}

	response.Success(ctx, c, scheduleService.Tasks(ctx))
}

// ListZones 区域列表
// GET /v1/zones
func ListZones(ctx context.Context, c *app.RequestContext) {
	response.Success(ctx, c, service.Schedule().Zones(ctx))
}

// GetSchedule 展开日期范围内的排期
// GET /v1/schedule?from=2026-08-24&to=2026-08-30
func GetSchedule(ctx context.Context, c *app.RequestContext) {
	from := c.Query("from")
	to := c.Query("to")

	instances, err := service.Schedule().Expand(ctx, from, to)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, instances)
}

// GetTodaySchedule 今天到期的任务及完成状态
// GET /v1/schedule/today
func GetTodaySchedule(ctx context.Context, c *app.RequestContext) {
	instances, err := service.Schedule().DueToday(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, instances)
}
