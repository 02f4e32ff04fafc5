package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"CleanHome/internal/middleware"
	"CleanHome/internal/model/dto"
	"CleanHome/internal/service"
	"CleanHome/pkg/response"
)

// GetDarkMode 深色模式开关
// GET /v1/preferences/dark-mode
func GetDarkMode(ctx context.Context, c *app.RequestContext) {
	memberID, _ := middleware.GetMemberID(ctx, c)

	enabled, err := service.Preference().DarkMode(ctx, memberID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, dto.ToggleState{Enabled: enabled})
}

// SetDarkMode 写入深色模式开关
// PUT /v1/preferences/dark-mode
func SetDarkMode(ctx context.Context, c *app.RequestContext) {
	var req dto.ToggleRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	memberID, _ := middleware.GetMemberID(ctx, c)

	if err := service.Preference().SetDarkMode(ctx, memberID, req.Enabled); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, dto.ToggleState{Enabled: req.Enabled})
}

// GetNotificationsEnabled 提醒开关
// GET /v1/notifications/enabled
func GetNotificationsEnabled(ctx context.Context, c *app.RequestContext) {
	memberID, _ := middleware.GetMemberID(ctx, c)

	enabled, err := service.Preference().NotificationsEnabled(ctx, memberID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, dto.ToggleState{Enabled: enabled})
}

// SetNotificationsEnabled 写入提醒开关
// PUT /v1/notifications/enabled
func SetNotificationsEnabled(ctx context.Context, c *app.RequestContext) {
	var req dto.ToggleRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	memberID, _ := middleware.GetMemberID(ctx, c)

	if err := service.Preference().SetNotificationsEnabled(ctx, memberID, req.Enabled); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, dto.ToggleState{Enabled: req.Enabled})
}
