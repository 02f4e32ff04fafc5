package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"CleanHome/internal/service"
	"CleanHome/pkg/response"
)

// GetStatsSummary 统计总览
// GET /v1/stats/summary
func GetStatsSummary(ctx context.Context, c *app.RequestContext) {
	response.Success(ctx, c, service.Stats().Summary(ctx))
}

// GetGamificationProfile 游戏化档案：积分、等级、徽章
// GET /v1/gamification/profile
func GetGamificationProfile(ctx context.Context, c *app.RequestContext) {
	response.Success(ctx, c, service.Stats().Profile(ctx))
}

// GetWeekChallenges 本周挑战及实时进度
// GET /v1/challenges/week
func GetWeekChallenges(ctx context.Context, c *app.RequestContext) {
	response.Success(ctx, c, service.Challenge().Week(ctx))
}
