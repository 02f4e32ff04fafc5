package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"CleanHome/internal/handler"
	"CleanHome/internal/middleware"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.CORSMiddleware())
	h.Use(middleware.OpenTelemetryMiddleware())

	v1 := h.Group("/v1")
	v1.Use(middleware.GeneralRateLimitMiddleware())

	// 任务目录与排期，只读、无鉴权
	v1.GET("/tasks", handler.ListTasks)
	v1.GET("/zones", handler.ListZones)
	v1.GET("/schedule", handler.GetSchedule)
	v1.GET("/schedule/today", handler.GetTodaySchedule)

	// 完成历史：单机可用，带令牌时写入会同步家庭树
	completions := v1.Group("/completions")
	completions.Use(middleware.OptionalMemberMiddleware())
	{
		completions.POST("", handler.CompleteTask)
		completions.DELETE("/:task_id", handler.UncompleteTask)
		completions.GET("/today", handler.GetTodayCompletions)
		completions.GET("", handler.ListCompletions)
	}

	// 统计与游戏化，只读
	v1.GET("/stats/summary", handler.GetStatsSummary)
	v1.GET("/gamification/profile", handler.GetGamificationProfile)
	v1.GET("/challenges/week", handler.GetWeekChallenges)

	// 家庭共享
	families := v1.Group("/families")
	{
		// 创建/加入按 IP 限流，防止家庭码爆破
		families.POST("", middleware.FamilyRateLimitMiddleware(), handler.CreateFamily)
		families.POST("/join", middleware.FamilyRateLimitMiddleware(), handler.JoinFamily)

		authed := families.Group("")
		authed.Use(middleware.MemberAuthMiddleware())
		{
			authed.GET("/me", handler.GetFamilySnapshot)
			authed.DELETE("/me", handler.LeaveFamily)
			authed.POST("/assignments", handler.AssignTask)
			authed.POST("/comments", handler.CommentTask)
			authed.GET("/events", handler.WaitFamilyEvents)
			authed.POST("/sync", handler.SyncFromFamily)
		}
	}

	// 用户偏好
	preferences := v1.Group("")
	preferences.Use(middleware.OptionalMemberMiddleware())
	{
		preferences.GET("/preferences/dark-mode", handler.GetDarkMode)
		preferences.PUT("/preferences/dark-mode", handler.SetDarkMode)
		preferences.GET("/notifications/enabled", handler.GetNotificationsEnabled)
		preferences.PUT("/notifications/enabled", handler.SetNotificationsEnabled)
	}
}
