package push

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"CleanHome/config"
	"CleanHome/pkg/logger"
)

// Notification 一条待投递的提醒通知
// 引擎只负责把到期任务交给推送边界，实际送达由外部协作方完成
type Notification struct {
	Title   string  `json:"title"`
	Body    string  `json:"body"`
	Day     string  `json:"day"`      // 任务到期日（YYYY-MM-DD）
	TaskIDs []int64 `json:"task_ids"` // 该通知覆盖的任务
}

// Client 推送客户端接口
type Client interface {
	// Send 投递一条提醒通知
	Send(ctx context.Context, n Notification) error
}

var (
	pushClient Client
	pushOnce   sync.Once
	pushErr    error
)

// Init 初始化推送客户端
func Init() error {
	pushOnce.Do(func() {
		cfg := config.Cfg

		switch cfg.PushProvider {
		case "webpush":
			pushClient, pushErr = NewWebhookClient(cfg.PushEndpoint)
		case "mock":
			pushClient = NewMockClient()
		default:
			pushErr = fmt.Errorf("unsupported push provider: %s", cfg.PushProvider)
		}

		if pushErr != nil {
			logger.Logger.Error("Failed to initialize push client", zap.Error(pushErr))
			return
		}

		logger.Logger.Info("Push client initialized successfully",
			zap.String("provider", cfg.PushProvider),
		)
	})

	return pushErr
}

// Send 投递一条通知
// 客户端未初始化（Init 失败被容忍）时降级为错误，调用方照常走失败分支
func Send(ctx context.Context, n Notification) error {
	if pushClient == nil {
		return fmt.Errorf("push client not initialized")
	}
	return pushClient.Send(ctx, n)
}
