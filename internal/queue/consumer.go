package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"CleanHome/config"
	"CleanHome/internal/cache"
	"CleanHome/internal/catalog"
	"CleanHome/pkg/errors"
	"CleanHome/pkg/logger"
	"CleanHome/pkg/metrics"
	"CleanHome/pkg/push"
	"CleanHome/storage/mq"
)

// StartTaskReminderConsumer 启动任务提醒消费者
// 消费延迟到点的提醒消息，过滤已完成任务后推送通知
func StartTaskReminderConsumer(ctx context.Context) error {
	handler := func(body []byte) error {
		var msg TaskReminderMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return fmt.Errorf("failed to unmarshal task reminder message: %w", err)
		}

		processing, err := cache.TryMarkMessageProcessing(ctx, msg.MessageID, 24*time.Hour)
		if err != nil {
			logger.Logger.Warn("Failed to check message processed status",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
			// 检查失败时继续处理，宁可重复也不丢提醒
		} else if !processing {
			logger.Logger.Info("Message already processed or being processed, skipping",
				zap.String("message_id", msg.MessageID),
				zap.String("day", msg.Day),
			)
			return &errors.SkipMessageError{Reason: fmt.Sprintf("message %s already processed", msg.MessageID)}
		}

		logger.Logger.Info("Processing task reminder",
			zap.String("message_id", msg.MessageID),
			zap.String("day", msg.Day),
			zap.Int("task_count", len(msg.TaskIDs)),
		)

		// 提醒开关未打开时直接吞掉消息
		enabled, err := cache.GetNotificationsEnabled(ctx, cache.LocalOwner)
		if err != nil {
			logger.Logger.Warn("Failed to check notification preference",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		}
		if err == nil && !enabled {
			if markErr := cache.MarkMessageProcessed(ctx, msg.MessageID, 48*time.Hour); markErr != nil {
				logger.Logger.Warn("Failed to mark message as processed",
					zap.String("message_id", msg.MessageID),
					zap.Error(markErr),
				)
			}
			return &errors.SkipMessageError{Reason: "notifications disabled"}
		}

		// 投放之后可能已经有任务被完成，发送前再过滤一次
		pending, err := filterPendingTasks(ctx, msg.Day, msg.TaskIDs)
		if err != nil {
			cache.UnmarkMessageProcessing(ctx, msg.MessageID)
			return fmt.Errorf("failed to filter pending tasks: %w", err)
		}

		if len(pending) == 0 {
			logger.Logger.Info("All reminded tasks already completed, nothing to send",
				zap.String("message_id", msg.MessageID),
				zap.String("day", msg.Day),
			)
			if markErr := cache.MarkMessageProcessed(ctx, msg.MessageID, 48*time.Hour); markErr != nil {
				logger.Logger.Warn("Failed to mark message as processed",
					zap.String("message_id", msg.MessageID),
					zap.Error(markErr),
				)
			}
			return nil
		}

		notification := buildNotification(msg.Day, pending)

		start := time.Now()
		sendErr := push.Send(ctx, notification)
		metrics.GetMetrics().RecordReminderSent(ctx, config.Cfg.PushProvider, time.Since(start).Seconds(), sendErr == nil)

		if sendErr != nil {
			cache.UnmarkMessageProcessing(ctx, msg.MessageID)
			return fmt.Errorf("failed to send reminder notification: %w", sendErr)
		}

		if err := cache.MarkMessageProcessed(ctx, msg.MessageID, 48*time.Hour); err != nil {
			logger.Logger.Warn("Failed to mark message as processed",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		}

		logger.Logger.Info("Reminder notification sent",
			zap.String("message_id", msg.MessageID),
			zap.String("day", msg.Day),
			zap.Int("pending_count", len(pending)),
		)

		return nil
	}

	return mq.Consume(mq.ConsumeOptions{
		Queue:         "task.reminder",
		ConsumerTag:   "task_reminder_consumer",
		PrefetchCount: 10,
		Handler:       handler,
	})
}

// filterPendingTasks 去掉提醒日已完成的任务
func filterPendingTasks(ctx context.Context, day string, taskIDs []int64) ([]int64, error) {
	completed, err := cache.DailyCompletions(ctx, day)
	if err != nil {
		return nil, err
	}

	pending := make([]int64, 0, len(taskIDs))
	for _, id := range taskIDs {
		if _, ok := completed[id]; ok {
			continue
		}
		pending = append(pending, id)
	}
	return pending, nil
}

// buildNotification 组装推送内容，正文最多点名 3 个任务
func buildNotification(day string, taskIDs []int64) push.Notification {
	names := make([]string, 0, 3)
	for _, id := range taskIDs {
		if len(names) == 3 {
			break
		}
		if task, ok := catalog.TaskByID(id); ok {
			names = append(names, task.Name)
		}
	}

	body := fmt.Sprintf("%d tasks due", len(taskIDs))
	if len(names) > 0 {
		body = fmt.Sprintf("%d tasks due: %s", len(taskIDs), strings.Join(names, ", "))
		if len(taskIDs) > len(names) {
			body += ", …"
		}
	}

	return push.Notification{
		Title:   "Chores for tomorrow",
		Body:    body,
		Day:     day,
		TaskIDs: taskIDs,
	}
}

// StartAllConsumers 启动 worker 的全部消费者
func StartAllConsumers(ctx context.Context) {
	logger.Logger.Info("Starting consumer",
		zap.String("consumer_name", "task_reminder"),
	)

	if err := StartTaskReminderConsumer(ctx); err != nil {
		logger.Logger.Error("Consumer exited with error",
			zap.String("consumer_name", "task_reminder"),
			zap.Error(err),
		)
	}
}
