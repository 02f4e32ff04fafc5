package queue

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"CleanHome/pkg/logger"
	"CleanHome/pkg/metrics"
	"CleanHome/pkg/snowflake"
	"CleanHome/storage/mq"
)

const (
	delayedExchange        = "scheduler.delayed"
	taskReminderRoutingKey = "scheduler.task.reminder"
)

// PublishTaskReminder 发布任务提醒消息（延迟消息）
func PublishTaskReminder(ctx context.Context, msg TaskReminderMessage) error {
	if msg.MessageID == "" {
		id, err := snowflake.NextID()
		if err != nil {
			logger.Logger.Error("Failed to generate message ID",
				zap.String("day", msg.Day),
				zap.Error(err),
			)
			return fmt.Errorf("failed to generate message ID: %w", err)
		}
		msg.MessageID = fmt.Sprintf("task_reminder_%d", id)
	}

	delay := time.Duration(msg.DelaySeconds) * time.Second
	if delay > 24*time.Hour {
		return fmt.Errorf("delay %v exceeds 24 hours limit, schedule closer to the target time", delay)
	}

	err := mq.PublishDelayedMessage(
		delayedExchange,
		taskReminderRoutingKey,
		delay,
		msg,
	)
	if err != nil {
		logger.Logger.Error("Failed to publish task reminder message",
			zap.String("message_id", msg.MessageID),
			zap.String("day", msg.Day),
			zap.Int("task_count", len(msg.TaskIDs)),
			zap.Error(err),
		)
		return err
	}

	metrics.GetMetrics().RecordReminderPublished(ctx, int64(len(msg.TaskIDs)))

	logger.Logger.Info("Published task reminder message",
		zap.String("message_id", msg.MessageID),
		zap.String("day", msg.Day),
		zap.Int("task_count", len(msg.TaskIDs)),
		zap.Duration("delay", delay),
	)

	return nil
}
