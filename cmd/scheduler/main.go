package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"CleanHome/config"
	"CleanHome/internal/schedule"
	"CleanHome/pkg/logger"
	"CleanHome/pkg/metrics"
	"CleanHome/pkg/snowflake"
	"CleanHome/storage"
)

func main() {

	logger.Init()
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Logger.Info("Scheduler received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage for scheduler", zap.Error(err))
	}
	defer storage.Close()

	if err := snowflake.Init(config.Cfg.SnowflakeMachineID, config.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake for scheduler", zap.Error(err))
	}

	if err := metrics.InitMetrics(); err != nil {
		logger.Logger.Warn("Failed to initialize business metrics", zap.Error(err))
	}

	logger.Logger.Info("Scheduler service starting",
		zap.String("service", config.Cfg.ServiceName+"-scheduler"),
		zap.String("environment", config.Cfg.Environment),
	)

	// development 环境下用 1 分钟间隔跑，方便本地调试
	if config.Cfg.IsDevelopment() {
		runDevLoop(ctx)
		return
	}

	runCron(ctx)

	logger.Logger.Info("Scheduler service shutting down gracefully")
}

// runCron 每天在提醒时刻扫描一次次日到期任务
func runCron(ctx context.Context) {
	spec, err := cronSpec(config.Cfg.ReminderTime)
	if err != nil {
		logger.Logger.Fatal("Invalid reminder time", zap.String("reminder_time", config.Cfg.ReminderTime), zap.Error(err))
	}

	c := cron.New()
	_, err = c.AddFunc(spec, func() {
		runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
		defer cancel()

		if err := schedule.ScheduleTomorrowReminders(runCtx, time.Now()); err != nil {
			logger.Logger.Error("Reminder scheduling run failed", zap.Error(err))
		}
	})
	if err != nil {
		logger.Logger.Fatal("Failed to register cron job", zap.Error(err))
	}

	logger.Logger.Info("Reminder cron registered", zap.String("spec", spec))

	c.Start()
	<-ctx.Done()

	stopCtx := c.Stop()
	<-stopCtx.Done()
}

// runDevLoop development 模式：每分钟扫描一次，幂等标记保证同一天只投一次
func runDevLoop(ctx context.Context) {
	logger.Logger.Info("Reminder scheduler running in development mode with 1m interval")

	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			if err := schedule.ScheduleTomorrowReminders(runCtx, time.Now()); err != nil {
				logger.Logger.Error("Reminder scheduling run failed (development interval)", zap.Error(err))
			}
			cancel()
		}
	}
}

// cronSpec 把 "HH:MM" 转成标准 cron 表达式
func cronSpec(reminderTime string) (string, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(reminderTime, "%d:%d", &hour, &minute); err != nil {
		return "", fmt.Errorf("expected HH:MM, got %q: %w", reminderTime, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("time %q out of range", reminderTime)
	}
	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}
