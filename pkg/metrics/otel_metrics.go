package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetrics OpenTelemetry 指标集合
type OTelMetrics struct {
	// 完成事件相关指标
	CompletionRecordedTotal   metric.Int64Counter
	CompletionUnrecordedTotal metric.Int64Counter

	// 提醒管道相关指标
	ReminderPublishedTotal metric.Int64Counter
	ReminderSentTotal      metric.Int64Counter
	ReminderSendDuration   metric.Float64Histogram

	// 家庭同步相关指标
	FamilySyncPushTotal    metric.Int64Counter
	FamilySyncFailureTotal metric.Int64Counter
}

var (
	// 全局指标实例
	metrics *OTelMetrics
	// meter 用于创建指标
	meter = otel.Meter("cleanhome")
)

// InitMetrics 初始化 OpenTelemetry 指标
func InitMetrics() error {
	var err error

	metrics = &OTelMetrics{}

	metrics.CompletionRecordedTotal, err = meter.Int64Counter(
		"completion_recorded_total",
		metric.WithDescription("Total number of completion events recorded"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return err
	}

	metrics.CompletionUnrecordedTotal, err = meter.Int64Counter(
		"completion_unrecorded_total",
		metric.WithDescription("Total number of completion events removed"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return err
	}

	metrics.ReminderPublishedTotal, err = meter.Int64Counter(
		"reminder_published_total",
		metric.WithDescription("Total number of reminder messages published to the queue"),
		metric.WithUnit("{message}"),
	)
	if err != nil {
		return err
	}

	metrics.ReminderSentTotal, err = meter.Int64Counter(
		"reminder_sent_total",
		metric.WithDescription("Total number of reminders handed to the push boundary"),
		metric.WithUnit("{reminder}"),
	)
	if err != nil {
		return err
	}

	metrics.ReminderSendDuration, err = meter.Float64Histogram(
		"reminder_send_duration_seconds",
		metric.WithDescription("Time spent delivering reminders in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	metrics.FamilySyncPushTotal, err = meter.Int64Counter(
		"family_sync_push_total",
		metric.WithDescription("Total number of family subtree pushes"),
		metric.WithUnit("{push}"),
	)
	if err != nil {
		return err
	}

	metrics.FamilySyncFailureTotal, err = meter.Int64Counter(
		"family_sync_failure_total",
		metric.WithDescription("Total number of failed family sync operations"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return err
	}

	return nil
}

// GetMetrics 获取全局指标实例
func GetMetrics() *OTelMetrics {
	return metrics
}

// RecordCompletion 记录一次打勾
func (m *OTelMetrics) RecordCompletion(ctx context.Context, zone string) {
	if m == nil || m.CompletionRecordedTotal == nil {
		return
	}
	m.CompletionRecordedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("zone", zone),
	))
}

// RecordUncompletion 记录一次取消打勾
func (m *OTelMetrics) RecordUncompletion(ctx context.Context, zone string) {
	if m == nil || m.CompletionUnrecordedTotal == nil {
		return
	}
	m.CompletionUnrecordedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("zone", zone),
	))
}

// RecordReminderPublished 记录提醒消息入队
func (m *OTelMetrics) RecordReminderPublished(ctx context.Context, count int64) {
	if m == nil || m.ReminderPublishedTotal == nil {
		return
	}
	m.ReminderPublishedTotal.Add(ctx, count)
}

// RecordReminderSent 记录提醒投递结果
func (m *OTelMetrics) RecordReminderSent(ctx context.Context, provider string, duration float64, success bool) {
	if m == nil || m.ReminderSentTotal == nil {
		return
	}

	status := "success"
	if !success {
		status = "failure"
	}
	attrs := metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("status", status),
	)

	m.ReminderSentTotal.Add(ctx, 1, attrs)
	m.ReminderSendDuration.Record(ctx, duration, attrs)
}

// RecordFamilySync 记录家庭子树推送结果
func (m *OTelMetrics) RecordFamilySync(ctx context.Context, path string, success bool) {
	if m == nil || m.FamilySyncPushTotal == nil {
		return
	}

	attrs := metric.WithAttributes(attribute.String("path", path))
	m.FamilySyncPushTotal.Add(ctx, 1, attrs)
	if !success {
		m.FamilySyncFailureTotal.Add(ctx, 1, attrs)
	}
}
