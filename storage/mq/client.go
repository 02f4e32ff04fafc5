package mq

import (
	"context"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"CleanHome/config"
)

var (
	conn   *amqp.Connection
	mqOnce sync.Once
	mqErr  error
)

func Init() error {
	mqOnce.Do(func() {
		url := config.Cfg.GetRabbitMQURL()

		conn, mqErr = amqp.Dial(url)
		if mqErr != nil {
			return
		}

		mqErr = declareTopology()
	})

	return mqErr
}

// Connection 获取底层连接（供 consumer 使用）
func Connection() *amqp.Connection {
	return conn
}

// declareTopology 声明提醒管道使用的 exchange 和队列
func declareTopology() error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel for topology: %w", err)
	}
	defer ch.Close()

	// 延迟交换机，调度器按 x-delay 投放提醒消息
	if err := ch.ExchangeDeclare(
		"scheduler.delayed",
		"x-delayed-message",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		amqp.Table{"x-delayed-type": "topic"},
	); err != nil {
		return fmt.Errorf("failed to declare delayed exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(
		"task.reminder",
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare reminder queue: %w", err)
	}

	if err := ch.QueueBind(
		"task.reminder",
		"scheduler.task.reminder",
		"scheduler.delayed",
		false,
		nil,
	); err != nil {
		return fmt.Errorf("failed to bind reminder queue: %w", err)
	}

	return nil
}

func Close(ctx context.Context) error {
	if conn == nil {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.Close()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
