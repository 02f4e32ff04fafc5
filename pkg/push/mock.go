package push

import (
	"context"
	"errors"
	"sync"
)

// MockClient 可配置的推送客户端 mock，实现 Client 接口
type MockClient struct {
	mu    sync.Mutex
	Calls []Notification

	// FailNext 置为 true 时，下一次调用返回 mock 错误并自动复位
	FailNext bool
}

func NewMockClient() *MockClient {
	return &MockClient{
		Calls: make([]Notification, 0),
	}
}

func (m *MockClient) Send(ctx context.Context, n Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, n)

	if m.FailNext {
		m.FailNext = false
		return errors.New("mock push send failure")
	}

	return nil
}
