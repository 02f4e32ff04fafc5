package push

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendWithoutInitializedClient(t *testing.T) {
	require.Nil(t, pushClient)

	// 初始化失败被容忍的前提是后续投递降级为错误而不是 panic
	err := Send(context.Background(), Notification{Title: "Chores for tomorrow"})
	assert.Error(t, err)
}

func TestMockClientRecordsAndFailsOnDemand(t *testing.T) {
	m := NewMockClient()
	ctx := context.Background()

	require.NoError(t, m.Send(ctx, Notification{Title: "first"}))
	require.Len(t, m.Calls, 1)

	m.FailNext = true
	assert.Error(t, m.Send(ctx, Notification{Title: "second"}))
	assert.False(t, m.FailNext)

	// 失败后自动复位
	require.NoError(t, m.Send(ctx, Notification{Title: "third"}))
	assert.Len(t, m.Calls, 3)
}
