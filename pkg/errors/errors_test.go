package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	assert.Equal(t, TaskNotFound, Get("TASK_NOT_FOUND"))

	unknown := Get("NO_SUCH_CODE")
	assert.Equal(t, "NO_SUCH_CODE", unknown.Code)
	assert.Equal(t, "Unexpected error", unknown.Message)
}

func TestDefinitionSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("task 42: %w", UnsupportedFrequency)

	var def Definition
	assert.True(t, stderrors.As(wrapped, &def))
	assert.Equal(t, UnsupportedFrequency.Code, def.Code)
	assert.ErrorIs(t, wrapped, UnsupportedFrequency)
}

func TestIsSkipMessageError(t *testing.T) {
	skip := &SkipMessageError{Reason: "duplicate delivery"}
	assert.True(t, IsSkipMessageError(skip))
	assert.Equal(t, "duplicate delivery", skip.Error())

	wrapped := fmt.Errorf("consume: %w", skip)
	assert.True(t, IsSkipMessageError(wrapped))

	assert.False(t, IsSkipMessageError(stderrors.New("boom")))
	assert.False(t, IsSkipMessageError(nil))
}
