package family

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCodeFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateCode()
		assert.True(t, ValidCode(code), "generated code %q", code)
		seen[code] = true
	}
	// 100 次采样出现碰撞的概率可以忽略
	assert.Greater(t, len(seen), 90)
}

func TestValidCode(t *testing.T) {
	assert.True(t, ValidCode("ABC123"))
	assert.True(t, ValidCode("ZZZZZZ"))

	assert.False(t, ValidCode(""))
	assert.False(t, ValidCode("abc123"))  // 小写
	assert.False(t, ValidCode("ABC12"))   // 过短
	assert.False(t, ValidCode("ABC1234")) // 过长
	assert.False(t, ValidCode("ABC-12"))
}
