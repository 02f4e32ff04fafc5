package family

import (
	"math/rand/v2"
	"regexp"
)

// 家庭码：6 位大写字母数字，创建家庭时随机生成
const codeLength = 6

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var codePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

// GenerateCode 生成一个新的家庭码，唯一性由调用方对存储做占位检查保证
func GenerateCode() string {
	buf := make([]byte, codeLength)
	for i := range buf {
		buf[i] = codeCharset[rand.IntN(len(codeCharset))]
	}
	return string(buf)
}

// ValidCode 校验家庭码格式
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}
