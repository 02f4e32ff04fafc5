package token

import (
	"fmt"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/hertz-contrib/jwt"

	"CleanHome/config"
	"CleanHome/pkg/errors"
)

const (
	IdentityKey   = "member_id"
	FamilyCodeKey = "family_code"
)

var (
	// 这个实例会被 middleware 和 token 包共同使用
	sharedGenerator *jwt.HertzJWTMiddleware
)

func Init() error {
	var err error
	sharedGenerator, err = jwt.New(&jwt.HertzJWTMiddleware{
		Key:         []byte(config.Cfg.JWTSecret),
		Timeout:     time.Duration(config.Cfg.JWTExpireMinutes) * time.Minute,
		IdentityKey: IdentityKey,
		TimeFunc:    time.Now,
	})

	if err != nil {
		return fmt.Errorf("failed to initialize token generator: %w", err)
	}

	return nil
}

// GetGenerator 获取共享的 token 生成器（供 middleware 使用）
func GetGenerator() *jwt.HertzJWTMiddleware {
	return sharedGenerator
}

// GenerateMemberToken 为家庭成员签发身份令牌
// 令牌绑定成员 ID 与家庭码，家庭内的写操作（分配、评论）凭此识别成员
func GenerateMemberToken(memberID, familyCode string) (token string, expiresIn int, err error) {
	if sharedGenerator == nil {
		return "", 0, errors.ErrTokenGeneratorNotInitialized
	}

	now := time.Now()
	expiresAt := now.Add(time.Duration(config.Cfg.JWTExpireMinutes) * time.Minute)

	claims := jwtv5.MapClaims{
		IdentityKey:   memberID,
		FamilyCodeKey: familyCode,
		"iat":         now.Unix(),
		"exp":         expiresAt.Unix(),
	}

	tokenObj := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	token, err = tokenObj.SignedString([]byte(config.Cfg.JWTSecret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to generate member token: %w", err)
	}

	expiresIn = int(time.Until(expiresAt).Seconds())
	if expiresIn < 0 {
		expiresIn = 0
	}

	return token, expiresIn, nil
}

// ParseMemberToken 验证令牌并返回成员 ID 和家庭码
func ParseMemberToken(tokenStr string) (memberID, familyCode string, err error) {
	parsed, err := jwtv5.Parse(tokenStr, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.Cfg.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return "", "", errors.InvalidMemberToken
	}

	claims, ok := parsed.Claims.(jwtv5.MapClaims)
	if !ok {
		return "", "", errors.InvalidMemberToken
	}

	memberID, _ = claims[IdentityKey].(string)
	familyCode, _ = claims[FamilyCodeKey].(string)
	if memberID == "" || familyCode == "" {
		return "", "", errors.InvalidMemberToken
	}

	return memberID, familyCode, nil
}
