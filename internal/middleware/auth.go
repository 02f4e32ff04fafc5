package middleware

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"

	"CleanHome/pkg/errors"
	"CleanHome/pkg/response"
	"CleanHome/pkg/token"
)

const (
	IdentityKey   = token.IdentityKey
	FamilyCodeKey = token.FamilyCodeKey
)

// bearerToken 从 Authorization 头提取令牌
func bearerToken(c *app.RequestContext) string {
	auth := string(c.GetHeader("Authorization"))
	if auth == "" {
		return ""
	}

	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// MemberAuthMiddleware 家庭成员鉴权：要求携带有效的成员令牌
// 令牌绑定成员 ID 与家庭码，家庭内的写操作凭此识别成员
func MemberAuthMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			response.Error(ctx, c, errors.Unauthorized)
			c.Abort()
			return
		}

		memberID, familyCode, err := token.ParseMemberToken(tokenStr)
		if err != nil {
			response.Error(ctx, c, errors.InvalidMemberToken)
			c.Abort()
			return
		}

		c.Set(IdentityKey, memberID)
		c.Set(FamilyCodeKey, familyCode)
		c.Next(ctx)
	}
}

// OptionalMemberMiddleware 可选鉴权：带有效令牌时注入成员身份，否则按单机用户继续
// 单机模式是一等公民，完成打勾等操作不要求加入家庭
func OptionalMemberMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if tokenStr := bearerToken(c); tokenStr != "" {
			if memberID, familyCode, err := token.ParseMemberToken(tokenStr); err == nil {
				c.Set(IdentityKey, memberID)
				c.Set(FamilyCodeKey, familyCode)
			}
		}
		c.Next(ctx)
	}
}

// GetMemberID 从请求上下文中获取成员 ID
func GetMemberID(ctx context.Context, c *app.RequestContext) (string, bool) {
	val, exists := c.Get(IdentityKey)
	if !exists {
		return "", false
	}

	id, ok := val.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// GetFamilyCode 从请求上下文中获取家庭码
func GetFamilyCode(ctx context.Context, c *app.RequestContext) (string, bool) {
	val, exists := c.Get(FamilyCodeKey)
	if !exists {
		return "", false
	}

	code, ok := val.(string)
	if !ok || code == "" {
		return "", false
	}
	return code, true
}
