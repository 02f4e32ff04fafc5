package middleware

import (
	"fmt"

	"CleanHome/pkg/logger"
	"CleanHome/pkg/token"
)

// Init 初始化所有中间件
func Init() error {
	// 成员鉴权依赖共享的令牌生成器
	if token.GetGenerator() == nil {
		return fmt.Errorf("token generator not initialized, call token.Init() first")
	}

	logger.Logger.Info("All middlewares initialized successfully")
	return nil
}
