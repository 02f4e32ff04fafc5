package service

import (
	"context"
	"sync"

	"CleanHome/internal/cache"
)

// PreferenceService 用户偏好：深色模式、提醒开关
type PreferenceService struct{}

var (
	preferenceService *PreferenceService
	preferenceOnce    sync.Once
)

func Preference() *PreferenceService {
	preferenceOnce.Do(func() {
		preferenceService = &PreferenceService{}
	})

	return preferenceService
}

// owner 归属：有成员身份时按成员隔离，否则落到本机档位
func prefOwner(memberID string) string {
	if memberID == "" {
		return cache.LocalOwner
	}
	return memberID
}

func (s *PreferenceService) DarkMode(ctx context.Context, memberID string) (bool, error) {
	return cache.GetDarkMode(ctx, prefOwner(memberID))
}

func (s *PreferenceService) SetDarkMode(ctx context.Context, memberID string, enabled bool) error {
	return cache.SetDarkMode(ctx, prefOwner(memberID), enabled)
}

func (s *PreferenceService) NotificationsEnabled(ctx context.Context, memberID string) (bool, error) {
	return cache.GetNotificationsEnabled(ctx, prefOwner(memberID))
}

func (s *PreferenceService) SetNotificationsEnabled(ctx context.Context, memberID string, enabled bool) error {
	return cache.SetNotificationsEnabled(ctx, prefOwner(memberID), enabled)
}
