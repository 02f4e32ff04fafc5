package service

import (
	"context"
	"sync"
	"time"

	"CleanHome/internal/gamification"
	"CleanHome/internal/history"
	"CleanHome/internal/model/dto"
	"CleanHome/internal/stats"
)

// ChallengeService 周挑战：确定性生成 + 进度重算，无需存储
type ChallengeService struct{}

var (
	challengeService *ChallengeService
	challengeOnce    sync.Once
)

func Challenge() *ChallengeService {
	challengeOnce.Do(func() {
		challengeService = &ChallengeService{}
	})

	return challengeService
}

// Week 当前周期的四个挑战，附带实时进度
// 周一零点周期键翻转，挑战集合与进度自然归零
func (s *ChallengeService) Week(ctx context.Context) []dto.ChallengeItem {
	now := time.Now()
	weekKey := gamification.WeekKey(now)
	challenges := gamification.GenerateWeekly(weekKey, now)

	items := make([]dto.ChallengeItem, 0, len(challenges))
	History().Read(func(store *history.Store) {
		for _, ch := range challenges {
			progress, achieved := stats.ChallengeProgress(store, ch, now)
			items = append(items, dto.ChallengeItem{
				ID:          ch.ID,
				Name:        ch.Name,
				Description: ch.Description,
				Icon:        ch.Icon,
				Target:      ch.Target,
				Reward:      ch.Reward,
				Type:        ch.Type,
				ExpiresAt:   ch.ExpiresAt,
				Progress:    progress,
				Achieved:    achieved,
			})
		}
	})

	return items
}
