package services

import (
	"fmt"

	"github.com/SiddeshHulagur/CarbonTracker/models"
)

// AchievementBus fans newly earned achievements out to the realtime hub and
// to registered mobile devices. Persistence stays with the caller.
type AchievementBus struct {
	rt *RealtimeHub
	ps *PushService
}

func NewAchievementBus(rt *RealtimeHub, ps *PushService) *AchievementBus {
	return &AchievementBus{rt: rt, ps: ps}
}

func (b *AchievementBus) Announce(userID uint, a models.Achievement) {
	if b == nil {
		return
	}
	if b.rt != nil {
		b.rt.Broadcast(userID, map[string]any{
			"kind":        "achievement.earned",
			"achievement": a,
		})
	}
	if b.ps != nil {
		b.ps.PushToUser(userID, "Achievement Earned", a.Name, map[string]string{
			"name": a.Name, "earnedAt": fmt.Sprintf("%d", a.DateEarned.Unix()),
		})
	}
}
