package controllers

import (
	"net/http"
	"time"

	"github.com/SiddeshHulagur/CarbonTracker/services"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	Svc *services.LeaderboardService
}

func NewLeaderboardController(svc *services.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{Svc: svc}
}

// GET /api/leaderboard?period=week|month
func (h *LeaderboardController) Get(c *gin.Context) {
	userID := c.GetUint("userID")
	period := c.DefaultQuery("period", "month")

	board, err := h.Svc.Build(c.Request.Context(), userID, period, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leaderboard data"})
		return
	}

	c.JSON(http.StatusOK, board)
}
