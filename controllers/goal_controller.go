package controllers

import (
	"net/http"

	"github.com/SiddeshHulagur/CarbonTracker/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Svc *services.GoalService
}

func NewGoalController(svc *services.GoalService) *GoalController {
	return &GoalController{Svc: svc}
}

// GET /api/goals
func (h *GoalController) Get(c *gin.Context) {
	userID := c.GetUint("userID")

	goal, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": gin.H{
		"dailyTarget":   goal.DailyTarget,
		"monthlyTarget": goal.MonthlyTarget,
	}})
}

// PUT /api/goals (partial update allowed)
func (h *GoalController) Update(c *gin.Context) {
	userID := c.GetUint("userID")

	var req struct {
		DailyTarget   *float64 `json:"dailyTarget"`
		MonthlyTarget *float64 `json:"monthlyTarget"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DailyTarget != nil && *req.DailyTarget < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dailyTarget must be a positive number"})
		return
	}
	if req.MonthlyTarget != nil && *req.MonthlyTarget < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "monthlyTarget must be a positive number"})
		return
	}

	goal, err := h.Svc.Upsert(c.Request.Context(), userID, req.DailyTarget, req.MonthlyTarget)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update goals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": gin.H{
		"dailyTarget":   goal.DailyTarget,
		"monthlyTarget": goal.MonthlyTarget,
	}})
}
