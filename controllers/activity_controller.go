package controllers

import (
	"net/http"

	"github.com/SiddeshHulagur/CarbonTracker/services"
	"github.com/SiddeshHulagur/CarbonTracker/utils"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	Svc *services.ActivityService
}

func NewActivityController(svc *services.ActivityService) *ActivityController {
	return &ActivityController{Svc: svc}
}

// sanity ceiling on per-day inputs
const maxDailyValue = 1000.0

// validateInput rejects negative values and values beyond plausible daily
// limits before the calculator sees them.
func validateInput(in utils.ActivityInput) string {
	fields := []float64{}
	if in.Transport != nil {
		fields = append(fields, in.Transport.CarKm, in.Transport.BikeKm, in.Transport.BusKm, in.Transport.WalkKm)
	}
	if in.Electricity != nil {
		fields = append(fields, in.Electricity.KwhUsed)
	}
	if in.Food != nil {
		fields = append(fields, in.Food.Meat, in.Food.Dairy, in.Food.Vegetables, in.Food.Processed)
	}
	for _, v := range fields {
		if v < 0 {
			return "All numeric values must be non-negative numbers"
		}
	}
	if (in.Transport != nil && in.Transport.CarKm > maxDailyValue) ||
		(in.Electricity != nil && in.Electricity.KwhUsed > maxDailyValue) {
		return "Values exceed reasonable daily limits"
	}
	return ""
}

// POST /api/activities
func (h *ActivityController) Log(c *gin.Context) {
	userID := c.GetUint("userID")

	var in utils.ActivityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validateInput(in); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	activity, tips, err := h.Svc.Log(c.Request.Context(), userID, in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"activity": activity,
		"totalCO2": activity.TotalCO2,
		"tips":     tips,
	})
}

// GET /api/activities?period=day|week|month|all
func (h *ActivityController) List(c *gin.Context) {
	userID := c.GetUint("userID")
	period := c.DefaultQuery("period", "week")

	activities, err := h.Svc.History(c.Request.Context(), userID, period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, activities)
}

// POST /api/activities/simulate
func (h *ActivityController) Simulate(c *gin.Context) {
	var req struct {
		Current  *utils.ActivityInput `json:"current"`
		Proposed *utils.ActivityInput `json:"proposed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := utils.Simulate(req.Current, req.Proposed)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
