package controllers

import (
	"net/http"
	"time"

	"github.com/SiddeshHulagur/CarbonTracker/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Svc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{Svc: svc}
}

// GET /api/dashboard
func (h *DashboardController) Get(c *gin.Context) {
	userID := c.GetUint("userID")

	dashboard, err := h.Svc.Build(c.Request.Context(), userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard data"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// GET /api/dashboard/export
func (h *DashboardController) Export(c *gin.Context) {
	userID := c.GetUint("userID")

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="activities.csv"`)
	if err := h.Svc.ExportCSV(c.Request.Context(), userID, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}
}
