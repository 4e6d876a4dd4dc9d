package routes

import (
	"github.com/SiddeshHulagur/CarbonTracker/controllers"
	"github.com/SiddeshHulagur/CarbonTracker/middlewares"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Activity    *controllers.ActivityController
	Dashboard   *controllers.DashboardController
	Leaderboard *controllers.LeaderboardController
	Goal        *controllers.GoalController
	Realtime    *controllers.RealtimeController
	Device      *controllers.DeviceController
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/request-password-reset", controllers.RequestPasswordReset)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.POST("/activities", deps.Activity.Log)
		protected.GET("/activities", deps.Activity.List)
		protected.POST("/activities/simulate", deps.Activity.Simulate)

		protected.GET("/dashboard", deps.Dashboard.Get)
		protected.GET("/dashboard/export", deps.Dashboard.Export)

		protected.GET("/leaderboard", deps.Leaderboard.Get)

		protected.GET("/goals", deps.Goal.Get)
		protected.PUT("/goals", deps.Goal.Update)

		protected.GET("/user/profile", controllers.GetProfile)
		protected.PUT("/user/profile", controllers.UpdateProfile)

		protected.GET("/realtime/achievements", deps.Realtime.AchievementsWS)

		protected.POST("/devices/register", deps.Device.Register)
		protected.POST("/devices/notifications/toggle", controllers.ToggleNotifications)
	}

	return r
}
