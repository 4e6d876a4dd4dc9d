package main

import (
	"log"

	"github.com/SiddeshHulagur/CarbonTracker/config"
	"github.com/SiddeshHulagur/CarbonTracker/controllers"
	"github.com/SiddeshHulagur/CarbonTracker/routes"
	"github.com/SiddeshHulagur/CarbonTracker/services"
	"github.com/SiddeshHulagur/CarbonTracker/utils"
)

func main() {
	config.InitDB()
	utils.InitMailer()

	var store services.ActivityStore
	var goalStore services.GoalStore
	switch config.StoreDriver() {
	case "memory":
		store = services.NewMemoryActivityStore()
		goalStore = services.NewMemoryGoalStore()
	default:
		store = services.NewGormActivityStore(config.DB)
		goalStore = services.NewGormGoalStore(config.DB)
	}

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service unavailable: %v", err)
	}
	bus := services.NewAchievementBus(hub, push)

	activitySvc := services.NewActivityService(store)
	goalSvc := services.NewGoalService(goalStore)
	dashboardSvc := services.NewDashboardService(config.DB, store, goalSvc, bus)
	leaderboardSvc := services.NewLeaderboardService(config.DB, store)

	r := routes.SetupRouter(routes.Deps{
		Activity:    controllers.NewActivityController(activitySvc),
		Dashboard:   controllers.NewDashboardController(dashboardSvc),
		Leaderboard: controllers.NewLeaderboardController(leaderboardSvc),
		Goal:        controllers.NewGoalController(goalSvc),
		Realtime:    controllers.NewRealtimeController(hub),
		Device:      controllers.NewDeviceController(push),
	})
	r.Run(":5000")
}
