package models

import "gorm.io/gorm"

// UserGoal holds each user's emission reduction targets (kg CO2).
type UserGoal struct {
	gorm.Model
	UserID        uint    `gorm:"uniqueIndex;not null"`
	DailyTarget   float64 // e.g. 50 kg/day
	MonthlyTarget float64 // e.g. 1500 kg/month
}
