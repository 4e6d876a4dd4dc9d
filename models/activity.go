package models

import "time"

// Transport distances are km travelled that day. Bike and walk are recorded
// for behavioral tracking only and never contribute to the CO2 total.
type Transport struct {
	CarKm  float64 `json:"carKm" gorm:"default:0"`
	BikeKm float64 `json:"bikeKm" gorm:"default:0"`
	BusKm  float64 `json:"busKm" gorm:"default:0"`
	WalkKm float64 `json:"walkKm" gorm:"default:0"`
}

type Electricity struct {
	KwhUsed float64 `json:"kwhUsed" gorm:"default:0"`
}

// Food fields are servings per day.
type Food struct {
	Meat       float64 `json:"meat" gorm:"default:0"`
	Dairy      float64 `json:"dairy" gorm:"default:0"`
	Vegetables float64 `json:"vegetables" gorm:"default:0"`
	Processed  float64 `json:"processed" gorm:"default:0"`
}

// Activity is one logged day's inputs plus the derived CO2 total.
// TotalCO2 is computed once at creation time and never mutated afterward.
type Activity struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	UserID      uint        `gorm:"index;not null" json:"userId"`
	Date        time.Time   `gorm:"index;not null" json:"date"`
	Transport   Transport   `gorm:"embedded;embeddedPrefix:transport_" json:"transport"`
	Electricity Electricity `gorm:"embedded;embeddedPrefix:electricity_" json:"electricity"`
	Food        Food        `gorm:"embedded;embeddedPrefix:food_" json:"food"`
	TotalCO2    float64     `gorm:"column:total_co2;not null" json:"totalCO2"`
	CreatedAt   time.Time   `json:"-"`
}
