package models

import "time"

// Achievement is append-only per user; the evaluator never re-awards a name.
type Achievement struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	UserID     uint      `gorm:"index;not null" json:"-"`
	Name       string    `gorm:"not null" json:"name"`
	DateEarned time.Time `json:"dateEarned"`
}
