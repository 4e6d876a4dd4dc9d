package models

import "time"

// UserDevice is a mobile device registered for achievement push
// notifications. TokenHash stores a SHA-256 of the raw device token so the
// token itself never lands in the database; EndpointARN is the SNS platform
// endpoint the push service publishes to.
type UserDevice struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index"`
	Platform    string `gorm:"size:16"` // "android" | "ios"
	TokenHash   string `gorm:"size:64"`
	EndpointARN string `gorm:"size:256"`
	Enabled     bool   `gorm:"default:true"`
	UpdatedAt   time.Time
	CreatedAt   time.Time
}
