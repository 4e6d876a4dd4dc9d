package services

import (
	"errors"

	"github.com/SiddeshHulagur/CarbonTracker/config"
	"github.com/SiddeshHulagur/CarbonTracker/models"
)

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	var allTime float64
	config.DB.Model(&models.Activity{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(total_co2), 0)").
		Scan(&allTime)

	return map[string]interface{}{
		"id":                   user.ID,
		"name":                 user.Name,
		"email":                user.Email,
		"totalCarbonFootprint": allTime,
	}, nil
}

func UpdateUserProfile(userID uint, name string) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	if name != "" {
		user.Name = name
	}
	return config.DB.Save(&user).Error
}
