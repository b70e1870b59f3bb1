package services

import (
	"errors"

	"rasaroots/config"
	"rasaroots/models"
)

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	return map[string]interface{}{
		"id":          user.ID,
		"email":       user.Email,
		"full_name":   user.FullName,
		"avatarColor": user.AvatarColor,
	}, nil
}

func UpdateUserProfile(userID uint, fullName string) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}
	if fullName != "" {
		user.FullName = fullName
	}
	return config.DB.Save(&user).Error
}
