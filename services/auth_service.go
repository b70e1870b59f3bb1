package services

import (
	"errors"
	"math/rand"

	"rasaroots/config"
	"rasaroots/models"
	"rasaroots/utils"
)

// Avatar backgrounds assigned round-robin-ish at signup; reviews render the
// author initial on this color.
var avatarPalette = []string{"#FF7F50", "#3CB371", "#FFD700", "#6A5ACD", "#CD5C5C"}

func RegisterUser(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:       email,
		Password:    hashedPassword,
		FullName:    fullName,
		AvatarColor: avatarPalette[rand.Intn(len(avatarPalette))],
	}

	result := config.DB.Create(&user)
	return result.Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", err
	}

	return token, nil
}
