package controllers

import (
	"net/http"

	"rasaroots/services"

	"github.com/gin-gonic/gin"
)

type ProfileInput struct {
	FullName string `json:"full_name"`
}

func GetProfile(c *gin.Context) {
	uid := c.GetUint("userID")
	profile, err := services.GetUserProfile(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func UpdateProfile(c *gin.Context) {
	uid := c.GetUint("userID")
	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpdateUserProfile(uid, input.FullName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully"})
}
