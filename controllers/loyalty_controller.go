package controllers

import (
	"net/http"

	"rasaroots/config"
	"rasaroots/services"

	"github.com/gin-gonic/gin"
)

// GET /loyalty
func GetLoyalty(c *gin.Context) {
	uid := c.GetUint("userID")

	status, err := services.NewLoyaltyService(config.DB).GetLoyalty(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}
