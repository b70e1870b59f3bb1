package controllers

import (
	"net/http"

	"rasaroots/config"
	"rasaroots/models"
	"rasaroots/services"

	"github.com/gin-gonic/gin"
)

// GET /reviews
func ListReviews(c *gin.Context) {
	reviews, err := services.ActiveReviewService().List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// POST /reviews
func CreateReview(c *gin.Context) {
	uid := c.GetUint("userID")
	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req services.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := services.ActiveReviewService().Create(&user, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": review})
}

// GET /reviews/sentiment
func ReviewSentimentStats(c *gin.Context) {
	stats, err := services.ActiveReviewService().SentimentStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bands": stats})
}
