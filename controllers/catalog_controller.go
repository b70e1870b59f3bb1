package controllers

import (
	"net/http"
	"strings"

	"rasaroots/config"
	"rasaroots/services"

	"github.com/gin-gonic/gin"
)

// GET /dishes?dietary=vegan&exclude=dairy,gluten
func ListDishes(c *gin.Context) {
	catalog := services.NewCatalogService(config.DB)
	dishes, err := catalog.Dishes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	dietary := c.DefaultQuery("dietary", "all")
	var excluded []string
	if raw := c.Query("exclude"); raw != "" {
		excluded = strings.Split(raw, ",")
	}

	c.JSON(http.StatusOK, gin.H{"dishes": services.FilterDishes(dishes, dietary, excluded)})
}

// GET /dishes/:id
func GetDish(c *gin.Context) {
	catalog := services.NewCatalogService(config.DB)
	dish, err := catalog.DishByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if dish == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
		return
	}
	c.JSON(http.StatusOK, dish)
}

// GET /seasonal
func ListSeasonal(c *gin.Context) {
	catalog := services.NewCatalogService(config.DB)
	seasonal, err := catalog.Seasonal()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"seasonal": seasonal})
}

// GET /ingredients
func ListIngredients(c *gin.Context) {
	catalog := services.NewCatalogService(config.DB)
	ingredients, err := catalog.Ingredients()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}
