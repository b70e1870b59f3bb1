package controllers

import (
	"net/http"

	"rasaroots/models"
	"rasaroots/services"

	"github.com/gin-gonic/gin"
)

// GET /plan
func GetPlan(c *gin.Context) {
	uid := c.GetUint("userID")

	snap, err := services.ActivePlanner().Snapshot(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// PATCH /plan
func PatchPlan(c *gin.Context) {
	uid := c.GetUint("userID")

	var patch models.PlanPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := services.ActivePlanner().ApplyPatch(uid, patch)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

type slotDropInput struct {
	SlotKey string  `json:"slotKey" binding:"required"`
	DishID  *string `json:"dishId"` // null clears the slot
}

// POST /plan/slots
func DropSlot(c *gin.Context) {
	uid := c.GetUint("userID")

	var input slotDropInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := services.ActivePlanner().OnSlotDrop(uid, input.SlotKey, input.DishID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// POST /plan/reset
func ResetPlan(c *gin.Context) {
	uid := c.GetUint("userID")
	services.ActivePlanner().ResetSession(uid)
	c.Status(http.StatusNoContent)
}
