package controllers

import (
	"github.com/arjun-099/DukaanDesk/config"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/arjun-099/DukaanDesk/utils"
	"github.com/gin-gonic/gin"
)

// ListProducts returns the merchant's catalog, newest first, with each
// product's orders attached.
func ListProducts(c *gin.Context) {
	utils.LogInfo("ListProducts called")

	_, merchant, ok := requireMerchant(c)
	if !ok {
		return
	}

	var products []models.Product
	if err := config.DB.Where("merchant_id = ?", merchant.ID).
		Preload("Orders").
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		utils.LogError("Failed to list products for merchant %d: %v", merchant.ID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	utils.LogDebug("Retrieved %d products for merchant %d", len(products), merchant.ID)
	utils.Success(c, "Products retrieved successfully", gin.H{
		"products": products,
	})
}
