package controllers

import (
	"github.com/arjun-099/DukaanDesk/config"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/arjun-099/DukaanDesk/utils"
	"github.com/gin-gonic/gin"
)

// ListOrders returns the merchant's orders, newest first, with product and
// customer attached.
func ListOrders(c *gin.Context) {
	utils.LogInfo("ListOrders called")

	_, merchant, ok := requireMerchant(c)
	if !ok {
		return
	}

	var orders []models.Order
	if err := config.DB.Where("merchant_id = ?", merchant.ID).
		Preload("Product").
		Preload("Customer").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to list orders for merchant %d: %v", merchant.ID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	utils.LogDebug("Retrieved %d orders for merchant %d", len(orders), merchant.ID)
	utils.Success(c, "Orders retrieved successfully", gin.H{
		"orders": orders,
	})
}
