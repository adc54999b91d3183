package controllers

import (
	"github.com/arjun-099/DukaanDesk/config"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/arjun-099/DukaanDesk/utils"
	"github.com/gin-gonic/gin"
)

// DeleteProduct hard-deletes an owned product
func DeleteProduct(c *gin.Context) {
	utils.LogInfo("DeleteProduct called")

	_, merchant, ok := requireMerchant(c)
	if !ok {
		return
	}

	product, appErr := findOwnedProduct(merchant.ID, c.Param("id"))
	if appErr != nil {
		utils.LogError("Product lookup failed for merchant %d: %v", merchant.ID, appErr)
		utils.Error(c, appErr.Code, appErr.Message, nil)
		return
	}

	if err := config.DB.Delete(&models.Product{}, product.ID).Error; err != nil {
		utils.LogError("Failed to delete product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	utils.LogInfo("Merchant %d deleted product %d", merchant.ID, product.ID)
	utils.Success(c, "Product deleted successfully", nil)
}
