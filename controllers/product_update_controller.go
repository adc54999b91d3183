package controllers

import (
	"github.com/arjun-099/DukaanDesk/config"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/arjun-099/DukaanDesk/utils"
	"github.com/gin-gonic/gin"
)

// UpdateProduct replaces name, description, price and image of an owned
// product. There is no partial-field merge.
func UpdateProduct(c *gin.Context) {
	utils.LogInfo("UpdateProduct called")

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

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid product payload: %v", err)
		utils.BadRequest(c, "Invalid request body", nil)
		return
	}

	price, appErr := validateProductRequest(&req)
	if appErr != nil {
		utils.LogError("Product update rejected for merchant %d: %s", merchant.ID, appErr.Message)
		utils.Error(c, appErr.Code, appErr.Message, nil)
		return
	}

	var imageURL *string
	if req.ImageURL != "" {
		imageURL = &req.ImageURL
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"price":       price,
		"image_url":   imageURL,
	}

	if err := config.DB.Model(&models.Product{}).Where("id = ?", product.ID).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	var updated models.Product
	if err := config.DB.First(&updated, product.ID).Error; err != nil {
		utils.LogError("Failed to reload product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	utils.LogInfo("Merchant %d updated product %d", merchant.ID, product.ID)
	utils.Success(c, "Product updated successfully", gin.H{
		"product": updated,
	})
}
