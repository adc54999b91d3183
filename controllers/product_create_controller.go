package controllers

import (
	"github.com/arjun-099/DukaanDesk/config"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/arjun-099/DukaanDesk/utils"
	"github.com/gin-gonic/gin"
)

// CreateProduct adds a catalog item for the session merchant
func CreateProduct(c *gin.Context) {
	utils.LogInfo("CreateProduct called")

	_, merchant, ok := requireMerchant(c)
	if !ok {
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
		utils.LogError("Product creation rejected for merchant %d: %s", merchant.ID, appErr.Message)
		utils.Error(c, appErr.Code, appErr.Message, nil)
		return
	}

	var imageURL *string
	if req.ImageURL != "" {
		imageURL = &req.ImageURL
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		ImageURL:    imageURL,
		MerchantID:  merchant.ID,
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product for merchant %d: %v", merchant.ID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	utils.LogInfo("Merchant %d created product %d", merchant.ID, product.ID)
	utils.Success(c, "Product created successfully", gin.H{
		"product": product,
	})
}
