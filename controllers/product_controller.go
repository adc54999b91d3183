package controllers

import (
	"errors"
	"math"
	"strconv"

	"github.com/arjun-099/DukaanDesk/config"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/arjun-099/DukaanDesk/utils"
	"gorm.io/gorm"
)

// ProductRequest is shared by create and update. Price is accepted as any
// JSON value so a non-numeric submission gets the price error instead of a
// generic binding failure.
type ProductRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       interface{} `json:"price"`
	ImageURL    string      `json:"imageUrl"`
}

// validateProductRequest applies the shared create/update validation and
// returns the parsed price.
func validateProductRequest(req *ProductRequest) (float64, *utils.AppError) {
	if req.Name == "" {
		return 0, utils.BadRequestError("Missing required field: name", nil)
	}
	if req.Description == "" {
		return 0, utils.BadRequestError("Missing required field: description", nil)
	}
	if req.Price == nil {
		return 0, utils.BadRequestError("Missing required field: price", nil)
	}

	price, ok := req.Price.(float64)
	if !ok || math.IsNaN(price) || price <= 0 {
		return 0, utils.BadRequestError("Price must be a positive number", nil)
	}

	return price, nil
}

// findOwnedProduct fetches a product filtered by (id, merchant_id). A row
// that exists but belongs to another merchant is reported the same way as a
// missing one.
func findOwnedProduct(merchantID uint, idParam string) (*models.Product, *utils.AppError) {
	id, err := strconv.Atoi(idParam)
	if err != nil {
		return nil, utils.BadRequestError("Invalid product ID", err)
	}

	var product models.Product
	if err := config.DB.Where("id = ? AND merchant_id = ?", id, merchantID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Product not found", err)
		}
		return nil, utils.InternalError("Internal server error", err)
	}

	return &product, nil
}
