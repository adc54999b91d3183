package controllers

import (
	"errors"
	"math"
	"strconv"

	"github.com/arjun-099/DukaanDesk/config"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/arjun-099/DukaanDesk/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultStoreLimit = 100

// storeSortClauses maps public sort slugs to order-by clauses. Anything else
// falls back to newest-first.
var storeSortClauses = map[string]string{
	"latest-desc": "created_at DESC",
	"price-asc":   "price ASC",
	"price-desc":  "price DESC",
	"name-asc":    "name ASC",
	"name-desc":   "name DESC",
}

// storeMerchant resolves the merchant owning the storefront from the token
// in the request path. An empty or unknown token reads as a missing store.
func storeMerchant(c *gin.Context) (*models.Merchant, bool) {
	token := c.Param("token")
	if token == "" {
		token = config.DefaultStoreToken()
	}
	if token == "" {
		utils.NotFound(c, "Store not found")
		return nil, false
	}

	var merchant models.Merchant
	if err := config.DB.Where("api_token = ?", token).First(&merchant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.LogDebug("Unknown store token")
			utils.NotFound(c, "Store not found")
			return nil, false
		}
		utils.LogError("Failed to resolve store token: %v", err)
		utils.InternalServerError(c, "Internal server error", nil)
		return nil, false
	}

	return &merchant, true
}

// ListStoreProducts returns the public catalog for a store, with optional
// substring search and sorting.
func ListStoreProducts(c *gin.Context) {
	utils.LogInfo("ListStoreProducts called")

	merchant, ok := storeMerchant(c)
	if !ok {
		return
	}

	limit := defaultStoreLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	orderBy, ok := storeSortClauses[c.Query("sort")]
	if !ok {
		orderBy = "created_at DESC"
	}

	query := config.DB.Where("merchant_id = ?", merchant.ID)
	if q := c.Query("q"); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var products []models.Product
	if err := query.Order(orderBy).Limit(limit).Find(&products).Error; err != nil {
		utils.LogError("Failed to list store products for merchant %d: %v", merchant.ID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	utils.LogDebug("Store listing returned %d products for merchant %d", len(products), merchant.ID)
	utils.Success(c, "Products retrieved successfully", gin.H{
		"products": products,
		"store": gin.H{
			"name":        merchant.BusinessInfo.Name,
			"description": merchant.BusinessInfo.Description,
		},
	})
}

// GetStoreProduct returns a single public product with its store info
func GetStoreProduct(c *gin.Context) {
	utils.LogInfo("GetStoreProduct called")

	merchant, ok := storeMerchant(c)
	if !ok {
		return
	}

	product, appErr := findOwnedProduct(merchant.ID, c.Param("id"))
	if appErr != nil {
		utils.Error(c, appErr.Code, appErr.Message, nil)
		return
	}

	utils.Success(c, "Product retrieved successfully", gin.H{
		"product": product,
		"store": gin.H{
			"name":        merchant.BusinessInfo.Name,
			"description": merchant.BusinessInfo.Description,
			"upi_number":  merchant.UPINumber,
		},
	})
}

// StoreOrderRequest creates an order from the storefront checkout.
type StoreOrderRequest struct {
	ProductID     uint        `json:"productId"`
	CustomerPhone string      `json:"customerPhone"`
	Amount        interface{} `json:"amount"`
	TxnID         string      `json:"txnId"`
}

// CreateStoreOrder creates a PENDING order for a store product, creating the
// customer record on first purchase.
func CreateStoreOrder(c *gin.Context) {
	utils.LogInfo("CreateStoreOrder called")

	merchant, ok := storeMerchant(c)
	if !ok {
		return
	}

	var req StoreOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid store order payload: %v", err)
		utils.BadRequest(c, "Invalid request body", nil)
		return
	}

	if req.ProductID == 0 {
		utils.BadRequest(c, "Missing required field: productId", nil)
		return
	}
	if req.CustomerPhone == "" {
		utils.BadRequest(c, "Missing required field: customerPhone", nil)
		return
	}
	valid, phone := utils.ValidatePhone(req.CustomerPhone)
	if !valid {
		utils.BadRequest(c, phone, nil)
		return
	}

	// The product must belong to this store
	var product models.Product
	if err := config.DB.Where("id = ? AND merchant_id = ?", req.ProductID, merchant.ID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Product not found")
			return
		}
		utils.LogError("Failed to load product %d: %v", req.ProductID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	amount := product.Price
	if req.Amount != nil {
		parsed, ok := req.Amount.(float64)
		if !ok || math.IsNaN(parsed) || parsed <= 0 {
			utils.BadRequest(c, "Amount must be a positive number", nil)
			return
		}
		amount = parsed
	}

	var customer models.Customer
	if err := config.DB.Where("phone = ?", phone).First(&customer).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.LogError("Failed to look up customer: %v", err)
			utils.InternalServerError(c, "Internal server error", nil)
			return
		}
		customer = models.Customer{Phone: phone}
		if err := config.DB.Create(&customer).Error; err != nil {
			utils.LogError("Failed to create customer: %v", err)
			utils.InternalServerError(c, "Internal server error", nil)
			return
		}
	}

	var txnID *string
	if req.TxnID != "" {
		txnID = &req.TxnID
	}

	order := models.Order{
		CustomerID: customer.ID,
		MerchantID: merchant.ID,
		ProductID:  product.ID,
		Amount:     amount,
		Status:     models.OrderStatusPending,
		TxnID:      txnID,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		utils.LogError("Failed to create order for merchant %d: %v", merchant.ID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	order.Customer = customer
	order.Product = product

	utils.LogInfo("Created order %d for merchant %d", order.ID, merchant.ID)
	utils.Created(c, "Order created successfully", gin.H{
		"order": order,
	})
}
