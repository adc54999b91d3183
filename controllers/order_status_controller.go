package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/arjun-099/DukaanDesk/config"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/arjun-099/DukaanDesk/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrderStatusRequest sets an order's status. TxnID is recorded when given.
type OrderStatusRequest struct {
	Status string `json:"status"`
	TxnID  string `json:"txnId"`
}

// orderStatusUpdate builds the column updates for a status change. PaidAt is
// stamped exactly when the new status is CONFIRMED and nulled otherwise.
func orderStatusUpdate(status, txnID string, now time.Time) map[string]interface{} {
	updates := map[string]interface{}{
		"status":  status,
		"paid_at": nil,
	}
	if status == models.OrderStatusConfirmed {
		updates["paid_at"] = now
	}
	if txnID != "" {
		updates["txn_id"] = txnID
	}
	return updates
}

// findOwnedOrder fetches an order filtered by (id, merchant_id)
func findOwnedOrder(merchantID uint, idParam string) (*models.Order, *utils.AppError) {
	id, err := strconv.Atoi(idParam)
	if err != nil {
		return nil, utils.BadRequestError("Invalid order ID", err)
	}

	var order models.Order
	if err := config.DB.Where("id = ? AND merchant_id = ?", id, merchantID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Order not found", err)
		}
		return nil, utils.InternalError("Internal server error", err)
	}

	return &order, nil
}

// UpdateOrderStatus transitions an owned order to a new status. Any known
// status may follow any other; there is no transition graph.
func UpdateOrderStatus(c *gin.Context) {
	utils.LogInfo("UpdateOrderStatus called")

	_, merchant, ok := requireMerchant(c)
	if !ok {
		return
	}

	order, appErr := findOwnedOrder(merchant.ID, c.Param("id"))
	if appErr != nil {
		utils.LogError("Order lookup failed for merchant %d: %v", merchant.ID, appErr)
		utils.Error(c, appErr.Code, appErr.Message, nil)
		return
	}

	var req OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid order status payload: %v", err)
		utils.BadRequest(c, "Invalid request body", nil)
		return
	}

	if !models.ValidOrderStatus(req.Status) {
		utils.LogError("Unknown order status %q for order %d", req.Status, order.ID)
		utils.BadRequest(c, "Invalid order status", nil)
		return
	}

	updates := orderStatusUpdate(req.Status, req.TxnID, time.Now())
	if err := config.DB.Model(&models.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	var updated models.Order
	if err := config.DB.Preload("Product").Preload("Customer").First(&updated, order.ID).Error; err != nil {
		utils.LogError("Failed to reload order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	utils.LogInfo("Merchant %d set order %d to %s", merchant.ID, order.ID, req.Status)
	utils.Success(c, "Order updated successfully", gin.H{
		"order": updated,
	})
}
