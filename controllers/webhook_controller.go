package controllers

import (
	"encoding/json"
	"io"
	"time"

	"github.com/arjun-099/DukaanDesk/config"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/arjun-099/DukaanDesk/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// webhookPayload is the subset of a provider payload this service acts on.
// Everything else is stored verbatim in the event log.
type webhookPayload struct {
	Event   string `json:"event"`
	OrderID uint   `json:"orderId"`
	Status  string `json:"status"`
	TxnID   string `json:"txnId"`
}

// PaymentWebhook appends the posted event to the merchant-scoped log and,
// when the payload names an order and a known status, applies the same
// status update as the dashboard path.
func PaymentWebhook(c *gin.Context) {
	utils.LogInfo("PaymentWebhook called")

	merchant, ok := storeMerchant(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.LogError("Failed to read webhook body: %v", err)
		utils.BadRequest(c, "Invalid request body", nil)
		return
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		utils.LogError("Unparseable webhook payload for merchant %d: %v", merchant.ID, err)
		utils.BadRequest(c, "Invalid request body", nil)
		return
	}

	event := models.WebhookEvent{
		MerchantID: merchant.ID,
		Event:      payload.Event,
		Payload:    datatypes.JSON(body),
	}
	if err := config.DB.Create(&event).Error; err != nil {
		utils.LogError("Failed to store webhook event for merchant %d: %v", merchant.ID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	if payload.OrderID != 0 && models.ValidOrderStatus(payload.Status) {
		var order models.Order
		if err := config.DB.Where("id = ? AND merchant_id = ?", payload.OrderID, merchant.ID).First(&order).Error; err != nil {
			utils.LogError("Webhook referenced unknown order %d for merchant %d", payload.OrderID, merchant.ID)
		} else {
			updates := orderStatusUpdate(payload.Status, payload.TxnID, time.Now())
			if err := config.DB.Model(&models.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
				utils.LogError("Webhook failed to update order %d: %v", order.ID, err)
				utils.InternalServerError(c, "Internal server error", nil)
				return
			}
			utils.LogInfo("Webhook set order %d to %s", order.ID, payload.Status)
		}
	}

	utils.Success(c, "Webhook received", gin.H{
		"event_id": event.ID,
	})
}
