package models

import (
	"time"

	"gorm.io/datatypes"
)

// WebhookEvent is an append-only log of events posted by external payment
// providers, scoped to a merchant. Nothing in the dashboard reads it back;
// it exists for offline inspection and is removed with the account.
type WebhookEvent struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	MerchantID uint           `gorm:"index;not null" json:"merchant_id"`
	Event      string         `json:"event"`
	Payload    datatypes.JSON `json:"payload"`
	CreatedAt  time.Time      `json:"created_at"`
}
