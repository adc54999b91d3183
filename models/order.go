package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusFailed    = "FAILED"
)

// ValidOrderStatus reports whether s is a known order status. Transitions
// between known statuses are not restricted.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusFailed:
		return true
	}
	return false
}

// Order is a transaction record. Only status, paid_at and txn_id are
// mutable after creation. PaidAt is set exactly when the status is
// CONFIRMED and null otherwise.
type Order struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	CustomerID uint       `gorm:"index;not null" json:"customer_id"`
	Customer   Customer   `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	MerchantID uint       `gorm:"index;not null" json:"merchant_id"`
	Merchant   Merchant   `json:"merchant,omitempty" gorm:"foreignKey:MerchantID"`
	ProductID  uint       `gorm:"index;not null" json:"product_id"`
	Product    Product    `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Amount     float64    `gorm:"not null" json:"amount"`
	Status     string     `gorm:"not null;default:'PENDING'" json:"status"`
	TxnID      *string    `json:"txn_id"`
	PaidAt     *time.Time `json:"paid_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
