package models

import (
	"time"
)

// Product is a catalog item. Deletes are hard deletes; there is no
// tombstone column.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	ImageURL    *string   `json:"image_url"`
	MerchantID  uint      `gorm:"index;not null" json:"merchant_id"`
	Merchant    Merchant  `json:"merchant,omitempty" gorm:"foreignKey:MerchantID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Orders []Order `json:"orders,omitempty" gorm:"foreignKey:ProductID"`
}
