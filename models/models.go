package models

import (
	"time"
)

// User represents a dashboard account owned by the identity layer
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Name        string    `json:"name"`
	Password    string    `json:"-"`
	IsVerified  bool      `json:"is_verified" gorm:"default:false"`
	GoogleID    *string   `gorm:"uniqueIndex" json:"-"`
	LastLoginAt time.Time `json:"last_login_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Sessions []Session `json:"-" gorm:"foreignKey:UserID"`
}

// Session is a server-side login session. The JWT handed to the client is
// also stored here so logout and account deletion can revoke it.
type Session struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Customer is the buyer side of an order. Customers never log in and are
// never mutated from the merchant dashboard.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Phone     string    `gorm:"uniqueIndex;not null" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Orders []Order `json:"orders,omitempty" gorm:"foreignKey:CustomerID"`
}
