package models

import (
	"time"
)

// Onboarding step bounds. Steps 1-3 are tracked client-side; the server only
// persists the final step on completion.
const (
	OnboardingStepNotStarted = 0
	OnboardingStepComplete   = 4
)

// BusinessInfo holds the business profile collected during onboarding.
type BusinessInfo struct {
	Name        string  `gorm:"column:business_name" json:"name"`
	Description *string `gorm:"column:business_description" json:"description"`
	Address     string  `gorm:"column:business_address" json:"address"`
	Phone       string  `gorm:"column:business_phone" json:"phone"`
	Category    string  `gorm:"column:business_category" json:"category"`
}

// Merchant is the business tenant owning products and receiving orders.
// Created lazily on the owning user's first dashboard request.
type Merchant struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	UserID         uint         `gorm:"uniqueIndex;not null" json:"user_id"`
	User           User         `json:"-" gorm:"foreignKey:UserID"`
	BusinessInfo   BusinessInfo `gorm:"embedded" json:"business_info"`
	UPINumber      string       `json:"upi_number"`
	Website        *string      `json:"website"`
	APIToken       string       `gorm:"uniqueIndex;not null" json:"api_token"`
	IsOnboarded    bool         `json:"is_onboarded" gorm:"default:false"`
	OnboardingStep int          `json:"onboarding_step" gorm:"default:0"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`

	Products []Product `json:"products,omitempty" gorm:"foreignKey:MerchantID"`
}
