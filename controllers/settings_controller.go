package controllers

import (
	"github.com/arjun-099/DukaanDesk/config"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/arjun-099/DukaanDesk/utils"
	"github.com/gin-gonic/gin"
)

// SettingsRequest is a full replacement of the business profile.
type SettingsRequest struct {
	BusinessName        string `json:"businessName"`
	BusinessCategory    string `json:"businessCategory"`
	PhoneNumber         string `json:"phoneNumber"`
	UPINumber           string `json:"upiNumber"`
	BusinessAddress     string `json:"businessAddress"`
	BusinessDescription string `json:"businessDescription"`
	Website             string `json:"website"`
}

func (r *SettingsRequest) requiredFields() []struct{ Name, Value string } {
	return []struct{ Name, Value string }{
		{"businessName", r.BusinessName},
		{"businessCategory", r.BusinessCategory},
		{"phoneNumber", r.PhoneNumber},
		{"upiNumber", r.UPINumber},
		{"businessAddress", r.BusinessAddress},
	}
}

// GetSettings returns the merchant's business profile
func GetSettings(c *gin.Context) {
	utils.LogInfo("GetSettings called")

	_, merchant, ok := requireMerchant(c)
	if !ok {
		return
	}

	utils.Success(c, "Settings retrieved successfully", gin.H{
		"merchant": merchant,
	})
}

// UpdateSettings replaces the merchant's business profile. Description and
// website are optional and null out when omitted.
func UpdateSettings(c *gin.Context) {
	utils.LogInfo("UpdateSettings called")

	_, merchant, ok := requireMerchant(c)
	if !ok {
		return
	}

	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid settings payload: %v", err)
		utils.BadRequest(c, "Invalid request body", nil)
		return
	}

	for _, field := range req.requiredFields() {
		if field.Value == "" {
			utils.LogError("Settings update rejected - missing field %s for merchant %d", field.Name, merchant.ID)
			utils.BadRequest(c, "Missing required field: "+field.Name, nil)
			return
		}
	}

	var description, website *string
	if req.BusinessDescription != "" {
		description = &req.BusinessDescription
	}
	if req.Website != "" {
		website = &req.Website
	}

	updates := map[string]interface{}{
		"business_name":        req.BusinessName,
		"business_category":    req.BusinessCategory,
		"business_phone":       req.PhoneNumber,
		"business_address":     req.BusinessAddress,
		"business_description": description,
		"upi_number":           req.UPINumber,
		"website":              website,
	}

	if err := config.DB.Model(&models.Merchant{}).Where("id = ?", merchant.ID).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update settings for merchant %d: %v", merchant.ID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	var updated models.Merchant
	if err := config.DB.First(&updated, merchant.ID).Error; err != nil {
		utils.LogError("Failed to reload merchant %d: %v", merchant.ID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	utils.LogInfo("Merchant %d updated settings", merchant.ID)
	utils.Success(c, "Settings updated successfully", gin.H{
		"merchant": updated,
	})
}
