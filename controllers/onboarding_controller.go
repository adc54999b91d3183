package controllers

import (
	"github.com/arjun-099/DukaanDesk/config"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/arjun-099/DukaanDesk/utils"
	"github.com/gin-gonic/gin"
)

// OnboardingRequest is the final onboarding submission. Intermediate steps
// live client-side; only this completion call persists anything.
type OnboardingRequest struct {
	BusinessName        string `json:"businessName"`
	BusinessDescription string `json:"businessDescription"`
	BusinessAddress     string `json:"businessAddress"`
	UPINumber           string `json:"upiNumber"`
	PhoneNumber         string `json:"phoneNumber"`
	BusinessCategory    string `json:"businessCategory"`
	Website             string `json:"website"`
}

// requiredOnboardingFields returns the ordered required fields and their
// submitted values. Website is optional.
func (r *OnboardingRequest) requiredFields() []struct{ Name, Value string } {
	return []struct{ Name, Value string }{
		{"businessName", r.BusinessName},
		{"businessDescription", r.BusinessDescription},
		{"businessAddress", r.BusinessAddress},
		{"upiNumber", r.UPINumber},
		{"phoneNumber", r.PhoneNumber},
		{"businessCategory", r.BusinessCategory},
	}
}

// GetOnboardingStatus reports the merchant's onboarding state
func GetOnboardingStatus(c *gin.Context) {
	utils.LogInfo("GetOnboardingStatus called")

	_, merchant, ok := requireMerchant(c)
	if !ok {
		return
	}

	utils.Success(c, "Onboarding status retrieved", gin.H{
		"merchant":       merchant,
		"isOnboarded":    merchant.IsOnboarded,
		"onboardingStep": merchant.OnboardingStep,
	})
}

// CompleteOnboarding performs the single all-or-nothing transition to the
// onboarded state. Partial data is rejected before any write.
func CompleteOnboarding(c *gin.Context) {
	utils.LogInfo("CompleteOnboarding called")

	_, merchant, ok := requireMerchant(c)
	if !ok {
		return
	}

	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid onboarding payload: %v", err)
		utils.BadRequest(c, "Invalid request body", nil)
		return
	}

	for _, field := range req.requiredFields() {
		if field.Value == "" {
			utils.LogError("Onboarding rejected - missing field %s for merchant %d", field.Name, merchant.ID)
			utils.BadRequest(c, "Missing required field: "+field.Name, nil)
			return
		}
	}

	var website *string
	if req.Website != "" {
		website = &req.Website
	}

	updates := map[string]interface{}{
		"business_name":        req.BusinessName,
		"business_description": req.BusinessDescription,
		"business_address":     req.BusinessAddress,
		"business_phone":       req.PhoneNumber,
		"business_category":    req.BusinessCategory,
		"upi_number":           req.UPINumber,
		"website":              website,
		"is_onboarded":         true,
		"onboarding_step":      models.OnboardingStepComplete,
	}

	if err := config.DB.Model(&models.Merchant{}).Where("id = ?", merchant.ID).Updates(updates).Error; err != nil {
		utils.LogError("Failed to complete onboarding for merchant %d: %v", merchant.ID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	var updated models.Merchant
	if err := config.DB.First(&updated, merchant.ID).Error; err != nil {
		utils.LogError("Failed to reload merchant %d: %v", merchant.ID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	utils.LogInfo("Merchant %d completed onboarding", merchant.ID)
	utils.Success(c, "Onboarding completed successfully", gin.H{
		"merchant": updated,
	})
}
