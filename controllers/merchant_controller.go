package controllers

import (
	"errors"

	"github.com/arjun-099/DukaanDesk/config"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/arjun-099/DukaanDesk/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// currentUser returns the authenticated user placed in the context by the
// auth middleware.
func currentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	return user, ok
}

// getOrCreateMerchant returns the merchant owned by userID, creating one in
// default state on first access. The lookup-then-create pair is not atomic;
// concurrent first requests race and the loser fails on the user_id unique
// index rather than inserting a duplicate row.
func getOrCreateMerchant(userID uint) (*models.Merchant, error) {
	var merchant models.Merchant
	err := config.DB.Where("user_id = ?", userID).First(&merchant).Error
	if err == nil {
		return &merchant, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	merchant = models.Merchant{
		UserID:         userID,
		APIToken:       utils.GenerateAPIToken(),
		IsOnboarded:    false,
		OnboardingStep: models.OnboardingStepNotStarted,
	}
	if err := config.DB.Create(&merchant).Error; err != nil {
		return nil, err
	}

	utils.LogInfo("Created merchant %d for user %d", merchant.ID, userID)
	return &merchant, nil
}

// requireMerchant resolves the session user and their merchant, writing the
// error response itself when either step fails.
func requireMerchant(c *gin.Context) (models.User, *models.Merchant, bool) {
	user, ok := currentUser(c)
	if !ok {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "Unauthorized")
		return models.User{}, nil, false
	}

	merchant, err := getOrCreateMerchant(user.ID)
	if err != nil {
		utils.LogError("Failed to resolve merchant for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return models.User{}, nil, false
	}

	return user, merchant, true
}

// GetProfile returns the identity of the logged-in merchant user
func GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		utils.Unauthorized(c, "Unauthorized")
		return
	}

	utils.Success(c, "Profile retrieved successfully", gin.H{
		"user": gin.H{
			"email": user.Email,
			"name":  user.Name,
		},
	})
}
