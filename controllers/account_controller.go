package controllers

import (
	"github.com/arjun-099/DukaanDesk/config"
	"github.com/arjun-099/DukaanDesk/middleware"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/arjun-099/DukaanDesk/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteAccount irreversibly removes the merchant and everything scoped to
// it in one transaction. If any step fails nothing is deleted.
func DeleteAccount(c *gin.Context) {
	utils.LogInfo("DeleteAccount called")

	user, merchant, ok := requireMerchant(c)
	if !ok {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("merchant_id = ?", merchant.ID).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		if err := tx.Where("merchant_id = ?", merchant.ID).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		if err := tx.Where("merchant_id = ?", merchant.ID).Delete(&models.WebhookEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Merchant{}, merchant.ID).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.User{}, user.ID).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		utils.LogError("Account deletion failed for merchant %d: %v", merchant.ID, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)

	utils.LogInfo("Deleted account for merchant %d (user %d)", merchant.ID, user.ID)
	utils.Success(c, "Account deleted successfully", nil)
}
