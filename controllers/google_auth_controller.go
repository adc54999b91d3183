package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/arjun-099/DukaanDesk/config"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/arjun-099/DukaanDesk/utils"
	"github.com/gin-gonic/gin"
)

type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func GoogleLogin(c *gin.Context) {
	url := config.GoogleOAuthConfig.AuthCodeURL("state")
	c.Redirect(http.StatusTemporaryRedirect, url)
}

func GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		utils.BadRequest(c, "No code provided", nil)
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(c, code)
	if err != nil {
		utils.LogError("Google token exchange failed: %v", err)
		utils.InternalServerError(c, "Failed to exchange token", nil)
		return
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		utils.LogError("Failed to fetch Google user info: %v", err)
		utils.InternalServerError(c, "Failed to get user info", nil)
		return
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.InternalServerError(c, "Failed to read response", nil)
		return
	}

	var googleUser GoogleUserInfo
	if err := json.Unmarshal(data, &googleUser); err != nil {
		utils.InternalServerError(c, "Failed to parse user info", nil)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", googleUser.Email).First(&user).Error; err != nil {
		// First Google sign-in creates a verified user without a usable
		// local password.
		placeholder, err := utils.HashPassword(utils.GenerateAPIToken())
		if err != nil {
			utils.InternalServerError(c, "Internal server error", nil)
			return
		}

		user = models.User{
			Email:      googleUser.Email,
			Name:       googleUser.Name,
			Password:   placeholder,
			IsVerified: true,
			GoogleID:   &googleUser.ID,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			utils.LogError("Failed to create Google user %s: %v", googleUser.Email, err)
			utils.InternalServerError(c, "Internal server error", nil)
			return
		}
		utils.LogInfo("Created user %d from Google sign-in", user.ID)
	}

	user.LastLoginAt = time.Now()
	if err := config.DB.Save(&user).Error; err != nil {
		utils.LogError("Failed to update last login time for: %s", user.Email)
	}

	tokenString, err := issueSession(c, &user)
	if err != nil {
		utils.LogError("Google login failed - could not issue session for %s: %v", user.Email, err)
		utils.InternalServerError(c, "Internal server error", nil)
		return
	}

	redirectURL := fmt.Sprintf("%s?token=%s&user=%s",
		os.Getenv("FRONTEND_URL"),
		url.QueryEscape(tokenString),
		url.QueryEscape(fmt.Sprintf(`{"id":%d,"email":"%s","name":"%s"}`,
			user.ID, user.Email, user.Name)))

	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
