package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/arjun-099/DukaanDesk/config"
	"github.com/arjun-099/DukaanDesk/models"
	"github.com/arjun-099/DukaanDesk/utils"
	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "dd_session"

// sessionToken extracts the session credential from the cookie or, for API
// clients, from a Bearer Authorization header.
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// AuthMiddleware resolves the session credential to a user. The token must
// both verify as a JWT and still exist in the sessions table, so logout and
// account deletion invalidate it immediately.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := sessionToken(c)
		if tokenString == "" {
			utils.LogError("Missing session credential for %s", c.Request.URL.Path)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		userID, err := utils.ValidateSessionToken(tokenString)
		if err != nil {
			utils.LogError("Invalid session token: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		var session models.Session
		if err := config.DB.Where("token = ?", tokenString).First(&session).Error; err != nil {
			utils.LogError("Session not found for user ID %d: %v", userID, err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		if time.Now().After(session.ExpiresAt) {
			utils.LogError("Expired session for user ID %d", userID)
			config.DB.Delete(&session)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		var user models.User
		if err := config.DB.First(&user, session.UserID).Error; err != nil {
			utils.LogError("User not found for session: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("session", session)
		utils.LogDebug("User %d authenticated", user.ID)
		c.Next()
	}
}
