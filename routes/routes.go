package routes

import (
	"os"

	"github.com/arjun-099/DukaanDesk/controllers"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.Default()

	// Cookie session store backing the registration OTP flow
	store := cookie.NewStore([]byte(os.Getenv("SESSION_SECRET")))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24, // 1 day
		Path:     "/",
		Secure:   false, // Set to true in production with HTTPS
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("dukaandesk", store))

	// Auth routes (for OAuth)
	auth := router.Group("/auth")
	{
		auth.GET("/google/login", controllers.GoogleLogin)
		auth.GET("/google/callback", controllers.GoogleCallback)
	}

	// API version group
	api := router.Group("/v1")
	{
		// Registration and login
		api.POST("/register", controllers.RegisterUser)
		api.POST("/verify-otp", controllers.VerifyOTP)
		api.POST("/login", controllers.LoginUser)

		// Merchant dashboard routes
		initMerchantRoutes(api)

		// Public storefront and webhook routes
		initStorefrontRoutes(api)
	}

	return router
}
