package routes

import (
	"github.com/arjun-099/DukaanDesk/controllers"
	"github.com/arjun-099/DukaanDesk/middleware"
	"github.com/gin-gonic/gin"
)

// initMerchantRoutes initializes the session-protected dashboard routes
func initMerchantRoutes(router *gin.RouterGroup) {
	merchant := router.Group("/merchant")
	merchant.Use(middleware.AuthMiddleware())
	{
		merchant.POST("/logout", controllers.LogoutUser)
		merchant.GET("/profile", controllers.GetProfile)

		merchant.GET("/onboarding", controllers.GetOnboardingStatus)
		merchant.POST("/onboarding", controllers.CompleteOnboarding)

		merchant.GET("/settings", controllers.GetSettings)
		merchant.PUT("/settings", controllers.UpdateSettings)

		merchant.GET("/products", controllers.ListProducts)
		merchant.POST("/products", controllers.CreateProduct)
		merchant.PUT("/products/:id", controllers.UpdateProduct)
		merchant.DELETE("/products/:id", controllers.DeleteProduct)

		merchant.GET("/orders", controllers.ListOrders)
		merchant.PUT("/orders/:id", controllers.UpdateOrderStatus)
		merchant.GET("/orders/:id/invoice", controllers.DownloadInvoice)
		merchant.GET("/export/orders", controllers.ExportOrders)

		merchant.DELETE("/account", controllers.DeleteAccount)
	}
}
