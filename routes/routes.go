package routes

import (
	"github.com/gin-gonic/gin"

	"storefront-service/controllers"
)

// RegisterRoutes registers all service routes.
func RegisterRoutes(r *gin.Engine, contact *controllers.ContactController, checkout *controllers.CheckoutController) {
	r.GET("/", controllers.Root)

	api := r.Group("/api")
	{
		api.GET("/some-endpoint", controllers.Ping)

		api.POST("/contact", contact.SubmitContact)
		api.GET("/contact", contact.ListContacts)

		api.POST("/checkout", checkout.Checkout)
		api.GET("/orders", checkout.ListOrders)
	}
}
