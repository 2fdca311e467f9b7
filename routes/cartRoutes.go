package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nmwangi/savoria/controllers"
	"github.com/nmwangi/savoria/middlewares"
	"gorm.io/gorm"
)

func CartRoutes(server *gin.Engine, db *gorm.DB) {
	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.GET("", controllers.GetCart(db))
		cart.POST("", controllers.AddCartItem(db))
	}

	// Removal is not gated; the endpoint has no ownership check either.
	server.POST("/remove_from_cart/:itemId", controllers.RemoveCartItem(db))
}
