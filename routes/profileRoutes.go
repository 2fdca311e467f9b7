package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nmwangi/savoria/controllers"
	"github.com/nmwangi/savoria/middlewares"
	"gorm.io/gorm"
)

func ProfileRoutes(server *gin.Engine, db *gorm.DB) {
	profile := server.Group("/profile", middlewares.RequireAuth())
	{
		profile.GET("", controllers.GetProfile(db))
		profile.POST("", controllers.UpdateProfile(db))
	}
}
