package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nmwangi/savoria/controllers"
	"gorm.io/gorm"
)

func AuthRoutes(server *gin.Engine, db *gorm.DB) {
	server.GET("/register", controllers.ShowRegisterPage())
	server.POST("/register", controllers.Register(db))
	server.GET("/login", controllers.ShowLoginPage())
	server.POST("/login", controllers.Login(db))
	server.GET("/logout", controllers.Logout())
}
