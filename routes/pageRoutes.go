package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nmwangi/savoria/controllers"
	"github.com/nmwangi/savoria/middlewares"
)

func PageRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetRoot)
	server.GET("/home", middlewares.RequireAuth(), controllers.GetHome)
	server.GET("/menu", controllers.GetMenu)
	server.GET("/about", controllers.GetAbout)
	server.GET("/book", controllers.GetBook)
}
