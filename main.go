package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/nmwangi/savoria/initializers"
	"github.com/nmwangi/savoria/routes"
)

func main() {
	initializers.LoadEnv()

	db, err := initializers.ConnectToDB()
	if err != nil {
		log.Fatal(err)
	}
	if err := initializers.SyncDatabase(db); err != nil {
		log.Fatal(err)
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	server.Use(sessions.Sessions("savoria_session", cookie.NewStore([]byte(sessionSecret))))
	server.LoadHTMLGlob("templates/*.html")

	routes.PageRoutes(server)
	routes.AuthRoutes(server, db)
	routes.ProfileRoutes(server, db)
	routes.CartRoutes(server, db)

	server.Run()
}
