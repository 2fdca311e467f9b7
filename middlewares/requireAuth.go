package middlewares

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/nmwangi/savoria/utils"
)

// RequireAuth gates a route on an authenticated session. Anonymous callers
// are bounced to the login page with a one-shot notice instead of an error.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := utils.SessionUserID(ctx)
		if !ok {
			session := sessions.Default(ctx)
			session.AddFlash("You need to log in first.")
			if err := session.Save(); err != nil {
				log.Println("Session save error:", err)
			}
			ctx.Redirect(http.StatusFound, "/login")
			ctx.Abort()
			return
		}

		ctx.Set("userID", userID)
		ctx.Next()
	}
}
