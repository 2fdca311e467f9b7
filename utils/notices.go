package utils

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AddNotice stores a one-shot notice for the next rendered page.
func AddNotice(ctx *gin.Context, message string) {
	session := sessions.Default(ctx)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		log.Println("Session save error:", err)
	}
}

// PopNotices drains pending notices. Each notice is rendered exactly once;
// reading them clears them from the session.
func PopNotices(ctx *gin.Context) []string {
	session := sessions.Default(ctx)
	flashes := session.Flashes()
	if len(flashes) > 0 {
		if err := session.Save(); err != nil {
			log.Println("Session save error:", err)
		}
	}

	notices := make([]string, 0, len(flashes))
	for _, flash := range flashes {
		if message, ok := flash.(string); ok {
			notices = append(notices, message)
		}
	}
	return notices
}
