package utils

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionUserKey is the session entry holding the authenticated user's id.
const SessionUserKey = "user_id"

// SessionUserID reads the authenticated identity from the session, if any.
func SessionUserID(ctx *gin.Context) (uint, bool) {
	session := sessions.Default(ctx)
	value := session.Get(SessionUserKey)
	if value == nil {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
