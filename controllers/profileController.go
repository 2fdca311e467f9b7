package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/nmwangi/savoria/models"
	"github.com/nmwangi/savoria/repository"
	"github.com/nmwangi/savoria/utils"
	"gorm.io/gorm"
)

// expireStaleSession drops an identity whose user row no longer exists and
// sends the caller back to the login page.
func expireStaleSession(ctx *gin.Context) {
	session := sessions.Default(ctx)
	session.Delete(utils.SessionUserKey)
	session.AddFlash(noticeLoginRequired)
	if err := session.Save(); err != nil {
		log.Println("Session save error:", err)
	}
	ctx.Redirect(http.StatusFound, "/login")
}

// GetProfile renders the authenticated user's profile.
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := currentUserID(ctx)
		if !ok {
			ctx.Redirect(http.StatusFound, "/login")
			return
		}

		user, err := repository.FindUserByID(db, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				expireStaleSession(ctx)
				return
			}
			log.Println("Database error fetching profile:", err)
			utils.AddNotice(ctx, noticeProfileFailed)
			ctx.Redirect(http.StatusFound, "/home")
			return
		}

		ctx.HTML(http.StatusOK, "profile.html", gin.H{
			"Notices": utils.PopNotices(ctx),
			"User":    user,
		})
	}
}

// UpdateProfile overwrites the editable profile attributes.
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := currentUserID(ctx)
		if !ok {
			ctx.Redirect(http.StatusFound, "/login")
			return
		}

		var form models.ProfileForm
		if err := ctx.ShouldBind(&form); err != nil {
			utils.AddNotice(ctx, noticeInvalidInput)
			ctx.Redirect(http.StatusFound, "/profile")
			return
		}

		if err := repository.UpdateUserProfile(db, userID, form); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				expireStaleSession(ctx)
				return
			}
			log.Println("Profile update error:", err)
			utils.AddNotice(ctx, noticeProfileFailed)
			ctx.Redirect(http.StatusFound, "/profile")
			return
		}

		utils.AddNotice(ctx, noticeProfileUpdated)
		ctx.Redirect(http.StatusFound, "/profile")
	}
}
