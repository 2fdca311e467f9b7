package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nmwangi/savoria/utils"
)

// GetRoot sends visitors to the landing page.
func GetRoot(ctx *gin.Context) {
	ctx.Redirect(http.StatusFound, "/home")
}

// GetHome renders the landing page for an authenticated user.
func GetHome(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", gin.H{"Notices": utils.PopNotices(ctx)})
}

func GetMenu(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "menu.html", gin.H{"Notices": utils.PopNotices(ctx)})
}

func GetAbout(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "about.html", gin.H{"Notices": utils.PopNotices(ctx)})
}

func GetBook(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "book.html", gin.H{"Notices": utils.PopNotices(ctx)})
}
