package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nmwangi/savoria/models"
	"github.com/nmwangi/savoria/repository"
	"github.com/nmwangi/savoria/utils"
	"gorm.io/gorm"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendRemovalError(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"success": false, "error": message})
}

// GetCart renders the authenticated user's cart.
func GetCart(db *gorm.DB) gin.HandlerFunc {
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
			log.Println("Database error fetching user:", err)
			utils.AddNotice(ctx, noticeCartLoadFailed)
			ctx.Redirect(http.StatusFound, "/home")
			return
		}

		items, err := repository.ListCartItems(db, userID)
		if err != nil {
			log.Println("Database error fetching cart items:", err)
			utils.AddNotice(ctx, noticeCartLoadFailed)
			ctx.Redirect(http.StatusFound, "/home")
			return
		}

		ctx.HTML(http.StatusOK, "cart.html", gin.H{
			"Notices":   utils.PopNotices(ctx),
			"User":      user,
			"CartItems": items,
		})
	}
}

// AddCartItem inserts a new item owned by the session user.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := currentUserID(ctx)
		if !ok {
			ctx.Redirect(http.StatusFound, "/login")
			return
		}

		var form models.CartItemForm
		if err := ctx.ShouldBind(&form); err != nil {
			utils.AddNotice(ctx, noticeInvalidInput)
			ctx.Redirect(http.StatusFound, "/cart")
			return
		}

		amount, err := strconv.ParseFloat(form.Amount, 64)
		if err != nil || amount < 0 {
			utils.AddNotice(ctx, noticeAmountInvalid)
			ctx.Redirect(http.StatusFound, "/cart")
			return
		}

		item := models.CartItem{
			UserID:      userID,
			Name:        form.Name,
			Amount:      amount,
			PictureURL:  form.PictureURL,
			Description: form.Description,
		}

		if err := repository.CreateCartItem(db, &item); err != nil {
			log.Println("Cart item creation error:", err)
			utils.AddNotice(ctx, noticeCartAddFailed)
			ctx.Redirect(http.StatusFound, "/cart")
			return
		}

		utils.AddNotice(ctx, form.Name+" added to your cart.")
		ctx.Redirect(http.StatusFound, "/cart")
	}
}

// RemoveCartItem deletes an item by id and reports the outcome as JSON for
// the asynchronous cart page action. The item is deleted regardless of who
// owns it; ownership is not checked, a known gap carried from the original
// behavior.
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		itemID, err := strconv.ParseUint(ctx.Param("itemId"), 10, 64)
		if err != nil {
			sendRemovalError(ctx, http.StatusBadRequest, "invalid item id")
			return
		}

		if err := repository.DeleteCartItem(db, uint(itemID)); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				sendRemovalError(ctx, http.StatusNotFound, "cart item not found")
				return
			}
			log.Println("Cart item deletion error:", err)
			sendRemovalError(ctx, http.StatusInternalServerError, "failed to remove cart item")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true})
	}
}
