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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// One-shot notices shown on the next rendered page
	noticeAlreadyLoggedIn = "You are already logged in."
	noticeInvalidInput    = "Please fill in all required fields."
	noticeEmailExists     = "Email already exists. Please log in."
	noticeAccountCreated  = "Account created successfully. You can now log in."
	noticeAccountFailed   = "Error creating account. Please try again."
	noticeUserNotFound    = "User does not exist. Please Sign Up."
	noticeLoginFailed     = "Login failed. Check your username and password."
	noticeLoggedIn        = "Logged in successfully."
	noticeLoggedOut       = "Logged out successfully."
	noticeLoginRequired   = "You need to log in first."
	noticeProfileUpdated  = "Profile updated successfully."
	noticeProfileFailed   = "Error updating profile. Please try again."
	noticeCartAddFailed   = "Error adding item to the cart. Please try again."
	noticeCartLoadFailed  = "Error loading your cart. Please try again."
	noticeAmountInvalid   = "Amount must be a non-negative number."
)

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// currentUserID returns the identity the auth gate stored on the context.
func currentUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// ShowRegisterPage renders the registration form.
func ShowRegisterPage() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, ok := utils.SessionUserID(ctx); ok {
			utils.AddNotice(ctx, noticeAlreadyLoggedIn)
			ctx.Redirect(http.StatusFound, "/login")
			return
		}
		ctx.HTML(http.StatusOK, "register.html", gin.H{"Notices": utils.PopNotices(ctx)})
	}
}

// Register handles account creation.
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, ok := utils.SessionUserID(ctx); ok {
			utils.AddNotice(ctx, noticeAlreadyLoggedIn)
			ctx.Redirect(http.StatusFound, "/login")
			return
		}

		var form models.RegisterForm
		if err := ctx.ShouldBind(&form); err != nil {
			utils.AddNotice(ctx, noticeInvalidInput)
			ctx.Redirect(http.StatusFound, "/register")
			return
		}

		_, err := repository.FindUserByEmail(db, form.Email)
		if err == nil {
			utils.AddNotice(ctx, noticeEmailExists)
			ctx.Redirect(http.StatusFound, "/login")
			return
		}
		if !errors.Is(err, repository.ErrNotFound) {
			log.Println("Database error during user check:", err)
			utils.AddNotice(ctx, noticeAccountFailed)
			ctx.Redirect(http.StatusFound, "/register")
			return
		}

		// Hash the password
		hashedPassword, err := hashPassword(form.Password)
		if err != nil {
			log.Println("Password hashing error:", err)
			utils.AddNotice(ctx, noticeAccountFailed)
			ctx.Redirect(http.StatusFound, "/register")
			return
		}

		user := models.User{
			Email:       form.Email,
			Password:    hashedPassword,
			Fullname:    form.Fullname,
			PhoneNumber: form.PhoneNumber,
			Country:     form.Country,
			State:       form.State,
			HomeAddress: form.HomeAddress,
			PictureURL:  form.PictureURL,
		}

		// The unique index on email settles a concurrent register for the
		// same address: the losing insert fails here.
		if err := repository.CreateUser(db, &user); err != nil {
			log.Println("User creation error:", err)
			utils.AddNotice(ctx, noticeAccountFailed)
			ctx.Redirect(http.StatusFound, "/register")
			return
		}

		utils.AddNotice(ctx, noticeAccountCreated)
		ctx.Redirect(http.StatusFound, "/login")
	}
}

// ShowLoginPage renders the login form.
func ShowLoginPage() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, ok := utils.SessionUserID(ctx); ok {
			utils.AddNotice(ctx, noticeAlreadyLoggedIn)
			ctx.Redirect(http.StatusFound, "/home")
			return
		}
		ctx.HTML(http.StatusOK, "login.html", gin.H{"Notices": utils.PopNotices(ctx)})
	}
}

// Login authenticates a user and establishes the session identity.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, ok := utils.SessionUserID(ctx); ok {
			utils.AddNotice(ctx, noticeAlreadyLoggedIn)
			ctx.Redirect(http.StatusFound, "/home")
			return
		}

		var form models.LoginForm
		if err := ctx.ShouldBind(&form); err != nil {
			utils.AddNotice(ctx, noticeInvalidInput)
			ctx.Redirect(http.StatusFound, "/login")
			return
		}

		user, err := repository.FindUserByEmail(db, form.Email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				utils.AddNotice(ctx, noticeUserNotFound)
			} else {
				log.Println("Database error during login:", err)
				utils.AddNotice(ctx, noticeLoginFailed)
			}
			ctx.Redirect(http.StatusFound, "/login")
			return
		}

		// Check if the password is correct
		if err := comparePasswords(user.Password, form.Password); err != nil {
			utils.AddNotice(ctx, noticeLoginFailed)
			ctx.Redirect(http.StatusFound, "/login")
			return
		}

		session := sessions.Default(ctx)
		session.Set(utils.SessionUserKey, user.ID)
		session.AddFlash(noticeLoggedIn)
		if err := session.Save(); err != nil {
			log.Println("Session save error:", err)
		}
		ctx.Redirect(http.StatusFound, "/profile")
	}
}

// Logout clears the session identity unconditionally.
func Logout() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session := sessions.Default(ctx)
		session.Delete(utils.SessionUserKey)
		session.AddFlash(noticeLoggedOut)
		if err := session.Save(); err != nil {
			log.Println("Session save error:", err)
		}
		ctx.Redirect(http.StatusFound, "/home")
	}
}
