package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email       string     `json:"email" gorm:"uniqueIndex;not null"`
	Password    string     `json:"-" gorm:"not null"`
	Fullname    string     `json:"fullname" gorm:"not null"`
	PhoneNumber string     `json:"phoneNumber" gorm:"not null"`
	Country     string     `json:"country" gorm:"not null"`
	State       string     `json:"state" gorm:"not null"`
	HomeAddress string     `json:"homeAddress" gorm:"not null"`
	PictureURL  string     `json:"pictureUrl"`
	CartItems   []CartItem `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type RegisterForm struct {
	Email       string `form:"email" binding:"required"`
	Password    string `form:"password" binding:"required"`
	Fullname    string `form:"fullname" binding:"required"`
	PhoneNumber string `form:"phone_number" binding:"required"`
	Country     string `form:"country" binding:"required"`
	State       string `form:"state" binding:"required"`
	HomeAddress string `form:"home_address" binding:"required"`
	PictureURL  string `form:"picture"`
}

type LoginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// ProfileForm carries the editable profile attributes. Email and password
// are not editable through the profile page.
type ProfileForm struct {
	Fullname    string `form:"fullname" binding:"required"`
	PhoneNumber string `form:"phone_number" binding:"required"`
	Country     string `form:"country" binding:"required"`
	State       string `form:"state" binding:"required"`
	HomeAddress string `form:"home_address" binding:"required"`
	PictureURL  string `form:"picture"`
}
