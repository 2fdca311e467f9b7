package models

import "gorm.io/gorm"

type CartItem struct {
	gorm.Model
	UserID      uint    `json:"userId" gorm:"not null"`
	Name        string  `json:"name" gorm:"not null"`
	Amount      float64 `json:"amount" gorm:"not null"`
	PictureURL  string  `json:"pictureUrl"`
	Description string  `json:"description" gorm:"type:text"`
}

// CartItemForm keeps amount as a string so a non-numeric value can be
// reported as a validation notice instead of a bind failure.
type CartItemForm struct {
	Name        string `form:"name" binding:"required"`
	Amount      string `form:"amount" binding:"required"`
	PictureURL  string `form:"picture_url"`
	Description string `form:"description"`
}
