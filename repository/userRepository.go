package repository

import (
	"errors"

	"github.com/nmwangi/savoria/models"
	"gorm.io/gorm"
)

// ErrNotFound reports that no row matched the lookup.
var ErrNotFound = errors.New("record not found")

func FindUserByEmail(db *gorm.DB, email string) (models.User, error) {
	var user models.User
	result := db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return user, ErrNotFound
		}
		return user, result.Error
	}
	return user, nil
}

func FindUserByID(db *gorm.DB, id uint) (models.User, error) {
	var user models.User
	result := db.First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return user, ErrNotFound
		}
		return user, result.Error
	}
	return user, nil
}

// CreateUser inserts the user in its own transaction. A unique index on
// email makes the losing side of a concurrent register fail here instead
// of silently inserting a duplicate.
func CreateUser(db *gorm.DB, user *models.User) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Create(user).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// UpdateUserProfile overwrites the editable profile attributes. The user
// row is loaded inside the transaction so a stale session id surfaces as
// ErrNotFound rather than a zero-row update.
func UpdateUserProfile(db *gorm.DB, id uint, form models.ProfileForm) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var user models.User
	if err := tx.First(&user, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	user.Fullname = form.Fullname
	user.PhoneNumber = form.PhoneNumber
	user.Country = form.Country
	user.State = form.State
	user.HomeAddress = form.HomeAddress
	user.PictureURL = form.PictureURL

	if err := tx.Save(&user).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
