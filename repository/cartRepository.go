package repository

import (
	"github.com/nmwangi/savoria/models"
	"gorm.io/gorm"
)

func CreateCartItem(db *gorm.DB, item *models.CartItem) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Create(item).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// ListCartItems returns the user's items in insertion order.
func ListCartItems(db *gorm.DB, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	result := db.Where("user_id = ?", userID).Order("id asc").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return items, nil
}

// DeleteCartItem removes an item by primary key. Deleting an id that does
// not exist reports ErrNotFound and leaves the table untouched.
func DeleteCartItem(db *gorm.DB, id uint) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	result := tx.Unscoped().Delete(&models.CartItem{}, id)
	if result.Error != nil {
		tx.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return ErrNotFound
	}

	return tx.Commit().Error
}
