package initializers

import (
	"log"

	"github.com/nmwangi/savoria/models"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.CartItem{}); err != nil {
		return err
	}
	log.Println("Database synced successfully.")
	return nil
}
