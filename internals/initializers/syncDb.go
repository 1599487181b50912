package initializers

import (
	"log"

	"github.com/harsheel55/Auth-System/internals/models"

	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) {
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
}
