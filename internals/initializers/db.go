package initializers

import (
	"log"

	"github.com/harsheel55/Auth-System/internals/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ConnectToDb() *gorm.DB {
	dsn := config.GetEnv("DB_URL")
	log.Println("Connecting to database at:", dsn)

	// TranslateError maps driver-level unique constraint violations to
	// gorm.ErrDuplicatedKey so the workflow can report conflicts.
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to DB: ", err)
	}

	return db
}
