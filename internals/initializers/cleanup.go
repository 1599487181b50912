package initializers

import (
	"log"
	"time"

	"github.com/harsheel55/Auth-System/internals/config"
	"github.com/harsheel55/Auth-System/internals/models"

	"gorm.io/gorm"
)

// StartUnverifiedPurge periodically removes accounts that never completed
// email verification. Disabled unless PURGE_UNVERIFIED_AFTER_HOURS is set to
// a positive value, since verification tokens themselves never expire.
func StartUnverifiedPurge(db *gorm.DB) {
	purgeAfterHours := config.GetEnvAsInt("PURGE_UNVERIFIED_AFTER_HOURS", 0, false)
	if purgeAfterHours <= 0 {
		return
	}

	cleanupInterval := config.GetEnvAsInt("CLEANUP_INTERVAL_MINUTES", 30, true)
	ticker := time.NewTicker(time.Duration(cleanupInterval) * time.Minute)

	go func() {
		for range ticker.C {
			cutoff := time.Now().Add(-time.Duration(purgeAfterHours) * time.Hour)

			// Unscoped() performs a hard delete, bypassing GORM's soft delete,
			// so abandoned signups don't grow the table indefinitely.
			result := db.Unscoped().
				Where("email_verified = ? AND created_at < ?", false, cutoff).
				Delete(&models.User{})

			if result.Error != nil {
				log.Printf("Janitor: purge failed: %v", result.Error)
				continue
			}
			if result.RowsAffected > 0 {
				log.Printf("Janitor: purged %d unverified users", result.RowsAffected)
			}
		}
	}()
}
