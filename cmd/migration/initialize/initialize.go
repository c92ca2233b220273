package initialize

import (
	"server/config"
	"server/internal/logger"
	. "server/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InitializeTables provisions the review-team admin account when one is
// configured and missing.
func InitializeTables(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("InitializeTables")
	log.Info("Initializing essential production data")

	if config.AdminEmail != "" {
		if err := ensureAdmin(db, config.AdminEmail, log); err != nil {
			return err
		}
	}

	log.Info("Table initialization complete")
	return nil
}

func ensureAdmin(db *gorm.DB, email string, log logger.Logger) error {
	var existing User
	if err := db.First(&existing, "email = ?", email).Error; err == nil {
		if existing.IsAdmin {
			return nil
		}
		existing.IsAdmin = true
		return db.Save(&existing).Error
	} else if err != gorm.ErrRecordNotFound {
		return log.Err("failed to look up admin user", err, "email", email)
	}

	// First login must change this password.
	hash, err := bcrypt.GenerateFromPassword([]byte("changeme-admin"), bcrypt.DefaultCost)
	if err != nil {
		return log.Err("failed to hash admin password", err)
	}

	admin := User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Review",
		LastName:  "Team",
		IsAdmin:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return log.Err("failed to create admin user", err, "email", email)
	}

	log.Info("Created admin user", "email", email)
	return nil
}
