package seed

import (
	"server/config"
	"server/internal/logger"
	. "server/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func stringPtr(s string) *string {
	return &s
}

func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return log.Err("failed to hash seed password", err)
	}

	users := []User{
		{
			Email:         "fatima.hassan@example.com",
			Password:      string(hash),
			FirstName:     "Fatima",
			LastName:      "Hassan",
			GuardianName:  stringPtr("Fatima Hassan"),
			GuardianPhone: stringPtr("+971501234567"),
		}, {
			Email:     "omar.khalil@example.com",
			Password:  string(hash),
			FirstName: "Omar",
			LastName:  "Khalil",
		}, {
			Email:     "reviewer@example.com",
			Password:  string(hash),
			FirstName: "Review",
			LastName:  "Team",
			IsAdmin:   true,
		},
	}

	for _, user := range users {
		var existingUser User
		if err := db.First(&existingUser, "email = ?", user.Email).Error; err == nil {
			log.Info("User already exists", "email", user.Email)
			continue
		}
		log.Info("Seeding user", "email", user.Email)
		if err := db.Create(&user).Error; err != nil {
			log.Er("failed to create user", err, "email", user.Email)
		}
	}

	return nil
}
