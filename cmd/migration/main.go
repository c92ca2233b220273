package main

import (
	"os"
	"path/filepath"

	"server/cmd/migration/initialize"
	"server/cmd/migration/seed"
	"server/config"
	"server/internal/logger"

	migrate "github.com/rubenv/sql-migrate"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	log := logger.New("migration")

	config, err := config.InitConfig()
	if err != nil {
		log.Er("failed to initialize config", err)
		os.Exit(1)
	}

	if config.DatabaseDbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(config.DatabaseDbPath), 0755); err != nil {
			log.Er("failed to create database directory", err)
			os.Exit(1)
		}
	}

	// The migrator talks straight to sqlite; the cache is not involved.
	db, err := gorm.Open(sqlite.Open(config.DatabaseDbPath), &gorm.Config{})
	if err != nil {
		log.Er("failed to open database", err)
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Er("failed to get sql database", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	migrations := &migrate.FileMigrationSource{Dir: "migrations"}
	applied, err := migrate.Exec(sqlDB, "sqlite3", migrations, migrate.Up)
	if err != nil {
		log.Er("failed to run migrations", err)
		os.Exit(1)
	}
	log.Info("Migrations applied", "count", applied)

	if err := initialize.InitializeTables(db, config, log); err != nil {
		log.Er("failed to initialize tables", err)
		os.Exit(1)
	}

	if config.Environment == "development" {
		if err := seed.Seed(db, config, log); err != nil {
			log.Er("failed to seed database", err)
			os.Exit(1)
		}
	}
}
