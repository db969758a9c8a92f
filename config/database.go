// kahootboard/config/database.go
package config

import (
	"log/slog"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jozzegt/kahootboard/models"
)

var DB *gorm.DB

// ConnectDB opens the SQLite database, runs migrations and seeds the
// default teacher account, then publishes the handle as config.DB.
func ConnectDB() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "data.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		slog.Error("failed to open database", "error", err, "path", path)
		os.Exit(1)
	}

	if err := MigrateAndSeed(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	DB = db
	slog.Info("connected to database", "path", path)
}

// MigrateAndSeed creates the schema and, on first boot, inserts the
// teacher account with its fixed default credential. Safe to call on
// every start.
func MigrateAndSeed(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Teacher{}, &models.Student{}, &models.ScoreRow{}); err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.Teacher{}).Where("id = ?", models.TeacherID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("maestro123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	teacher := models.Teacher{
		ID:          models.TeacherID,
		Username:    "maestro",
		Password:    string(hash),
		DisplayName: "Maestro",
		Avatar:      "👨‍🏫",
	}
	if err := db.Create(&teacher).Error; err != nil {
		return err
	}
	slog.Info("seeded default teacher account", "username", teacher.Username)
	return nil
}
