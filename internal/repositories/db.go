package repositories

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fittrack/internal/models"
)

// Sentinel errors surfaced by the GORM repositories so callers can map
// storage outcomes onto their success/absence contracts.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrNotFound          = errors.New("record not found")
)

// OpenDB opens (creating if necessary) the single local SQLite database file
// and idempotently migrates the schema. The application assumes a single
// active process against this file at a time.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.ExerciseLog{}, &models.Goal{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
