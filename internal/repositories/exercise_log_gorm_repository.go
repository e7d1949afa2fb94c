package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"fittrack/internal/models"
)

// GORMExerciseLogRepository is a GORM implementation of ExerciseLogRepository.
type GORMExerciseLogRepository struct {
	db *gorm.DB
}

// NewGORMExerciseLogRepository creates a new instance of GORMExerciseLogRepository.
func NewGORMExerciseLogRepository(db *gorm.DB) *GORMExerciseLogRepository {
	return &GORMExerciseLogRepository{
		db: db,
	}
}

// Create appends one log row. A single-row insert is atomic, so a failure
// never leaves a partial write behind.
func (r *GORMExerciseLogRepository) Create(log *models.ExerciseLog) error {
	if err := r.db.Create(log).Error; err != nil {
		return fmt.Errorf("failed to log exercise: %w", err)
	}
	return nil
}

// ListByUser returns all logs for a user, most recent first. The text
// timestamp format sorts lexicographically in chronological order, so a
// plain column sort is a chronological sort.
func (r *GORMExerciseLogRepository) ListByUser(userID uint) ([]models.ExerciseLog, error) {
	var logs []models.ExerciseLog
	if err := r.db.Where("user_id = ?", userID).Order("log_date DESC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list exercise logs for user %d: %w", userID, err)
	}
	return logs, nil
}
