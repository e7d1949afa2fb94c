package repositories

import "fittrack/internal/models"

// ExerciseLogRepository defines the interface for exercise log data access.
// Log rows are append-only; there is no update or delete path.
type ExerciseLogRepository interface {
	Create(log *models.ExerciseLog) error
	ListByUser(userID uint) ([]models.ExerciseLog, error)
}
