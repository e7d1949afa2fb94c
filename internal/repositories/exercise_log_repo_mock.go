package repositories

import (
	"sort"
	"sync"

	"fittrack/internal/models"
)

// MockExerciseLogRepository is an in-memory implementation of ExerciseLogRepository.
type MockExerciseLogRepository struct {
	logs   []models.ExerciseLog
	nextID uint
	mu     sync.RWMutex
}

// NewMockExerciseLogRepository creates a new instance of MockExerciseLogRepository.
func NewMockExerciseLogRepository() *MockExerciseLogRepository {
	return &MockExerciseLogRepository{
		nextID: 1,
	}
}

// Create appends a log entry.
func (r *MockExerciseLogRepository) Create(log *models.ExerciseLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if log.ID == 0 {
		log.ID = r.nextID
		r.nextID++
	}
	r.logs = append(r.logs, *log)
	return nil
}

// ListByUser returns the user's logs, most recent first.
func (r *MockExerciseLogRepository) ListByUser(userID uint) ([]models.ExerciseLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var logs []models.ExerciseLog
	for _, l := range r.logs {
		if l.UserID == userID {
			logs = append(logs, l)
		}
	}
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].LogDate > logs[j].LogDate
	})
	return logs, nil
}
