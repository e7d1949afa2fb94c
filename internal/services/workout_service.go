package services

import (
	"time"

	"github.com/sirupsen/logrus"

	"fittrack/internal/analytics"
	"fittrack/internal/models"
	"fittrack/internal/repositories"
)

// WorkoutService handles exercise logging and the read-side derivations over
// a user's log history.
type WorkoutService struct {
	logRepo repositories.ExerciseLogRepository
}

// NewWorkoutService creates a new WorkoutService.
func NewWorkoutService(logRepo repositories.ExerciseLogRepository) *WorkoutService {
	return &WorkoutService{
		logRepo: logRepo,
	}
}

// LogExercise appends one immutable log entry. weightKg is nil when no
// weight was recorded for the session.
func (s *WorkoutService) LogExercise(userID uint, exerciseName string, sets, reps int, weightKg *float64, calories int, loggedAt time.Time) bool {
	entry := &models.ExerciseLog{
		UserID:       userID,
		ExerciseName: exerciseName,
		Sets:         sets,
		Reps:         reps,
		WeightKg:     weightKg,
		Calories:     calories,
		LogDate:      loggedAt.Format(models.LogDateLayout),
	}
	if err := s.logRepo.Create(entry); err != nil {
		logrus.Errorf("failed to log exercise for user %d: %v", userID, err)
		return false
	}
	return true
}

// Logs returns the user's history, most recent first. Storage errors are
// logged and reported as an empty history.
func (s *WorkoutService) Logs(userID uint) []models.ExerciseLog {
	logs, err := s.logRepo.ListByUser(userID)
	if err != nil {
		logrus.Errorf("failed to load exercise logs for user %d: %v", userID, err)
		return nil
	}
	return logs
}

// Summary derives the workout summary over the user's full history.
func (s *WorkoutService) Summary(userID uint) analytics.Summary {
	return analytics.Summarize(s.Logs(userID))
}

// Series builds the chart series for a metric over the user's history.
func (s *WorkoutService) Series(userID uint, metric analytics.Metric) []analytics.Point {
	return analytics.Series(s.Logs(userID), metric)
}
