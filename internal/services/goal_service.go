package services

import (
	"github.com/sirupsen/logrus"

	"fittrack/internal/models"
	"fittrack/internal/repositories"
)

// GoalService handles goal creation, listing, progress updates and deletion.
type GoalService struct {
	goalRepo repositories.GoalRepository
}

// NewGoalService creates a new GoalService.
func NewGoalService(goalRepo repositories.GoalRepository) *GoalService {
	return &GoalService{
		goalRepo: goalRepo,
	}
}

// AddGoal stores a new goal. endDate is nil for open-ended goals; new goals
// always start incomplete.
func (s *GoalService) AddGoal(userID uint, goalType, description string, target, current float64, unit, startDate string, endDate *string) bool {
	goal := &models.Goal{
		UserID:       userID,
		GoalType:     goalType,
		Description:  description,
		TargetValue:  target,
		CurrentValue: current,
		Unit:         unit,
		StartDate:    startDate,
		EndDate:      endDate,
	}
	if err := s.goalRepo.Create(goal); err != nil {
		logrus.Errorf("failed to add goal for user %d: %v", userID, err)
		return false
	}
	return true
}

// Goals lists the user's goals. Storage errors are logged and reported as an
// empty list.
func (s *GoalService) Goals(userID uint, includeCompleted bool) []models.Goal {
	goals, err := s.goalRepo.ListByUser(userID, includeCompleted)
	if err != nil {
		logrus.Errorf("failed to load goals for user %d: %v", userID, err)
		return nil
	}
	return goals
}

// UpdateProgress sets the goal's current value; the completion flag is only
// changed when completed is non-nil.
func (s *GoalService) UpdateProgress(goalID uint, current float64, completed *bool) bool {
	if err := s.goalRepo.UpdateProgress(goalID, current, completed); err != nil {
		logrus.Errorf("failed to update progress for goal %d: %v", goalID, err)
		return false
	}
	return true
}

// DeleteGoal removes a goal. Deleting an ID that does not exist still
// reports success.
func (s *GoalService) DeleteGoal(goalID uint) bool {
	if err := s.goalRepo.Delete(goalID); err != nil {
		logrus.Errorf("failed to delete goal %d: %v", goalID, err)
		return false
	}
	return true
}
