package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"fittrack/internal/models"
)

// GORMGoalRepository is a GORM implementation of GoalRepository.
type GORMGoalRepository struct {
	db *gorm.DB
}

// NewGORMGoalRepository creates a new instance of GORMGoalRepository.
func NewGORMGoalRepository(db *gorm.DB) *GORMGoalRepository {
	return &GORMGoalRepository{
		db: db,
	}
}

// Create inserts a new goal.
func (r *GORMGoalRepository) Create(goal *models.Goal) error {
	if err := r.db.Create(goal).Error; err != nil {
		return fmt.Errorf("failed to add goal: %w", err)
	}
	return nil
}

// ListByUser returns the user's goals per the ordering contract. NULL end
// dates are sorted explicitly after all dated values rather than relying on
// the engine's default NULL placement.
func (r *GORMGoalRepository) ListByUser(userID uint, includeCompleted bool) ([]models.Goal, error) {
	var goals []models.Goal
	query := r.db.Where("user_id = ?", userID)
	if includeCompleted {
		query = query.Order("is_completed ASC")
	} else {
		query = query.Where("is_completed = ?", false)
	}
	query = query.Order("end_date IS NULL").Order("end_date ASC")
	if err := query.Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to list goals for user %d: %w", userID, err)
	}
	return goals, nil
}

// UpdateProgress sets the goal's current value, and its completion flag only
// when the caller supplied one.
func (r *GORMGoalRepository) UpdateProgress(goalID uint, current float64, completed *bool) error {
	updates := map[string]interface{}{"current_value": current}
	if completed != nil {
		updates["is_completed"] = *completed
	}
	if err := r.db.Model(&models.Goal{}).Where("id = ?", goalID).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update progress for goal %d: %w", goalID, err)
	}
	return nil
}

// Delete removes the goal row. No existence check is performed first, so a
// missing row still counts as success.
func (r *GORMGoalRepository) Delete(goalID uint) error {
	if err := r.db.Delete(&models.Goal{}, goalID).Error; err != nil {
		return fmt.Errorf("failed to delete goal %d: %w", goalID, err)
	}
	return nil
}
