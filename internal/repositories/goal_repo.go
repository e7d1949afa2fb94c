package repositories

import "fittrack/internal/models"

// GoalRepository defines the interface for goal data access.
type GoalRepository interface {
	Create(goal *models.Goal) error
	// ListByUser returns the user's goals. With includeCompleted false only
	// incomplete goals are returned, ordered by end date ascending; with
	// includeCompleted true all goals are returned, incomplete first, then
	// by end date ascending. Goals without an end date sort after all dated
	// ones in both cases.
	ListByUser(userID uint, includeCompleted bool) ([]models.Goal, error)
	// UpdateProgress always sets the current value; the completion flag is
	// only touched when completed is non-nil.
	UpdateProgress(goalID uint, current float64, completed *bool) error
	// Delete removes the goal if present. Deleting a nonexistent ID is not
	// an error; the caller cannot distinguish it from a real delete.
	Delete(goalID uint) error
}
