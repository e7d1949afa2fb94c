package analytics

import (
	"fmt"

	"fittrack/internal/models"
)

// GoalPercent computes the goal's progress percentage. A non-positive target
// yields 0 rather than dividing by zero.
func GoalPercent(goal models.Goal) float64 {
	if goal.TargetValue <= 0 {
		return 0
	}
	return goal.CurrentValue / goal.TargetValue * 100
}

// GoalStatus renders the goal's progress for display. A completed goal shows
// "Completed" regardless of the numeric percentage.
func GoalStatus(goal models.Goal) string {
	if goal.IsCompleted {
		return "Completed"
	}
	return fmt.Sprintf("%.1f%%", GoalPercent(goal))
}
