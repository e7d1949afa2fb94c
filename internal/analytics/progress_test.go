package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fittrack/internal/analytics"
	"fittrack/internal/models"
)

func TestGoalPercent(t *testing.T) {
	assert.InDelta(t, 25.0, analytics.GoalPercent(models.Goal{TargetValue: 100, CurrentValue: 25}), 0.001)
	assert.InDelta(t, 100.0, analytics.GoalPercent(models.Goal{TargetValue: 100, CurrentValue: 100}), 0.001)
	// Non-positive target yields 0 instead of dividing by zero.
	assert.Zero(t, analytics.GoalPercent(models.Goal{TargetValue: 0, CurrentValue: 25}))
}

func TestGoalStatus(t *testing.T) {
	assert.Equal(t, "25.0%", analytics.GoalStatus(models.Goal{TargetValue: 100, CurrentValue: 25}))
	// Completion overrides the numeric percentage, whatever it is.
	assert.Equal(t, "Completed", analytics.GoalStatus(models.Goal{TargetValue: 100, CurrentValue: 100, IsCompleted: true}))
	assert.Equal(t, "Completed", analytics.GoalStatus(models.Goal{TargetValue: 100, CurrentValue: 10, IsCompleted: true}))
}
