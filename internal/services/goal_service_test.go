package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fittrack/internal/models"
	"fittrack/internal/services"
)

// MockGoalRepository is a mock implementation of repositories.GoalRepository
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) Create(goal *models.Goal) error {
	args := m.Called(goal)
	return args.Error(0)
}

func (m *MockGoalRepository) ListByUser(userID uint, includeCompleted bool) ([]models.Goal, error) {
	args := m.Called(userID, includeCompleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Goal), args.Error(1)
}

func (m *MockGoalRepository) UpdateProgress(goalID uint, current float64, completed *bool) error {
	args := m.Called(goalID, current, completed)
	return args.Error(0)
}

func (m *MockGoalRepository) Delete(goalID uint) error {
	args := m.Called(goalID)
	return args.Error(0)
}

func TestGoalService_AddGoal(t *testing.T) {
	mockRepo := new(MockGoalRepository)
	service := services.NewGoalService(mockRepo)

	end := "2025-09-01"
	mockRepo.On("Create", mock.MatchedBy(func(g *models.Goal) bool {
		return g.UserID == 1 &&
			g.GoalType == "Weight Loss" &&
			g.TargetValue == 5 && g.CurrentValue == 0 &&
			g.Unit == "kg" &&
			g.StartDate == "2025-03-01" &&
			g.EndDate != nil && *g.EndDate == end &&
			!g.IsCompleted
	})).Return(nil).Once()

	assert.True(t, service.AddGoal(1, "Weight Loss", "lose five kilos", 5, 0, "kg", "2025-03-01", &end))
	mockRepo.AssertExpectations(t)

	mockRepo.On("Create", mock.Anything).Return(fmt.Errorf("disk I/O error")).Once()
	assert.False(t, service.AddGoal(1, "Weight Loss", "lose five kilos", 5, 0, "kg", "2025-03-01", nil))
	mockRepo.AssertExpectations(t)
}

func TestGoalService_Goals(t *testing.T) {
	mockRepo := new(MockGoalRepository)
	service := services.NewGoalService(mockRepo)

	expected := []models.Goal{{ID: 1, UserID: 1, GoalType: "Strength"}}
	mockRepo.On("ListByUser", uint(1), false).Return(expected, nil).Once()
	assert.Equal(t, expected, service.Goals(1, false))
	mockRepo.AssertExpectations(t)

	mockRepo.On("ListByUser", uint(1), true).Return(nil, fmt.Errorf("disk I/O error")).Once()
	assert.Empty(t, service.Goals(1, true))
	mockRepo.AssertExpectations(t)
}

func TestGoalService_UpdateProgress(t *testing.T) {
	mockRepo := new(MockGoalRepository)
	service := services.NewGoalService(mockRepo)

	completed := true
	mockRepo.On("UpdateProgress", uint(3), 50.0, &completed).Return(nil).Once()
	assert.True(t, service.UpdateProgress(3, 50, &completed))
	mockRepo.AssertExpectations(t)

	mockRepo.On("UpdateProgress", uint(3), 60.0, (*bool)(nil)).Return(nil).Once()
	assert.True(t, service.UpdateProgress(3, 60, nil))
	mockRepo.AssertExpectations(t)

	mockRepo.On("UpdateProgress", uint(3), 70.0, (*bool)(nil)).Return(fmt.Errorf("disk I/O error")).Once()
	assert.False(t, service.UpdateProgress(3, 70, nil))
	mockRepo.AssertExpectations(t)
}

func TestGoalService_DeleteGoal(t *testing.T) {
	mockRepo := new(MockGoalRepository)
	service := services.NewGoalService(mockRepo)

	mockRepo.On("Delete", uint(3)).Return(nil).Once()
	assert.True(t, service.DeleteGoal(3))
	mockRepo.AssertExpectations(t)

	mockRepo.On("Delete", uint(4)).Return(fmt.Errorf("disk I/O error")).Once()
	assert.False(t, service.DeleteGoal(4))
	mockRepo.AssertExpectations(t)
}
