package repositories

import (
	"sort"
	"sync"

	"fittrack/internal/models"
)

// MockGoalRepository is an in-memory implementation of GoalRepository.
type MockGoalRepository struct {
	goals  map[uint]models.Goal
	nextID uint
	mu     sync.RWMutex
}

// NewMockGoalRepository creates a new instance of MockGoalRepository.
func NewMockGoalRepository() *MockGoalRepository {
	return &MockGoalRepository{
		goals:  make(map[uint]models.Goal),
		nextID: 1,
	}
}

// Create adds a new goal.
func (r *MockGoalRepository) Create(goal *models.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if goal.ID == 0 {
		goal.ID = r.nextID
		r.nextID++
	}
	r.goals[goal.ID] = *goal
	return nil
}

// ListByUser mirrors the real store's ordering: incomplete before completed
// (when completed goals are included), then end date ascending with undated
// goals last.
func (r *MockGoalRepository) ListByUser(userID uint, includeCompleted bool) ([]models.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var goals []models.Goal
	for _, g := range r.goals {
		if g.UserID != userID {
			continue
		}
		if !includeCompleted && g.IsCompleted {
			continue
		}
		goals = append(goals, g)
	}
	sort.SliceStable(goals, func(i, j int) bool {
		a, b := goals[i], goals[j]
		if includeCompleted && a.IsCompleted != b.IsCompleted {
			return !a.IsCompleted
		}
		switch {
		case a.EndDate == nil && b.EndDate == nil:
			return a.ID < b.ID
		case a.EndDate == nil:
			return false
		case b.EndDate == nil:
			return true
		default:
			if *a.EndDate != *b.EndDate {
				return *a.EndDate < *b.EndDate
			}
			return a.ID < b.ID
		}
	})
	return goals, nil
}

// UpdateProgress sets the current value, and the completion flag only when supplied.
func (r *MockGoalRepository) UpdateProgress(goalID uint, current float64, completed *bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	goal, ok := r.goals[goalID]
	if !ok {
		return nil
	}
	goal.CurrentValue = current
	if completed != nil {
		goal.IsCompleted = *completed
	}
	r.goals[goalID] = goal
	return nil
}

// Delete removes the goal; deleting a missing ID succeeds.
func (r *MockGoalRepository) Delete(goalID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.goals, goalID)
	return nil
}
