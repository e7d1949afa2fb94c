package repositories

import "fittrack/internal/models"

// UserRepository defines the interface for user account data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
}
