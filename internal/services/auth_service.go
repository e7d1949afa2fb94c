package services

import (
	"errors"

	"github.com/sirupsen/logrus"

	"fittrack/internal/models"
	"fittrack/internal/repositories"
	"fittrack/pkg/passhash"
)

// AuthService handles signup and login against the user store. Failures are
// logged and surfaced as booleans; the caller never sees storage errors.
type AuthService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Register creates a new account with a hashed password. Returns false when
// the username is already taken or the store fails; the existing record is
// never overwritten.
func (s *AuthService) Register(username, password string) bool {
	user := &models.User{
		Username:     username,
		PasswordHash: passhash.Hash(password),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			logrus.Warnf("signup rejected: username %q already exists", username)
		} else {
			logrus.Errorf("failed to create user %q: %v", username, err)
		}
		return false
	}
	return true
}

// Login verifies the credentials and returns the matching user. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (*models.User, bool) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			logrus.Errorf("failed to look up user %q: %v", username, err)
		}
		return nil, false
	}
	if !passhash.Verify(user.PasswordHash, password) {
		return nil, false
	}
	return user, true
}
