package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fittrack/internal/models"
	"fittrack/internal/repositories"
	"fittrack/internal/services"
	"fittrack/pkg/passhash"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo)

	// Successful registration stores the hashed password, not the plaintext.
	mockRepo.On("Create", mock.MatchedBy(func(u *models.User) bool {
		return u.Username == "alice" && u.PasswordHash == passhash.Hash("wonderland")
	})).Return(nil).Once()
	assert.True(t, service.Register("alice", "wonderland"))
	mockRepo.AssertExpectations(t)

	// Duplicate username surfaces as plain failure.
	mockRepo.On("Create", mock.Anything).Return(repositories.ErrDuplicateUsername).Once()
	assert.False(t, service.Register("alice", "wonderland"))
	mockRepo.AssertExpectations(t)

	// Storage errors also surface as failure; the caller cannot tell them apart.
	mockRepo.On("Create", mock.Anything).Return(fmt.Errorf("disk I/O error")).Once()
	assert.False(t, service.Register("bob", "builder"))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo)

	stored := &models.User{ID: 7, Username: "alice", PasswordHash: passhash.Hash("wonderland")}

	// Correct credentials.
	mockRepo.On("GetByUsername", "alice").Return(stored, nil).Once()
	user, ok := service.Login("alice", "wonderland")
	assert.True(t, ok)
	assert.Equal(t, uint(7), user.ID)
	mockRepo.AssertExpectations(t)

	// Wrong password.
	mockRepo.On("GetByUsername", "alice").Return(stored, nil).Once()
	user, ok = service.Login("alice", "through the looking glass")
	assert.False(t, ok)
	assert.Nil(t, user)
	mockRepo.AssertExpectations(t)

	// Unknown username is indistinguishable from a wrong password.
	mockRepo.On("GetByUsername", "nobody").Return(nil, repositories.ErrNotFound).Once()
	user, ok = service.Login("nobody", "whatever")
	assert.False(t, ok)
	assert.Nil(t, user)
	mockRepo.AssertExpectations(t)
}
