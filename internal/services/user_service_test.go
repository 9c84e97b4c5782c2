package services_test

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"testing"

	"blogsite/internal/apperrors"
	"blogsite/internal/dto"
	"blogsite/internal/models"
	"blogsite/internal/repositories"
	"blogsite/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByUserName(userName string) (bool, error) {
	args := m.Called(userName)
	return args.Bool(0), args.Error(1)
}

// TestMain suppresses logging during tests for cleaner output.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func TestUserService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo, nil)

	req := dto.UserRegistrationRequest{
		UserName:  "johndoe",
		UserEmail: "john@example.com",
		Password:  "password123",
	}

	// Successful registration
	mockRepo.On("ExistsByEmail", req.UserEmail).Return(false, nil).Once()
	mockRepo.On("ExistsByUserName", req.UserName).Return(false, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Run(func(args mock.Arguments) {
		user := args.Get(0).(*models.User)
		user.ID = 1
	}).Once()

	response, err := userService.Register(req)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), response.ID)
	assert.Equal(t, "johndoe", response.UserName)
	assert.Equal(t, "john@example.com", response.UserEmail)
	assert.Equal(t, "User registered successfully!", response.Message)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Register_EmailConflict(t *testing.T) {
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo, nil)

	req := dto.UserRegistrationRequest{
		UserName:  "johndoe",
		UserEmail: "john@example.com",
		Password:  "password123",
	}

	// The email check runs first, so a colliding email short-circuits before
	// the username is ever looked at.
	mockRepo.On("ExistsByEmail", req.UserEmail).Return(true, nil).Once()

	_, err := userService.Register(req)
	assert.Error(t, err)

	var appErr *apperrors.Error
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.KindConflict, appErr.Kind)
	assert.Equal(t, "User Already Exists", appErr.Title)
	assert.Contains(t, appErr.Message, "email 'john@example.com'")

	mockRepo.AssertNotCalled(t, "ExistsByUserName", mock.Anything)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Register_UserNameConflict(t *testing.T) {
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo, nil)

	req := dto.UserRegistrationRequest{
		UserName:  "johndoe",
		UserEmail: "other@example.com",
		Password:  "password123",
	}

	mockRepo.On("ExistsByEmail", req.UserEmail).Return(false, nil).Once()
	mockRepo.On("ExistsByUserName", req.UserName).Return(true, nil).Once()

	_, err := userService.Register(req)
	assert.Error(t, err)

	var appErr *apperrors.Error
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.KindConflict, appErr.Kind)
	assert.Contains(t, appErr.Message, "username 'johndoe'")

	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUserByEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo, nil)

	user := &models.User{
		ID:        7,
		UserName:  "johndoe",
		UserEmail: "john@example.com",
		Password:  "password123",
	}
	mockRepo.On("GetByEmail", user.UserEmail).Return(user, nil).Once()

	response, err := userService.GetUserByEmail(user.UserEmail)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), response.ID)
	assert.Equal(t, "johndoe", response.UserName)
	mockRepo.AssertExpectations(t)

	// Missing user maps to the not-found kind
	mockRepo.On("GetByEmail", "ghost@example.com").
		Return(nil, fmt.Errorf("user with email ghost@example.com: %w", repositories.ErrNotFound)).Once()

	_, err = userService.GetUserByEmail("ghost@example.com")
	assert.Error(t, err)

	var appErr *apperrors.Error
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
	assert.Equal(t, "User Not Found", appErr.Title)
	assert.Contains(t, appErr.Message, "ghost@example.com")
	mockRepo.AssertExpectations(t)
}
