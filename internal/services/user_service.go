package services

import (
	"errors"
	"fmt"
	"log"

	"blogsite/internal/apperrors"
	"blogsite/internal/dto"
	"blogsite/internal/models"
	"blogsite/internal/repositories"
	"blogsite/pkg/events"
)

// UserService handles business logic for user registration and lookup.
type UserService struct {
	userRepo  repositories.UserRepository
	publisher *events.Publisher
}

// NewUserService creates a new UserService. The publisher may be nil, in
// which case no events are emitted.
func NewUserService(userRepo repositories.UserRepository, publisher *events.Publisher) *UserService {
	return &UserService{
		userRepo:  userRepo,
		publisher: publisher,
	}
}

// Register creates a new user. The email is checked first, then the username;
// each collision is a distinct conflict naming the field value. Only after
// both checks pass is the row inserted.
func (s *UserService) Register(req dto.UserRegistrationRequest) (*dto.UserResponse, error) {
	log.Printf("Attempting to register user with email: %s", req.UserEmail)

	exists, err := s.userRepo.ExistsByEmail(req.UserEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		log.Printf("Registration failed: email already exists: %s", req.UserEmail)
		return nil, apperrors.NewConflict("User Already Exists",
			"A user with email '%s' already exists", req.UserEmail)
	}

	exists, err = s.userRepo.ExistsByUserName(req.UserName)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		log.Printf("Registration failed: username already exists: %s", req.UserName)
		return nil, apperrors.NewConflict("User Already Exists",
			"A user with username '%s' already exists", req.UserName)
	}

	user := &models.User{
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		Password:  req.Password,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	log.Printf("User registered successfully with ID: %d", user.ID)

	if err := s.publisher.Publish(events.UserRegistered, map[string]interface{}{
		"id":        user.ID,
		"userName":  user.UserName,
		"userEmail": user.UserEmail,
	}); err != nil {
		log.Printf("Warning: failed to publish %s event for user %d: %v", events.UserRegistered, user.ID, err)
	}

	response := dto.UserResponseFromModel(user, "User registered successfully!")
	return &response, nil
}

// GetUserByEmail retrieves a user by email address.
func (s *UserService) GetUserByEmail(email string) (*dto.UserResponse, error) {
	log.Printf("Searching for user with email: %s", email)

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFound("User Not Found", "User not found with email: %s", email)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	response := dto.UserResponseFromModel(user, "")
	return &response, nil
}
