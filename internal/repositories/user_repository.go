package repositories

import (
	"errors"

	"blogsite/internal/models"
)

// ErrNotFound is returned by lookups when no row matches. Callers use
// errors.Is to distinguish absence from infrastructure failure.
var ErrNotFound = errors.New("record not found")

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	ExistsByEmail(email string) (bool, error)
	ExistsByUserName(userName string) (bool, error)
}
