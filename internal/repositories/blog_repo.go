package repositories

import (
	"time"

	"blogsite/internal/models"
)

// BlogRepository defines the interface for blog data access.
type BlogRepository interface {
	Create(blog *models.Blog) error
	GetByCategory(category string) ([]models.Blog, error)
	GetByAuthor(authorName string) ([]models.Blog, error)
	GetByName(blogName string) (*models.Blog, error)
	GetByNameAndAuthor(blogName, authorName string) (*models.Blog, error)
	GetByCategoryAndDateRange(category string, fromDate, toDate time.Time) ([]models.Blog, error)
	GetByDateRange(fromDate, toDate time.Time) ([]models.Blog, error)
	CountByAuthor(authorName string) (int64, error)
	Delete(blog *models.Blog) error
}
