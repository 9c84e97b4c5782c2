package repositories

import (
	"errors"
	"fmt"
	"time"

	"blogsite/internal/models"

	"gorm.io/gorm"
)

// GORMBlogRepository is a GORM implementation of BlogRepository.
type GORMBlogRepository struct {
	db *gorm.DB
}

// NewGORMBlogRepository creates a new instance of GORMBlogRepository.
func NewGORMBlogRepository(db *gorm.DB) *GORMBlogRepository {
	return &GORMBlogRepository{
		db: db,
	}
}

// Create inserts a new blog. The database assigns the id and created_at.
func (r *GORMBlogRepository) Create(blog *models.Blog) error {
	if err := r.db.Create(blog).Error; err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}
	return nil
}

// GetByCategory retrieves all blogs with the exact category.
func (r *GORMBlogRepository) GetByCategory(category string) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := r.db.Find(&blogs, "category = ?", category).Error; err != nil {
		return nil, fmt.Errorf("failed to get blogs by category %s: %w", category, err)
	}
	return blogs, nil
}

// GetByAuthor retrieves all blogs with the exact author name.
func (r *GORMBlogRepository) GetByAuthor(authorName string) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := r.db.Find(&blogs, "author_name = ?", authorName).Error; err != nil {
		return nil, fmt.Errorf("failed to get blogs by author %s: %w", authorName, err)
	}
	return blogs, nil
}

// GetByName retrieves a single blog by name. Blog names carry no unique
// constraint; if two blogs share a name the lowest id wins.
func (r *GORMBlogRepository) GetByName(blogName string) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.First(&blog, "blog_name = ?", blogName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("blog with name %s: %w", blogName, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get blog by name %s: %w", blogName, err)
	}
	return &blog, nil
}

// GetByNameAndAuthor retrieves a single blog by name scoped to its author.
func (r *GORMBlogRepository) GetByNameAndAuthor(blogName, authorName string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.First(&blog, "blog_name = ? AND author_name = ?", blogName, authorName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("blog with name %s by author %s: %w", blogName, authorName, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get blog by name %s and author %s: %w", blogName, authorName, err)
	}
	return &blog, nil
}

// GetByCategoryAndDateRange retrieves blogs in a category created within the
// inclusive range, newest first.
func (r *GORMBlogRepository) GetByCategoryAndDateRange(category string, fromDate, toDate time.Time) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.
		Where("category = ? AND created_at BETWEEN ? AND ?", category, fromDate, toDate).
		Order("created_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get blogs by category %s and date range: %w", category, err)
	}
	return blogs, nil
}

// GetByDateRange retrieves blogs created within the inclusive range, newest first.
func (r *GORMBlogRepository) GetByDateRange(fromDate, toDate time.Time) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.
		Where("created_at BETWEEN ? AND ?", fromDate, toDate).
		Order("created_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get blogs by date range: %w", err)
	}
	return blogs, nil
}

// CountByAuthor counts the blogs with the exact author name.
func (r *GORMBlogRepository) CountByAuthor(authorName string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Blog{}).Where("author_name = ?", authorName).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count blogs by author %s: %w", authorName, err)
	}
	return count, nil
}

// Delete removes the given blog row.
func (r *GORMBlogRepository) Delete(blog *models.Blog) error {
	res := r.db.Delete(blog)
	if res.Error != nil {
		return fmt.Errorf("failed to delete blog %s: %w", blog.BlogName, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("blog with id %d: %w", blog.ID, ErrNotFound)
	}
	return nil
}
