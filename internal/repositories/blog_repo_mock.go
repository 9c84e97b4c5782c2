package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"blogsite/internal/models"
)

// MockBlogRepository is an in-memory implementation of BlogRepository.
type MockBlogRepository struct {
	blogs  map[uint]models.Blog
	nextID uint
	mu     sync.RWMutex
}

// NewMockBlogRepository creates a new instance of MockBlogRepository.
func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{
		blogs:  make(map[uint]models.Blog),
		nextID: 1,
	}
}

// Create adds a new blog, assigning the id and created time if unset.
func (r *MockBlogRepository) Create(blog *models.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	blog.ID = r.nextID
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = time.Now()
	}
	r.nextID++
	r.blogs[blog.ID] = *blog
	return nil
}

// GetByCategory returns all blogs with the exact category.
func (r *MockBlogRepository) GetByCategory(category string) ([]models.Blog, error) {
	return r.filter(func(b *models.Blog) bool { return b.Category == category }, byID), nil
}

// GetByAuthor returns all blogs with the exact author name.
func (r *MockBlogRepository) GetByAuthor(authorName string) ([]models.Blog, error) {
	return r.filter(func(b *models.Blog) bool { return b.AuthorName == authorName }, byID), nil
}

// GetByName returns the blog with the given name. With duplicate names the
// lowest id wins, matching the GORM implementation.
func (r *MockBlogRepository) GetByName(blogName string) (*models.Blog, error) {
	matches := r.filter(func(b *models.Blog) bool { return b.BlogName == blogName }, byID)
	if len(matches) == 0 {
		return nil, fmt.Errorf("blog with name %s: %w", blogName, ErrNotFound)
	}
	blog := matches[0]
	return &blog, nil
}

// GetByNameAndAuthor returns the blog with the given name scoped to its author.
func (r *MockBlogRepository) GetByNameAndAuthor(blogName, authorName string) (*models.Blog, error) {
	matches := r.filter(func(b *models.Blog) bool {
		return b.BlogName == blogName && b.AuthorName == authorName
	}, byID)
	if len(matches) == 0 {
		return nil, fmt.Errorf("blog with name %s by author %s: %w", blogName, authorName, ErrNotFound)
	}
	blog := matches[0]
	return &blog, nil
}

// GetByCategoryAndDateRange returns blogs in a category created within the
// inclusive range, newest first.
func (r *MockBlogRepository) GetByCategoryAndDateRange(category string, fromDate, toDate time.Time) ([]models.Blog, error) {
	return r.filter(func(b *models.Blog) bool {
		return b.Category == category && inRange(b.CreatedAt, fromDate, toDate)
	}, byCreatedAtDesc), nil
}

// GetByDateRange returns blogs created within the inclusive range, newest first.
func (r *MockBlogRepository) GetByDateRange(fromDate, toDate time.Time) ([]models.Blog, error) {
	return r.filter(func(b *models.Blog) bool {
		return inRange(b.CreatedAt, fromDate, toDate)
	}, byCreatedAtDesc), nil
}

// CountByAuthor counts the blogs with the exact author name.
func (r *MockBlogRepository) CountByAuthor(authorName string) (int64, error) {
	matches, _ := r.GetByAuthor(authorName)
	return int64(len(matches)), nil
}

// Delete removes the given blog row.
func (r *MockBlogRepository) Delete(blog *models.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.blogs[blog.ID]; !ok {
		return fmt.Errorf("blog with id %d: %w", blog.ID, ErrNotFound)
	}
	delete(r.blogs, blog.ID)
	return nil
}

type sortOrder int

const (
	byID sortOrder = iota
	byCreatedAtDesc
)

func (r *MockBlogRepository) filter(keep func(*models.Blog) bool, order sortOrder) []models.Blog {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]models.Blog, 0)
	for _, b := range r.blogs {
		if keep(&b) {
			matches = append(matches, b)
		}
	}
	switch order {
	case byCreatedAtDesc:
		sort.Slice(matches, func(i, j int) bool { return matches[i].CreatedAt.After(matches[j].CreatedAt) })
	default:
		sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	}
	return matches
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
