package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"blogsite/internal/apperrors"
	"blogsite/internal/dto"
	"blogsite/internal/models"
	"blogsite/internal/repositories"
	"blogsite/pkg/events"
)

// BlogService handles business logic for blog creation, queries and deletion.
type BlogService struct {
	blogRepo  repositories.BlogRepository
	publisher *events.Publisher
}

// NewBlogService creates a new BlogService. The publisher may be nil, in
// which case no events are emitted.
func NewBlogService(blogRepo repositories.BlogRepository, publisher *events.Publisher) *BlogService {
	return &BlogService{
		blogRepo:  blogRepo,
		publisher: publisher,
	}
}

// CreateBlog persists a new blog. There is no uniqueness precondition.
func (s *BlogService) CreateBlog(req dto.BlogRequest) (*dto.BlogResponse, error) {
	log.Printf("Creating new blog: %s", req.BlogName)

	blog := &models.Blog{
		BlogName:   req.BlogName,
		Category:   req.Category,
		Article:    req.Article,
		AuthorName: req.AuthorName,
	}
	if err := s.blogRepo.Create(blog); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	log.Printf("Blog created successfully with ID: %d", blog.ID)

	if err := s.publisher.Publish(events.BlogCreated, map[string]interface{}{
		"id":         blog.ID,
		"blogName":   blog.BlogName,
		"category":   blog.Category,
		"authorName": blog.AuthorName,
	}); err != nil {
		log.Printf("Warning: failed to publish %s event for blog %d: %v", events.BlogCreated, blog.ID, err)
	}

	response := dto.BlogResponseFromModel(blog, "Blog created successfully!")
	return &response, nil
}

// GetBlogsByCategory returns all blogs in the category. An empty result is an
// empty slice, not an error.
func (s *BlogService) GetBlogsByCategory(category string) ([]dto.BlogResponse, error) {
	log.Printf("Fetching blogs for category: %s", category)

	blogs, err := s.blogRepo.GetByCategory(category)
	if err != nil {
		return nil, fmt.Errorf("failed to get blogs by category: %w", err)
	}
	if len(blogs) == 0 {
		log.Printf("No blogs found for category: %s", category)
	}
	return dto.BlogResponsesFromModels(blogs), nil
}

// GetBlogsByAuthor returns all blogs by the author.
func (s *BlogService) GetBlogsByAuthor(authorName string) ([]dto.BlogResponse, error) {
	log.Printf("Fetching blogs for author: %s", authorName)

	blogs, err := s.blogRepo.GetByAuthor(authorName)
	if err != nil {
		return nil, fmt.Errorf("failed to get blogs by author: %w", err)
	}
	return dto.BlogResponsesFromModels(blogs), nil
}

// GetBlogByName returns a single blog by its name.
func (s *BlogService) GetBlogByName(blogName string) (*dto.BlogResponse, error) {
	log.Printf("Fetching blog: %s", blogName)

	blog, err := s.blogRepo.GetByName(blogName)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFound("Blog Not Found", "Blog not found: %s", blogName)
		}
		return nil, fmt.Errorf("failed to get blog by name: %w", err)
	}

	response := dto.BlogResponseFromModel(blog, "")
	return &response, nil
}

// DeleteBlog removes the blog with the given name.
func (s *BlogService) DeleteBlog(blogName string) error {
	log.Printf("Attempting to delete blog: %s", blogName)

	blog, err := s.blogRepo.GetByName(blogName)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFound("Blog Not Found", "Blog not found with name: %s", blogName)
		}
		return fmt.Errorf("failed to look up blog for deletion: %w", err)
	}
	if err := s.blogRepo.Delete(blog); err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	log.Printf("Blog deleted successfully: %s", blogName)
	return nil
}

// DeleteBlogByAuthor removes the blog with the given name only if it belongs
// to the given author; a mismatch is reported as not found.
func (s *BlogService) DeleteBlogByAuthor(blogName, authorName string) error {
	log.Printf("Attempting to delete blog: %s by author: %s", blogName, authorName)

	blog, err := s.blogRepo.GetByNameAndAuthor(blogName, authorName)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFound("Blog Not Found",
				"Blog not found with name: %s for author: %s", blogName, authorName)
		}
		return fmt.Errorf("failed to look up blog for deletion: %w", err)
	}
	if err := s.blogRepo.Delete(blog); err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	log.Printf("Blog deleted successfully: %s", blogName)
	return nil
}

// GetBlogsByCategoryAndDateRange returns blogs in the category created within
// the inclusive range, newest first.
func (s *BlogService) GetBlogsByCategoryAndDateRange(category string, fromDate, toDate time.Time) ([]dto.BlogResponse, error) {
	log.Printf("Fetching blogs - category: %s, from: %s, to: %s", category, fromDate, toDate)

	blogs, err := s.blogRepo.GetByCategoryAndDateRange(category, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get blogs by category and date range: %w", err)
	}
	if len(blogs) == 0 {
		log.Printf("No blogs found for given criteria")
	}
	return dto.BlogResponsesFromModels(blogs), nil
}

// GetBlogsByDateRange returns blogs created within the inclusive range,
// newest first.
func (s *BlogService) GetBlogsByDateRange(fromDate, toDate time.Time) ([]dto.BlogResponse, error) {
	log.Printf("Fetching blogs - from: %s, to: %s", fromDate, toDate)

	blogs, err := s.blogRepo.GetByDateRange(fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get blogs by date range: %w", err)
	}
	return dto.BlogResponsesFromModels(blogs), nil
}

// GetBlogCountByAuthor counts the blogs by the author.
func (s *BlogService) GetBlogCountByAuthor(authorName string) (int64, error) {
	log.Printf("Counting blogs for author: %s", authorName)
	return s.blogRepo.CountByAuthor(authorName)
}
