package dto

import (
	"time"

	"blogsite/internal/models"
)

// BlogRequest is the body of the blog creation endpoint.
type BlogRequest struct {
	BlogName   string `json:"blogName" validate:"required,notblank,min=20,max=200"`
	Category   string `json:"category" validate:"required,notblank,min=20,max=100"`
	Article    string `json:"article" validate:"required,notblank,min=1000"`
	AuthorName string `json:"authorName" validate:"required,notblank,min=3,max=50"`
}

// BlogResponse is the blog shape returned by every blog read and write.
type BlogResponse struct {
	ID         uint      `json:"id"`
	BlogName   string    `json:"blogName"`
	Category   string    `json:"category"`
	Article    string    `json:"article"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
	Message    string    `json:"message,omitempty"`
}

// BlogResponseFromModel builds a response DTO from the persisted entity.
func BlogResponseFromModel(blog *models.Blog, message string) BlogResponse {
	return BlogResponse{
		ID:         blog.ID,
		BlogName:   blog.BlogName,
		Category:   blog.Category,
		Article:    blog.Article,
		AuthorName: blog.AuthorName,
		CreatedAt:  blog.CreatedAt,
		Message:    message,
	}
}

// BlogResponsesFromModels maps a result set, preserving order. A nil or empty
// slice maps to an empty (non-nil) slice so it serializes as [].
func BlogResponsesFromModels(blogs []models.Blog) []BlogResponse {
	responses := make([]BlogResponse, 0, len(blogs))
	for i := range blogs {
		responses = append(responses, BlogResponseFromModel(&blogs[i], ""))
	}
	return responses
}
