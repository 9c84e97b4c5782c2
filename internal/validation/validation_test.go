package validation_test

import (
	"strings"
	"testing"

	"blogsite/internal/dto"
	"blogsite/internal/validation"

	"github.com/stretchr/testify/assert"
)

func validRegistration() dto.UserRegistrationRequest {
	return dto.UserRegistrationRequest{
		UserName:  "johndoe",
		UserEmail: "john@example.com",
		Password:  "password123",
	}
}

func validBlog() dto.BlogRequest {
	return dto.BlogRequest{
		BlogName:   "My Adventures In Distributed Systems",
		Category:   "distributed-systems-notes",
		Article:    strings.Repeat("a", 1000),
		AuthorName: "johndoe",
	}
}

func TestValidRequestsPass(t *testing.T) {
	validate := validation.New()

	assert.Nil(t, validation.Struct(validate, validRegistration()))
	assert.Nil(t, validation.Struct(validate, validBlog()))
}

func TestUserNameRules(t *testing.T) {
	validate := validation.New()

	tests := []struct {
		name     string
		userName string
		message  string
	}{
		{"empty", "", "User name is required"},
		{"blank", "   ", "User name is required"},
		{"too short", "ab", "User name must be between 3 and 50 characters"},
		{"too long", strings.Repeat("a", 51), "User name must be between 3 and 50 characters"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegistration()
			req.UserName = tc.userName
			violations := validation.Struct(validate, req)
			assert.Equal(t, tc.message, violations["userName"])
		})
	}
}

func TestEmailRules(t *testing.T) {
	validate := validation.New()

	tests := []struct {
		name    string
		email   string
		message string
	}{
		{"empty", "", "Email is required"},
		{"not an email", "not-an-email", "Email must be valid"},
		// syntactically valid but not a .com address
		{"wrong tld", "john@example.org", "Email must contain @ and end with .com"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegistration()
			req.UserEmail = tc.email
			violations := validation.Struct(validate, req)
			assert.Equal(t, tc.message, violations["userEmail"])
		})
	}
}

func TestPasswordRules(t *testing.T) {
	validate := validation.New()

	tests := []struct {
		name     string
		password string
		message  string
	}{
		{"empty", "", "Password is required"},
		{"too short", "pass1", "Password must be at least 8 characters"},
		{"no digit", "passwordonly", "Password must be alphanumeric (letters and numbers)"},
		{"no letter", "12345678", "Password must be alphanumeric (letters and numbers)"},
		{"special characters", "password-123", "Password must be alphanumeric (letters and numbers)"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegistration()
			req.Password = tc.password
			violations := validation.Struct(validate, req)
			assert.Equal(t, tc.message, violations["password"])
		})
	}
}

func TestBlogRules(t *testing.T) {
	validate := validation.New()

	req := validBlog()
	req.BlogName = "Too short a name"
	req.Category = "short"
	req.Article = strings.Repeat("a", 999)
	req.AuthorName = "ab"

	violations := validation.Struct(validate, req)
	assert.Equal(t, "Blog name must be at least 20 characters", violations["blogName"])
	assert.Equal(t, "Category must be at least 20 characters", violations["category"])
	assert.Equal(t, "Article must be at least 1000 characters", violations["article"])
	assert.Equal(t, "Author name must be between 3 and 50 characters", violations["authorName"])
}

// Every violated field is reported, not just the first.
func TestAllViolationsReported(t *testing.T) {
	validate := validation.New()

	violations := validation.Struct(validate, dto.UserRegistrationRequest{})
	assert.Len(t, violations, 3)
	assert.Contains(t, violations, "userName")
	assert.Contains(t, violations, "userEmail")
	assert.Contains(t, violations, "password")
}
