package handlers

import (
	"log"
	"time"

	"blogsite/internal/apperrors"
	"blogsite/internal/dto"
	"blogsite/internal/services"
	"blogsite/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// dateLayout is the format of the fromDate/toDate path variables,
// yyyy-MM-ddTHH:mm:ss.
const dateLayout = "2006-01-02T15:04:05"

// BlogHandler handles HTTP requests for the blog service.
type BlogHandler struct {
	blogService *services.BlogService
	validate    *validator.Validate
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blogService *services.BlogService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
		validate:    validation.New(),
	}
}

// RegisterRoutes registers the blog routes with the Fiber app.
func (h *BlogHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/user/blogs/add/:blogName", h.HandleCreate)
	router.Get("/user/getall", h.HandleGetByAuthor)
	router.Delete("/user/delete/:blogName", h.HandleDelete)
	router.Get("/blogs/info/:category", h.HandleGetByCategory)
	router.Get("/blogs/get/:category/:fromDate/:toDate", h.HandleGetByCategoryAndDateRange)
	router.Get("/health", h.HandleHealth)
}

// HandleCreate creates a new blog. The blogName path variable is accepted for
// compatibility but the body is authoritative.
func (h *BlogHandler) HandleCreate(c *fiber.Ctx) error {
	var req dto.BlogRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing blog request body: %v", err)
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if violations := validation.Struct(h.validate, req); violations != nil {
		return apperrors.NewValidation(violations)
	}

	response, err := h.blogService.CreateBlog(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

// HandleGetByCategory returns all blogs in the category path variable.
func (h *BlogHandler) HandleGetByCategory(c *fiber.Ctx) error {
	category := c.Params("category")

	blogs, err := h.blogService.GetBlogsByCategory(category)
	if err != nil {
		return err
	}
	return c.JSON(blogs)
}

// HandleGetByAuthor returns all blogs by the authorName query parameter.
func (h *BlogHandler) HandleGetByAuthor(c *fiber.Ctx) error {
	authorName := c.Query("authorName")
	if authorName == "" {
		return apperrors.NewValidation(map[string]string{
			"authorName": "Author name is required",
		})
	}

	blogs, err := h.blogService.GetBlogsByAuthor(authorName)
	if err != nil {
		return err
	}
	return c.JSON(blogs)
}

// HandleDelete removes the blog named in the path, returning no payload.
func (h *BlogHandler) HandleDelete(c *fiber.Ctx) error {
	blogName := c.Params("blogName")

	if err := h.blogService.DeleteBlog(blogName); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetByCategoryAndDateRange returns blogs in a category created within
// the inclusive date range, newest first.
func (h *BlogHandler) HandleGetByCategoryAndDateRange(c *fiber.Ctx) error {
	category := c.Params("category")

	fromDate, err := parseDateParam(c, "fromDate")
	if err != nil {
		return err
	}
	toDate, err := parseDateParam(c, "toDate")
	if err != nil {
		return err
	}

	blogs, err := h.blogService.GetBlogsByCategoryAndDateRange(category, fromDate, toDate)
	if err != nil {
		return err
	}
	return c.JSON(blogs)
}

// HandleHealth reports that the service is up.
func (h *BlogHandler) HandleHealth(c *fiber.Ctx) error {
	return c.SendString("Blog Service is running!")
}

func parseDateParam(c *fiber.Ctx, name string) (time.Time, error) {
	value := c.Params(name)
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidation(map[string]string{
			name: "Date must be in format yyyy-MM-ddTHH:mm:ss",
		})
	}
	return parsed, nil
}
