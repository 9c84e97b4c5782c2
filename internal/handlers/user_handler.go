package handlers

import (
	"log"

	"blogsite/internal/apperrors"
	"blogsite/internal/dto"
	"blogsite/internal/services"
	"blogsite/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for the user service.
type UserHandler struct {
	userService *services.UserService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validate:    validation.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app. The health
// route is registered before the email wildcard so it is matched first.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/user")
	userRoutes.Post("/register", h.HandleRegister)
	userRoutes.Get("/health", h.HandleHealth)
	userRoutes.Get("/:email", h.HandleGetByEmail)
}

// HandleRegister handles new user registration.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var req dto.UserRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if violations := validation.Struct(h.validate, req); violations != nil {
		return apperrors.NewValidation(violations)
	}

	response, err := h.userService.Register(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

// HandleGetByEmail returns the user registered under the email path variable.
func (h *UserHandler) HandleGetByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	log.Printf("Fetching user details for email: %s", email)

	response, err := h.userService.GetUserByEmail(email)
	if err != nil {
		return err
	}
	return c.JSON(response)
}

// HandleHealth reports that the service is up.
func (h *UserHandler) HandleHealth(c *fiber.Ctx) error {
	return c.SendString("User Service is running!")
}
