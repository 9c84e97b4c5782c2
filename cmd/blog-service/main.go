package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"blogsite/internal/config"
	"blogsite/internal/handlers"
	"blogsite/internal/middleware"
	"blogsite/internal/models"
	"blogsite/internal/repositories"
	"blogsite/internal/services"
	"blogsite/pkg/events"
)

func main() {
	cfg := config.LoadBlogService()

	// --- Database ---
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Blog{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Event publisher (optional) ---
	var publisher *events.Publisher
	if cfg.RabbitMQURL != "" {
		publisher, err = events.NewPublisher(events.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ publisher: %v", err)
		}
		defer publisher.Close()
	}

	// --- Wiring ---
	blogRepo := repositories.NewGORMBlogRepository(db)
	blogService := services.NewBlogService(blogRepo, publisher)
	blogHandler := handlers.NewBlogHandler(blogService)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})
	app.Use(logger.New())

	api := app.Group("/api/v1.0/blogsite")
	blogHandler.RegisterRoutes(api)

	// --- Start HTTP Server ---
	log.Printf("Starting blog service on port %s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.Port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down blog service...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Blog service stopped")
}
