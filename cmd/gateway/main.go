package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"blogsite/internal/config"
	"blogsite/internal/gateway"
	"blogsite/internal/middleware"
)

func main() {
	cfg := config.LoadGateway()

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})
	app.Use(logger.New())

	router := gateway.New(cfg.UserServiceURL, cfg.BlogServiceURL)
	router.RegisterRoutes(app)

	log.Printf("Starting gateway on port %s", cfg.Port)
	log.Printf("Routing to user service (%s) and blog service (%s)", cfg.UserServiceURL, cfg.BlogServiceURL)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.Port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down gateway...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Gateway stopped")
}
