// Package config loads runtime configuration from environment variables with
// sensible local-development defaults.
package config

import "github.com/spf13/viper"

// UserService holds the user service configuration.
type UserService struct {
	Port        string
	DatabaseDSN string
	RabbitMQURL string
}

// BlogService holds the blog service configuration.
type BlogService struct {
	Port        string
	DatabaseDSN string
	RabbitMQURL string
}

// Gateway holds the gateway configuration.
type Gateway struct {
	Port           string
	UserServiceURL string
	BlogServiceURL string
}

// LoadUserService reads the user service configuration.
func LoadUserService() UserService {
	viper.SetDefault("USER_SERVICE_PORT", ":8081")
	viper.SetDefault("DATABASE_DSN", "host=localhost user=blogsite password=blogsite dbname=blogsite port=5432 sslmode=disable")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	return UserService{
		Port:        viper.GetString("USER_SERVICE_PORT"),
		DatabaseDSN: viper.GetString("DATABASE_DSN"),
		RabbitMQURL: viper.GetString("RABBITMQ_URL"),
	}
}

// LoadBlogService reads the blog service configuration.
func LoadBlogService() BlogService {
	viper.SetDefault("BLOG_SERVICE_PORT", ":8082")
	viper.SetDefault("DATABASE_DSN", "host=localhost user=blogsite password=blogsite dbname=blogsite port=5432 sslmode=disable")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	return BlogService{
		Port:        viper.GetString("BLOG_SERVICE_PORT"),
		DatabaseDSN: viper.GetString("DATABASE_DSN"),
		RabbitMQURL: viper.GetString("RABBITMQ_URL"),
	}
}

// LoadGateway reads the gateway configuration.
func LoadGateway() Gateway {
	viper.SetDefault("GATEWAY_PORT", ":8080")
	viper.SetDefault("USER_SERVICE_URL", "http://localhost:8081")
	viper.SetDefault("BLOG_SERVICE_URL", "http://localhost:8082")
	viper.AutomaticEnv()

	return Gateway{
		Port:           viper.GetString("GATEWAY_PORT"),
		UserServiceURL: viper.GetString("USER_SERVICE_URL"),
		BlogServiceURL: viper.GetString("BLOG_SERVICE_URL"),
	}
}
