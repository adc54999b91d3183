package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

var DB *gorm.DB

// GoogleOAuthConfig is the oauth2 configuration for dashboard Google login
var GoogleOAuthConfig *oauth2.Config

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	Port       string
	Env        string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	// DefaultStoreToken is only consulted by the /storefront routes as a
	// convenience for single-tenant deployments. The tokenized /store
	// routes take the merchant token from the request itself.
	DefaultStoreToken string

	FrontendURL string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading .env file: %v", err)
	}

	config := &Config{
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		Port:              os.Getenv("PORT"),
		Env:               os.Getenv("ENV"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          os.Getenv("SMTP_PORT"),
		SMTPUsername:      os.Getenv("SMTP_USERNAME"),
		SMTPPassword:      os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:          os.Getenv("SMTP_FROM"),
		DefaultStoreToken: os.Getenv("MERCHANT_API_TOKEN"),
		FrontendURL:       os.Getenv("FRONTEND_URL"),
	}

	return config, nil
}

// DefaultStoreToken returns the fallback storefront token for single-tenant
// deployments. Read per request; no merchant state is held at package level.
func DefaultStoreToken() string {
	return os.Getenv("MERCHANT_API_TOKEN")
}

// InitGoogleOAuth initializes the Google OAuth configuration
func InitGoogleOAuth() {
	GoogleOAuthConfig = &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}
