package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all environment variables for the service.
type Config struct {
	Port          string // HTTP port (default: 8080)
	MongoURI      string // MongoDB connection string
	MongoDB       string // Database name (default: storefront)
	SMTPHost      string // SMTP server host
	SMTPPort      string // SMTP server port (default: 587)
	SMTPUser      string // SMTP account identity, also the From address
	SMTPPass      string // SMTP credential
	OperatorEmail string // Recipient for contact notifications (default: SMTPUser)
}

// LoadConfig loads environment variables into Config struct and validates
// them. Missing required values are a fatal startup condition: the process
// must not start listening without a store connection string or email
// credentials.
func LoadConfig() (*Config, error) {
	// Optional .env file for local development.
	_ = godotenv.Load()

	cfg := &Config{
		Port:          os.Getenv("PORT"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDB:       os.Getenv("MONGO_DB"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      os.Getenv("SMTP_PORT"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
		OperatorEmail: os.Getenv("OPERATOR_EMAIL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "storefront"
	}
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = "smtp.gmail.com"
	}
	if cfg.SMTPPort == "" {
		cfg.SMTPPort = "587"
	}
	if cfg.OperatorEmail == "" {
		cfg.OperatorEmail = cfg.SMTPUser
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.SMTPUser == "" {
		return nil, fmt.Errorf("SMTP_USER is required")
	}
	if cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP_PASS is required")
	}

	return cfg, nil
}
