// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server struct {
		Port         string        `json:"port"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
	} `json:"server"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Identity struct {
		// Provider selects the external identity verifier: "insecure" for the
		// trust-everything development stand-in, "google" for real OAuth2.
		Provider           string `json:"provider"`
		GoogleClientID     string `json:"google_client_id"`
		GoogleClientSecret string `json:"google_client_secret"`
		GoogleRedirectURL  string `json:"google_redirect_url"`
	} `json:"identity"`
	Sendgrid struct {
		APIKey string `json:"api_key"`
		From   string `json:"from"`
	} `json:"sendgrid"`
	SMTP struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"smtp"`
	BaseURL string `json:"base_url"`
}

func Load() *Config {
	cfg := &Config{}

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15

	// JWT configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", "dev-only-secret")
	cfg.JWT.ExpiryPeriod = time.Hour * 24

	// External identity provider
	cfg.Identity.Provider = getEnv("IDENTITY_PROVIDER", "insecure")
	cfg.Identity.GoogleClientID = getEnv("GOOGLE_CLIENT_ID", "")
	cfg.Identity.GoogleClientSecret = getEnv("GOOGLE_CLIENT_SECRET", "")
	cfg.Identity.GoogleRedirectURL = getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/api/auth/google/callback")

	// Notification mail
	cfg.Sendgrid.APIKey = getEnv("SENDGRID_API_KEY", "")
	cfg.Sendgrid.From = getEnv("SENDGRID_FROM", "")
	cfg.SMTP.Host = getEnv("SMTP_HOST", "")
	if port, err := strconv.Atoi(getEnv("SMTP_PORT", "587")); err == nil {
		cfg.SMTP.Port = port
	}
	cfg.SMTP.Username = getEnv("SMTP_USERNAME", "")
	cfg.SMTP.Password = getEnv("SMTP_PASSWORD", "")
	cfg.SMTP.From = getEnv("SMTP_FROM", "")

	cfg.BaseURL = getEnv("BASE_URL", "http://localhost:8080")

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
