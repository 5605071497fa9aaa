package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const defaultTelegramAPI = "https://api.telegram.org"

// Load reads configuration from environment variables and .env.
func Load() (Config, error) {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		return Config{}, fmt.Errorf("DB_DSN is required")
	}

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return Config{}, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	publicURL := os.Getenv("PUBLIC_URL")
	if publicURL == "" {
		return Config{}, fmt.Errorf("PUBLIC_URL is required")
	}

	apiURL := os.Getenv("TELEGRAM_API_URL")
	if apiURL == "" {
		apiURL = defaultTelegramAPI
	}

	return Config{
		DBDSN:          dsn,
		BotToken:       token,
		PublicURL:      publicURL,
		TelegramAPIURL: apiURL,
		Port:           getPort(),
	}, nil
}

// Config contains application configuration.
type Config struct {
	DBDSN          string
	BotToken       string
	PublicURL      string
	TelegramAPIURL string
	Port           string
}

func getPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		return "8080"
	}
	return port
}
