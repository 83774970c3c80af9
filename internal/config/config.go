// Package config loads application configuration from the environment.
// A .env file in the working directory is picked up automatically.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

const (
	DefaultModel     = "gemini-2.0-flash"
	DefaultDBPath    = "instance/coach.sqlite"
	DefaultImagePath = "IMG_4830.png"
	DefaultHTMLFile  = "training_plan.html"
	DefaultJSONFile  = "training_plan.json"
	DefaultCSSFile   = "style.css"
	DefaultHTTPAddr  = ":8080"

	defaultTimeoutSeconds = 60
)

// Config holds the configuration for the application.
type Config struct {
	GeminiAPIKey string
	Model        string
	ModelTimeout time.Duration

	DBPath    string
	ImagePath string

	OutputDir string
	HTMLFile  string
	JSONFile  string
	CSSFile   string

	HTTPAddr string

	// Telegram Config (optional; required only for the bot binary)
	TelegramBotToken    string
	TelegramAllowUserID int64
}

// NewFromEnv creates a new Config object from environment variables.
// A missing API key is the one fatal configuration error; everything else
// falls back to a default.
func NewFromEnv() (*Config, error) {
	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	timeoutSeconds := defaultTimeoutSeconds
	if raw := os.Getenv("COACH_TIMEOUT_SECONDS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("COACH_TIMEOUT_SECONDS must be a positive integer, got %q", raw)
		}
		timeoutSeconds = parsed
	}

	var telegramAllowUserID int64
	if raw := os.Getenv("TELEGRAM_ALLOW_USER_ID"); raw != "" {
		fmt.Sscanf(raw, "%d", &telegramAllowUserID)
	}

	return &Config{
		GeminiAPIKey: geminiAPIKey,
		Model:        envOrDefault("COACH_MODEL", DefaultModel),
		ModelTimeout: time.Duration(timeoutSeconds) * time.Second,

		DBPath:    envOrDefault("COACH_DB_PATH", DefaultDBPath),
		ImagePath: envOrDefault("COACH_IMAGE_PATH", DefaultImagePath),

		OutputDir: envOrDefault("COACH_OUTPUT_DIR", "."),
		HTMLFile:  envOrDefault("COACH_HTML_FILE", DefaultHTMLFile),
		JSONFile:  envOrDefault("COACH_JSON_FILE", DefaultJSONFile),
		CSSFile:   envOrDefault("COACH_CSS_FILE", DefaultCSSFile),

		HTTPAddr: envOrDefault("COACH_HTTP_ADDR", DefaultHTTPAddr),

		TelegramBotToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramAllowUserID: telegramAllowUserID,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
