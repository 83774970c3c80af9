package config

import (
	"os"
	"testing"
	"time"
)

func TestNewFromEnv(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "gemini_key")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.GeminiAPIKey != "gemini_key" {
			t.Errorf("Expected GeminiAPIKey to be 'gemini_key', got '%s'", cfg.GeminiAPIKey)
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "gemini_key")
		for _, key := range []string{"COACH_MODEL", "COACH_DB_PATH", "COACH_IMAGE_PATH", "COACH_HTTP_ADDR", "COACH_TIMEOUT_SECONDS"} {
			os.Unsetenv(key)
		}

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.Model != DefaultModel {
			t.Errorf("Expected model '%s', got '%s'", DefaultModel, cfg.Model)
		}
		if cfg.DBPath != DefaultDBPath {
			t.Errorf("Expected db path '%s', got '%s'", DefaultDBPath, cfg.DBPath)
		}
		if cfg.ImagePath != DefaultImagePath {
			t.Errorf("Expected image path '%s', got '%s'", DefaultImagePath, cfg.ImagePath)
		}
		if cfg.HTTPAddr != DefaultHTTPAddr {
			t.Errorf("Expected http addr '%s', got '%s'", DefaultHTTPAddr, cfg.HTTPAddr)
		}
		if cfg.ModelTimeout != 60*time.Second {
			t.Errorf("Expected 60s timeout, got %s", cfg.ModelTimeout)
		}
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "gemini_key")
		t.Setenv("COACH_MODEL", "gemini-1.5-pro")
		t.Setenv("COACH_TIMEOUT_SECONDS", "120")
		t.Setenv("TELEGRAM_ALLOW_USER_ID", "42")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.Model != "gemini-1.5-pro" {
			t.Errorf("Expected model override, got '%s'", cfg.Model)
		}
		if cfg.ModelTimeout != 120*time.Second {
			t.Errorf("Expected 120s timeout, got %s", cfg.ModelTimeout)
		}
		if cfg.TelegramAllowUserID != 42 {
			t.Errorf("Expected allow user id 42, got %d", cfg.TelegramAllowUserID)
		}
	})

	t.Run("MissingGeminiAPIKey", func(t *testing.T) {
		os.Unsetenv("GEMINI_API_KEY")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for missing GEMINI_API_KEY, got nil")
		}
		expectedError := "GEMINI_API_KEY environment variable not set"
		if err.Error() != expectedError {
			t.Errorf("Expected error '%s', got '%s'", expectedError, err.Error())
		}
	})

	t.Run("InvalidTimeout", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "gemini_key")
		t.Setenv("COACH_TIMEOUT_SECONDS", "soon")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for invalid COACH_TIMEOUT_SECONDS, got nil")
		}
	})
}
