package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	App    AppConfig
	Board  BoardConfig
}

type ServerConfig struct {
	Port         string
	AllowOrigins []string
	StaticDir    string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

// BoardConfig carries the add-project form bounds.
type BoardConfig struct {
	TitleMinLen       int
	TitleMaxLen       int
	DescriptionMinLen int
	MandayMax         float64
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			AllowOrigins: getEnvAsList("CORS_ALLOW_ORIGINS", []string{"*"}),
			StaticDir:    getEnv("STATIC_DIR", "web/static"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Board: BoardConfig{
			TitleMinLen:       getEnvAsInt("BOARD_TITLE_MIN_LEN", 2),
			TitleMaxLen:       getEnvAsInt("BOARD_TITLE_MAX_LEN", 80),
			DescriptionMinLen: getEnvAsInt("BOARD_DESCRIPTION_MIN_LEN", 5),
			MandayMax:         getEnvAsFloat("BOARD_MANDAY_MAX", 1000),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Board.TitleMinLen > c.Board.TitleMaxLen {
		return fmt.Errorf("BOARD_TITLE_MIN_LEN must not exceed BOARD_TITLE_MAX_LEN")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
