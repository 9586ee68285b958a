package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Gemini   GeminiConfig
	Storage  StorageConfig
	Frontend FrontendConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string `env:"PORT" validate:"required,numeric"`
	Env  string `env:"ENV" validate:"oneof=development production test"`
}

type GeminiConfig struct {
	APIKey string `env:"GOOGLE_API_KEY" validate:"required"`
	Model  string `env:"GEMINI_MODEL" validate:"required"`
}

type StorageConfig struct {
	UploadPath  string `env:"UPLOAD_PATH" validate:"required"`
	MaxFileSize int64  `env:"MAX_FILE_SIZE" validate:"gt=0"`
}

type FrontendConfig struct {
	BuildDir string `env:"FRONTEND_DIR"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" validate:"oneof=trace debug info warn warning error fatal panic"`
}

// Load reads the process configuration from the environment, optionally
// seeded from a .env file, and validates it. A missing model credential is
// reported here so the process never starts without one.
func Load() (*Config, error) {
	// .env is optional; plain environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey: strings.TrimSpace(getEnv("GOOGLE_API_KEY", getEnv("GEMINI_API_KEY", ""))),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Frontend: FrontendConfig{
			BuildDir: getEnv("FRONTEND_DIR", "jobmatcher-frontend/build"),
		},
		Log: LogConfig{
			Level: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field against its validate tag. Failures are
// reported by environment variable name.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("env")
	})

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s has invalid value %q (%s)", fe.Field(), fmt.Sprint(fe.Value()), fe.Tag()))
	}

	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}
