package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "STUDYCARDS"

// envFiles are loaded in order; variables already set are never overridden,
// so earlier files win.
var envFiles = []string{".env.local", ".env"}

// Load configuration from the working directory and the environment.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom loads configuration, looking for dotenv files and config.yaml in dir.
func LoadFrom(dir string) (*Config, error) {
	if err := loadEnvFiles(dir); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// unprefixed aliases, checked after the prefixed name
	if err := v.BindEnv("llm.gemini_api_key", EnvPrefix+"_LLM_GEMINI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}
	if err := v.BindEnv("llm.preferred_model", EnvPrefix+"_LLM_PREFERRED_MODEL", "GEMINI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.LLM.Models = trimAll(cfg.LLM.Models)
	cfg.Server.CORSOrigins = trimAll(cfg.Server.CORSOrigins)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.max_upload_bytes", 10<<20)
	v.SetDefault("server.max_concurrent", 4)
	v.SetDefault("server.request_timeout", "3m")
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.preferred_model", "")
	v.SetDefault("llm.models", []string{"gemini-2.5-flash", "gemini-1.5-pro", "gemini-pro"})
	v.SetDefault("llm.attempt_timeout", "60s")
	v.SetDefault("llm.prompt_template_path", "")
	v.SetDefault("llm.temperature", 0.4)
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.api_version", "")

	v.SetDefault("extract.backend", "pdf")
	v.SetDefault("extract.max_pages", 0)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_lifetime", "24h")
}

func loadEnvFiles(dir string) error {
	for _, name := range envFiles {
		err := godotenv.Load(filepath.Join(dir, name))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
	}
	return nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, s := range values {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
