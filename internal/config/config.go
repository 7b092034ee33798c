package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm" validate:"required"`
	Extract ExtractConfig `mapstructure:"extract" validate:"required"`
	Auth    AuthConfig    `mapstructure:"auth"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port           int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel       string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	MaxUploadBytes int64         `mapstructure:"max_upload_bytes" validate:"required,gt=0"`
	MaxConcurrent  int64         `mapstructure:"max_concurrent" validate:"required,gt=0"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"required,gt=0"`
	CORSOrigins    []string      `mapstructure:"cors_origins"`
}

// LLMConfig contains all LLM integration related settings.
//
// GeminiAPIKey is deliberately optional at load time: a missing key is
// reported as a configuration error when generation is attempted.
type LLMConfig struct {
	GeminiAPIKey       string        `mapstructure:"gemini_api_key"`
	PreferredModel     string        `mapstructure:"preferred_model"`
	Models             []string      `mapstructure:"models" validate:"required,min=1,dive,required"`
	AttemptTimeout     time.Duration `mapstructure:"attempt_timeout" validate:"required,gt=0"`
	PromptTemplatePath string        `mapstructure:"prompt_template_path" validate:"omitempty,file"`
	Temperature        float32       `mapstructure:"temperature" validate:"gte=0,lte=2"`
	BaseURL            string        `mapstructure:"base_url" validate:"omitempty,url"`
	APIVersion         string        `mapstructure:"api_version"`
}

// ExtractConfig contains text extraction settings.
type ExtractConfig struct {
	Backend  string `mapstructure:"backend" validate:"required,oneof=pdf docconv"`
	MaxPages int    `mapstructure:"max_pages" validate:"gte=0"`
}

// AuthConfig contains authentication settings. Bearer authentication is
// enabled only when JWTSecret is set.
type AuthConfig struct {
	JWTSecret     string        `mapstructure:"jwt_secret" validate:"omitempty,min=32"`
	TokenLifetime time.Duration `mapstructure:"token_lifetime" validate:"required,gt=0"`
}

// AuthEnabled reports whether bearer authentication is configured.
func (c AuthConfig) AuthEnabled() bool {
	return c.JWTSecret != ""
}
