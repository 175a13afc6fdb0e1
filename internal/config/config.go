package config

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server   ServerConfig
	Groq     GroqConfig
	Database DatabaseConfig
	Analysis AnalysisConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8000"`
	Host         string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
}

type GroqConfig struct {
	APIKey      string        `envconfig:"GROQ_API_KEY" required:"true"`
	Endpoint    string        `envconfig:"GROQ_ENDPOINT" default:"https://api.groq.com/openai/v1"`
	Model       string        `envconfig:"GROQ_MODEL" default:"llama-3.3-70b-versatile"`
	Temperature float64       `envconfig:"GROQ_TEMPERATURE" default:"0.7"`
	MaxTokens   int64         `envconfig:"GROQ_MAX_TOKENS" default:"1000"`
	Timeout     time.Duration `envconfig:"RESPONSE_TIMEOUT" default:"30s"`
}

type DatabaseConfig struct {
	Enabled bool   `envconfig:"DATABASE_ENABLED" default:"true"`
	Path    string `envconfig:"DATABASE_PATH" default:"symptom_checker.db"`

	// RetentionDays bounds how long query records are kept; 0 disables
	// the retention sweep.
	RetentionDays int `envconfig:"DATABASE_RETENTION_DAYS" default:"30"`
}

type AnalysisConfig struct {
	MinSymptomLength int `envconfig:"MIN_SYMPTOM_LENGTH" default:"10"`
	MaxSymptomLength int `envconfig:"MAX_SYMPTOM_LENGTH" default:"1000"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("configuration loaded successfully")
	return &cfg, nil
}
