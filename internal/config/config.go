package config

import (
	"fmt"
	"time"

	"github.com/llermaly/search-ui-ubi/internal/logger"
)

// Config holds all configuration for the search proxy service.
type Config struct {
	Service       ServiceConfig       `yaml:"service"`
	Elasticsearch ElasticsearchConfig `yaml:"elasticsearch"`
	Analytics     AnalyticsConfig     `yaml:"analytics"`
	Geo           GeoConfig           `yaml:"geo"`
	Logging       logger.Config       `yaml:"logging"`
	CORS          CORSConfig          `yaml:"cors"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `yaml:"port" env:"PORT"`
	Debug   bool   `yaml:"debug" env:"DEBUG"`
}

// ElasticsearchConfig holds Elasticsearch connection configuration.
type ElasticsearchConfig struct {
	Host       string        `yaml:"host" env:"ELASTICSEARCH_HOST"`
	APIKey     string        `yaml:"api_key" env:"ELASTICSEARCH_API_KEY"`
	Index      string        `yaml:"index" env:"ELASTICSEARCH_INDEX"`
	MaxRetries int           `yaml:"max_retries"`
	Timeout    time.Duration `yaml:"timeout"`
}

// AnalyticsConfig holds behavioral analytics configuration.
type AnalyticsConfig struct {
	// EventsIndex is the index analytics events are written to.
	EventsIndex string `yaml:"events_index" env:"UBI_EVENTS_INDEX"`
	// Application tags every emitted event.
	Application string `yaml:"application"`
}

// GeoConfig holds IP geolocation lookup configuration.
type GeoConfig struct {
	URL     string        `yaml:"url" env:"GEO_LOOKUP_URL"`
	Timeout time.Duration `yaml:"timeout"`
}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	Enabled          bool     `yaml:"enabled"`
	AllowedOrigins   []string `yaml:"allowed_origins" env:"CORS_ORIGINS"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

// Load loads configuration from file and environment variables.
func Load(path string) (*Config, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return cfg, nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	if cfg.Service.Name == "" {
		cfg.Service.Name = "search-ui-ubi"
	}
	if cfg.Service.Version == "" {
		cfg.Service.Version = "1.0.0"
	}
	if cfg.Service.Port == 0 {
		cfg.Service.Port = 3001
	}

	if cfg.Elasticsearch.Host == "" {
		cfg.Elasticsearch.Host = "http://localhost:9200"
	}
	if cfg.Elasticsearch.MaxRetries == 0 {
		cfg.Elasticsearch.MaxRetries = 3
	}
	if cfg.Elasticsearch.Timeout == 0 {
		cfg.Elasticsearch.Timeout = 30 * time.Second
	}

	if cfg.Analytics.EventsIndex == "" {
		cfg.Analytics.EventsIndex = "ubi_events"
	}
	if cfg.Analytics.Application == "" {
		cfg.Analytics.Application = "search-ui"
	}

	if cfg.Geo.URL == "" {
		cfg.Geo.URL = "https://ipapi.co/json/"
	}
	if cfg.Geo.Timeout == 0 {
		cfg.Geo.Timeout = 10 * time.Second
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.Enabled = true
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if len(cfg.CORS.AllowedMethods) == 0 {
		cfg.CORS.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(cfg.CORS.AllowedHeaders) == 0 {
		cfg.CORS.AllowedHeaders = []string{"Content-Type", "Authorization"}
	}
	if cfg.CORS.MaxAge == 0 {
		cfg.CORS.MaxAge = 43200
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Service.Port < 1 || c.Service.Port > 65535 {
		return &ValidationError{Field: "service.port", Message: fmt.Sprintf("invalid port: %d", c.Service.Port)}
	}
	if c.Elasticsearch.Host == "" {
		return &ValidationError{Field: "elasticsearch.host", Message: "is required"}
	}
	if c.Analytics.EventsIndex == "" {
		return &ValidationError{Field: "analytics.events_index", Message: "is required"}
	}
	if c.Geo.URL == "" {
		return &ValidationError{Field: "geo.url", Message: "is required"}
	}
	if err := validateLogLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

func validateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "warning", "error", "fatal":
		return nil
	default:
		return &ValidationError{Field: "logging.level", Message: "must be one of: debug, info, warn, error, fatal"}
	}
}
