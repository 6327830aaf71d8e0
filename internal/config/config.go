// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Upload   UploadConfig   `yaml:"upload"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Cache    CacheConfig    `yaml:"cache"`
	Tracing  TracingConfig  `yaml:"tracing"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`

	// ConnectRetries is how many times the first connection is attempted
	// before startup fails.
	ConnectRetries    int           `yaml:"connect_retries"`
	ConnectRetryDelay time.Duration `yaml:"connect_retry_delay"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// Validate reports missing connection settings. Only commands that talk to
// PostgreSQL call it.
func (d *DatabaseConfig) Validate() error {
	var errs []error
	if d.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("database.name is required"))
	}
	if d.User == "" {
		errs = append(errs, errors.New("database.user is required"))
	}
	return errors.Join(errs...)
}

// PipelineConfig tunes the extraction pipeline. Zero values fall back to the
// pipeline's own defaults.
type PipelineConfig struct {
	MinLength          int      `yaml:"min_length"`
	MinTokens          int      `yaml:"min_tokens"`
	MinReferenceDigits int      `yaml:"min_reference_digits"`
	MaxReferenceLength int      `yaml:"max_reference_length"`
	PriceFloor         float64  `yaml:"price_floor"`
	PriceThreshold     float64  `yaml:"price_threshold"`
	MaxAmount          float64  `yaml:"max_amount"`
	Workers            int      `yaml:"workers"`
	VocabularyFile     string   `yaml:"vocabulary_file"`
	RequirePrice       bool     `yaml:"require_price"`
	RequireBrand       bool     `yaml:"require_brand"`
	StopWords          []string `yaml:"stop_words"`
}

// CatalogConfig selects where brand codes come from.
type CatalogConfig struct {
	Source string `yaml:"source"` // none, file, database
	File   string `yaml:"file"`
}

// UploadConfig limits the upload endpoint.
type UploadConfig struct {
	MaxBytes  int64           `yaml:"max_bytes"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines token bucket settings.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
	Retention       time.Duration `yaml:"retention"`
	StaleJobTimeout time.Duration `yaml:"stale_job_timeout"`
}

// CacheConfig defines the parse result cache.
type CacheConfig struct {
	TTL     time.Duration `yaml:"ttl"`
	Cleanup time.Duration `yaml:"cleanup"`
}

// TracingConfig defines the OTLP trace exporter.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	ServiceName string  `yaml:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation. Variables from a .env file in the working
// directory are loaded first without overriding the real environment.
func Load(path string) (*Config, error) {
	if err := LoadEnvFile(".env"); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse expands environment variables in data and decodes it.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration with every default applied, for commands
// that run without a config file.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyPipelineDefaults(&cfg.Pipeline)
	applyCatalogDefaults(&cfg.Catalog)
	applyUploadDefaults(&cfg.Upload)
	applyScheduleDefaults(&cfg.Schedule)
	applyCacheDefaults(&cfg.Cache)
	applyTracingDefaults(&cfg.Tracing)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 60 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
	if d.ConnectRetries == 0 {
		d.ConnectRetries = 4
	}
	if d.ConnectRetryDelay == 0 {
		d.ConnectRetryDelay = 4 * time.Second
	}
}

func applyPipelineDefaults(p *PipelineConfig) {
	if p.MaxAmount == 0 {
		p.MaxAmount = 1e9
	}
}

func applyCatalogDefaults(c *CatalogConfig) {
	if c.Source == "" {
		c.Source = "none"
		if c.File != "" {
			c.Source = "file"
		}
	}
}

func applyUploadDefaults(u *UploadConfig) {
	if u.MaxBytes == 0 {
		u.MaxBytes = 32 << 20
	}
	if u.RateLimit.PerSecond == 0 {
		u.RateLimit.PerSecond = 1
	}
	if u.RateLimit.Burst == 0 {
		u.RateLimit.Burst = 5
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.CleanupInterval == 0 {
		s.CleanupInterval = 24 * time.Hour
	}
	if s.Retention == 0 {
		s.Retention = 48 * time.Hour
	}
	if s.StaleJobTimeout == 0 {
		s.StaleJobTimeout = time.Hour
	}
}

func applyCacheDefaults(c *CacheConfig) {
	if c.TTL == 0 {
		c.TTL = 10 * time.Minute
	}
	if c.Cleanup == 0 {
		c.Cleanup = 20 * time.Minute
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "watch-price-tracker"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	p := cfg.Pipeline
	if p.MinLength < 0 || p.MinTokens < 0 || p.MinReferenceDigits < 0 || p.MaxReferenceLength < 0 {
		errs = append(errs, errors.New("pipeline thresholds must not be negative"))
	}
	if p.PriceFloor < 0 || p.PriceThreshold < 0 {
		errs = append(errs, errors.New("pipeline price band must not be negative"))
	}
	if p.PriceThreshold > 0 && p.PriceFloor >= p.PriceThreshold {
		errs = append(errs, fmt.Errorf(
			"pipeline.price_floor (%v) must be below pipeline.price_threshold (%v)",
			p.PriceFloor, p.PriceThreshold,
		))
	}
	if p.Workers < 0 {
		errs = append(errs, errors.New("pipeline.workers must not be negative"))
	}

	switch cfg.Catalog.Source {
	case "none", "database":
	case "file":
		if cfg.Catalog.File == "" {
			errs = append(errs, errors.New("catalog.file is required when source is file"))
		}
	default:
		errs = append(errs, fmt.Errorf(
			"catalog.source must be one of: none, file, database (got %q)", cfg.Catalog.Source,
		))
	}

	if cfg.Upload.MaxBytes < 0 {
		errs = append(errs, errors.New("upload.max_bytes must not be negative"))
	}

	if cfg.Schedule.Retention < 0 || cfg.Schedule.CleanupInterval < 0 {
		errs = append(errs, errors.New("schedule durations must not be negative"))
	}

	if cfg.Tracing.Enabled && cfg.Tracing.Endpoint == "" {
		errs = append(errs, errors.New("tracing.endpoint is required when tracing is enabled"))
	}
	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("tracing.sample_ratio must be within [0, 1] (got %v)", cfg.Tracing.SampleRatio))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
