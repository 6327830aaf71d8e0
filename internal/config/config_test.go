package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "empty config gets defaults",
			yaml: `{}`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 60*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, 4, cfg.Database.ConnectRetries)
				assert.Equal(t, 4*time.Second, cfg.Database.ConnectRetryDelay)
				assert.InDelta(t, 1e9, cfg.Pipeline.MaxAmount, 0)
				assert.Equal(t, "none", cfg.Catalog.Source)
				assert.Equal(t, int64(32<<20), cfg.Upload.MaxBytes)
				assert.InDelta(t, 1.0, cfg.Upload.RateLimit.PerSecond, 0)
				assert.Equal(t, 5, cfg.Upload.RateLimit.Burst)
				assert.Equal(t, 24*time.Hour, cfg.Schedule.CleanupInterval)
				assert.Equal(t, 48*time.Hour, cfg.Schedule.Retention)
				assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
				assert.Equal(t, "watch-price-tracker", cfg.Tracing.ServiceName)
				assert.False(t, cfg.Tracing.Enabled)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
database:
  host: localhost
  name: watches
  user: tracker
  password: "${TEST_WPT_DB_PASSWORD}"
`,
			envVars: map[string]string{
				"TEST_WPT_DB_PASSWORD": "secret123",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
			},
		},
		{
			name: "catalog file implies file source",
			yaml: `
catalog:
  file: /etc/wpt/brands.csv
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "file", cfg.Catalog.Source)
			},
		},
		{
			name: "catalog file source without file",
			yaml: `
catalog:
  source: file
`,
			wantErr: "catalog.file is required when source is file",
		},
		{
			name: "unknown catalog source",
			yaml: `
catalog:
  source: ldap
`,
			wantErr: `catalog.source must be one of: none, file, database (got "ldap")`,
		},
		{
			name: "inverted price band",
			yaml: `
pipeline:
  price_floor: 6000
  price_threshold: 5000
`,
			wantErr: "pipeline.price_floor (6000) must be below pipeline.price_threshold (5000)",
		},
		{
			name: "negative workers",
			yaml: `
pipeline:
  workers: -1
`,
			wantErr: "pipeline.workers must not be negative",
		},
		{
			name: "tracing without endpoint",
			yaml: `
tracing:
  enabled: true
`,
			wantErr: "tracing.endpoint is required when tracing is enabled",
		},
		{
			name: "bad log format",
			yaml: `
logging:
  format: xml
`,
			wantErr: `logging.format must be one of: text, json (got "xml")`,
		},
		{
			name: "errors are joined",
			yaml: `
pipeline:
  workers: -1
logging:
  format: xml
`,
			wantErr: "pipeline.workers must not be negative\nlogging.format",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 2m
database:
  host: db.example.com
  port: 5433
  name: watches_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
  connect_retries: 2
  connect_retry_delay: 1s
pipeline:
  min_length: 15
  min_tokens: 2
  min_reference_digits: 3
  max_reference_length: 60
  price_floor: 50
  price_threshold: 3000
  workers: 8
  vocabulary_file: /etc/wpt/vocabulary.yaml
  require_price: true
  require_brand: true
  stop_words: [sold, reserved]
catalog:
  source: database
upload:
  max_bytes: 1048576
  rate_limit:
    per_second: 0.5
    burst: 2
schedule:
  cleanup_interval: 12h
  retention: 72h
cache:
  ttl: 1m
  cleanup: 2m
tracing:
  enabled: true
  endpoint: otel-collector:4317
  insecure: true
  sample_ratio: 0.25
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 2*time.Minute, cfg.Server.WriteTimeout)
				assert.Equal(t, "db.example.com", cfg.Database.Host)
				assert.Equal(t, 2, cfg.Database.ConnectRetries)
				assert.Equal(t, time.Second, cfg.Database.ConnectRetryDelay)
				assert.Equal(t, 15, cfg.Pipeline.MinLength)
				assert.Equal(t, 3, cfg.Pipeline.MinReferenceDigits)
				assert.InDelta(t, 3000.0, cfg.Pipeline.PriceThreshold, 0)
				assert.Equal(t, 8, cfg.Pipeline.Workers)
				assert.True(t, cfg.Pipeline.RequirePrice)
				assert.True(t, cfg.Pipeline.RequireBrand)
				assert.Equal(t, []string{"sold", "reserved"}, cfg.Pipeline.StopWords)
				assert.Equal(t, "database", cfg.Catalog.Source)
				assert.Equal(t, int64(1048576), cfg.Upload.MaxBytes)
				assert.InDelta(t, 0.5, cfg.Upload.RateLimit.PerSecond, 0)
				assert.Equal(t, 72*time.Hour, cfg.Schedule.Retention)
				assert.Equal(t, time.Minute, cfg.Cache.TTL)
				assert.Equal(t, "otel-collector:4317", cfg.Tracing.Endpoint)
				assert.InDelta(t, 0.25, cfg.Tracing.SampleRatio, 0)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoadEnvFile(t *testing.T) {
	const key = "TEST_WPT_ENV_FILE_VALUE"
	t.Cleanup(func() { os.Unsetenv(key) })

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0o600))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv(key))

	// Missing files are ignored.
	require.NoError(t, LoadEnvFile(filepath.Join(dir, "missing.env")))
}

func TestLoadEnvFile_DoesNotOverride(t *testing.T) {
	const key = "TEST_WPT_ENV_FILE_OVERRIDE"
	t.Setenv(key, "from-env")

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0o600))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-env", os.Getenv(key))
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 48*time.Hour, cfg.Schedule.Retention)
	require.NoError(t, validate(cfg))
}

func TestDatabaseConfig_Validate(t *testing.T) {
	t.Parallel()

	d := DatabaseConfig{Host: "localhost"}
	err := d.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.name is required")
	assert.Contains(t, err.Error(), "database.user is required")
	assert.NotContains(t, err.Error(), "database.host")

	d = DatabaseConfig{Host: "localhost", Name: "watches", User: "tracker"}
	require.NoError(t, d.Validate())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "basic DSN",
			cfg: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				Name:     "watches",
				User:     "tracker",
				Password: "testpass",
				SSLMode:  "disable",
			},
			want: "host=localhost port=5432 dbname=watches user=tracker password=testpass sslmode=disable",
		},
		{
			name: "production DSN",
			cfg: DatabaseConfig{
				Host:     "db.example.com",
				Port:     5433,
				Name:     "watches_prod",
				User:     "admin",
				Password: "s3cret",
				SSLMode:  "require",
			},
			want: "host=db.example.com port=5433 dbname=watches_prod user=admin password=s3cret sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}
