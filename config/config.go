package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"smart-task-scheduler/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Scheduler specifics
	Scheduler SchedulerConfig
	RateLimit RateLimitConfig

	// Observability
	Tracing TracingConfig
	Metrics MetricsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SchedulerConfig struct {
	Storage       string // memory | sqlite
	Timezone      string // IANA name used to resolve relative deadlines
	RelativeDates bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type TracingConfig struct {
	Enabled bool
	Output  string // stdout | stderr
}

type MetricsConfig struct {
	Enabled bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Scheduler
	cfg.Scheduler.Storage = strings.ToLower(v.GetString("scheduler.storage"))
	cfg.Scheduler.Timezone = v.GetString("scheduler.timezone")
	cfg.Scheduler.RelativeDates = v.GetBool("scheduler.relative_dates")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Observability
	cfg.Tracing.Enabled = v.GetBool("tracing.enabled")
	cfg.Tracing.Output = v.GetString("tracing.output")
	cfg.Metrics.Enabled = v.GetBool("metrics.enabled")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("scheduler.storage", model.StorageMemory)
	v.SetDefault("scheduler.timezone", "UTC")
	v.SetDefault("scheduler.relative_dates", false)
	v.SetDefault("rate_limit.requests_per_min", 600)

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.output", "stderr")
	v.SetDefault("metrics.enabled", true)
}

func (c *Config) validate() error {
	if !model.Environment(c.Environment.Name).IsValid() {
		return fmt.Errorf("environment.name: unknown environment %q", c.Environment.Name)
	}
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port: %d out of range", c.HTTPServer.Port)
	}
	switch c.HTTPServer.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("http_server.mode: must be debug, release or test, got %q", c.HTTPServer.Mode)
	}

	switch c.Scheduler.Storage {
	case model.StorageMemory, model.StorageSQLite:
	default:
		return fmt.Errorf("scheduler.storage: unknown driver %q", c.Scheduler.Storage)
	}
	if _, err := time.LoadLocation(c.Scheduler.Timezone); err != nil {
		return fmt.Errorf("scheduler.timezone: %w", err)
	}

	switch c.Tracing.Output {
	case "stdout", "stderr":
	default:
		return fmt.Errorf("tracing.output: must be stdout or stderr, got %q", c.Tracing.Output)
	}

	return nil
}
