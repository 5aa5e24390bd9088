// Package config loads the site configuration with Viper from environment
// variables (prefix TELECARE_), an optional YAML file and defaults.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "TELECARE"

// Directory sources.
const (
	SourceAPI      = "api"
	SourceSupabase = "supabase"
	SourcePostgres = "postgres"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Backend   BackendConfig   `mapstructure:"backend"`
	Directory DirectoryConfig `mapstructure:"directory"`
	Supabase  SupabaseConfig  `mapstructure:"supabase"`
	Postgres  PostgresConfig  `mapstructure:"postgres"`
	Site      SiteConfig      `mapstructure:"site"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	TemplatesDir    string        `mapstructure:"templates_dir"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type BackendConfig struct {
	BaseURL       string        `mapstructure:"base_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	HealthTimeout time.Duration `mapstructure:"health_timeout"`
}

type DirectoryConfig struct {
	Source string `mapstructure:"source"`
}

type SupabaseConfig struct {
	URL     string `mapstructure:"url"`
	AnonKey string `mapstructure:"anon_key"`
}

type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

// SiteConfig holds public site settings. Hostname overrides the request host
// when building professional subdomain links.
type SiteConfig struct {
	Hostname string `mapstructure:"hostname"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// Addr returns host:port for the HTTP listener.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Option adjusts the Viper instance before the config is decoded.
type Option func(v *viper.Viper)

// WithOverride sets key to value above every other source.
func WithOverride(key string, value any) Option {
	return func(v *viper.Viper) {
		v.Set(key, value)
	}
}

// Load reads configuration from the environment and, when configFile is set, from that file.
func Load(configFile string, opts ...Option) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// legacy names used by the frontend build and the old backend deployment
	bindings := map[string][]string{
		"backend.base_url":  {"TELECARE_BACKEND_BASE_URL", "BACKEND_URL", "REACT_APP_BACKEND_URL"},
		"supabase.url":      {"TELECARE_SUPABASE_URL", "SUPABASE_URL"},
		"supabase.anon_key": {"TELECARE_SUPABASE_ANON_KEY", "SUPABASE_ANON_KEY"},
		"postgres.dsn":      {"TELECARE_POSTGRES_DSN", "DATABASE_URL"},
		"server.port":       {"TELECARE_SERVER_PORT", "PORT"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	for _, opt := range opts {
		opt(v)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.templates_dir", "")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("backend.base_url", "")
	v.SetDefault("backend.timeout", 10*time.Second)
	v.SetDefault("backend.health_timeout", 5*time.Second)

	v.SetDefault("directory.source", SourceAPI)
	v.SetDefault("supabase.url", "")
	v.SetDefault("supabase.anon_key", "")
	v.SetDefault("postgres.dsn", "")

	v.SetDefault("site.hostname", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Validate checks required settings and the selected directory source.
func (c *Config) Validate() error {
	var errs []error

	if c.Backend.BaseURL == "" {
		errs = append(errs, errors.New("backend.base_url is required"))
	} else if u, err := url.Parse(c.Backend.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("backend.base_url must be an absolute http(s) URL, got %q", c.Backend.BaseURL))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}

	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode))
	}

	switch c.Directory.Source {
	case SourceAPI:
	case SourceSupabase:
		if c.Supabase.URL == "" || c.Supabase.AnonKey == "" {
			errs = append(errs, errors.New("supabase.url and supabase.anon_key are required for the supabase directory source"))
		}
	case SourcePostgres:
		if c.Postgres.DSN == "" {
			errs = append(errs, errors.New("postgres.dsn is required for the postgres directory source"))
		}
	default:
		errs = append(errs, fmt.Errorf("directory.source must be api, supabase or postgres, got %q", c.Directory.Source))
	}

	if c.Backend.Timeout <= 0 {
		errs = append(errs, errors.New("backend.timeout must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
