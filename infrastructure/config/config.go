// Package config loads settings from an optional YAML file, an optional
// .env file and MASQUERADE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"masquerade/domain/entities"
	"masquerade/infrastructure/browser"
	"masquerade/infrastructure/connector"
)

const envPrefix = "MASQUERADE"

const (
	DriverPlaywright = "playwright"
	DriverSelenium   = "selenium"
)

// Config holds every setting of the tool
type Config struct {
	Driver   string        `mapstructure:"driver"`
	Headless bool          `mapstructure:"headless"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	LogLevel string        `mapstructure:"log_level"`
	StateDir string        `mapstructure:"state_dir"`
	Trace    bool          `mapstructure:"trace"`

	Jmx  entities.JmxHost `mapstructure:"jmx"`
	Rest RestConfig       `mapstructure:"rest"`
}

// RestConfig is the REST host plus token caching
type RestConfig struct {
	entities.RestAPIHost `mapstructure:",squash"`
	TokenTTL             time.Duration `mapstructure:"token_ttl"`
}

// Defaults returns the settings used when nothing is configured
func Defaults() Config {
	return Config{
		Driver:   DriverPlaywright,
		Headless: false,
		BaseURL:  "http://localhost:8080/app/",
		Timeout:  browser.DefaultTimeout,
		LogLevel: "info",
		Jmx:      entities.JmxHost{Address: connector.DefaultJmxAddress},
		Rest: RestConfig{
			RestAPIHost: entities.NewRestAPIHost(connector.DefaultRestUser, connector.DefaultRestPass, connector.DefaultRestBaseURL),
			TokenTTL:    10 * time.Minute,
		},
	}
}

// SetDefaults registers Defaults on v so that env variables can override
// every key
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("driver", d.Driver)
	v.SetDefault("headless", d.Headless)
	v.SetDefault("base_url", d.BaseURL)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("state_dir", d.StateDir)
	v.SetDefault("trace", d.Trace)
	v.SetDefault("jmx.host", d.Jmx.Address)
	v.SetDefault("jmx.user", d.Jmx.User)
	v.SetDefault("jmx.password", d.Jmx.Password)
	v.SetDefault("rest.base_url", d.Rest.BaseURL)
	v.SetDefault("rest.user", d.Rest.User)
	v.SetDefault("rest.password", d.Rest.Password)
	v.SetDefault("rest.client_id", d.Rest.ClientID)
	v.SetDefault("rest.client_secret", d.Rest.ClientSecret)
	v.SetDefault("rest.grant_type", d.Rest.GrantType)
	v.SetDefault("rest.token_ttl", d.Rest.TokenTTL)
}

// New returns a viper instance with defaults and environment binding
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads .env (when present) into the environment, then reads v and
// the config file at path (when not empty) into a Config.
func Load(v *viper.Viper, path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return Read(v, path)
}

// Read unmarshals v after reading the optional config file
func Read(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks enumerations and levels
func (c Config) Validate() error {
	switch c.Driver {
	case DriverPlaywright, DriverSelenium:
	default:
		return fmt.Errorf("unknown driver %q: expected %s or %s", c.Driver, DriverPlaywright, DriverSelenium)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// Level returns the parsed log level. Validate has accepted it.
func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// ConnectorOptions turns the remote settings into connector options
func (c Config) ConnectorOptions() []connector.Option {
	return []connector.Option{
		connector.WithJmxHost(c.Jmx),
		connector.WithRestHost(c.Rest.RestAPIHost),
		connector.WithTokenCache(c.Rest.TokenTTL),
	}
}
