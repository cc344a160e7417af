package config

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces every variable, e.g. SUP_APP_ADDR.
const envPrefix = "SUP"

// devSessionSecret is only accepted when APP_ENV is "development".
const devSessionSecret = "speakup-development-session-secret"

// Provider is the read-only view of configuration the rest of the
// application depends on.
type Provider interface {
	GetAppEnv() string
	GetAppAddr() string
	GetSessionSecret() string
	GetLogFormat() string
	GetLogLevel() string
	GetLeadSink() string
	GetThemePrimary() string
	GetThemeAccent() string
	GetFormRateLimit() int
}

// Config holds all configuration for the application.
type Config struct {
	AppEnv        string `envconfig:"APP_ENV" default:"development"`
	AppAddr       string `envconfig:"APP_ADDR" default:":8080"`
	SessionSecret string `envconfig:"SESSION_SECRET"`
	LogFormat     string `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	LeadSink      string `envconfig:"LEAD_SINK" default:"log"`
	ThemePrimary  string `envconfig:"THEME_PRIMARY" default:"#014782"`
	ThemeAccent   string `envconfig:"THEME_ACCENT" default:"#FDC412"`
	FormRateLimit int    `envconfig:"FORM_RATE_LIMIT" default:"10"`
}

// Compile-time interface compliance check
var _ Provider = (*Config)(nil)

// New loads configuration from an optional .env file and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet, so the standard logger is used here.
		log.Println("No .env file found, relying on environment variables")
	}
	return Load()
}

// Load decodes the environment into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.SessionSecret == "" {
		if c.AppEnv != "development" {
			return fmt.Errorf("%s_SESSION_SECRET must be set when %s_APP_ENV is %q", envPrefix, envPrefix, c.AppEnv)
		}
		c.SessionSecret = devSessionSecret
	}
	if len(c.SessionSecret) < 16 {
		return fmt.Errorf("%s_SESSION_SECRET must be at least 16 characters", envPrefix)
	}
	if c.FormRateLimit <= 0 {
		return fmt.Errorf("%s_FORM_RATE_LIMIT must be positive, got %d", envPrefix, c.FormRateLimit)
	}
	// Theme colors end up inside an inline <style> block.
	v := validator.New()
	for name, color := range map[string]string{"THEME_PRIMARY": c.ThemePrimary, "THEME_ACCENT": c.ThemeAccent} {
		if err := v.Var(color, "required,hexcolor"); err != nil {
			return fmt.Errorf("%s_%s must be a hex color, got %q", envPrefix, name, color)
		}
	}
	return nil
}

func (c *Config) GetAppEnv() string        { return c.AppEnv }
func (c *Config) GetAppAddr() string       { return c.AppAddr }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetLogFormat() string     { return c.LogFormat }
func (c *Config) GetLogLevel() string      { return c.LogLevel }
func (c *Config) GetLeadSink() string      { return c.LeadSink }
func (c *Config) GetThemePrimary() string  { return c.ThemePrimary }
func (c *Config) GetThemeAccent() string   { return c.ThemeAccent }
func (c *Config) GetFormRateLimit() int    { return c.FormRateLimit }
