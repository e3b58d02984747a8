package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Routing engine
	Router RouterConfig

	// Downstream CRM
	CRM CRMConfig
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

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type RouterConfig struct {
	// RulesFile replaces the embedded rule set when set.
	RulesFile     string
	CacheSize     int
	GuardsEnabled bool
}

type CRMConfig struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	AccessToken  string
	APIVersion   string
	Timeout      time.Duration
	DryRun       bool
	// Actions overrides the CRM action name per tool name.
	Actions map[string]string
}

// Configured reports whether live calls can be attempted.
func (c CRMConfig) Configured() bool {
	if c.BaseURL == "" {
		return false
	}
	return c.AccessToken != "" || (c.ClientID != "" && c.ClientSecret != "" && c.TokenURL != "")
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Router
	cfg.Router.RulesFile = viper.GetString("router.rules_file")
	cfg.Router.CacheSize = viper.GetInt("router.cache_size")
	cfg.Router.GuardsEnabled = viper.GetBool("router.guards_enabled")

	// CRM
	cfg.CRM.BaseURL = viper.GetString("crm.base_url")
	cfg.CRM.TokenURL = viper.GetString("crm.token_url")
	cfg.CRM.ClientID = viper.GetString("crm.client_id")
	cfg.CRM.ClientSecret = viper.GetString("crm.client_secret")
	cfg.CRM.AccessToken = viper.GetString("crm.access_token")
	cfg.CRM.APIVersion = viper.GetString("crm.api_version")
	cfg.CRM.Timeout = viper.GetDuration("crm.timeout")
	cfg.CRM.DryRun = viper.GetBool("crm.dry_run")
	cfg.CRM.Actions = viper.GetStringMapString("crm.actions")

	// DRY_RUN is accepted as a shorthand for crm.dry_run.
	if viper.IsSet("dry_run") {
		cfg.CRM.DryRun = viper.GetBool("dry_run")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Router.CacheSize < 0 {
		return fmt.Errorf("router.cache_size must not be negative")
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	if !c.CRM.DryRun && !c.CRM.Configured() {
		return fmt.Errorf("crm.dry_run is false but crm.base_url and credentials are not set")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)

	viper.SetDefault("router.cache_size", 1024)
	viper.SetDefault("router.guards_enabled", true)

	viper.SetDefault("crm.api_version", "v58.0")
	viper.SetDefault("crm.timeout", "30s")
	viper.SetDefault("crm.dry_run", true)
}
