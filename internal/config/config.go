package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Port           string
	APIURL         string
	APITimeout     time.Duration
	RedisAddr      string
	RedisPassword  string
	SessionTTL     time.Duration
	AllowedOrigins []string
	LogLevel       string
	LogFormat      string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("api_url", "http://localhost:5000")
	v.SetDefault("api_timeout", 10*time.Second)
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("session_ttl", 24*time.Hour)
	v.SetDefault("allowed_origins", []string{"http://localhost:8080"})
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
}

// Flags declares the command-line overrides of the configuration.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("aliquis-web", pflag.ContinueOnError)
	fs.String("port", "", "HTTP listen port")
	fs.String("api-url", "", "base URL of the account service")
	fs.String("redis-addr", "", "Redis address")
	fs.String("log-level", "", "debug, info, warn or error")
	return fs
}

// Load reads the configuration from the environment (ALIQUIS_ prefix) and
// from the flags that were set in fs, which may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("aliquis")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for key, flag := range map[string]string{
			"port":       "port",
			"api_url":    "api-url",
			"redis_addr": "redis-addr",
			"log_level":  "log-level",
		} {
			if f := fs.Lookup(flag); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}

	cfg := &Config{
		Port:           v.GetString("port"),
		APIURL:         v.GetString("api_url"),
		APITimeout:     v.GetDuration("api_timeout"),
		RedisAddr:      v.GetString("redis_addr"),
		RedisPassword:  v.GetString("redis_password"),
		SessionTTL:     v.GetDuration("session_ttl"),
		AllowedOrigins: v.GetStringSlice("allowed_origins"),
		LogLevel:       v.GetString("log_level"),
		LogFormat:      v.GetString("log_format"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.APIURL == "":
		return fmt.Errorf("config: api_url is required")
	case c.SessionTTL <= 0:
		return fmt.Errorf("config: session_ttl must be positive, got %s", c.SessionTTL)
	case c.APITimeout <= 0:
		return fmt.Errorf("config: api_timeout must be positive, got %s", c.APITimeout)
	}
	return nil
}
