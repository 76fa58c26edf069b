package vahan

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all service configuration.
type Config struct {
	// Brand is the attribution field included in every payload.
	Brand string `yaml:"brand"`

	Server ServerConfig `yaml:"server"`
	Access AccessConfig `yaml:"access"`
	Fetch  FetchConfig  `yaml:"fetch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// AccessConfig holds access-gate settings.
type AccessConfig struct {
	AdminKey     string `yaml:"admin_key"`
	TempKey      string `yaml:"temp_key"`
	TTLHours     int    `yaml:"ttl_hours"`
	MaxPerSource int    `yaml:"max_per_source"`
	AuditLimit   int    `yaml:"audit_limit"`
}

// FetchConfig holds upstream fetch settings.
type FetchConfig struct {
	BaseURL         string  `yaml:"base_url"`
	TimeoutSeconds  int     `yaml:"timeout_seconds"`
	RatePerSecond   float64 `yaml:"rate_per_second"`
	CacheTTLMinutes int     `yaml:"cache_ttl_minutes"`
}

// DefaultConfig returns the built-in configuration, matching the
// documented defaults (24h temporary-key window, 20 requests per
// source, 10s fetch timeout).
func DefaultConfig() Config {
	return Config{
		Brand: "Kalyug",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Access: AccessConfig{
			TTLHours:     24,
			MaxPerSource: DefaultMaxPerSource,
			AuditLimit:   DefaultAuditLimit,
		},
		Fetch: FetchConfig{
			BaseURL:         "https://vahanx.in",
			TimeoutSeconds:  10,
			RatePerSecond:   2,
			CacheTTLMinutes: 5,
		},
	}
}

// LoadConfig reads a YAML config file, layering it over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// GateConfig converts the access settings for NewGate.
func (c AccessConfig) GateConfig() GateConfig {
	return GateConfig{
		AdminKey:     c.AdminKey,
		TempKey:      c.TempKey,
		TTL:          time.Duration(c.TTLHours) * time.Hour,
		MaxPerSource: c.MaxPerSource,
		AuditLimit:   c.AuditLimit,
	}
}

// Timeout returns the fetch timeout as a duration.
func (c FetchConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CacheTTL returns the detail-page cache TTL as a duration.
func (c FetchConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}
