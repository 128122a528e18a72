package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Image       ImageConfig       `mapstructure:"image"`
	Registry    RegistryConfig    `mapstructure:"registry"`
	Deploy      DeployConfig      `mapstructure:"deploy"`
	HealthCheck HealthCheckConfig `mapstructure:"healthcheck"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type ImageConfig struct {
	Name string `mapstructure:"name"`
	Tag  string `mapstructure:"tag"`
}

type RegistryConfig struct {
	Host     string `mapstructure:"host"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type DeployConfig struct {
	ContainerName string `mapstructure:"container_name"`
	Network       string `mapstructure:"network"`
	ContextDir    string `mapstructure:"context_dir"`
}

type HealthCheckConfig struct {
	Path        string        `mapstructure:"path"`
	Interval    time.Duration `mapstructure:"interval"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Retries     int           `mapstructure:"retries"`
	StartPeriod time.Duration `mapstructure:"start_period"`
}

func Load() (*Config, error) {
	var cfg Config

	// Set defaults
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("image.name", "skiff")
	viper.SetDefault("image.tag", "latest")
	viper.SetDefault("deploy.container_name", "skiff")
	viper.SetDefault("deploy.context_dir", ".")
	viper.SetDefault("healthcheck.path", "/health")
	viper.SetDefault("healthcheck.interval", 10*time.Second)
	viper.SetDefault("healthcheck.timeout", 5*time.Second)
	viper.SetDefault("healthcheck.retries", 3)
	viper.SetDefault("healthcheck.start_period", 15*time.Second)

	// Keys without a default are invisible to Unmarshal unless they appear
	// in the config file or are bound explicitly; AutomaticEnv alone does
	// not surface them. These are exactly the env-only CI settings.
	for _, key := range []string{
		"registry.host",
		"registry.username",
		"registry.password",
		"deploy.network",
	} {
		if err := viper.BindEnv(key); err != nil {
			return nil, fmt.Errorf("unable to bind env for %s: %w", key, err)
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Image.Name == "" {
		return nil, fmt.Errorf("image.name is required")
	}
	if strings.ContainsAny(cfg.Image.Name, " :") {
		return nil, fmt.Errorf("image.name must not contain spaces or tags (got %q)", cfg.Image.Name)
	}

	if err := validateTag(cfg.Image.Tag); err != nil {
		return nil, err
	}

	// Registry host, when set, is just the host[:port] part of an image
	// reference. Credentials and paths belong elsewhere.
	if cfg.Registry.Host != "" {
		if strings.Contains(cfg.Registry.Host, "://") || strings.Contains(cfg.Registry.Host, "/") {
			return nil, fmt.Errorf("registry.host should be just the host name (e.g. 'registry.example.com')")
		}
	}

	if (cfg.Registry.Username == "") != (cfg.Registry.Password == "") {
		return nil, fmt.Errorf("registry.username and registry.password must be set together")
	}

	if cfg.HealthCheck.Interval <= 0 {
		return nil, fmt.Errorf("healthcheck.interval must be positive")
	}
	if cfg.HealthCheck.Timeout <= 0 {
		return nil, fmt.Errorf("healthcheck.timeout must be positive")
	}
	if cfg.HealthCheck.Retries < 1 {
		return nil, fmt.Errorf("healthcheck.retries must be at least 1")
	}
	if cfg.HealthCheck.StartPeriod < 0 {
		return nil, fmt.Errorf("healthcheck.start_period must not be negative")
	}

	return &cfg, nil
}

// validateTag accepts "latest" or a semantic version, with or without
// a leading "v".
func validateTag(tag string) error {
	if tag == "" {
		return fmt.Errorf("image.tag is required")
	}
	if tag == "latest" {
		return nil
	}
	if _, err := semver.NewVersion(tag); err != nil {
		return fmt.Errorf("image.tag must be 'latest' or a semantic version, got %q: %w", tag, err)
	}
	return nil
}

// ImageRef returns the image reference the pipeline builds and deploys,
// including the registry host when one is configured.
func (c *Config) ImageRef() string {
	ref := fmt.Sprintf("%s:%s", c.Image.Name, c.Image.Tag)
	if c.Registry.Host != "" {
		ref = fmt.Sprintf("%s/%s", c.Registry.Host, ref)
	}
	return ref
}

// LocalImageRef returns the registry-less reference used for the local
// build before tagging.
func (c *Config) LocalImageRef() string {
	return fmt.Sprintf("%s:%s", c.Image.Name, c.Image.Tag)
}
