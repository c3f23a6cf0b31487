package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration values
type Config struct {
	Port            string        `yaml:"port"`
	GinMode         string        `yaml:"gin_mode"`
	DevMode         bool          `yaml:"dev_mode"`
	LogLevel        string        `yaml:"log_level"`
	LogFile         string        `yaml:"log_file"`
	SubmissionDelay time.Duration `yaml:"submission_delay"`
	SourceLabel     string        `yaml:"source_label"`
	ServiceName     string        `yaml:"service_name"`
	ServiceVersion  string        `yaml:"service_version"`
	StaticDir       string        `yaml:"static_dir"`
	CatalogFile     string        `yaml:"catalog_file"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	TrustedProxies  []string      `yaml:"trusted_proxies"`
	SSL             bool          `yaml:"ssl"`
	MetricsEnabled  bool          `yaml:"metrics_enabled"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// Form client settings
	APIURL        string        `yaml:"api_url"`
	ClientTimeout time.Duration `yaml:"client_timeout"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Port:            "3000",
		GinMode:         "release",
		LogLevel:        "info",
		LogFile:         ".logs/gallery.log",
		SubmissionDelay: time.Second,
		SourceLabel:     "Vincent Gallery",
		ServiceName:     "Vincent Gallery API",
		ServiceVersion:  "1.0.0",
		AllowedOrigins:  []string{"*"},
		MetricsEnabled:  true,
		ShutdownTimeout: 10 * time.Second,
		APIURL:          "http://localhost:3000",
	}
}

// LoadConfig reads defaults, then the optional YAML file named by GALLERY_CONFIG,
// then environment variables
func LoadConfig() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("GALLERY_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	list := func(key string, dst *[]string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = splitList(v)
		}
	}
	boolean := func(key string, dst *bool) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, v, err)
		}
		*dst = b
		return nil
	}
	duration := func(key string, dst *time.Duration) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, v, err)
		}
		*dst = d
		return nil
	}

	str("PORT", &c.Port)
	str("GIN_MODE", &c.GinMode)
	str("LOG_LEVEL", &c.LogLevel)
	str("SOURCE_LABEL", &c.SourceLabel)
	str("SERVICE_NAME", &c.ServiceName)
	str("SERVICE_VERSION", &c.ServiceVersion)
	str("STATIC_DIR", &c.StaticDir)
	str("CATALOG_FILE", &c.CatalogFile)
	str("GALLERY_API_URL", &c.APIURL)
	list("ALLOWED_ORIGINS", &c.AllowedOrigins)
	list("TRUSTED_PROXIES", &c.TrustedProxies)

	// An explicitly empty LOG_FILE disables the file sink
	if v, ok := lookup("LOG_FILE"); ok {
		c.LogFile = v
	}

	for key, dst := range map[string]*bool{
		"DEV_MODE":        &c.DevMode,
		"SSL":             &c.SSL,
		"METRICS_ENABLED": &c.MetricsEnabled,
	} {
		if err := boolean(key, dst); err != nil {
			return err
		}
	}
	for key, dst := range map[string]*time.Duration{
		"SUBMISSION_DELAY": &c.SubmissionDelay,
		"SHUTDOWN_TIMEOUT": &c.ShutdownTimeout,
		"CLIENT_TIMEOUT":   &c.ClientTimeout,
	} {
		if err := duration(key, dst); err != nil {
			return err
		}
	}

	if c.SubmissionDelay < 0 {
		return fmt.Errorf("invalid SUBMISSION_DELAY %s: must not be negative", c.SubmissionDelay)
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
