package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Probe   ProbeConfig   `yaml:"probe"`
	Sampler SamplerConfig `yaml:"sampler"`
	Storage StorageConfig `yaml:"storage"`
	Window  WindowConfig  `yaml:"window"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type ProbeConfig struct {
	Backend    string `yaml:"backend"`
	MountPath  string `yaml:"mount_path"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

type SamplerConfig struct {
	IntervalSec int `yaml:"interval_sec"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
	Table  string `yaml:"table"`
}

type WindowConfig struct {
	LimitRows     int `yaml:"limit_rows"`
	VisiblePoints int `yaml:"visible_points"`
	// Pointer so an explicit 0 (UTC) survives defaulting.
	TimezoneOffsetHours *int `yaml:"timezone_offset_hours"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Probe.Backend == "" {
		c.Probe.Backend = "df"
	}
	if c.Probe.MountPath == "" {
		c.Probe.MountPath = "/"
	}
	if c.Probe.TimeoutSec == 0 {
		c.Probe.TimeoutSec = 5
	}
	if c.Sampler.IntervalSec == 0 {
		c.Sampler.IntervalSec = 10
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "sqlite"
	}
	if c.Storage.DSN == "" {
		switch c.Storage.Driver {
		case "sqlite":
			c.Storage.DSN = "./data/disk_usage.db"
		case "file":
			c.Storage.DSN = "./data/disk_usage.log"
		}
	}
	if c.Storage.Table == "" {
		c.Storage.Table = "disk_usage"
	}
	if c.Window.LimitRows == 0 {
		// one day of samples at the default interval
		c.Window.LimitRows = 8640
	}
	if c.Window.VisiblePoints == 0 {
		c.Window.VisiblePoints = 100
	}
	if c.Window.TimezoneOffsetHours == nil {
		offset := 9
		c.Window.TimezoneOffsetHours = &offset
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = ":9100"
	}
}

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func (c *Config) validate() error {
	switch c.Probe.Backend {
	case "df", "statfs":
	default:
		return fmt.Errorf("probe.backend %q is not one of df, statfs", c.Probe.Backend)
	}
	if c.Probe.MountPath == "" {
		return fmt.Errorf("probe.mount_path is required")
	}
	if c.Probe.TimeoutSec <= 0 {
		return fmt.Errorf("probe.timeout_sec must be positive")
	}
	if c.Sampler.IntervalSec <= 0 {
		return fmt.Errorf("sampler.interval_sec must be positive")
	}
	switch c.Storage.Driver {
	case "sqlite", "postgres", "file", "memory":
	default:
		return fmt.Errorf("storage.driver %q is not one of sqlite, postgres, file, memory", c.Storage.Driver)
	}
	if c.Storage.Driver != "memory" && c.Storage.DSN == "" {
		return fmt.Errorf("storage.dsn is required for driver %s", c.Storage.Driver)
	}
	if !tableNamePattern.MatchString(c.Storage.Table) {
		return fmt.Errorf("storage.table %q is not a valid identifier", c.Storage.Table)
	}
	if c.Window.LimitRows <= 0 {
		return fmt.Errorf("window.limit_rows must be positive")
	}
	if c.Window.VisiblePoints <= 0 {
		return fmt.Errorf("window.visible_points must be positive")
	}
	if c.Metrics.Addr == "" {
		return fmt.Errorf("metrics.addr is required")
	}
	return nil
}

// Interval returns the sampling period.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Sampler.IntervalSec) * time.Second
}

// ProbeTimeout bounds one probe invocation.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.Probe.TimeoutSec) * time.Second
}

// TimezoneOffset is the presentation shift applied to loaded windows.
func (c *Config) TimezoneOffset() time.Duration {
	if c.Window.TimezoneOffsetHours == nil {
		return 9 * time.Hour
	}
	return time.Duration(*c.Window.TimezoneOffsetHours) * time.Hour
}
