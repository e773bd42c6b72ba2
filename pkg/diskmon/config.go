package diskmon

import (
	"github.com/u1and0/DiskUsageMonitor/internal/app/config"
)

// Config re-exports the root configuration struct so downstream projects can
// construct or modify it programmatically.
type Config = config.Config

type (
	// ProbeConfig selects the measurement backend, mount path, and timeout.
	ProbeConfig = config.ProbeConfig
	// SamplerConfig sets the sampling period.
	SamplerConfig = config.SamplerConfig
	// StorageConfig selects the store driver, its DSN, and the table name.
	StorageConfig = config.StorageConfig
	// WindowConfig caps the display window and sets the presentation timezone.
	WindowConfig = config.WindowConfig
	// MetricsConfig configures the metrics HTTP server.
	MetricsConfig = config.MetricsConfig
)

// LoadConfig loads YAML from disk using the internal config reader.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}
