package config

import (
	"fmt"
	"strings"
)

var validLogFormats = map[string]struct{}{
	"console": {},
	"json":    {},
}

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Validate checks configuration values the rest of the tool depends on.
func (c *Config) Validate() error {
	if len(c.Import.SupportedExtensions) == 0 {
		return fmt.Errorf("import.supported_extensions: at least one extension is required")
	}
	for _, ext := range c.Import.SupportedExtensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("import.supported_extensions: %q is not a valid extension", ext)
		}
	}
	if c.Import.DefaultFrameRate <= 0 {
		return fmt.Errorf("import.default_frame_rate: %v must be positive", c.Import.DefaultFrameRate)
	}
	if c.Downloads.TimeoutSeconds < 1 {
		return fmt.Errorf("downloads.timeout_seconds: %d must be at least 1", c.Downloads.TimeoutSeconds)
	}
	if c.Downloads.Workers < 1 {
		return fmt.Errorf("downloads.workers: %d must be at least 1", c.Downloads.Workers)
	}
	if _, ok := validLogFormats[c.Logging.Format]; !ok {
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	if _, ok := validLogLevels[c.Logging.Level]; !ok {
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
