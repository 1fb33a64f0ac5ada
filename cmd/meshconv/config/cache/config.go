package cacheconfig

import (
	"github.com/rbxasset/meshconv/cmd/meshconv/config"
)

const (
	subsection = "cache"

	// EnabledDefault is a default conversion cache state.
	EnabledDefault = true

	// CompressionDefault is a default compression state of stored entries.
	CompressionDefault = true
)

// Enabled returns the value of "enabled" config parameter
// from "cache" section.
//
// Returns EnabledDefault if the value is missing.
func Enabled(c *config.Config) bool {
	s := c.Sub(subsection)
	if s.Value("enabled") == nil {
		return EnabledDefault
	}

	return config.BoolSafe(s, "enabled")
}

// Path returns the value of "path" config parameter
// from "cache" section.
//
// Returns an empty string if the value is missing, the caller picks
// a location under the user home directory then.
func Path(c *config.Config) string {
	return config.StringSafe(c.Sub(subsection), "path")
}

// Compression returns the value of "compression" config parameter
// from "cache" section.
//
// Returns CompressionDefault if the value is missing.
func Compression(c *config.Config) bool {
	s := c.Sub(subsection)
	if s.Value("compression") == nil {
		return CompressionDefault
	}

	return config.BoolSafe(s, "compression")
}

// Capacity returns the value of "capacity" config parameter
// from "cache" section.
//
// Returns 0 if the value is not a positive number, the cache falls
// back to its own default then.
func Capacity(c *config.Config) int {
	v := config.IntSafe(c.Sub(subsection), "capacity")
	if v > 0 {
		return int(v)
	}

	return 0
}
