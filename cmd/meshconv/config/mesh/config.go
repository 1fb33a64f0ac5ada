package meshconfig

import (
	"github.com/rbxasset/meshconv/cmd/meshconv/config"
)

const (
	subsection = "mesh"

	// VersionDefault is a default mesh container version of produced files.
	VersionDefault = "2.00"
)

// Version returns the value of "version" config parameter
// from "mesh" section.
//
// Returns VersionDefault if the value is not a non-empty string.
func Version(c *config.Config) string {
	v := config.StringSafe(c.Sub(subsection), "version")
	if v != "" {
		return v
	}

	return VersionDefault
}
