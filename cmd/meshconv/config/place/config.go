package placeconfig

import (
	"github.com/rbxasset/meshconv/cmd/meshconv/config"
)

const (
	subsection = "place"

	// AssetURLFormatDefault is a default URL prefix asset IDs are
	// rewritten with.
	AssetURLFormatDefault = "http://www.roblox.com/asset/?id="
)

// AssetURLFormat returns the value of "asset_url_format" config parameter
// from "place" section.
//
// Returns AssetURLFormatDefault if the value is not a non-empty string.
func AssetURLFormat(c *config.Config) string {
	v := config.StringSafe(c.Sub(subsection), "asset_url_format")
	if v != "" {
		return v
	}

	return AssetURLFormatDefault
}
