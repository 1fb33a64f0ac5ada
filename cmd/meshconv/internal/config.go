package common

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/rbxasset/meshconv/cmd/meshconv/config"
)

// Global flag names shared by every command.
const (
	// ConfigFlag is the name of the global configuration file flag.
	ConfigFlag          = "config"
	ConfigFlagShorthand = "c"
	ConfigFlagUsage     = "Path to the configuration file"

	// VerboseFlag is the name of the global debug logging flag.
	VerboseFlag          = "verbose"
	VerboseFlagShorthand = "v"
	VerboseFlagUsage     = "Verbose log output"
)

// Config reads the application configuration from the file named by the
// global config flag. Without the flag the default location under the user
// home directory is tried, an absent default yields an empty configuration.
func Config(cmd *cobra.Command) *config.Config {
	path, _ := cmd.Flags().GetString(ConfigFlag)

	if path == "" {
		if home, err := homedir.Dir(); err == nil {
			def := filepath.Join(home, ".config", "meshconv", "config.yaml")
			if _, err := os.Stat(def); err == nil {
				path = def
			}
		}
	}

	return config.New(config.Prm{},
		config.WithConfigFile(path),
	)
}
