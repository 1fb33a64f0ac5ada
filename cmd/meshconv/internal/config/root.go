package config

import (
	"github.com/spf13/cobra"
)

// Root contains `config` command definition.
var Root = &cobra.Command{
	Use:   "config",
	Short: "Configuration file related commands",
}

func init() {
	Root.AddCommand(
		initCMD,
	)
}
