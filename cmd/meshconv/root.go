package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rbxasset/meshconv/cmd/internal/cmderr"
	loggerconfig "github.com/rbxasset/meshconv/cmd/meshconv/config/logger"
	common "github.com/rbxasset/meshconv/cmd/meshconv/internal"
	configcmd "github.com/rbxasset/meshconv/cmd/meshconv/internal/config"
	"github.com/rbxasset/meshconv/cmd/meshconv/internal/mesh"
	"github.com/rbxasset/meshconv/cmd/meshconv/internal/place"
	"github.com/rbxasset/meshconv/misc"
	"github.com/rbxasset/meshconv/pkg/util/autocomplete"
)

var command = &cobra.Command{
	Use:   "meshconv",
	Short: "Roblox mesh conversion tool",
	Long: `MeshConv converts Roblox mesh containers to and from Wavefront OBJ documents
and rewrites place files so that older clients accept them.`,
	RunE:             entryPoint,
	PersistentPreRun: initLogger,
	SilenceUsage:     true,
	SilenceErrors:    true,
}

func entryPoint(cmd *cobra.Command, _ []string) error {
	printVersion, _ := cmd.Flags().GetBool("version")
	if printVersion {
		cmd.Print(misc.BuildInfo("MeshConv Tool"))

		return nil
	}

	return cmd.Usage()
}

// initLogger replaces the global zap logger with one built from the
// configuration. The verbose flag overrides the configured level.
func initLogger(cmd *cobra.Command, _ []string) {
	lvl := loggerconfig.Level(common.Config(cmd))
	if verbose, _ := cmd.Flags().GetBool(common.VerboseFlag); verbose {
		lvl = "debug"
	}

	level, err := zap.ParseAtomicLevel(lvl)
	common.ExitOnErr(cmd, "invalid logging level: %w", err)

	c := zap.NewProductionConfig()
	c.Level = level
	c.Encoding = "console"
	c.Sampling = nil
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	log, err := c.Build(
		zap.AddStacktrace(zap.NewAtomicLevelAt(zap.FatalLevel)),
	)
	common.ExitOnErr(cmd, "initialize logger: %w", err)

	zap.ReplaceGlobals(log)
}

func init() {
	// use stdout as default output for cmd.Print()
	command.SetOut(os.Stdout)
	command.Flags().Bool("version", false, "Application version")

	pf := command.PersistentFlags()
	pf.StringP(common.ConfigFlag, common.ConfigFlagShorthand, "", common.ConfigFlagUsage)
	pf.BoolP(common.VerboseFlag, common.VerboseFlagShorthand, false, common.VerboseFlagUsage)

	command.AddCommand(
		mesh.Root,
		place.Root,
		configcmd.Root,
		autocomplete.Command("meshconv"),
	)
}

func main() {
	err := command.Execute()
	cmderr.ExitOnErr(err)
}
