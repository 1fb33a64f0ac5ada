package loggerconfig_test

import (
	"testing"

	"github.com/rbxasset/meshconv/cmd/meshconv/config"
	loggerconfig "github.com/rbxasset/meshconv/cmd/meshconv/config/logger"
	configtest "github.com/rbxasset/meshconv/cmd/meshconv/config/test"
	"github.com/stretchr/testify/require"
)

func TestLoggerSection_Level(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		v := loggerconfig.Level(configtest.EmptyConfig())
		require.Equal(t, loggerconfig.LevelDefault, v)
	})

	const path = "../../../../config/example/meshconv"

	var fileConfigTest = func(c *config.Config) {
		v := loggerconfig.Level(c)
		require.Equal(t, "debug", v)
	}

	configtest.ForEachFileType(path, fileConfigTest)
}
