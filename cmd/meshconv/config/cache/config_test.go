package cacheconfig_test

import (
	"testing"

	"github.com/rbxasset/meshconv/cmd/meshconv/config"
	cacheconfig "github.com/rbxasset/meshconv/cmd/meshconv/config/cache"
	configtest "github.com/rbxasset/meshconv/cmd/meshconv/config/test"
	"github.com/stretchr/testify/require"
)

func TestCacheSection(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		empty := configtest.EmptyConfig()

		require.Equal(t, cacheconfig.EnabledDefault, cacheconfig.Enabled(empty))
		require.Equal(t, cacheconfig.CompressionDefault, cacheconfig.Compression(empty))
		require.Empty(t, cacheconfig.Path(empty))
		require.Zero(t, cacheconfig.Capacity(empty))
	})

	const path = "../../../../config/example/meshconv"

	var fileConfigTest = func(c *config.Config) {
		require.False(t, cacheconfig.Enabled(c))
		require.False(t, cacheconfig.Compression(c))
		require.Equal(t, "/srv/meshconv/cache.db", cacheconfig.Path(c))
		require.Equal(t, 64, cacheconfig.Capacity(c))
	}

	configtest.ForEachFileType(path, fileConfigTest)
}
