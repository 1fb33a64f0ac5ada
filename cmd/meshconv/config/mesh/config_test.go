package meshconfig_test

import (
	"testing"

	"github.com/rbxasset/meshconv/cmd/meshconv/config"
	meshconfig "github.com/rbxasset/meshconv/cmd/meshconv/config/mesh"
	configtest "github.com/rbxasset/meshconv/cmd/meshconv/config/test"
	"github.com/stretchr/testify/require"
)

func TestMeshSection(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		require.Equal(t, meshconfig.VersionDefault, meshconfig.Version(configtest.EmptyConfig()))
	})

	const path = "../../../../config/example/meshconv"

	var fileConfigTest = func(c *config.Config) {
		require.Equal(t, "4.00", meshconfig.Version(c))
	}

	configtest.ForEachFileType(path, fileConfigTest)
}
