package mesh

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	meshconfig "github.com/rbxasset/meshconv/cmd/meshconv/config/mesh"
	common "github.com/rbxasset/meshconv/cmd/meshconv/internal"
	"github.com/rbxasset/meshconv/pkg/filemesh"
)

var (
	vMeshVersion string

	vInputDir   string
	vOutputDir  string
	vToOBJ      bool
	vWorkers    int
	vNoProgress bool
	vReport     string
)

// Root contains `mesh` command definition.
var Root = &cobra.Command{
	Use:   "mesh",
	Short: "Operations with mesh geometry files",
}

func init() {
	Root.AddCommand(
		fromObjCMD,
		toObjCMD,
		infoCMD,
		batchCMD,
	)
}

// targetVersion resolves the container version of produced mesh files from
// the version flag, falling back to the configuration.
func targetVersion(cmd *cobra.Command) (filemesh.Version, error) {
	s := vMeshVersion
	if s == "" {
		s = meshconfig.Version(common.Config(cmd))
	}

	v, err := filemesh.ParseVersion(strings.TrimPrefix(strings.ToLower(s), "v"))
	if err != nil {
		return 0, fmt.Errorf("invalid mesh version %q: %w", s, err)
	}

	return v, nil
}
