package place

import (
	"github.com/spf13/cobra"
)

var (
	vFoldersToModels bool
	vMeshParts       bool
	vAssetIDToURL    bool
	vAssetURLFormat  string
	vMappingsFile    string
)

// Root contains `place` command definition.
var Root = &cobra.Command{
	Use:   "place",
	Short: "Operations with place documents",
}

func init() {
	Root.AddCommand(
		fixCMD,
	)
}
