package common

import (
	"github.com/spf13/cobra"
)

// MeshVersionFlag is the name of the mesh container version flag shared by
// the commands producing mesh files.
const MeshVersionFlag = "mesh-version"

// AddMeshVersionFlag adds the mesh container version flag to the command.
// The empty default defers to the configuration file.
func AddMeshVersionFlag(cmd *cobra.Command, v *string) {
	cmd.Flags().StringVar(v, MeshVersionFlag, "",
		`Mesh container version of produced files, e.g. "2.00"`)
}
