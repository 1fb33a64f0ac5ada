package mesh

import (
	"os"

	"github.com/spf13/cobra"

	common "github.com/rbxasset/meshconv/cmd/meshconv/internal"
	"github.com/rbxasset/meshconv/pkg/filemesh"
	"github.com/rbxasset/meshconv/pkg/objconv"
)

var toObjCMD = &cobra.Command{
	Use:   "to-obj <in.mesh> <out.obj>",
	Short: "Convert a mesh container to a Wavefront OBJ document",
	Long: `Convert a mesh container of any supported version to a Wavefront OBJ
document with positions, texture coordinates and normals.`,
	Args: cobra.ExactArgs(2),
	Run:  toObjFunc,
}

func toObjFunc(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	common.ExitOnErr(cmd, "read mesh file: %w", err)

	m, err := filemesh.Decode(data)
	common.ExitOnErr(cmd, "decode mesh: %w", err)

	err = os.WriteFile(args[1], objconv.ExportBytes(m), 0o644)
	common.ExitOnErr(cmd, "write obj file: %w", err)

	cmd.Printf("[%s] Saved as OBJ: %d vertices, %d faces\n",
		args[1], len(m.Vertices), len(m.Faces))
}
