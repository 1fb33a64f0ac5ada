package mesh

import (
	"os"

	"github.com/spf13/cobra"

	common "github.com/rbxasset/meshconv/cmd/meshconv/internal"
	"github.com/rbxasset/meshconv/pkg/filemesh"
	"github.com/rbxasset/meshconv/pkg/objconv"
)

var fromObjCMD = &cobra.Command{
	Use:   "from-obj <in.obj> <out.mesh>",
	Short: "Convert a Wavefront OBJ document to a mesh container",
	Long: `Convert a Wavefront OBJ document to a mesh container of the requested
version. Polygons are triangulated, missing normals and texture coordinates
are filled with defaults.`,
	Args: cobra.ExactArgs(2),
	Run:  fromObjFunc,
}

func init() {
	common.AddMeshVersionFlag(fromObjCMD, &vMeshVersion)
}

func fromObjFunc(cmd *cobra.Command, args []string) {
	ver, err := targetVersion(cmd)
	common.ExitOnErr(cmd, "", err)

	data, err := os.ReadFile(args[0])
	common.ExitOnErr(cmd, "read obj file: %w", err)

	m, err := objconv.ImportBytes(data)
	common.ExitOnErr(cmd, "import obj: %w", err)

	out, err := filemesh.Encode(m, ver)
	common.ExitOnErr(cmd, "encode mesh: %w", err)

	err = os.WriteFile(args[1], out, 0o644)
	common.ExitOnErr(cmd, "write mesh file: %w", err)

	cmd.Printf("[%s] Saved as version %s mesh: %d vertices, %d faces\n",
		args[1], ver, len(m.Vertices), len(m.Faces))
}
