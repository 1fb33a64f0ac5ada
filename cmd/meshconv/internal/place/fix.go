package place

import (
	"os"

	"github.com/spf13/cobra"

	placeconfig "github.com/rbxasset/meshconv/cmd/meshconv/config/place"
	common "github.com/rbxasset/meshconv/cmd/meshconv/internal"
	"github.com/rbxasset/meshconv/pkg/place"
)

const (
	foldersToModelsFlag = "folders-to-models"
	meshPartsFlag       = "convert-meshparts"
	assetIDToURLFlag    = "convert-assetid-to-url"
	assetURLFormatFlag  = "asset-url-format"
	mappingsFileFlag    = "mappings-file"
)

var fixCMD = &cobra.Command{
	Use:   "fix <in.rbxlx> <out.rbxlx>",
	Short: "Rewrite a place document for older clients",
	Long: `Rewrite an XML place document so that older clients accept it. Instances
unknown to them are renamed or rebuilt, modern font sizes are snapped to the
legacy enumeration and asset references are rewritten as plain URLs. Which
passes run is picked with the flags below, KeyframeSequence and font fixes
always apply.`,
	Args: cobra.ExactArgs(2),
	Run:  fixFunc,
}

func init() {
	ff := fixCMD.Flags()

	ff.BoolVar(&vFoldersToModels, foldersToModelsFlag, false, "Convert Folder instances to Model")
	ff.BoolVar(&vMeshParts, meshPartsFlag, false, "Convert MeshPart instances to Part with a child SpecialMesh")
	ff.BoolVar(&vAssetIDToURL, assetIDToURLFlag, false, "Rewrite rbxassetid:// references as asset URLs")
	ff.StringVar(&vAssetURLFormat, assetURLFormatFlag, "", "URL prefix for rewritten asset references, defaults to the configuration")
	ff.StringVar(&vMappingsFile, mappingsFileFlag, "", "JSON file with instance class mappings")
}

func fixFunc(cmd *cobra.Command, args []string) {
	opts := place.Options{
		FoldersToModels:     vFoldersToModels,
		ConvertMeshParts:    vMeshParts,
		ConvertAssetIDToURL: vAssetIDToURL,
		AssetURLFormat:      vAssetURLFormat,
	}

	if opts.AssetURLFormat == "" {
		opts.AssetURLFormat = placeconfig.AssetURLFormat(common.Config(cmd))
	}

	if vMappingsFile != "" {
		m, err := place.LoadClassMappings(vMappingsFile)
		common.ExitOnErr(cmd, "", err)

		opts.ClassMappings = m
	}

	data, err := os.ReadFile(args[0])
	common.ExitOnErr(cmd, "read place file: %w", err)

	doc, err := place.Load(data)
	common.ExitOnErr(cmd, "", err)

	res := place.Apply(doc, opts)

	out, err := doc.Save()
	common.ExitOnErr(cmd, "serialize place: %w", err)

	err = os.WriteFile(args[1], out, 0o644)
	common.ExitOnErr(cmd, "write place file: %w", err)

	cmd.Printf("Rewrote %s to %s\n", args[0], args[1])
	cmd.Printf("  mapped classes: %d\n", res.MappedClasses)
	cmd.Printf("  meshparts: %d (%d skipped)\n", res.MeshParts, res.SkippedMeshParts)
	cmd.Printf("  folders: %d\n", res.Folders)
	cmd.Printf("  keyframe sequences: %d\n", res.KeyframeSequences)
	cmd.Printf("  font sizes: %d\n", res.FontSizes)
	cmd.Printf("  asset urls: %d\n", res.AssetURLs)
}
