package place

import (
	"encoding/xml"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Options control the conversion passes of Apply.
type Options struct {
	// FoldersToModels turns Folder instances into Models.
	FoldersToModels bool
	// ConvertMeshParts rewrites MeshPart instances into Parts carrying a
	// SpecialMesh child.
	ConvertMeshParts bool
	// ConvertAssetIDToURL rewrites rbxassetid uris in Content properties
	// using AssetURLFormat.
	ConvertAssetIDToURL bool
	// AssetURLFormat is the prefix the numeric asset id is appended to.
	AssetURLFormat string
	// ClassMappings renames instance classes before any other pass runs.
	ClassMappings map[string]string
}

// Result counts the conversions applied to one document.
type Result struct {
	MappedClasses     int
	MeshParts         int
	SkippedMeshParts  int
	Folders           int
	KeyframeSequences int
	FontSizes         int
	AssetURLs         int
}

// Apply runs the conversion passes over every instance of doc in document
// order and reports what changed.
//
// A MeshPart that cannot be rewritten, because its sizes are missing or
// zero, is left as is and the remaining passes skip that instance.
func Apply(doc *Document, opts Options) Result {
	var res Result
	lg := zap.L().With(zap.String("component", "place.converter"))

	for _, it := range doc.Descendants() {
		if newClass, ok := opts.ClassMappings[it.Class]; ok {
			lg.Info("mapped instance class",
				zap.String("name", it.Name()),
				zap.String("from", it.Class),
				zap.String("to", newClass))
			it.Class = newClass
			res.MappedClasses++
		}

		if opts.ConvertMeshParts && it.Class == "MeshPart" {
			if !convertMeshPart(it, lg) {
				res.SkippedMeshParts++
				continue
			}
			res.MeshParts++
		}

		if opts.FoldersToModels && it.Class == "Folder" {
			lg.Info("converted folder to model", zap.String("name", it.Name()))
			it.Class = "Model"
			res.Folders++
		}

		if it.Class == "KeyframeSequence" {
			it.Class = "Part"
			lg.Info("converted keyframesequence to part for old client compatibility",
				zap.String("name", it.Name()))
			res.KeyframeSequences++
		}

		if convertTextSize(it, lg) {
			res.FontSizes++
		}

		if opts.ConvertAssetIDToURL {
			res.AssetURLs += convertAssetURLs(it, opts.AssetURLFormat, lg)
		}
	}

	return res
}

// convertMeshPart rewrites a MeshPart item into a Part with a SpecialMesh
// child scaled by Size over InitialSize. Returns false when the item lacks
// the properties the rewrite needs.
func convertMeshPart(it *Item, lg *zap.Logger) bool {
	name := it.Name()

	initial, ok := it.Prop("InitialSize").Vector3()
	if !ok {
		lg.Info("meshpart missing InitialSize, conversion skipped", zap.String("name", name))
		return false
	}

	size, ok := it.Prop("Size").Vector3()
	if !ok {
		lg.Info("meshpart missing Size, conversion skipped", zap.String("name", name))
		return false
	}

	if initial[0] == 0 || initial[1] == 0 || initial[2] == 0 {
		lg.Info("meshpart has zero InitialSize, conversion skipped", zap.String("name", name))
		return false
	}

	scale := [3]float32{
		size[0] / initial[0],
		size[1] / initial[1],
		size[2] / initial[2],
	}

	it.Class = "Part"

	meshID := Property{XMLName: xml.Name{Local: "Content"}, Name: "MeshId", Inner: "<url></url>"}
	if p := it.Prop("MeshId"); p != nil {
		meshID = Property{XMLName: p.XMLName, Name: "MeshId", Inner: p.Inner}
	}

	it.Items = append(it.Items, &Item{
		Class:    "SpecialMesh",
		Referent: NewReferent(),
		Properties: &Properties{Props: []Property{
			stringProp("Name", "Mesh"),
			vector3Prop("Scale", scale),
			tokenProp("MeshType", 5),
			meshID,
		}},
	})

	lg.Info("converted meshpart to part with specialmesh",
		zap.String("name", name),
		zap.Float32s("scale", scale[:]))

	return true
}

// convertTextSize replaces a numeric TextSize property with the nearest
// legacy FontSize token. Non-numeric TextSize values are reported and left
// alone.
func convertTextSize(it *Item, lg *zap.Logger) bool {
	if it.Properties == nil {
		return false
	}

	var fontSize *Property

	for i := range it.Properties.Props {
		p := &it.Properties.Props[i]
		if p.Name != "TextSize" {
			continue
		}

		ts, ok := p.numericValue()
		if !ok {
			lg.Info("textsize has unexpected type",
				zap.String("name", it.Name()),
				zap.String("type", p.XMLName.Local))
			continue
		}

		enum := normalizeFontSize(fontEnumFromTextSize(ts))
		fontSize = &Property{
			XMLName: xml.Name{Local: "token"},
			Name:    "FontSize",
			Inner:   strconv.FormatUint(uint64(enum), 10),
		}

		lg.Info("converted TextSize to FontSize",
			zap.Int64("textSize", ts),
			zap.String("name", it.Name()),
			zap.String("fontSize", fontSizeName(enum)))
	}

	if fontSize == nil {
		return false
	}

	it.SetProp(*fontSize)
	it.RemoveProp("TextSize")

	return true
}

// convertAssetURLs rewrites every rbxassetid uri of the item into the
// configured url form, returning how many properties changed. Uris whose
// id part is not a plain number are left alone.
func convertAssetURLs(it *Item, urlFormat string, lg *zap.Logger) int {
	if it.Properties == nil {
		return 0
	}

	var n int

	for i := range it.Properties.Props {
		p := &it.Properties.Props[i]

		uri, ok := p.contentURI()
		if !ok {
			continue
		}

		id, ok := strings.CutPrefix(uri, "rbxassetid://")
		if !ok {
			continue
		}
		if _, err := strconv.ParseUint(id, 10, 64); err != nil {
			continue
		}

		newURL := urlFormat + id
		p.setContentURI(newURL)
		n++

		lg.Info("converted asset id to url",
			zap.String("name", it.Name()),
			zap.String("property", p.Name),
			zap.String("url", newURL))
	}

	return n
}
