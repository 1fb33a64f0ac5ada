package place

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, src string) *Document {
	t.Helper()

	doc, err := Load([]byte(src))
	require.NoError(t, err)

	return doc
}

func TestApplyMeshPartConversion(t *testing.T) {
	const src = `<roblox version="4">
	<Item class="MeshPart" referent="RBXMP">
		<Properties>
			<string name="Name">Rock</string>
			<Vector3 name="InitialSize"><X>2</X><Y>4</Y><Z>8</Z></Vector3>
			<Vector3 name="Size"><X>4</X><Y>4</Y><Z>4</Z></Vector3>
			<Content name="MeshId"><url>rbxassetid://12345</url></Content>
		</Properties>
	</Item>
</roblox>`

	doc := mustLoad(t, src)
	res := Apply(doc, Options{ConvertMeshParts: true})

	require.Equal(t, 1, res.MeshParts)
	require.Zero(t, res.SkippedMeshParts)

	it := doc.Items[0]
	require.Equal(t, "Part", it.Class)
	require.Len(t, it.Items, 1)

	child := it.Items[0]
	require.Equal(t, "SpecialMesh", child.Class)
	require.True(t, strings.HasPrefix(child.Referent, "RBX"))
	require.Equal(t, "Mesh", child.Name())

	scale, ok := child.Prop("Scale").Vector3()
	require.True(t, ok)
	require.Equal(t, [3]float32{2, 1, 0.5}, scale)

	mt := child.Prop("MeshType")
	require.NotNil(t, mt)
	require.Equal(t, "token", mt.XMLName.Local)
	require.Equal(t, "5", mt.Inner)

	uri, ok := child.Prop("MeshId").contentURI()
	require.True(t, ok)
	require.Equal(t, "rbxassetid://12345", uri)

	// The original properties stay on the converted part.
	_, ok = it.Prop("InitialSize").Vector3()
	require.True(t, ok)
}

func TestApplyMeshPartSkips(t *testing.T) {
	for _, tc := range []struct {
		name  string
		props string
	}{
		{
			name:  "missing initial size",
			props: `<Vector3 name="Size"><X>4</X><Y>4</Y><Z>4</Z></Vector3>`,
		},
		{
			name:  "missing size",
			props: `<Vector3 name="InitialSize"><X>2</X><Y>4</Y><Z>8</Z></Vector3>`,
		},
		{
			name: "zero initial size",
			props: `<Vector3 name="InitialSize"><X>0</X><Y>4</Y><Z>8</Z></Vector3>
			<Vector3 name="Size"><X>4</X><Y>4</Y><Z>4</Z></Vector3>`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			src := `<roblox version="4">
	<Item class="MeshPart" referent="RBXMP">
		<Properties>
			<string name="Name">Rock</string>
			<float name="TextSize">14</float>
			` + tc.props + `
		</Properties>
	</Item>
</roblox>`

			doc := mustLoad(t, src)
			res := Apply(doc, Options{ConvertMeshParts: true})

			require.Zero(t, res.MeshParts)
			require.Equal(t, 1, res.SkippedMeshParts)

			it := doc.Items[0]
			require.Equal(t, "MeshPart", it.Class)
			require.Empty(t, it.Items)

			// A skipped meshpart drops out of the remaining passes, its
			// TextSize stays untouched.
			require.NotNil(t, it.Prop("TextSize"))
			require.Nil(t, it.Prop("FontSize"))
			require.Zero(t, res.FontSizes)
		})
	}
}

func TestApplyFolderAndKeyframes(t *testing.T) {
	const src = `<roblox version="4">
	<Item class="Folder" referent="RBXF">
		<Properties><string name="Name">Stuff</string></Properties>
		<Item class="KeyframeSequence" referent="RBXK">
			<Properties><string name="Name">Anim</string></Properties>
		</Item>
	</Item>
</roblox>`

	t.Run("folders flag off", func(t *testing.T) {
		doc := mustLoad(t, src)
		res := Apply(doc, Options{})

		require.Equal(t, "Folder", doc.Items[0].Class)
		require.Zero(t, res.Folders)

		// The keyframesequence conversion is unconditional.
		require.Equal(t, "Part", doc.Items[0].Items[0].Class)
		require.Equal(t, 1, res.KeyframeSequences)
	})

	t.Run("folders flag on", func(t *testing.T) {
		doc := mustLoad(t, src)
		res := Apply(doc, Options{FoldersToModels: true})

		require.Equal(t, "Model", doc.Items[0].Class)
		require.Equal(t, 1, res.Folders)
	})
}

func TestApplyClassMappings(t *testing.T) {
	const src = `<roblox version="4">
	<Item class="Highlight" referent="RBXH">
		<Properties><string name="Name">Glow</string></Properties>
	</Item>
	<Item class="Folder" referent="RBXF">
		<Properties><string name="Name">Stuff</string></Properties>
	</Item>
</roblox>`

	doc := mustLoad(t, src)
	res := Apply(doc, Options{
		FoldersToModels: true,
		ClassMappings:   map[string]string{"Highlight": "Part", "Folder": "Configuration"},
	})

	require.Equal(t, 2, res.MappedClasses)
	require.Equal(t, "Part", doc.Items[0].Class)

	// Mappings run first, the folder pass sees the mapped class.
	require.Equal(t, "Configuration", doc.Items[1].Class)
	require.Zero(t, res.Folders)
}

func TestApplyTextSize(t *testing.T) {
	for _, tc := range []struct {
		name      string
		prop      string
		wantToken string
	}{
		{name: "float", prop: `<float name="TextSize">14</float>`, wantToken: "5"},
		{name: "int", prop: `<int name="TextSize">13</int>`, wantToken: "4"},
		{name: "int64", prop: `<int64 name="TextSize">100</int64>`, wantToken: "9"},
		{name: "double truncates", prop: `<double name="TextSize">10.9</double>`, wantToken: "2"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			src := `<roblox version="4">
	<Item class="TextLabel" referent="RBXT">
		<Properties>
			<string name="Name">Label</string>
			` + tc.prop + `
		</Properties>
	</Item>
</roblox>`

			doc := mustLoad(t, src)
			res := Apply(doc, Options{})

			require.Equal(t, 1, res.FontSizes)

			it := doc.Items[0]
			require.Nil(t, it.Prop("TextSize"))

			fs := it.Prop("FontSize")
			require.NotNil(t, fs)
			require.Equal(t, "token", fs.XMLName.Local)
			require.Equal(t, tc.wantToken, fs.Inner)
		})
	}

	t.Run("non numeric left alone", func(t *testing.T) {
		const src = `<roblox version="4">
	<Item class="TextLabel" referent="RBXT">
		<Properties>
			<string name="Name">Label</string>
			<string name="TextSize">big</string>
		</Properties>
	</Item>
</roblox>`

		doc := mustLoad(t, src)
		res := Apply(doc, Options{})

		require.Zero(t, res.FontSizes)
		require.NotNil(t, doc.Items[0].Prop("TextSize"))
		require.Nil(t, doc.Items[0].Prop("FontSize"))
	})
}

func TestApplyAssetURLs(t *testing.T) {
	const src = `<roblox version="4">
	<Item class="Decal" referent="RBXD">
		<Properties>
			<string name="Name">Face</string>
			<Content name="Texture"><url>rbxassetid://98765</url></Content>
			<Content name="Other"><url>rbxassetid://notanumber</url></Content>
			<Content name="Plain"><url>http://example.com/a</url></Content>
		</Properties>
	</Item>
</roblox>`

	t.Run("flag off", func(t *testing.T) {
		doc := mustLoad(t, src)
		res := Apply(doc, Options{})

		require.Zero(t, res.AssetURLs)

		uri, ok := doc.Items[0].Prop("Texture").contentURI()
		require.True(t, ok)
		require.Equal(t, "rbxassetid://98765", uri)
	})

	t.Run("flag on", func(t *testing.T) {
		doc := mustLoad(t, src)
		res := Apply(doc, Options{
			ConvertAssetIDToURL: true,
			AssetURLFormat:      "http://www.roblox.com/asset/?id=",
		})

		require.Equal(t, 1, res.AssetURLs)

		uri, ok := doc.Items[0].Prop("Texture").contentURI()
		require.True(t, ok)
		require.Equal(t, "http://www.roblox.com/asset/?id=98765", uri)

		// Ids that are not plain numbers and foreign urls stay as they are.
		uri, ok = doc.Items[0].Prop("Other").contentURI()
		require.True(t, ok)
		require.Equal(t, "rbxassetid://notanumber", uri)

		uri, ok = doc.Items[0].Prop("Plain").contentURI()
		require.True(t, ok)
		require.Equal(t, "http://example.com/a", uri)
	})
}

func TestApplyMeshPartChildKeepsOriginalURI(t *testing.T) {
	const src = `<roblox version="4">
	<Item class="MeshPart" referent="RBXMP">
		<Properties>
			<string name="Name">Rock</string>
			<Vector3 name="InitialSize"><X>1</X><Y>1</Y><Z>1</Z></Vector3>
			<Vector3 name="Size"><X>2</X><Y>2</Y><Z>2</Z></Vector3>
			<Content name="MeshId"><url>rbxassetid://777</url></Content>
		</Properties>
	</Item>
</roblox>`

	doc := mustLoad(t, src)
	res := Apply(doc, Options{
		ConvertMeshParts:    true,
		ConvertAssetIDToURL: true,
		AssetURLFormat:      "http://www.roblox.com/asset/?id=",
	})

	require.Equal(t, 1, res.MeshParts)
	require.Equal(t, 1, res.AssetURLs)

	// The part itself is rewritten. The specialmesh child was built from a
	// snapshot taken before the url pass and keeps the original uri.
	uri, ok := doc.Items[0].Prop("MeshId").contentURI()
	require.True(t, ok)
	require.Equal(t, "http://www.roblox.com/asset/?id=777", uri)

	childURI, ok := doc.Items[0].Items[0].Prop("MeshId").contentURI()
	require.True(t, ok)
	require.Equal(t, "rbxassetid://777", childURI)
}
