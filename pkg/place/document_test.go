package place

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const placeFixture = `<roblox version="4">
	<Meta name="ExplicitAutoJoints">true</Meta>
	<External>null</External>
	<External>nil</External>
	<Item class="Workspace" referent="RBX0000000000000000000000000000AAAA">
		<Properties>
			<string name="Name">Workspace</string>
		</Properties>
		<Item class="Part" referent="RBX0000000000000000000000000000BBBB">
			<Properties>
				<string name="Name">Base &amp; Plate</string>
				<Vector3 name="Size"><X>512</X><Y>1.2</Y><Z>512</Z></Vector3>
				<ProtectedString name="Source"><![CDATA[print("x")]]></ProtectedString>
			</Properties>
		</Item>
	</Item>
	<SharedStrings></SharedStrings>
</roblox>
`

func TestLoadSaveRoundTrip(t *testing.T) {
	doc, err := Load([]byte(placeFixture))
	require.NoError(t, err)

	require.Len(t, doc.Items, 1)
	require.Equal(t, "Workspace", doc.Items[0].Class)
	require.Equal(t, "Workspace", doc.Items[0].Name())
	require.Len(t, doc.Items[0].Items, 1)

	part := doc.Items[0].Items[0]
	require.Equal(t, "Base & Plate", part.Name())

	size, ok := part.Prop("Size").Vector3()
	require.True(t, ok)
	require.Equal(t, [3]float32{512, 1.2, 512}, size)

	out, err := doc.Save()
	require.NoError(t, err)

	s := string(out)
	require.Contains(t, s, `<roblox version="4">`)
	require.Contains(t, s, `<Meta name="ExplicitAutoJoints">true</Meta>`)
	require.Contains(t, s, "<External>null</External>")
	require.Contains(t, s, `referent="RBX0000000000000000000000000000BBBB"`)
	require.Contains(t, s, `<string name="Name">Base &amp; Plate</string>`)
	require.Contains(t, s, `<![CDATA[print("x")]]>`)
	require.Contains(t, s, "<SharedStrings></SharedStrings>")

	// A reparse sees the same content.
	doc2, err := Load(out)
	require.NoError(t, err)
	require.Equal(t, "Base & Plate", doc2.Items[0].Items[0].Name())
}

func TestLoadRejectsBinary(t *testing.T) {
	data := append([]byte{}, binaryMagic...)
	data = append(data, "junk"...)

	_, err := Load(data)
	require.ErrorIs(t, err, ErrBinaryPlace)

	require.True(t, IsBinary(data))
	require.False(t, IsBinary([]byte("<roblox></roblox>")))
	require.False(t, IsBinary(binaryMagic[:10]))
}

func TestLoadRejectsMalformedXML(t *testing.T) {
	_, err := Load([]byte("<roblox><Item></roblox>"))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrBinaryPlace)
}

func TestNewReferent(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 32; i++ {
		ref := NewReferent()
		require.Len(t, ref, 35)
		require.True(t, strings.HasPrefix(ref, "RBX"))
		require.Equal(t, strings.ToUpper(ref), ref)
		seen[ref] = struct{}{}
	}

	require.Len(t, seen, 32)
}

func TestItemPropEdit(t *testing.T) {
	it := &Item{Class: "TextLabel"}
	require.Nil(t, it.Prop("FontSize"))

	it.SetProp(tokenProp("FontSize", 7))
	require.NotNil(t, it.Prop("FontSize"))
	require.Equal(t, "7", it.Prop("FontSize").Inner)

	it.SetProp(tokenProp("FontSize", 9))
	require.Len(t, it.Properties.Props, 1)
	require.Equal(t, "9", it.Prop("FontSize").Inner)

	it.RemoveProp("FontSize")
	require.Empty(t, it.Properties.Props)
}
