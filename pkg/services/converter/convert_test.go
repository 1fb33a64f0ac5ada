package converter

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rbxasset/meshconv/pkg/cache"
	"github.com/rbxasset/meshconv/pkg/core/mesh"
	"github.com/rbxasset/meshconv/pkg/filemesh"
)

const objTriangle = `o tri
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`

const objTriangleShifted = `o tri
v 0 0 1
v 1 0 1
v 0 1 1
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`

func writeTree(t *testing.T, dir string, files map[string]string) {
	for rel, data := range files {
		path := filepath.Join(dir, rel)

		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	}
}

func newTestCache(t *testing.T) *cache.Cache {
	c := cache.New(
		cache.WithPath(filepath.Join(t.TempDir(), "cache.db")),
	)

	require.NoError(t, c.Open())
	require.NoError(t, c.Init())
	t.Cleanup(func() { require.NoError(t, c.Close()) })

	return c
}

func TestConvertBatch(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()

	writeTree(t, in, map[string]string{
		"a.obj":        objTriangle,
		"bad.obj":      "not an obj at all\n",
		"nested/b.obj": objTriangleShifted,
		"note.txt":     "ignored",
	})

	var (
		dones []int
		paths []string
	)

	c := New(
		WithCache(newTestCache(t)),
		WithProgressCallback(func(done, total int, path string) {
			require.Equal(t, 3, total)
			dones = append(dones, done)
			paths = append(paths, path)
		}),
	)

	var prm Prm
	prm.SetInputDir(in)
	prm.SetOutputDir(out)
	prm.SetTarget(TargetFileMesh(filemesh.Version200))

	res, err := c.Convert(context.Background(), prm)
	require.NoError(t, err)

	rep := res.Report()
	require.Len(t, rep.RunID, 36)
	require.Equal(t, "v2.00", rep.Target)
	require.Equal(t, 3, rep.Total)
	require.Equal(t, 2, rep.Converted)
	require.Zero(t, rep.FromCache)
	require.Len(t, rep.Failed, 1)
	require.Equal(t, "bad.obj", rep.Failed[0].Path)
	require.Contains(t, rep.Failed[0].Error, "no mesh data")

	// The default pool runs in the caller's routine, progress arrives in
	// walk order.
	require.Equal(t, []int{1, 2, 3}, dones)
	require.Equal(t, []string{"a.obj", "bad.obj", filepath.Join("nested", "b.obj")}, paths)

	for _, rel := range []string{"a.mesh", filepath.Join("nested", "b.mesh")} {
		data, err := os.ReadFile(filepath.Join(out, rel))
		require.NoError(t, err, rel)
		require.True(t, strings.HasPrefix(string(data), "version 2.00\n"), rel)

		m, err := filemesh.Decode(data)
		require.NoError(t, err, rel)
		require.Len(t, m.Vertices, 3, rel)
		require.Len(t, m.Faces, 1, rel)
	}

	// A second run over the same tree is served from the cache.
	res, err = c.Convert(context.Background(), prm)
	require.NoError(t, err)

	rep = res.Report()
	require.Equal(t, 2, rep.Converted)
	require.Equal(t, 2, rep.FromCache)
	require.Len(t, rep.Failed, 1)
}

func TestConvertToOBJ(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()

	m := &mesh.Mesh{
		Vertices: []mesh.Vertex{
			{Position: [3]float32{0, 0, 0}, Normal: [3]float32{0, 0, 1}},
			{Position: [3]float32{1, 0, 0}, Normal: [3]float32{0, 0, 1}},
			{Position: [3]float32{0, 1, 0}, Normal: [3]float32{0, 0, 1}},
		},
		Faces: []mesh.Face{{0, 1, 2}},
	}

	data, err := filemesh.Encode(m, filemesh.Version300)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(in, "c.mesh"), data, 0o600))

	c := New()

	var prm Prm
	prm.SetInputDir(in)
	prm.SetOutputDir(out)
	prm.SetTarget(TargetOBJ())

	res, err := c.Convert(context.Background(), prm)
	require.NoError(t, err)
	require.Equal(t, 1, res.Report().Converted)

	got, err := os.ReadFile(filepath.Join(out, "c.obj"))
	require.NoError(t, err)
	require.Contains(t, string(got), "v 0.000000 0.000000 0.000000\n")
	require.Contains(t, string(got), "f 1/1/1 2/2/2 3/3/3\n")
}

func TestConvertErrors(t *testing.T) {
	c := New()

	t.Run("unset parameters", func(t *testing.T) {
		var prm Prm

		_, err := c.Convert(context.Background(), prm)
		require.EqualError(t, err, "input directory not set")

		prm.SetInputDir(t.TempDir())
		_, err = c.Convert(context.Background(), prm)
		require.EqualError(t, err, "output directory not set")

		prm.SetOutputDir(t.TempDir())
		_, err = c.Convert(context.Background(), prm)
		require.EqualError(t, err, "target format not set")
	})

	t.Run("empty input directory", func(t *testing.T) {
		var prm Prm
		prm.SetInputDir(t.TempDir())
		prm.SetOutputDir(t.TempDir())
		prm.SetTarget(TargetOBJ())

		_, err := c.Convert(context.Background(), prm)
		require.ErrorIs(t, err, ErrNoInput)
	})

	t.Run("cancelled context", func(t *testing.T) {
		in := t.TempDir()
		writeTree(t, in, map[string]string{"a.obj": objTriangle})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var prm Prm
		prm.SetInputDir(in)
		prm.SetOutputDir(t.TempDir())
		prm.SetTarget(TargetFileMesh(filemesh.Version200))

		res, err := c.Convert(ctx, prm)
		require.ErrorIs(t, err, context.Canceled)
		require.Zero(t, res.Report().Converted)
	})
}

func TestParseTarget(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"obj", "obj"},
		{"OBJ", "obj"},
		{"v2.00", "v2.00"},
		{"2.00", "v2.00"},
		{"V5.00", "v5.00"},
	} {
		tgt, err := ParseTarget(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, tgt.String(), tc.in)
	}

	_, err := ParseTarget("stl")
	require.Error(t, err)
}

func TestTargetExtensions(t *testing.T) {
	require.Equal(t, ".obj", TargetFileMesh(filemesh.Version200).SourceExtension())
	require.Equal(t, ".mesh", TargetFileMesh(filemesh.Version200).OutputExtension())
	require.Equal(t, ".mesh", TargetOBJ().SourceExtension())
	require.Equal(t, ".obj", TargetOBJ().OutputExtension())
}

func TestReportWriteYAML(t *testing.T) {
	rep := Report{
		RunID:     "0f8fad5b-d9cb-469f-a165-70867728950e",
		Target:    "v2.00",
		Total:     3,
		Converted: 2,
		Failed:    []FailedFile{{Path: "bad.obj", Error: "no mesh data in obj input"}},
	}

	var b bytes.Buffer
	require.NoError(t, rep.WriteYAML(&b))

	s := b.String()
	require.Contains(t, s, "run_id: 0f8fad5b-d9cb-469f-a165-70867728950e")
	require.Contains(t, s, "target: v2.00")
	require.Contains(t, s, "- path: bad.obj")
}
