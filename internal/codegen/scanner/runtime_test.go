package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanRuntimePackage(t *testing.T) {
	rt, err := ScanRuntime(filepath.Join("..", "..", "..", "pkg", "ts3"), "entities_gen.go")
	require.NoError(t, err)
	require.False(t, rt.Empty())

	c, ok := rt.Constants["ChannelPropertyCodec"]
	require.True(t, ok)
	assert.Equal(t, "ChannelProperty", c.Type)
	assert.Equal(t, int64(4), c.Value)

	assert.Equal(t, "uint64", rt.Types["ChannelID"])
	assert.Equal(t, "interface", rt.Types["Fetcher"])
	assert.True(t, rt.Funcs["Capture"])
	assert.True(t, rt.Funcs["Decode"])

	m, ok := rt.Method("Fetcher", "ChannelVariableAsInt")
	require.True(t, ok)
	assert.Equal(t, []string{"ServerID", "ChannelID", "ChannelProperty"}, m.Params)
	assert.Equal(t, []string{"int32", "error"}, m.Results)

	_, ok = rt.Method("Fetcher", "Missing")
	assert.False(t, ok)
}

func TestScanRuntimeSource(t *testing.T) {
	dir := t.TempDir()
	src := `package sample

type Mode int8

const (
	ModeOff Mode = iota
	ModeOn
	hidden = 3
)

const Limit = -5

type Reader interface {
	Read(a, b string, n Mode) (int, error)
}

func New() {}

func (Mode) String() string { return "" }
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample.go"), []byte(src), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gen.go"), []byte("package sample\n\nconst Generated = 1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample_test.go"), []byte("package sample\n\nconst InTest = 1\n"), 0o644))

	rt, err := ScanRuntime(dir, "gen.go")
	require.NoError(t, err)

	assert.Equal(t, "Mode", rt.Constants["ModeOff"].Type)
	assert.Equal(t, "Mode", rt.Constants["ModeOn"].Type)
	assert.Equal(t, int64(-5), rt.Constants["Limit"].Value)
	assert.NotContains(t, rt.Constants, "hidden")
	assert.NotContains(t, rt.Constants, "Generated")
	assert.NotContains(t, rt.Constants, "InTest")
	assert.Equal(t, "int8", rt.Types["Mode"])
	assert.True(t, rt.Funcs["New"])
	assert.NotContains(t, rt.Funcs, "String")

	m, ok := rt.Method("Reader", "Read")
	require.True(t, ok)
	assert.Equal(t, []string{"string", "string", "Mode"}, m.Params)
}

func TestScanRuntimeMissingDir(t *testing.T) {
	rt, err := ScanRuntime(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.True(t, rt.Empty())
}
