package configpaths_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ts3go/ts3plugin/internal/configpaths"
)

func TestConfigCandidatePaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths("custom.toml")

	assert.Equal(t, "custom.toml", tomlPaths[0])
	assert.Equal(t, "ts3gen.json", filepath.Base(jsonPaths[0]))
	assert.Equal(t, "ts3gen.yaml", filepath.Base(yamlPaths[0]))
	assert.Equal(t, "ts3gen.yml", filepath.Base(yamlPaths[1]))

	dir, err := configpaths.DefaultConfigDir()
	assert.NoError(t, err)
	assert.Contains(t, jsonPaths, filepath.Join(dir, "config.json"))
}

func TestUserPathRouting(t *testing.T) {
	type testCase struct {
		path   string
		format string
	}

	testCases := []testCase{
		{path: "a.json", format: "json"},
		{path: "a.yml", format: "yaml"},
		{path: "a.yaml", format: "yaml"},
		{path: "a.toml", format: "toml"},
		{path: "a.conf", format: "json"},
	}

	for _, tc := range testCases {
		jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(tc.path)
		first := map[string]string{"json": jsonPaths[0], "yaml": yamlPaths[0], "toml": tomlPaths[0]}
		assert.Equal(t, tc.path, first[tc.format], tc.path)
	}
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "yaml", configpaths.Extension("yml"))
	assert.Equal(t, "toml", configpaths.Extension("toml"))
	assert.Equal(t, "json", configpaths.Extension("json"))
}
