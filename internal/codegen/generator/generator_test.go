package generator_test

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/ts3go/ts3plugin/internal/codegen/common"
	"github.com/ts3go/ts3plugin/internal/codegen/descriptor"
	"github.com/ts3go/ts3plugin/internal/codegen/emitter"
	"github.com/ts3go/ts3plugin/internal/codegen/entities"
	"github.com/ts3go/ts3plugin/internal/codegen/generator"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRenderIsDeterministic(t *testing.T) {
	out := filepath.Join(t.TempDir(), "entities_gen.go")

	first, err := generator.Render(out, entities.Metadata("ts3"))
	require.NoError(t, err)
	second, err := generator.Render(out, entities.Metadata("ts3"))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.True(t, strings.HasPrefix(string(first), common.GeneratedHeader+"\n"))
}

func TestRenderRejectsInvalidDescriptors(t *testing.T) {
	md := entities.Metadata("ts3")
	md.Entities[0].Properties = append(md.Entities[0].Properties,
		descriptor.NewProperty().Name("mystery").Type(descriptor.Float64()).Finalize())

	_, err := generator.Render("entities_gen.go", md)
	var verr *emitter.ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Contains(t, err.Error(), "Channel.mystery: no initializer")
}

func TestGenerateAndCheck(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "entities_gen.go")
	gen := generator.New(out, "ts3", discardLogger())

	var drift *generator.DriftError
	require.True(t, errors.As(gen.Check(), &drift), "missing file must be reported")

	require.NoError(t, gen.Generate())
	require.NoError(t, gen.Check())

	info, err := os.Stat(out)
	require.NoError(t, err)
	modTime := info.ModTime()

	// Regenerating an up to date file does not touch it.
	require.NoError(t, gen.Generate())
	info, err = os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, modTime, info.ModTime())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	stale := strings.Replace(string(data), "type Channel struct", "type Channel struct // edited", 1)
	require.NoError(t, os.WriteFile(out, []byte(stale), 0o644))

	err = gen.Check()
	require.True(t, errors.As(err, &drift))
	assert.Equal(t, out, drift.Path)
	assert.Contains(t, drift.Diff, "-type Channel struct // edited")
	assert.Contains(t, drift.Diff, "+type Channel struct {")
	assert.Contains(t, err.Error(), "out of date")
}

func TestGeneratedCodeTypeChecks(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages through the go command")
	}

	dir, err := filepath.Abs(filepath.Join("..", "..", "..", "pkg", "ts3"))
	require.NoError(t, err)
	target := filepath.Join(dir, "entities_gen.go")

	src, err := generator.Render(target, entities.Metadata("ts3"))
	require.NoError(t, err)

	cfg := &packages.Config{
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:     dir,
		Overlay: map[string][]byte{target: src},
	}
	pkgs, err := packages.Load(cfg, ".")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	for _, e := range pkgs[0].Errors {
		t.Error(e)
	}
	require.NotNil(t, pkgs[0].Types)

	scope := pkgs[0].Types.Scope()
	for _, name := range []string{
		"Server", "NewServer", "ServerAPI", "NewServerAPI",
		"Channel", "NewChannel", "ChannelAPI",
		"Connection", "NewConnection", "ConnectionAPI",
		"Codec", "ParseCodec", "AwayStatusAway",
	} {
		assert.NotNil(t, scope.Lookup(name), name)
	}
}
