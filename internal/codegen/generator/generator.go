package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/tools/imports"

	"github.com/ts3go/ts3plugin/internal/codegen/emitter"
	"github.com/ts3go/ts3plugin/internal/codegen/entities"
	"github.com/ts3go/ts3plugin/internal/codegen/meta"
	"github.com/ts3go/ts3plugin/internal/codegen/scanner"
)

// Generator turns the entity descriptors into one Go source file.
type Generator struct {
	output string
	pkg    string
	logger *slog.Logger
}

func New(output, pkg string, logger *slog.Logger) *Generator {
	return &Generator{
		output: output,
		pkg:    pkg,
		logger: logger,
	}
}

// Output is the path of the generated file.
func (g *Generator) Output() string {
	return g.output
}

// Metadata returns the descriptors rendered by this generator.
func (g *Generator) Metadata() *meta.Metadata {
	return entities.Metadata(g.pkg)
}

// Render validates md and returns the formatted source. Nothing is rendered
// when a descriptor is invalid.
func Render(filename string, md *meta.Metadata) ([]byte, error) {
	if err := emitter.Validate(md); err != nil {
		return nil, err
	}
	src, err := emitter.File(md)
	if err != nil {
		return nil, err
	}
	out, err := imports.Process(filename, []byte(src), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return out, nil
}

// render produces the output of g. When the output directory holds the
// runtime package the descriptors are also checked against it.
func (g *Generator) render(md *meta.Metadata) ([]byte, error) {
	out, err := Render(g.output, md)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(g.output)
	rt, err := scanner.ScanRuntime(dir, filepath.Base(g.output))
	if err != nil {
		return nil, err
	}
	if rt.Empty() {
		g.logger.Warn("No runtime package next to the output, skipping cross-check", "dir", dir)
		return out, nil
	}
	g.logger.Debug("Cross-checking descriptors", "dir", dir,
		"constants", len(rt.Constants), "types", len(rt.Types))
	if err := Crosscheck(md, rt); err != nil {
		return nil, err
	}
	return out, nil
}

// Generate writes the generated file, leaving it untouched when it is
// already current.
func (g *Generator) Generate() error {
	md := g.Metadata()
	g.logger.Info("Generating entities", "output", g.output, "package", g.pkg,
		"entities", len(md.Entities), "enums", len(md.Enums))

	out, err := g.render(md)
	if err != nil {
		return err
	}

	current, err := readExisting(g.output)
	if err != nil {
		return err
	}
	if bytes.Equal(current, out) {
		g.logger.Info("Generated file is up to date", "output", g.output)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(g.output), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(g.output, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", g.output, err)
	}
	g.logger.Info("Entity generation complete", "output", g.output, "bytes", len(out))
	return nil
}

// DriftError reports a generated file that differs from what the
// descriptors produce.
type DriftError struct {
	Path string
	Diff string
}

func (e *DriftError) Error() string {
	return fmt.Sprintf("%s is out of date; run ts3gen generate", e.Path)
}

// Check compares the generated file on disk with a fresh rendering. It
// returns a *DriftError carrying a unified diff when they differ.
func (g *Generator) Check() error {
	md := g.Metadata()
	g.logger.Debug("Checking generated entities", "output", g.output)

	want, err := g.render(md)
	if err != nil {
		return err
	}
	current, err := readExisting(g.output)
	if err != nil {
		return err
	}
	if bytes.Equal(current, want) {
		g.logger.Info("Generated file is up to date", "output", g.output)
		return nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(string(want)),
		FromFile: g.output,
		ToFile:   g.output + " (generated)",
		Context:  3,
	})
	if err != nil {
		return fmt.Errorf("diff %s: %w", g.output, err)
	}
	return &DriftError{Path: g.output, Diff: diff}
}

// readExisting returns the current file contents, nil when it does not exist.
func readExisting(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
