package cmd

import (
	"log/slog"

	"github.com/ts3go/ts3plugin/internal/codegen/generator"
)

// Target selects the generated file.
type Target struct {
	Output  string `help:"Path of the generated Go file" default:"entities_gen.go" type:"path" env:"TS3GEN_OUTPUT"`
	Package string `help:"Package clause of the generated file" default:"ts3" env:"TS3GEN_PACKAGE"`
}

func (t Target) generator(logger *slog.Logger) *generator.Generator {
	return generator.New(t.Output, t.Package, logger)
}

// Generate writes the entity source file.
type Generate struct {
	Target `embed:""`
}

// Run is called by Kong when the generate command is executed.
func (c *Generate) Run(logger *slog.Logger) error {
	logger.Info("Starting ts3gen code generation", "output", c.Output, "package", c.Package)
	return c.generator(logger).Generate()
}
