package cmd

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/ts3go/ts3plugin/internal/codegen/generator"
)

// Check fails when the generated file does not match the descriptors.
type Check struct {
	Target `embed:""`
	Color  string `help:"Colorize the diff" enum:"auto,always,never" default:"auto" env:"TS3GEN_COLOR"`
}

// Run is called by Kong when the check command is executed.
func (c *Check) Run(logger *slog.Logger) error {
	err := c.generator(logger).Check()
	var drift *generator.DriftError
	if errors.As(err, &drift) {
		PrintDiff(os.Stdout, drift.Diff, c.colorize(os.Stdout))
		logger.Error("Generated file is stale", "output", drift.Path)
	}
	return err
}

func (c *Check) colorize(f *os.File) bool {
	switch c.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(f.Fd()))
	}
}

// PrintDiff writes a unified diff, coloring added and removed lines when
// enabled.
func PrintDiff(w io.Writer, diff string, enabled bool) {
	header := color.New(color.Bold)
	hunk := color.New(color.FgCyan)
	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	for _, c := range []*color.Color{header, hunk, added, removed} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		var c *color.Color
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			c = header
		case strings.HasPrefix(line, "@@"):
			c = hunk
		case strings.HasPrefix(line, "+"):
			c = added
		case strings.HasPrefix(line, "-"):
			c = removed
		}
		if c == nil {
			_, _ = io.WriteString(w, line+"\n")
			continue
		}
		_, _ = c.Fprintln(w, line)
	}
}
