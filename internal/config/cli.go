// Package config declares the ts3gen command line.
package config

import (
	"github.com/alecthomas/kong"

	"github.com/ts3go/ts3plugin/internal/cmd"
	"github.com/ts3go/ts3plugin/internal/log"
)

// CLI is the root of the ts3gen command line. Flags can also be set from a
// JSON, YAML or TOML configuration file; flags and environment win.
type CLI struct {
	ConfigFile string           `name:"config" help:"Configuration file (json, yaml or toml)" type:"path" env:"TS3GEN_CONFIG"`
	Log        log.Config       `embed:"" prefix:"log."`
	Version    kong.VersionFlag `help:"Print the version and exit"`

	Generate cmd.Generate      `cmd:"" help:"Generate the entity source file"`
	Check    cmd.Check         `cmd:"" help:"Fail when the generated file is out of date"`
	Describe cmd.Describe      `cmd:"" help:"Print the descriptor model and resolved strategies"`
	Config   cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}
