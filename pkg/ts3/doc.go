// Package ts3 holds the data model of a voice-chat host as seen by a plugin.
//
// Server, Channel and Connection together with their value enums are generated
// by ts3gen from the descriptors in internal/codegen/entities. This package
// only contains the hand-written runtime the generated code builds on: the
// per-property Outcome type, the raw value conversions, and the Fetcher
// contract used to read properties from the host.
package ts3

//go:generate go run ../../cmd/ts3gen generate --output entities_gen.go --package ts3
