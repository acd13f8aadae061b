package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/ts3go/ts3plugin/internal/codegen/scanner"
)

func main() {
	root := "."
	if len(os.Args) > 1 {
		root = os.Args[1]
	}

	dir := filepath.Join(root, "pkg", "ts3")
	result, err := scanner.ScanRuntime(dir, "entities_gen.go")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", dir, err)
		os.Exit(1)
	}

	fmt.Printf("\n=== %s ===\n", result.Dir)
	fmt.Printf("Constants: %d\n", len(result.Constants))
	fmt.Printf("Types: %d\n", len(result.Types))
	fmt.Printf("Funcs: %d\n", len(result.Funcs))

	for _, name := range sortedKeys(result.Interfaces) {
		fmt.Printf("\nInterface %s:\n", name)
		for _, m := range result.Interfaces[name] {
			fmt.Printf("  %s(%v) %v\n", m.Name, m.Params, m.Results)
		}
	}

	if len(result.Constants) > 0 {
		fmt.Printf("\nFirst 10 constants:\n")
		names := sortedKeys(result.Constants)
		for i, name := range names {
			if i >= 10 {
				break
			}
			c := result.Constants[name]
			fmt.Printf("  %s = %v (%s)\n", c.Name, c.Value, c.Type)
		}
		if len(names) > 10 {
			fmt.Printf("  ... and %d more\n", len(names)-10)
		}
	}
}

// sortedKeys returns the keys of m in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
