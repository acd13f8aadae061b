package emitter

import (
	"fmt"
	"go/scanner"
	"go/token"
	"slices"
	"strings"

	"github.com/ts3go/ts3plugin/internal/codegen/common"
	"github.com/ts3go/ts3plugin/internal/codegen/meta"
)

// stdImports are the packages generated code may refer to, including through
// freeform descriptor text. Only those actually referenced are imported.
var stdImports = []string{"errors", "fmt", "strconv", "time"}

// File renders the whole generated source: header, package clause, imports,
// every enum and then every entity, in declaration order. Descriptors are
// expected to have passed Validate.
func File(md *meta.Metadata) (string, error) {
	var body strings.Builder
	for _, e := range md.Enums {
		text, err := Enum(e)
		if err != nil {
			return "", err
		}
		body.WriteString(text)
		body.WriteString("\n")
	}
	for _, e := range md.Entities {
		text, err := Entity(e)
		if err != nil {
			return "", err
		}
		body.WriteString(text)
		body.WriteString("\n")
	}

	var b strings.Builder
	b.WriteString(common.GeneratedHeader + "\n\n")
	fmt.Fprintf(&b, "package %s\n\n", md.Package)
	if imports := usedImports(md, body.String()); len(imports) > 0 {
		b.WriteString("import (\n")
		for _, imp := range imports {
			fmt.Fprintf(&b, "\t%q\n", imp)
		}
		b.WriteString(")\n\n")
	}
	b.WriteString(body.String())
	return b.String(), nil
}

// usedImports collects the packages needed by property types and adds the
// ones freeform descriptor text refers to. Only selector expressions count,
// so comments and string literals never pull in an import.
func usedImports(md *meta.Metadata, body string) []string {
	need := map[string]bool{}
	for _, e := range md.Entities {
		for _, p := range e.Properties {
			for _, imp := range p.Type.Imports() {
				need[imp] = true
			}
		}
	}
	for _, pkg := range referencedPackages(body) {
		need[pkg] = true
	}

	var out []string
	for _, pkg := range stdImports {
		if need[pkg] {
			out = append(out, pkg)
		}
	}
	return out
}

// referencedPackages returns the entries of stdImports that appear as the
// left side of a selector in src.
func referencedPackages(src string) []string {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))
	var s scanner.Scanner
	s.Init(file, []byte(src), nil, 0)

	var out []string
	prev, last := "", token.ILLEGAL
	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.PERIOD && slices.Contains(stdImports, prev) && !slices.Contains(out, prev) {
			out = append(out, prev)
		}
		prev = ""
		// x.time.Unix is a field access, not the time package.
		if tok == token.IDENT && last != token.PERIOD {
			prev = lit
		}
		last = tok
	}
	return out
}
