// Package scanner reads the hand-written runtime package that generated code
// is compiled into, so descriptors can be checked against it before anything
// is written.
package scanner

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// ConstantInfo is an exported constant of the runtime package.
type ConstantInfo struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// MethodInfo is a method of an exported interface.
type MethodInfo struct {
	Name    string   `json:"name"`
	Params  []string `json:"params"`
	Results []string `json:"results"`
}

// Runtime is the exported surface of the runtime package.
type Runtime struct {
	Dir        string                  `json:"dir"`
	Constants  map[string]ConstantInfo `json:"constants"`
	Types      map[string]string       `json:"types"` // name -> underlying expression
	Interfaces map[string][]MethodInfo `json:"interfaces"`
	Funcs      map[string]bool         `json:"funcs"`
}

func newRuntime(dir string) *Runtime {
	return &Runtime{
		Dir:        dir,
		Constants:  map[string]ConstantInfo{},
		Types:      map[string]string{},
		Interfaces: map[string][]MethodInfo{},
		Funcs:      map[string]bool{},
	}
}

// Empty reports whether no declarations were found.
func (r *Runtime) Empty() bool {
	return len(r.Constants) == 0 && len(r.Types) == 0 && len(r.Funcs) == 0
}

// Method looks up a method of an interface.
func (r *Runtime) Method(iface, name string) (MethodInfo, bool) {
	for _, m := range r.Interfaces[iface] {
		if m.Name == name {
			return m, true
		}
	}
	return MethodInfo{}, false
}

// ScanRuntime parses the non-test Go files in dir. Files whose base name is
// listed in skip, typically the generated file itself, are ignored. A missing
// directory yields an empty Runtime.
func ScanRuntime(dir string, skip ...string) (*Runtime, error) {
	result := newRuntime(dir)

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	fset := token.NewFileSet()
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		if slices.Contains(skip, name) {
			continue
		}

		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		result.add(file)
	}
	return result, nil
}

func (r *Runtime) add(file *ast.File) {
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil && d.Name.IsExported() {
				r.Funcs[d.Name.Name] = true
			}
		case *ast.GenDecl:
			switch d.Tok {
			case token.CONST:
				for _, c := range extractConstants(d) {
					r.Constants[c.Name] = c
				}
			case token.TYPE:
				r.addTypes(d)
			}
		}
	}
}

func (r *Runtime) addTypes(genDecl *ast.GenDecl) {
	for _, spec := range genDecl.Specs {
		typeSpec, ok := spec.(*ast.TypeSpec)
		if !ok || !typeSpec.Name.IsExported() {
			continue
		}
		name := typeSpec.Name.Name
		iface, ok := typeSpec.Type.(*ast.InterfaceType)
		if !ok {
			r.Types[name] = exprToString(typeSpec.Type)
			continue
		}
		r.Types[name] = "interface"
		for _, m := range iface.Methods.List {
			fn, ok := m.Type.(*ast.FuncType)
			if !ok || len(m.Names) == 0 {
				continue
			}
			r.Interfaces[name] = append(r.Interfaces[name], MethodInfo{
				Name:    m.Names[0].Name,
				Params:  fieldTypes(fn.Params),
				Results: fieldTypes(fn.Results),
			})
		}
	}
}

// fieldTypes expands a field list into one type per parameter.
func fieldTypes(fields *ast.FieldList) []string {
	if fields == nil {
		return nil
	}
	var out []string
	for _, f := range fields.List {
		n := max(len(f.Names), 1)
		for i := 0; i < n; i++ {
			out = append(out, exprToString(f.Type))
		}
	}
	return out
}

// extractConstants handles explicitly typed constants and implicit
// repetition of the previous spec's type inside a block.
func extractConstants(genDecl *ast.GenDecl) []ConstantInfo {
	var constants []ConstantInfo
	var lastType string

	for _, spec := range genDecl.Specs {
		valueSpec, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}
		if valueSpec.Type != nil {
			lastType = exprToString(valueSpec.Type)
		} else if len(valueSpec.Values) > 0 {
			lastType = ""
		}

		for i, name := range valueSpec.Names {
			if !name.IsExported() {
				continue
			}
			info := ConstantInfo{Name: name.Name, Type: lastType}
			if i < len(valueSpec.Values) {
				info.Value = extractValue(valueSpec.Values[i])
			}
			constants = append(constants, info)
		}
	}
	return constants
}

func extractValue(expr ast.Expr) any {
	switch e := expr.(type) {
	case *ast.BasicLit:
		switch e.Kind {
		case token.INT:
			if val, err := strconv.ParseInt(e.Value, 0, 64); err == nil {
				return val
			}
			if val, err := strconv.ParseUint(e.Value, 0, 64); err == nil {
				return val
			}
		case token.STRING:
			if unquoted, err := strconv.Unquote(e.Value); err == nil {
				return unquoted
			}
		}
	case *ast.Ident:
		return e.Name
	case *ast.UnaryExpr:
		if e.Op == token.SUB {
			if v, ok := extractValue(e.X).(int64); ok {
				return -v
			}
		}
		return fmt.Sprintf("%s%v", e.Op.String(), extractValue(e.X))
	}
	return nil
}

func exprToString(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return exprToString(e.X) + "." + e.Sel.Name
	case *ast.StarExpr:
		return "*" + exprToString(e.X)
	case *ast.ArrayType:
		if e.Len != nil {
			return fmt.Sprintf("[%s]%s", exprToString(e.Len), exprToString(e.Elt))
		}
		return "[]" + exprToString(e.Elt)
	case *ast.MapType:
		return fmt.Sprintf("map[%s]%s", exprToString(e.Key), exprToString(e.Value))
	case *ast.IndexExpr:
		return exprToString(e.X) + "[" + exprToString(e.Index) + "]"
	case *ast.StructType:
		return "struct"
	case *ast.BasicLit:
		return e.Value
	}
	return ""
}
