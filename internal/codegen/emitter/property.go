// Package emitter renders descriptors into Go source text.
//
// Property fragments are produced by small pure functions; entity and enum
// blocks are composed from them with text/template. The output is not
// gofmt'ed here, the generator driver formats the assembled file.
package emitter

import (
	"fmt"
	"strings"

	"github.com/ts3go/ts3plugin/internal/codegen/common"
	"github.com/ts3go/ts3plugin/internal/codegen/descriptor"
)

// ValueType is the Go type handed out by the property getter.
func ValueType(p descriptor.Property) string {
	if p.Type.Kind == descriptor.KindEntity {
		return "*" + p.Type.GoType()
	}
	return p.Type.GoType()
}

// StoredType is the Go type of the struct field.
func StoredType(p descriptor.Property) string {
	if p.Fallible {
		return "Outcome[" + p.Type.GoType() + "]"
	}
	return p.Type.GoType()
}

// FieldDecl renders the struct field of p.
func FieldDecl(p descriptor.Property) string {
	return p.FieldName() + " " + StoredType(p)
}

func docPhrase(p descriptor.Property) string {
	if p.Doc != "" {
		return strings.TrimSuffix(p.Doc, ".")
	}
	return "the " + strings.ReplaceAll(p.Name, "_", " ")
}

// Getter renders the accessor of p on entity e. Fallible properties return
// the stored error unchanged alongside the zero value. Nested entities are
// handed out by pointer; every other kind already shares its backing data or
// is a plain value.
func Getter(e descriptor.Entity, p descriptor.Property) string {
	recv := e.Receiver()
	field := recv + "." + p.FieldName()

	var ret, body string
	switch {
	case p.Fallible && p.Type.Kind == descriptor.KindEntity:
		ret, body = "("+ValueType(p)+", error)", "return "+field+".Ref()"
	case p.Fallible:
		ret, body = "("+ValueType(p)+", error)", "return "+field+".Get()"
	case p.Type.Kind == descriptor.KindEntity:
		ret, body = ValueType(p), "return &"+field
	default:
		ret, body = ValueType(p), "return "+field
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// %s returns %s.\n", p.GetterName(), docPhrase(p))
	fmt.Fprintf(&b, "func (%s *%s) %s() %s {\n", recv, e.Name, p.GetterName(), ret)
	fmt.Fprintf(&b, "\t%s\n", body)
	b.WriteString("}\n")
	return b.String()
}

// APIGetter renders the accessor of p on the API type of e. It returns the
// empty string when p is not exposed.
func APIGetter(e descriptor.Entity, p descriptor.Property) string {
	if !p.API || e.APIName == "" {
		return ""
	}
	recv := common.Receiver(e.APIName)
	call := "data." + p.GetterName() + "()"
	ret := "return " + call
	if !p.Fallible {
		ret = "return " + call + ", nil"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// %s returns %s. It fails with ErrNotReady while the %s is unavailable.\n",
		p.APIGetterName(), docPhrase(p), strings.ToLower(e.Name))
	fmt.Fprintf(&b, "func (%s %s) %s() (%s, error) {\n", recv, e.APIName, p.APIGetterName(), ValueType(p))
	fmt.Fprintf(&b, "\tdata, err := %s.data.Get()\n", recv)
	b.WriteString("\tif err != nil || data == nil {\n")
	fmt.Fprintf(&b, "\t\tvar zero %s\n", ValueType(p))
	b.WriteString("\t\treturn zero, ErrNotReady\n")
	b.WriteString("\t}\n")
	fmt.Fprintf(&b, "\t%s\n", ret)
	b.WriteString("}\n")
	return b.String()
}

// Updater renders the refresh method of p. The second result is false when
// p is not refreshed or no update expression can be derived.
//
// A fallible property always takes the new outcome, error or not. A
// non-fallible property keeps its last good value when the refresh fails.
func Updater(e descriptor.Entity, p descriptor.Property) (string, bool) {
	if !p.Update {
		return "", false
	}
	res := Resolve(p, PhaseUpdate)
	if res.Strategy == StrategyNone {
		return "", false
	}
	recv := e.Receiver()
	field := recv + "." + p.FieldName()

	var b strings.Builder
	fmt.Fprintf(&b, "func (%s *%s) %s() {\n", recv, e.Name, p.UpdaterName())
	if res.Wrapped && !p.Fallible {
		fmt.Fprintf(&b, "\tif v, err := %s.Get(); err == nil {\n", res.Expr)
		fmt.Fprintf(&b, "\t\t%s = v\n", field)
		b.WriteString("\t}\n")
	} else {
		fmt.Fprintf(&b, "\t%s = %s\n", field, res.Expr)
	}
	b.WriteString("}\n")
	return b.String(), true
}

// Binding renders the constructor statements binding the local named after
// p. It returns the empty string when p is supplied by the caller and false
// when an initialized property has no resolvable initializer.
//
// Fallible properties start out pending and are filled by the update
// methods, unless an explicit initializer says otherwise. Non-fallible
// fetched properties abort construction when the fetch fails.
func Binding(e descriptor.Entity, p descriptor.Property) (string, bool) {
	if !p.Initialize {
		return "", true
	}
	res := Resolve(p, PhaseInitial)
	local := p.FieldName()
	switch {
	case res.Strategy == StrategyNone:
		return "", false
	case res.Strategy == StrategyExplicit:
		return fmt.Sprintf("%s := %s\n", local, res.Expr), true
	case p.Fallible:
		return fmt.Sprintf("%s := Pending[%s]()\n", local, p.Type.GoType()), true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s, err := %s.Get()\n", local, res.Expr)
	b.WriteString("if err != nil {\n")
	fmt.Fprintf(&b, "\treturn nil, fmt.Errorf(\"%s %s: %%w\", err)\n", common.ToSnakeCase(e.Name), p.Name)
	b.WriteString("}\n")
	return b.String(), true
}

// Repair renders the update_from statement of p: a failed field takes the
// other snapshot's outcome, a good one is kept. Non-fallible properties are
// never touched.
func Repair(e descriptor.Entity, p descriptor.Property) string {
	if !p.Fallible {
		return ""
	}
	field := e.Receiver() + "." + p.FieldName()
	return fmt.Sprintf("%s = %s.Or(other.%s)\n", field, field, p.FieldName())
}
