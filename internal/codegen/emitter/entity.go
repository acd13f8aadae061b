package emitter

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/ts3go/ts3plugin/internal/codegen/descriptor"
)

const entityTemplate = `{{.Doc}}type {{.Name}} struct {
{{range .Fields}}	{{.}}
{{end}}{{range .ExtraFields}}	{{.}}
{{end}}}

{{range .Getters}}{{.}}
{{end}}{{if .APIName}}// {{.APIName}} is the read-only view of a {{.Name}} handed to API users.
// The underlying {{.Name}} may be missing, in which case every accessor
// fails with ErrNotReady.
type {{.APIName}} struct {
	data Outcome[*{{.Name}}]
}

// {{.APIConstructor}} wraps the result of looking a {{.Name}} up.
func {{.APIConstructor}}(data Outcome[*{{.Name}}]) {{.APIName}} {
	return {{.APIName}}{data: data}
}

{{range .APIGetters}}{{.}}
{{end}}{{end}}{{range .Updaters}}{{.}}
{{end}}// {{.UpdateName}} refetches every refreshable property of the {{.Lower}}.
// Failures are stored per property.
func ({{.Recv}} *{{.Name}}) {{.UpdateName}}() {
{{range .UpdateCalls}}	{{$.Recv}}.{{.}}()
{{end}}}

// {{.UpdateFromName}} repairs the properties of {{.Recv}} that failed to load
// with the values held by other. Properties that loaded are kept.
func ({{.Recv}} *{{.Name}}) {{.UpdateFromName}}(other *{{.Name}}) {
	if other == nil {
		return
	}
{{range .Repairs}}	{{.}}{{end}}}

// {{.Constructor}} builds a {{.Name}}. Fallible properties start out pending
// until the first call to {{.UpdateName}}.
func {{.Constructor}}({{.Params}}) (*{{.Name}}, error) {
{{range .ExtraInit}}{{.}}
{{end}}{{range .Bindings}}{{.}}{{end}}	return &{{.Name}}{
{{range .Literal}}		{{.}},
{{end}}{{range .ExtraCreation}}		{{.}},
{{end}}	}, nil
}
`

var entityTmpl = template.Must(template.New("entity").Parse(entityTemplate))

type entityData struct {
	Doc            string
	Name           string
	Lower          string
	Recv           string
	APIName        string
	APIConstructor string
	Constructor    string
	UpdateName     string
	UpdateFromName string
	Params         string

	Fields        []string
	ExtraFields   []string
	Getters       []string
	APIGetters    []string
	Updaters      []string
	UpdateCalls   []string
	Repairs       []string
	ExtraInit     []string
	Bindings      []string
	Literal       []string
	ExtraCreation []string
}

// Entity renders the type declaration, accessors, API view, update methods
// and constructor of e. It fails when a property that must be initialized
// has no resolvable initializer.
func Entity(e descriptor.Entity) (string, error) {
	data := entityData{
		Doc:            comment(e.Doc, e.Name+" is generated from its descriptor."),
		Name:           e.Name,
		Lower:          strings.ToLower(e.Name),
		Recv:           e.Receiver(),
		APIName:        e.APIName,
		APIConstructor: e.APIConstructorName(),
		Constructor:    e.ConstructorName(),
		UpdateName:     e.UpdateName(),
		UpdateFromName: e.UpdateFromName(),
		Params:         strings.Join(e.Params, ", "),
		ExtraFields:    e.ExtraFields,
		ExtraInit:      e.ExtraInit,
		ExtraCreation:  e.ExtraCreation,
	}

	for _, p := range e.Properties {
		data.Fields = append(data.Fields, FieldDecl(p))
		data.Getters = append(data.Getters, Getter(e, p))
		if g := APIGetter(e, p); g != "" {
			data.APIGetters = append(data.APIGetters, g)
		}
		if u, ok := Updater(e, p); ok {
			data.Updaters = append(data.Updaters, u)
			data.UpdateCalls = append(data.UpdateCalls, p.UpdaterName())
		}
		if r := Repair(e, p); r != "" {
			data.Repairs = append(data.Repairs, r)
		}
		bind, ok := Binding(e, p)
		if !ok {
			return "", fmt.Errorf("entity %s: property %s has no initializer", e.Name, p.Name)
		}
		if bind != "" {
			data.Bindings = append(data.Bindings, bind)
		}
		data.Literal = append(data.Literal, p.FieldName()+": "+p.FieldName())
	}

	var b strings.Builder
	if err := entityTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("execute entity template for %s: %w", e.Name, err)
	}
	return b.String(), nil
}

// comment turns free text into a Go comment block, using fallback when the
// text is empty.
func comment(text, fallback string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		text = fallback
	}
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimRight(line, " \t"); line == "" {
			b.WriteString("//\n")
			continue
		}
		b.WriteString("// " + line + "\n")
	}
	return b.String()
}
