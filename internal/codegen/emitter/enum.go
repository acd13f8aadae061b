package emitter

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/ts3go/ts3plugin/internal/codegen/descriptor"
)

const enumTemplate = `{{.Doc}}type {{.Name}} {{.Underlying}}

const (
{{range .Variants}}{{.Doc}}	{{.Const}} {{$.Name}} = {{.Code}}
{{end}})

// {{.Parser}} converts a raw host code into a {{.Name}}. Codes without a
// declared variant are rejected with a *DecodeError.
func {{.Parser}}(raw int64) ({{.Name}}, error) {
	switch raw {
{{range .Variants}}	case {{.Code}}:
		return {{.Const}}, nil
{{end}}	}
	return 0, &DecodeError{Enum: "{{.Name}}", Raw: raw}
}

// Code returns the raw host code of v.
func (v {{.Name}}) Code() int64 {
	return int64(v)
}

func (v {{.Name}}) String() string {
	switch v {
{{range .Variants}}	case {{.Const}}:
		return "{{.Name}}"
{{end}}	}
	return "{{.Name}}(" + strconv.FormatInt(int64(v), 10) + ")"
}
`

var enumTmpl = template.Must(template.New("enum").Parse(enumTemplate))

type variantData struct {
	Doc   string
	Name  string
	Const string
	Code  int64
}

type enumData struct {
	Doc        string
	Name       string
	Underlying string
	Parser     string
	Variants   []variantData
}

// Enum renders the type, constants, checked parser and String method of e.
func Enum(e descriptor.EnumDef) (string, error) {
	data := enumData{
		Doc:        comment(e.Doc, e.Name+" is decoded from a raw host code."),
		Name:       e.Name,
		Underlying: e.Underlying.GoType(),
		Parser:     e.ParserName(),
	}
	for _, v := range e.Variants {
		vd := variantData{Name: v.Name, Const: e.ConstName(v), Code: v.Code}
		if v.Doc != "" {
			vd.Doc = "\t" + strings.TrimSuffix(comment(v.Doc, ""), "\n") + "\n"
		}
		data.Variants = append(data.Variants, vd)
	}

	var b strings.Builder
	if err := enumTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("execute enum template for %s: %w", e.Name, err)
	}
	return b.String(), nil
}
