package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/ts3go/ts3plugin/internal/codegen/descriptor"
	"github.com/ts3go/ts3plugin/internal/codegen/emitter"
	"github.com/ts3go/ts3plugin/internal/codegen/entities"
	"github.com/ts3go/ts3plugin/internal/codegen/meta"
)

// Describe prints the descriptor model together with the strategy chosen
// for every property.
type Describe struct {
	Package string `help:"Package clause of the generated file" default:"ts3" env:"TS3GEN_PACKAGE"`
	Format  string `help:"Output format" enum:"json,yaml,toml" default:"yaml"`
}

type variantDoc struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Code int64  `json:"code" yaml:"code" toml:"code"`
}

type enumDoc struct {
	Name       string       `json:"name" yaml:"name" toml:"name"`
	Underlying string       `json:"underlying" yaml:"underlying" toml:"underlying"`
	Variants   []variantDoc `json:"variants" yaml:"variants" toml:"variants"`
}

type propertyDoc struct {
	Name       string `json:"name" yaml:"name" toml:"name"`
	Type       string `json:"type" yaml:"type" toml:"type"`
	Fallible   bool   `json:"fallible" yaml:"fallible" toml:"fallible"`
	API        bool   `json:"api" yaml:"api" toml:"api"`
	Selector   string `json:"selector,omitempty" yaml:"selector,omitempty" toml:"selector,omitempty"`
	Initial    string `json:"initial,omitempty" yaml:"initial,omitempty" toml:"initial,omitempty"`
	InitialVia string `json:"initialVia,omitempty" yaml:"initialVia,omitempty" toml:"initialVia,omitempty"`
	Update     string `json:"update,omitempty" yaml:"update,omitempty" toml:"update,omitempty"`
	UpdateVia  string `json:"updateVia,omitempty" yaml:"updateVia,omitempty" toml:"updateVia,omitempty"`
}

type entityDoc struct {
	Name        string        `json:"name" yaml:"name" toml:"name"`
	API         string        `json:"api,omitempty" yaml:"api,omitempty" toml:"api,omitempty"`
	Constructor string        `json:"constructor" yaml:"constructor" toml:"constructor"`
	Properties  []propertyDoc `json:"properties" yaml:"properties" toml:"properties"`
}

// ModelDoc is the serializable form of the descriptor model.
type ModelDoc struct {
	Package  string      `json:"package" yaml:"package" toml:"package"`
	Enums    []enumDoc   `json:"enums" yaml:"enums" toml:"enums"`
	Entities []entityDoc `json:"entities" yaml:"entities" toml:"entities"`
}

// NewModelDoc resolves every property of md.
func NewModelDoc(md *meta.Metadata) ModelDoc {
	doc := ModelDoc{Package: md.Package}
	for _, e := range md.Enums {
		ed := enumDoc{Name: e.Name, Underlying: e.Underlying.String()}
		for _, v := range e.Variants {
			ed.Variants = append(ed.Variants, variantDoc{Name: v.Name, Code: v.Code})
		}
		doc.Enums = append(doc.Enums, ed)
	}
	for _, e := range md.Entities {
		ed := entityDoc{Name: e.Name, API: e.APIName, Constructor: e.ConstructorName()}
		for _, p := range e.Properties {
			ed.Properties = append(ed.Properties, describeProperty(p))
		}
		doc.Entities = append(doc.Entities, ed)
	}
	return doc
}

func describeProperty(p descriptor.Property) propertyDoc {
	pd := propertyDoc{
		Name:     p.Name,
		Type:     p.Type.String(),
		Fallible: p.Fallible,
		API:      p.API,
	}
	if p.Namespace != "" {
		pd.Selector = p.Selector()
	}
	if p.Initialize {
		res := emitter.Resolve(p, emitter.PhaseInitial)
		pd.Initial, pd.InitialVia = res.Strategy.String(), res.Expr
	}
	if p.Update {
		res := emitter.Resolve(p, emitter.PhaseUpdate)
		pd.Update, pd.UpdateVia = res.Strategy.String(), res.Expr
	}
	return pd
}

// Encode writes doc in the given format.
func (doc ModelDoc) Encode(w io.Writer, format string) error {
	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(doc)
	case "toml":
		data, err = toml.Marshal(doc)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	_, err = w.Write(data)
	return err
}

// Run is called by Kong when the describe command is executed.
func (c *Describe) Run(logger *slog.Logger) error {
	md := entities.Metadata(c.Package)
	if err := emitter.Validate(md); err != nil {
		logger.Warn("Descriptors do not validate", "error", err)
	}
	return NewModelDoc(md).Encode(os.Stdout, c.Format)
}
