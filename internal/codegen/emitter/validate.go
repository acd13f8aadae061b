package emitter

import (
	"fmt"
	"math"
	"strings"

	"github.com/ts3go/ts3plugin/internal/codegen/common"
	"github.com/ts3go/ts3plugin/internal/codegen/descriptor"
	"github.com/ts3go/ts3plugin/internal/codegen/meta"
)

// Problem is a single descriptor defect.
type Problem struct {
	Scope   string // "Channel.name", "enum Codec", ...
	Message string
}

func (p Problem) String() string {
	return p.Scope + ": " + p.Message
}

// ValidationError lists every problem found in one run.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Problems)+1)
	lines = append(lines, fmt.Sprintf("%d invalid descriptor(s):", len(e.Problems)))
	for _, p := range e.Problems {
		lines = append(lines, "  "+p.String())
	}
	return strings.Join(lines, "\n")
}

type validator struct {
	md       *meta.Metadata
	problems []Problem
	names    map[string]string
}

func (v *validator) add(scope, format string, args ...any) {
	v.problems = append(v.problems, Problem{Scope: scope, Message: fmt.Sprintf(format, args...)})
}

// declare registers a package level identifier and reports clashes.
func (v *validator) declare(scope, name string) {
	if name == "" {
		return
	}
	if !common.IsIdentifier(name) {
		v.add(scope, "%q is not a valid Go identifier", name)
		return
	}
	if prev, ok := v.names[name]; ok {
		v.add(scope, "%s is already declared by %s", name, prev)
		return
	}
	v.names[name] = scope
}

// Validate checks md before anything is emitted. Every descriptor that would
// produce empty or uncompilable code is reported; the result is a
// *ValidationError or nil.
func Validate(md *meta.Metadata) error {
	v := &validator{md: md, names: map[string]string{}}
	if !common.IsIdentifier(md.Package) {
		v.add("package", "%q is not a valid package name", md.Package)
	}
	for _, e := range md.Enums {
		v.enum(e)
	}
	for _, e := range md.Entities {
		v.entity(e)
	}
	if len(v.problems) > 0 {
		return &ValidationError{Problems: v.problems}
	}
	return nil
}

func (v *validator) enum(e descriptor.EnumDef) {
	scope := "enum " + e.Name
	v.declare(scope, e.Name)
	v.declare(scope, e.ParserName())

	if !e.Underlying.Integer() {
		v.add(scope, "underlying type %s is not an integer", e.Underlying)
	}
	if len(e.Variants) == 0 {
		v.add(scope, "no variants declared")
	}
	lo, hi := integerRange(e.Underlying.Kind)
	codes := map[int64]string{}
	seen := map[string]bool{}
	for _, vr := range e.Variants {
		if seen[vr.Name] {
			v.add(scope, "duplicate variant %s", vr.Name)
			continue
		}
		seen[vr.Name] = true
		v.declare(scope, e.ConstName(vr))
		if other, ok := codes[vr.Code]; ok {
			v.add(scope, "variants %s and %s share code %d", other, vr.Name, vr.Code)
		} else {
			codes[vr.Code] = vr.Name
		}
		if vr.Code < lo || vr.Code > hi {
			v.add(scope, "code %d of %s does not fit %s", vr.Code, vr.Name, e.Underlying)
		}
	}
}

// integerRange returns the representable range of an integer kind. Codes are
// int64, so the upper bound of the unsigned 64-bit kind is clamped.
func integerRange(k descriptor.Kind) (int64, int64) {
	switch k {
	case descriptor.KindInt8:
		return math.MinInt8, math.MaxInt8
	case descriptor.KindInt16:
		return math.MinInt16, math.MaxInt16
	case descriptor.KindInt32:
		return math.MinInt32, math.MaxInt32
	case descriptor.KindUint8:
		return 0, math.MaxUint8
	case descriptor.KindUint16:
		return 0, math.MaxUint16
	case descriptor.KindUint32:
		return 0, math.MaxUint32
	case descriptor.KindUint64:
		return 0, math.MaxInt64
	default:
		return math.MinInt64, math.MaxInt64
	}
}

func (v *validator) entity(e descriptor.Entity) {
	scope := e.Name
	v.declare("entity "+e.Name, e.Name)
	v.declare("entity "+e.Name, e.ConstructorName())
	if e.APIName != "" {
		v.declare("entity "+e.Name, e.APIName)
		v.declare("entity "+e.Name, e.APIConstructorName())
	}

	params := map[string]bool{"err": true}
	for _, name := range paramNames(e.Params) {
		params[name] = true
	}

	methods := map[string]string{e.UpdateName(): "update", e.UpdateFromName(): "update from"}
	fields := map[string]string{}
	for _, p := range e.Properties {
		v.property(e, p, scope+"."+p.Name, params, methods, fields)
	}
}

// paramNames returns the names declared by constructor parameters, including
// every name of a grouped parameter such as "serverID, id uint64".
func paramNames(params []string) []string {
	var out []string
	for _, param := range params {
		for _, part := range strings.Split(param, ",") {
			if fields := strings.Fields(part); len(fields) > 0 {
				out = append(out, fields[0])
			}
		}
	}
	return out
}

func (v *validator) property(e descriptor.Entity, p descriptor.Property, scope string,
	params map[string]bool, methods, fields map[string]string) {
	if p.Name == "" {
		v.add(scope, "property without a name")
		return
	}
	if !p.Type.Valid() {
		v.add(scope, "incomplete type")
		return
	}

	field := p.FieldName()
	if !common.IsIdentifier(field) {
		v.add(scope, "field %q is not a valid Go identifier", field)
		return
	}
	if prev, ok := fields[field]; ok {
		v.add(scope, "field %s is already used by %s", field, prev)
	}
	fields[field] = p.Name
	for _, m := range []string{p.GetterName(), p.UpdaterName()} {
		if prev, ok := methods[m]; ok {
			v.add(scope, "method %s is already used by %s", m, prev)
		}
		methods[m] = p.Name
	}

	if p.API && e.APIName == "" {
		v.add(scope, "exposed on the API but %s has no API type", e.Name)
	}

	var initial, update Resolution
	if p.Initialize {
		if params[field] {
			v.add(scope, "initializer local %s collides with a constructor parameter or err", field)
		}
		initial = Resolve(p, PhaseInitial)
		switch {
		case initial.Strategy == StrategyNone:
			v.add(scope, "no initializer: set an explicit initializer, an accessor or a function for %s", p.Type)
		case initial.Strategy != StrategyExplicit && !p.Fallible:
			v.callSite(scope, p, p.InitialCall, PhaseInitial)
		}
	}
	if p.Update {
		update = Resolve(p, PhaseUpdate)
		if update.Strategy != StrategyNone && update.Strategy != StrategyExplicit {
			v.callSite(scope, p, p.UpdateCall, PhaseUpdate)
		}
	}
	if initial.Strategy == StrategyReinterpret || update.Strategy == StrategyReinterpret {
		if _, ok := v.md.Enum(p.Type.Name); !ok {
			v.add(scope, "enum %s is reinterpreted but not declared", p.Type.Name)
		}
	}
}

func (v *validator) callSite(scope string, p descriptor.Property, call descriptor.CallSite, phase Phase) {
	if p.Namespace == "" {
		v.add(scope, "%s fetch needs a namespace", phase)
	}
	if call.Fetcher == "" {
		v.add(scope, "%s fetch has no call site", phase)
	}
}
