package generator

import (
	"fmt"

	"github.com/ts3go/ts3plugin/internal/codegen/descriptor"
	"github.com/ts3go/ts3plugin/internal/codegen/emitter"
	"github.com/ts3go/ts3plugin/internal/codegen/meta"
	"github.com/ts3go/ts3plugin/internal/codegen/scanner"
)

// FetcherInterface is the runtime interface fetch functions are called on.
const FetcherInterface = "Fetcher"

// Crosscheck verifies md against the runtime package the output is compiled
// into: every fetch function must be a Fetcher method taking the property's
// selector type, every selector must be declared with that type, and every
// named type must exist. The result is a *emitter.ValidationError or nil.
func Crosscheck(md *meta.Metadata, rt *scanner.Runtime) error {
	var problems []emitter.Problem
	add := func(scope, format string, args ...any) {
		problems = append(problems, emitter.Problem{Scope: scope, Message: fmt.Sprintf(format, args...)})
	}

	declared := map[string]bool{}
	for _, e := range md.Enums {
		declared[e.Name] = true
	}
	for _, e := range md.Entities {
		declared[e.Name] = true
	}

	if _, ok := rt.Interfaces[FetcherInterface]; !ok {
		add("runtime", "%s does not declare the %s interface", rt.Dir, FetcherInterface)
	}

	for _, e := range md.Entities {
		for _, p := range e.Properties {
			scope := e.Name + "." + p.Name
			for _, name := range namedTypes(p.Type) {
				if !declared[name] && rt.Types[name] == "" {
					add(scope, "type %s is not declared", name)
				}
			}
			for _, phase := range emittedPhases(p) {
				res := emitter.Resolve(p, phase)
				if res.Function == "" {
					continue
				}
				m, ok := rt.Method(FetcherInterface, res.Function)
				switch {
				case !ok:
					add(scope, "%s is not a method of %s", res.Function, FetcherInterface)
				case len(m.Params) == 0 || m.Params[len(m.Params)-1] != p.Namespace:
					add(scope, "%s does not take a %s selector", res.Function, p.Namespace)
				}
				c, ok := rt.Constants[res.Selector]
				switch {
				case !ok:
					add(scope, "selector %s is not declared", res.Selector)
				case c.Type != p.Namespace:
					add(scope, "selector %s has type %s, not %s", res.Selector, c.Type, p.Namespace)
				}
			}
		}
	}

	if len(problems) > 0 {
		return &emitter.ValidationError{Problems: problems}
	}
	return nil
}

// emittedPhases lists the phases that produce a fetch call in the output.
// Fallible properties start out pending, so only their refresh fetches.
func emittedPhases(p descriptor.Property) []emitter.Phase {
	var out []emitter.Phase
	if p.Initialize && !p.Fallible {
		out = append(out, emitter.PhaseInitial)
	}
	if p.Update {
		out = append(out, emitter.PhaseUpdate)
	}
	return out
}

func namedTypes(t descriptor.Type) []string {
	var out []string
	switch t.Kind {
	case descriptor.KindEnum, descriptor.KindEntity, descriptor.KindNamed:
		out = append(out, t.Name)
	}
	if t.Key != nil {
		out = append(out, namedTypes(*t.Key)...)
	}
	if t.Elem != nil {
		out = append(out, namedTypes(*t.Elem)...)
	}
	return out
}
