package emitter

import (
	"fmt"
	"strings"

	"github.com/ts3go/ts3plugin/internal/codegen/descriptor"
)

// Phase selects which call site and explicit expression a resolution uses.
type Phase int

const (
	PhaseInitial Phase = iota
	PhaseUpdate
)

func (p Phase) String() string {
	if p == PhaseUpdate {
		return "update"
	}
	return "initial"
}

// Strategy is the way a property value is obtained. The constants are listed
// in precedence order.
type Strategy int

const (
	StrategyNone Strategy = iota
	StrategyExplicit
	StrategyAccessor
	StrategyFunction
	StrategyReinterpret
	StrategyDuration
	StrategyTimestamp
	StrategyBool
)

var strategyNames = [...]string{
	StrategyNone:        "none",
	StrategyExplicit:    "explicit",
	StrategyAccessor:    "accessor",
	StrategyFunction:    "function",
	StrategyReinterpret: "reinterpret",
	StrategyDuration:    "duration",
	StrategyTimestamp:   "timestamp",
	StrategyBool:        "bool",
}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Resolution is the outcome of the precedence chain for one property.
type Resolution struct {
	Strategy Strategy
	Expr     string
	// Wrapped is set when Expr evaluates to Outcome[T] of the property's
	// value type. Explicit expressions have the stored type instead, which
	// is only wrapped for fallible properties.
	Wrapped bool
	// Function and Selector name the fetch call of derived strategies.
	Function string
	Selector string
}

// Resolve runs the precedence chain; the first strategy that applies wins:
// explicit expression, accessor override, function registered for the
// type, enum reinterpretation, then the duration, timestamp and bool
// built-ins.
func Resolve(p descriptor.Property, phase Phase) Resolution {
	call, explicit := p.InitialCall, p.Initializer
	if phase == PhaseUpdate {
		call, explicit = p.UpdateCall, p.Updater
	}

	if explicit != "" {
		return Resolution{Strategy: StrategyExplicit, Expr: explicit, Wrapped: p.Fallible}
	}
	if p.Accessor != "" {
		return derived(StrategyAccessor, p, p.Accessor, capture(call, p.Accessor, p.Selector()))
	}
	if fn, ok := p.Function(p.Type); ok {
		return derived(StrategyFunction, p, fn, capture(call, fn, p.Selector()))
	}
	if p.IsReinterpretable() {
		if fn, ok := rawIntegerFunction(p); ok {
			parse := descriptor.EnumDef{Name: p.Type.Name}.ParserName()
			return derived(StrategyReinterpret, p, fn,
				fmt.Sprintf("Decode(%s, %s)", capture(call, fn, p.Selector()), parse))
		}
	}

	var builtin Strategy
	var conv string
	switch p.Type.Kind {
	case descriptor.KindDuration:
		builtin, conv = StrategyDuration, "AsDuration"
	case descriptor.KindTimestamp:
		builtin, conv = StrategyTimestamp, "AsTime"
	case descriptor.KindBool:
		builtin, conv = StrategyBool, "AsBool"
	default:
		return Resolution{}
	}
	fn, ok := rawIntegerFunction(p)
	if !ok {
		return Resolution{}
	}
	return derived(builtin, p, fn, fmt.Sprintf("%s(%s)", conv, capture(call, fn, p.Selector())))
}

func derived(s Strategy, p descriptor.Property, fn, expr string) Resolution {
	return Resolution{Strategy: s, Expr: expr, Wrapped: true, Function: fn, Selector: p.Selector()}
}

// rawIntegerFunction prefers the 32-bit signed fetch and falls back to the
// 64-bit unsigned one.
func rawIntegerFunction(p descriptor.Property) (string, bool) {
	if fn, ok := p.Function(descriptor.Int32()); ok {
		return fn, true
	}
	return p.Function(descriptor.Uint64())
}

// capture renders a fetch call whose (value, error) result is stored as an
// Outcome.
func capture(call descriptor.CallSite, fn, selector string) string {
	return "Capture(" + callExpr(call, fn, selector) + ")"
}

func callExpr(call descriptor.CallSite, fn, selector string) string {
	args := append(append([]string{}, call.Args...), selector)
	target := fn
	if call.Fetcher != "" {
		target = call.Fetcher + "." + fn
	}
	return target + "(" + strings.Join(args, ", ") + ")"
}
