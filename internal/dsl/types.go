// Package dsl is the operation registry (spec §4.B): three built-in
// catalogues of Function records, each an immutable name, signature,
// evaluator and bounds rule. Higher-order forms (map/filter/count/
// zipwith/scanl1) are generated at catalogue-build time, one Function
// per valid inner lambda, rather than dispatched through reflection —
// the same "build the table once, look it up forever" shape as the
// teacher's module loader cache.
package dsl

import (
	"fmt"

	"iogen/internal/ioerrors"
	"iogen/internal/value"
)

// Bounds is a bounds-propagation rule: given an output interval
// [lo, hi] and the maximum list length L, it returns one tightened
// input interval per operand. Rules are total — an infeasible range
// collapses to [0, 0], never an error.
type Bounds func(lo, hi, L int) [][2]int

// Eval is a pure evaluator over a Function's signature prefix.
type Eval func(args []value.Value) (value.Value, error)

// Function is an immutable catalogue entry (spec §3 "Function").
type Function struct {
	Name   string
	Sig    []value.Type // sig[len(sig)-1] is the result type
	Eval   Eval
	Bounds Bounds
}

// Arity is the number of parameters (len(Sig) - 1).
func (f *Function) Arity() int { return len(f.Sig) - 1 }

// Result is the function's declared result type.
func (f *Function) Result() value.Type { return f.Sig[len(f.Sig)-1] }

// Language is a built catalogue: an ordered list plus a name-indexed
// lookup table, mirroring get_language_dict in the reference compiler.
type Language struct {
	Functions []*Function
	byName    map[string]*Function
}

// NewLanguage indexes a function list by name. Catalogue builders call
// this once; the result is immutable and safe to share read-only
// across concurrent task workers.
func NewLanguage(fns []*Function) *Language {
	byName := make(map[string]*Function, len(fns))
	for _, f := range fns {
		byName[f.Name] = f
	}
	return &Language{Functions: fns, byName: byName}
}

// Lookup resolves an operation token (e.g. "head", "map +", "FILTER isEVEN")
// to its Function, or a ParseError if the name isn't in this catalogue.
func (l *Language) Lookup(name string) (*Function, error) {
	f, ok := l.byName[name]
	if !ok {
		return nil, ioerrors.NewParseError(-1, name, fmt.Sprintf("unknown operation %q", name))
	}
	return f, nil
}

// evalArgErr builds the ill-typed-arguments EvaluationFault shared by
// every evaluator below; it should be unreachable when bounds are
// respected by the sampler.
func evalArgErr(fn string, args []value.Value, reason string) error {
	strs := make([]string, len(args))
	for i, a := range args {
		strs[i] = a.String()
	}
	return ioerrors.NewEvaluationFault(fn, strs, reason)
}
