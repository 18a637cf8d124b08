// Package value implements the tagged Value variant and Type tags
// shared by every other package in this module: the DSL registry
// signs its functions with Type tags, the compiler's register table
// carries one Type per position, and the executor moves Value structs
// between registers.
package value

import (
	"fmt"
	"strings"
)

// Type is the enumerated tag that appears in function signatures and
// in a compiled program's register table. There are exactly three
// cases.
type Type int

const (
	TInt Type = iota
	TSeq
	TBool
)

func (t Type) String() string {
	switch t {
	case TInt:
		return "int"
	case TSeq:
		return "[int]"
	case TBool:
		return "bool"
	default:
		return "?"
	}
}

// Kind mirrors Type but tags a concrete Value rather than a signature
// slot; kept distinct so a Value's Kind can never silently stand in
// for a function's declared Type (e.g. a TBool Value is never a legal
// program input or output type).
type Kind int

const (
	KInt Kind = iota
	KSeq
	KBool
)

// Value is a tagged variant: exactly one of Int, Seq, Bool is
// meaningful, selected by Kind. The zero Value is the integer 0.
type Value struct {
	Kind Kind
	Int  int
	Seq  []int
	Bool bool
}

// Int_ constructs an integer Value. Named with a trailing underscore
// to avoid shadowing the Int field when both are in scope.
func Int_(n int) Value { return Value{Kind: KInt, Int: n} }

// Seq_ constructs a sequence Value. The slice is not copied; callers
// that need to retain ownership of xs should copy first.
func Seq_(xs []int) Value { return Value{Kind: KSeq, Seq: xs} }

// Bool_ constructs a boolean Value. Bool values are produced only by
// predicate lambdas; they are never a program input or final output.
func Bool_(b bool) Value { return Value{Kind: KBool, Bool: b} }

// Null is the integer sentinel returned by operations that inspect an
// empty or out-of-range sequence (head/last/index on empty input).
// It is the value maxBound, never a distinct variant.
func Null(maxBound int) Value { return Int_(maxBound) }

// Type reports the Type tag corresponding to this Value's Kind.
func (v Value) Type() Type {
	switch v.Kind {
	case KInt:
		return TInt
	case KSeq:
		return TSeq
	case KBool:
		return TBool
	default:
		return TInt
	}
}

// Equal is structural equality; sequence equality is element-wise.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KInt:
		return v.Int == o.Int
	case KBool:
		return v.Bool == o.Bool
	case KSeq:
		if len(v.Seq) != len(o.Seq) {
			return false
		}
		for i := range v.Seq {
			if v.Seq[i] != o.Seq[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders a canonical form used as the duplicate-detection key
// in the interestingness filter; sequence stringification must be
// stable across calls, which a simple comma-joined form satisfies.
func (v Value) String() string {
	switch v.Kind {
	case KInt:
		return fmt.Sprintf("%d", v.Int)
	case KBool:
		return fmt.Sprintf("%t", v.Bool)
	case KSeq:
		parts := make([]string, len(v.Seq))
		for i, x := range v.Seq {
			parts[i] = fmt.Sprintf("%d", x)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "<invalid>"
	}
}

// CopySeq returns a fresh copy of a sequence Value's backing slice.
// Evaluators that mutate (sort, reverse) must call this rather than
// writing through the received slice, since Value never mutates its
// inputs.
func CopySeq(xs []int) []int {
	out := make([]int, len(xs))
	copy(out, xs)
	return out
}
