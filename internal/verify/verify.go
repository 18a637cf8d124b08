// Package verify confirms that I/O pairs obey their declared
// signatures (spec.md §4.H) — a defensive check run after sampling,
// independent of the bound-propagation guarantees the compiler already
// gives, so a bug in one doesn't mask a bug in the other.
package verify

import (
	"fmt"

	"iogen/internal/ioerrors"
	"iogen/internal/value"
)

// IntConstraint bounds a scalar integer value.
type IntConstraint struct {
	Lo, Hi int
}

func (c IntConstraint) Check(v value.Value) error {
	if v.Kind != value.KInt {
		return ioerrors.NewTypeVerificationFault(v.String(), "int", "value is not an integer")
	}
	if v.Int < c.Lo || v.Int > c.Hi {
		return ioerrors.NewTypeVerificationFault(v.String(), fmt.Sprintf("int in [%d,%d]", c.Lo, c.Hi), "out of range")
	}
	return nil
}

// ListConstraint bounds a sequence value: each element must satisfy
// Elem, and length must fall in [MinLen, MaxLen].
type ListConstraint struct {
	Elem            IntConstraint
	MinLen, MaxLen int
}

func (c ListConstraint) Check(v value.Value) error {
	if v.Kind != value.KSeq {
		return ioerrors.NewTypeVerificationFault(v.String(), "[int]", "value is not a sequence")
	}
	if len(v.Seq) < c.MinLen || len(v.Seq) > c.MaxLen {
		return ioerrors.NewTypeVerificationFault(v.String(), fmt.Sprintf("length in [%d,%d]", c.MinLen, c.MaxLen), "length out of range")
	}
	for _, x := range v.Seq {
		if err := c.Elem.Check(value.Int_(x)); err != nil {
			return err
		}
	}
	return nil
}

// Constraint checks one value, scalar or sequence.
type Constraint interface {
	Check(v value.Value) error
}

// ArgConstraints is an ordered list of per-position constraints for a
// tuple of inputs, plus the constraint on the produced output.
type ArgConstraints struct {
	Inputs []Constraint
	Output Constraint
}

// CheckPair verifies one (inputs, output) observation against c.
// Arity mismatch is itself a fault, matching spec.md's "tuple inputs:
// arity and element types match" clause.
func (c ArgConstraints) CheckPair(inputs []value.Value, output value.Value) error {
	if len(inputs) != len(c.Inputs) {
		return ioerrors.NewTypeVerificationFault(fmt.Sprintf("%d inputs", len(inputs)), fmt.Sprintf("%d inputs", len(c.Inputs)), "arity mismatch")
	}
	for i, in := range inputs {
		if err := c.Inputs[i].Check(in); err != nil {
			return err
		}
	}
	return c.Output.Check(output)
}

// DefaultMinLen and DefaultMaxLen are the [min_len, max_len] sequence-length range used
// when a caller doesn't supply a narrower one (spec.md §4.H).
const (
	DefaultMinLen = 0
	DefaultMaxLen = 10
)
