// Package compiler turns a register program's source text into an
// immutable, executable Program: it resolves each operation slot
// against a dsl.Language, checks arity and operand types, and runs
// backward interval propagation to derive legal input ranges.
package compiler

import (
	"fmt"

	"iogen/internal/dsl"
	"iogen/internal/ioerrors"
	"iogen/internal/lexer"
	"iogen/internal/parser"
	"iogen/internal/value"
)

// Register is one compiled slot: either an input (Func == nil) or an
// operation applying Func to the values at Pointers.
type Register struct {
	Type     value.Type
	Func     *dsl.Function
	Pointers []int
}

// Program is the immutable compiled form of one source text (spec §3).
type Program struct {
	Src         string
	InputTypes  []value.Type
	OutputType  value.Type
	Registers   []Register
	InputBounds [][2]int
}

// Options bundles the parameters backward propagation needs beyond the
// program text itself.
type Options struct {
	Lang                  *dsl.Language
	MinBound, MaxBound    int
	MaxListLen            int // L; 0 means "unset", skip propagation
	MinInputRangeLength   int
}

// Compile parses src (newline- or " | "-separated), resolves every
// operation against opts.Lang, and propagates bounds backward. A
// malformed program yields a *ioerrors.ParseError; an input whose
// derived range collapses yields a *ioerrors.PropagationError.
func Compile(src string, opts Options) (*Program, error) {
	lines := lexer.SplitSource(src)
	slots, err := parser.Parse(lines)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, ioerrors.NewParseError(0, src, "empty program")
	}

	regs := make([]Register, len(slots))
	var inputTypes []value.Type
	inputCount := 0

	for t, s := range slots {
		if s.IsInput {
			regs[t] = Register{Type: s.Type}
			inputTypes = append(inputTypes, s.Type)
			inputCount++
			continue
		}
		fn, err := opts.Lang.Lookup(s.FuncName)
		if err != nil {
			return nil, ioerrors.NewParseError(s.Line, lines[t], err.Error())
		}
		if fn.Arity() != len(s.Operands) {
			return nil, ioerrors.NewParseError(s.Line, lines[t],
				fmt.Sprintf("%q expects %d operand(s), got %d", s.FuncName, fn.Arity(), len(s.Operands)))
		}
		for i, p := range s.Operands {
			if regs[p].Type != fn.Sig[i] {
				return nil, ioerrors.NewParseError(s.Line, lines[t],
					fmt.Sprintf("operand %d of %q: expected %s, got %s", i, s.FuncName, fn.Sig[i], regs[p].Type))
			}
		}
		regs[t] = Register{Type: fn.Result(), Func: fn, Pointers: s.Operands}
	}

	outputType := regs[len(regs)-1].Type

	inputBounds, err := propagate(regs, inputCount, opts)
	if err != nil {
		return nil, err
	}

	return &Program{
		Src:         src,
		InputTypes:  inputTypes,
		OutputType:  outputType,
		Registers:   regs,
		InputBounds: inputBounds,
	}, nil
}
