// Package parser builds a register table from tokenized program
// lines: one entry per line, either an input declaration or an
// operation slot naming a function and its operand registers. It does
// not resolve the function name against a catalogue or check types —
// that is the compiler's job, once it knows which dsl.Language is in
// play.
package parser

import (
	"fmt"

	"iogen/internal/ioerrors"
	"iogen/internal/lexer"
	"iogen/internal/value"
)

// Slot is one parsed register: either a declared input (FuncName == "")
// or an operation applying FuncName to Operands (earlier register
// indices, in source order).
type Slot struct {
	Line     int
	Letter   byte
	Type     value.Type // only meaningful for input slots; operation slots get their type from the function
	IsInput  bool
	FuncName string
	Operands []int
}

// Parse turns normalized source lines into a register table. The
// register letter at line index t must be 'a'+t; this is checked
// strictly, matching the one-register-per-line grammar.
func Parse(lines []string) ([]Slot, error) {
	slots := make([]Slot, 0, len(lines))
	for t, line := range lines {
		toks, err := lexer.ScanLine(t+1, line)
		if err != nil {
			return nil, ioerrors.NewParseError(t+1, line, err.Error())
		}
		if len(toks) < 3 || toks[0].Type != lexer.TokenIdent || toks[1].Type != lexer.TokenLeftArrow {
			return nil, ioerrors.NewParseError(t+1, line, "expected '<letter> <- <instruction>'")
		}
		letter := toks[0].Lexeme
		want := byte('a' + t)
		if len(letter) != 1 || letter[0] != want {
			return nil, ioerrors.NewParseError(t+1, line, fmt.Sprintf("expected register %q at position %d, got %q", string(want), t, letter))
		}

		rest := toks[2 : len(toks)-1] // drop the leading ident/arrow pair and trailing EOF
		if len(rest) == 0 {
			return nil, ioerrors.NewParseError(t+1, line, "missing instruction")
		}

		slot := Slot{Line: t + 1, Letter: want}

		switch rest[0].Lexeme {
		case "int":
			slot.IsInput = true
			slot.Type = value.TInt
			slots = append(slots, slot)
			continue
		case "[int]":
			slot.IsInput = true
			slot.Type = value.TSeq
			slots = append(slots, slot)
			continue
		}

		// Operation slot: rest[0] is the op name. If rest[1] exists and
		// is not a single lowercase operand letter, it's part of the
		// operation name (the only look-ahead this grammar needs).
		name := rest[0].Lexeme
		args := rest[1:]
		if len(args) > 0 && !isOperandLetter(args[0].Lexeme) {
			name = name + " " + args[0].Lexeme
			args = args[1:]
		}
		if len(args) == 0 {
			return nil, ioerrors.NewParseError(t+1, line, "operation has no operands")
		}
		operands := make([]int, 0, len(args))
		for _, a := range args {
			if !isOperandLetter(a.Lexeme) {
				return nil, ioerrors.NewParseError(t+1, line, fmt.Sprintf("expected operand letter, got %q", a.Lexeme))
			}
			idx := int(a.Lexeme[0] - 'a')
			if idx >= t {
				return nil, ioerrors.NewParseError(t+1, line, fmt.Sprintf("operand %q does not precede register %q", a.Lexeme, string(want)))
			}
			operands = append(operands, idx)
		}
		slot.FuncName = name
		slot.Operands = operands
		slots = append(slots, slot)
	}
	return slots, nil
}

func isOperandLetter(s string) bool {
	return len(s) == 1 && s[0] >= 'a' && s[0] <= 'z'
}
