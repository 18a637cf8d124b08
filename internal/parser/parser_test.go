package parser

import (
	"testing"

	"iogen/internal/value"
)

func TestParseInputDeclarations(t *testing.T) {
	slots, err := Parse([]string{"a <- int", "b <- [int]"})
	if err != nil {
		t.Fatal(err)
	}
	if !slots[0].IsInput || slots[0].Type != value.TInt {
		t.Errorf("slot 0: got %+v, want int input", slots[0])
	}
	if !slots[1].IsInput || slots[1].Type != value.TSeq {
		t.Errorf("slot 1: got %+v, want [int] input", slots[1])
	}
}

func TestParseRejectsWrongRegisterLetter(t *testing.T) {
	_, err := Parse([]string{"b <- int"})
	if err == nil {
		t.Fatal("expected an error: first line must bind register 'a'")
	}
}

func TestParseSimpleOperationOperands(t *testing.T) {
	slots, err := Parse([]string{"a <- [int]", "b <- head a"})
	if err != nil {
		t.Fatal(err)
	}
	if slots[1].FuncName != "head" || len(slots[1].Operands) != 1 || slots[1].Operands[0] != 0 {
		t.Errorf("slot 1: got %+v, want head(0)", slots[1])
	}
}

// The second token is part of the operation name exactly when it is
// not a single lowercase operand letter.
func TestParseDisambiguatesHigherOrderLambdaName(t *testing.T) {
	slots, err := Parse([]string{"a <- [int]", "b <- map +"})
	if err == nil {
		t.Fatal("a lambda form with no operand should be rejected")
	}
	_ = slots

	slots, err = Parse([]string{"a <- [int]", "b <- map + a"})
	if err != nil {
		t.Fatal(err)
	}
	if slots[1].FuncName != "map +" {
		t.Errorf("expected combined operation name %q, got %q", "map +", slots[1].FuncName)
	}
	if len(slots[1].Operands) != 1 || slots[1].Operands[0] != 0 {
		t.Errorf("expected single operand referencing register 0, got %v", slots[1].Operands)
	}
}

func TestParseUppercaseLambdaNameIsNotAnOperandLetter(t *testing.T) {
	slots, err := Parse([]string{"a <- [int]", "b <- filter isEVEN a"})
	if err != nil {
		t.Fatal(err)
	}
	if slots[1].FuncName != "filter isEVEN" {
		t.Errorf("expected %q, got %q", "filter isEVEN", slots[1].FuncName)
	}
}

func TestParseRejectsForwardReferences(t *testing.T) {
	_, err := Parse([]string{"a <- [int]", "b <- head c"})
	if err == nil {
		t.Fatal("expected an error: operand must precede the defining register")
	}
}

func TestParseRejectsMissingOperands(t *testing.T) {
	_, err := Parse([]string{"a <- [int]", "b <- head"})
	if err == nil {
		t.Fatal("expected an error: head requires an operand")
	}
}
