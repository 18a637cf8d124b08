package executor

import (
	"testing"

	"iogen/internal/compiler"
	"iogen/internal/dsl"
	"iogen/internal/value"
)

func TestRunHeadOfEmptyYieldsNullSentinel(t *testing.T) {
	lang := dsl.GetSimpleDSL(10)
	prog, err := compiler.Compile("a <- [int]\nb <- head a", compiler.Options{
		Lang: lang, MinBound: -10, MaxBound: 10,
	})
	if err != nil {
		t.Fatal(err)
	}
	out, err := Run(prog, []value.Value{value.Seq_(nil)})
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != value.KInt || out.Int != 10 {
		t.Errorf("head of empty: got %v, want int Null(10)", out)
	}
}

func TestRunDoesNotMutateInputSequence(t *testing.T) {
	lang := dsl.GetExtendedDSL(10)
	prog, err := compiler.Compile("a <- [int]\nb <- sort a", compiler.Options{
		Lang: lang, MinBound: -10, MaxBound: 10,
	})
	if err != nil {
		t.Fatal(err)
	}
	xs := []int{5, 3, 4}
	input := value.Seq_(xs)
	out, err := Run(prog, []value.Value{input})
	if err != nil {
		t.Fatal(err)
	}
	if xs[0] != 5 || xs[1] != 3 || xs[2] != 4 {
		t.Errorf("sort mutated the caller's backing slice: %v", xs)
	}
	want := []int{3, 4, 5}
	if !value.Seq_(want).Equal(out) {
		t.Errorf("sort: got %v, want %v", out.Seq, want)
	}
}

func TestRunPropagatesEvaluationFault(t *testing.T) {
	lang := dsl.GetExtendedDSL(10)
	prog, err := compiler.Compile("a <- [int]\nb <- max a", compiler.Options{
		Lang: lang, MinBound: -10, MaxBound: 10,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Run(prog, []value.Value{value.Seq_(nil)}); err == nil {
		t.Fatal("expected an evaluation fault for max of an empty sequence")
	}
}
