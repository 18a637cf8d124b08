package dsl

import (
	"testing"

	"iogen/internal/value"
)

func evalOp(t *testing.T, lang *Language, name string, args ...value.Value) value.Value {
	t.Helper()
	fn, err := lang.Lookup(name)
	if err != nil {
		t.Fatalf("lookup %q: %v", name, err)
	}
	v, err := fn.Eval(args)
	if err != nil {
		t.Fatalf("eval %q: %v", name, err)
	}
	return v
}

func TestExtendedHead(t *testing.T) {
	lang := GetExtendedDSL(10)
	got := evalOp(t, lang, "head", value.Seq_([]int{3, 5, 4, 7, 5}))
	if got.Int != 3 {
		t.Errorf("head: got %d, want 3", got.Int)
	}
}

func TestExtendedTail(t *testing.T) {
	lang := GetExtendedDSL(10)
	got := evalOp(t, lang, "tail", value.Seq_([]int{3, 5, 4, 7, 5}))
	want := []int{5, 4, 7, 5}
	if !value.Seq_(want).Equal(got) {
		t.Errorf("tail: got %v, want %v", got.Seq, want)
	}
}

func TestExtendedTailEmptyIsNullSentinel(t *testing.T) {
	lang := GetExtendedDSL(10)
	got := evalOp(t, lang, "tail", value.Seq_(nil))
	if got.Kind != value.KInt || got.Int != 10 {
		t.Errorf("tail of empty: got %v, want int Null(10)", got)
	}
}

func TestExtendedCountHeadInTail(t *testing.T) {
	lang := GetExtendedDSL(10)
	a := []int{7, 4, 7, 8, 21, 1, 7, 2, 7, 5}
	tail := evalOp(t, lang, "tail", value.Seq_(a))
	head := evalOp(t, lang, "head", value.Seq_(a))
	got := evalOp(t, lang, "count", head, tail)
	if got.Int != 3 {
		t.Errorf("count head in tail: got %d, want 3", got.Int)
	}
}

func TestExtendedSum(t *testing.T) {
	lang := GetExtendedDSL(99)
	got := evalOp(t, lang, "sum", value.Seq_([]int{3, 5, 4, 7, 5}))
	if got.Int != 24 {
		t.Errorf("sum: got %d, want 24", got.Int)
	}
}

func TestExtendedAddLast(t *testing.T) {
	lang := GetExtendedDSL(10)
	last := evalOp(t, lang, "last", value.Seq_([]int{3, 5, 4, 7, 5}))
	got := evalOp(t, lang, "+", value.Int_(5), last)
	if got.Int != 10 {
		t.Errorf("+ b (last a): got %d, want 10", got.Int)
	}
}

func TestExtendedFilterLt(t *testing.T) {
	lang := GetExtendedDSL(99)
	got := evalOp(t, lang, "filter <", value.Int_(9), value.Seq_([]int{9, 1, 7, 4, 5, 7, 85, 4}))
	want := []int{1, 7, 4, 5, 7, 4}
	if !value.Seq_(want).Equal(got) {
		t.Errorf("filter <: got %v, want %v", got.Seq, want)
	}
}

func TestExtendedFilterEven(t *testing.T) {
	lang := GetExtendedDSL(99)
	got := evalOp(t, lang, "filter even?", value.Seq_([]int{1, 2, 3, 4, 5, 6}))
	want := []int{2, 4, 6}
	if !value.Seq_(want).Equal(got) {
		t.Errorf("filter even?: got %v, want %v", got.Seq, want)
	}
}

func TestExtendedDirectComparison(t *testing.T) {
	lang := GetExtendedDSL(99)
	got := evalOp(t, lang, "<", value.Int_(3), value.Int_(9))
	if !got.Bool {
		t.Errorf("3 < 9 should be true")
	}
}

func TestExtendedMapGeneratesNoEntries(t *testing.T) {
	lang := GetExtendedDSL(99)
	if _, err := lang.Lookup("map +"); err == nil {
		t.Errorf("extended catalogue should have no \"map +\" entry (all lambdas are arity 2)")
	}
}
