package dsl

import (
	"testing"

	"iogen/internal/value"
)

func TestLinqSortTakeSum(t *testing.T) {
	lang, _ := GetLinqDSL(512)

	sortFn, _ := lang.Lookup("SORT")
	sorted, err := sortFn.Eval([]value.Value{value.Seq_([]int{3, 5, 4, 7, 5})})
	if err != nil {
		t.Fatal(err)
	}

	takeFn, _ := lang.Lookup("TAKE")
	taken, err := takeFn.Eval([]value.Value{value.Int_(2), sorted})
	if err != nil {
		t.Fatal(err)
	}

	sumFn, _ := lang.Lookup("SUM")
	sum, err := sumFn.Eval([]value.Value{taken})
	if err != nil {
		t.Fatal(err)
	}
	if sum.Int != 7 {
		t.Errorf("SORT->TAKE 2->SUM of [3,5,4,7,5]: got %d, want 7", sum.Int)
	}
}

func TestLinqCountIndexBounds(t *testing.T) {
	lang, _ := GetLinqDSL(10)
	indexFn, _ := lang.Lookup("ACCESS")
	countFn, _ := lang.Lookup("COUNT")

	dBounds := countFn.Bounds(0, 10, 10)
	cBound := dBounds[0] // the int operand feeding COUNT's first arg
	cBounds := indexFn.Bounds(cBound[0], cBound[1], 10)

	if cBound != [2]int{0, 10} {
		t.Errorf("count's int operand bound: got %v, want [0,10]", cBound)
	}
	if cBounds[0] != [2]int{0, 10} {
		t.Errorf("access's int operand bound: got %v, want [0,10]", cBounds[0])
	}
}

func TestLinqScanl1Plus(t *testing.T) {
	lang, _ := GetLinqDSL(99)
	fn, err := lang.Lookup("SCANL1 +")
	if err != nil {
		t.Fatal(err)
	}
	got, err := fn.Eval([]value.Value{value.Seq_([]int{1, 2, 3, 4})})
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 3, 6, 10}
	if !value.Seq_(want).Equal(got) {
		t.Errorf("SCANL1 +: got %v, want %v", got.Seq, want)
	}
}

func TestLinqHeadLastMaximumMinimum(t *testing.T) {
	lang, _ := GetLinqDSL(99)
	xs := value.Seq_([]int{3, 5, 4, 7, 1})

	headFn, _ := lang.Lookup("HEAD")
	head, _ := headFn.Eval([]value.Value{xs})
	if head.Int != 3 {
		t.Errorf("HEAD: got %d, want 3", head.Int)
	}

	lastFn, _ := lang.Lookup("LAST")
	last, _ := lastFn.Eval([]value.Value{xs})
	if last.Int != 1 {
		t.Errorf("LAST: got %d, want 1", last.Int)
	}

	maxFn, _ := lang.Lookup("MAXIMUM")
	maxV, _ := maxFn.Eval([]value.Value{xs})
	if maxV.Int != 7 {
		t.Errorf("MAXIMUM: got %d, want 7", maxV.Int)
	}

	minFn, _ := lang.Lookup("MINIMUM")
	minV, _ := minFn.Eval([]value.Value{xs})
	if minV.Int != 1 {
		t.Errorf("MINIMUM: got %d, want 1", minV.Int)
	}
}
