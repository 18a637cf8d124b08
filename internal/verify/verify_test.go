package verify

import (
	"testing"

	"iogen/internal/value"
)

func TestIntConstraintAcceptsInRange(t *testing.T) {
	c := IntConstraint{Lo: 0, Hi: 10}
	if err := c.Check(value.Int_(5)); err != nil {
		t.Errorf("5 should satisfy [0,10]: %v", err)
	}
}

func TestIntConstraintRejectsOutOfRange(t *testing.T) {
	c := IntConstraint{Lo: 0, Hi: 10}
	if err := c.Check(value.Int_(11)); err == nil {
		t.Error("11 should not satisfy [0,10]")
	}
}

func TestIntConstraintRejectsWrongKind(t *testing.T) {
	c := IntConstraint{Lo: 0, Hi: 10}
	if err := c.Check(value.Seq_([]int{1})); err == nil {
		t.Error("a sequence should never satisfy an IntConstraint")
	}
}

func TestListConstraintChecksLengthAndElements(t *testing.T) {
	c := ListConstraint{Elem: IntConstraint{Lo: 0, Hi: 10}, MinLen: 0, MaxLen: 5}
	if err := c.Check(value.Seq_([]int{1, 2, 3})); err != nil {
		t.Errorf("[1,2,3] should satisfy length<=5 and elements in [0,10]: %v", err)
	}
	if err := c.Check(value.Seq_([]int{1, 2, 3, 4, 5, 6})); err == nil {
		t.Error("a 6-element sequence should violate MaxLen=5")
	}
	if err := c.Check(value.Seq_([]int{1, 20, 3})); err == nil {
		t.Error("an out-of-range element should fail the constraint")
	}
}

func TestCheckPairArityMismatch(t *testing.T) {
	c := ArgConstraints{
		Inputs: []Constraint{IntConstraint{Lo: 0, Hi: 10}},
		Output: IntConstraint{Lo: 0, Hi: 10},
	}
	err := c.CheckPair([]value.Value{value.Int_(1), value.Int_(2)}, value.Int_(1))
	if err == nil {
		t.Error("a two-input tuple against a one-input constraint should fault on arity")
	}
}

func TestCheckPairHappyPath(t *testing.T) {
	c := ArgConstraints{
		Inputs: []Constraint{ListConstraint{Elem: IntConstraint{Lo: -10, Hi: 10}, MinLen: 0, MaxLen: 10}},
		Output: IntConstraint{Lo: -10, Hi: 10},
	}
	err := c.CheckPair([]value.Value{value.Seq_([]int{3, 5, 4})}, value.Int_(3))
	if err != nil {
		t.Errorf("valid pair should pass verification: %v", err)
	}
}
