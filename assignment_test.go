package dpll

import "testing"

func TestAssignmentRootIsAllUnset(t *testing.T) {
	a := NewAssignment(3)
	for v := 0; v < 3; v++ {
		if !a.IsUnset(v) {
			t.Errorf("variable %d should be unset on a fresh assignment", v)
		}
	}
	if got := a.FirstUnset(); got != 0 {
		t.Errorf("FirstUnset() = %d, want 0", got)
	}
}

func TestAssignmentSetAndQuery(t *testing.T) {
	a := NewAssignment(2)
	a.Set(0, true)
	a.Set(1, false)
	if !a.IsTrue(0) || a.IsFalse(0) || a.IsUnset(0) {
		t.Errorf("variable 0 should be exactly True")
	}
	if !a.IsFalse(1) || a.IsTrue(1) || a.IsUnset(1) {
		t.Errorf("variable 1 should be exactly False")
	}
	if got := a.FirstUnset(); got != 2 {
		t.Errorf("FirstUnset() = %d, want 2 (all set)", got)
	}
}

func TestAssignmentSetPanicsOnReassignment(t *testing.T) {
	a := NewAssignment(1)
	a.Set(0, true)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when reassigning a set variable")
		}
	}()
	a.Set(0, false)
}

func TestAssignmentCloneIsIndependent(t *testing.T) {
	a := NewAssignment(2)
	a.Set(0, true)
	b := a.Clone()
	b.Set(1, false)

	if !a.IsUnset(1) {
		t.Errorf("mutating the clone must not affect the original")
	}
	if !b.IsTrue(0) {
		t.Errorf("clone should retain the original's assigned state")
	}
}
