package testutils

import "testing"

func TestLedger(t *testing.T) {
	type item struct{ n int }
	a, b := &item{1}, &item{2}

	l := NewLedger[item]()
	if err := l.Issue(a); err != nil {
		t.Fatal(err)
	}
	if err := l.Issue(a); err == nil {
		t.Error("expected error issuing an outstanding pointer")
	}
	if err := l.Return(b); err == nil {
		t.Error("expected error returning a pointer that was never issued")
	}
	if err := l.Issue(nil); err == nil {
		t.Error("expected error issuing nil")
	}
	if err := l.Issue(b); err != nil {
		t.Fatal(err)
	}
	if got := l.NumOutstanding(); got != 2 {
		t.Errorf("expected 2 outstanding pointers, got %d", got)
	}
	if err := l.Return(a); err != nil {
		t.Fatal(err)
	}
	if l.Reused(a) {
		t.Error("expected pointer issued once not to be reused")
	}
	if err := l.Issue(a); err != nil {
		t.Fatal(err)
	}
	if !l.Reused(a) {
		t.Error("expected pointer issued twice to be reused")
	}
	if got := l.Distinct(); got != 2 {
		t.Errorf("expected 2 distinct pointers, got %d", got)
	}
	if got := len(l.Outstanding()); got != 2 {
		t.Errorf("expected 2 outstanding pointers, got %d", got)
	}
}
