package testutils

import (
	"errors"
	"fmt"
)

// Ledger tracks pointers handed out by a pool, to check that no pointer is
// issued twice while outstanding and that returned pointers are reused.
type Ledger[T any] struct {
	outstanding map[*T]struct{}
	issued      map[*T]int // Number of times each pointer has been issued.
}

func NewLedger[T any]() *Ledger[T] {
	return &Ledger[T]{
		outstanding: make(map[*T]struct{}),
		issued:      make(map[*T]int),
	}
}

// Issue records that p was handed out.
// It returns an error if p is already outstanding.
func (l *Ledger[T]) Issue(p *T) error {
	if p == nil {
		return errors.New("issued nil pointer")
	}
	if _, ok := l.outstanding[p]; ok {
		return fmt.Errorf("pointer %p issued while outstanding", p)
	}
	l.outstanding[p] = struct{}{}
	l.issued[p]++
	return nil
}

// Return records that p was given back.
// It returns an error if p is not outstanding.
func (l *Ledger[T]) Return(p *T) error {
	if _, ok := l.outstanding[p]; !ok {
		return fmt.Errorf("pointer %p returned but not outstanding", p)
	}
	delete(l.outstanding, p)
	return nil
}

// Outstanding returns the currently issued pointers.
func (l *Ledger[T]) Outstanding() []*T {
	out := make([]*T, 0, len(l.outstanding))
	for p := range l.outstanding {
		out = append(out, p)
	}
	return out
}

// NumOutstanding returns the number of currently issued pointers.
func (l *Ledger[T]) NumOutstanding() int {
	return len(l.outstanding)
}

// Distinct returns the number of distinct pointers ever issued.
func (l *Ledger[T]) Distinct() int {
	return len(l.issued)
}

// Reused reports whether p has been issued more than once.
func (l *Ledger[T]) Reused(p *T) bool {
	return l.issued[p] > 1
}
