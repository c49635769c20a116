package testing

import (
	"fmt"
	"testing"

	"github.com/mgnsk/circstack"
)

// Values returns the payloads of s in index order.
func Values[V comparable](s *circstack.Stack[V]) []V {
	values := make([]V, 0, s.Len())
	for v := range s.Values() {
		values = append(values, v)
	}
	return values
}

// ValidateRing reports the first broken ring or index invariant of s.
// It returns an empty string when s is consistent.
func ValidateRing[V comparable](s *circstack.Stack[V]) string {
	n := s.Len()

	for i, e := range s.All() {
		switch {
		case e.Stack() != s:
			return fmt.Sprintf("element %d is not owned by the stack", i)
		case e.Index() != i:
			return fmt.Sprintf("element %d has index %d", i, e.Index())
		case e.Next() == nil || e.Prev() == nil:
			return fmt.Sprintf("element %d is unlinked", i)
		case e.Next().Prev() != e:
			return fmt.Sprintf("element %d: next.prev is not the element", i)
		case e.Prev().Next() != e:
			return fmt.Sprintf("element %d: prev.next is not the element", i)
		case e.Next() != s.MustGet((i+1)%n):
			return fmt.Sprintf("element %d: next does not follow the index order", i)
		case e.Prev() != s.MustGet((i-1+n)%n):
			return fmt.Sprintf("element %d: prev does not follow the index order", i)
		}

		forward, backward := e, e
		for j := 0; j < n; j++ {
			forward = forward.Next()
			backward = backward.Prev()
		}

		if forward != e || backward != e {
			return fmt.Sprintf("element %d: ring is not closed after %d steps", i, n)
		}
	}

	return ""
}

// AssertValidRing asserts that the ring and index invariants hold for s.
func AssertValidRing[V comparable](t testing.TB, s *circstack.Stack[V]) {
	t.Helper()

	if msg := ValidateRing(s); msg != "" {
		t.Fatalf("invalid ring: %s", msg)
	}
}
