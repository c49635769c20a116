package circstack_test

import (
	"errors"
	"math/rand"

	"github.com/mgnsk/circstack"
	. "github.com/mgnsk/circstack/internal/testing"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("indexing", func() {
	var s *circstack.Stack[int]

	BeforeEach(func() {
		var err error
		s, err = circstack.FromSlice([]int{0, 1, 2, 3})
		Expect(err).NotTo(HaveOccurred())
	})

	DescribeTable(
		"positions inside the stack",
		func(i, expected int) {
			e, err := s.Get(i)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.Value()).To(Equal(expected))
			Expect(e.Index()).To(Equal(i))
		},
		Entry("front", 0, 0),
		Entry("middle", 2, 2),
		Entry("back", 3, 3),
	)

	DescribeTable(
		"positions outside the stack",
		func(i int) {
			e, err := s.Get(i)
			Expect(errors.Is(err, circstack.ErrOutOfRange)).To(BeTrue())
			Expect(e).To(BeNil())
		},
		Entry("negative", -1),
		Entry("one past the back", 4),
		Entry("reflected past the front", 8),
	)
})

var _ = Describe("ring invariants", func() {
	var s *circstack.Stack[int]

	BeforeEach(func() {
		s = circstack.New[int]()
	})

	AfterEach(func() {
		Expect(ValidateRing(s)).To(BeEmpty())
	})

	When("the stack has a single element", func() {
		Specify("the element is its own neighbour", func() {
			Expect(s.Add(1)).To(Succeed())
			Expect(s.Front()).To(BeIdenticalTo(s.Back()))
			Expect(s.Front().Next()).To(BeIdenticalTo(s.Front()))
			Expect(s.Front().Prev()).To(BeIdenticalTo(s.Front()))
		})
	})

	When("the stack is mutated randomly", func() {
		Specify("the ring always matches the index order", func() {
			var expected []int

			for i := 1; i <= 1000; i++ {
				switch op := rand.Intn(5); {
				case op == 0 || s.Len() == 0:
					Expect(s.Add(i)).To(Succeed())
					expected = append(expected, i)

				case op == 1:
					pos := rand.Intn(s.Len())
					s.MustGet(pos).Append(i)
					expected = insertAt(expected, pos+1, i)

				case op == 2:
					pos := rand.Intn(s.Len())
					s.MustGet(pos).Prepend(i)
					expected = insertAt(expected, pos, i)

				case op == 3:
					pos := rand.Intn(s.Len())
					Expect(s.RemoveAt(pos)).To(BeTrue())
					expected = append(expected[:pos], expected[pos+1:]...)

				case op == 4:
					pos := rand.Intn(s.Len())
					Expect(s.Remove(expected[pos])).To(BeTrue())
					expected = append(expected[:pos], expected[pos+1:]...)
				}

				Expect(ValidateRing(s)).To(BeEmpty())
				Expect(Values(s)).To(Equal(expected))
			}
		})
	})

	When("the stack is reversed twice", func() {
		Specify("it equals the original", func() {
			for i := 1; i <= 50; i++ {
				Expect(s.Add(i)).To(Succeed())
			}

			r := s.Reverse()
			Expect(ValidateRing(r)).To(BeEmpty())
			Expect(r.Reverse().Equal(s)).To(BeTrue())
		})
	})
})

// insertAt mirrors the stack's insertion rule on a plain slice:
// positions past the second to last element append.
func insertAt(values []int, pos, v int) []int {
	if pos > len(values)-2 {
		return append(values, v)
	}
	values = append(values, 0)
	copy(values[pos+1:], values[pos:])
	values[pos] = v
	return values
}
