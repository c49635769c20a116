package main

import (
	"github.com/mgnsk/circstack"
)

func main() {
	s, err := circstack.FromSlice([]string{"north", "east", "south", "west"})
	if err != nil {
		panic(err)
	}

	// Insert relative to an element; indices of the following elements shift by one.
	s.MustGet(0).Append("north-east")

	// The ring wraps around from the last element to the first.
	println(s.Back().Next().Value())

	s.MustGet(2).LoopForward(func(e *circstack.Element[string]) {
		println(e.Index(), e.Value())
	})

	println(s.String())
}
