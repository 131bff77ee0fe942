package experiment

import (
	"fmt"

	"github.com/san-kum/sortviz/internal/sorting"
)

// Algorithm identifies one of the built-in sorting algorithms.
type Algorithm int

const (
	Bubble Algorithm = iota
	Selection
	Insertion
	Merge
	Shell
	Heap
	Quick
	Comb
)

type entry struct {
	name string
	fn   sorting.Func
}

var table = [...]entry{
	Bubble:    {"bubble sort", sorting.Bubble},
	Selection: {"selection sort", sorting.Selection},
	Insertion: {"insertion sort", sorting.Insertion},
	Merge:     {"merge sort", sorting.Merge},
	Shell:     {"shell sort", sorting.Shell},
	Heap:      {"heap sort", sorting.Heap},
	Quick:     {"quick sort", sorting.Quick},
	Comb:      {"comb sort", sorting.Comb},
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(table) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return table[a].name
}

// Func returns the implementation of a, or nil for an out-of-range value.
func (a Algorithm) Func() sorting.Func {
	if a < 0 || int(a) >= len(table) {
		return nil
	}
	return table[a].fn
}

// Algorithms returns every algorithm in menu order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(table))
	for i := range table {
		out[i] = Algorithm(i)
	}
	return out
}

// List returns the display names in menu order.
func List() []string {
	names := make([]string, 0, len(table))
	for _, a := range Algorithms() {
		names = append(names, a.String())
	}
	return names
}

// Lookup maps a display name to its Algorithm.
func Lookup(name string) (Algorithm, error) {
	for i, e := range table {
		if e.name == name {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
}

// Resolve returns the implementation registered under name.
func Resolve(name string) (sorting.Func, error) {
	a, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return a.Func(), nil
}

// MustResolve is like Resolve but panics on an unknown name. It is meant for
// names that came from List.
func MustResolve(name string) sorting.Func {
	fn, err := Resolve(name)
	if err != nil {
		panic(err)
	}
	return fn
}
