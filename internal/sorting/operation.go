package sorting

import "fmt"

type Kind int

const (
	KindNoop Kind = iota
	KindCompare
	KindSwap
	KindInsert
)

func (k Kind) String() string {
	switch k {
	case KindCompare:
		return "compare"
	case KindSwap:
		return "swap"
	case KindInsert:
		return "insert"
	default:
		return "noop"
	}
}

// Operation describes one elementary step. It never mutates anything itself.
// For Insert only A is meaningful.
type Operation struct {
	Kind Kind
	A, B int
}

func Noop() Operation            { return Operation{Kind: KindNoop} }
func Compare(a, b int) Operation { return Operation{Kind: KindCompare, A: a, B: b} }
func Swap(a, b int) Operation    { return Operation{Kind: KindSwap, A: a, B: b} }
func Insert(at int) Operation    { return Operation{Kind: KindInsert, A: at} }

func (o Operation) IsNoop() bool { return o.Kind == KindNoop }

// Adjusted returns the canonical form: Compare and Swap with the smaller
// index first. Insert and Noop are returned unchanged.
func (o Operation) Adjusted() Operation {
	switch o.Kind {
	case KindCompare, KindSwap:
		if o.A > o.B {
			o.A, o.B = o.B, o.A
		}
	}
	return o
}

// Indices returns the positions the operation touches.
func (o Operation) Indices() []int {
	switch o.Kind {
	case KindCompare, KindSwap:
		return []int{o.A, o.B}
	case KindInsert:
		return []int{o.A}
	default:
		return nil
	}
}

func (o Operation) String() string {
	switch o.Kind {
	case KindCompare:
		return fmt.Sprintf("compare: %d %d", o.A, o.B)
	case KindSwap:
		return fmt.Sprintf("swap: %d %d", o.A, o.B)
	case KindInsert:
		return fmt.Sprintf("insert: %d", o.A)
	default:
		return ""
	}
}
