// Package sorting provides instrumented in-place sorting algorithms.
//
// Every algorithm reports each elementary step it takes through a [Recorder]:
//
//   - [Compare]: two positions were compared
//   - [Swap]: two positions were exchanged
//   - [Insert]: a run was shifted right and a value written at a position
//   - [Noop]: no change, used for the initial and the final snapshot
//
// The recorder receives a copy of the whole sequence after the step, so the
// sequence of [Step] values is a faithful trace of the algorithm's decisions.
//
// # Example
//
//	steps := sorting.Collect(sorting.Quick, []int{5, 4, 3, 2, 1})
//	last := steps[len(steps)-1] // Noop with [1 2 3 4 5]
//
// # Thread Safety
//
// Algorithms only touch the slice they are given. Recorders are called on the
// algorithm's goroutine and must be safe for whatever consumer reads them.
package sorting
