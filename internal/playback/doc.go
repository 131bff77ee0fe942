// Package playback owns the step history of a running sort and the cursor a
// renderer walks through it.
//
// A [Status] is shared by two goroutines:
//
//   - the algorithm goroutine, which only calls [Status.Record]
//   - the UI goroutine, which reads the cursor and snapshot and moves the
//     cursor with [Status.Advance], [Status.Retreat] and [Status.Tick]
//
// # Modes
//
// In [Buffered] mode Record never blocks: the algorithm runs to completion
// and the cursor follows at its own pace. In [LockStep] mode Record blocks
// after appending until the consumer moves the cursor onto that entry, so at
// most one entry is ever ahead of the cursor. [Status.Close] releases a
// blocked algorithm and makes further Record calls no-ops.
//
// # Example
//
//	st := playback.New("quick sort", nums, playback.WithInterval(100*time.Millisecond))
//	playback.Spawn(st, sorting.Quick, logger)
//	st.Tick(time.Now())
package playback
