// Package viz provides the interactive terminal front end for sortviz.
//
// The package implements a Bubble Tea application with two screens:
//
//   - the algorithm menu, a wrap-around list of the registered algorithms
//   - [Visual], which draws the current snapshot of a playback session as
//     block-glyph bars and highlights the columns touched by the current
//     operation
//
// The front end never drives an algorithm directly. It reads and moves the
// cursor of a [playback.Status] and leaves the algorithm goroutine to the
// session.
//
// # Key Bindings
//
//	j/k    - Move through the menu (wraps around)
//	h      - Clear the menu selection
//	Enter  - Run the selected algorithm
//	Space  - Pause/resume auto-play
//	→      - Step forward
//	←      - Step back (paused only)
//	G      - Jump to the newest step
//	C      - Toggle the metrics panel
//	T      - Cycle color themes
//	Esc    - Back to the menu
//	?      - Show help
//
// # Config reloading
//
// With a watched config file the tick interval, frame interval and theme are
// re-applied whenever the file is written.
package viz
