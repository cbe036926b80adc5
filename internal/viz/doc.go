// Package viz is the terminal adapter for the sorting visualizer.
//
// The package drives a [visualizer.Controller] from a Bubble Tea program:
//
//   - [Model]: one tick per frame, rescheduled with the delay the controller returns
//   - [Canvas]: column grid that draws bars with eighth-block tops
//   - Theme selection with 5 built-in role palettes
//
// # Key Bindings
//
//	Space - Start/Stop sorting
//	P     - Pause/Resume
//	R     - Reset to ascending order
//	S     - Shuffle
//	←/→   - Previous/Next algorithm
//	↑/↓   - Faster/Slower
//	T     - Cycle color themes
//	?     - Show help overlay
//	Esc/Q - Quit
package viz
