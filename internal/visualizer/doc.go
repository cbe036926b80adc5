// Package visualizer drives the step engines against a presentation surface.
//
// The package separates what happens between frames from how frames are
// shown:
//
//   - [RunState]: speed, run/pause/finished flags and the selected algorithm,
//     threaded through [Handle] as a value
//   - [Controller]: owns the array and the live engine, applies commands and
//     advances at most one step per [Controller.Frame]
//   - [Surface]: the presentation adapter contract (poll, render, sleep)
//   - [Run]: the cooperative frame loop over a Surface
//
// # Key Bindings
//
//	Space      - Start/stop sorting
//	R          - Reset to ascending order
//	S          - Shuffle and stop
//	Left/Right - Previous/next algorithm (reshuffles)
//	Up/Down    - Faster/slower (speed -5/+5, clamped to [1, 100])
//	P          - Pause/resume
//	Esc        - Quit
package visualizer
