// Package viz animates sorting step sources in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: grid of [Panel]s, one per algorithm, advanced on every tick
//   - [Panel]: bars for the current step colored by highlight role, a step
//     counter, a sortedness bar and an inversions sparkline
//   - [Canvas]: braille dot grid used for the compact bar view
//   - Theme selection with 6 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	N     - Single step while paused
//	R     - Restart every panel from its initial array
//	+/-   - Change steps per tick
//	[]    - Scrub through step history
//	T     - Cycle color themes
//	C     - Toggle compact braille bars
//	?     - Show help overlay
package viz
