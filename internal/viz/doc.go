// Package viz renders evaluations in the terminal.
//
// Static output (traces, unit tables, sweep plots) is plain strings styled
// with lipgloss. [Explorer] is a Bubble Tea model for stepping through an
// evaluation trace one operation at a time.
//
// # Key Bindings
//
//	←/h, →/l  - Previous / next step
//	g, G      - First / last step
//	q, Esc    - Quit
package viz
