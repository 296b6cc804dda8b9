// Package viz draws atoms in the terminal.
//
//   - [Canvas]: braille sub-pixel canvas (2x4 dots per cell)
//   - [DrawAtom]: shell diagram with a spin arrow on the selected electron
//   - [Explorer]: bubbletea model that animates spin precession
//
// # Key Bindings
//
//	Up/Down     - Atomic number
//	Left/Right  - Selected electron
//	[ ]         - Halve/double the magnetic field
//	T           - Toggle the Thomas correction
//	C           - Cycle color themes
//	Space       - Pause/Resume
//	?           - Show help overlay
package viz
