// Package quantum holds the shared vocabulary of the spin and polarization
// formulas: physical constants, quantum numbers, rotation direction and the
// error kinds returned by validated entry points.
//
// Every formula package comes in two flavours:
//
//   - permissive functions mirror the legacy visualizer and let NaN, Inf or
//     truncated results flow through untouched;
//   - Checked functions validate their inputs first and fail with an error
//     wrapping [ErrInvalidArgument] or [ErrUnrepresentable].
//
// # Example
//
//	gamma, err := relativity.FromAtomicNumberChecked(z)
//	if errors.Is(err, quantum.ErrInvalidArgument) {
//	    ...
//	}
//
// All functions are pure and safe to call from any goroutine.
package quantum
