// Package spin integrates the classical spin vector of one electron as it
// precesses about the field axis (z) and recovers the precession frequency
// from the sampled trajectory.
//
// A positive frequency turns the vector clockwise seen from +z:
//
//	dS/dt = -ω ẑ × S
//
// [Integrate] steps the equation with a fixed-step RK4 and
// [DominantFrequency] reads the rate back from the power spectrum of S_x, so
// the two can be checked against [precession.Spin].
package spin
