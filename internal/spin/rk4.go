package spin

// Field returns dS/dt at time t.
type Field func(t float64, s Vector) Vector

// Precession is the field of a uniform precession at omega rad/s.
func Precession(omega float64) Field {
	return func(_ float64, s Vector) Vector {
		return Vector{omega * s[1], -omega * s[0], 0}
	}
}

// RK4 advances s by one classical Runge-Kutta step.
func RK4(f Field, s Vector, t, dt float64) Vector {
	k1 := f(t, s)
	k2 := f(t+dt/2, s.add(k1, dt/2))
	k3 := f(t+dt/2, s.add(k2, dt/2))
	k4 := f(t+dt, s.add(k3, dt))

	dt6 := dt / 6
	return Vector{
		s[0] + dt6*(k1[0]+2*k2[0]+2*k3[0]+k4[0]),
		s[1] + dt6*(k1[1]+2*k2[1]+2*k3[1]+k4[1]),
		s[2] + dt6*(k1[2]+2*k2[2]+2*k3[2]+k4[2]),
	}
}
