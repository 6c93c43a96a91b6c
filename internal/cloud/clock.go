package cloud

import "time"

// Clock reports elapsed wall time in seconds. It must never go backwards.
type Clock interface {
	Now() float64
}

// WallClock counts seconds since it was created.
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// Stepper turns successive clock readings into a bounded frame delta.
type Stepper struct {
	last float64
	max  float64
}

func NewStepper(max float64) *Stepper {
	return &Stepper{max: max}
}

// Step returns now minus the previous reading, clamped to [0, max].
func (st *Stepper) Step(now float64) float64 {
	dt := now - st.last
	st.last = now

	switch {
	case dt < 0:
		return 0
	case dt > st.max:
		return st.max
	}
	return dt
}
