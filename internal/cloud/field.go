package cloud

// Particle is one cloud point. Its position is resampled from noise at the
// current offsets every frame.
type Particle struct {
	OffsetX, OffsetY float64
	X, Y             float64
}

// Field is the fixed set of cloud points.
type Field struct {
	P     []Particle
	noise Noise
}

// NewField creates n particles with offsets drawn from [0, offsetRange).
func NewField(n int, offsetRange float64, noise Noise) *Field {
	f := &Field{
		P:     make([]Particle, n),
		noise: noise,
	}

	for i := range f.P {
		f.P[i].OffsetX = noise.Uniform(0, offsetRange)
		f.P[i].OffsetY = noise.Uniform(0, offsetRange)
	}

	return f
}

// Advance moves every offset by velocity*dt and samples the new positions
// scaled by the cloud radius.
func (f *Field) Advance(p Params, dt float64) {
	step := p.Velocity * dt

	for i := range f.P {
		pt := &f.P[i]
		pt.OffsetX += step
		pt.OffsetY += step
		pt.X = f.noise.Noise1D(pt.OffsetX) * p.Radius
		pt.Y = f.noise.Noise1D(pt.OffsetY) * p.Radius
	}
}
