// Package cloud is the per-frame pipeline of the particle cloud: spectrum
// smoothing, band to parameter mapping and the noise driven field.
package cloud

import (
	"github.com/iburimskiy/audio-cloud/internal/dsp"
	"github.com/pkg/errors"
)

// SpectrumSource hands out the magnitudes of the audio playing right now.
type SpectrumSource interface {
	Spectrum(bands int) []float64
}

type Config struct {
	BandCount   int     // spectrum length
	Decay       float64 // peak smoother decay
	Bands       Bands   // parameter band selectors
	Particles   int     // number of cloud points
	OffsetRange float64 // initial noise offsets are drawn from [0, OffsetRange)
	MaxStep     float64 // upper bound of the frame delta, in seconds

	Source SpectrumSource
	Clock  Clock
	Noise  Noise
}

// Simulation owns all frame state. Update runs smoother, mapper and field in
// that order.
type Simulation struct {
	source   SpectrumSource
	clock    Clock
	smoother *dsp.PeakSmoother
	mapper   Mapper
	stepper  *Stepper
	field    *Field
	params   Params
}

func New(cfg Config) (*Simulation, error) {
	switch {
	case cfg.Source == nil:
		return nil, errors.New("no spectrum source")
	case cfg.Clock == nil:
		return nil, errors.New("no clock")
	case cfg.Noise == nil:
		return nil, errors.New("no noise generator")
	case cfg.BandCount < 1:
		return nil, errors.New("band count too small (1 min)")
	case cfg.Particles < 0:
		return nil, errors.New("negative particle count")
	}

	if err := cfg.Bands.Validate(cfg.BandCount); err != nil {
		return nil, errors.Wrap(err, "invalid band selectors")
	}

	sim := &Simulation{
		source: cfg.Source,
		clock:  cfg.Clock,
		smoother: dsp.NewPeakSmoother(dsp.SmootherConfig{
			BandCount: cfg.BandCount,
			Decay:     cfg.Decay,
		}),
		mapper:  Mapper{Bands: cfg.Bands},
		stepper: NewStepper(cfg.MaxStep),
		field:   NewField(cfg.Particles, cfg.OffsetRange, cfg.Noise),
	}

	sim.params = sim.mapper.Compute(sim.smoother.Values())

	return sim, nil
}

// Update advances the simulation by one frame.
func (sim *Simulation) Update() {
	sim.smoother.Smooth(sim.source.Spectrum(len(sim.smoother.Values())))

	sim.params = sim.mapper.Compute(sim.smoother.Values())

	dt := sim.stepper.Step(sim.clock.Now())
	sim.field.Advance(sim.params, dt)
}

// Params returns the parameters computed by the last Update.
func (sim *Simulation) Params() Params {
	return sim.params
}

func (sim *Simulation) Particles() []Particle {
	return sim.field.P
}

// Spectrum returns the smoothed spectrum.
func (sim *Simulation) Spectrum() []float64 {
	return sim.smoother.Values()
}
