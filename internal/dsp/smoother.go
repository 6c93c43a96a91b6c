package dsp

import "math"

type SmootherConfig struct {
	BandCount int     // number of spectrum bands
	Decay     float64 // per-frame falloff applied before taking the peak
}

// PeakSmoother keeps a slow-falling peak envelope of a spectrum. A band jumps
// to any larger incoming value and otherwise decays exponentially.
type PeakSmoother struct {
	values []float64
	decay  float64
}

func NewPeakSmoother(cfg SmootherConfig) *PeakSmoother {
	return &PeakSmoother{
		values: make([]float64, cfg.BandCount),
		decay:  cfg.Decay,
	}
}

// Smooth folds raw into the envelope. Missing bands count as zero, extra
// bands are ignored.
func (sm *PeakSmoother) Smooth(raw []float64) {
	for idx := range sm.values {
		v := 0.0
		if idx < len(raw) {
			v = raw[idx]
		}

		// the envelope must never go negative
		if v < 0.0 || math.IsNaN(v) {
			v = 0.0
		}

		sm.values[idx] = math.Max(sm.values[idx]*sm.decay, v)
	}
}

// Values returns the smoothed spectrum. The slice is reused between frames.
func (sm *PeakSmoother) Values() []float64 {
	return sm.values
}
