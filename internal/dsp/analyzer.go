// Package dsp turns played samples into a smoothed band spectrum.
package dsp

import (
	"math"

	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/dsp/fourier"
)

type AnalyzerConfig struct {
	FFTSize int     // number of samples fed to each transform
	Gain    float64 // multiplies every band, 0 means 1
}

// Analyzer produces linear-frequency magnitude bands from mono samples, in the
// manner of a sound engine's "get spectrum" call.
type Analyzer struct {
	fftSize int
	gain    float64
	fft     *fourier.FFT
	window  []float64
	input   []float64
	coeffs  []complex128
}

func NewAnalyzer(cfg AnalyzerConfig) *Analyzer {
	gain := cfg.Gain
	if gain <= 0 {
		gain = 1.0
	}

	return &Analyzer{
		fftSize: cfg.FFTSize,
		gain:    gain,
		fft:     fourier.NewFFT(cfg.FFTSize),
		window:  window.Hann(cfg.FFTSize),
		input:   make([]float64, cfg.FFTSize),
		coeffs:  make([]complex128, cfg.FFTSize/2+1),
	}
}

// Spectrum writes bands magnitudes for the most recent samples into a new
// slice. Short input is zero padded at the front so the newest samples stay
// aligned to the end of the window.
func (az *Analyzer) Spectrum(samples []float64, bands int) []float64 {
	out := make([]float64, bands)
	if bands <= 0 {
		return out
	}

	if len(samples) > az.fftSize {
		samples = samples[len(samples)-az.fftSize:]
	}

	pad := az.fftSize - len(samples)
	for idx := 0; idx < pad; idx++ {
		az.input[idx] = 0.0
	}
	copy(az.input[pad:], samples)

	for idx, w := range az.window {
		az.input[idx] *= w
	}
	az.coeffs = az.fft.Coefficients(az.coeffs, az.input)

	// skip the nyquist bin, spread the rest evenly across the bands
	half := az.fftSize / 2
	norm := 2.0 / float64(az.fftSize) * az.gain

	for b := range out {
		lo := b * half / bands
		hi := (b + 1) * half / bands
		if hi <= lo {
			hi = lo + 1
		}
		if lo >= half {
			break
		}
		if hi > half {
			hi = half
		}

		mag := 0.0
		for _, c := range az.coeffs[lo:hi] {
			mag += math.Hypot(real(c), imag(c))
		}

		out[b] = mag / float64(hi-lo) * norm
	}

	return out
}
