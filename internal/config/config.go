package config

import (
	"github.com/pkg/errors"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768

	VisualRingSize = 8192

	// Spectrum analysis
	SpectrumBands = 256
	FFTSize       = 2048
	SpectrumDecay = 0.97
	// Brings a loud bass line into the 5..20 radius band domain
	SpectrumGain = 64.0

	// Bands averaged into the point size
	PointRadiusBandsCount = 10

	// Cloud parameters
	ParticleCount = 300
	OffsetRange   = 1000.0
	LinkDistance  = 40.0
	MaxFrameStep  = 0.1
)

// Config holds the runtime settings that can be changed from the command line.
type Config struct {
	// Track is the path of the audio file to play
	Track string
	// Width and Height are the initial window size
	Width  int
	Height int
	// Particles is the number of cloud points
	Particles int
	// Gain scales every spectrum band before smoothing
	Gain float64
	// Seed feeds the noise generator and the offset randomizer. 0 picks one
	// from the clock.
	Seed int64
	// DrawPoints enables the particle point markers
	DrawPoints bool
	// NoLoop plays the track once instead of looping it
	NoLoop bool
	// ShowSpectrum draws the smoothed spectrum under the cloud
	ShowSpectrum bool
}

// NewZeroConfig returns the default config.
func NewZeroConfig() Config {
	return Config{
		Width:     WindowWidth,
		Height:    WindowHeight,
		Particles: ParticleCount,
		Gain:      SpectrumGain,
	}
}

// Sanitize rejects unusable settings and fills in the soft ones.
func (cfg *Config) Sanitize() error {
	if cfg.Track == "" {
		return errors.New("no track given")
	}

	switch {
	case cfg.Particles < 1:
		return errors.New("too few particles (1 min)")
	case cfg.Particles > 5000:
		return errors.New("too many particles (5000 max)")
	}

	if cfg.Gain <= 0 {
		return errors.New("spectrum gain must be positive")
	}

	if cfg.Width < 64 {
		cfg.Width = 64
	}

	if cfg.Height < 64 {
		cfg.Height = 64
	}

	return nil
}
