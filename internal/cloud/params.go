package cloud

import (
	"math"

	"github.com/iburimskiy/audio-cloud/internal/dsp"
	"github.com/pkg/errors"
)

// Bands picks which spectrum bands drive the visual parameters.
type Bands struct {
	Radius      int   // band driving the cloud radius
	Velocity    int   // band driving the point velocity
	PointRadius []int // bands averaged into the point size
}

// DefaultBands drives the radius from the lowest band, the velocity from band
// 100 and the point size from the first count bands.
func DefaultBands(count int) Bands {
	pr := make([]int, count)
	for i := range pr {
		pr[i] = i
	}

	return Bands{
		Radius:      0,
		Velocity:    100,
		PointRadius: pr,
	}
}

// Validate checks every selector against a spectrum of n bands.
func (b Bands) Validate(n int) error {
	check := func(name string, idx int) error {
		if idx < 0 || idx >= n {
			return errors.Errorf("%s band %d out of range [0, %d)", name, idx, n)
		}
		return nil
	}

	if err := check("radius", b.Radius); err != nil {
		return err
	}

	if err := check("velocity", b.Velocity); err != nil {
		return err
	}

	if len(b.PointRadius) == 0 {
		return errors.New("no point radius bands")
	}

	for _, idx := range b.PointRadius {
		if err := check("point radius", idx); err != nil {
			return err
		}
	}

	return nil
}

// Params are the per-frame visual parameters.
type Params struct {
	Radius      float64 // cloud radius in pixels
	Velocity    float64 // noise offset advance per second
	PointRadius int
	LineWidth   int
	LineAlpha   int // 0-255
}

// Mapper turns a smoothed spectrum into Params. Radius and alpha saturate at
// their range edges, velocity and point size extrapolate.
type Mapper struct {
	Bands Bands
}

func (m Mapper) Compute(spectrum []float64) Params {
	var p Params

	p.Radius = dsp.Map(band(spectrum, m.Bands.Radius), 5, 20, 400, 800, true)

	vel := dsp.Map(band(spectrum, m.Bands.Velocity), 0, 0.01, 0.05, 0.5, false)
	p.Velocity = vel / 2

	avg := 0.0
	for _, idx := range m.Bands.PointRadius {
		avg += band(spectrum, idx)
	}
	if n := len(m.Bands.PointRadius); n > 0 {
		avg /= float64(n)
	}

	p.PointRadius = int(math.Round(dsp.Map(avg, 0, 1, 2, 10, false)))
	p.LineWidth = p.PointRadius / 4

	p.LineAlpha = int(math.Round(dsp.Map(p.Velocity, 0, 0.01, 15, 30, true)))

	return p
}

func band(spectrum []float64, idx int) float64 {
	if idx < 0 || idx >= len(spectrum) {
		return 0.0
	}
	return spectrum[idx]
}
