package cloud

import (
	"math"
	"testing"

	"github.com/iburimskiy/audio-cloud/internal/config"
	"github.com/iburimskiy/audio-cloud/internal/dsp"
)

func TestDefaultBands(t *testing.T) {
	b := DefaultBands(10)

	if b.Radius != 0 || b.Velocity != 100 {
		t.Fatalf("unexpected selectors: %+v", b)
	}
	for i, idx := range b.PointRadius {
		if idx != i {
			t.Fatalf("point radius band %d: expected %d, got %d", i, i, idx)
		}
	}
	if err := b.Validate(256); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
}

func TestBandsValidate(t *testing.T) {
	tests := []struct {
		name  string
		bands Bands
	}{
		{"radius negative", Bands{Radius: -1, Velocity: 1, PointRadius: []int{0}}},
		{"velocity too high", Bands{Radius: 0, Velocity: 8, PointRadius: []int{0}}},
		{"empty point radius", Bands{Radius: 0, Velocity: 1}},
		{"point radius too high", Bands{Radius: 0, Velocity: 1, PointRadius: []int{0, 8}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.bands.Validate(8); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestComputeSaturatesRadius(t *testing.T) {
	m := Mapper{Bands: DefaultBands(10)}
	s := make([]float64, 256)

	s[0] = 1000
	if r := m.Compute(s).Radius; r != 800 {
		t.Fatalf("expected radius capped at 800, got %v", r)
	}

	s[0] = 12.5
	if r := m.Compute(s).Radius; r != 600 {
		t.Fatalf("expected radius 600 mid range, got %v", r)
	}
}

func TestComputeVelocityExtrapolates(t *testing.T) {
	m := Mapper{Bands: DefaultBands(10)}
	s := make([]float64, 256)

	s[100] = 0.02
	p := m.Compute(s)
	if math.Abs(p.Velocity-0.475) > 1e-9 {
		t.Fatalf("expected velocity 0.475, got %v", p.Velocity)
	}
	if p.LineAlpha != 30 {
		t.Fatalf("expected saturated alpha 30, got %d", p.LineAlpha)
	}
}

func TestComputeAlphaRange(t *testing.T) {
	m := Mapper{Bands: DefaultBands(10)}
	s := make([]float64, 256)

	// velocity = (0.05 + v*45) / 2, negative input drives it below zero
	s[100] = -0.0015
	p := m.Compute(s)
	if p.Velocity >= 0 {
		t.Fatalf("expected negative velocity, got %v", p.Velocity)
	}
	if p.LineAlpha != 15 {
		t.Fatalf("expected alpha floor 15, got %d", p.LineAlpha)
	}

	s[100] = -0.0009
	p = m.Compute(s)
	if math.Abs(p.Velocity-0.00475) > 1e-9 {
		t.Fatalf("expected velocity 0.00475, got %v", p.Velocity)
	}
	if p.LineAlpha != 22 {
		t.Fatalf("expected alpha 22, got %d", p.LineAlpha)
	}
}

func TestComputePointRadiusUnclamped(t *testing.T) {
	m := Mapper{Bands: DefaultBands(10)}

	tests := []struct {
		avg       float64
		wantPoint int
		wantWidth int
	}{
		{0, 2, 0},
		{0.5, 6, 1},
		{1, 10, 2},
		{2, 18, 4},
		{-1, -6, -1},
	}

	for _, tt := range tests {
		s := make([]float64, 256)
		for i := 0; i < 10; i++ {
			s[i] = tt.avg
		}
		p := m.Compute(s)
		if p.PointRadius != tt.wantPoint {
			t.Errorf("avg %v: expected point radius %d, got %d", tt.avg, tt.wantPoint, p.PointRadius)
		}
		if p.LineWidth != tt.wantWidth {
			t.Errorf("avg %v: expected line width %d, got %d", tt.avg, tt.wantWidth, p.LineWidth)
		}
	}
}

func TestComputeShortSpectrum(t *testing.T) {
	m := Mapper{Bands: DefaultBands(10)}

	p := m.Compute([]float64{20})
	if p.Radius != 800 {
		t.Fatalf("expected radius 800, got %v", p.Radius)
	}
	if math.Abs(p.Velocity-0.025) > 1e-12 {
		t.Fatalf("expected missing band to read as 0, velocity %v", p.Velocity)
	}
}

func TestComputeRadiusFollowsBassTone(t *testing.T) {
	// full scale tone at fft bin 2, inside band 0
	tone := make([]float64, config.FFTSize)
	for i := range tone {
		tone[i] = math.Sin(2 * math.Pi * 2 * float64(i) / float64(config.FFTSize))
	}

	m := Mapper{Bands: DefaultBands(config.PointRadiusBandsCount)}

	flat := dsp.NewAnalyzer(dsp.AnalyzerConfig{FFTSize: config.FFTSize})
	if p := m.Compute(flat.Spectrum(tone, config.SpectrumBands)); p.Radius != 400 {
		t.Fatalf("expected radius 400 without gain, got %v", p.Radius)
	}

	az := dsp.NewAnalyzer(dsp.AnalyzerConfig{FFTSize: config.FFTSize, Gain: config.SpectrumGain})
	p := m.Compute(az.Spectrum(tone, config.SpectrumBands))

	if p.Radius <= 400 || p.Radius >= 800 {
		t.Fatalf("expected radius inside (400, 800), got %v", p.Radius)
	}
	if p.PointRadius <= 2 {
		t.Fatalf("expected point radius above 2, got %d", p.PointRadius)
	}
}
