package cloud

const (
	barStep   = 5
	barWidth  = 3
	barHeight = 100.0
	barMargin = 10
)

// SpectrumView draws the smoothed spectrum as a row of bars along the bottom
// edge of the surface. Bands that drive the cloud are drawn in white.
type SpectrumView struct {
	Highlight []int
}

func NewSpectrumView(highlight ...int) *SpectrumView {
	return &SpectrumView{Highlight: highlight}
}

func (v *SpectrumView) Render(s Surface, spectrum []float64) {
	_, h := s.Size()
	base := float64(h - barMargin)

	s.SetColor(185, 113, 101, 255)
	s.Rect(barMargin, base-barHeight, float64(len(spectrum)*barStep), barHeight)

	for i, value := range spectrum {
		if v.highlighted(i) {
			s.SetColor(255, 255, 255, 255)
		} else {
			s.SetColor(128, 128, 128, 255)
		}

		// bars grow upwards and stop at the panel top
		height := value * barHeight
		if height > barHeight {
			height = barHeight
		}
		if height <= 0 {
			continue
		}

		s.Rect(float64(barMargin+i*barStep), base-height, barWidth, height)
	}
}

func (v *SpectrumView) highlighted(band int) bool {
	for _, idx := range v.Highlight {
		if idx == band {
			return true
		}
	}
	return false
}
