package cloud

import (
	"fmt"
	"math"
)

// Surface is the drawing target of the renderer.
type Surface interface {
	SetColor(r, g, b, a uint8)
	SetLineWidth(w int)
	Line(x0, y0, x1, y1 float64)
	Circle(x, y, radius float64)
	Rect(x, y, width, height float64)
	Text(s string, x, y int)

	// Push saves the current transform, Pop restores it.
	Push()
	Translate(dx, dy float64)
	Pop()

	Size() (width, height int)
	FrameRate() float64
}

// Renderer draws the cloud links and the text overlay.
type Renderer struct {
	// LinkDistance is the distance under which two points are joined.
	LinkDistance float64
	// DrawPoints enables the point markers. They are off by default and only
	// the links are visible.
	DrawPoints bool
}

func NewRenderer(linkDistance float64) *Renderer {
	return &Renderer{LinkDistance: linkDistance}
}

func (r *Renderer) Render(s Surface, particles []Particle, p Params) {
	w, h := s.Size()

	s.Push()
	s.Translate(float64(w)/2, float64(h)/2)

	if r.DrawPoints {
		s.SetColor(198, 183, 142, 255)
		for _, pt := range particles {
			s.Circle(pt.X, pt.Y, float64(p.PointRadius))
		}
	}

	s.SetLineWidth(p.LineWidth)
	s.SetColor(255, 255, 255, alpha(p.LineAlpha))

	for j := range particles {
		a := particles[j]
		for k := j + 1; k < len(particles); k++ {
			b := particles[k]
			if math.Hypot(a.X-b.X, a.Y-b.Y) < r.LinkDistance {
				s.Line(a.X, a.Y, b.X, b.Y)
			}
		}
	}

	s.Pop()

	s.Text(fmt.Sprintf("fps: %.2f", s.FrameRate()), 10, 20)
	s.Text("Press escape to quit the application.", 10, 40)
}

func alpha(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
