package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// surface draws cloud primitives onto an ebiten image. Translations stack
// and apply to lines and circles, text is always in screen space.
type surface struct {
	screen *ebiten.Image
	color  color.NRGBA
	width  float32
	dx, dy float64
	stack  [][2]float64
}

func (s *surface) reset(screen *ebiten.Image) {
	s.screen = screen
	s.dx, s.dy = 0, 0
	s.stack = s.stack[:0]
}

func (s *surface) SetColor(r, g, b, a uint8) {
	s.color = color.NRGBA{R: r, G: g, B: b, A: a}
}

// SetLineWidth keeps widths under one pixel visible as hairlines.
func (s *surface) SetLineWidth(w int) {
	if w < 1 {
		w = 1
	}
	s.width = float32(w)
}

func (s *surface) Line(x0, y0, x1, y1 float64) {
	vector.StrokeLine(s.screen,
		float32(x0+s.dx), float32(y0+s.dy),
		float32(x1+s.dx), float32(y1+s.dy),
		s.width, s.color, true)
}

func (s *surface) Circle(x, y, radius float64) {
	if radius <= 0 {
		return
	}
	vector.DrawFilledCircle(s.screen, float32(x+s.dx), float32(y+s.dy), float32(radius), s.color, true)
}

func (s *surface) Rect(x, y, width, height float64) {
	vector.DrawFilledRect(s.screen, float32(x+s.dx), float32(y+s.dy), float32(width), float32(height), s.color, false)
}

func (s *surface) Text(str string, x, y int) {
	ebitenutil.DebugPrintAt(s.screen, str, x, y)
}

func (s *surface) Push() {
	s.stack = append(s.stack, [2]float64{s.dx, s.dy})
}

func (s *surface) Translate(dx, dy float64) {
	s.dx += dx
	s.dy += dy
}

func (s *surface) Pop() {
	if len(s.stack) == 0 {
		return
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.dx, s.dy = top[0], top[1]
}

func (s *surface) Size() (int, int) {
	b := s.screen.Bounds()
	return b.Dx(), b.Dy()
}

func (s *surface) FrameRate() float64 {
	return ebiten.ActualFPS()
}
