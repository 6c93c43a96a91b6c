// Package game runs the particle cloud inside an ebiten window.
package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/audio-cloud/internal/cloud"
)

var background = color.RGBA{R: 95, G: 112, B: 130, A: 255}

// Game is the ebiten.Game driving one simulation step and one render per
// frame.
type Game struct {
	sim      *cloud.Simulation
	renderer *cloud.Renderer
	spectrum *cloud.SpectrumView
	surface  surface
}

// NewGame builds the game. spectrum may be nil to hide the spectrum bars.
func NewGame(sim *cloud.Simulation, renderer *cloud.Renderer, spectrum *cloud.SpectrumView) *Game {
	return &Game{
		sim:      sim,
		renderer: renderer,
		spectrum: spectrum,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.sim.Update()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	g.surface.reset(screen)
	if g.spectrum != nil {
		g.spectrum.Render(&g.surface, g.sim.Spectrum())
	}
	g.renderer.Render(&g.surface, g.sim.Particles(), g.sim.Params())
}

// Layout follows the window so the cloud stays centered after a resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
