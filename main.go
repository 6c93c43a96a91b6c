package main

import (
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"github.com/iburimskiy/audio-cloud/internal/audio"
	"github.com/iburimskiy/audio-cloud/internal/cloud"
	"github.com/iburimskiy/audio-cloud/internal/config"
	"github.com/iburimskiy/audio-cloud/internal/game"
)

// AppName is the app name
const AppName = "audio-cloud"

// AppDesc is the app description
const AppDesc = "Audio reactive particle cloud"

var version = "unknown"

func main() {
	log.SetFlags(0)

	cfg := config.NewZeroConfig()

	doFlags(&cfg)

	chk(cfg.Sanitize(), "invalid config")

	chk(run(&cfg), "failed to run "+AppName)
}

func run(cfg *config.Config) error {
	track, err := audio.Open(cfg.Track, audio.Config{
		RingSize: config.VisualRingSize,
		FFTSize:  config.FFTSize,
		Gain:     cfg.Gain,
	})
	if err != nil {
		return err
	}
	defer track.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	bands := cloud.DefaultBands(config.PointRadiusBandsCount)

	sim, err := cloud.New(cloud.Config{
		BandCount:   config.SpectrumBands,
		Decay:       config.SpectrumDecay,
		Bands:       bands,
		Particles:   cfg.Particles,
		OffsetRange: config.OffsetRange,
		MaxStep:     config.MaxFrameStep,
		Source:      track,
		Clock:       cloud.NewWallClock(),
		Noise:       cloud.NewPerlinNoise(seed),
	})
	if err != nil {
		return errors.Wrap(err, "failed to build the simulation")
	}

	renderer := cloud.NewRenderer(config.LinkDistance)
	renderer.DrawPoints = cfg.DrawPoints

	var spectrum *cloud.SpectrumView
	if cfg.ShowSpectrum {
		spectrum = cloud.NewSpectrumView(bands.Radius, bands.Velocity)
	}

	if err := track.Play(!cfg.NoLoop); err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(AppName + " - " + filepath.Base(cfg.Track))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game.NewGame(sim, renderer, spectrum)); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "game loop stopped")
	}

	return nil
}

func doFlags(cfg *config.Config) {
	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc
	parser.Version = version

	parser.AddPositionalValue(&cfg.Track, "track", 1, false, "audio file to play (wav, mp3, flac)")

	parser.String(&cfg.Track, "t", "track", "audio file to play")
	parser.Int(&cfg.Width, "W", "width", "window width")
	parser.Int(&cfg.Height, "H", "height", "window height")
	parser.Int(&cfg.Particles, "n", "particles", "number of cloud points")
	parser.Int64(&cfg.Seed, "s", "seed", "noise seed (0 picks one from the clock)")
	parser.Float64(&cfg.Gain, "g", "gain", "spectrum gain")
	parser.Bool(&cfg.DrawPoints, "", "points", "draw the cloud points")
	parser.Bool(&cfg.NoLoop, "", "no-loop", "play the track once")
	parser.Bool(&cfg.ShowSpectrum, "", "spectrum", "draw the smoothed spectrum")

	chk(parser.Parse(), "failed to parse arguments")
}

// chk shows err in a dialog when a desktop is available, then exits.
func chk(err error, wrap string) {
	if err != nil {
		_ = zenity.Error(wrap+": "+err.Error(), zenity.Title(AppName), zenity.ErrorIcon)
		log.Fatalln(wrap+": ", err)
	}
}
