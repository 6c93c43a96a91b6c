// Package audio plays a track through the system speaker and exposes the
// spectrum of what is currently playing.
package audio

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"

	"github.com/iburimskiy/audio-cloud/internal/dsp"
)

// ErrUnsupportedFormat is returned by Open for files it cannot decode.
var ErrUnsupportedFormat = errors.New("unsupported file type")

type Config struct {
	RingSize int     // samples kept for analysis
	FFTSize  int     // samples per spectrum transform
	Gain     float64 // spectrum gain, 0 leaves magnitudes as is
}

// Track is a decoded audio file ready to be played.
type Track struct {
	Path string

	streamer beep.StreamSeekCloser
	format   beep.Format
	tap      *Tap
	analyzer *dsp.Analyzer
	fftSize  int
}

// Open decodes the header of a wav, mp3 or flac file.
func Open(path string, cfg Config) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open track")
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)

	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, errors.Wrap(ErrUnsupportedFormat, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}

	log.Printf("loaded %s (%d Hz, %d channels)", path, format.SampleRate, format.NumChannels)

	return &Track{
		Path:     path,
		streamer: streamer,
		format:   format,
		analyzer: dsp.NewAnalyzer(dsp.AnalyzerConfig{FFTSize: cfg.FFTSize, Gain: cfg.Gain}),
		fftSize:  cfg.FFTSize,
		tap:      NewTap(nil, cfg.RingSize),
	}, nil
}

// Play starts playback on the speaker. With loop set the track restarts
// whenever it ends.
func (t *Track) Play(loop bool) error {
	bufferSize := t.format.SampleRate.N(time.Second / 20)
	if err := speaker.Init(t.format.SampleRate, bufferSize); err != nil {
		return errors.Wrap(err, "failed to init speaker")
	}

	var src beep.Streamer = t.streamer
	if loop {
		src = beep.Loop(-1, t.streamer)
	}

	speaker.Lock()
	t.tap.Source = src
	speaker.Unlock()

	speaker.Play(t.tap)

	return nil
}

// Spectrum returns bands magnitudes of the most recently played samples.
// Before playback starts every band is zero.
func (t *Track) Spectrum(bands int) []float64 {
	return t.analyzer.Spectrum(t.tap.Snapshot(t.fftSize), bands)
}

// Close stops playback and releases the track. The decoder owns the file and
// closes it along with the stream.
func (t *Track) Close() error {
	speaker.Clear()
	return t.streamer.Close()
}
