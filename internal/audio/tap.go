package audio

import (
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and records the last N samples into a ring buffer
// so the analyzer can look at recently played audio.
type Tap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	filled    int
	mu        sync.RWMutex
}

func NewTap(src beep.Streamer, ringSize int) *Tap {
	return &Tap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.filled += n
		if t.filled > len(t.buffer) {
			t.filled = len(t.buffer)
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Snapshot returns up to the last n samples mixed down to mono, oldest first.
func (t *Tap) Snapshot(n int) []float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > t.filled {
		n = t.filled
	}

	out := make([]float64, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		s := t.buffer[idx]
		out[i] = (s[0] + s[1]) * 0.5
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}
