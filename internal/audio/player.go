// Package audio plays short synthesized cues for simulation events
// through the system speaker.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/joshpbradley/missile-command/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes event cues into a single speaker stream.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// New creates a player. volume is linear in (0, 1]; values outside are clamped.
func New(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: math.Min(1, math.Max(0.01, volume)),
	}
}

// Init opens the speaker. Calling it twice is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the cue for ev, if it has one.
func (p *Player) Play(ev core.Event) {
	s := Cue(ev)
	if s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	v := &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(p.volume)}
	speaker.Lock()
	p.mixer.Add(v)
	speaker.Unlock()
}

// Close silences every cue and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Cue returns the sound for ev, or nil for silent events.
func Cue(ev core.Event) beep.Streamer {
	switch ev.Kind {
	case core.EventLaunch:
		return NewTone(sampleRate, WaveSquare, 300, 900, 120*time.Millisecond, 12)
	case core.EventFragment:
		return NewTone(sampleRate, WaveSquare, 1200, 700, 60*time.Millisecond, 20)
	case core.EventInterception:
		return layered(250*time.Millisecond,
			NewTone(sampleRate, WaveNoise, 4000, 1500, 250*time.Millisecond, 10),
			NewTone(sampleRate, WaveSine, 660, 330, 250*time.Millisecond, 8),
		)
	case core.EventImpact:
		return NewTone(sampleRate, WaveNoise, 1200, 400, 200*time.Millisecond, 12)
	case core.EventAssetDestroyed:
		return layered(600*time.Millisecond,
			NewTone(sampleRate, WaveNoise, 800, 200, 600*time.Millisecond, 4),
			NewTone(sampleRate, WaveSine, 90, 45, 600*time.Millisecond, 3),
		)
	case core.EventRoundComplete:
		return melody(523, 659, 784, 1047)
	case core.EventRoundStart:
		return melody(392, 523)
	case core.EventGameOver:
		return melody(392, 330, 262, 196)
	default:
		return nil
	}
}

// layered mixes tones of length d at half gain each.
func layered(d time.Duration, tones ...beep.Streamer) beep.Streamer {
	mixed := &effects.Volume{Streamer: beep.Mix(tones...), Base: 2, Volume: -1}
	return beep.Take(sampleRate.N(d), mixed)
}

// melody plays notes back to back.
func melody(freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = NewTone(sampleRate, WaveSquare, f, f, 140*time.Millisecond, 6)
	}
	return beep.Seq(notes...)
}
