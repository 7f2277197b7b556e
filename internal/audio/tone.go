package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Wave selects the oscillator shape of a tone.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// tone is a finite oscillator whose pitch slides from freq to endFreq
// and whose amplitude decays exponentially.
type tone struct {
	rate    beep.SampleRate
	wave    Wave
	freq    float64
	endFreq float64
	decay   float64 // Envelope falloff per second
	amp     float64
	length  int // Total samples
	pos     int
	phase   float64
	noise   *rand.Rand
	held    float64
}

// NewTone returns a streamer of the given shape and duration, sliding from
// freq to endFreq. Samples stay within [-1, 1].
func NewTone(rate beep.SampleRate, wave Wave, freq, endFreq float64, d time.Duration, decay float64) beep.Streamer {
	return &tone{
		rate:    rate,
		wave:    wave,
		freq:    freq,
		endFreq: endFreq,
		decay:   decay,
		length:  rate.N(d),
		noise:   rand.New(rand.NewSource(int64(freq*1000) + int64(d))),
		amp:     0.5,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}
		progress := float64(t.pos) / float64(t.length)
		freq := t.freq + (t.endFreq-t.freq)*progress
		secs := float64(t.pos) / float64(t.rate)
		env := t.amp * math.Exp(-t.decay*secs)

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveNoise:
			// Sample-and-hold noise; freq sets how often it changes
			hold := max(1, int(float64(t.rate)/freq))
			if t.pos%hold == 0 {
				t.held = t.noise.Float64()*2 - 1
			}
			v = t.held
		}

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)

		s := v * env
		samples[i][0] = s
		samples[i][1] = s
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}
