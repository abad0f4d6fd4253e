package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects the oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// tone is a fixed-length oscillator with a linear frequency sweep and an
// exponential decay envelope
type tone struct {
	from, to float64 // Hz
	decay    float64 // Envelope falloff per second
	wave     Wave
	rate     beep.SampleRate

	phase    float64
	position int
	length   int
	noise    uint32
}

func newTone(from, to float64, d time.Duration, decay float64, wave Wave, rate beep.SampleRate) *tone {
	return &tone{
		from:   from,
		to:     to,
		decay:  decay,
		wave:   wave,
		rate:   rate,
		length: rate.N(d),
		noise:  0x2545f491,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}

		progress := float64(t.position) / float64(t.length)
		freq := t.from + (t.to-t.from)*progress
		sec := float64(t.position) / float64(t.rate)
		env := math.Exp(-sec * t.decay)

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			val = 1
			if t.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			t.noise ^= t.noise << 13
			t.noise ^= t.noise >> 17
			t.noise ^= t.noise << 5
			val = float64(t.noise)/float64(math.MaxUint32)*2 - 1
		}
		val *= env * 0.3

		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// withVolume scales a streamer by a linear gain in [0, 1]
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
