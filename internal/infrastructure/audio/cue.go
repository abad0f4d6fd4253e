package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue names one of the short sounds the game plays
type Cue int

const (
	CueHit Cue = iota
	CueHurt
	CueDeath
	CueAlert
)

func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueHurt:
		return "hurt"
	case CueDeath:
		return "death"
	case CueAlert:
		return "alert"
	default:
		return "unknown"
	}
}

// streamer builds a fresh one-shot streamer for the cue
func (c Cue) streamer(rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueHit:
		return beep.Mix(
			newTone(320, 140, 90*time.Millisecond, 30, WaveSquare, rate),
			newTone(0, 0, 60*time.Millisecond, 50, WaveNoise, rate),
		)
	case CueHurt:
		return newTone(180, 90, 160*time.Millisecond, 15, WaveSquare, rate)
	case CueDeath:
		return beep.Seq(
			newTone(220, 110, 150*time.Millisecond, 6, WaveSine, rate),
			newTone(0, 0, 250*time.Millisecond, 10, WaveNoise, rate),
		)
	case CueAlert:
		return beep.Seq(
			newTone(660, 660, 80*time.Millisecond, 4, WaveSine, rate),
			newTone(880, 880, 120*time.Millisecond, 4, WaveSine, rate),
		)
	default:
		return newTone(440, 440, 50*time.Millisecond, 20, WaveSine, rate)
	}
}
