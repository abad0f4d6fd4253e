package system

import "time"

// Pacer maps wall-clock frames onto simulation ticks.
// Normally one frame runs one tick. Slow motion runs a fraction of a tick per
// frame and hitstop freezes the simulation for whole frames.
type Pacer struct {
	frame time.Duration

	scale     float64
	remaining time.Duration
	acc       float64

	hitstop int
}

// NewPacer creates a pacer for frames of the given length
func NewPacer(frame time.Duration) *Pacer {
	return &Pacer{frame: frame, scale: 1}
}

// SlowMotion runs the simulation at scale for d of wall time.
// A request never shortens or weakens one already running.
func (p *Pacer) SlowMotion(d time.Duration, scale float64) {
	if scale <= 0 || scale >= 1 || d <= 0 {
		return
	}
	if p.remaining > 0 {
		scale = min(scale, p.scale)
		d = max(d, p.remaining)
	}
	p.scale = scale
	p.remaining = d
}

// Hitstop freezes the simulation for the given number of frames
func (p *Pacer) Hitstop(frames int) {
	p.hitstop = max(p.hitstop, frames)
}

// Frame returns how many ticks to run for one wall-clock frame
func (p *Pacer) Frame() int {
	if p.hitstop > 0 {
		p.hitstop--
		return 0
	}

	scale := 1.0
	if p.remaining > 0 {
		scale = p.scale
		p.remaining -= p.frame
	}

	p.acc += scale
	n := int(p.acc)
	p.acc -= float64(n)
	return n
}

// Scale returns the current time scale
func (p *Pacer) Scale() float64 {
	if p.remaining > 0 {
		return p.scale
	}
	return 1
}

// Reset drops any running slow motion or hitstop
func (p *Pacer) Reset() {
	p.scale = 1
	p.remaining = 0
	p.acc = 0
	p.hitstop = 0
}
