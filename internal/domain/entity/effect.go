package entity

import "time"

// Effect is a one-shot visual played at a world point, such as a hitspark
type Effect struct {
	X, Y   float64 // Center
	Frame  int
	Frames int
	Active bool

	frameTime time.Duration
	elapsed   time.Duration
}

// NewHitspark creates a spark centered on (x, y)
func NewHitspark(x, y float64, frames int, frameTime time.Duration) *Effect {
	return &Effect{
		X:         x,
		Y:         y,
		Frames:    frames,
		Active:    frames > 0,
		frameTime: frameTime,
	}
}

// Update advances the effect and deactivates it after its last frame
func (e *Effect) Update(dt time.Duration) {
	if !e.Active {
		return
	}
	e.elapsed += dt
	if e.elapsed < e.frameTime {
		return
	}
	e.elapsed = 0
	e.Frame++
	if e.Frame >= e.Frames {
		e.Frame = e.Frames - 1
		e.Active = false
	}
}
