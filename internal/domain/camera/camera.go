// Package camera maps world coordinates onto the screen.
//
// The camera centers on a target rect and clamps to the world on each axis.
// Shake and zoom are time-boxed effects driven by simulation time.
package camera

import (
	"math/rand"
	"time"

	"github.com/younwookim/brawler/internal/domain/entity"
)

// Camera is the viewport into the world
type Camera struct {
	X, Y float64

	ViewW, ViewH   float64
	WorldW, WorldH float64

	// Shake offset for the current tick
	OffsetX, OffsetY float64

	shakeUntil     time.Duration
	shakeMagnitude float64
	zoomUntil      time.Duration
	zoomMagnitude  float64

	rng *rand.Rand
}

// New creates a camera for a viewport of viewW x viewH inside world
func New(viewW, viewH float64, world entity.World, rng *rand.Rand) *Camera {
	return &Camera{
		ViewW:  viewW,
		ViewH:  viewH,
		WorldW: world.Width,
		WorldH: world.Height,
		rng:    rng,
	}
}

// Update centers on target, clamps to the world and rolls the shake offset
func (c *Camera) Update(target entity.Rect, now time.Duration) {
	c.X = clampAxis(target.CenterX()-c.ViewW/2, c.WorldW-c.ViewW)
	c.Y = clampAxis(target.CenterY()-c.ViewH/2, c.WorldH-c.ViewH)

	if now < c.shakeUntil && c.shakeMagnitude > 0 {
		c.OffsetX = (c.rng.Float64()*2 - 1) * c.shakeMagnitude
		c.OffsetY = (c.rng.Float64()*2 - 1) * c.shakeMagnitude
		return
	}
	c.OffsetX, c.OffsetY = 0, 0
	c.shakeMagnitude = 0
}

// clampAxis keeps v in [0, limit]; a world smaller than the view pins to 0
func clampAxis(v, limit float64) float64 {
	if limit < 0 {
		limit = 0
	}
	return max(0, min(v, limit))
}

// Apply converts a world rect to screen space
func (c *Camera) Apply(r entity.Rect) entity.Rect {
	r.X -= c.X + c.OffsetX
	r.Y -= c.Y + c.OffsetY
	return r
}

// ApplyPoint converts a world point to screen space
func (c *Camera) ApplyPoint(x, y float64) (float64, float64) {
	return x - c.X - c.OffsetX, y - c.Y - c.OffsetY
}

// Viewport returns the visible world rect
func (c *Camera) Viewport() entity.Rect {
	return entity.Rect{X: c.X, Y: c.Y, W: c.ViewW, H: c.ViewH}
}

// Shake starts a shake of up to magnitude pixels for d.
// A stronger shake replaces a weaker one still running.
func (c *Camera) Shake(now, d time.Duration, magnitude float64) {
	if now < c.shakeUntil && magnitude < c.shakeMagnitude {
		return
	}
	c.shakeUntil = now + d
	c.shakeMagnitude = magnitude
}

// Zoom requests a zoom of 1+magnitude for d
func (c *Camera) Zoom(now, d time.Duration, magnitude float64) {
	c.zoomUntil = now + d
	c.zoomMagnitude = magnitude
}

// Scale returns the zoom factor at now
func (c *Camera) Scale(now time.Duration) float64 {
	if now < c.zoomUntil {
		return 1 + c.zoomMagnitude
	}
	return 1
}
