package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func runFrames(p *Pacer, n int) int {
	ticks := 0
	for i := 0; i < n; i++ {
		ticks += p.Frame()
	}
	return ticks
}

func TestPacer_Normal(t *testing.T) {
	p := NewPacer(testTick)

	assert.Equal(t, 10, runFrames(p, 10))
	assert.Equal(t, 1.0, p.Scale())
}

func TestPacer_SlowMotion(t *testing.T) {
	p := NewPacer(testTick)
	p.SlowMotion(160*time.Millisecond, 0.25)
	assert.Equal(t, 0.25, p.Scale())

	// 8 slowed frames run 2 ticks
	assert.Equal(t, 2, runFrames(p, 8))
	assert.Equal(t, 1.0, p.Scale())
	assert.Equal(t, 5, runFrames(p, 5))
}

func TestPacer_SlowMotionKeepsStrongest(t *testing.T) {
	p := NewPacer(testTick)
	p.SlowMotion(100*time.Millisecond, 0.25)
	p.SlowMotion(40*time.Millisecond, 0.5)

	assert.Equal(t, 0.25, p.Scale())
	runFrames(p, 4)
	assert.Equal(t, 0.25, p.Scale(), "the shorter request does not cut the first short")
	runFrames(p, 1)
	assert.Equal(t, 1.0, p.Scale())
}

func TestPacer_IgnoresInvalidRequests(t *testing.T) {
	p := NewPacer(testTick)
	p.SlowMotion(time.Second, 0)
	p.SlowMotion(time.Second, 1.5)
	p.SlowMotion(0, 0.5)

	assert.Equal(t, 1.0, p.Scale())
}

func TestPacer_Hitstop(t *testing.T) {
	p := NewPacer(testTick)
	p.Hitstop(3)

	assert.Zero(t, runFrames(p, 3))
	assert.Equal(t, 1, p.Frame())
}

func TestPacer_Reset(t *testing.T) {
	p := NewPacer(testTick)
	p.SlowMotion(time.Second, 0.5)
	p.Hitstop(5)
	p.Reset()

	assert.Equal(t, 1, p.Frame())
	assert.Equal(t, 1.0, p.Scale())
}
