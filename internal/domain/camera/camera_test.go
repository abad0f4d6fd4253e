package camera

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/brawler/internal/domain/entity"
)

func createTestCamera() *Camera {
	world := entity.World{Width: 2400, Height: 2400, GroundY: 2250}
	return New(800, 600, world, rand.New(rand.NewSource(1)))
}

func TestCamera_CentersOnTarget(t *testing.T) {
	c := createTestCamera()

	c.Update(entity.Rect{X: 1180, Y: 1160, W: 40, H: 80}, 0)
	assert.Equal(t, 800.0, c.X)
	assert.Equal(t, 900.0, c.Y)
}

func TestCamera_Clamp(t *testing.T) {
	tests := []struct {
		name   string
		target entity.Rect
		wantX  float64
		wantY  float64
	}{
		{"top-left corner", entity.Rect{X: 0, Y: 0, W: 40, H: 80}, 0, 0},
		{"bottom-right corner", entity.Rect{X: 2360, Y: 2320, W: 40, H: 80}, 1600, 1800},
		{"ground line", entity.Rect{X: 460, Y: 2170, W: 40, H: 80}, 80, 1800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := createTestCamera()
			c.Update(tt.target, 0)
			assert.Equal(t, tt.wantX, c.X)
			assert.Equal(t, tt.wantY, c.Y)
		})
	}
}

func TestCamera_WorldSmallerThanView(t *testing.T) {
	c := New(800, 600, entity.World{Width: 500, Height: 400}, rand.New(rand.NewSource(1)))

	c.Update(entity.Rect{X: 400, Y: 300, W: 40, H: 80}, 0)
	assert.Equal(t, 0.0, c.X)
	assert.Equal(t, 0.0, c.Y)
}

func TestCamera_Apply(t *testing.T) {
	c := createTestCamera()
	c.Update(entity.Rect{X: 1180, Y: 1160, W: 40, H: 80}, 0)

	r := c.Apply(entity.Rect{X: 1000, Y: 1000, W: 10, H: 10})
	assert.Equal(t, entity.Rect{X: 200, Y: 100, W: 10, H: 10}, r)

	x, y := c.ApplyPoint(800, 900)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)

	assert.Equal(t, entity.Rect{X: 800, Y: 900, W: 800, H: 600}, c.Viewport())
}

func TestCamera_ShakeIsTimeBoxed(t *testing.T) {
	c := createTestCamera()
	target := entity.Rect{X: 1180, Y: 1160, W: 40, H: 80}

	c.Shake(0, 200*time.Millisecond, 6)
	moved := false
	for now := time.Duration(0); now < 200*time.Millisecond; now += 20 * time.Millisecond {
		c.Update(target, now)
		assert.LessOrEqual(t, c.OffsetX, 6.0)
		assert.GreaterOrEqual(t, c.OffsetX, -6.0)
		assert.LessOrEqual(t, c.OffsetY, 6.0)
		assert.GreaterOrEqual(t, c.OffsetY, -6.0)
		if c.OffsetX != 0 || c.OffsetY != 0 {
			moved = true
		}
	}
	assert.True(t, moved)

	c.Update(target, 200*time.Millisecond)
	assert.Zero(t, c.OffsetX)
	assert.Zero(t, c.OffsetY)
}

func TestCamera_WeakerShakeDoesNotReplace(t *testing.T) {
	c := createTestCamera()

	c.Shake(0, 300*time.Millisecond, 8)
	c.Shake(100*time.Millisecond, 50*time.Millisecond, 2)
	assert.Equal(t, 8.0, c.shakeMagnitude)
	assert.Equal(t, 300*time.Millisecond, c.shakeUntil)
}

func TestCamera_Zoom(t *testing.T) {
	c := createTestCamera()

	assert.Equal(t, 1.0, c.Scale(0))
	c.Zoom(0, 100*time.Millisecond, 0.1)
	assert.InDelta(t, 1.1, c.Scale(50*time.Millisecond), 1e-9)
	assert.Equal(t, 1.0, c.Scale(100*time.Millisecond))
}
