package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func createTestFireballSpec() ProjectileSpec {
	return ProjectileSpec{
		Speed:     12,
		Width:     32,
		Height:    16,
		Lifetime:  3000 * time.Millisecond,
		Damage:    1,
		Knockback: 8,
		Frames:    3,
		FrameTime: 80 * time.Millisecond,
	}
}

func TestNewFireball(t *testing.T) {
	p := NewFireball(100, 200, FacingLeft, createTestFireballSpec(), 0)

	assert.True(t, p.Active)
	assert.Equal(t, -12.0, p.VX)
	assert.Equal(t, -1.0, p.Dir())
	assert.Equal(t, Rect{X: 84, Y: 192, W: 32, H: 16}, p.Hitbox())
}

func TestProjectile_Update(t *testing.T) {
	world := World{Width: 2400, Height: 2400, GroundY: 2250}
	p := NewFireball(100, 200, FacingRight, createTestFireballSpec(), 0)

	p.Update(tick, world)
	assert.Equal(t, 96.0, p.X)

	p.Update(2999*time.Millisecond, world)
	assert.True(t, p.Active)

	p.Update(3000*time.Millisecond, world)
	assert.False(t, p.Active, "expires after its lifetime")
}

func TestProjectile_LeavesWorld(t *testing.T) {
	world := World{Width: 2400, Height: 2400, GroundY: 2250}
	p := NewFireball(10, 200, FacingLeft, createTestFireballSpec(), 0)

	for i := 0; i < 3 && p.Active; i++ {
		p.Update(time.Duration(i)*tick, world)
	}
	assert.False(t, p.Active)
}

func TestHitspark(t *testing.T) {
	e := NewHitspark(50, 60, 2, 80*time.Millisecond)
	assert.True(t, e.Active)

	for i := 0; i < 4; i++ {
		e.Update(tick)
	}
	assert.Equal(t, 1, e.Frame)
	assert.True(t, e.Active)

	for i := 0; i < 4; i++ {
		e.Update(tick)
	}
	assert.False(t, e.Active)
	assert.Equal(t, 1, e.Frame)
}

func TestPickup_Collect(t *testing.T) {
	p := createTestPlayer()
	pickup := NewHealthPickup(500, 2250, 48, 8, 1)

	assert.Equal(t, Rect{X: 484, Y: 2210, W: 32, H: 32}, pickup.Hitbox())
	assert.False(t, pickup.Collect(p), "full HP leaves the pickup in place")
	assert.True(t, pickup.Active)

	p.TakeDamage(2, 0)
	assert.True(t, pickup.Collect(p))
	assert.Equal(t, 4, p.HP)
	assert.False(t, pickup.Active)
	assert.False(t, pickup.Collect(p))
}

func TestPickup_DeadPlayerCannotCollect(t *testing.T) {
	p := createTestPlayer()
	p.TakeDamage(5, 0)
	pickup := NewHealthPickup(500, 2250, 48, 8, 1)

	assert.False(t, pickup.Collect(p))
	assert.True(t, pickup.Active)
}
