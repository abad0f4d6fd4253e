package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func createTestBody() Body {
	return Body{
		X:      100,
		Y:      200,
		Width:  160,
		Height: 160,
		Box:    HitboxSpec{OffsetX: 60, OffsetY: 80, Width: 40, Height: 80},
	}
}

func TestBody_Hitbox(t *testing.T) {
	b := createTestBody()

	assert.Equal(t, Rect{X: 160, Y: 280, W: 40, H: 80}, b.Hitbox())
	assert.True(t, b.Bounds().Contains(b.Hitbox()), "hitbox must stay inside the sprite box")
}

func TestBody_HitboxFollowsPosition(t *testing.T) {
	b := createTestBody()
	b.X += 37
	b.Y -= 12

	hb := b.Hitbox()
	assert.Equal(t, b.X+60, hb.X)
	assert.Equal(t, b.Y+80, hb.Y)
}

func TestBody_SetHitboxEdges(t *testing.T) {
	b := createTestBody()

	b.SetHitboxX(0)
	assert.Equal(t, 0.0, b.Hitbox().X)
	assert.Equal(t, -60.0, b.X)

	b.SetHitboxBottom(2250)
	assert.Equal(t, 2250.0, b.Hitbox().Bottom())
}

func TestBody_ApplyKnockback(t *testing.T) {
	b := createTestBody()

	b.ApplyKnockback(15, -1)
	assert.Equal(t, -15.0, b.KnockbackX)

	b.ApplyKnockback(15, 1)
	assert.Equal(t, 15.0, b.KnockbackX)
}
