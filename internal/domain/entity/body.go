package entity

// HitboxSpec places the collision box inside the sprite box.
// Offsets are relative to the sprite's top-left corner.
type HitboxSpec struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

// Body represents the physical body of an actor.
// X, Y is the top-left of the sprite box in world space; velocities are per tick.
type Body struct {
	X, Y       float64
	VX, VY     float64
	KnockbackX float64

	Width, Height float64 // Sprite box
	Box           HitboxSpec

	Facing   Facing
	OnGround bool
}

// Bounds returns the sprite box in world coordinates
func (b *Body) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// Hitbox returns the collision box in world coordinates
func (b *Body) Hitbox() Rect {
	return Rect{
		X: b.X + b.Box.OffsetX,
		Y: b.Y + b.Box.OffsetY,
		W: b.Box.Width,
		H: b.Box.Height,
	}
}

// SetHitboxX moves the body so the hitbox's left edge sits at x
func (b *Body) SetHitboxX(x float64) {
	b.X = x - b.Box.OffsetX
}

// SetHitboxBottom moves the body so the hitbox's bottom edge sits at y
func (b *Body) SetHitboxBottom(y float64) {
	b.Y = y - b.Box.OffsetY - b.Box.Height
}

// ApplyKnockback sets a horizontal knockback of strength in direction dir (±1)
func (b *Body) ApplyKnockback(strength, dir float64) {
	b.KnockbackX = strength * normalizeDir(dir)
}
