package entity

import "time"

// ProjectileSpec holds the fireball tunables
type ProjectileSpec struct {
	Speed     float64 // Pixels per tick
	Width     float64
	Height    float64
	Lifetime  time.Duration
	Damage    int
	Knockback float64
	Frames    int
	FrameTime time.Duration
}

// Projectile is a straight-flying player fireball
type Projectile struct {
	X, Y      float64 // Top-left
	VX        float64
	W, H      float64
	Damage    int
	Knockback float64
	Active    bool

	SpawnedAt time.Duration
	Lifetime  time.Duration
	Frame     int
	frames    int
	frameTime time.Duration
}

// NewFireball creates a fireball centered on (cx, cy) flying toward facing
func NewFireball(cx, cy float64, facing Facing, spec ProjectileSpec, now time.Duration) *Projectile {
	return &Projectile{
		X:         cx - spec.Width/2,
		Y:         cy - spec.Height/2,
		VX:        spec.Speed * facing.Dir(),
		W:         spec.Width,
		H:         spec.Height,
		Damage:    spec.Damage,
		Knockback: spec.Knockback,
		Active:    true,
		SpawnedAt: now,
		Lifetime:  spec.Lifetime,
		frames:    spec.Frames,
		frameTime: spec.FrameTime,
	}
}

// Update moves the projectile one tick and expires it after its lifetime
// or once it leaves the world.
func (p *Projectile) Update(now time.Duration, world World) {
	if !p.Active {
		return
	}

	p.X += p.VX

	age := now - p.SpawnedAt
	if age >= p.Lifetime {
		p.Deactivate()
		return
	}
	if p.Hitbox().Right() < 0 || p.X > world.Width {
		p.Deactivate()
		return
	}

	if p.frames > 0 && p.frameTime > 0 {
		p.Frame = int(age/p.frameTime) % p.frames
	}
}

// Dir returns the flight direction as ±1
func (p *Projectile) Dir() float64 {
	if p.VX < 0 {
		return -1
	}
	return 1
}

// Hitbox returns the hitbox in world coordinates
func (p *Projectile) Hitbox() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Deactivate marks the projectile as inactive
func (p *Projectile) Deactivate() {
	p.Active = false
}
