package entity

// Pickup is a health drop resting on the ground
type Pickup struct {
	X, Y   float64 // Top-left of the sprite
	Size   float64
	Inset  float64 // Hitbox inset on every side
	Amount int
	Active bool
}

// NewHealthPickup creates a pickup whose sprite bottom rests on groundY,
// horizontally centered on cx.
func NewHealthPickup(cx, groundY, size, inset float64, amount int) *Pickup {
	return &Pickup{
		X:      cx - size/2,
		Y:      groundY - size,
		Size:   size,
		Inset:  inset,
		Amount: amount,
		Active: true,
	}
}

// Hitbox returns the collection box in world coordinates
func (p *Pickup) Hitbox() Rect {
	return Rect{
		X: p.X + p.Inset,
		Y: p.Y + p.Inset,
		W: p.Size - 2*p.Inset,
		H: p.Size - 2*p.Inset,
	}
}

// Collect heals the player once and deactivates the pickup.
// Returns false when the player could not take it.
func (p *Pickup) Collect(player *Player) bool {
	if !p.Active || player.IsDead() {
		return false
	}
	if !player.Heal(p.Amount) {
		return false
	}
	p.Active = false
	return true
}
