package entity

import "time"

// PlayerSpec holds the player's tunables
type PlayerSpec struct {
	ActorSpec
	JumpPower    float64 // Initial VY of a jump (negative is up)
	CastCooldown time.Duration
}

// Player is the actor driven by input
type Player struct {
	Actor

	JumpPower    float64
	CastCooldown time.Duration
	CastReadyAt  time.Duration
}

// NewPlayer creates a player at x, y (sprite top-left) facing right
func NewPlayer(id EntityID, x, y float64, spec PlayerSpec) *Player {
	return &Player{
		Actor:        newActor(id, x, y, spec.ActorSpec),
		JumpPower:    spec.JumpPower,
		CastCooldown: spec.CastCooldown,
	}
}

// CanAct reports whether movement and jump intents are honored
func (p *Player) CanAct() bool {
	return !p.IsDead() && !p.Locked
}

// Move sets horizontal velocity from a direction (-1, 0, +1) and turns toward it
func (p *Player) Move(dir int) {
	if !p.CanAct() {
		return
	}
	switch {
	case dir < 0:
		p.VX = -p.Speed
		p.Facing = FacingLeft
	case dir > 0:
		p.VX = p.Speed
		p.Facing = FacingRight
	default:
		p.VX = 0
	}
}

// Jump launches the player when grounded
func (p *Player) Jump() bool {
	if !p.CanAct() || !p.OnGround {
		return false
	}
	p.VY = p.JumpPower
	p.OnGround = false
	return true
}

// Attack starts the next alternating swing (Attack1 first).
// No-op while attacking, locked or dead.
func (p *Player) Attack() bool {
	return p.startAttack()
}

// TakeDamage applies damage unless the player is dead or inside the
// invulnerability window.
func (p *Player) TakeDamage(amount int, now time.Duration) DamageResult {
	return p.applyDamage(amount, now)
}

// Heal restores HP up to MaxHP. Dead players cannot heal.
func (p *Player) Heal(amount int) bool {
	if p.IsDead() || amount <= 0 || p.HP >= p.MaxHP {
		return false
	}
	p.HP = min(p.HP+amount, p.MaxHP)
	return true
}

// TryCast consumes the cast cooldown when a fireball may be thrown
func (p *Player) TryCast(now time.Duration) bool {
	if !p.CanAct() || now < p.CastReadyAt {
		return false
	}
	p.CastReadyAt = now + p.CastCooldown
	return true
}
