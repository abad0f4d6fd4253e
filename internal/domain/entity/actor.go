package entity

import "time"

// DamageResult reports what a damage call did to its target
type DamageResult int

const (
	NotHit DamageResult = iota
	Hit
	Died
)

// String returns the string representation of the result
func (r DamageResult) String() string {
	switch r {
	case Hit:
		return "hit"
	case Died:
		return "died"
	default:
		return "not_hit"
	}
}

// ActorSpec holds the fixed tunables shared by every actor kind
type ActorSpec struct {
	Width, Height float64
	Hitbox        HitboxSpec
	MaxHP         int
	Speed         float64
	HitCooldown   time.Duration // Invulnerability after taking damage
	FlashDuration time.Duration // Hit flash shown by the renderer
	HitFrame      int           // First attack frame that can land
	Anims         AnimTable
}

// Actor is the state shared by the player and enemies: body, health,
// animation state machine and per-swing hit tracking.
type Actor struct {
	Body
	ID   EntityID
	Anim Animator

	HP    int
	MaxHP int
	Speed float64

	HitCooldown      time.Duration
	HitCooldownUntil time.Duration
	FlashDuration    time.Duration
	FlashUntil       time.Duration
	HitFrame         int

	Locked  bool
	DeathAt time.Duration

	lastAttack AnimState
	prevFacing Facing
	swing      uint64
	swingHits  map[EntityID]struct{}
}

func newActor(id EntityID, x, y float64, spec ActorSpec) Actor {
	return Actor{
		Body: Body{
			X:      x,
			Y:      y,
			Width:  spec.Width,
			Height: spec.Height,
			Box:    spec.Hitbox,
		},
		ID:            id,
		Anim:          NewAnimator(spec.Anims, AnimIdle),
		HP:            spec.MaxHP,
		MaxHP:         spec.MaxHP,
		Speed:         spec.Speed,
		HitCooldown:   spec.HitCooldown,
		FlashDuration: spec.FlashDuration,
		HitFrame:      spec.HitFrame,
		swingHits:     make(map[EntityID]struct{}),
	}
}

// IsDead returns true once HP reached zero
func (a *Actor) IsDead() bool {
	return a.HP <= 0
}

// IsAttacking returns true while an attack animation plays
func (a *Actor) IsAttacking() bool {
	return a.Anim.State.IsAttack()
}

// CanStrike reports whether the current swing is in its damaging frames
func (a *Actor) CanStrike() bool {
	return !a.IsDead() && a.IsAttacking() && a.Anim.Frame >= a.HitFrame
}

// IsInvulnerable returns true inside the post-damage cooldown window
func (a *Actor) IsInvulnerable(now time.Duration) bool {
	return now < a.HitCooldownUntil
}

// IsFlashing returns true while the hit flash should be drawn
func (a *Actor) IsFlashing(now time.Duration) bool {
	return now < a.FlashUntil
}

// Swing returns the id of the current swing; it changes on every attack
func (a *Actor) Swing() uint64 {
	return a.swing
}

// MarkSwingHit records target as hit by the current swing.
// Returns false when the swing already hit it.
func (a *Actor) MarkSwingHit(target EntityID) bool {
	if _, ok := a.swingHits[target]; ok {
		return false
	}
	a.swingHits[target] = struct{}{}
	return true
}

// startAttack begins the next alternating swing. No-op while locked, attacking or dead.
func (a *Actor) startAttack() bool {
	if a.IsDead() || a.Locked || a.IsAttacking() {
		return false
	}

	next := AnimAttack1
	if a.lastAttack == AnimAttack1 {
		next = AnimAttack2
	}
	a.lastAttack = next

	a.Anim.Restart(next)
	a.Locked = true
	a.VX = 0
	a.swing++
	clear(a.swingHits)
	return true
}

// applyDamage runs the shared damage rules: invulnerability, clamped HP,
// Hit or Death transition.
func (a *Actor) applyDamage(amount int, now time.Duration) DamageResult {
	if !validDamage(amount) {
		return NotHit
	}
	if a.IsDead() || a.IsInvulnerable(now) {
		return NotHit
	}

	a.HP -= amount
	if a.HP < 0 {
		a.HP = 0
	}
	a.HitCooldownUntil = now + a.HitCooldown
	a.FlashUntil = now + a.FlashDuration

	if a.HP == 0 {
		a.die(now)
		return Died
	}

	a.Anim.Restart(AnimHit)
	a.Locked = true
	a.VX = 0
	return Hit
}

func (a *Actor) die(now time.Duration) {
	a.Anim.Restart(AnimDeath)
	a.Locked = true
	a.DeathAt = now
	a.VX = 0
	a.KnockbackX = 0
}

// UpdateState advances the animation and resolves the next state.
// Precedence: Death, then Hit and attacks playing out, then airborne
// (actors with jump animations only), then Turn, Run or Idle.
func (a *Actor) UpdateState(dt time.Duration) {
	finished := a.Anim.Advance(dt)

	switch {
	case a.IsDead():
		a.Anim.Set(AnimDeath)
		a.prevFacing = a.Facing
		return
	case a.Anim.State == AnimHit || a.Anim.State.IsAttack():
		if !finished {
			a.prevFacing = a.Facing
			return
		}
		a.Locked = false
		finished = false
	}

	a.Anim.Set(a.locomotionState(finished))
	a.prevFacing = a.Facing
}

func (a *Actor) locomotionState(finished bool) AnimState {
	current := a.Anim.State

	if !a.OnGround && a.Anim.Has(AnimJump) {
		want := AnimFall
		if a.VY < 0 {
			want = AnimJump
		}
		switch current {
		case AnimJumpTrans:
			if !finished {
				return AnimJumpTrans
			}
			return want
		case AnimJump, AnimFall:
			if current != want {
				return AnimJumpTrans
			}
		}
		return want
	}

	if a.VX == 0 {
		return AnimIdle
	}
	if a.Facing != a.prevFacing {
		return AnimTurn
	}
	if current == AnimTurn && !finished {
		return AnimTurn
	}
	return AnimRun
}
