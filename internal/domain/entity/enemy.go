package entity

import (
	"fmt"
	"time"
)

// RetreatMode selects when an enemy backs off from a close player
type RetreatMode int

const (
	// RetreatWhenThreatened backs off only while the player is swinging
	RetreatWhenThreatened RetreatMode = iota
	// RetreatAlways backs off whenever the player is inside the retreat distance
	RetreatAlways
)

// ParseRetreatMode converts a config value into a RetreatMode
func ParseRetreatMode(s string) (RetreatMode, error) {
	switch s {
	case "", "threatened":
		return RetreatWhenThreatened, nil
	case "always":
		return RetreatAlways, nil
	default:
		return 0, fmt.Errorf("unknown retreat mode %q", s)
	}
}

// Decision is the branch the AI took on its last update
type Decision int

const (
	DecisionNone Decision = iota
	DecisionLocked
	DecisionRetreat
	DecisionAttack
	DecisionHold
	DecisionPursue
	DecisionIdle
)

// String returns the string representation of the decision
func (d Decision) String() string {
	switch d {
	case DecisionLocked:
		return "locked"
	case DecisionRetreat:
		return "retreat"
	case DecisionAttack:
		return "attack"
	case DecisionHold:
		return "hold"
	case DecisionPursue:
		return "pursue"
	case DecisionIdle:
		return "idle"
	default:
		return "none"
	}
}

// EnemySpec holds the enemy's tunables
type EnemySpec struct {
	ActorSpec
	DetectionRange    float64
	AttackDistance    float64
	RetreatDistance   float64
	AttackCooldown    time.Duration
	KnockbackStrength float64
	RetreatMode       RetreatMode
}

// Enemy is an AI-driven melee actor
type Enemy struct {
	Actor

	DetectionRange    float64
	AttackDistance    float64
	RetreatDistance   float64
	AttackCooldown    time.Duration
	AttackReadyAt     time.Duration
	KnockbackStrength float64
	RetreatMode       RetreatMode

	Pursuing bool
	Decision Decision
}

// NewEnemy creates an enemy at x, y (sprite top-left) facing left
func NewEnemy(id EntityID, x, y float64, spec EnemySpec) *Enemy {
	e := &Enemy{
		Actor:             newActor(id, x, y, spec.ActorSpec),
		DetectionRange:    spec.DetectionRange,
		AttackDistance:    spec.AttackDistance,
		RetreatDistance:   spec.RetreatDistance,
		AttackCooldown:    spec.AttackCooldown,
		KnockbackStrength: spec.KnockbackStrength,
		RetreatMode:       spec.RetreatMode,
	}
	e.Facing = FacingLeft
	e.prevFacing = FacingLeft
	return e
}

// CanAttack reports whether the attack cooldown has elapsed
func (e *Enemy) CanAttack(now time.Duration) bool {
	return now >= e.AttackReadyAt
}

// Attack starts the next alternating swing and the attack cooldown.
// No-op while attacking, locked or dead.
func (e *Enemy) Attack(now time.Duration) bool {
	if !e.startAttack() {
		return false
	}
	e.AttackReadyAt = now + e.AttackCooldown
	return true
}

// TakeDamage applies damage and, when the enemy survives, a knockback of
// KnockbackStrength in direction dir (±1).
func (e *Enemy) TakeDamage(amount int, dir float64, now time.Duration) DamageResult {
	dir = normalizeDir(dir)
	res := e.applyDamage(amount, now)
	if res == Hit {
		e.KnockbackX = e.KnockbackStrength * dir
	}
	return res
}

// IsAlive returns true while the enemy has HP left
func (e *Enemy) IsAlive() bool {
	return !e.IsDead()
}
