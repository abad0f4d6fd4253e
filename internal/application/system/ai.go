package system

import (
	"math"
	"time"

	"github.com/younwookim/brawler/internal/domain/entity"
)

// AISystem drives enemies with a fixed priority tree
type AISystem struct {
	physics *PhysicsSystem
}

// NewAISystem creates a new AI system
func NewAISystem(physics *PhysicsSystem) *AISystem {
	return &AISystem{physics: physics}
}

// Update decides, integrates and animates one enemy for one tick
func (s *AISystem) Update(e *entity.Enemy, player *entity.Player, now, dt time.Duration) {
	e.Decision = s.Decide(e, player, now)
	s.physics.Integrate(&e.Body)
	e.UpdateState(dt)
}

// Decide picks the enemy's action. Distances are between hitbox centers;
// branches are checked closest first and a distance equal to a range counts
// as inside it. A live enemy always turns toward the player, even while locked.
func (s *AISystem) Decide(e *entity.Enemy, player *entity.Player, now time.Duration) entity.Decision {
	if e.IsDead() {
		return entity.DecisionLocked
	}

	ex := e.Hitbox().CenterX()
	px := player.Hitbox().CenterX()
	e.Facing = entity.FacingToward(e.Facing, ex, px)

	if e.Locked || e.IsAttacking() {
		return entity.DecisionLocked
	}
	if player.IsDead() {
		e.VX = 0
		e.Pursuing = false
		return entity.DecisionIdle
	}

	toward := e.Facing.Dir()
	dist := math.Abs(px - ex)

	switch {
	case dist <= e.RetreatDistance && s.threatened(e, player):
		e.VX = -toward * e.Speed
		return entity.DecisionRetreat
	case dist <= e.AttackDistance && e.CanAttack(now):
		e.Attack(now)
		return entity.DecisionAttack
	case dist <= e.AttackDistance:
		e.VX = 0
		return entity.DecisionHold
	case dist <= e.DetectionRange:
		e.VX = toward * e.Speed
		e.Pursuing = true
		return entity.DecisionPursue
	default:
		e.VX = 0
		e.Pursuing = false
		return entity.DecisionIdle
	}
}

func (s *AISystem) threatened(e *entity.Enemy, player *entity.Player) bool {
	if e.RetreatMode == entity.RetreatAlways {
		return true
	}
	return player.IsAttacking()
}
