package system

import (
	"time"

	"github.com/younwookim/brawler/internal/domain/entity"
)

// PlayerActions reports what the player started this tick
type PlayerActions struct {
	Attacked bool
	Cast     bool
}

// PlayerSystem applies intents to the player, then physics and animation
type PlayerSystem struct {
	physics     *PhysicsSystem
	castEnabled bool
}

// NewPlayerSystem creates a new player controller
func NewPlayerSystem(physics *PhysicsSystem, castEnabled bool) *PlayerSystem {
	return &PlayerSystem{
		physics:     physics,
		castEnabled: castEnabled,
	}
}

// Update runs one tick of the player controller.
// Movement and jump are dropped while locked or dead; knockback still applies.
func (s *PlayerSystem) Update(p *entity.Player, in Intent, now, dt time.Duration) PlayerActions {
	var act PlayerActions

	if p.CanAct() {
		p.Move(in.Direction())
		if in.Jump {
			p.Jump()
		}
	}
	if in.Attack {
		act.Attacked = p.Attack()
	}
	if in.Cast && s.castEnabled {
		act.Cast = p.TryCast(now)
	}

	s.physics.Integrate(&p.Body)
	p.UpdateState(dt)
	return act
}
