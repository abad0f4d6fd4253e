package system

import (
	"math"

	"github.com/younwookim/brawler/internal/domain/entity"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

// PhysicsSystem integrates actor bodies against the world's bounds and ground line
type PhysicsSystem struct {
	config config.PhysicsSettings
	world  entity.World
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg config.PhysicsSettings, world entity.World) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		world:  world,
	}
}

// Integrate advances a body by one tick
func (s *PhysicsSystem) Integrate(b *entity.Body) {
	// Gravity is applied every tick, grounded or not
	b.VY += s.config.Gravity

	b.X += b.VX + b.KnockbackX
	b.Y += b.VY

	s.decayKnockback(b)
	s.clampToWorld(b)
	s.resolveGround(b)
}

func (s *PhysicsSystem) decayKnockback(b *entity.Body) {
	b.KnockbackX *= s.config.KnockbackDecay
	if math.Abs(b.KnockbackX) < s.config.KnockbackSnap {
		b.KnockbackX = 0
	}
}

// clampToWorld keeps the hitbox inside [0, world width]
func (s *PhysicsSystem) clampToWorld(b *entity.Body) {
	hb := b.Hitbox()
	switch {
	case hb.X < 0:
		b.SetHitboxX(0)
	case hb.Right() > s.world.Width:
		b.SetHitboxX(s.world.Width - hb.W)
	}
}

func (s *PhysicsSystem) resolveGround(b *entity.Body) {
	if b.Hitbox().Bottom() >= s.world.GroundY {
		b.SetHitboxBottom(s.world.GroundY)
		b.VY = 0
		b.OnGround = true
		return
	}
	b.OnGround = false
}
