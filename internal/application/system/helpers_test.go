package system

import (
	"time"

	"github.com/younwookim/brawler/internal/domain/entity"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

// 20ms divides every animation frame and cooldown evenly
const testTick = 20 * time.Millisecond

var testWorld = entity.World{Width: 2400, Height: 2400, GroundY: 2250}

func createTestPhysicsConfig() *config.PhysicsConfig {
	cfg := config.DefaultPhysics()
	cfg.Display.Framerate = 50
	return cfg
}

func createTestPhysics() *PhysicsSystem {
	return NewPhysicsSystem(createTestPhysicsConfig().Physics, testWorld)
}

// createTestPlayerAt places a grounded player with its hitbox centered on cx
func createTestPlayerAt(cx float64) *entity.Player {
	p := entity.NewPlayer(1, 0, 0, entity.DefaultPlayerSpec())
	p.SetHitboxX(cx - p.Box.Width/2)
	p.SetHitboxBottom(testWorld.GroundY)
	p.OnGround = true
	return p
}

// createTestEnemyAt places a grounded enemy with its hitbox centered on cx
func createTestEnemyAt(id entity.EntityID, cx float64) *entity.Enemy {
	e := entity.NewEnemy(id, 0, 0, entity.DefaultEnemySpec())
	e.SetHitboxX(cx - e.Box.Width/2)
	e.SetHitboxBottom(testWorld.GroundY)
	e.OnGround = true
	return e
}
