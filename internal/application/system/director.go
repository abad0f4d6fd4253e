package system

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/younwookim/brawler/internal/domain/entity"
	"github.com/younwookim/brawler/internal/domain/event"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

// Director runs the encounter: it reaps dead enemies, counts kills, raises
// the spawn limit and keeps the arena populated up to that limit.
type Director struct {
	cfg    config.EncounterConfig
	pickup config.PickupConfig
	spec   entity.EnemySpec
	world  entity.World
	rng    *rand.Rand
	sink   event.Sink
	scaler *DifficultyScaler

	enemies []*entity.Enemy
	pickups []*entity.Pickup
	nextID  entity.EntityID

	KillCount  int
	SpawnLimit int
	SpeedScale float64
}

// NewDirector creates a director. Enemy IDs start at firstID.
func NewDirector(cfg *config.PhysicsConfig, spec entity.EnemySpec, world entity.World, rng *rand.Rand, sink event.Sink, scaler *DifficultyScaler, firstID entity.EntityID) *Director {
	if sink == nil {
		sink = event.Nop{}
	}
	limit := cfg.Encounter.InitialLimit
	if limit <= 0 {
		limit = 1
	}
	return &Director{
		cfg:        cfg.Encounter,
		pickup:     cfg.Pickup,
		spec:       spec,
		world:      world,
		rng:        rng,
		sink:       sink,
		scaler:     scaler,
		enemies:    make([]*entity.Enemy, 0, 8),
		nextID:     firstID,
		SpawnLimit: limit,
		SpeedScale: 1,
	}
}

// Enemies returns the enemies in the arena, dead ones included until reaped
func (d *Director) Enemies() []*entity.Enemy {
	return d.enemies
}

// Pickups returns the health pickups on the ground
func (d *Director) Pickups() []*entity.Pickup {
	return d.pickups
}

// Update reaps corpses whose removal delay has elapsed, then spawns up to the limit
func (d *Director) Update(player *entity.Player, now time.Duration) {
	d.reap(now)
	d.fill(player)
}

func (d *Director) reap(now time.Duration) {
	delay := d.cfg.RemovalDelay()
	kept := d.enemies[:0]
	for _, e := range d.enemies {
		if e.IsDead() && now-e.DeathAt >= delay {
			d.recordKill(e)
			continue
		}
		kept = append(kept, e)
	}
	clear(d.enemies[len(kept):])
	d.enemies = kept
}

func (d *Director) recordKill(e *entity.Enemy) {
	d.KillCount++

	if d.cfg.KillsPerLevel > 0 && d.KillCount%d.cfg.KillsPerLevel == 0 && d.SpawnLimit < d.cfg.MaxLimit {
		d.SpawnLimit++
		d.sink.OnNewEnemyAlert(d.SpawnLimit)
	}

	if d.pickup.DropEvery > 0 && d.KillCount%d.pickup.DropEvery == 0 {
		d.pickups = append(d.pickups, entity.NewHealthPickup(
			e.Hitbox().CenterX(), d.world.GroundY, d.pickup.Size, d.pickup.Inset, d.pickup.HealAmount))
	}

	scale, err := d.scaler.SpeedScale(d.KillCount)
	if err != nil {
		log.Printf("Difficulty scaling disabled: %v", err)
		d.scaler = nil
		scale = 1
	}
	d.SpeedScale = scale
}

// fill spawns enemies until the arena holds SpawnLimit of them
func (d *Director) fill(player *entity.Player) {
	for len(d.enemies) < d.SpawnLimit {
		d.enemies = append(d.enemies, d.spawn(player))
	}
}

func (d *Director) spawn(player *entity.Player) *entity.Enemy {
	e := entity.NewEnemy(d.nextID, 0, 0, d.spec)
	d.nextID++

	e.Speed = d.spec.Speed * d.SpeedScale
	e.SetHitboxX(d.spawnX(player.Hitbox().CenterX(), e.Box.Width))
	e.SetHitboxBottom(d.world.GroundY)
	e.OnGround = true
	e.Facing = entity.FacingToward(e.Facing, e.Hitbox().CenterX(), player.Hitbox().CenterX())
	return e
}

// spawnX picks a hitbox left edge at least MinSpawnDistance from playerX,
// keeping the hitbox inside the world. When random picks keep landing too
// close it falls back to the world edge farthest from the player.
func (d *Director) spawnX(playerX, width float64) float64 {
	maxX := d.world.Width - width
	attempts := max(d.cfg.SpawnAttempts, 1)
	for i := 0; i < attempts; i++ {
		x := d.rng.Float64() * maxX
		if math.Abs(x+width/2-playerX) >= d.cfg.MinSpawnDistance {
			return x
		}
	}

	if playerX > d.world.Width/2 {
		return 0
	}
	return maxX
}

// CollectPickups heals the player from every overlapping pickup
func (d *Director) CollectPickups(player *entity.Player) {
	hb := player.Hitbox()
	active := d.pickups[:0]
	for _, p := range d.pickups {
		if hb.Overlaps(p.Hitbox()) {
			p.Collect(player)
		}
		if p.Active {
			active = append(active, p)
		}
	}
	clear(d.pickups[len(active):])
	d.pickups = active
}
