package system

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/younwookim/brawler/internal/domain/camera"
	"github.com/younwookim/brawler/internal/domain/entity"
	"github.com/younwookim/brawler/internal/domain/event"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

// PlayerID is the entity ID of the player in every simulation
const PlayerID entity.EntityID = 1

const firstEnemyID entity.EntityID = 2

// Options configures a new Simulation
type Options struct {
	Config *config.GameConfig
	Arena  *config.ArenaConfig
	Seed   int64
	Sink   event.Sink // Optional, receives every feedback signal
}

// Simulation owns the clock and runs one fixed tick per Step.
// It is single-threaded; collaborators only see it through the event sink.
type Simulation struct {
	Player *entity.Player
	Camera *camera.Camera

	world entity.World
	seed  int64
	dt    time.Duration
	now   time.Duration
	tick  int

	fireballs bool
	sink      event.Sink

	players  *PlayerSystem
	ai       *AISystem
	combat   *CombatResolver
	director *Director
}

// NewSimulation builds the world, the player and the first wave from config
func NewSimulation(opts Options) (*Simulation, error) {
	cfg := opts.Config
	if cfg == nil || cfg.Physics == nil || cfg.Actors == nil || opts.Arena == nil {
		return nil, fmt.Errorf("failed to create simulation: config and arena are required")
	}

	playerSpec, err := PlayerSpecFrom(cfg.Actors.Player, cfg.Physics.Fireball)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}
	enemySpec, err := EnemySpecFrom(cfg.Actors.Enemy)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	scaler, err := NewDifficultyScaler(cfg.Physics.Encounter.SpeedScaleExpr)
	if err != nil {
		log.Printf("Difficulty scaling disabled: %v", err)
		scaler = nil
	}

	world := WorldFromArena(opts.Arena)
	rng := rand.New(rand.NewSource(opts.Seed))
	display := cfg.Physics.Display

	s := &Simulation{
		world:     world,
		seed:      opts.Seed,
		dt:        display.TickDuration(),
		fireballs: cfg.Physics.Fireball.Enabled,
		Camera:    camera.New(float64(display.ScreenWidth), float64(display.ScreenHeight), world, rng),
	}

	// the camera reacts to feedback before any external sink sees it
	sinks := event.Multi{cameraSink{sim: s}}
	if opts.Sink != nil {
		sinks = append(sinks, opts.Sink)
	}
	s.sink = sinks

	physics := NewPhysicsSystem(cfg.Physics.Physics, world)
	s.players = NewPlayerSystem(physics, s.fireballs)
	s.ai = NewAISystem(physics)
	s.combat = NewCombatResolver(cfg.Physics, s.sink)
	s.director = NewDirector(cfg.Physics, enemySpec, world, rng, s.sink, scaler, firstEnemyID)

	s.Player = entity.NewPlayer(PlayerID, opts.Arena.PlayerSpawn.X, opts.Arena.PlayerSpawn.Y, playerSpec)
	s.director.Update(s.Player, 0)
	s.Camera.Update(s.Player.Hitbox(), 0)

	return s, nil
}

// Step advances the simulation by one tick
func (s *Simulation) Step(in Intent) {
	s.now += s.dt
	s.tick++

	act := s.players.Update(s.Player, in, s.now, s.dt)
	if act.Cast {
		s.combat.SpawnFireball(s.Player, s.now)
	}

	for _, e := range s.director.Enemies() {
		s.ai.Update(e, s.Player, s.now, s.dt)
	}

	s.combat.UpdateProjectiles(s.now, s.world)
	s.combat.Resolve(s.Player, s.director.Enemies(), s.now)
	s.director.CollectPickups(s.Player)
	s.director.Update(s.Player, s.now)
	s.Camera.Update(s.Player.Hitbox(), s.now)
	s.combat.UpdateEffects(s.dt)
}

// Now returns the simulation clock
func (s *Simulation) Now() time.Duration {
	return s.now
}

// Tick returns how many steps have run
func (s *Simulation) Tick() int {
	return s.tick
}

// TickDuration returns the fixed step length
func (s *Simulation) TickDuration() time.Duration {
	return s.dt
}

// Seed returns the seed the simulation RNG was created with
func (s *Simulation) Seed() int64 {
	return s.seed
}

// World returns the world bounds
func (s *Simulation) World() entity.World {
	return s.world
}

// Enemies returns the enemies currently in the arena
func (s *Simulation) Enemies() []*entity.Enemy {
	return s.director.Enemies()
}

// Pickups returns the health pickups on the ground
func (s *Simulation) Pickups() []*entity.Pickup {
	return s.director.Pickups()
}

// Projectiles returns the live fireballs
func (s *Simulation) Projectiles() []*entity.Projectile {
	return s.combat.Projectiles()
}

// Effects returns the live hitsparks
func (s *Simulation) Effects() []*entity.Effect {
	return s.combat.Effects()
}

// KillCount returns the number of enemies reaped so far
func (s *Simulation) KillCount() int {
	return s.director.KillCount
}

// SpawnLimit returns the current number of enemies the director keeps alive
func (s *Simulation) SpawnLimit() int {
	return s.director.SpawnLimit
}

// AttackRect exposes the swing area for debug drawing
func (s *Simulation) AttackRect(a *entity.Actor) entity.Rect {
	return s.combat.AttackRect(a)
}

// cameraSink applies shake and zoom requests to the simulation camera
type cameraSink struct {
	event.Nop
	sim *Simulation
}

func (c cameraSink) OnScreenShakeRequested(d time.Duration, magnitude float64) {
	c.sim.Camera.Shake(c.sim.now, d, magnitude)
}

func (c cameraSink) OnZoomRequested(d time.Duration, magnitude float64) {
	c.sim.Camera.Zoom(c.sim.now, d, magnitude)
}
