package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/brawler/internal/domain/entity"
	"github.com/younwookim/brawler/internal/domain/event"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

func createTestSimulation(t testing.TB, seed int64, sink event.Sink) *Simulation {
	t.Helper()
	cfg := loadTestGameConfig(t)
	cfg.Physics.Display.Framerate = 50

	arena, err := config.NewLoader(testConfigDir).LoadArena("arena")
	require.NoError(t, err)

	sim, err := NewSimulation(Options{Config: cfg, Arena: arena, Seed: seed, Sink: sink})
	require.NoError(t, err)
	return sim
}

// scriptedIntent walks back and forth, swinging and casting on a fixed rhythm
func scriptedIntent(tick int) Intent {
	return Intent{
		MoveRight: (tick/120)%2 == 0,
		MoveLeft:  (tick/120)%2 == 1,
		Jump:      tick%97 == 0,
		Attack:    tick%25 == 0,
		Cast:      tick%60 == 0,
	}
}

func TestNewSimulation(t *testing.T) {
	sim := createTestSimulation(t, 1, nil)

	assert.Equal(t, testTick, sim.TickDuration())
	assert.Zero(t, sim.Now())
	assert.Equal(t, int64(1), sim.Seed())
	assert.Equal(t, entity.EntityID(1), sim.Player.ID)
	assert.Equal(t, 400.0, sim.Player.X)
	assert.Equal(t, testWorld.GroundY, sim.Player.Hitbox().Bottom())
	assert.Len(t, sim.Enemies(), 1)
	assert.Equal(t, 1, sim.SpawnLimit())
	assert.Zero(t, sim.KillCount())
}

func TestNewSimulation_RequiresConfig(t *testing.T) {
	_, err := NewSimulation(Options{})
	assert.Error(t, err)
}

func TestSimulation_StepAdvancesClock(t *testing.T) {
	sim := createTestSimulation(t, 1, nil)

	sim.Step(Intent{})
	assert.Equal(t, testTick, sim.Now())
	assert.Equal(t, 1, sim.Tick())

	for i := 0; i < 49; i++ {
		sim.Step(Intent{})
	}
	assert.Equal(t, time.Second, sim.Now())
}

func TestSimulation_PlayerHitFeedback(t *testing.T) {
	log := &event.Log{}
	sim := createTestSimulation(t, 1, log.Sink())
	e := sim.Enemies()[0]
	e.SetHitboxX(sim.Player.Hitbox().Right() + 40)

	sim.Step(Intent{Attack: true})

	assert.Equal(t, 2, e.HP)
	assert.Equal(t, 1, log.Count(event.KindAttackLanded))
	assert.Equal(t, 1, log.Count(event.KindSlowMotion))
	assert.True(t, sim.Camera.OffsetX != 0 || sim.Camera.OffsetY != 0, "camera shakes on hit")
	assert.Greater(t, sim.Camera.Scale(sim.Now()), 1.0, "camera zooms on hit")
	assert.Len(t, sim.Effects(), 1)
}

func TestSimulation_CastSpawnsFireball(t *testing.T) {
	sim := createTestSimulation(t, 1, nil)

	sim.Step(Intent{Cast: true})
	require.Len(t, sim.Projectiles(), 1)

	sim.Step(Intent{Cast: true})
	assert.Len(t, sim.Projectiles(), 1, "cast is on cooldown")
}

// Scenario: once dead the player ignores damage and input
func TestSimulation_DeadPlayer(t *testing.T) {
	sim := createTestSimulation(t, 1, nil)
	require.Equal(t, entity.Died, sim.Player.TakeDamage(5, 0))
	e := sim.Enemies()[0]
	e.SetHitboxX(sim.Player.Hitbox().Right() + 20)
	startX := sim.Player.X

	for i := 0; i < 200; i++ {
		sim.Step(Intent{MoveRight: true, Jump: true, Attack: true, Cast: true})
		require.Zero(t, sim.Player.HP)
	}

	assert.Equal(t, startX, sim.Player.X)
	assert.True(t, sim.Player.OnGround)
	assert.Equal(t, entity.AnimDeath, sim.Player.Anim.State)
	assert.Empty(t, sim.Projectiles())
	assert.Equal(t, entity.DecisionIdle, e.Decision)
}

func TestSimulation_Deterministic(t *testing.T) {
	a := createTestSimulation(t, 42, nil)
	b := createTestSimulation(t, 42, nil)

	for i := 0; i < 1500; i++ {
		in := scriptedIntent(i)
		a.Step(in)
		b.Step(in)
	}

	assert.Equal(t, a.Player.Body, b.Player.Body)
	assert.Equal(t, a.Player.HP, b.Player.HP)
	assert.Equal(t, a.KillCount(), b.KillCount())
	require.Equal(t, len(a.Enemies()), len(b.Enemies()))
	for i := range a.Enemies() {
		assert.Equal(t, a.Enemies()[i].Body, b.Enemies()[i].Body)
		assert.Equal(t, a.Enemies()[i].HP, b.Enemies()[i].HP)
	}
	assert.Equal(t, a.Camera.X, b.Camera.X)
}

func TestSimulation_StaysConsistent(t *testing.T) {
	sim := createTestSimulation(t, 7, nil)
	world := sim.World()

	for i := 0; i < 3000; i++ {
		sim.Step(scriptedIntent(i))

		p := sim.Player
		require.GreaterOrEqual(t, p.HP, 0)
		require.LessOrEqual(t, p.HP, p.MaxHP)
		require.GreaterOrEqual(t, p.Hitbox().X, 0.0)
		require.LessOrEqual(t, p.Hitbox().Right(), world.Width)
		require.LessOrEqual(t, p.Hitbox().Bottom(), world.GroundY)
		require.LessOrEqual(t, len(sim.Enemies()), sim.SpawnLimit())

		for _, e := range sim.Enemies() {
			require.GreaterOrEqual(t, e.HP, 0)
			require.LessOrEqual(t, e.HP, e.MaxHP)
			require.True(t, world.Bounds().Contains(e.Hitbox()), "enemy %d at tick %d", e.ID, i)
		}

		view := sim.Camera.Viewport()
		require.GreaterOrEqual(t, view.X, 0.0)
		require.LessOrEqual(t, view.Right(), world.Width)
	}
}
