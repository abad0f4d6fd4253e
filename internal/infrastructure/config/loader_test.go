package config

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Display.ScreenWidth)
	assert.Equal(t, 600, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 0.6, cfg.Physics.Gravity)
	assert.Equal(t, 0.85, cfg.Physics.KnockbackDecay)
	assert.Equal(t, 0.1, cfg.Physics.KnockbackSnap)
	assert.Equal(t, 100.0, cfg.Combat.AttackRange)
	assert.Equal(t, 0.5, cfg.Combat.AttackHeightFactor)
	assert.Equal(t, 2, cfg.Combat.PlayerDamage)
	assert.Equal(t, 1, cfg.Combat.EnemyDamage)
	assert.Equal(t, time.Second, cfg.Encounter.RemovalDelay())
	assert.Equal(t, 5, cfg.Encounter.MaxLimit)
	assert.True(t, cfg.Feedback.Hitstop.Enabled)
	assert.Equal(t, 160*time.Millisecond, cfg.Feedback.Hitspark.FrameDuration()*2)
}

func TestLoader_LoadPhysics_MatchesDefaults(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	def := DefaultPhysics()
	cfg.Encounter.SpeedScaleExpr = ""
	assert.Equal(t, def, cfg, "shipped physics.json and DefaultPhysics must agree")
}

func TestLoader_LoadPhysics_PartialFileKeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"physics.json": {Data: []byte(`{"physics": {"gravity": 1.2}}`)},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)
	assert.Equal(t, 1.2, cfg.Physics.Gravity)
	assert.Equal(t, 0.85, cfg.Physics.KnockbackDecay)
	assert.Equal(t, 100.0, cfg.Combat.AttackRange)
}

func TestLoader_LoadActors(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadActors()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Player.Stats.MaxHP)
	assert.Equal(t, 40.0, cfg.Player.Hitbox.Width)
	assert.Equal(t, 80.0, cfg.Player.Hitbox.Height)
	assert.Equal(t, -14.0, cfg.Player.JumpPower)
	assert.Equal(t, 1000, cfg.Player.Stats.HitCooldownMs)
	assert.Len(t, cfg.Player.Animations, 10)

	assert.Equal(t, 4, cfg.Enemy.Stats.MaxHP)
	assert.Equal(t, 600, cfg.Enemy.Stats.HitCooldownMs)
	assert.Equal(t, 15.0, cfg.Enemy.KnockbackStrength)
	assert.Equal(t, 200.0, cfg.Enemy.AI.AttackDistance)
	assert.Equal(t, 150.0, cfg.Enemy.AI.RetreatDistance)
	assert.Equal(t, "threatened", cfg.Enemy.AI.RetreatMode)

	idle, ok := cfg.Enemy.Animations["idle"]
	require.True(t, ok)
	assert.Equal(t, AnimationConfig{Frames: 8, FrameMs: 120, Loop: true}, idle)
	_, ok = cfg.Enemy.Animations["jump"]
	assert.False(t, ok)
}

func TestParseActors_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "player: [unterminated"},
		{"missing hp", "player:\n  stats:\n    speed: 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseActors([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoader_LoadArena(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadArena("arena")
	require.NoError(t, err)

	assert.Equal(t, "arena", cfg.ID)
	assert.Equal(t, 2400.0, cfg.Size.Width)
	assert.Equal(t, 2400.0, cfg.Size.Height)
	assert.Equal(t, 2250.0, cfg.GroundY)
	assert.Equal(t, 400.0, cfg.PlayerSpawn.X)
	assert.Equal(t, uint8(26), cfg.Background.Sky.Color().R)
}

func TestLoader_LoadArena_GroundOutsideWorld(t *testing.T) {
	fsys := fstest.MapFS{
		"arenas/bad.json": {Data: []byte(`{"size": {"width": 100, "height": 100}, "groundY": 500}`)},
	}
	loader := NewFSLoader(fsys, "mem")

	_, err := loader.LoadArena("bad")
	assert.Error(t, err)
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "mem")

	_, err := loader.LoadAll()
	assert.ErrorContains(t, err, "physics.json")

	_, err = loader.LoadArena("nowhere")
	assert.ErrorContains(t, err, "nowhere")
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	assert.NotNil(t, cfg.Physics)
	assert.NotNil(t, cfg.Actors)
}

func TestDisplayConfig_TickDuration(t *testing.T) {
	assert.Equal(t, time.Second/60, DisplayConfig{Framerate: 60}.TickDuration())
	assert.Equal(t, time.Second/60, DisplayConfig{}.TickDuration())
	assert.Equal(t, 10*time.Millisecond, DisplayConfig{Framerate: 100}.TickDuration())
}
