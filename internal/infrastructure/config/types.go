package config

import "time"

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display   DisplayConfig   `json:"display"`
	Physics   PhysicsSettings `json:"physics"`
	Combat    CombatConfig    `json:"combat"`
	Feedback  FeedbackConfig  `json:"feedback"`
	Encounter EncounterConfig `json:"encounter"`
	Fireball  FireballConfig  `json:"fireball"`
	Pickup    PickupConfig    `json:"pickup"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// TickDuration returns the fixed simulation step
func (d DisplayConfig) TickDuration() time.Duration {
	if d.Framerate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(d.Framerate)
}

type PhysicsSettings struct {
	Gravity        float64 `json:"gravity"`        // Added to VY every tick
	KnockbackDecay float64 `json:"knockbackDecay"` // Multiplier applied every tick
	KnockbackSnap  float64 `json:"knockbackSnap"`  // |knockback| below this snaps to 0
}

type CombatConfig struct {
	AttackRange        float64 `json:"attackRange"`        // Reach beyond the hitbox edge
	AttackHeightFactor float64 `json:"attackHeightFactor"` // Fraction of hitbox height
	PlayerDamage       int     `json:"playerDamage"`
	EnemyDamage        int     `json:"enemyDamage"`
	PlayerRecoil       float64 `json:"playerRecoil"`    // Knockback on the attacker when a swing lands
	PlayerKnockback    float64 `json:"playerKnockback"` // Knockback on the player when hit
}

type FeedbackConfig struct {
	Hitstop     HitstopConfig    `json:"hitstop"`
	ScreenShake TimedEffect      `json:"screenShake"`
	SlowMotion  SlowMotionConfig `json:"slowMotion"`
	Zoom        TimedEffect      `json:"zoom"`
	Hitspark    SparkConfig      `json:"hitspark"`
}

type HitstopConfig struct {
	Enabled bool `json:"enabled"`
	Frames  int  `json:"frames"`
}

// TimedEffect is a feedback effect with a duration and strength
type TimedEffect struct {
	Enabled    bool    `json:"enabled"`
	DurationMs int     `json:"durationMs"`
	Magnitude  float64 `json:"magnitude"`
}

// Duration returns the effect length
func (e TimedEffect) Duration() time.Duration {
	return ms(e.DurationMs)
}

type SlowMotionConfig struct {
	Enabled    bool    `json:"enabled"`
	DurationMs int     `json:"durationMs"`
	Scale      float64 `json:"scale"` // Fraction of normal speed
}

// Duration returns the slow-motion length
func (s SlowMotionConfig) Duration() time.Duration {
	return ms(s.DurationMs)
}

type SparkConfig struct {
	Frames  int `json:"frames"`
	FrameMs int `json:"frameMs"`
}

// FrameDuration returns how long each spark frame shows
func (s SparkConfig) FrameDuration() time.Duration {
	return ms(s.FrameMs)
}

type EncounterConfig struct {
	RemovalDelayMs   int     `json:"removalDelayMs"` // Corpse lifetime before reaping
	InitialLimit     int     `json:"initialLimit"`
	MaxLimit         int     `json:"maxLimit"`
	KillsPerLevel    int     `json:"killsPerLevel"`
	MinSpawnDistance float64 `json:"minSpawnDistance"`
	SpawnAttempts    int     `json:"spawnAttempts"`
	SpeedScaleExpr   string  `json:"speedScaleExpr,omitempty"` // Optional, evaluated with `kills`
}

// RemovalDelay returns how long a dead enemy stays in the world
func (e EncounterConfig) RemovalDelay() time.Duration {
	return ms(e.RemovalDelayMs)
}

type FireballConfig struct {
	Enabled    bool    `json:"enabled"`
	Speed      float64 `json:"speed"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	LifetimeMs int     `json:"lifetimeMs"`
	CooldownMs int     `json:"cooldownMs"`
	Damage     int     `json:"damage"`
	Knockback  float64 `json:"knockback"`
	Frames     int     `json:"frames"`
	FrameMs    int     `json:"frameMs"`
}

type PickupConfig struct {
	Size       float64 `json:"size"`
	Inset      float64 `json:"inset"`
	HealAmount int     `json:"healAmount"`
	DropEvery  int     `json:"dropEvery"` // Kills between drops, 0 disables
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// DefaultPhysics returns the stock tuning used when no physics.json is given
func DefaultPhysics() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{ScreenWidth: 800, ScreenHeight: 600, Scale: 1, Framerate: 60},
		Physics: PhysicsSettings{Gravity: 0.6, KnockbackDecay: 0.85, KnockbackSnap: 0.1},
		Combat: CombatConfig{
			AttackRange:        100,
			AttackHeightFactor: 0.5,
			PlayerDamage:       2,
			EnemyDamage:        1,
			PlayerRecoil:       4,
			PlayerKnockback:    10,
		},
		Feedback: FeedbackConfig{
			Hitstop:     HitstopConfig{Enabled: true, Frames: 3},
			ScreenShake: TimedEffect{Enabled: true, DurationMs: 200, Magnitude: 6},
			SlowMotion:  SlowMotionConfig{Enabled: true, DurationMs: 150, Scale: 0.3},
			Zoom:        TimedEffect{Enabled: true, DurationMs: 120, Magnitude: 0.05},
			Hitspark:    SparkConfig{Frames: 2, FrameMs: 80},
		},
		Encounter: EncounterConfig{
			RemovalDelayMs:   1000,
			InitialLimit:     1,
			MaxLimit:         5,
			KillsPerLevel:    5,
			MinSpawnDistance: 600,
			SpawnAttempts:    16,
		},
		Fireball: FireballConfig{
			Enabled:    true,
			Speed:      12,
			Width:      32,
			Height:     16,
			LifetimeMs: 3000,
			CooldownMs: 800,
			Damage:     1,
			Knockback:  8,
			Frames:     3,
			FrameMs:    80,
		},
		Pickup: PickupConfig{Size: 48, Inset: 8, HealAmount: 1, DropEvery: 3},
	}
}
