package config

// ActorsConfig is the root config for actors.yaml
type ActorsConfig struct {
	Player PlayerConfig `yaml:"player"`
	Enemy  EnemyConfig  `yaml:"enemy"`
}

type PlayerConfig struct {
	Sprite     SpriteConfig               `yaml:"sprite"`
	Hitbox     HitboxConfig               `yaml:"hitbox"`
	Stats      StatsConfig                `yaml:"stats"`
	JumpPower  float64                    `yaml:"jump_power"`
	Animations map[string]AnimationConfig `yaml:"animations"`
}

type EnemyConfig struct {
	Sprite            SpriteConfig               `yaml:"sprite"`
	Hitbox            HitboxConfig               `yaml:"hitbox"`
	Stats             StatsConfig                `yaml:"stats"`
	AI                AIConfig                   `yaml:"ai"`
	KnockbackStrength float64                    `yaml:"knockback_strength"`
	Animations        map[string]AnimationConfig `yaml:"animations"`
}

type SpriteConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type HitboxConfig struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

type StatsConfig struct {
	MaxHP         int     `yaml:"max_hp"`
	Speed         float64 `yaml:"speed"`
	HitCooldownMs int     `yaml:"hit_cooldown_ms"`
	FlashMs       int     `yaml:"flash_ms"`
	HitFrame      int     `yaml:"hit_frame"`
}

type AIConfig struct {
	DetectionRange   float64 `yaml:"detection_range"`
	AttackDistance   float64 `yaml:"attack_distance"`
	RetreatDistance  float64 `yaml:"retreat_distance"`
	AttackCooldownMs int     `yaml:"attack_cooldown_ms"`
	RetreatMode      string  `yaml:"retreat_mode"`
}

type AnimationConfig struct {
	Frames  int  `yaml:"frames"`
	FrameMs int  `yaml:"frame_ms"`
	Loop    bool `yaml:"loop"`
}
