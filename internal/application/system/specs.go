package system

import (
	"fmt"
	"time"

	"github.com/younwookim/brawler/internal/domain/entity"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

// WorldFromArena builds the world bounds from an arena config
func WorldFromArena(cfg *config.ArenaConfig) entity.World {
	return entity.World{
		Width:   cfg.Size.Width,
		Height:  cfg.Size.Height,
		GroundY: cfg.GroundY,
	}
}

// PlayerSpecFrom converts actor and fireball config into a player spec
func PlayerSpecFrom(cfg config.PlayerConfig, fireball config.FireballConfig) (entity.PlayerSpec, error) {
	anims, err := animTableFrom(cfg.Animations)
	if err != nil {
		return entity.PlayerSpec{}, fmt.Errorf("failed to build player animations: %w", err)
	}

	return entity.PlayerSpec{
		ActorSpec:    actorSpecFrom(cfg.Sprite, cfg.Hitbox, cfg.Stats, anims),
		JumpPower:    cfg.JumpPower,
		CastCooldown: time.Duration(fireball.CooldownMs) * time.Millisecond,
	}, nil
}

// EnemySpecFrom converts actor config into an enemy spec
func EnemySpecFrom(cfg config.EnemyConfig) (entity.EnemySpec, error) {
	anims, err := animTableFrom(cfg.Animations)
	if err != nil {
		return entity.EnemySpec{}, fmt.Errorf("failed to build enemy animations: %w", err)
	}
	mode, err := entity.ParseRetreatMode(cfg.AI.RetreatMode)
	if err != nil {
		return entity.EnemySpec{}, fmt.Errorf("failed to build enemy AI: %w", err)
	}

	return entity.EnemySpec{
		ActorSpec:         actorSpecFrom(cfg.Sprite, cfg.Hitbox, cfg.Stats, anims),
		DetectionRange:    cfg.AI.DetectionRange,
		AttackDistance:    cfg.AI.AttackDistance,
		RetreatDistance:   cfg.AI.RetreatDistance,
		AttackCooldown:    time.Duration(cfg.AI.AttackCooldownMs) * time.Millisecond,
		KnockbackStrength: cfg.KnockbackStrength,
		RetreatMode:       mode,
	}, nil
}

// ValidateActors reports whether actors would build a simulation
func ValidateActors(actors *config.ActorsConfig, fireball config.FireballConfig) error {
	if actors == nil {
		return fmt.Errorf("actor specs are missing")
	}
	if _, err := PlayerSpecFrom(actors.Player, fireball); err != nil {
		return err
	}
	if _, err := EnemySpecFrom(actors.Enemy); err != nil {
		return err
	}
	return nil
}

// FireballSpecFrom converts fireball config into a projectile spec
func FireballSpecFrom(cfg config.FireballConfig) entity.ProjectileSpec {
	return entity.ProjectileSpec{
		Speed:     cfg.Speed,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Lifetime:  time.Duration(cfg.LifetimeMs) * time.Millisecond,
		Damage:    cfg.Damage,
		Knockback: cfg.Knockback,
		Frames:    cfg.Frames,
		FrameTime: time.Duration(cfg.FrameMs) * time.Millisecond,
	}
}

func actorSpecFrom(sprite config.SpriteConfig, hb config.HitboxConfig, stats config.StatsConfig, anims entity.AnimTable) entity.ActorSpec {
	return entity.ActorSpec{
		Width:  sprite.Width,
		Height: sprite.Height,
		Hitbox: entity.HitboxSpec{
			OffsetX: hb.OffsetX,
			OffsetY: hb.OffsetY,
			Width:   hb.Width,
			Height:  hb.Height,
		},
		MaxHP:         stats.MaxHP,
		Speed:         stats.Speed,
		HitCooldown:   time.Duration(stats.HitCooldownMs) * time.Millisecond,
		FlashDuration: time.Duration(stats.FlashMs) * time.Millisecond,
		HitFrame:      stats.HitFrame,
		Anims:         anims,
	}
}

// animTableFrom requires the states every actor passes through
func animTableFrom(cfg map[string]config.AnimationConfig) (entity.AnimTable, error) {
	table := make(entity.AnimTable, len(cfg))
	for name, a := range cfg {
		state, err := entity.ParseAnimState(name)
		if err != nil {
			return nil, err
		}
		if a.Frames <= 0 || a.FrameMs <= 0 {
			return nil, fmt.Errorf("animation %s needs positive frames and frame_ms", name)
		}
		table[state] = entity.AnimSpec{
			Frames:        a.Frames,
			FrameDuration: time.Duration(a.FrameMs) * time.Millisecond,
			Loop:          a.Loop,
		}
	}

	for _, required := range []entity.AnimState{
		entity.AnimIdle, entity.AnimRun, entity.AnimTurn,
		entity.AnimAttack1, entity.AnimAttack2, entity.AnimHit, entity.AnimDeath,
	} {
		if _, ok := table[required]; !ok {
			return nil, fmt.Errorf("animation %s is missing", required)
		}
	}
	if _, ok := table[entity.AnimJump]; ok {
		for _, required := range []entity.AnimState{entity.AnimJumpTrans, entity.AnimFall} {
			if _, ok := table[required]; !ok {
				return nil, fmt.Errorf("animation %s is missing for an actor that jumps", required)
			}
		}
	}
	return table, nil
}
