package entity

import "time"

// DefaultPlayerAnims is the player's animation table
func DefaultPlayerAnims() AnimTable {
	return AnimTable{
		AnimIdle:      {Frames: 8, FrameDuration: 100 * time.Millisecond, Loop: true},
		AnimRun:       {Frames: 8, FrameDuration: 80 * time.Millisecond, Loop: true},
		AnimTurn:      {Frames: 3, FrameDuration: 50 * time.Millisecond},
		AnimJump:      {Frames: 2, FrameDuration: 100 * time.Millisecond, Loop: true},
		AnimJumpTrans: {Frames: 2, FrameDuration: 60 * time.Millisecond},
		AnimFall:      {Frames: 2, FrameDuration: 100 * time.Millisecond, Loop: true},
		AnimAttack1:   {Frames: 6, FrameDuration: 60 * time.Millisecond},
		AnimAttack2:   {Frames: 6, FrameDuration: 60 * time.Millisecond},
		AnimHit:       {Frames: 4, FrameDuration: 80 * time.Millisecond},
		AnimDeath:     {Frames: 8, FrameDuration: 100 * time.Millisecond},
	}
}

// DefaultEnemyAnims is the enemy's animation table. Enemies never jump.
func DefaultEnemyAnims() AnimTable {
	return AnimTable{
		AnimIdle:    {Frames: 8, FrameDuration: 120 * time.Millisecond, Loop: true},
		AnimRun:     {Frames: 8, FrameDuration: 90 * time.Millisecond, Loop: true},
		AnimTurn:    {Frames: 3, FrameDuration: 60 * time.Millisecond},
		AnimAttack1: {Frames: 8, FrameDuration: 80 * time.Millisecond},
		AnimAttack2: {Frames: 8, FrameDuration: 80 * time.Millisecond},
		AnimHit:     {Frames: 3, FrameDuration: 100 * time.Millisecond},
		AnimDeath:   {Frames: 10, FrameDuration: 90 * time.Millisecond},
	}
}

// DefaultPlayerSpec returns the stock player tuning
func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		ActorSpec: ActorSpec{
			Width:         160,
			Height:        160,
			Hitbox:        HitboxSpec{OffsetX: 60, OffsetY: 80, Width: 40, Height: 80},
			MaxHP:         5,
			Speed:         5,
			HitCooldown:   1000 * time.Millisecond,
			FlashDuration: 200 * time.Millisecond,
			Anims:         DefaultPlayerAnims(),
		},
		JumpPower:    -14,
		CastCooldown: 800 * time.Millisecond,
	}
}

// DefaultEnemySpec returns the stock enemy tuning
func DefaultEnemySpec() EnemySpec {
	return EnemySpec{
		ActorSpec: ActorSpec{
			Width:         150,
			Height:        150,
			Hitbox:        HitboxSpec{OffsetX: 55, OffsetY: 76, Width: 40, Height: 74},
			MaxHP:         4,
			Speed:         3,
			HitCooldown:   600 * time.Millisecond,
			FlashDuration: 150 * time.Millisecond,
			Anims:         DefaultEnemyAnims(),
		},
		DetectionRange:    600,
		AttackDistance:    200,
		RetreatDistance:   150,
		AttackCooldown:    1500 * time.Millisecond,
		KnockbackStrength: 15,
		RetreatMode:       RetreatWhenThreatened,
	}
}
