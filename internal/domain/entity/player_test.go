package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPlayer() *Player {
	p := NewPlayer(1, 400, 2090, DefaultPlayerSpec())
	p.OnGround = true
	return p
}

// runState advances the state machine n ticks
func runState(a *Actor, n int) {
	for i := 0; i < n; i++ {
		a.UpdateState(tick)
	}
}

func TestNewPlayer(t *testing.T) {
	p := createTestPlayer()

	require.NotNil(t, p)
	assert.Equal(t, 5, p.HP)
	assert.Equal(t, 5, p.MaxHP)
	assert.Equal(t, AnimIdle, p.Anim.State)
	assert.Equal(t, FacingRight, p.Facing)
	assert.True(t, p.Bounds().Contains(p.Hitbox()))
}

func TestPlayer_AttackAlternates(t *testing.T) {
	p := createTestPlayer()

	want := []AnimState{AnimAttack1, AnimAttack2, AnimAttack1}
	for _, state := range want {
		require.True(t, p.Attack())
		assert.Equal(t, state, p.Anim.State)
		assert.True(t, p.Locked)

		// 6 frames x 60ms, 3 ticks per frame
		runState(&p.Actor, 18)
		assert.False(t, p.Locked, "attack unlocks once played")
		assert.Equal(t, AnimIdle, p.Anim.State)
	}
}

func TestPlayer_AttackIgnoredWhileAttacking(t *testing.T) {
	p := createTestPlayer()

	require.True(t, p.Attack())
	swing := p.Swing()
	assert.False(t, p.Attack())
	assert.Equal(t, AnimAttack1, p.Anim.State)
	assert.Equal(t, swing, p.Swing())
}

func TestPlayer_AttackZeroesVelocity(t *testing.T) {
	p := createTestPlayer()
	p.Move(1)
	assert.Equal(t, 5.0, p.VX)

	p.Attack()
	assert.Equal(t, 0.0, p.VX)

	// locked: movement intents are dropped
	p.Move(-1)
	assert.Equal(t, 0.0, p.VX)
	assert.Equal(t, FacingRight, p.Facing)
}

func TestPlayer_TakeDamage(t *testing.T) {
	p := createTestPlayer()

	assert.Equal(t, Hit, p.TakeDamage(1, 0))
	assert.Equal(t, 4, p.HP)
	assert.Equal(t, AnimHit, p.Anim.State)
	assert.True(t, p.Locked)
	assert.True(t, p.IsFlashing(100*time.Millisecond))

	// inside the 1000ms window
	assert.Equal(t, NotHit, p.TakeDamage(1, 999*time.Millisecond))
	assert.Equal(t, 4, p.HP)

	assert.Equal(t, Hit, p.TakeDamage(1, 1000*time.Millisecond))
	assert.Equal(t, 3, p.HP)
}

func TestPlayer_HPNeverNegative(t *testing.T) {
	p := createTestPlayer()

	assert.Equal(t, Died, p.TakeDamage(50, 0))
	assert.Equal(t, 0, p.HP)
	assert.Equal(t, AnimDeath, p.Anim.State)
	assert.Equal(t, time.Duration(0), p.DeathAt)
}

func TestPlayer_DeadIgnoresEverything(t *testing.T) {
	p := createTestPlayer()
	p.TakeDamage(5, 0)
	require.True(t, p.IsDead())

	later := 5 * time.Second
	assert.Equal(t, NotHit, p.TakeDamage(1, later))
	assert.False(t, p.Attack())
	assert.False(t, p.Jump())
	assert.False(t, p.Heal(1))
	p.Move(1)
	assert.Equal(t, 0.0, p.VX)

	runState(&p.Actor, 200)
	assert.Equal(t, AnimDeath, p.Anim.State, "death is terminal")
	assert.Equal(t, 7, p.Anim.Frame, "death clamps on its last frame")
}

func TestPlayer_HitRecovers(t *testing.T) {
	p := createTestPlayer()
	p.TakeDamage(1, 0)

	// 4 frames x 80ms, 4 ticks per frame
	runState(&p.Actor, 15)
	assert.Equal(t, AnimHit, p.Anim.State)
	runState(&p.Actor, 1)
	assert.Equal(t, AnimIdle, p.Anim.State)
	assert.False(t, p.Locked)
}

func TestPlayer_JumpStates(t *testing.T) {
	p := createTestPlayer()

	require.True(t, p.Jump())
	assert.Equal(t, -14.0, p.VY)
	assert.False(t, p.Jump(), "no double jump")

	p.UpdateState(tick)
	assert.Equal(t, AnimJump, p.Anim.State)

	// apex passed
	p.VY = 1
	p.UpdateState(tick)
	assert.Equal(t, AnimJumpTrans, p.Anim.State)

	// 2 frames x 60ms
	runState(&p.Actor, 5)
	assert.Equal(t, AnimJumpTrans, p.Anim.State)
	runState(&p.Actor, 1)
	assert.Equal(t, AnimFall, p.Anim.State)

	p.OnGround = true
	p.VY = 0
	p.UpdateState(tick)
	assert.Equal(t, AnimIdle, p.Anim.State)
}

func TestPlayer_TurnWhileMoving(t *testing.T) {
	p := createTestPlayer()
	p.Move(1)
	p.UpdateState(tick)
	assert.Equal(t, AnimRun, p.Anim.State)

	p.Move(-1)
	p.UpdateState(tick)
	assert.Equal(t, AnimTurn, p.Anim.State)

	// 3 frames x 50ms, 3 ticks per frame
	for i := 0; i < 8; i++ {
		p.Move(-1)
		p.UpdateState(tick)
		assert.Equal(t, AnimTurn, p.Anim.State)
	}
	p.Move(-1)
	p.UpdateState(tick)
	assert.Equal(t, AnimRun, p.Anim.State)

	p.Move(0)
	p.UpdateState(tick)
	assert.Equal(t, AnimIdle, p.Anim.State)
}

func TestPlayer_Heal(t *testing.T) {
	p := createTestPlayer()

	assert.False(t, p.Heal(1), "full HP")
	p.TakeDamage(2, 0)
	assert.True(t, p.Heal(5))
	assert.Equal(t, 5, p.HP, "capped at MaxHP")
}

func TestPlayer_TryCast(t *testing.T) {
	p := createTestPlayer()

	assert.True(t, p.TryCast(0))
	assert.False(t, p.TryCast(799*time.Millisecond))
	assert.True(t, p.TryCast(800*time.Millisecond))
}

func TestActor_SwingHitSet(t *testing.T) {
	p := createTestPlayer()
	p.Attack()

	assert.True(t, p.MarkSwingHit(7))
	assert.False(t, p.MarkSwingHit(7), "one hit per target per swing")
	assert.True(t, p.MarkSwingHit(8))

	runState(&p.Actor, 18)
	p.Attack()
	assert.True(t, p.MarkSwingHit(7), "a new swing clears the set")
}
