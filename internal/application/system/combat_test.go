package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/brawler/internal/domain/entity"
	"github.com/younwookim/brawler/internal/domain/event"
)

func createTestCombat() (*CombatResolver, *event.Log) {
	log := &event.Log{}
	return NewCombatResolver(createTestPhysicsConfig(), log.Sink()), log
}

// finishSwing plays an attack out so the actor can swing again
func finishSwing(a *entity.Actor) {
	for i := 0; i < 100 && a.IsAttacking(); i++ {
		a.UpdateState(testTick)
	}
}

func TestCombat_AttackRect(t *testing.T) {
	r, _ := createTestCombat()
	p := createTestPlayerAt(1000)

	got := r.AttackRect(&p.Actor)
	assert.Equal(t, entity.Rect{X: 1020, Y: 2190, W: 100, H: 40}, got)

	p.Facing = entity.FacingLeft
	got = r.AttackRect(&p.Actor)
	assert.Equal(t, entity.Rect{X: 880, Y: 2190, W: 100, H: 40}, got)
}

// Scenario: a fresh enemy takes a 2 damage swing, then a second swing
// inside its 600ms window is ignored.
func TestCombat_PlayerSwingDamagesEnemy(t *testing.T) {
	r, log := createTestCombat()
	player := createTestPlayerAt(1000)
	e := createTestEnemyAt(2, 1080)
	enemies := []*entity.Enemy{e}
	now := time.Second

	require.True(t, player.Attack())
	r.Resolve(player, enemies, now)

	assert.Equal(t, 2, e.HP)
	assert.Equal(t, entity.AnimHit, e.Anim.State)
	assert.Equal(t, 15.0, e.KnockbackX)
	assert.Equal(t, -4.0, player.KnockbackX, "attacker recoils away from the target")

	assert.Equal(t, 1, log.Count(event.KindAttackLanded))
	assert.Equal(t, 1, log.Count(event.KindDamageTaken))
	assert.Equal(t, 1, log.Count(event.KindScreenShake))
	assert.Equal(t, 1, log.Count(event.KindSlowMotion))
	assert.Equal(t, 1, log.Count(event.KindZoom))
	assert.Zero(t, log.Count(event.KindDeath))
	assert.Len(t, r.Effects(), 1)

	finishSwing(&player.Actor)
	require.True(t, player.Attack())
	assert.Equal(t, entity.AnimAttack2, player.Anim.State)

	r.Resolve(player, enemies, now+400*time.Millisecond)
	assert.Equal(t, 2, e.HP, "enemy is still invulnerable")
	assert.Equal(t, 1, log.Count(event.KindAttackLanded))
}

func TestCombat_OneHitPerSwing(t *testing.T) {
	r, log := createTestCombat()
	player := createTestPlayerAt(1000)
	e := createTestEnemyAt(2, 1080)
	e.HitCooldown = 0
	enemies := []*entity.Enemy{e}

	require.True(t, player.Attack())
	for i := 1; i <= 10; i++ {
		r.Resolve(player, enemies, time.Duration(i)*testTick)
	}

	assert.Equal(t, 2, e.HP, "the swing resolves once even without a cooldown")
	assert.Equal(t, 1, log.Count(event.KindAttackLanded))
}

func TestCombat_SwingHitsEveryEnemyInReach(t *testing.T) {
	r, log := createTestCombat()
	player := createTestPlayerAt(1000)
	near := createTestEnemyAt(2, 1050)
	far := createTestEnemyAt(3, 1100)
	behind := createTestEnemyAt(4, 950)
	out := createTestEnemyAt(5, 1200)

	require.True(t, player.Attack())
	r.Resolve(player, []*entity.Enemy{near, far, behind, out}, 0)

	assert.Equal(t, 2, near.HP)
	assert.Equal(t, 2, far.HP)
	assert.Equal(t, 4, behind.HP, "swing only reaches the facing side")
	assert.Equal(t, 4, out.HP)
	assert.Equal(t, 2, log.Count(event.KindDamageTaken))
}

func TestCombat_KillEmitsDeath(t *testing.T) {
	r, log := createTestCombat()
	player := createTestPlayerAt(1000)
	e := createTestEnemyAt(2, 1080)
	e.HP = 2

	require.True(t, player.Attack())
	r.Resolve(player, []*entity.Enemy{e}, time.Second)

	assert.True(t, e.IsDead())
	assert.Equal(t, time.Second, e.DeathAt)
	assert.Zero(t, e.KnockbackX)
	assert.Equal(t, 1, log.Count(event.KindDeath))
}

func TestCombat_NoStrikeWithoutAttack(t *testing.T) {
	r, log := createTestCombat()
	player := createTestPlayerAt(1000)
	e := createTestEnemyAt(2, 1080)

	r.Resolve(player, []*entity.Enemy{e}, 0)

	assert.Equal(t, 4, e.HP)
	assert.Empty(t, log.Events)
}

func TestCombat_EnemySwingDamagesPlayer(t *testing.T) {
	r, log := createTestCombat()
	player := createTestPlayerAt(1000)
	e := createTestEnemyAt(2, 1080)
	now := time.Second

	require.True(t, e.Attack(now))
	r.Resolve(player, []*entity.Enemy{e}, now)

	assert.Equal(t, 4, player.HP)
	assert.Equal(t, entity.AnimHit, player.Anim.State)
	assert.Equal(t, -10.0, player.KnockbackX, "pushed in the enemy's facing direction")
	assert.Equal(t, 1, log.Count(event.KindAttackLanded))
	assert.Equal(t, 1, log.Count(event.KindScreenShake))
	assert.Zero(t, log.Count(event.KindSlowMotion))

	// invulnerable for 1000ms
	finishSwing(&e.Actor)
	require.True(t, e.Attack(now+900*time.Millisecond))
	r.Resolve(player, []*entity.Enemy{e}, now+900*time.Millisecond)
	assert.Equal(t, 4, player.HP)
}

func TestCombat_DeadPlayerIgnoresDamage(t *testing.T) {
	r, log := createTestCombat()
	player := createTestPlayerAt(1000)
	require.Equal(t, entity.Died, player.TakeDamage(5, 0))
	e := createTestEnemyAt(2, 1080)

	require.True(t, e.Attack(5*time.Second))
	r.Resolve(player, []*entity.Enemy{e}, 5*time.Second)

	assert.Equal(t, 0, player.HP)
	assert.Equal(t, entity.AnimDeath, player.Anim.State)
	assert.Empty(t, log.Events)
}

func TestCombat_Fireball(t *testing.T) {
	r, log := createTestCombat()
	player := createTestPlayerAt(1000)
	corpse := createTestEnemyAt(2, 1060)
	require.Equal(t, entity.Died, corpse.TakeDamage(4, 1, 0))
	e := createTestEnemyAt(3, 1100)
	enemies := []*entity.Enemy{corpse, e}

	r.SpawnFireball(player, 0)
	require.Len(t, r.Projectiles(), 1)
	assert.Equal(t, 12.0, r.Projectiles()[0].VX)

	now := time.Duration(0)
	for i := 0; i < 20 && e.HP == 4; i++ {
		now += testTick
		r.UpdateProjectiles(now, testWorld)
		r.Resolve(player, enemies, now)
	}

	assert.Equal(t, 3, e.HP)
	assert.Equal(t, 8.0, e.KnockbackX)
	assert.Equal(t, 1, log.Count(event.KindAttackLanded))
	assert.Equal(t, player.ID, log.Events[0].ID, "the caster gets the credit")

	r.UpdateProjectiles(now+testTick, testWorld)
	assert.Empty(t, r.Projectiles(), "consumed on hit")
}

func TestCombat_FireballExpires(t *testing.T) {
	r, _ := createTestCombat()
	player := createTestPlayerAt(100)
	player.Facing = entity.FacingLeft

	r.SpawnFireball(player, 0)
	for i := 1; i <= 20; i++ {
		r.UpdateProjectiles(time.Duration(i)*testTick, testWorld)
	}
	assert.Empty(t, r.Projectiles(), "left the world")
}

func TestCombat_HitsparkExpires(t *testing.T) {
	r, _ := createTestCombat()
	player := createTestPlayerAt(1000)
	e := createTestEnemyAt(2, 1080)

	require.True(t, player.Attack())
	r.Resolve(player, []*entity.Enemy{e}, 0)
	require.Len(t, r.Effects(), 1)

	spark := r.Effects()[0]
	assert.InDelta(t, 1080, spark.X, 1e-9)

	// 2 frames x 80ms
	for i := 0; i < 7; i++ {
		r.UpdateEffects(testTick)
	}
	assert.Len(t, r.Effects(), 1)
	r.UpdateEffects(testTick)
	assert.Empty(t, r.Effects())
}
