package system

import (
	"time"

	"github.com/younwookim/brawler/internal/domain/entity"
	"github.com/younwookim/brawler/internal/domain/event"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

// CombatResolver turns overlapping attack rects into damage and feedback.
// It also owns the player's fireballs and the hitspark effects.
type CombatResolver struct {
	combat   config.CombatConfig
	feedback config.FeedbackConfig
	fireball entity.ProjectileSpec
	sink     event.Sink

	projectiles []*entity.Projectile
	effects     []*entity.Effect
}

// NewCombatResolver creates a new combat resolver
func NewCombatResolver(cfg *config.PhysicsConfig, sink event.Sink) *CombatResolver {
	if sink == nil {
		sink = event.Nop{}
	}
	return &CombatResolver{
		combat:      cfg.Combat,
		feedback:    cfg.Feedback,
		fireball:    FireballSpecFrom(cfg.Fireball),
		sink:        sink,
		projectiles: make([]*entity.Projectile, 0, 8),
		effects:     make([]*entity.Effect, 0, 16),
	}
}

// AttackRect returns the area an actor's swing covers: AttackRange wide from
// the hitbox edge on the facing side, AttackHeightFactor of the hitbox tall,
// vertically centered.
func (r *CombatResolver) AttackRect(a *entity.Actor) entity.Rect {
	hb := a.Hitbox()
	h := hb.H * r.combat.AttackHeightFactor
	x := hb.Right()
	if a.Facing == entity.FacingLeft {
		x = hb.X - r.combat.AttackRange
	}
	return entity.Rect{
		X: x,
		Y: hb.CenterY() - h/2,
		W: r.combat.AttackRange,
		H: h,
	}
}

// Resolve runs after every actor has updated: player swing against enemies,
// fireballs against enemies, then enemy swings against the player.
func (r *CombatResolver) Resolve(player *entity.Player, enemies []*entity.Enemy, now time.Duration) {
	r.resolvePlayerSwing(player, enemies, now)
	r.resolveFireballs(player.ID, enemies, now)
	r.resolveEnemySwings(player, enemies, now)
}

func (r *CombatResolver) resolvePlayerSwing(player *entity.Player, enemies []*entity.Enemy, now time.Duration) {
	if !player.CanStrike() {
		return
	}

	reach := r.AttackRect(&player.Actor)
	dir := player.Facing.Dir()
	for _, e := range enemies {
		if e.IsDead() {
			continue
		}
		hb := e.Hitbox()
		if !reach.Overlaps(hb) {
			continue
		}
		if !player.MarkSwingHit(e.ID) {
			continue
		}

		res := e.TakeDamage(r.combat.PlayerDamage, dir, now)
		if res == entity.NotHit {
			continue
		}

		if r.combat.PlayerRecoil > 0 {
			player.ApplyKnockback(r.combat.PlayerRecoil, -dir)
		}
		r.landed(player.ID, e.ID, res, reach.Intersection(hb))
		r.requestPlayerHitFeedback()
	}
}

func (r *CombatResolver) resolveFireballs(owner entity.EntityID, enemies []*entity.Enemy, now time.Duration) {
	for _, p := range r.projectiles {
		if !p.Active {
			continue
		}
		box := p.Hitbox()
		for _, e := range enemies {
			if e.IsDead() || !box.Overlaps(e.Hitbox()) {
				continue
			}
			// consumed by the first live enemy it touches
			p.Deactivate()

			res := e.TakeDamage(p.Damage, p.Dir(), now)
			if res == entity.NotHit {
				break
			}
			if res == entity.Hit && p.Knockback > 0 {
				e.ApplyKnockback(p.Knockback, p.Dir())
			}
			r.landed(owner, e.ID, res, box.Intersection(e.Hitbox()))
			break
		}
	}
}

func (r *CombatResolver) resolveEnemySwings(player *entity.Player, enemies []*entity.Enemy, now time.Duration) {
	for _, e := range enemies {
		if !e.CanStrike() {
			continue
		}
		reach := r.AttackRect(&e.Actor)
		hb := player.Hitbox()
		if !reach.Overlaps(hb) {
			continue
		}
		if !e.MarkSwingHit(player.ID) {
			continue
		}

		res := player.TakeDamage(r.combat.EnemyDamage, now)
		if res == entity.NotHit {
			continue
		}
		if res == entity.Hit && r.combat.PlayerKnockback > 0 {
			player.ApplyKnockback(r.combat.PlayerKnockback, e.Facing.Dir())
		}
		r.landed(e.ID, player.ID, res, reach.Intersection(hb))
		if r.feedback.ScreenShake.Enabled {
			r.sink.OnScreenShakeRequested(r.feedback.ScreenShake.Duration(), r.feedback.ScreenShake.Magnitude)
		}
	}
}

// landed emits the hit events and spawns a hitspark on the overlap
func (r *CombatResolver) landed(attacker, target entity.EntityID, res entity.DamageResult, overlap entity.Rect) {
	r.sink.OnAttackLanded(attacker)
	r.sink.OnDamageTaken(target)
	if res == entity.Died {
		r.sink.OnDeath(target)
	}

	spark := r.feedback.Hitspark
	if spark.Frames > 0 {
		r.effects = append(r.effects, entity.NewHitspark(overlap.CenterX(), overlap.CenterY(), spark.Frames, spark.FrameDuration()))
	}
}

func (r *CombatResolver) requestPlayerHitFeedback() {
	fb := r.feedback
	if fb.ScreenShake.Enabled {
		r.sink.OnScreenShakeRequested(fb.ScreenShake.Duration(), fb.ScreenShake.Magnitude)
	}
	if fb.SlowMotion.Enabled {
		r.sink.OnSlowMotionRequested(fb.SlowMotion.Duration(), fb.SlowMotion.Scale)
	}
	if fb.Zoom.Enabled {
		r.sink.OnZoomRequested(fb.Zoom.Duration(), fb.Zoom.Magnitude)
	}
}

// SpawnFireball launches a fireball from the player's hitbox center
func (r *CombatResolver) SpawnFireball(player *entity.Player, now time.Duration) {
	hb := player.Hitbox()
	r.projectiles = append(r.projectiles, entity.NewFireball(hb.CenterX(), hb.CenterY(), player.Facing, r.fireball, now))
}

// UpdateProjectiles moves fireballs and drops expired ones
func (r *CombatResolver) UpdateProjectiles(now time.Duration, world entity.World) {
	active := r.projectiles[:0]
	for _, p := range r.projectiles {
		p.Update(now, world)
		if p.Active {
			active = append(active, p)
		}
	}
	clear(r.projectiles[len(active):])
	r.projectiles = active
}

// UpdateEffects advances hitsparks and drops finished ones
func (r *CombatResolver) UpdateEffects(dt time.Duration) {
	active := r.effects[:0]
	for _, e := range r.effects {
		e.Update(dt)
		if e.Active {
			active = append(active, e)
		}
	}
	clear(r.effects[len(active):])
	r.effects = active
}

// Projectiles returns the live fireballs
func (r *CombatResolver) Projectiles() []*entity.Projectile {
	return r.projectiles
}

// Effects returns the live hitsparks
func (r *CombatResolver) Effects() []*entity.Effect {
	return r.effects
}
