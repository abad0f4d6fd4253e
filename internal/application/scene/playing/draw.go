package playing

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/brawler/internal/domain/entity"
	"golang.org/x/image/colornames"
)

// Colors for rendering
var (
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorEnemy     = color.RGBA{200, 100, 100, 255}
	colorCorpse    = color.RGBA{90, 90, 90, 255}
	colorFlash     = color.RGBA{255, 255, 255, 230}
	colorHitbox    = color.RGBA{100, 100, 200, 160}
	colorAttack    = color.RGBA{255, 60, 60, 90}
	colorFireball  = colornames.Orange
	colorSpark     = colornames.Yellow
	colorPickup    = colornames.Hotpink
	colorGridLine  = color.RGBA{255, 255, 255, 16}
	colorHealthBG  = color.RGBA{60, 60, 60, 255}
	colorHealthFG  = color.RGBA{100, 200, 100, 255}
	colorEnemyHPFG = color.RGBA{220, 80, 80, 255}
)

// Draw renders the arena, the HUD and the active overlay
func (p *Playing) Draw(screen *ebiten.Image) {
	if p.world == nil {
		p.world = ebiten.NewImage(p.screenW, p.screenH)
	}
	p.world.Clear()

	p.drawBackground(p.world)
	p.drawPickups(p.world)
	p.drawEnemies(p.world)
	p.drawPlayer(p.world)
	p.drawProjectiles(p.world)
	p.drawEffects(p.world)

	// zoom about the screen center
	op := &ebiten.DrawImageOptions{}
	if zoom := p.sim.Camera.Scale(p.sim.Now()); zoom != 1 {
		cx, cy := float64(p.screenW)/2, float64(p.screenH)/2
		op.GeoM.Translate(-cx, -cy)
		op.GeoM.Scale(zoom, zoom)
		op.GeoM.Translate(cx, cy)
	}
	screen.DrawImage(p.world, op)

	p.drawHUD(screen)

	if p.state.Overlay() {
		p.overlayUI().Draw(screen)
	}
}

// fillRect draws a world rect through the camera
func (p *Playing) fillRect(dst *ebiten.Image, r entity.Rect, c color.Color) {
	s := p.sim.Camera.Apply(r)
	vector.FillRect(dst, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), c, false)
}

func (p *Playing) strokeRect(dst *ebiten.Image, r entity.Rect, c color.Color) {
	s := p.sim.Camera.Apply(r)
	vector.StrokeRect(dst, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), 1, c, false)
}

func (p *Playing) drawBackground(dst *ebiten.Image) {
	bg := p.opts.Arena.Background
	dst.Fill(bg.Sky.Color())

	world := p.sim.World()
	view := p.sim.Camera.Viewport()

	if bg.Grid > 0 {
		step := float64(bg.Grid)
		for x := math.Floor(view.X/step) * step; x <= view.Right(); x += step {
			sx, _ := p.sim.Camera.ApplyPoint(x, 0)
			vector.StrokeLine(dst, float32(sx), 0, float32(sx), float32(p.screenH), 1, colorGridLine, false)
		}
		for y := math.Floor(view.Y/step) * step; y <= view.Bottom(); y += step {
			_, sy := p.sim.Camera.ApplyPoint(0, y)
			vector.StrokeLine(dst, 0, float32(sy), float32(p.screenW), float32(sy), 1, colorGridLine, false)
		}
	}

	p.fillRect(dst, entity.Rect{X: 0, Y: world.GroundY, W: world.Width, H: world.Height - world.GroundY}, bg.Ground.Color())
}

// actorColor picks the body color: flash on hit, gray when dead
func (p *Playing) actorColor(a *entity.Actor, base color.RGBA) color.Color {
	switch {
	case a.IsFlashing(p.sim.Now()):
		return colorFlash
	case a.IsDead():
		return colorCorpse
	default:
		return base
	}
}

// drawActor draws the sprite box, a facing marker and the debug boxes (Tab)
func (p *Playing) drawActor(dst *ebiten.Image, a *entity.Actor, base color.RGBA) {
	bounds := a.Bounds()
	c := p.actorColor(a, base)
	if a.IsDead() {
		// corpses lie on the ground
		bounds = entity.Rect{X: bounds.X, Y: bounds.Bottom() - bounds.W/2, W: bounds.H, H: bounds.W / 2}
		if a.Facing == entity.FacingLeft {
			bounds.X -= bounds.W - a.Width
		}
	}
	p.fillRect(dst, bounds, c)

	if !a.IsDead() {
		hb := a.Hitbox()
		eyeX := hb.X + hb.W*0.75
		if a.Facing == entity.FacingLeft {
			eyeX = hb.X + hb.W*0.25
		}
		p.fillRect(dst, entity.Rect{X: eyeX - 3, Y: hb.Y + 10, W: 6, H: 6}, colornames.Black)
	}

	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		p.strokeRect(dst, a.Hitbox(), colorHitbox)
		if a.IsAttacking() {
			p.fillRect(dst, p.sim.AttackRect(a), colorAttack)
		}
	}
}

func (p *Playing) drawPlayer(dst *ebiten.Image) {
	p.drawActor(dst, &p.sim.Player.Actor, colorPlayer)
}

func (p *Playing) drawEnemies(dst *ebiten.Image) {
	for _, e := range p.sim.Enemies() {
		p.drawActor(dst, &e.Actor, colorEnemy)
		if e.IsDead() || e.HP == e.MaxHP {
			continue
		}

		hb := e.Hitbox()
		bar := entity.Rect{X: hb.X, Y: e.Y - 8, W: hb.W, H: 4}
		p.fillRect(dst, bar, colorHealthBG)
		bar.W *= float64(e.HP) / float64(e.MaxHP)
		p.fillRect(dst, bar, colorEnemyHPFG)
	}
}

func (p *Playing) drawProjectiles(dst *ebiten.Image) {
	for _, f := range p.sim.Projectiles() {
		if !f.Active {
			continue
		}
		hb := f.Hitbox()
		p.fillRect(dst, hb, colorFireball)

		// flicker the trailing half on odd frames
		if f.Frame%2 == 1 {
			tail := hb
			tail.W /= 2
			if f.Dir() > 0 {
				tail.X -= tail.W
			} else {
				tail.X += hb.W
			}
			p.fillRect(dst, tail, colornames.Orangered)
		}
	}
}

func (p *Playing) drawEffects(dst *ebiten.Image) {
	for _, fx := range p.sim.Effects() {
		if !fx.Active {
			continue
		}
		size := float32(8 + 6*fx.Frame)
		x, y := p.sim.Camera.ApplyPoint(fx.X, fx.Y)
		sx, sy := float32(x), float32(y)
		vector.StrokeLine(dst, sx-size, sy, sx+size, sy, 2, colorSpark, false)
		vector.StrokeLine(dst, sx, sy-size, sx, sy+size, 2, colorSpark, false)
		vector.StrokeLine(dst, sx-size*0.7, sy-size*0.7, sx+size*0.7, sy+size*0.7, 1, colorSpark, false)
		vector.StrokeLine(dst, sx-size*0.7, sy+size*0.7, sx+size*0.7, sy-size*0.7, 1, colorSpark, false)
	}
}

func (p *Playing) drawPickups(dst *ebiten.Image) {
	for _, pk := range p.sim.Pickups() {
		if !pk.Active {
			continue
		}
		box := entity.Rect{X: pk.X, Y: pk.Y, W: pk.Size, H: pk.Size}
		bar := pk.Size / 3
		p.fillRect(dst, entity.Rect{X: box.X + bar, Y: box.Y, W: bar, H: box.H}, colorPickup)
		p.fillRect(dst, entity.Rect{X: box.X, Y: box.Y + bar, W: box.W, H: bar}, colorPickup)
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	player := p.sim.Player

	barX := float32(10)
	barY := float32(p.screenH - 20)
	barW := float32(120)
	barH := float32(10)
	vector.FillRect(screen, barX, barY, barW, barH, colorHealthBG, false)

	ratio := float32(player.HP) / float32(player.MaxHP)
	if ratio < 0 {
		ratio = 0
	}
	vector.FillRect(screen, barX, barY, barW*ratio, barH, colorHealthFG, false)

	status := fmt.Sprintf("HP %d/%d  Kills %d  Enemies %d", player.HP, player.MaxHP, p.sim.KillCount(), p.sim.SpawnLimit())
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-38)

	if p.pacer.Scale() < 1 {
		ebitenutil.DebugPrintAt(screen, "SLOW", p.screenW-40, 10)
	}

	controls := "A/D: Move | W/Space: Jump | J/LClick: Attack | K/RClick: Fireball | Tab: Hitboxes | ESC: Pause"
	ebitenutil.DebugPrint(screen, controls)
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
