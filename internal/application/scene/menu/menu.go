// Package menu provides the main menu scene.
package menu

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/brawler/internal/application/scene"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// Item is one entry of the menu
type Item int

const (
	ItemStart Item = iota
	ItemQuit
)

func (i Item) String() string {
	switch i {
	case ItemStart:
		return "Start"
	case ItemQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorItem     = colornames.Lightgray
	colorSelected = colornames.Gold
)

// Menu is the title screen
type Menu struct {
	title    string
	items    []Item
	selected int
	screenW  int
	screenH  int
	face     text.Face
	start    func() (scene.Scene, error)
}

// New creates the main menu. start builds the arena scene when Start is chosen.
func New(title string, screenW, screenH int, start func() (scene.Scene, error)) *Menu {
	return &Menu{
		title:   title,
		items:   []Item{ItemStart, ItemQuit},
		screenW: screenW,
		screenH: screenH,
		face:    text.NewGoXFace(basicfont.Face7x13),
		start:   start,
	}
}

// Selected returns the highlighted item
func (m *Menu) Selected() Item {
	return m.items[m.selected]
}

// Move shifts the highlight by delta, wrapping around
func (m *Menu) Move(delta int) {
	n := len(m.items)
	m.selected = ((m.selected+delta)%n + n) % n
}

// Activate runs the highlighted item
func (m *Menu) Activate() (scene.Scene, error) {
	switch m.Selected() {
	case ItemStart:
		return m.start()
	case ItemQuit:
		return nil, ebiten.Termination
	}
	return nil, nil
}

// Update handles menu navigation (implements scene.Scene)
func (m *Menu) Update(_ time.Duration) (scene.Scene, error) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		m.Move(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		m.Move(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		inpututil.IsKeyJustPressed(ebiten.KeySpace),
		inpututil.IsKeyJustPressed(ebiten.KeyJ):
		return m.Activate()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return nil, ebiten.Termination
	}
	return nil, nil
}

// Draw renders the title and the items
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	cx := float64(m.screenW) / 2
	titleOp := &text.DrawOptions{}
	titleOp.GeoM.Scale(3, 3)
	titleOp.GeoM.Translate(cx, float64(m.screenH)/3)
	titleOp.PrimaryAlign = text.AlignCenter
	titleOp.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(screen, m.title, m.face, titleOp)

	for i, item := range m.items {
		label := item.String()
		c := colorItem
		if i == m.selected {
			label = "> " + label + " <"
			c = colorSelected
		}

		op := &text.DrawOptions{}
		op.GeoM.Scale(2, 2)
		op.GeoM.Translate(cx, float64(m.screenH)/2+float64(i)*40)
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(c)
		text.Draw(screen, label, m.face, op)
	}
}

// OnEnter resets the highlight to Start
func (m *Menu) OnEnter() {
	m.selected = 0
}

// OnExit is called when leaving this scene
func (m *Menu) OnExit() {}
