package playing

import (
	"fmt"
	"image/color"
	"time"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// volumeStep is how much one click of - or + changes a volume
const volumeStep = 0.1

var (
	colorText     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorTextDim  = color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
	colorPanel    = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	colorDeadTint = color.NRGBA{R: 0x40, G: 0x00, B: 0x00, A: 220}
	colorButton   = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	colorButtonHi = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
)

// overlayFace is the basic font shared by every overlay
func overlayFace() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

// overlay builds a centered panel holding children in a column
func (p *Playing) overlay(background color.NRGBA, children ...widget.PreferredSizeLocateableWidget) *ebitenui.UI {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(background)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(p.screenW/2, p.screenH/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	for _, c := range children {
		panel.AddChild(c)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func label(face *ebtext.Face, s string, c color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, face, c),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func button(face *ebtext.Face, s string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(colorButton),
			Hover:   imageui.NewNineSliceColor(colorButtonHi),
			Pressed: imageui.NewNineSliceColor(colorButtonHi),
		}),
		widget.ButtonOpts.Text(s, face, &widget.ButtonTextColor{Idle: colorText}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// newPauseUI builds the pause menu: resume, settings, main menu, quit
func (p *Playing) newPauseUI() *ebitenui.UI {
	face := overlayFace()
	return p.overlay(colorPanel,
		label(face, "Paused", colorText),
		button(face, "Resume", func() { p.action = actionResume }),
		button(face, "Settings", func() { p.action = actionSettings }),
		button(face, "Main menu", func() { p.action = actionMenu }),
		button(face, "Quit", func() { p.action = actionQuit }),
	)
}

// newConfigUI builds the volume settings menu. It is rebuilt after every
// change so the labels show the current values.
func (p *Playing) newConfigUI() *ebitenui.UI {
	face := overlayFace()
	return p.overlay(colorPanel,
		label(face, "Settings", colorText),
		p.volumeRow(face, "Master", &p.settings.MasterVolume),
		p.volumeRow(face, "Effects", &p.settings.SFXVolume),
		p.volumeRow(face, "Music", &p.settings.MusicVolume),
		button(face, "Back", func() { p.action = actionBack }),
	)
}

func (p *Playing) volumeRow(face *ebtext.Face, name string, v *float64) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	row.AddChild(button(face, "-", func() { p.adjustVolume(v, -volumeStep) }))
	row.AddChild(label(face, fmt.Sprintf("%-8s %3.0f%%", name, *v*100), colorText))
	row.AddChild(button(face, "+", func() { p.adjustVolume(v, volumeStep) }))
	return row
}

// newDeathUI builds the death menu with this run's outcome and the best runs
func (p *Playing) newDeathUI() *ebitenui.UI {
	face := overlayFace()
	children := []widget.PreferredSizeLocateableWidget{
		label(face, "You died", colorText),
	}
	if p.lastRun != nil {
		children = append(children, label(face,
			fmt.Sprintf("Kills %d   Survived %s", p.lastRun.Kills, p.lastRun.Duration.Round(time.Second)),
			colorText))
	}
	if len(p.topRuns) > 0 {
		children = append(children, label(face, "Best runs", colorTextDim))
		for i, run := range p.topRuns {
			c := colorTextDim
			if p.lastRun != nil && run.ID == p.lastRun.ID {
				c = colorText
			}
			children = append(children, label(face,
				fmt.Sprintf("%d. %3d kills  %s", i+1, run.Kills, run.Duration.Round(time.Second)),
				c))
		}
	}
	children = append(children,
		button(face, "Respawn", func() { p.action = actionRespawn }),
		button(face, "Main menu", func() { p.action = actionMenu }),
		button(face, "Quit", func() { p.action = actionQuit }),
	)
	return p.overlay(colorDeadTint, children...)
}
