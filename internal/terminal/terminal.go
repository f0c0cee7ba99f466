// Package terminal draws the particle field into a tcell screen, one
// projected point per cell with additive color.
package terminal

import (
	"github.com/ThatOtherAndrew/Handcloud/internal/camera"
	"github.com/ThatOtherAndrew/Handcloud/internal/models"
	"github.com/ThatOtherAndrew/Handcloud/internal/palette"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Opacity scales each point's contribution to its cell.
const Opacity = 0.8

// glyphs by how many points landed in a cell
var glyphs = []rune{'.', ':', '*', '#', '@'}

func glyph(n int) rune {
	switch {
	case n <= 1:
		return glyphs[0]
	case n <= 3:
		return glyphs[1]
	case n <= 7:
		return glyphs[2]
	case n <= 15:
		return glyphs[3]
	}
	return glyphs[4]
}

type cell struct {
	n     int
	color colorful.Color
}

type App struct {
	app    *models.App
	screen tcell.Screen
	cells  []cell
	status func() string
}

// New draws app onto screen. status supplies the HUD line; it may be nil.
func New(app *models.App, screen tcell.Screen, status func() string) *App {
	return &App{app: app, screen: screen, status: status}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Draw renders one frame and shows it.
func (a *App) Draw() {
	width, height := a.screen.Size()
	bg := tcell.StyleDefault.Background(toTcell(palette.Background))
	a.screen.SetStyle(bg)
	a.screen.Clear()

	rows := height - 1
	if width > 0 && rows > 0 {
		a.accumulate(width, rows)
		for i, c := range a.cells {
			if c.n == 0 {
				continue
			}
			lit := colorful.Color{
				R: palette.Background.R + c.color.R,
				G: palette.Background.G + c.color.G,
				B: palette.Background.B + c.color.B,
			}
			a.screen.SetContent(i%width, i/width, glyph(c.n), nil, bg.Foreground(toTcell(lit)))
		}
	}

	if a.status != nil && height > 0 {
		hud := bg.Foreground(tcell.NewRGBColor(0x00, 0xff, 0x88))
		if !a.app.HandDetected {
			hud = bg.Foreground(tcell.NewRGBColor(0xff, 0x6b, 0x6b))
		}
		x := 0
		for _, r := range a.status() {
			if x >= width {
				break
			}
			a.screen.SetContent(x, height-1, r, nil, hud)
			x++
		}
	}

	a.screen.Show()
}

func (a *App) accumulate(width, rows int) {
	n := width * rows
	if cap(a.cells) < n {
		a.cells = make([]cell, n)
	}
	a.cells = a.cells[:n]
	clear(a.cells)

	cam := camera.Camera{Width: width, Height: rows, PixelAspect: 0.5}
	mvp := cam.MVP(a.app.State.Rotation)

	positions := a.app.Field.Positions()
	colors := a.app.Field.Colors()
	for i3 := 0; i3+2 < len(positions); i3 += 3 {
		p := mgl32.Vec3{positions[i3], positions[i3+1], positions[i3+2]}
		x, y, _, ok := cam.Project(mvp, p)
		if !ok {
			continue
		}
		cx, cy := int(x), int(y)
		if cx < 0 || cx >= width || cy < 0 || cy >= rows {
			continue
		}
		c := &a.cells[cy*width+cx]
		c.n++
		c.color.R += float64(colors[i3]) * Opacity
		c.color.G += float64(colors[i3+1]) * Opacity
		c.color.B += float64(colors[i3+2]) * Opacity
	}
}

// HandleEvent reacts to input and resizes. It returns false when the user
// asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}
