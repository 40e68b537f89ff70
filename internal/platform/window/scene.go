package window

import (
	"image/color"
	"strconv"

	"github.com/vovakirdan/towerflap/internal/core"
	"github.com/vovakirdan/towerflap/internal/games/flappy"
)

// Colours of the window palette.
var (
	colorSky       = color.RGBA{R: 0x4e, G: 0xc0, B: 0xca, A: 0xff}
	colorGround    = color.RGBA{R: 0xde, G: 0xd8, B: 0x95, A: 0xff}
	colorTower     = color.RGBA{R: 0x5e, G: 0xa2, B: 0x2e, A: 0xff}
	colorTowerCap  = color.RGBA{R: 0x7b, G: 0xc8, B: 0x3f, A: 0xff}
	colorPlayer    = color.RGBA{R: 0xf8, G: 0xc8, B: 0x30, A: 0xff}
	colorFlap      = color.RGBA{R: 0xff, G: 0xe0, B: 0x70, A: 0xff}
	colorDead      = color.RGBA{R: 0xd0, G: 0x40, B: 0x30, A: 0xff}
	colorPanel     = color.RGBA{R: 0xde, G: 0xd8, B: 0x95, A: 0xff}
	colorPanelEdge = color.RGBA{R: 0x54, G: 0x38, B: 0x47, A: 0xff}
	colorButton    = color.RGBA{R: 0xe8, G: 0x60, B: 0x10, A: 0xff}
	colorText      = color.White
	colorScore     = color.RGBA{R: 0xff, G: 0x30, B: 0x30, A: 0xff}
)

// towerCapHeight is the height of the lip drawn at a tower's open end.
const towerCapHeight = 24

// Fill is a solid rectangle in canvas coordinates.
type Fill struct {
	Rect  core.Rect
	Color color.Color
}

// Label is text centered on a canvas point.
type Label struct {
	Text  string
	At    core.Point
	Color color.Color
}

// Scene is a snapshot flattened into draw calls, back to front.
type Scene struct {
	Fills  []Fill
	Labels []Label
}

// BuildScene lays out a snapshot for drawing.
func BuildScene(snap flappy.Snapshot) Scene {
	var sc Scene
	sc.fill(core.NewRect(0, 0, flappy.CanvasW, flappy.CanvasH), colorSky)

	for _, t := range []flappy.TowerView{snap.Towers.Top, snap.Towers.Bottom} {
		sc.fill(t.Rect, colorTower)
		capY := t.Rect.Bottom() - towerCapHeight
		if t.Sprite == flappy.TowerSpriteBottom {
			capY = t.Rect.Y
		}
		sc.fill(core.NewRect(t.Rect.X-2, capY, t.Rect.W+4, towerCapHeight), colorTowerCap)
	}

	sc.fill(core.NewRect(0, flappy.FloorY, flappy.CanvasW, flappy.CanvasH-flappy.FloorY), colorGround)

	sc.fill(snap.Player.Rect, playerColor(snap.Player.Sprite))

	if over := snap.GameOver; over != nil {
		sc.fill(inset(over.ScorePanel, -3), colorPanelEdge)
		sc.fill(over.ScorePanel, colorPanel)
		sc.label("SCORE", core.Point{X: over.ScorePanel.Center().X, Y: over.ScorePanel.Y + 20}, colorPanelEdge)

		sc.fill(inset(over.RestartControl, -3), colorText)
		sc.fill(over.RestartControl, colorButton)
		sc.label("PLAY", over.RestartControl.Center(), colorText)
	}

	sc.label(strconv.Itoa(snap.Score), snap.ScoreAnchor, colorScore)
	return sc
}

func (sc *Scene) fill(r core.Rect, c color.Color) {
	sc.Fills = append(sc.Fills, Fill{Rect: r, Color: c})
}

func (sc *Scene) label(text string, at core.Point, c color.Color) {
	sc.Labels = append(sc.Labels, Label{Text: text, At: at, Color: c})
}

func playerColor(s flappy.SpriteState) color.Color {
	switch s {
	case flappy.SpriteFlap:
		return colorFlap
	case flappy.SpriteDead:
		return colorDead
	default:
		return colorPlayer
	}
}

// inset shrinks r by d on every side; a negative d grows it.
func inset(r core.Rect, d int) core.Rect {
	return core.NewRect(r.X+d, r.Y+d, r.W-2*d, r.H-2*d)
}
