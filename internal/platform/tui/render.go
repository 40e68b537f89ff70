package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/towerflap/internal/core"
	"github.com/vovakirdan/towerflap/internal/games/flappy"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Glyphs used for the raster.
const (
	towerRune    = '█'
	towerCapRune = '▓'
	groundRune   = '▀'
	skyRune      = ' '
)

// playerGlyphs maps sprite states to glyph and color.
var playerGlyphs = map[flappy.SpriteState]core.Cell{
	flappy.SpriteNormal: {Rune: '●', Color: core.ColorYellow},
	flappy.SpriteFlap:   {Rune: '▲', Color: core.ColorBrightYellow},
	flappy.SpriteDead:   {Rune: '✖', Color: core.ColorRed},
}

// Rasterize draws a snapshot into dst, fitted into vp.
func Rasterize(dst *core.Screen, snap flappy.Snapshot, vp Viewport) {
	dst.Clear()
	bounds := vp.Bounds()
	if bounds.W == 0 || bounds.H == 0 {
		return
	}

	dst.DrawRect(bounds, skyRune, core.ColorDefault)

	drawTower(dst, vp, snap.Towers.Top, bounds)
	drawTower(dst, vp, snap.Towers.Bottom, bounds)

	// Ground below the floor line
	ground := vp.CellRect(core.NewRect(0, flappy.FloorY, flappy.CanvasW, flappy.CanvasH-flappy.FloorY))
	dst.DrawRect(clip(ground, bounds), groundRune, core.ColorOrange)

	glyph := playerGlyphs[snap.Player.Sprite]
	dst.DrawRect(clip(vp.CellRect(snap.Player.Rect), bounds), glyph.Rune, glyph.Color)

	if snap.GameOver != nil {
		drawGameOver(dst, vp, snap)
		return
	}

	dst.DrawTextCenteredAt(vp.CellX(snap.ScoreAnchor.X), vp.CellY(snap.ScoreAnchor.Y), strconv.Itoa(snap.Score), core.ColorBrightRed)
}

func drawTower(dst *core.Screen, vp Viewport, t flappy.TowerView, bounds core.Rect) {
	cells := vp.CellRect(t.Rect)
	dst.DrawRect(clip(cells, bounds), towerRune, core.ColorGreen)

	// The cap faces the gap
	capRow := cells.Bottom() - 1
	if t.Sprite == flappy.TowerSpriteBottom {
		capRow = cells.Y
	}
	dst.DrawRect(clip(core.NewRect(cells.X, capRow, cells.W, 1), bounds), towerCapRune, core.ColorBrightGreen)
}

func drawGameOver(dst *core.Screen, vp Viewport, snap flappy.Snapshot) {
	panel := vp.CellRect(snap.GameOver.ScorePanel)
	dst.DrawRect(panel, ' ', core.ColorDefault)
	dst.DrawBox(panel, core.ColorOrange)
	dst.DrawTextCenteredAt(panel.Center().X, panel.Y+1, "SCORE", core.ColorOrange)
	dst.DrawTextCenteredAt(vp.CellX(snap.ScoreAnchor.X), vp.CellY(snap.ScoreAnchor.Y), strconv.Itoa(snap.Score), core.ColorBrightRed)

	play := vp.CellRect(snap.GameOver.RestartControl)
	dst.DrawRect(play, ' ', core.ColorDefault)
	dst.DrawBox(play, core.ColorBrightGreen)
	label := "PLAY"
	if play.W < len(label)+2 {
		label = "▶"
	}
	dst.DrawTextCenteredAt(play.Center().X, play.Center().Y, label, core.ColorBrightGreen)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, colors bool) string {
	if !colors {
		return s.String()
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
