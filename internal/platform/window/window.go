// Package window runs a session in a desktop window through ebiten.
// The window's logical size is the 400x708 canvas, so cursor positions
// are already canvas coordinates.
package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/towerflap/internal/config"
	"github.com/vovakirdan/towerflap/internal/core"
	"github.com/vovakirdan/towerflap/internal/engine"
	"github.com/vovakirdan/towerflap/internal/games/flappy"
)

// textScale enlarges the 7x13 bitmap font.
const textScale = 2

// Game adapts a session to ebiten.Game.
type Game struct {
	session  *flappy.Game
	logger   *log.Logger
	face     text.Face
	frame    core.InputFrame
	snapshot flappy.Snapshot
}

// NewGame wraps a session. A nil logger discards log output.
func NewGame(session *flappy.Game, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		session:  session,
		logger:   logger,
		face:     text.NewGoXFace(basicfont.Face7x13),
		frame:    core.NewInputFrame(),
		snapshot: session.Snapshot(),
	}
}

// Update polls input and advances the session by one tick.
func (g *Game) Update() error {
	g.pollInput()

	result := g.session.Step(g.frame)
	g.frame.Clear()
	if result.Quit {
		g.logger.Info("quit requested", "tick", result.State.Tick, "score", result.State.Score)
		return ebiten.Termination
	}

	engine.LogEvents(g.logger, result.Events)
	g.snapshot = g.session.Snapshot()
	return nil
}

func (g *Game) pollInput() {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.frame.Set(core.ActionQuit)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.frame.Set(core.ActionJump)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.frame.Click(core.Point{X: x, Y: y})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && g.snapshot.GameOver != nil {
		g.frame.Click(g.snapshot.GameOver.RestartControl.Center())
	}
}

// Draw renders the last snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	sc := BuildScene(g.snapshot)
	for _, f := range sc.Fills {
		vector.DrawFilledRect(screen, float32(f.Rect.X), float32(f.Rect.Y), float32(f.Rect.W), float32(f.Rect.H), f.Color, false)
	}
	for _, l := range sc.Labels {
		op := &text.DrawOptions{}
		op.GeoM.Scale(textScale, textScale)
		op.GeoM.Translate(float64(l.At.X), float64(l.At.Y))
		op.ColorScale.ScaleWithColor(l.Color)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, l.Text, g.face, op)
	}
}

// Layout fixes the logical screen to the canvas.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return flappy.CanvasW, flappy.CanvasH
}

// Run opens the window and blocks until it is closed.
func Run(session *flappy.Game, cfg config.Config, logger *log.Logger) error {
	ebiten.SetWindowSize(int(flappy.CanvasW*cfg.Window.Scale), int(flappy.CanvasH*cfg.Window.Scale))
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(NewGame(session, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
