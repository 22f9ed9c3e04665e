//go:build ebiten

package app

import (
	"log"
	"time"

	"satellites/internal/core"
	"satellites/internal/render"
	"satellites/internal/satellites"
	"satellites/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the frame driver to the ebiten.Game interface.
type Game struct {
	driver  *satellites.Driver
	painter *render.FramePainter
	hud     *ui.HUD
	overlay *ui.Overlay
	logger  *log.Logger

	paused    bool
	tickOnce  bool
	attractor core.Vec2
}

// New constructs a Game for the provided driver.
func New(driver *satellites.Driver, logger *log.Logger) *Game {
	size := driver.Config().Size()
	return &Game{
		driver:  driver,
		painter: render.NewFramePainter(size.W, size.H),
		hud:     ui.NewHUD(driver),
		overlay: ui.NewOverlay(driver),
		logger:  logger,
	}
}

// Reset regenerates the bodies with the provided seed. The next frames are
// validated again.
func (g *Game) Reset(seed int64) {
	g.driver.Reset(seed)
	g.hud.Refresh(g.driver)
	g.tickOnce = false
	g.logger.Printf("Using seed: %d", seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.driver.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	g.overlay.Update(g.attractor)

	if g.paused && !g.tickOnce {
		return nil
	}
	g.tickOnce = false

	x, y := ebiten.CursorPosition()
	report, err := g.driver.Step(x, y)
	if err != nil {
		return err
	}
	report.Log(g.logger)
	g.hud.Observe(report)
	g.attractor = report.Attractor
	return nil
}

// Draw renders the current pixel buffer and the diagnostics.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.driver.Pixels())
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.painter.Size()
}
