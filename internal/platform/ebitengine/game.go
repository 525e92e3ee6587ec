package ebitengine

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/robotrun/internal/core"
	"github.com/vovakirdan/robotrun/internal/engine"
	"github.com/vovakirdan/robotrun/internal/scene"
)

// Game implements ebiten.Game on top of the controller.
type Game struct {
	ctx  context.Context
	ctrl *engine.Controller
	win  *Window
	rend *Renderer
	cfg  core.RuntimeConfig
}

// Update polls input and advances the controller by one tick.
func (g *Game) Update() error {
	if g.ctx.Err() != nil || g.win.ShouldClose() {
		return ebiten.Termination
	}
	g.win.PollEvents()
	if err := g.ctrl.Tick(); err != nil {
		if errors.Is(err, engine.ErrTerminated) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw renders the scene onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.rend.SetTarget(screen)
	g.ctrl.Render()
}

// Layout keeps the logical screen at the configured size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens an Ebitengine window sized by cfg and plays s until the window
// is closed or ctx is cancelled.
func Run(ctx context.Context, cfg core.RuntimeConfig, s scene.Scheme, opts ...engine.Option) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowClosingHandled(true)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	win := NewWindow()
	rend := NewRenderer()
	ctrl, err := engine.New(cfg, s, win, rend, opts...)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	g := &Game{ctx: ctx, ctrl: ctrl, win: win, rend: rend, cfg: cfg}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
