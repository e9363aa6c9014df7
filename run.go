package pegdrop

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// Width and Height are the window size; zero uses the scene size.
	Width, Height int
	// ShowFPS prints FPS/TPS in the top-left corner.
	ShowFPS bool
}

type game struct {
	scene   *Scene
	showFPS bool
}

func (g *game) Update() error {
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	cfg := g.scene.cfg
	return int(cfg.Width), int(cfg.Height)
}

// Run opens a window and drives scene until the window is closed.
func Run(scene *Scene, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w == 0 || h == 0 {
		w, h = int(scene.cfg.Width), int(scene.cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(scene.cfg.TPS)
	if err := ebiten.RunGame(&game{scene: scene, showFPS: cfg.ShowFPS}); err != nil {
		return fmt.Errorf("run %q: %w", cfg.Title, err)
	}
	return nil
}
