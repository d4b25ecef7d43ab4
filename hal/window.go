package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Screen is the drawing surface handed to the app once per frame.
type Screen = ebiten.Image

// WindowApp is an App that can also draw itself.
type WindowApp interface {
	App
	Render(screen *Screen)
}

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

// RunWindow opens a desktop window and drives the app at a fixed tick rate,
// polling the keyboard once per tick before the app steps. It blocks until
// the window closes or the app returns an error.
func RunWindow(cfg WindowConfig, kbd *Keyboard, app WindowApp) error {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	g := &game{kbd: kbd, app: app, width: cfg.Width, height: cfg.Height}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type game struct {
	kbd    *Keyboard
	app    WindowApp
	width  int
	height int
}

func (g *game) Update() error {
	g.kbd.Poll()
	return g.app.Step()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.app.Render(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
