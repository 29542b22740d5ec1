//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window host.
type WindowConfig struct {
	Title  string
	Width  int // framebuffer width in pixels
	Height int // framebuffer height in pixels
	// Scale is the number of window pixels per framebuffer pixel.
	Scale int
	TPS   int
	Host  HostConfig
}

// RunWindow starts a resizable desktop window that displays the framebuffer and
// forwards keyboard input. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	cfg.Host.Width, cfg.Host.Height = cfg.Width, cfg.Height
	h := newHost(cfg.Host)
	step := newApp(h)

	g := &hostGame{h: h, step: step, scale: cfg.Scale}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(h.fb.Width()*cfg.Scale, h.fb.Height()*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	step  func() error
	scale int

	pix   []byte
	fbImg *ebiten.Image
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.t.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	var w, h int
	g.pix, w, h = g.h.fb.snapshotRGBA(g.pix)
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

// Layout follows the window size so the framebuffer is resized with it. The app
// sees the new size on its next step.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.h.fb.Resize(outsideWidth/g.scale, outsideHeight/g.scale)
	return g.h.fb.Width(), g.h.fb.Height()
}
