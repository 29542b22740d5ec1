package hal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the terminal host.
type TerminalConfig struct {
	Hz    int
	Ticks uint64
	Host  HostConfig
}

// halfBlock paints the upper pixel of a cell in the foreground color and the
// lower pixel in the background color, so each cell shows two framebuffer rows.
const halfBlock = '▀'

// RunTerminal presents the framebuffer in the terminal and forwards key presses.
// Escape or Ctrl-C ends the run with a nil error.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return runTerminal(ctx, s, newApp, cfg)
}

func runTerminal(ctx context.Context, s tcell.Screen, newApp func(HAL) func() error, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer s.Fini()

	cols, rows := s.Size()
	cfg.Host.Width, cfg.Host.Height = cols, rows*2
	h := newHost(cfg.Host)
	step := newApp(h)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if ke, ok := keyEvent(ev); ok {
					h.kbd.emit(ke)
				}
			case *tcell.EventResize:
				w, hh := ev.Size()
				h.fb.Resize(w, hh*2)
				s.Sync()
			}

		case <-t.C:
			h.t.step()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			present(s, h.fb)
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

// keyEvent translates a terminal key. Terminals report presses only.
func keyEvent(ev *tcell.EventKey) (KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return KeyEvent{Press: true, Rune: ev.Rune()}, true
	case tcell.KeyUp:
		return KeyEvent{Code: KeyUp, Press: true}, true
	case tcell.KeyDown:
		return KeyEvent{Code: KeyDown, Press: true}, true
	case tcell.KeyLeft:
		return KeyEvent{Code: KeyLeft, Press: true}, true
	case tcell.KeyRight:
		return KeyEvent{Code: KeyRight, Press: true}, true
	case tcell.KeyEnter:
		return KeyEvent{Code: KeyEnter, Press: true}, true
	}
	return KeyEvent{}, false
}

func present(s tcell.Screen, fb *hostFramebuffer) {
	fb.mu.Lock()
	w, h, stride, buf := fb.width, fb.height, fb.stride, fb.buf
	for y := 0; y+1 < h; y += 2 {
		for x := 0; x < w; x++ {
			tr, tg, tb := pixelAt(buf, stride, x, y)
			br, bg, bb := pixelAt(buf, stride, x, y+1)
			st := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(tr), int32(tg), int32(tb))).
				Background(tcell.NewRGBColor(int32(br), int32(bg), int32(bb)))
			s.SetContent(x, y/2, halfBlock, nil, st)
		}
	}
	fb.mu.Unlock()
	s.Show()
}
