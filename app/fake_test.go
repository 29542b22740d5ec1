package app

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"tanksim/hal"
	"tanksim/tank"
)

type fakeFB struct {
	w, h     int
	buf      []byte
	presents int
	// panicOnce makes the next Present panic.
	panicOnce bool
}

func newFakeFB(w, h int) *fakeFB {
	fb := &fakeFB{}
	fb.resize(w, h)
	return fb
}

func (f *fakeFB) resize(w, h int) {
	f.w, f.h = w, h
	f.buf = make([]byte, w*h*2)
}

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *fakeFB) StrideBytes() int        { return f.w * 2 }
func (f *fakeFB) Buffer() []byte          { return f.buf }

func (f *fakeFB) ClearRGB(r, g, b uint8) {
	p := rgb565From888(r, g, b)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = byte(p)
		f.buf[i+1] = byte(p >> 8)
	}
}

func (f *fakeFB) Present() error {
	if f.panicOnce {
		f.panicOnce = false
		panic("present failed")
	}
	f.presents++
	return nil
}

func (f *fakeFB) pixel(x, y int) uint16 {
	off := y*f.w*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

// count returns how many pixels equal p.
func (f *fakeFB) count(p uint16) int {
	n := 0
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			if f.pixel(x, y) == p {
				n++
			}
		}
	}
	return n
}

type tone struct {
	hz  float64
	dur time.Duration
}

type fakeAudio struct {
	tones []tone
	err   error
}

func (a *fakeAudio) Tone(hz float64, dur time.Duration) error {
	a.tones = append(a.tones, tone{hz, dur})
	return a.err
}

type fakeHAL struct {
	fb    *fakeFB
	keys  chan hal.KeyEvent
	ticks chan uint64
	aud   *fakeAudio
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		fb:    newFakeFB(64, 48),
		keys:  make(chan hal.KeyEvent, 64),
		ticks: make(chan uint64, 2048),
		aud:   &fakeAudio{},
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return nil }
func (h *fakeHAL) Display() hal.Display { return h }
func (h *fakeHAL) Input() hal.Input     { return h }
func (h *fakeHAL) Audio() hal.Audio     { return h.aud }
func (h *fakeHAL) Time() hal.Time       { return h }

func (h *fakeHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *fakeHAL) Keyboard() hal.Keyboard       { return h }
func (h *fakeHAL) Events() <-chan hal.KeyEvent  { return h.keys }
func (h *fakeHAL) Ticks() <-chan uint64         { return h.ticks }

func (h *fakeHAL) press(runes string) {
	for _, r := range runes {
		h.keys <- hal.KeyEvent{Press: true, Rune: r}
	}
}

func (h *fakeHAL) pressCode(c hal.KeyCode) {
	h.keys <- hal.KeyEvent{Code: c, Press: true}
	h.keys <- hal.KeyEvent{Code: c, Press: false}
}

var errNoSpeaker = errors.New("no speaker")

func testConfig() Config {
	return Config{
		Sim:     tank.Options{},
		HUD:     true,
		Audio:   true,
		ToneHz:  220,
		ToneDur: 80 * time.Millisecond,
	}
}

func newTestTask(h *fakeHAL, cfg Config) *Task {
	return New(h, cfg, zerolog.Nop())
}
