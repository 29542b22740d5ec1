package app

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"tanksim/hal"
	"tanksim/internal/buildinfo"
)

var (
	hudTitle = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	hudText  = color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF}
)

var keyHelp = []string{
	"up/down move  a/d turn  w/s aim  space fire",
	"1-4 view  +/- zoom  W wire  S fill",
}

type hud struct {
	font       tinyfont.Fonter
	lineHeight int16
}

func newHUD() *hud {
	f := &proggy.TinySZ8pt7b
	return &hud{font: f, lineHeight: int16(f.GetYAdvance())}
}

// status returns the HUD lines for the current frame.
func (t *Task) status() []string {
	p := t.sim.Pose
	lines := []string{
		buildinfo.Title(),
		fmt.Sprintf("view %s  zoom %.1f  %s", p.View, p.Zoom, p.Mode),
		fmt.Sprintf("azimuth %.0f  elevation %.0f  hull %.1f", p.CannonAzimuthDeg, p.CannonElevationDeg, p.HullOffset),
		fmt.Sprintf("shells %d", t.sim.Shots.Len()),
	}
	return append(lines, keyHelp...)
}

func (h *hud) draw(fb hal.Framebuffer, lines []string) {
	d := &fbDisplayer{fb: fb}
	y := h.lineHeight
	for i, s := range lines {
		c := hudText
		if i == 0 {
			c = hudTitle
		}
		tinyfont.WriteLine(d, h.font, 4, y, s, c)
		y += h.lineHeight
	}
}

// fbDisplayer lets tinyfont draw into an RGB565 framebuffer.
type fbDisplayer struct {
	fb hal.Framebuffer
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	pixel := rgb565From888(c.R, c.G, c.B)
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}
