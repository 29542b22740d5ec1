package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/tinyfont"
)

// recoverPanic turns a panic in the render tick into a panic screen and an
// error. With KeepPanicScreen the error is only logged and later steps are no-ops.
func (t *Task) recoverPanic(err *error) {
	v := recover()
	if v == nil {
		return
	}
	stack := debug.Stack()
	t.halted = true
	t.log.Error().
		Interface("panic", v).
		Str("stack", string(stack)).
		Msg("render tick panicked")

	if t.fb != nil {
		t.drawPanic(v, stack)
	}
	if t.cfg.KeepPanicScreen {
		return
	}
	*err = fmt.Errorf("app: render tick panicked: %v", v)
}

var panicText = color.RGBA{R: 0, G: 0, B: 0, A: 255}

func (t *Task) drawPanic(v any, stack []byte) {
	fb := t.fb
	fb.ClearRGB(255, 255, 255)

	font := t.hud.font
	fontHeight := t.hud.lineHeight
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 || fontHeight <= 0 {
		_ = fb.Present()
		return
	}

	lines := []string{
		"tanksim panic:",
		fmt.Sprintf("%v", v),
		"stack:",
	}
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
	}

	d := &fbDisplayer{fb: fb}
	maxH := int16(fb.Height())
	cols := int16(fb.Width()) / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := fontHeight
	for _, line := range lines {
		for len(line) > 0 {
			if y > maxH {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, y, chunk, panicText)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

// takeRunes splits s after at most n runes.
func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
