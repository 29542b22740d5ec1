package app

import "tanksim/hal"

// keyName converts a key press to the key name the controller understands.
// Releases are ignored.
func keyName(ev hal.KeyEvent) (string, bool) {
	if !ev.Press {
		return "", false
	}
	switch ev.Code {
	case hal.KeyUp:
		return "ArrowUp", true
	case hal.KeyDown:
		return "ArrowDown", true
	case hal.KeyLeft:
		return "ArrowLeft", true
	case hal.KeyRight:
		return "ArrowRight", true
	case hal.KeyEnter:
		return "Enter", true
	case hal.KeyEscape:
		return "Escape", true
	}
	if ev.Rune == 0 {
		return "", false
	}
	return string(ev.Rune), true
}
