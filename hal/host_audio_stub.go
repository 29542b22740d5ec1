//go:build !cgo

package hal

import "time"

// hostAudio is a stub when CGO/window backends are unavailable.
type hostAudio struct{}

func newHostAudio(Logger) hostAudio { return hostAudio{} }

func (hostAudio) Tone(float64, time.Duration) error { return ErrNotImplemented }
