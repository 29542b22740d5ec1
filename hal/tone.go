package hal

import (
	"math"
	"time"
)

const (
	toneSampleRate = 44100
	toneVolume     = 0.25
	// toneFade ramps the start and end of a tone to avoid clicks.
	toneFade = 5 * time.Millisecond
)

// toneSamples renders a sine tone as 16-bit little-endian stereo PCM.
func toneSamples(freqHz float64, dur time.Duration, rate int) []byte {
	n := int(dur.Seconds() * float64(rate))
	if n <= 0 || freqHz <= 0 {
		return nil
	}
	fade := int(toneFade.Seconds() * float64(rate))
	fade = min(fade, n/2)

	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		amp := toneVolume
		switch {
		case fade > 0 && i < fade:
			amp *= float64(i) / float64(fade)
		case fade > 0 && i >= n-fade:
			amp *= float64(n-1-i) / float64(fade)
		}
		v := int16(amp * math.MaxInt16 * math.Sin(2*math.Pi*freqHz*float64(i)/float64(rate)))
		j := i * 4
		out[j+0] = byte(v)
		out[j+1] = byte(v >> 8)
		out[j+2] = byte(v)
		out[j+3] = byte(v >> 8)
	}
	return out
}
