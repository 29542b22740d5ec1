//go:build cgo

package hal

import (
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// hostAudio plays tones through Ebiten's audio package. The audio context is
// created on first use.
type hostAudio struct {
	mu     sync.Mutex
	logger Logger

	ctx    *audio.Context
	player *audio.Player
	failed bool
}

func newHostAudio(logger Logger) *hostAudio {
	return &hostAudio{logger: logger}
}

func (a *hostAudio) Tone(freqHz float64, dur time.Duration) error {
	pcm := toneSamples(freqHz, dur, toneSampleRate)
	if pcm == nil {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.failed {
		return ErrNotImplemented
	}
	if a.ctx == nil {
		a.ctx = audio.CurrentContext()
		if a.ctx == nil {
			a.ctx = audio.NewContext(toneSampleRate)
		}
		if a.ctx.SampleRate() != toneSampleRate {
			a.failed = true
			err := fmt.Errorf("host audio: context sample rate is %d, want %d", a.ctx.SampleRate(), toneSampleRate)
			a.logger.WriteLineString(err.Error())
			return err
		}
	}

	// A new shot cuts the previous tone short.
	if a.player != nil {
		_ = a.player.Close()
	}
	a.player = a.ctx.NewPlayerFromBytes(pcm)
	a.player.Play()
	return nil
}
