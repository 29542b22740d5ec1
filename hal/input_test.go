package hal

import (
	"io"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestRepeats(t *testing.T) {
	var fired []int
	for d := 1; d <= repeatDelay+2*repeatInterval; d++ {
		if repeats(d) {
			fired = append(fired, d)
		}
	}
	want := []int{1, repeatDelay, repeatDelay + repeatInterval, repeatDelay + 2*repeatInterval}
	if len(fired) != len(want) {
		t.Fatalf("fired at %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("fired at %v, want %v", fired, want)
		}
	}
}

func TestKeyboardEmitDropsWhenFull(t *testing.T) {
	k := newHostKeyboard()
	for i := 0; i < cap(k.ch)+10; i++ {
		k.emit(KeyEvent{Press: true, Rune: 'x'})
	}
	if len(k.Events()) != cap(k.ch) {
		t.Fatalf("queued %d events, want %d", len(k.Events()), cap(k.ch))
	}
}

func TestTerminalKeyEvent(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want KeyEvent
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), KeyEvent{Press: true, Rune: 'W'}, true},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeyEvent{Press: true, Rune: ' '}, true},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyEvent{Code: KeyUp, Press: true}, true},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), KeyEvent{Code: KeyDown, Press: true}, true},
		{tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), KeyEvent{}, false},
	}
	for _, tt := range tests {
		got, ok := keyEvent(tt.ev)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("keyEvent(%v) = %+v, %v; want %+v, %v", tt.ev.Name(), got, ok, tt.want, tt.ok)
		}
	}
}

func TestToneSamples(t *testing.T) {
	pcm := toneSamples(440, 100*time.Millisecond, 8000)
	if len(pcm) != 800*4 {
		t.Fatalf("len = %d, want %d", len(pcm), 800*4)
	}
	sample := func(i int) int16 { return int16(uint16(pcm[i*4]) | uint16(pcm[i*4+1])<<8) }

	if sample(0) != 0 || sample(799) != 0 {
		t.Fatalf("tone should fade in and out, got %d and %d", sample(0), sample(799))
	}
	var peak int16
	for i := 0; i < 800; i++ {
		s := sample(i)
		if s < 0 {
			s = -s
		}
		peak = max(peak, s)
		if pcm[i*4] != pcm[i*4+2] || pcm[i*4+1] != pcm[i*4+3] {
			t.Fatalf("sample %d differs between channels", i)
		}
	}
	if peak == 0 || float64(peak) > toneVolume*32767+1 {
		t.Fatalf("peak = %d", peak)
	}

	if toneSamples(0, time.Second, 8000) != nil || toneSamples(440, 0, 8000) != nil {
		t.Fatal("empty tone should render no samples")
	}
}

func TestSilentAudio(t *testing.T) {
	h := New(HostConfig{Logger: &hostLogger{w: io.Discard}})
	if err := h.Audio().Tone(440, time.Millisecond); err != nil {
		t.Fatalf("Tone with audio disabled: %v", err)
	}
}
