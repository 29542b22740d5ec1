package hal

import (
	"testing"
	"time"
)

func drain(ch <-chan uint64) (n int, last uint64) {
	for {
		select {
		case v := <-ch:
			n++
			last = v
		default:
			return n, last
		}
	}
}

func TestHostTimeTicks(t *testing.T) {
	now := time.Unix(0, 0)
	ht := newHostTime()
	ht.now = func() time.Time { return now }

	ht.step()
	if n, _ := drain(ht.Ticks()); n != 0 {
		t.Fatalf("first step emitted %d ticks", n)
	}

	now = now.Add(16*time.Millisecond + 600*time.Microsecond)
	ht.step()
	if n, last := drain(ht.Ticks()); n != 16 || last != 16 {
		t.Fatalf("got %d ticks (last %d), want 16", n, last)
	}

	// The leftover 0.6ms carries into the next frame.
	now = now.Add(500 * time.Microsecond)
	ht.step()
	if n, last := drain(ht.Ticks()); n != 1 || last != 17 {
		t.Fatalf("got %d ticks (last %d), want 1", n, last)
	}
}
