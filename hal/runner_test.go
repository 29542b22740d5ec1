package hal

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

var quiet = HostConfig{Logger: &hostLogger{w: io.Discard}}

func TestRunHeadlessTicks(t *testing.T) {
	steps := 0
	var fbW, fbH int
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		fb := h.Display().Framebuffer()
		fbW, fbH = fb.Width(), fb.Height()
		return func() error {
			steps++
			return nil
		}
	}, HeadlessConfig{Hz: 1000, Ticks: 5, Host: HostConfig{Width: 64, Height: 48, Logger: quiet.Logger}})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps = %d, want 5", steps)
	}
	if fbW != 64 || fbH != 48 {
		t.Fatalf("framebuffer %dx%d, want 64x48", fbW, fbH)
	}
}

func TestRunHeadlessStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Hz: 1000, Host: quiet})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := RunHeadless(ctx, func(HAL) func() error { return nil }, HeadlessConfig{Hz: 100, Host: quiet})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}

func TestRunTerminal(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")

	steps := 0
	var fb Framebuffer
	err := runTerminal(context.Background(), s, func(h HAL) func() error {
		fb = h.Display().Framebuffer()
		return func() error {
			steps++
			fb.ClearRGB(255, 0, 0)
			return nil
		}
	}, TerminalConfig{Hz: 200, Ticks: 3, Host: quiet})
	if err != nil {
		t.Fatalf("runTerminal: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}
	if fb.Width() <= 0 || fb.Height() <= 0 || fb.Height()%2 != 0 {
		t.Fatalf("framebuffer %dx%d should cover whole cells", fb.Width(), fb.Height())
	}
}
