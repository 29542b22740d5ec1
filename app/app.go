package app

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"tanksim/hal"
	"tanksim/softgl"
	"tanksim/tank"
)

// Config tunes the render task.
type Config struct {
	Sim tank.Options
	// Realtime integrates measured frame time instead of Sim.Step.
	Realtime bool
	HUD      bool

	Audio   bool
	ToneHz  float64
	ToneDur time.Duration

	// KeepPanicScreen leaves the panic report on screen and keeps stepping
	// without error instead of stopping the host.
	KeepPanicScreen bool
}

// maxFrameTime bounds a realtime step after a stall.
const maxFrameTime = 0.25

var clearColor = softgl.RGB(0x08, 0x0C, 0x18)

// Task is the render tick: it applies queued key presses, renders the scene and
// the shells, draws the HUD and presents the frame.
type Task struct {
	cfg Config
	log zerolog.Logger

	fb    hal.Framebuffer
	keys  <-chan hal.KeyEvent
	ticks <-chan uint64
	aud   hal.Audio

	sim     *tank.Sim
	ctl     *tank.Controller
	r       *softgl.Renderer
	painter *painter
	hud     *hud

	w, h      int
	audioDown bool
	halted    bool
}

// New wires a simulation to the devices of h.
func New(h hal.HAL, cfg Config, log zerolog.Logger) *Task {
	t := &Task{
		cfg: cfg,
		log: log,
		sim: tank.New(cfg.Sim, log),
	}
	if d := h.Display(); d != nil {
		t.fb = d.Framebuffer()
	}
	if in := h.Input(); in != nil && in.Keyboard() != nil {
		t.keys = in.Keyboard().Events()
	}
	if tm := h.Time(); tm != nil && cfg.Realtime {
		t.ticks = tm.Ticks()
	}
	t.aud = h.Audio()

	t.r = softgl.NewRenderer(0, 0, true)
	t.r.ClearColor = clearColor
	t.painter = newPainter(t.r)
	t.hud = newHUD()

	t.ctl = tank.NewController(t.sim)
	t.ctl.OnFire = t.onFire

	t.log.Info().
		Str("view", t.sim.Pose.View.String()).
		Float32("zoom", t.sim.Pose.Zoom).
		Bool("realtime", cfg.Realtime).
		Msg("scene ready")
	return t
}

// Sim returns the simulation driven by the task.
func (t *Task) Sim() *tank.Sim { return t.sim }

// Step runs one render tick.
func (t *Task) Step() (err error) {
	if t.halted {
		return nil
	}
	defer t.recoverPanic(&err)

	t.drainKeys()
	if t.fb == nil || t.fb.Format() != hal.PixelFormatRGB565 {
		t.tick(discard{})
		return nil
	}
	t.checkResize()

	target := &softgl.RGB565Target{
		Buf:    t.fb.Buffer(),
		Stride: t.fb.StrideBytes(),
		W:      t.w,
		H:      t.h,
	}
	t.r.Begin(target, t.sim.Projection(float32(t.w)/float32(t.h)))
	t.tick(t.painter)

	if t.cfg.HUD {
		t.hud.draw(t.fb, t.status())
	}
	return t.fb.Present()
}

func (t *Task) drainKeys() {
	for {
		select {
		case ev := <-t.keys:
			name, ok := keyName(ev)
			if !ok {
				continue
			}
			if t.ctl.KeyDown(name) {
				p := t.sim.Pose
				t.log.Debug().
					Str("key", name).
					Float32("hull", p.HullOffset).
					Float32("azimuth", p.CannonAzimuthDeg).
					Float32("elevation", p.CannonElevationDeg).
					Msg("key applied")
			}
		default:
			return
		}
	}
}

func (t *Task) checkResize() {
	w, h := t.fb.Width(), t.fb.Height()
	if w == t.w && h == t.h {
		return
	}
	t.log.Debug().Int("width", w).Int("height", h).Msg("framebuffer resized")
	t.w, t.h = w, h
	t.r.EnableDepth(true, w, h)
}

func (t *Task) tick(pt tank.Painter) {
	if t.ticks == nil {
		t.sim.Tick(pt)
		return
	}
	t.sim.TickDuration(pt, t.elapsed())
}

// elapsed drains the millisecond tick stream and returns the time it covers.
func (t *Task) elapsed() float32 {
	var n int
	for {
		select {
		case <-t.ticks:
			n++
		default:
			return min(float32(n)/1000, maxFrameTime)
		}
	}
}

func (t *Task) onFire(p tank.Projectile) {
	if !t.cfg.Audio || t.aud == nil || t.audioDown {
		return
	}
	if err := t.aud.Tone(t.cfg.ToneHz, t.cfg.ToneDur); err != nil {
		t.audioDown = true
		t.log.Warn().Err(err).Msg("fire tone unavailable, audio disabled")
	}
}

type discard struct{}

func (discard) Upload(tank.Color, mgl32.Mat4) {}
func (discard) Draw(tank.Primitive, tank.DrawMode) {}
