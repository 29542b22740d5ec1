package tank

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"tanksim/xform"
)

// Options tunes the simulation. Zero fields take the package defaults.
type Options struct {
	// Step is the time advanced by Tick, in seconds.
	Step    float32
	Gravity float32
	View    View
	Zoom    float32
}

// Sim owns all mutable scene state: the pose, the shells and the transform stack.
// It is driven by one caller, one tick at a time.
type Sim struct {
	Pose  Pose
	Shots *Projectiles

	scene  *Graph
	stack  *xform.Stack
	step   float32
	frames uint64
	log    zerolog.Logger
}

// New returns a simulation in the resting pose.
func New(opts Options, log zerolog.Logger) *Sim {
	s := &Sim{
		Pose:  NewPose(),
		Shots: NewProjectiles(),
		scene: NewScene(),
		stack: xform.New(),
		step:  opts.Step,
		log:   log,
	}
	if s.step <= 0 {
		s.step = FrameStep
	}
	if opts.Gravity != 0 {
		s.Shots.Gravity = opts.Gravity
	}
	if opts.View.Valid() {
		s.Pose.View = opts.View
	}
	if opts.Zoom >= MinZoom {
		s.Pose.Zoom = opts.Zoom
	}
	return s
}

// Scene returns the scene hierarchy.
func (s *Sim) Scene() *Graph { return s.scene }

// Frames returns the number of completed ticks.
func (s *Sim) Frames() uint64 { return s.frames }

// ViewMatrix returns the camera transform for the current pose.
func (s *Sim) ViewMatrix() mgl32.Mat4 { return ViewMatrix(s.Pose.View, s.Pose.Zoom) }

// Projection returns the projection for the current zoom.
func (s *Sim) Projection(aspect float32) mgl32.Mat4 { return Projection(s.Pose.Zoom, aspect) }

// CannonTip returns the world transform of the cannon tip for the current pose.
func (s *Sim) CannonTip() mgl32.Mat4 {
	m, ok := s.scene.Resolve(NodeCannonTip, &s.Pose)
	if !ok {
		panic("tank: scene has no " + NodeCannonTip + " node")
	}
	return m
}

// Fire spawns a shell from the cannon tip.
func (s *Sim) Fire() Projectile {
	view := s.ViewMatrix()
	p := s.Shots.Fire(view.Mul4(s.CannonTip()), view)
	s.log.Debug().
		Float32("x", p.Position.X()).
		Float32("y", p.Position.Y()).
		Float32("z", p.Position.Z()).
		Int("live", s.Shots.Len()).
		Msg("shell fired")
	return p
}

// Tick renders one frame and advances the shells by the fixed step.
func (s *Sim) Tick(pt Painter) { s.TickDuration(pt, s.step) }

// TickDuration renders one frame and advances the shells by dt seconds.
func (s *Sim) TickDuration(pt Painter, dt float32) {
	s.stack.Begin(s.ViewMatrix())
	s.scene.Draw(s.stack, &s.Pose, pt)
	if n := s.Shots.Step(dt); n > 0 {
		s.log.Debug().Int("landed", n).Int("live", s.Shots.Len()).Msg("shells removed")
	}
	s.Shots.Draw(s.stack, s.Pose.Mode, pt)
	s.stack.End()
	s.frames++
}
