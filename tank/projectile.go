package tank

import (
	"github.com/go-gl/mathgl/mgl32"

	"tanksim/xform"
)

// Projectile is a shell in flight. Position is a point (w=1) and Velocity a
// direction (w=0), both in world space.
type Projectile struct {
	Position mgl32.Vec4
	Velocity mgl32.Vec4
}

// Projectiles owns the live shells and integrates them under constant gravity.
type Projectiles struct {
	Gravity float32
	// Ground is the height at or below which a shell is removed.
	Ground float32

	live []Projectile
}

// NewProjectiles returns an empty set with the default gravity and ground height.
func NewProjectiles() *Projectiles {
	return &Projectiles{Gravity: Gravity, Ground: GroundThreshold}
}

// Fire spawns a shell at the cannon tip. cannonMV is the tip's model-view
// transform and view the camera transform it was composed with; view must be
// invertible.
func (ps *Projectiles) Fire(cannonMV, view mgl32.Mat4) Projectile {
	if mgl32.FloatEqual(view.Det(), 0) {
		panic("tank: fire with a non-invertible view transform")
	}
	return ps.Spawn(view.Inv().Mul4(cannonMV))
}

// Spawn adds a shell leaving the origin of the world transform wc at the
// muzzle speed along wc's local X axis.
func (ps *Projectiles) Spawn(wc mgl32.Mat4) Projectile {
	pos := wc.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	dir := normalMatrix(wc).Mul3x1(mgl32.Vec3{MuzzleSpeed, 0, 0})
	p := Projectile{Position: pos, Velocity: dir.Vec4(0)}
	ps.live = append(ps.live, p)
	return p
}

// normalMatrix is the inverse-transpose of the linear part of m.
func normalMatrix(m mgl32.Mat4) mgl32.Mat3 {
	return m.Mat3().Inv().Transpose()
}

// Step advances every shell by dt seconds. Shells that start the step at or
// below the ground are removed without being moved. It returns the number removed.
func (ps *Projectiles) Step(dt float32) int {
	fall := mgl32.Vec4{0, ps.Gravity * dt * dt / 2, 0, 0}
	dv := mgl32.Vec4{0, ps.Gravity * dt, 0, 0}

	kept := ps.live[:0]
	for _, p := range ps.live {
		if p.Position.Y() <= ps.Ground {
			continue
		}
		p.Position = p.Position.Add(p.Velocity.Mul(dt)).Add(fall)
		p.Velocity = p.Velocity.Add(dv)
		kept = append(kept, p)
	}
	removed := len(ps.live) - len(kept)
	clear(ps.live[len(kept):])
	ps.live = kept
	return removed
}

// Draw renders each live shell as a small sphere at its position.
func (ps *Projectiles) Draw(s *xform.Stack, mode DrawMode, pt Painter) {
	const r = AxleSize / 2
	for _, p := range ps.live {
		s.Push()
		s.Translate(p.Position.X(), p.Position.Y(), p.Position.Z())
		s.Scale(r, r, r)
		pt.Upload(shellColor, s.Current())
		pt.Draw(Sphere, mode)
		s.Pop()
	}
}

// Live returns the shells in flight. The slice is only valid until the next Step or Fire.
func (ps *Projectiles) Live() []Projectile { return ps.live }

func (ps *Projectiles) Len() int { return len(ps.live) }

// Reset removes every shell.
func (ps *Projectiles) Reset() {
	clear(ps.live)
	ps.live = ps.live[:0]
}
