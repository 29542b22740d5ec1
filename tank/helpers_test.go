package tank

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-4

type drawCall struct {
	Prim  Primitive
	Mode  DrawMode
	Color Color
	MV    mgl32.Mat4
}

// recorder is a Painter that checks every Draw follows exactly one Upload.
type recorder struct {
	t       *testing.T
	pending bool
	color   Color
	mv      mgl32.Mat4
	calls   []drawCall
}

func newRecorder(t *testing.T) *recorder { return &recorder{t: t} }

func (r *recorder) Upload(c Color, mv mgl32.Mat4) {
	if r.pending {
		r.t.Fatalf("Upload() twice without Draw (after %d draws)", len(r.calls))
	}
	r.pending = true
	r.color = c
	r.mv = mv
}

func (r *recorder) Draw(p Primitive, mode DrawMode) {
	if !r.pending {
		r.t.Fatalf("Draw(%v) without Upload (after %d draws)", p, len(r.calls))
	}
	r.pending = false
	r.calls = append(r.calls, drawCall{Prim: p, Mode: mode, Color: r.color, MV: r.mv})
}

func newTestSim() *Sim { return New(Options{}, zerolog.Nop()) }

func origin(m mgl32.Mat4) mgl32.Vec4 { return m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}) }

// assertNear3 compares component-wise with an absolute tolerance, so float32
// noise around zero does not fail the check.
func assertNear3(t *testing.T, want, got mgl32.Vec3, msgAndArgs ...any) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, msgAndArgs...)
	}
}

func assertNear4(t *testing.T, want, got mgl32.Vec4, msgAndArgs ...any) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, msgAndArgs...)
	}
}

func assertNearMat(t *testing.T, want, got mgl32.Mat4, msgAndArgs ...any) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, msgAndArgs...)
	}
}
