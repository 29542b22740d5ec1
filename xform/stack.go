// Package xform implements the model-view matrix stack used to draw hierarchical models.
//
// Every operation right-multiplies into the top of the stack, so transforms issued
// later apply to geometry first: a child is always expressed in its parent's frame.
package xform

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Stack is a stack of 4x4 model-view transforms.
//
// The zero value is not usable; call New.
type Stack struct {
	m []mgl32.Mat4
}

// New returns a stack holding a single identity transform.
func New() *Stack {
	s := &Stack{m: make([]mgl32.Mat4, 1, 16)}
	s.m[0] = mgl32.Ident4()
	return s
}

// Begin starts a frame with base as the current transform.
//
// It panics if a push from the previous frame was never popped.
func (s *Stack) Begin(base mgl32.Mat4) {
	if d := s.Depth(); d != 0 {
		panic(fmt.Sprintf("xform: begin with %d unmatched push(es)", d))
	}
	s.m[0] = base
}

// End checks that every push of the frame was popped.
func (s *Stack) End() {
	if d := s.Depth(); d != 0 {
		panic(fmt.Sprintf("xform: end with %d unmatched push(es)", d))
	}
}

// Depth returns the number of pushes not yet popped.
func (s *Stack) Depth() int { return len(s.m) - 1 }

// Current returns the top transform.
func (s *Stack) Current() mgl32.Mat4 { return s.m[len(s.m)-1] }

// Load replaces the top transform.
func (s *Stack) Load(m mgl32.Mat4) { s.m[len(s.m)-1] = m }

// Push duplicates the top transform.
func (s *Stack) Push() { s.m = append(s.m, s.m[len(s.m)-1]) }

// Pop discards the top transform. Popping without a matching push panics.
func (s *Stack) Pop() {
	if len(s.m) <= 1 {
		panic("xform: pop on empty stack")
	}
	s.m = s.m[:len(s.m)-1]
}

// Mul right-multiplies m into the top transform.
func (s *Stack) Mul(m mgl32.Mat4) {
	top := len(s.m) - 1
	s.m[top] = s.m[top].Mul4(m)
}

func (s *Stack) Translate(x, y, z float32) { s.Mul(mgl32.Translate3D(x, y, z)) }

func (s *Stack) Scale(x, y, z float32) { s.Mul(mgl32.Scale3D(x, y, z)) }

// RotateX rotates about the local X axis. Angles are in degrees.
func (s *Stack) RotateX(deg float32) { s.Mul(mgl32.HomogRotate3DX(mgl32.DegToRad(deg))) }

// RotateY rotates about the local Y axis. Angles are in degrees.
func (s *Stack) RotateY(deg float32) { s.Mul(mgl32.HomogRotate3DY(mgl32.DegToRad(deg))) }

// RotateZ rotates about the local Z axis. Angles are in degrees.
func (s *Stack) RotateZ(deg float32) { s.Mul(mgl32.HomogRotate3DZ(mgl32.DegToRad(deg))) }
