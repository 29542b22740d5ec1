package softgl

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Light is a directional light fixed in view space.
type Light struct {
	Ambient float32    // 0..1
	Dir     mgl32.Vec3 // direction *towards* the light
	Amount  float32    // 0..1
}

// DefaultLight lights surfaces facing the viewer, slightly from above.
func DefaultLight() Light {
	return Light{
		Ambient: 0.35,
		Dir:     mgl32.Vec3{0.3, 0.6, 1}.Normalize(),
		Amount:  0.65,
	}
}

// Renderer is an immediate-mode software renderer.
//
// Create it once and reuse it to avoid allocations. A frame is Begin followed by
// any number of SetUniforms/Draw pairs.
type Renderer struct {
	Depth      bool
	ClearColor Color
	Light      Light

	depthBuf []float32

	t     Target
	w, h  int
	proj  mgl32.Mat4
	color Color
	mv    mgl32.Mat4
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Depth:      enableDepth,
		ClearColor: RGB(0, 0, 0),
		Light:      DefaultLight(),
		proj:       mgl32.Ident4(),
		mv:         mgl32.Ident4(),
		color:      RGB(0xFF, 0xFF, 0xFF),
	}
	r.EnableDepth(enableDepth, w, h)
	return r
}

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on || w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Begin starts a frame on t: it clears color and depth and sets the projection.
func (r *Renderer) Begin(t Target, proj mgl32.Mat4) {
	r.t = t
	r.w, r.h = 0, 0
	r.proj = proj
	if t == nil {
		return
	}
	r.w, r.h = t.Size()
	if r.w <= 0 || r.h <= 0 {
		return
	}
	t.Clear(r.ClearColor)
	if r.Depth {
		r.EnableDepth(true, r.w, r.h)
		r.clearDepth()
	}
}

// SetUniforms sets the color and model-view transform used by the next draws.
func (r *Renderer) SetUniforms(c Color, modelView mgl32.Mat4) {
	r.color = c
	r.mv = modelView
}

// Draw rasterizes m with the current uniforms.
func (r *Renderer) Draw(m *Mesh, mode RenderMode) {
	if r.t == nil || r.w <= 0 || r.h <= 0 || m == nil {
		return
	}
	if len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i+0])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}

		e0 := r.mv.Mul4x1(m.Vertices[i0].Vec4(1))
		e1 := r.mv.Mul4x1(m.Vertices[i1].Vec4(1))
		e2 := r.mv.Mul4x1(m.Vertices[i2].Vec4(1))

		ndc0, ok0 := clipToNDC(r.proj.Mul4x1(e0))
		ndc1, ok1 := clipToNDC(r.proj.Mul4x1(e1))
		ndc2, ok2 := clipToNDC(r.proj.Mul4x1(e2))
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		x0, y0 := ndcToScreen(ndc0, r.w, r.h)
		x1, y1 := ndcToScreen(ndc1, r.w, r.h)
		x2, y2 := ndcToScreen(ndc2, r.w, r.h)

		switch mode {
		case RenderWireframe:
			c := r.color
			r.drawLine(x0, y0, x1, y1, c)
			r.drawLine(x1, y1, x2, y2, c)
			r.drawLine(x2, y2, x0, y0, c)
		default:
			n := triangleNormal(e0.Vec3(), e1.Vec3(), e2.Vec3())
			c := r.color.MulScalar(lightIntensity(r.Light, n))
			r.fillTriangleFlat(x0, y0, ndc0.Z(), x1, y1, ndc1.Z(), x2, y2, ndc2.Z(), c)
		}
	}
}

func clipToNDC(p mgl32.Vec4) (mgl32.Vec3, bool) {
	if p.W() <= 0 {
		return mgl32.Vec3{}, false
	}
	return p.Vec3().Mul(1 / p.W()), true
}

func ndcToScreen(p mgl32.Vec3, w, h int) (x, y int) {
	sx := (p.X()*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y()*0.5 + 0.5)) * float32(h-1)
	return int(math32.Floor(sx + 0.5)), int(math32.Floor(sy + 0.5))
}

func triangleNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return n
	}
	return n.Normalize()
}

// lightIntensity lights both faces of a triangle alike, so mirrored transforms
// shade the same as their originals.
func lightIntensity(l Light, n mgl32.Vec3) float32 {
	amb := clampF32(l.Ambient, 0, 1)
	if n.Len() == 0 || l.Dir.Len() == 0 {
		return amb
	}
	d := math32.Abs(n.Dot(l.Dir.Normalize()))
	return clampF32(amb+d*clampF32(l.Amount, 0, 1), 0, 1)
}

func (r *Renderer) depthTest(x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	idx := y*r.w + x
	if x < 0 || y < 0 || x >= r.w || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]. Map to [0,1].
	d := clampF32(z*0.5+0.5, 0, 1)
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

func (r *Renderer) drawLine(x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		r.t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *Renderer) fillTriangleFlat(x0, y0 int, z0 float32, x1, y1 int, z1 float32, x2, y2 int, z2 float32, c Color) {
	minX, maxX := max(min(x0, x1, x2), 0), min(max(x0, x1, x2), r.w-1)
	minY, maxY := max(min(y0, y1, y2), 0), min(max(y0, y1, y2), r.h-1)
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	// Accept either winding.
	if area < 0 {
		x1, y1, z1, x2, y2, z2 = x2, y2, z2, x1, y1, z1
		area = -area
	}
	invArea := 1.0 / float32(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			a0 := float32(w0) * invArea
			a1 := float32(w1) * invArea
			a2 := float32(w2) * invArea
			if !r.depthTest(x, y, a0*z0+a1*z1+a2*z2) {
				continue
			}
			r.t.SetPixel(x, y, c)
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
