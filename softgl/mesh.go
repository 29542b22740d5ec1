package softgl

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []mgl32.Vec3
	Indices  []uint16
}

// Triangles returns the number of triangles in the index list.
func (m *Mesh) Triangles() int { return len(m.Indices) / 3 }

// Cube returns a unit cube centered at the origin.
func Cube() *Mesh {
	const h = 0.5
	m := &Mesh{
		Vertices: []mgl32.Vec3{
			{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
			{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
		},
	}
	quads := [6][4]uint16{
		{4, 5, 6, 7}, // +z
		{1, 0, 3, 2}, // -z
		{5, 1, 2, 6}, // +x
		{0, 4, 7, 3}, // -x
		{7, 6, 2, 3}, // +y
		{0, 1, 5, 4}, // -y
	}
	for _, q := range quads {
		m.Indices = append(m.Indices, q[0], q[1], q[2], q[0], q[2], q[3])
	}
	return m
}

// Sphere returns a sphere of diameter 1 centered at the origin.
func Sphere(stacks, slices int) *Mesh {
	stacks = max(stacks, 2)
	slices = max(slices, 3)
	const radius = 0.5

	m := &Mesh{
		Vertices: make([]mgl32.Vec3, 0, (stacks+1)*(slices+1)),
		Indices:  make([]uint16, 0, stacks*slices*6),
	}
	for i := 0; i <= stacks; i++ {
		phi := math32.Pi * float32(i) / float32(stacks)
		sp, cp := math32.Sincos(phi)
		for j := 0; j <= slices; j++ {
			theta := 2 * math32.Pi * float32(j) / float32(slices)
			st, ct := math32.Sincos(theta)
			m.Vertices = append(m.Vertices, mgl32.Vec3{radius * sp * ct, radius * cp, radius * sp * st})
		}
	}
	row := slices + 1
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint16(i*row + j)
			b := uint16((i+1)*row + j)
			m.Indices = append(m.Indices, a, b, b+1, a, b+1, a+1)
		}
	}
	return m
}

// Cylinder returns a capped cylinder of height 1 and diameter 1 along Y.
func Cylinder(slices int) *Mesh {
	slices = max(slices, 3)
	const radius, h = 0.5, 0.5

	m := &Mesh{
		Vertices: make([]mgl32.Vec3, 0, 2*slices+2),
		Indices:  make([]uint16, 0, slices*12),
	}
	for j := 0; j < slices; j++ {
		theta := 2 * math32.Pi * float32(j) / float32(slices)
		st, ct := math32.Sincos(theta)
		m.Vertices = append(m.Vertices,
			mgl32.Vec3{radius * ct, -h, radius * st},
			mgl32.Vec3{radius * ct, h, radius * st},
		)
	}
	bottom := uint16(len(m.Vertices))
	top := bottom + 1
	m.Vertices = append(m.Vertices, mgl32.Vec3{0, -h, 0}, mgl32.Vec3{0, h, 0})

	for j := 0; j < slices; j++ {
		b0 := uint16(2 * j)
		t0 := b0 + 1
		b1 := uint16(2 * ((j + 1) % slices))
		t1 := b1 + 1
		m.Indices = append(m.Indices,
			b0, t0, t1, b0, t1, b1, // side
			bottom, b1, b0, // bottom cap
			top, t0, t1, // top cap
		)
	}
	return m
}

// Torus returns a ring in the XZ plane centered at the origin. major is the
// distance from the center to the tube axis and minor the tube radius.
func Torus(major, minor float32, segU, segV int) *Mesh {
	segU = max(segU, 3)
	segV = max(segV, 3)

	m := &Mesh{
		Vertices: make([]mgl32.Vec3, 0, segU*segV),
		Indices:  make([]uint16, 0, segU*segV*6),
	}
	for u := 0; u < segU; u++ {
		st, ct := math32.Sincos(2 * math32.Pi * float32(u) / float32(segU))
		for v := 0; v < segV; v++ {
			sp, cp := math32.Sincos(2 * math32.Pi * float32(v) / float32(segV))
			r := major + minor*cp
			m.Vertices = append(m.Vertices, mgl32.Vec3{r * ct, minor * sp, r * st})
		}
	}

	idx := func(u, v int) uint16 {
		return uint16((u%segU)*segV + v%segV)
	}
	for u := 0; u < segU; u++ {
		for v := 0; v < segV; v++ {
			i0 := idx(u, v)
			i1 := idx(u+1, v)
			i2 := idx(u+1, v+1)
			i3 := idx(u, v+1)
			m.Indices = append(m.Indices, i0, i1, i2, i0, i2, i3)
		}
	}
	return m
}
