package app

import (
	"github.com/go-gl/mathgl/mgl32"

	"tanksim/softgl"
	"tanksim/tank"
)

// painter feeds the scene draw stream into the software renderer.
type painter struct {
	r      *softgl.Renderer
	meshes [4]*softgl.Mesh
}

func newPainter(r *softgl.Renderer) *painter {
	p := &painter{r: r}
	p.meshes[tank.Cube] = softgl.Cube()
	p.meshes[tank.Sphere] = softgl.Sphere(10, 14)
	p.meshes[tank.Cylinder] = softgl.Cylinder(16)
	p.meshes[tank.Torus] = softgl.Torus(0.4, 0.1, 20, 8)
	return p
}

func (p *painter) Upload(c tank.Color, modelView mgl32.Mat4) {
	p.r.SetUniforms(softgl.RGBf(c.R, c.G, c.B), modelView)
}

func (p *painter) Draw(prim tank.Primitive, mode tank.DrawMode) {
	if int(prim) >= len(p.meshes) {
		return
	}
	p.r.Draw(p.meshes[prim], renderMode(mode))
}

func renderMode(m tank.DrawMode) softgl.RenderMode {
	if m == tank.DrawWireframe {
		return softgl.RenderWireframe
	}
	return softgl.RenderSolidFlat
}
