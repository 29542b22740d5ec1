package tank

import (
	"github.com/go-gl/mathgl/mgl32"

	"tanksim/xform"
)

// Primitive names one of the meshes provided by the renderer.
type Primitive uint8

const (
	Cube Primitive = iota
	Sphere
	Cylinder
	Torus
)

func (p Primitive) String() string {
	switch p {
	case Cube:
		return "cube"
	case Sphere:
		return "sphere"
	case Cylinder:
		return "cylinder"
	case Torus:
		return "torus"
	}
	return "unknown"
}

// Color is a linear RGB color with channels in [0,1].
type Color struct {
	R, G, B float32
}

// Painter receives the draw stream of a frame.
//
// Upload is always called with the color and model-view transform of the
// primitive drawn by the following Draw.
type Painter interface {
	Upload(c Color, modelView mgl32.Mat4)
	Draw(p Primitive, mode DrawMode)
}

// Shape is the drawable payload of a leaf node.
type Shape struct {
	Prim  Primitive
	Color Color
}

// Transform applies a node's parent-relative transform to the top of s.
type Transform func(s *xform.Stack, p *Pose)

// Node is one part of the scene hierarchy.
type Node struct {
	Name      string
	Transform Transform
	Shape     *Shape
	Children  []*Node
}

// Graph is a fixed scene hierarchy with named nodes.
type Graph struct {
	root  *Node
	paths map[string][]*Node
}

// NewGraph indexes the named nodes under root.
func NewGraph(root *Node) *Graph {
	g := &Graph{root: root, paths: make(map[string][]*Node)}
	g.index(root, nil)
	return g
}

func (g *Graph) index(n *Node, parents []*Node) {
	path := make([]*Node, len(parents)+1)
	copy(path, parents)
	path[len(parents)] = n
	if n.Name != "" {
		if _, dup := g.paths[n.Name]; !dup {
			g.paths[n.Name] = path
		}
	}
	for _, c := range n.Children {
		g.index(c, path)
	}
}

// Root returns the top node.
func (g *Graph) Root() *Node { return g.root }

// Walk visits the hierarchy depth-first in child order. Each node is entered
// with a push and left with a pop, so the stack is unchanged on return.
func (g *Graph) Walk(s *xform.Stack, p *Pose, visit func(n *Node, s *xform.Stack)) {
	walk(g.root, s, p, visit)
}

func walk(n *Node, s *xform.Stack, p *Pose, visit func(*Node, *xform.Stack)) {
	s.Push()
	if n.Transform != nil {
		n.Transform(s, p)
	}
	visit(n, s)
	for _, c := range n.Children {
		walk(c, s, p, visit)
	}
	s.Pop()
}

// Draw renders every shape of the hierarchy through pt.
func (g *Graph) Draw(s *xform.Stack, p *Pose, pt Painter) {
	g.Walk(s, p, func(n *Node, s *xform.Stack) {
		if n.Shape == nil {
			return
		}
		pt.Upload(n.Shape.Color, s.Current())
		pt.Draw(n.Shape.Prim, p.Mode)
	})
}

// Resolve returns the transform of the named node relative to the root's parent
// frame, composed from the root-to-node path only. Nothing is drawn.
func (g *Graph) Resolve(name string, p *Pose) (mgl32.Mat4, bool) {
	path, ok := g.paths[name]
	if !ok {
		return mgl32.Ident4(), false
	}
	s := xform.New()
	for _, n := range path {
		if n.Transform != nil {
			n.Transform(s, p)
		}
	}
	return s.Current(), true
}
