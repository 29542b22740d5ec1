package tank

import (
	"fmt"

	"tanksim/xform"
)

// Well-known node names.
const (
	NodeScene     = "scene"
	NodeFloor     = "floor"
	NodeTank      = "tank"
	NodeChassis   = "chassis"
	NodeBody      = "body"
	NodeMount     = "cannon-mount"
	NodeTurret    = "turret"
	NodeCannonTip = "cannon-tip"
)

var (
	tileDark    = Color{0, 0, 0}
	tileLight   = Color{1, 0.6, 0.2}
	wheelColor  = Color{0, 0.3, 0}
	axleColor   = Color{0, 1, 0}
	beamColor   = Color{0, 0, 1}
	hullColor   = Color{0, 0.1, 0}
	upperColor  = Color{0, 0.15, 0}
	mountColor  = Color{0.1, 0.2, 0.05}
	domeColor   = Color{1, 0.3, 0}
	barrelColor = Color{0.1, 0.3, 0.1}
	breechColor = Color{0, 0.5, 0}
	shellColor  = Color{1, 0, 0}
)

// turretPivot is the point the cannon turns and elevates about, in tank space.
var turretPivot = [3]float32{-WheelSize, turretHeight, 0}

func group(name string, t Transform, children ...*Node) *Node {
	return &Node{Name: name, Transform: t, Children: children}
}

func leaf(name string, prim Primitive, c Color, t Transform) *Node {
	return &Node{Name: name, Transform: t, Shape: &Shape{Prim: prim, Color: c}}
}

func at(x, y, z float32) Transform {
	return func(s *xform.Stack, _ *Pose) { s.Translate(x, y, z) }
}

// NewScene builds the floor and the tank.
func NewScene() *Graph {
	return NewGraph(group(NodeScene, nil, floor(), tankAssembly()))
}

func floor() *Node {
	tiles := make([]*Node, 0, GridSize*GridSize)
	for i := 0; i < GridSize; i++ {
		for j := 0; j < GridSize; j++ {
			c := tileLight
			if (i+j)%2 == 0 {
				c = tileDark
			}
			x := float32(-(GridSize / 2) + j)
			z := float32(-(GridSize / 2) + i)
			tiles = append(tiles, leaf(fmt.Sprintf("tile-%d-%d", i, j), Cube, c, func(s *xform.Stack, _ *Pose) {
				s.Translate(x, -TileThickness, z)
				s.Scale(TileSize, TileThickness, TileSize)
			}))
		}
	}
	return group(NodeFloor, nil, tiles...)
}

func tankAssembly() *Node {
	return group(NodeTank, func(s *xform.Stack, p *Pose) { s.Translate(p.HullOffset, HullLift, 0) },
		chassis(),
		body(),
		cannonMount(),
	)
}

func chassis() *Node {
	return group(NodeChassis, nil,
		wheelPair("wheels-0", 0),
		wheelPair("wheels-+2", WheelSize*2),
		wheelPair("wheels--2", -WheelSize*2),
		wheelPair("wheels--4", -WheelSize*4),
		wheelPair("wheels-+4", WheelSize*4),
		idlerPair("idlers-+6", WheelSize*6),
		idlerPair("idlers--6", -WheelSize*6),
		leaf("beam", Cylinder, beamColor, func(s *xform.Stack, _ *Pose) {
			s.Translate(0, deckHeight, 0)
			s.RotateZ(90)
			s.RotateY(90)
			s.Scale(AxleSize, WheelSize*8, 0.01)
		}),
	)
}

func wheelPair(name string, x float32) *Node {
	return group(name, at(x, 0, 0),
		leaf(name+"/axle", Cylinder, axleColor, func(s *xform.Stack, p *Pose) {
			s.Translate(0, WheelSize/2, 0)
			s.RotateZ(p.WheelAngleDeg)
			s.RotateX(90)
			s.Scale(AxleSize, AxleLength, AxleSize)
		}),
		wheel(name+"/left", -AxleLength/2),
		wheel(name+"/right", AxleLength/2),
	)
}

func idlerPair(name string, x float32) *Node {
	return group(name, at(x, WheelSize, 0),
		wheel(name+"/left", -AxleLength/2),
		wheel(name+"/right", AxleLength/2),
	)
}

// wheel is a torus standing in the XY plane, spun about Z by the rolled angle.
func wheel(name string, z float32) *Node {
	return leaf(name, Torus, wheelColor, func(s *xform.Stack, p *Pose) {
		s.Translate(0, 0, z)
		s.Translate(0, WheelSize/2, 0)
		s.RotateZ(p.WheelAngleDeg)
		s.RotateX(90)
		s.Scale(WheelSize, WheelSize, WheelSize)
	})
}

func body() *Node {
	const width = AxleLength - WheelSize/2.5
	return group(NodeBody, nil,
		leaf("hull", Cube, hullColor, func(s *xform.Stack, _ *Pose) {
			s.Translate(0, deckHeight+MainBodyLength/16, 0)
			s.Scale(MainBodyLength, MainBodyLength/8, width)
		}),
		leaf("upper-hull", Cube, upperColor, func(s *xform.Stack, _ *Pose) {
			s.Translate(0, deckHeight+5*MainBodyLength/32, 0)
			s.Scale(MainBodyLength/1.5, MainBodyLength/16, width)
		}),
		leaf("hatch", Cylinder, hullColor, func(s *xform.Stack, _ *Pose) {
			s.Translate(MainBodyLength/4, deckHeight+6*MainBodyLength/32+WheelSize/16, -WheelSize*1.5)
			s.Scale(AxleLength/4, WheelSize/8, AxleLength/4)
		}),
		leaf("lower-mount", Cylinder, mountColor, func(s *xform.Stack, _ *Pose) {
			s.Translate(-WheelSize, deckHeight+7*MainBodyLength/32, 0)
			s.Scale(AxleLength-WheelSize, MainBodyLength/16, AxleLength-WheelSize)
		}),
	)
}

func cannonMount() *Node {
	return group(NodeMount, nil,
		leaf("dome", Sphere, domeColor, func(s *xform.Stack, p *Pose) {
			s.Translate(-WheelSize, deckHeight+MainBodyLength/4, 0)
			s.RotateY(p.CannonAzimuthDeg)
			s.RotateZ(p.CannonElevationDeg)
			s.Scale(AxleLength/2, AxleLength/2, AxleLength/2)
		}),
		group(NodeTurret, aimTurret,
			leaf("barrel", Cylinder, barrelColor, func(s *xform.Stack, _ *Pose) {
				s.Translate(AxleLength/2, turretHeight, 0)
				s.RotateZ(90)
				s.Scale(AxleSize, AxleLength*1.5, AxleSize)
			}),
			leaf("breech", Cube, breechColor, func(s *xform.Stack, _ *Pose) {
				s.Translate(-(WheelSize + AxleLength/6), deckHeight+MainBodyLength/4+AxleLength/4-MainBodyLength/32, 0)
				s.Scale(AxleLength/3, MainBodyLength/16, AxleLength/2)
			}),
			leaf(NodeCannonTip, Cube, breechColor, func(s *xform.Stack, _ *Pose) {
				s.Translate(AxleLength*1.5+AxleSize/2-AxleLength/4, turretHeight, 0)
				s.Scale(AxleSize, AxleSize*1.5, AxleSize*2)
			}),
			leaf("turret-lid", Cylinder, hullColor, func(s *xform.Stack, _ *Pose) {
				s.Translate(-(WheelSize/2 + AxleLength/4), deckHeight+MainBodyLength/4+AxleLength/4+WheelSize/16, -WheelSize/2)
				s.Scale(AxleLength/4, WheelSize/8, AxleLength/4)
			}),
		),
	)
}

// aimTurret turns about the pivot's vertical axis, then elevates about the pivot's
// Z axis. Both rotations are bracketed by a move to the pivot and back.
func aimTurret(s *xform.Stack, p *Pose) {
	px, py, pz := turretPivot[0], turretPivot[1], turretPivot[2]

	s.Translate(px, py, pz)
	s.RotateY(p.CannonAzimuthDeg)
	s.Translate(-px, -py, -pz)

	s.Translate(px, py, pz)
	s.RotateZ(p.CannonElevationDeg)
	s.Translate(-px, -py, -pz)
}
