package tank

import "github.com/chewxy/math32"

// View selects one of the fixed camera presets.
type View uint8

const (
	ViewFront View = iota + 1
	ViewTop
	ViewSide
	ViewAxonometric
)

func (v View) String() string {
	switch v {
	case ViewFront:
		return "front"
	case ViewTop:
		return "top"
	case ViewSide:
		return "side"
	case ViewAxonometric:
		return "axonometric"
	}
	return "unknown"
}

// Valid reports whether v names a preset.
func (v View) Valid() bool { return v >= ViewFront && v <= ViewAxonometric }

// DrawMode is the rasterization style used for every primitive of a frame.
type DrawMode uint8

const (
	DrawFilled DrawMode = iota
	DrawWireframe
)

func (m DrawMode) String() string {
	if m == DrawWireframe {
		return "wireframe"
	}
	return "filled"
}

// Pose is the articulated state of the tank and the camera.
//
// Mutate it through its methods so the bounds and the wheel coupling hold.
type Pose struct {
	HullOffset float32

	// WheelRadians is the total rolled distance divided by the wheel radius.
	WheelRadians float32
	// WheelAngleDeg is always WheelRadians in degrees.
	WheelAngleDeg float32

	CannonAzimuthDeg   float32
	CannonElevationDeg float32

	View View
	Zoom float32
	Mode DrawMode
}

// NewPose returns the resting pose: tank centered, axonometric camera.
func NewPose() Pose {
	return Pose{View: ViewAxonometric, Zoom: DefaultZoom, Mode: DrawFilled}
}

// Roll moves the hull by dir steps of MoveStep along X and turns the wheels by the
// matching arc. A step that would leave the travel range is rejected.
func (p *Pose) Roll(dir int) bool {
	if dir == 0 {
		return false
	}
	d := float32(MoveStep)
	if dir < 0 {
		d = -d
	}
	next := p.HullOffset + d
	if next > HullHalfTravel || next < -HullHalfTravel {
		return false
	}
	p.HullOffset = next
	p.WheelRadians += d / (WheelSize / 2)
	p.WheelAngleDeg = p.WheelRadians * 180 / math32.Pi
	return true
}

// Elevate raises (dir>0) or lowers (dir<0) the cannon within [0, MaxElevation].
func (p *Pose) Elevate(dir int) bool {
	switch {
	case dir > 0 && p.CannonElevationDeg < MaxElevation:
		p.CannonElevationDeg = math32.Min(p.CannonElevationDeg+ElevationStep, MaxElevation)
		return true
	case dir < 0 && p.CannonElevationDeg > 0:
		p.CannonElevationDeg = math32.Max(p.CannonElevationDeg-ElevationStep, 0)
		return true
	}
	return false
}

// Turn rotates the cannon about the turret axis. Azimuth is unbounded.
func (p *Pose) Turn(dir int) {
	switch {
	case dir > 0:
		p.CannonAzimuthDeg += AzimuthStep
	case dir < 0:
		p.CannonAzimuthDeg -= AzimuthStep
	}
}

// ZoomIn shrinks the visible half-height, never below MinZoom.
func (p *Pose) ZoomIn() bool {
	if p.Zoom <= MinZoom {
		return false
	}
	p.Zoom = math32.Max(p.Zoom-ZoomStep, MinZoom)
	return true
}

func (p *Pose) ZoomOut() { p.Zoom += ZoomStep }

// SelectView switches the camera preset. Unknown views are ignored.
func (p *Pose) SelectView(v View) bool {
	if !v.Valid() {
		return false
	}
	p.View = v
	return true
}

// SetWireframe switches filled drawing to wireframe. It never switches back.
func (p *Pose) SetWireframe() bool {
	if p.Mode != DrawFilled {
		return false
	}
	p.Mode = DrawWireframe
	return true
}

// SetFilled switches wireframe drawing to filled. It never switches back.
func (p *Pose) SetFilled() bool {
	if p.Mode != DrawWireframe {
		return false
	}
	p.Mode = DrawFilled
	return true
}
