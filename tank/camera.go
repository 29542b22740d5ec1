package tank

import "github.com/go-gl/mathgl/mgl32"

// ViewMatrix returns the look-at transform for a camera preset.
//
// The axonometric preset looks along (1,1,1) from a unit distance; with an
// orthographic projection the distance only matters for clipping.
func ViewMatrix(v View, zoom float32) mgl32.Mat4 {
	origin := mgl32.Vec3{}
	switch v {
	case ViewFront:
		return mgl32.LookAtV(mgl32.Vec3{zoom, 0, 0}, origin, mgl32.Vec3{0, 1, 0})
	case ViewTop:
		return mgl32.LookAtV(mgl32.Vec3{0, zoom, 0}, origin, mgl32.Vec3{-1, 0, 0})
	case ViewSide:
		return mgl32.LookAtV(mgl32.Vec3{0, 0, zoom}, origin, mgl32.Vec3{0, 1, 0})
	default:
		return mgl32.LookAtV(mgl32.Vec3{1, 1, 1}, origin, mgl32.Vec3{0, 1, 0})
	}
}

// Projection returns the orthographic projection for a zoom level and aspect ratio.
func Projection(zoom, aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Ortho(-zoom*aspect, zoom*aspect, -zoom, zoom, -3*zoom, 3*zoom)
}
