// Package softgl is a small immediate-mode software rasterizer.
//
// It stands in for a graphics API: the caller begins a frame with a projection,
// uploads a color and a model-view transform, then draws a mesh filled or as a
// wireframe. Filled triangles are flat shaded with a view-space directional light
// and depth tested.
//
// Pipeline (fixed):
//
//	Mesh → Model-view → Projection → NDC → Rasterization → Target.
//
// Matrices are github.com/go-gl/mathgl/mgl32 values (column major). The renderer
// draws into a caller-provided Target and does not allocate in the draw path once
// its depth buffer is sized.
package softgl
