package tank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerKeys(t *testing.T) {
	tests := []struct {
		key   string
		check func(t *testing.T, p Pose)
	}{
		{"w", func(t *testing.T, p Pose) { assert.InDelta(t, ElevationStep, p.CannonElevationDeg, 1e-6) }},
		{"s", func(t *testing.T, p Pose) { assert.Zero(t, p.CannonElevationDeg) }},
		{"a", func(t *testing.T, p Pose) { assert.InDelta(t, AzimuthStep, p.CannonAzimuthDeg, 1e-6) }},
		{"d", func(t *testing.T, p Pose) { assert.InDelta(t, -AzimuthStep, p.CannonAzimuthDeg, 1e-6) }},
		{"W", func(t *testing.T, p Pose) { assert.Equal(t, DrawWireframe, p.Mode) }},
		{"S", func(t *testing.T, p Pose) { assert.Equal(t, DrawFilled, p.Mode) }},
		{"ArrowUp", func(t *testing.T, p Pose) { assert.InDelta(t, MoveStep, p.HullOffset, 1e-6) }},
		{"ArrowDown", func(t *testing.T, p Pose) { assert.InDelta(t, -MoveStep, p.HullOffset, 1e-6) }},
		{"1", func(t *testing.T, p Pose) { assert.Equal(t, ViewFront, p.View) }},
		{"2", func(t *testing.T, p Pose) { assert.Equal(t, ViewTop, p.View) }},
		{"3", func(t *testing.T, p Pose) { assert.Equal(t, ViewSide, p.View) }},
		{"4", func(t *testing.T, p Pose) { assert.Equal(t, ViewAxonometric, p.View) }},
		{"+", func(t *testing.T, p Pose) { assert.InDelta(t, DefaultZoom-ZoomStep, p.Zoom, 1e-6) }},
		{"-", func(t *testing.T, p Pose) { assert.InDelta(t, DefaultZoom+ZoomStep, p.Zoom, 1e-6) }},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			s := newTestSim()
			c := NewController(s)
			require.True(t, c.KeyDown(tt.key))
			tt.check(t, s.Pose)
			assert.Zero(t, s.Shots.Len())
		})
	}
}

func TestControllerWireframeIsCaseSensitive(t *testing.T) {
	s := newTestSim()
	c := NewController(s)

	c.KeyDown("W")
	c.KeyDown("w")
	assert.Equal(t, DrawWireframe, s.Pose.Mode)
	assert.InDelta(t, ElevationStep, s.Pose.CannonElevationDeg, 1e-6)

	c.KeyDown("S")
	c.KeyDown("S")
	assert.Equal(t, DrawFilled, s.Pose.Mode)
}

func TestControllerFire(t *testing.T) {
	s := newTestSim()
	c := NewController(s)

	var got []Projectile
	c.OnFire = func(p Projectile) { got = append(got, p) }

	require.True(t, c.KeyDown(" "))
	require.True(t, c.KeyDown(" "))
	assert.Equal(t, 2, s.Shots.Len())
	require.Len(t, got, 2)
	assert.Equal(t, s.Shots.Live()[0], got[0])
}

func TestControllerFireWithoutHook(t *testing.T) {
	s := newTestSim()
	assert.True(t, NewController(s).KeyDown(" "))
	assert.Equal(t, 1, s.Shots.Len())
}

func TestControllerUnboundKey(t *testing.T) {
	s := newTestSim()
	c := NewController(s)
	for _, k := range []string{"x", "Enter", "5", "", "ArrowLeft"} {
		assert.False(t, c.KeyDown(k), "key %q", k)
	}
	assert.Equal(t, NewPose(), s.Pose)
}
