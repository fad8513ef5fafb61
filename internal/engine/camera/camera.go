// Package camera provides the orbit camera of the sculpting viewer.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/chisel3d/chisel/pkg/geom"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center mgl32.Vec3

	// Spherical coordinates
	Distance  float32 // distance from center
	RotationX float32 // pitch (radians)
	RotationY float32 // yaw (radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	// Projection
	FOV  float32 // vertical field of view (radians)
	Near float32
	Far  float32
}

// NewOrbitCamera creates an orbit camera with defaults suited to a
// unit-scale sculpting scene.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        6.0,
		RotationX:       0.4,
		RotationY:       0.0,
		MinDistance:     1.5,
		MaxDistance:     50.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FOV:             mgl32.DegToRad(45),
		Near:            0.1,
		Far:             200.0,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))
	return c.Center.Add(mgl32.Vec3{x, y, z})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Center, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection for the given
// viewport dimensions.
func (c *OrbitCamera) ProjectionMatrix(width, height int) mgl32.Mat4 {
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// ScreenRay converts a screen pixel position into a world-space picking
// ray by unprojecting through the inverse view-projection matrix.
func (c *OrbitCamera) ScreenRay(screenX, screenY float32, width, height int) geom.Ray {
	ndcX := 2.0*screenX/float32(width) - 1.0
	ndcY := 1.0 - 2.0*screenY/float32(height) // flip Y

	invViewProj := c.ProjectionMatrix(width, height).Mul4(c.ViewMatrix()).Inv()

	nearWorld := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, -1, 1})
	farWorld := invViewProj.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})

	if nearWorld.W() != 0 {
		nearWorld = nearWorld.Mul(1 / nearWorld.W())
	}
	if farWorld.W() != 0 {
		farWorld = farWorld.Mul(1 / farWorld.W())
	}

	origin := nearWorld.Vec3()
	return geom.NewRay(origin, farWorld.Vec3().Sub(origin))
}
