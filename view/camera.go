package view

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraState is the free-fly camera: position plus a unit front vector
// derived from yaw/pitch. Owned by the ViewManager, mutated only by its
// input handlers.
type CameraState struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	FOV      float32 // degrees
	Yaw      float32 // degrees, -90 looks down -Z
	Pitch    float32 // degrees, clamped to ±89
}

const maxPitch float32 = 89

// updateFront recomputes the front vector from yaw/pitch, Y-up.
func (c *CameraState) updateFront() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.Front = front.Normalize()
}

// ViewMatrix is the standard look-at along the front vector.
func (c *CameraState) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}
