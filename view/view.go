package view

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/tabletop3d/tabletop/config"
	"github.com/tabletop3d/tabletop/platform"
	"github.com/tabletop3d/tabletop/render"
)

// Speed multiplier bounds for the scroll wheel.
const (
	minSpeedMultiplier float32 = 0.2
	maxSpeedMultiplier float32 = 4.0
	scrollSpeedStep    float32 = 0.1
)

// ViewManager owns the camera and projection state and turns raw input
// events into camera motion. One instance per process, driven from the
// render thread.
type ViewManager struct {
	Camera CameraState

	Orthographic    bool
	OrthoScale      float32
	SpeedMultiplier float32

	sensitivity float32
	baseSpeed   float32
	near, far   float32
	orthoTarget mgl32.Vec3
	orthoOffset mgl32.Vec3

	lastX, lastY float64
	firstMouse   bool
}

func NewViewManager(cfg config.Config) *ViewManager {
	cam := cfg.Camera
	proj := cfg.Projection

	return &ViewManager{
		Camera: CameraState{
			Position: mgl32.Vec3(cam.Position),
			Front:    mgl32.Vec3(cam.Front).Normalize(),
			Up:       mgl32.Vec3(cam.Up),
			FOV:      cam.FOV,
			Yaw:      cam.Yaw,
			Pitch:    cam.Pitch,
		},
		OrthoScale:      proj.OrthoScale,
		SpeedMultiplier: 1,
		sensitivity:     cam.Sensitivity,
		baseSpeed:       cam.BaseSpeed,
		near:            proj.Near,
		far:             proj.Far,
		orthoTarget:     mgl32.Vec3(proj.OrthoTarget),
		orthoOffset:     mgl32.Vec3(proj.OrthoOffset),
		firstMouse:      true,
	}
}

// OnCursorMoved accumulates mouse motion into yaw/pitch. Mouse look is
// disabled in orthographic mode. The first sample only seeds the last
// cursor position, so capturing the cursor does not jerk the view.
func (v *ViewManager) OnCursorMoved(x, y float64) {
	if v.Orthographic {
		return
	}

	if v.firstMouse {
		v.lastX = x
		v.lastY = y
		v.firstMouse = false
	}

	xOffset := float32(x-v.lastX) * v.sensitivity
	yOffset := float32(v.lastY-y) * v.sensitivity // screen-down is pitch-up

	v.lastX = x
	v.lastY = y

	v.Camera.Yaw += xOffset
	v.Camera.Pitch += yOffset

	if v.Camera.Pitch > maxPitch {
		v.Camera.Pitch = maxPitch
	}
	if v.Camera.Pitch < -maxPitch {
		v.Camera.Pitch = -maxPitch
	}

	v.Camera.updateFront()
}

// OnScroll adjusts movement speed, not zoom.
func (v *ViewManager) OnScroll(yOffset float64) {
	v.SpeedMultiplier += float32(yOffset) * scrollSpeedStep

	if v.SpeedMultiplier < minSpeedMultiplier {
		v.SpeedMultiplier = minSpeedMultiplier
	}
	if v.SpeedMultiplier > maxSpeedMultiplier {
		v.SpeedMultiplier = maxSpeedMultiplier
	}
}

// ProcessFrameInput applies held movement keys for this frame and handles
// the edge-triggered projection toggle. It reports whether the user asked
// to close the window; the window owner decides what to do with that.
func (v *ViewManager) ProcessFrameInput(dt float32, in *platform.Input) (closeRequested bool) {
	// toggles fire on the down edge only, a held key does nothing more
	if in.JustPressed[platform.KeyP] {
		v.Orthographic = false
	}
	if in.JustPressed[platform.KeyO] {
		v.Orthographic = true
	}

	velocity := v.baseSpeed * v.SpeedMultiplier * dt

	if in.Pressed[platform.KeyW] {
		v.Camera.Position = v.Camera.Position.Add(v.Camera.Front.Mul(velocity))
	}
	if in.Pressed[platform.KeyS] {
		v.Camera.Position = v.Camera.Position.Sub(v.Camera.Front.Mul(velocity))
	}

	right := v.Camera.Front.Cross(v.Camera.Up).Normalize()
	if in.Pressed[platform.KeyA] {
		v.Camera.Position = v.Camera.Position.Sub(right.Mul(velocity))
	}
	if in.Pressed[platform.KeyD] {
		v.Camera.Position = v.Camera.Position.Add(right.Mul(velocity))
	}

	if in.Pressed[platform.KeyQ] {
		v.Camera.Position = v.Camera.Position.Sub(v.Camera.Up.Mul(velocity))
	}
	if in.Pressed[platform.KeyE] {
		v.Camera.Position = v.Camera.Position.Add(v.Camera.Up.Mul(velocity))
	}

	return in.Pressed[platform.KeyEscape]
}

// ViewMatrix returns the free-fly view in perspective mode. Orthographic
// mode suppresses free flight and frames the mug from a fixed offset.
func (v *ViewManager) ViewMatrix() mgl32.Mat4 {
	if !v.Orthographic {
		return v.Camera.ViewMatrix()
	}
	return mgl32.LookAtV(
		v.orthoTarget.Add(v.orthoOffset),
		v.orthoTarget,
		mgl32.Vec3{0, 1, 0},
	)
}

// Projection returns the projection matrix for the current mode.
func (v *ViewManager) Projection(aspect float32) mgl32.Mat4 {
	if !v.Orthographic {
		return mgl32.Perspective(mgl32.DegToRad(v.Camera.FOV), aspect, v.near, v.far)
	}
	return mgl32.Ortho(
		-v.OrthoScale*aspect, v.OrthoScale*aspect,
		-v.OrthoScale, v.OrthoScale,
		v.near, v.far,
	)
}

// UploadView writes the per-frame view, projection and camera-position
// uniforms.
func (v *ViewManager) UploadView(p render.Program, aspect float32) {
	p.SetMat4(render.UniformView, v.ViewMatrix())
	p.SetMat4(render.UniformProjection, v.Projection(aspect))
	p.SetVec3(render.UniformViewPosition, v.Camera.Position)
}
