package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LightSource mirrors one lightSources[n] block in the fragment shader.
type LightSource struct {
	Position          mgl32.Vec3
	AmbientColor      mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32
	SpecularIntensity float32
	Constant          float32
	Linear            float32
	Quadratic         float32
}

// The scene's fixed lighting rig: a warm key light above and slightly in
// front of the mug, and a cool fill that keeps the floor from going black.
// Slots 2 and 3 are written disabled so the shader always sees four blocks.
var sceneLights = [MaxLights]LightSource{
	{
		Position:          mgl32.Vec3{0, 3, 2},
		AmbientColor:      mgl32.Vec3{0.10, 0.10, 0.10},
		DiffuseColor:      mgl32.Vec3{0.95, 0.90, 0.80},
		SpecularColor:     mgl32.Vec3{1.00, 1.00, 1.00},
		FocalStrength:     32,
		SpecularIntensity: 0.60,
		Constant:          1,
		Linear:            0.09,
		Quadratic:         0.032,
	},
	{
		Position:          mgl32.Vec3{-3, 2, -2},
		AmbientColor:      mgl32.Vec3{0.14, 0.14, 0.14},
		DiffuseColor:      mgl32.Vec3{0.35, 0.35, 0.40},
		SpecularColor:     mgl32.Vec3{0.40, 0.40, 0.40},
		FocalStrength:     16,
		SpecularIntensity: 0.20,
		Constant:          1,
		Linear:            0.09,
		Quadratic:         0.032,
	},
	disabledLight(),
	disabledLight(),
}

func disabledLight() LightSource {
	return LightSource{
		FocalStrength:     1,
		SpecularIntensity: 0,
		Constant:          1,
	}
}

func uploadLight(p Program, slot int, light LightSource) {
	names := lightUniform[slot]
	p.SetVec3(names.position, light.Position)
	p.SetVec3(names.ambientColor, light.AmbientColor)
	p.SetVec3(names.diffuseColor, light.DiffuseColor)
	p.SetVec3(names.specularColor, light.SpecularColor)
	p.SetFloat(names.focalStrength, light.FocalStrength)
	p.SetFloat(names.specularIntensity, light.SpecularIntensity)
	p.SetFloat(names.constant, light.Constant)
	p.SetFloat(names.linear, light.Linear)
	p.SetFloat(names.quadratic, light.Quadratic)
}
