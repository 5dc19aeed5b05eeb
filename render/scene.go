package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MeshProvider supplies the primitive geometry the scene draws. The GL
// implementation lives in the geometry package; tests substitute a fake to
// count draw calls.
type MeshProvider interface {
	LoadPlaneMesh()
	LoadTaperedCylinderMesh()
	LoadTorusMesh()
	DrawPlaneMesh()
	DrawTaperedCylinderMesh()
	DrawTorusMesh()
}

// TextureRef pairs an image path with the tag the scene uses for it.
type TextureRef struct {
	Path string
	Tag  string
}

// Scene composition constants. These are visually tuned placements, not
// derived values.
var (
	floorScale = mgl32.Vec3{20, 1, 10}
	floorPos   = mgl32.Vec3{0, 0, 0}

	mugBodyScale = mgl32.Vec3{1.15, 1.65, 1.15}

	mugHandleScale = mgl32.Vec3{0.55, 0.75, 0.22}
	// Solid handle color, texture off.
	mugHandleColor = [4]float32{0.98, 0.55, 0.15, 1.0}
)

const (
	mugX   float32 = 0
	mugZ   float32 = -2.8
	mugYaw float32 = -20

	floorUVScaleU float32 = 6
	floorUVScaleV float32 = 3
	mugUVScaleU   float32 = 2
	mugUVScaleV   float32 = 2

	handleOutOffset     float32 = 0.98 // out from the mug body
	handleUpOffset      float32 = 0.45 // up to the mid-upper body
	handleForwardOffset float32 = 0.08 // forward, avoids z-fighting with the body
)

// SceneManager owns the texture and material registries and drives the
// per-object transform, uniform and draw sequence.
type SceneManager struct {
	program      Program
	textures     *TextureRegistry
	materials    *MaterialRegistry
	meshes       MeshProvider
	textureFiles []TextureRef
}

func NewSceneManager(program Program, textures *TextureRegistry, materials *MaterialRegistry, meshes MeshProvider, textureFiles []TextureRef) *SceneManager {
	return &SceneManager{
		program:      program,
		textures:     textures,
		materials:    materials,
		meshes:       meshes,
		textureFiles: textureFiles,
	}
}

func (s *SceneManager) Textures() *TextureRegistry {
	return s.textures
}

// ComputeModelMatrix composes Translation * RotationX * RotationY *
// RotationZ * Scale. The order is fixed; reordering changes every object's
// placement.
func ComputeModelMatrix(scale, rotationDeg, position mgl32.Vec3) mgl32.Mat4 {
	translation := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	rotX := mgl32.HomogRotate3DX(mgl32.DegToRad(rotationDeg.X()))
	rotY := mgl32.HomogRotate3DY(mgl32.DegToRad(rotationDeg.Y()))
	rotZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotationDeg.Z()))
	scaleM := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())

	return translation.Mul4(rotX).Mul4(rotY).Mul4(rotZ).Mul4(scaleM)
}

// SetTransformations computes the model matrix for the given placement and
// pushes it to the shader.
func (s *SceneManager) SetTransformations(scale, rotationDeg, position mgl32.Vec3) {
	s.ApplyModelMatrix(ComputeModelMatrix(scale, rotationDeg, position))
}

func (s *SceneManager) ApplyModelMatrix(m mgl32.Mat4) {
	s.program.SetMat4(UniformModel, m)
}

// ApplyFlatColor disables texturing and sets a solid color for the next
// draw.
func (s *SceneManager) ApplyFlatColor(r, g, b, a float32) {
	s.program.SetInt(UniformUseTexture, 0)
	s.program.SetVec4(UniformObjectColor, mgl32.Vec4{r, g, b, a})
}

// ApplyTexture binds the sampler to the slot registered under tag. An
// unknown tag disables texturing instead, so a typo renders flat rather
// than black.
func (s *SceneManager) ApplyTexture(tag string) {
	slot, ok := s.textures.FindSlot(tag)
	if !ok {
		s.program.SetInt(UniformUseTexture, 0)
		return
	}
	s.program.SetInt(UniformUseTexture, 1)
	s.program.SetSampler(UniformObjectTexture, int32(slot))
}

func (s *SceneManager) ApplyUVScale(u, v float32) {
	s.program.SetVec2(UniformUVScale, mgl32.Vec2{u, v})
}

// ApplyMaterial pushes the five material fields registered under tag. On a
// miss nothing is written, which leaves the previously applied material
// active on the GPU. That carries a stale-state hazard but matches the
// established rendering; zeroing here would visibly change untagged objects.
func (s *SceneManager) ApplyMaterial(tag string) {
	m, ok := s.materials.Find(tag)
	if !ok {
		return
	}
	s.program.SetVec3(UniformMaterialAmbientColor, m.AmbientColor)
	s.program.SetFloat(UniformMaterialAmbientStrength, m.AmbientStrength)
	s.program.SetVec3(UniformMaterialDiffuseColor, m.DiffuseColor)
	s.program.SetVec3(UniformMaterialSpecularColor, m.SpecularColor)
	s.program.SetFloat(UniformMaterialShininess, m.Shininess)
}

// ApplyLights writes the camera position and all four light blocks. It is
// unconditional and idempotent; RenderScene calls it every frame.
func (s *SceneManager) ApplyLights(cameraPosition mgl32.Vec3) {
	s.program.SetVec3(UniformViewPosition, cameraPosition)
	for i, light := range sceneLights {
		uploadLight(s.program, i, light)
	}
}

// PrepareScene loads and binds the scene textures, registers the materials
// and generates the primitive meshes. Called once before the frame loop;
// texture binding has to follow loading so slot indices line up with
// texture units.
func (s *SceneManager) PrepareScene() {
	for _, tf := range s.textureFiles {
		// a failed load degrades that object to flat shading at draw time
		_ = s.textures.Load(tf.Path, tf.Tag)
	}
	s.textures.BindAll()

	s.defineObjectMaterials()

	s.meshes.LoadPlaneMesh()
	s.meshes.LoadTaperedCylinderMesh()
	s.meshes.LoadTorusMesh()
}

func (s *SceneManager) defineObjectMaterials() {
	s.materials.Add(Material{
		Tag:             "wood",
		AmbientColor:    mgl32.Vec3{0.4, 0.3, 0.1},
		AmbientStrength: 0.2,
		DiffuseColor:    mgl32.Vec3{0.6, 0.5, 0.3},
		SpecularColor:   mgl32.Vec3{0.2, 0.2, 0.2},
		Shininess:       8,
	})
	s.materials.Add(Material{
		Tag:             "ceramic",
		AmbientColor:    mgl32.Vec3{0.3, 0.3, 0.3},
		AmbientStrength: 0.3,
		DiffuseColor:    mgl32.Vec3{0.8, 0.8, 0.8},
		SpecularColor:   mgl32.Vec3{0.9, 0.9, 0.9},
		Shininess:       64,
	})
	s.materials.Add(Material{
		Tag:             "plastic",
		AmbientColor:    mgl32.Vec3{0.3, 0.2, 0.1},
		AmbientStrength: 0.3,
		DiffuseColor:    mgl32.Vec3{0.9, 0.5, 0.2},
		SpecularColor:   mgl32.Vec3{0.5, 0.5, 0.5},
		Shininess:       32,
	})
}

// RenderScene draws the fixed object sequence: floor plane, mug body, mug
// handle. Called once per frame with the active camera position.
func (s *SceneManager) RenderScene(cameraPosition mgl32.Vec3) {
	s.program.Use()
	s.ApplyLights(cameraPosition)

	// Floor: wood texture, tiled.
	s.SetTransformations(floorScale, mgl32.Vec3{}, floorPos)
	s.ApplyMaterial("wood")
	s.ApplyTexture("wood")
	s.ApplyUVScale(floorUVScaleU, floorUVScaleV)
	s.meshes.DrawPlaneMesh()

	// Mug body: tapered cylinder, base resting on the floor.
	bodyHalfHeight := mugBodyScale.Y() * 0.5
	s.SetTransformations(
		mugBodyScale,
		mgl32.Vec3{0, mugYaw, 0},
		mgl32.Vec3{mugX, bodyHalfHeight, mugZ},
	)
	s.ApplyMaterial("ceramic")
	s.ApplyTexture("ceramic")
	s.ApplyUVScale(mugUVScaleU, mugUVScaleV)
	s.meshes.DrawTaperedCylinderMesh()

	// Handle: torus stood upright against the body, solid color.
	s.SetTransformations(
		mugHandleScale,
		mgl32.Vec3{0, mugYaw, 90},
		mgl32.Vec3{
			mugX + handleOutOffset,
			bodyHalfHeight + handleUpOffset,
			mugZ + handleForwardOffset,
		},
	)
	s.ApplyMaterial("plastic")
	s.ApplyFlatColor(mugHandleColor[0], mugHandleColor[1], mugHandleColor[2], mugHandleColor[3])
	s.meshes.DrawTorusMesh()
}

// Release frees the GPU resources the scene owns.
func (s *SceneManager) Release() {
	s.textures.ReleaseAll()
}
