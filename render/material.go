package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Material is a named Phong property set. Materials are appended during
// scene setup and immutable afterwards.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// MaterialRegistry is an ordered list of materials looked up by tag.
type MaterialRegistry struct {
	materials []Material
}

func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{}
}

func (r *MaterialRegistry) Add(m Material) {
	r.materials = append(r.materials, m)
}

// Find copies out the first material registered under tag. An empty
// registry or an unknown tag returns false with a zero Material.
func (r *MaterialRegistry) Find(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

func (r *MaterialRegistry) Count() int {
	return len(r.materials)
}
