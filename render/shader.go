package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names as declared by the scene shader. The strings are part of
// the GLSL contract and must not change.
const (
	UniformModel         = "model"
	UniformView          = "view"
	UniformProjection    = "projection"
	UniformObjectColor   = "objectColor"
	UniformObjectTexture = "objectTexture"
	UniformUseTexture    = "bUseTexture"
	// bUseLighting is declared by the fragment shader but never written by
	// the managers; the shader's declared default applies.
	UniformUseLighting  = "bUseLighting"
	UniformUVScale      = "UVscale"
	UniformViewPosition = "viewPosition"

	UniformMaterialAmbientColor    = "material.ambientColor"
	UniformMaterialAmbientStrength = "material.ambientStrength"
	UniformMaterialDiffuseColor    = "material.diffuseColor"
	UniformMaterialSpecularColor   = "material.specularColor"
	UniformMaterialShininess       = "material.shininess"
)

// MaxLights is the number of light blocks the shader declares. Every frame
// writes exactly this many, enabled or not.
const MaxLights = 4

type lightUniforms struct {
	position          string
	ambientColor      string
	diffuseColor      string
	specularColor     string
	focalStrength     string
	specularIntensity string
	constant          string
	linear            string
	quadratic         string
}

// lightUniform holds the per-slot uniform names, precomputed so the frame
// loop never builds strings.
var lightUniform [MaxLights]lightUniforms

func init() {
	for i := range lightUniform {
		p := fmt.Sprintf("lightSources[%d].", i)
		lightUniform[i] = lightUniforms{
			position:          p + "position",
			ambientColor:      p + "ambientColor",
			diffuseColor:      p + "diffuseColor",
			specularColor:     p + "specularColor",
			focalStrength:     p + "focalStrength",
			specularIntensity: p + "specularIntensity",
			constant:          p + "constant",
			linear:            p + "linear",
			quadratic:         p + "quadratic",
		}
	}
}

// Program is the uniform sink the managers write through. The GL
// implementation is GLProgram; tests use a recording fake.
type Program interface {
	Use()
	SetMat4(name string, m mgl32.Mat4)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetFloat(name string, v float32)
	SetInt(name string, v int32)
	SetSampler(name string, unit int32)
}

// GLProgram wraps a linked GL shader program and caches uniform locations
// by name, so repeated writes cost one map hit instead of a driver query.
type GLProgram struct {
	handle    uint32
	locations map[string]int32
}

func CompileProgram(vertexSrc, fragmentSrc string) (*GLProgram, error) {
	vs, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return nil, fmt.Errorf("link program: %s", strings.TrimRight(log, "\x00"))
	}

	return &GLProgram{
		handle:    prog,
		locations: make(map[string]int32),
	}, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func (p *GLProgram) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

func (p *GLProgram) Use() {
	gl.UseProgram(p.handle)
}

func (p *GLProgram) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}

func (p *GLProgram) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2f(p.location(name), v.X(), v.Y())
}

func (p *GLProgram) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.location(name), v.X(), v.Y(), v.Z())
}

func (p *GLProgram) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4f(p.location(name), v.X(), v.Y(), v.Z(), v.W())
}

func (p *GLProgram) SetFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

func (p *GLProgram) SetInt(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}

func (p *GLProgram) SetSampler(name string, unit int32) {
	gl.Uniform1i(p.location(name), unit)
}

func (p *GLProgram) Delete() {
	gl.DeleteProgram(p.handle)
}
