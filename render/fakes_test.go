package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// trace is a shared ordered event log so tests can assert interleaving of
// uniform writes and draw calls.
type trace struct {
	events []string
}

func (t *trace) add(format string, args ...any) {
	t.events = append(t.events, fmt.Sprintf(format, args...))
}

type uniformWrite struct {
	kind  string
	name  string
	value any
}

// recordingProgram is a Program that records every write instead of
// touching the GPU.
type recordingProgram struct {
	tr       *trace
	writes   []uniformWrite
	useCalls int
}

func newRecordingProgram() *recordingProgram {
	return &recordingProgram{tr: &trace{}}
}

func (p *recordingProgram) record(kind, name string, value any) {
	p.writes = append(p.writes, uniformWrite{kind: kind, name: name, value: value})
	p.tr.add("%s:%s=%v", kind, name, value)
}

func (p *recordingProgram) Use() {
	p.useCalls++
	p.tr.add("use")
}

func (p *recordingProgram) SetMat4(name string, m mgl32.Mat4) { p.record("mat4", name, m) }
func (p *recordingProgram) SetVec2(name string, v mgl32.Vec2) { p.record("vec2", name, v) }
func (p *recordingProgram) SetVec3(name string, v mgl32.Vec3) { p.record("vec3", name, v) }
func (p *recordingProgram) SetVec4(name string, v mgl32.Vec4) { p.record("vec4", name, v) }
func (p *recordingProgram) SetFloat(name string, v float32)   { p.record("float", name, v) }
func (p *recordingProgram) SetInt(name string, v int32)       { p.record("int", name, v) }
func (p *recordingProgram) SetSampler(name string, u int32)   { p.record("sampler", name, u) }

// lastWrite returns the most recent write to name, if any.
func (p *recordingProgram) lastWrite(name string) (uniformWrite, bool) {
	for i := len(p.writes) - 1; i >= 0; i-- {
		if p.writes[i].name == name {
			return p.writes[i], true
		}
	}
	return uniformWrite{}, false
}

func (p *recordingProgram) countWrites(name string) int {
	n := 0
	for _, w := range p.writes {
		if w.name == name {
			n++
		}
	}
	return n
}

type uploadCall struct {
	width    int
	height   int
	channels int
}

// fakeTextureDevice hands out sequential handles and records uploads,
// binds and releases.
type fakeTextureDevice struct {
	next     uint32
	uploads  []uploadCall
	bound    map[int]uint32
	released []uint32
	fail     bool
}

func newFakeTextureDevice() *fakeTextureDevice {
	return &fakeTextureDevice{next: 100, bound: make(map[int]uint32)}
}

func (d *fakeTextureDevice) Upload(pixels []byte, width, height, channels int) (uint32, error) {
	if d.fail {
		return 0, fmt.Errorf("upload refused")
	}
	d.uploads = append(d.uploads, uploadCall{width: width, height: height, channels: channels})
	d.next++
	return d.next, nil
}

func (d *fakeTextureDevice) Bind(unit int, handle uint32) {
	d.bound[unit] = handle
}

func (d *fakeTextureDevice) Release(handles []uint32) {
	d.released = append(d.released, handles...)
}

// fakeMeshes records load and draw calls into the shared trace.
type fakeMeshes struct {
	tr    *trace
	loads []string
	draws []string
}

func newFakeMeshes(tr *trace) *fakeMeshes {
	return &fakeMeshes{tr: tr}
}

func (m *fakeMeshes) load(name string) {
	m.loads = append(m.loads, name)
	m.tr.add("load:%s", name)
}

func (m *fakeMeshes) draw(name string) {
	m.draws = append(m.draws, name)
	m.tr.add("draw:%s", name)
}

func (m *fakeMeshes) LoadPlaneMesh()           { m.load("plane") }
func (m *fakeMeshes) LoadTaperedCylinderMesh() { m.load("taperedCylinder") }
func (m *fakeMeshes) LoadTorusMesh()           { m.load("torus") }
func (m *fakeMeshes) DrawPlaneMesh()           { m.draw("plane") }
func (m *fakeMeshes) DrawTaperedCylinderMesh() { m.draw("taperedCylinder") }
func (m *fakeMeshes) DrawTorusMesh()           { m.draw("torus") }
