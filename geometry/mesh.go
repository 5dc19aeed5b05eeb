package geometry

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/google/uuid"
)

type AssetId string

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}

// Vertex layout: position (3), normal (3), texcoord (2), tightly packed.
const vertexStride = 8

type meshAsset struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// MeshLibrary generates and owns the primitive meshes the scene draws. It
// implements the scene manager's MeshProvider contract. Load calls are
// idempotent; drawing an unloaded mesh is a no-op.
type MeshLibrary struct {
	meshes          map[AssetId]*meshAsset
	plane           AssetId
	taperedCylinder AssetId
	torus           AssetId
}

func NewMeshLibrary() *MeshLibrary {
	return &MeshLibrary{
		meshes: make(map[AssetId]*meshAsset),
	}
}

func (l *MeshLibrary) register(vertices []float32, indices []uint32) AssetId {
	id := makeAssetId()
	l.meshes[id] = uploadMesh(vertices, indices)
	return id
}

func uploadMesh(vertices []float32, indices []uint32) *meshAsset {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(vertexStride * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	return &meshAsset{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
	}
}

func (l *MeshLibrary) draw(id AssetId) {
	mesh, ok := l.meshes[id]
	if !ok {
		return
	}
	gl.BindVertexArray(mesh.vao)
	gl.DrawElements(gl.TRIANGLES, mesh.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (l *MeshLibrary) LoadPlaneMesh() {
	if l.plane != "" {
		return
	}
	vertices, indices := buildPlane()
	l.plane = l.register(vertices, indices)
}

func (l *MeshLibrary) LoadTaperedCylinderMesh() {
	if l.taperedCylinder != "" {
		return
	}
	vertices, indices := buildTaperedCylinder(36)
	l.taperedCylinder = l.register(vertices, indices)
}

func (l *MeshLibrary) LoadTorusMesh() {
	if l.torus != "" {
		return
	}
	vertices, indices := buildTorus(24, 12)
	l.torus = l.register(vertices, indices)
}

func (l *MeshLibrary) DrawPlaneMesh() {
	l.draw(l.plane)
}

func (l *MeshLibrary) DrawTaperedCylinderMesh() {
	l.draw(l.taperedCylinder)
}

func (l *MeshLibrary) DrawTorusMesh() {
	l.draw(l.torus)
}

// Release frees every buffer the library created.
func (l *MeshLibrary) Release() {
	for id, mesh := range l.meshes {
		gl.DeleteBuffers(1, &mesh.vbo)
		gl.DeleteBuffers(1, &mesh.ebo)
		gl.DeleteVertexArrays(1, &mesh.vao)
		delete(l.meshes, id)
	}
	l.plane = ""
	l.taperedCylinder = ""
	l.torus = ""
}
