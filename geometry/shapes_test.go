package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkMesh(t *testing.T, vertices []float32, indices []uint32) {
	t.Helper()

	require.NotEmpty(t, vertices)
	require.Zero(t, len(vertices)%vertexStride, "vertex data must be whole vertices")
	require.Zero(t, len(indices)%3, "indices must form whole triangles")

	vertexCount := uint32(len(vertices) / vertexStride)
	for _, idx := range indices {
		require.Less(t, idx, vertexCount)
	}

	// every normal is unit length
	for i := 0; i < len(vertices); i += vertexStride {
		nx := float64(vertices[i+3])
		ny := float64(vertices[i+4])
		nz := float64(vertices[i+5])
		assert.InDelta(t, 1, math.Sqrt(nx*nx+ny*ny+nz*nz), 1e-4)
	}
}

func TestBuildPlane(t *testing.T) {
	vertices, indices := buildPlane()
	checkMesh(t, vertices, indices)

	assert.Len(t, indices, 6)
	for i := 0; i < len(vertices); i += vertexStride {
		assert.Equal(t, float32(0), vertices[i+1], "plane lies on y=0")
		assert.Equal(t, float32(1), vertices[i+4], "plane normal points up")
	}
}

func TestBuildTaperedCylinder(t *testing.T) {
	const segments = 36
	vertices, indices := buildTaperedCylinder(segments)
	checkMesh(t, vertices, indices)

	minY, maxY := float32(math.Inf(1)), float32(math.Inf(-1))
	maxRadius := float64(0)
	for i := 0; i < len(vertices); i += vertexStride {
		y := vertices[i+1]
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
		r := math.Hypot(float64(vertices[i]), float64(vertices[i+2]))
		if r > maxRadius {
			maxRadius = r
		}
	}

	// centered vertically, so translating by half the scaled height puts
	// the base exactly on the floor
	assert.InDelta(t, -cylinderHalfHeight, float64(minY), 1e-5)
	assert.InDelta(t, cylinderHalfHeight, float64(maxY), 1e-5)
	assert.InDelta(t, cylinderTopRadius, maxRadius, 1e-5)
}

func TestBuildTorus(t *testing.T) {
	const rings, sides = 24, 12
	vertices, indices := buildTorus(rings, sides)
	checkMesh(t, vertices, indices)

	assert.Equal(t, (rings+1)*(sides+1), len(vertices)/vertexStride)
	assert.Len(t, indices, rings*sides*6)

	// every vertex sits within the tube's distance of the ring circle
	for i := 0; i < len(vertices); i += vertexStride {
		x := float64(vertices[i])
		y := float64(vertices[i+1])
		z := float64(vertices[i+2])
		ringDist := math.Hypot(x, z) - torusRingRadius
		d := math.Hypot(ringDist, y)
		assert.InDelta(t, torusTubeRadius, d, 1e-5)
	}
}
