package geometry

import (
	"math"
)

// The generators below return interleaved vertex data (position, normal,
// texcoord) and triangle indices. All shapes are unit-sized and centered at
// the origin; the scene sizes them through the model matrix.

// buildPlane is a flat quad on the XZ plane, normal +Y, spanning ±1.
func buildPlane() ([]float32, []uint32) {
	vertices := []float32{
		// x, y, z, nx, ny, nz, u, v
		-1, 0, -1, 0, 1, 0, 0, 1,
		-1, 0, 1, 0, 1, 0, 0, 0,
		1, 0, 1, 0, 1, 0, 1, 0,
		1, 0, -1, 0, 1, 0, 1, 1,
	}
	indices := []uint32{
		0, 1, 2,
		0, 2, 3,
	}
	return vertices, indices
}

// Tapered cylinder proportions: a mug silhouette, slightly narrower at the
// bottom, spanning y ∈ [-0.5, 0.5] so a translate of half the scaled height
// rests the base on the floor.
const (
	cylinderTopRadius    = 0.5
	cylinderBottomRadius = 0.4
	cylinderHalfHeight   = 0.5
)

func buildTaperedCylinder(segments int) ([]float32, []uint32) {
	var vertices []float32
	var indices []uint32

	// Side normals lean with the taper.
	slope := float64(cylinderBottomRadius-cylinderTopRadius) / (2 * cylinderHalfHeight)
	normalScale := 1 / math.Sqrt(1+slope*slope)

	// Side rings: one extra column so UVs can wrap to 1.
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		cos := math.Cos(angle)
		sin := math.Sin(angle)
		u := float32(i) / float32(segments)

		nx := float32(cos * normalScale)
		ny := float32(slope * normalScale)
		nz := float32(sin * normalScale)

		vertices = append(vertices,
			float32(cos)*cylinderBottomRadius, -cylinderHalfHeight, float32(sin)*cylinderBottomRadius,
			nx, ny, nz,
			u, 0,
		)
		vertices = append(vertices,
			float32(cos)*cylinderTopRadius, cylinderHalfHeight, float32(sin)*cylinderTopRadius,
			nx, ny, nz,
			u, 1,
		)
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		indices = append(indices,
			base, base+1, base+2,
			base+2, base+1, base+3,
		)
	}

	// Caps: center fan, flat normals.
	capStart := uint32(len(vertices) / vertexStride)
	vertices = append(vertices,
		0, -cylinderHalfHeight, 0, 0, -1, 0, 0.5, 0.5,
		0, cylinderHalfHeight, 0, 0, 1, 0, 0.5, 0.5,
	)
	bottomCenter := capStart
	topCenter := capStart + 1

	rimStart := uint32(len(vertices) / vertexStride)
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		cos := float32(math.Cos(angle))
		sin := float32(math.Sin(angle))

		vertices = append(vertices,
			cos*cylinderBottomRadius, -cylinderHalfHeight, sin*cylinderBottomRadius,
			0, -1, 0,
			0.5+cos*0.5, 0.5+sin*0.5,
		)
		vertices = append(vertices,
			cos*cylinderTopRadius, cylinderHalfHeight, sin*cylinderTopRadius,
			0, 1, 0,
			0.5+cos*0.5, 0.5+sin*0.5,
		)
	}
	for i := 0; i < segments; i++ {
		bottom := rimStart + uint32(i*2)
		top := rimStart + uint32(i*2) + 1
		indices = append(indices,
			bottomCenter, bottom+2, bottom,
			topCenter, top, top+2,
		)
	}

	return vertices, indices
}

// Torus proportions: ring radius and tube thickness tuned for the mug
// handle before the model matrix flattens it.
const (
	torusRingRadius = 0.5
	torusTubeRadius = 0.2
)

func buildTorus(rings, sides int) ([]float32, []uint32) {
	var vertices []float32
	var indices []uint32

	for i := 0; i <= rings; i++ {
		theta := 2 * math.Pi * float64(i) / float64(rings)
		cosTheta := math.Cos(theta)
		sinTheta := math.Sin(theta)

		for j := 0; j <= sides; j++ {
			phi := 2 * math.Pi * float64(j) / float64(sides)
			cosPhi := math.Cos(phi)
			sinPhi := math.Sin(phi)

			x := (torusRingRadius + torusTubeRadius*cosPhi) * cosTheta
			y := torusTubeRadius * sinPhi
			z := (torusRingRadius + torusTubeRadius*cosPhi) * sinTheta

			vertices = append(vertices,
				float32(x), float32(y), float32(z),
				float32(cosPhi*cosTheta), float32(sinPhi), float32(cosPhi*sinTheta),
				float32(i)/float32(rings), float32(j)/float32(sides),
			)
		}
	}

	stride := uint32(sides + 1)
	for i := 0; i < rings; i++ {
		for j := 0; j < sides; j++ {
			a := uint32(i)*stride + uint32(j)
			b := a + stride
			indices = append(indices,
				a, b, a+1,
				a+1, b, b+1,
			)
		}
	}

	return vertices, indices
}
