package meshdiag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cubePositions returns the eight corners of a unit cube centered on
// the origin.
func cubePositions() []float32 {
	return []float32{
		-0.5, -0.5, 0.5, // 0
		0.5, -0.5, 0.5, // 1
		0.5, 0.5, 0.5, // 2
		-0.5, 0.5, 0.5, // 3
		-0.5, -0.5, -0.5, // 4
		0.5, -0.5, -0.5, // 5
		0.5, 0.5, -0.5, // 6
		-0.5, 0.5, -0.5, // 7
	}
}

func closedCubeIndices() []uint32 {
	return []uint32{
		0, 1, 2, 0, 2, 3, // front
		4, 6, 5, 4, 7, 6, // back
		3, 2, 6, 3, 6, 7, // top
		0, 5, 1, 0, 4, 5, // bottom
		1, 5, 6, 1, 6, 2, // right
		0, 3, 7, 0, 7, 4, // left
	}
}

func TestAnalyzeClosedCube(t *testing.T) {
	res, err := Analyze(cubePositions(), closedCubeIndices())
	require.NoError(t, err)
	d := res.Diagnostics

	assert.Equal(t, 8, d.VertexCount)
	assert.Equal(t, 12, d.TriangleCount)
	assert.Equal(t, 18, d.EdgeCount)
	assert.Equal(t, 0, d.BoundaryEdgeCount)
	assert.Equal(t, 0, d.NonManifoldEdgeCount)
	assert.Equal(t, 0, d.NonManifoldVertexCount)
	assert.Equal(t, 1, d.ConnectedComponents)
	assert.Equal(t, 0, d.WindingInconsistentEdgeCount)
	assert.Equal(t, 0, d.DegenerateTriangleCount)
	assert.Equal(t, 0, d.SelfIntersectionCount)
	assert.True(t, d.IsWatertight)
	assert.True(t, d.IsManifold)
	assert.True(t, d.HasConsistentWinding)
	assert.Equal(t, 2, d.EulerCharacteristic)
}

func TestAnalyzeOpenCube(t *testing.T) {
	indices := closedCubeIndices()[6:] // drop the two front-face triangles
	res, err := Analyze(cubePositions(), indices)
	require.NoError(t, err)
	d := res.Diagnostics

	assert.Equal(t, 10, d.TriangleCount)
	assert.Equal(t, 4, d.BoundaryEdgeCount)
	assert.False(t, d.IsWatertight)
	assert.True(t, d.IsManifold)
	assert.True(t, d.HasConsistentWinding)
	assert.Len(t, res.Overlay.BoundaryEdges, 6*4)
}

func TestAnalyzeBowtie(t *testing.T) {
	positions := []float32{
		-1, 0, 0,
		0, 1, 0,
		0, 0, 0,
		0, -1, 0,
		1, 0, 0,
	}
	indices := []uint32{0, 1, 2, 2, 3, 4}

	res, err := Analyze(positions, indices)
	require.NoError(t, err)
	d := res.Diagnostics

	assert.Equal(t, 2, d.TriangleCount)
	assert.Equal(t, 6, d.BoundaryEdgeCount)
	assert.GreaterOrEqual(t, d.NonManifoldVertexCount, 1)
	assert.True(t, d.HasNonManifoldVertices)
	assert.Len(t, res.Overlay.NonManifoldVertices, 3*d.NonManifoldVertexCount)
}

func TestAnalyzeFlippedFaceCube(t *testing.T) {
	indices := closedCubeIndices()
	// Reverse the front face's winding (first two triangles).
	indices[0], indices[1], indices[2] = 0, 2, 1
	indices[3], indices[4], indices[5] = 0, 3, 2

	res, err := Analyze(cubePositions(), indices)
	require.NoError(t, err)
	d := res.Diagnostics

	assert.Equal(t, 0, d.BoundaryEdgeCount)
	assert.Equal(t, 0, d.NonManifoldEdgeCount)
	assert.Greater(t, d.WindingInconsistentEdgeCount, 0)
	assert.False(t, d.HasConsistentWinding)
	assert.True(t, d.IsWatertight)
	assert.True(t, d.IsManifold)
}

func TestAnalyzeDuplicateVertexQuads(t *testing.T) {
	positions := []float32{
		0, 0, 0, // 0
		1, 0, 0, // 1
		1, 1, 0, // 2
		0, 1, 0, // 3
		1, 1, 0, // 4 duplicate of 2
		0, 1, 0, // 5 duplicate of 3
		0, 2, 0, // 6
		1, 2, 0, // 7
	}
	indices := []uint32{
		0, 1, 2, 0, 2, 3,
		5, 4, 7, 5, 7, 6,
	}

	res, err := Analyze(positions, indices)
	require.NoError(t, err)
	d := res.Diagnostics

	assert.Equal(t, 8, d.VertexCount)
	assert.Greater(t, d.DuplicateVertexCount, 0)
	assert.Greater(t, d.BoundaryEdgeCount, 0)
}

func TestAnalyzeCrossingTriangles(t *testing.T) {
	positions := []float32{
		-1, -1, 0,
		1, -1, 0,
		0, 1, 0,
		0, 0, -1,
		0, 0, 1,
		1, 0.5, 0,
	}
	indices := []uint32{0, 1, 2, 3, 4, 5}

	res, err := Analyze(positions, indices)
	require.NoError(t, err)
	d := res.Diagnostics

	assert.Equal(t, 2, d.TriangleCount)
	assert.Equal(t, 2, d.ConnectedComponents)
	assert.Equal(t, 6, d.BoundaryEdgeCount)
	assert.GreaterOrEqual(t, d.SelfIntersectionCount, 1)
	assert.Len(t, res.Overlay.SelfIntersectionCentroids, 3*d.SelfIntersectionCount)
}

func TestAnalyzeEmptyMesh(t *testing.T) {
	res, err := Analyze(nil, nil)
	require.NoError(t, err)
	d := res.Diagnostics

	assert.Equal(t, 0, d.VertexCount)
	assert.Equal(t, 0, d.TriangleCount)
	assert.Nil(t, d.BoundingBox)
	assert.True(t, d.IsWatertight)
	assert.True(t, d.IsManifold)
	assert.Equal(t, 100.0, d.WindingConsistencyPercent)
	assert.True(t, d.HasConsistentWinding)
}

func TestAnalyzeInvalidInput(t *testing.T) {
	_, err := Analyze([]float32{0, 0}, nil)
	assert.Error(t, err)

	_, err = Analyze(cubePositions(), []uint32{0, 1, 99})
	assert.Error(t, err)

	_, err = Analyze([]float32{0, 0, float32(0), 1, 1, 1}, []uint32{0, 1, 0})
	// two vertices, degenerate triangle reusing a vertex is in-contract,
	// not an input error: indices just need to be in range.
	assert.NoError(t, err)
}

func TestAnalyzeTriangleQuality(t *testing.T) {
	positions := []float32{
		0, 0, 0, 1, 0, 0, 0, 1, 0, // A: well-shaped reference triangle
		10, 10, 0, 11, 10, 0, 10, 11, 0, // B: same shape, translated
		20, 20, 0, 20.05, 20, 0, 20, 20.05, 0, // C: tiny but well-shaped
		30, 0, 0, 40, 0, 0, 35, 0.05, 0, // D: long thin sliver (needle)
		50, 0, 0, 52, 0, 0, 51, 0, 0, // E: three collinear points (collapsed)
	}
	indices := []uint32{
		0, 1, 2,
		3, 4, 5,
		6, 7, 8,
		9, 10, 11,
		12, 13, 14,
	}

	res, err := Analyze(positions, indices)
	require.NoError(t, err)
	d := res.Diagnostics

	assert.Equal(t, 1, d.DegenerateTriangleCount, "only the collinear triangle is degenerate")
	assert.Equal(t, 1, d.TinyTriangleCount, "only the small-but-valid triangle is tiny")
	// A fully collapsed sliver reports an infinite aspect ratio and is
	// also a needle, on top of the merely long-and-thin one.
	assert.GreaterOrEqual(t, d.NeedleTriangleCount, 2)
	assert.NotNil(t, d.EdgeLengthStats)
	assert.NotNil(t, d.AspectRatioStats)
}

func TestAnalyzeCapacityGuard(t *testing.T) {
	res, err := Analyze(cubePositions(), closedCubeIndices(), WithTriangleCap(4))
	require.NoError(t, err)
	d := res.Diagnostics

	assert.Equal(t, 12, d.TriangleCount)
	assert.Equal(t, -1, d.EdgeCount)
	assert.Equal(t, -1.0, d.WindingConsistencyPercent)
	assert.True(t, d.WindingCheckSkipped)
	assert.False(t, d.IsWatertight)
	assert.False(t, d.HasConsistentWinding)
	assert.NotNil(t, d.BoundingBox)
}

func TestUniversalInvariants(t *testing.T) {
	res, err := Analyze(cubePositions(), closedCubeIndices())
	require.NoError(t, err)
	d := res.Diagnostics

	assert.Equal(t, d.EulerCharacteristic, (d.VertexCount-d.IsolatedVertexCount)-d.EdgeCount+d.TriangleCount)
	assert.Equal(t, len(res.Overlay.BoundaryEdges), 6*d.BoundaryEdgeCount)
	assert.Equal(t, len(res.Overlay.NonManifoldEdges), 6*d.NonManifoldEdgeCount)
	assert.Equal(t, len(res.Overlay.NonManifoldVertices), 3*d.NonManifoldVertexCount)
	assert.Equal(t, len(res.Overlay.TJunctionVertices), 3*d.TJunctionCount)
}

func TestAnalyzePermutationInvariance(t *testing.T) {
	positions := cubePositions()
	indices := closedCubeIndices()

	res1, err := Analyze(positions, indices)
	require.NoError(t, err)

	reversed := make([]uint32, len(indices))
	for t := 0; t < len(indices)/3; t++ {
		src := len(indices)/3 - 1 - t
		reversed[3*t], reversed[3*t+1], reversed[3*t+2] = indices[3*src], indices[3*src+1], indices[3*src+2]
	}
	res2, err := Analyze(positions, reversed)
	require.NoError(t, err)

	assert.Equal(t, res1.Diagnostics.BoundaryEdgeCount, res2.Diagnostics.BoundaryEdgeCount)
	assert.Equal(t, res1.Diagnostics.EulerCharacteristic, res2.Diagnostics.EulerCharacteristic)
	assert.Equal(t, res1.Diagnostics.IsWatertight, res2.Diagnostics.IsWatertight)
	assert.Equal(t, res1.Diagnostics.IsManifold, res2.Diagnostics.IsManifold)
}
