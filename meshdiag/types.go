package meshdiag

// BoundingBox is the axis-aligned box and diagonal of a mesh. It is
// absent (nil) only for an empty mesh.
type BoundingBox struct {
	Min, Max, Size Vec3
	Diagonal       float64
}

func computeBoundingBox(positions []Vec3) *BoundingBox {
	if len(positions) == 0 {
		return nil
	}
	min, max := positions[0], positions[0]
	for _, p := range positions[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	size := max.Sub(min)
	return &BoundingBox{Min: min, Max: max, Size: size, Diagonal: size.Norm()}
}

// DistributionStats summarizes a non-empty sequence of reals. A nil
// *DistributionStats means the underlying sample was empty.
type DistributionStats struct {
	Min, Max, Mean, Median, StdDev float64
}

// Diagnostics is the structured report produced by Analyze. Integer
// fields are -1 only when the capacity guard has triggered; every
// other numerical situation (empty mesh, zero-area triangles,
// single-component graphs, and so on) is in-contract and yields a
// well-defined, non-sentinel value.
type Diagnostics struct {
	VertexCount                  int
	TriangleCount                int
	EdgeCount                    int
	BoundaryEdgeCount            int
	NonManifoldEdgeCount         int
	NonManifoldVertexCount       int
	ConnectedComponents          int
	EulerCharacteristic          int
	DegenerateTriangleCount      int
	WindingInconsistentEdgeCount int
	DuplicateVertexCount         int
	TinyTriangleCount            int
	NeedleTriangleCount          int
	IsolatedVertexCount          int
	SharpEdgeCount               int
	CoplanarEdgeCount            int
	SelfIntersectionCount        int
	TJunctionCount               int
	ThinWallCount                int
	CoincidentFaceCount          int

	WindingConsistencyPercent float64
	WindingCheckSkipped       bool
	ThinWallThreshold         float64

	EdgeLengthStats     *DistributionStats
	AspectRatioStats    *DistributionStats
	DihedralAngleStats  *DistributionStats
	ValenceDistribution map[int]int
	BoundingBox         *BoundingBox

	IsWatertight           bool
	IsManifold             bool
	HasNonManifoldVertices bool
	HasConsistentWinding   bool
}

// Overlay holds the problem-geometry coordinate arrays a viewer can
// render to highlight defects in 3D. Each array is a flat sequence of
// float32 triples (or sextuples for edges), in the same coordinate
// frame as the input positions.
type Overlay struct {
	BoundaryEdges             []float32
	NonManifoldEdges          []float32
	NonManifoldVertices       []float32
	SelfIntersectionCentroids []float32
	TJunctionVertices         []float32
}

// Result bundles the two output records Analyze produces from a
// single snapshot of its inputs.
type Result struct {
	Diagnostics Diagnostics
	Overlay     Overlay
}

func appendVec3(dst []float32, v Vec3) []float32 {
	return append(dst, float32(v.X), float32(v.Y), float32(v.Z))
}
