// Package meshdiag analyzes an indexed triangle mesh and produces a
// diagnostics report of topological defects (holes, non-manifold
// edges, pinch points, winding inconsistency), geometric defects
// (degenerate/needle/tiny triangles, duplicate vertices,
// self-intersections, T-junctions, thin walls, coincident faces) and
// distributional summaries (edge lengths, aspect ratios, valence,
// dihedral angles, bounding volume), plus a problem-geometry overlay
// for a subset of those defects.
//
// Analyze is a pure, synchronous function: it borrows its inputs
// read-only, owns every intermediate it builds, and returns exactly
// one diagnostics record and one overlay record derived from a single
// snapshot of the inputs. It performs no I/O and holds no state
// between calls.
package meshdiag

// Analyze runs the full diagnostics pipeline over a mesh given as a
// flat position array (length 3·V) and a flat triangle index array
// (length 3·T), and returns the diagnostics and overlay records.
func Analyze(positions []float32, indices []uint32, opts ...AnalyzeOption) (Result, error) {
	cfg := newDefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	verts, tris, err := validate(positions, indices)
	if err != nil {
		return Result{}, err
	}

	vertexCount := len(verts)
	triangleCount := len(tris)
	bbox := computeBoundingBox(verts)

	if triangleCount > cfg.triangleCap {
		return Result{Diagnostics: capacityLimitedDiagnostics(vertexCount, triangleCount, bbox)}, nil
	}

	topo := computeTopology(vertexCount, tris)
	v2t := buildVertexTriangles(vertexCount, tris)

	nonManifoldVerts := nonManifoldVertices(tris, v2t)
	winding := analyzeWinding(tris, topo.edgeFaces)
	quality := computeTriangleQuality(verts, tris)
	duplicateCount := duplicateVertexCount(verts, cfg.duplicateEpsilon)
	valence := valenceDistribution(vertexCount, tris)
	dihedral := analyzeDihedral(topo.edgeFaces, quality.normals)

	diagonal := 0.0
	if bbox != nil {
		diagonal = bbox.Diagonal
	}

	intersections := findSelfIntersections(verts, tris, diagonal)

	thinWallThreshold := cfg.thinWallFraction * diagonal
	neighbors := topologicalNeighbors(vertexCount, tris, v2t)
	thinWallCount := findThinWalls(verts, neighbors, thinWallThreshold)

	tJunctionVerts := findTJunctions(verts, topo.edgeFaces, v2t, tris, diagonal)

	coincidentCount := coincidentFaceCount(verts, tris, quality.normals, diagonal)

	overlay := buildOverlay(
		verts,
		topo.edgeFaces,
		nonManifoldVerts,
		intersections,
		tris,
		tJunctionVerts,
		topo.boundaryEdgeCount,
		topo.nonManifoldEdgeCount,
	)

	diagnostics := Diagnostics{
		VertexCount:                  vertexCount,
		TriangleCount:                triangleCount,
		EdgeCount:                    topo.edgeCount,
		BoundaryEdgeCount:            topo.boundaryEdgeCount,
		NonManifoldEdgeCount:         topo.nonManifoldEdgeCount,
		NonManifoldVertexCount:       len(nonManifoldVerts),
		ConnectedComponents:          topo.connectedComponents,
		EulerCharacteristic:          topo.eulerCharacteristic,
		DegenerateTriangleCount:      quality.degenerateCount,
		WindingInconsistentEdgeCount: winding.inconsistentEdgeCount,
		DuplicateVertexCount:         duplicateCount,
		TinyTriangleCount:            quality.tinyCount,
		NeedleTriangleCount:          quality.needleCount,
		IsolatedVertexCount:          topo.isolatedVertexCount,
		SharpEdgeCount:               dihedral.sharpCount,
		CoplanarEdgeCount:            dihedral.coplanarCount,
		SelfIntersectionCount:        len(intersections),
		TJunctionCount:               len(tJunctionVerts),
		ThinWallCount:                thinWallCount,
		CoincidentFaceCount:          coincidentCount,

		WindingConsistencyPercent: winding.consistencyPercent,
		WindingCheckSkipped:       false,
		ThinWallThreshold:         cfg.thinWallFraction,

		EdgeLengthStats:     distributionStatsOf(quality.edgeLengths),
		AspectRatioStats:    distributionStatsOf(quality.aspectRatios),
		DihedralAngleStats:  distributionStatsOf(dihedral.angles),
		ValenceDistribution: valence,
		BoundingBox:         bbox,
	}

	diagnostics.IsWatertight = diagnostics.BoundaryEdgeCount == 0
	diagnostics.IsManifold = diagnostics.NonManifoldEdgeCount == 0
	diagnostics.HasNonManifoldVertices = diagnostics.NonManifoldVertexCount > 0
	diagnostics.HasConsistentWinding = !diagnostics.WindingCheckSkipped &&
		diagnostics.WindingConsistencyPercent >= 99.5

	return Result{Diagnostics: diagnostics, Overlay: overlay}, nil
}
