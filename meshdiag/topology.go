package meshdiag

// unionFind is a plain array-based disjoint-set structure over the
// used vertex set, for counting connected components.
type unionFind struct {
	parent []int32
	rank   []uint8
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int32, n), rank: make([]uint8, n)}
	for i := range uf.parent {
		uf.parent[i] = int32(i)
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != int32(x) {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = int(uf.parent[x])
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = int32(ra)
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
}

// topologyCounters holds the edge and component counters plus the
// shared edge-face map built along the way, so later passes (winding,
// dihedral, overlay) can reuse it instead of rebuilding it.
type topologyCounters struct {
	edgeFaces            edgeFaceMap
	edgeCount            int
	boundaryEdgeCount    int
	nonManifoldEdgeCount int
	manifoldEdgeCount    int
	connectedComponents  int
	eulerCharacteristic  int
	isolatedVertexCount  int
	usedVertexCount      int
}

func computeTopology(vertexCount int, tris [][3]uint32) topologyCounters {
	edgeFaces := buildEdgeFaceMap(tris)

	var boundary, nonManifold, manifold int
	for _, faces := range edgeFaces {
		switch {
		case len(faces) == 1:
			boundary++
		case len(faces) == 2:
			manifold++
		default:
			nonManifold++
		}
	}

	uf := newUnionFind(vertexCount)
	used := make([]bool, vertexCount)
	for _, tri := range tris {
		used[tri[0]] = true
		used[tri[1]] = true
		used[tri[2]] = true
		uf.union(int(tri[0]), int(tri[1]))
		uf.union(int(tri[1]), int(tri[2]))
	}

	usedCount := 0
	roots := make(map[int]bool)
	for v, isUsed := range used {
		if isUsed {
			usedCount++
			roots[uf.find(v)] = true
		}
	}

	edgeCount := len(edgeFaces)
	return topologyCounters{
		edgeFaces:            edgeFaces,
		edgeCount:            edgeCount,
		boundaryEdgeCount:    boundary,
		nonManifoldEdgeCount: nonManifold,
		manifoldEdgeCount:    manifold,
		connectedComponents:  len(roots),
		eulerCharacteristic:  usedCount - edgeCount + len(tris),
		isolatedVertexCount:  vertexCount - usedCount,
		usedVertexCount:      usedCount,
	}
}

// capacityLimitedDiagnostics builds the sentinel diagnostics record
// for the capacity guard: every integer field set to -1, every derived
// boolean false, windingCheckSkipped true, and only the fields that
// don't require the edge-face map populated.
func capacityLimitedDiagnostics(vertexCount, triangleCount int, bbox *BoundingBox) Diagnostics {
	return Diagnostics{
		VertexCount:                  vertexCount,
		TriangleCount:                triangleCount,
		EdgeCount:                    -1,
		BoundaryEdgeCount:            -1,
		NonManifoldEdgeCount:         -1,
		NonManifoldVertexCount:       -1,
		ConnectedComponents:          -1,
		EulerCharacteristic:          -1,
		DegenerateTriangleCount:      -1,
		WindingInconsistentEdgeCount: -1,
		DuplicateVertexCount:         -1,
		TinyTriangleCount:            -1,
		NeedleTriangleCount:          -1,
		IsolatedVertexCount:          -1,
		SharpEdgeCount:               -1,
		CoplanarEdgeCount:            -1,
		SelfIntersectionCount:        -1,
		TJunctionCount:               -1,
		ThinWallCount:                -1,
		CoincidentFaceCount:          -1,
		WindingConsistencyPercent:    -1,
		WindingCheckSkipped:          true,
		ThinWallThreshold:            defaultThinWallFraction,
		BoundingBox:                  bbox,
		IsWatertight:                 false,
		IsManifold:                   false,
		HasNonManifoldVertices:       false,
		HasConsistentWinding:         false,
	}
}
