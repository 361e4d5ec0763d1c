package meshdiag

// EdgeKey is a canonicalized undirected edge {a,b}, a != b, always
// stored with the smaller index first. A struct key is used uniformly
// here rather than a bit-packed int64 (a documented simplification,
// see DESIGN.md) since Go's map implementation already gives struct
// keys O(1) amortized lookup without the bit-packing ceremony.
type EdgeKey struct {
	A, B uint32
}

func canonicalEdge(a, b uint32) EdgeKey {
	if a < b {
		return EdgeKey{a, b}
	}
	return EdgeKey{b, a}
}

// DirectedEdgeKey is an ordered pair (from, to) as traversed by one
// triangle corner.
type DirectedEdgeKey struct {
	From, To uint32
}

// edgeFaceMap maps an undirected edge to the list of triangle indices
// incident on it.
type edgeFaceMap map[EdgeKey][]int

func buildEdgeFaceMap(tris [][3]uint32) edgeFaceMap {
	m := make(edgeFaceMap, len(tris)*3/2)
	for t, tri := range tris {
		for i := 0; i < 3; i++ {
			a, b := tri[i], tri[(i+1)%3]
			key := canonicalEdge(a, b)
			m[key] = append(m[key], t)
		}
	}
	return m
}

// vertexTriangles maps a vertex index to the list of triangle indices
// incident on it. It is reused by the non-manifold, thin-wall, and
// T-junction passes to avoid rebuilding per-vertex adjacency three
// times over.
type vertexTriangles [][]int

func buildVertexTriangles(vertexCount int, tris [][3]uint32) vertexTriangles {
	v2t := make(vertexTriangles, vertexCount)
	for t, tri := range tris {
		for _, v := range tri {
			v2t[v] = append(v2t[v], t)
		}
	}
	return v2t
}

// topologicalNeighbors returns, for each vertex, the set of distinct
// vertices sharing at least one triangle with it.
func topologicalNeighbors(vertexCount int, tris [][3]uint32, v2t vertexTriangles) []map[uint32]bool {
	neighbors := make([]map[uint32]bool, vertexCount)
	for v := range neighbors {
		neighbors[v] = make(map[uint32]bool, len(v2t[v])*2)
	}
	for v := range neighbors {
		for _, t := range v2t[v] {
			for _, other := range tris[t] {
				if other != uint32(v) {
					neighbors[v][other] = true
				}
			}
		}
	}
	return neighbors
}
