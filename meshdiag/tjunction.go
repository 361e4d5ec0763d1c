package meshdiag

// uniqueEdge is a single undirected edge together with the positions
// of its two endpoints, used by the T-junction spatial hash.
type uniqueEdge struct {
	a, b   uint32
	pa, pb Vec3
}

// findTJunctions indexes every unique edge in a spatial hash keyed by
// its two endpoints and midpoint, then for each vertex looks for a
// nearby edge it lies on the interior of without being topologically
// connected to.
func findTJunctions(positions []Vec3, edgeFaces edgeFaceMap, v2t vertexTriangles, tris [][3]uint32, diagonal float64) []uint32 {
	tolerance := diagonal * 1e-4
	if tolerance <= 0 {
		return nil
	}
	cellSize := 10 * tolerance
	hash := newSpatialHash(cellSize)

	edges := make([]uniqueEdge, 0, len(edgeFaces))
	for key := range edgeFaces {
		pa, pb := positions[key.A], positions[key.B]
		idx := len(edges)
		edges = append(edges, uniqueEdge{a: key.A, b: key.B, pa: pa, pb: pb})
		mid := pa.Add(pb).Scale(0.5)
		hash.Insert(pa, idx)
		hash.Insert(pb, idx)
		hash.Insert(mid, idx)
	}

	tolSquared := tolerance * tolerance
	var result []uint32
	for v := range v2t {
		p := positions[v]
		seen := make(map[int]bool)
		qualifies := false
		for _, idx := range hash.QueryNeighborhood(p) {
			if seen[idx] {
				continue
			}
			seen[idx] = true

			edge := edges[idx]
			if edge.a == uint32(v) || edge.b == uint32(v) {
				continue
			}

			dir := edge.pb.Sub(edge.pa)
			lenSquared := dir.NormSquared()
			if lenSquared < 1e-20 {
				continue
			}
			t := p.Sub(edge.pa).Dot(dir) / lenSquared
			if t <= defaultTJunctionParamMargin || t >= 1-defaultTJunctionParamMargin {
				continue
			}
			closest := edge.pa.Add(dir.Scale(t))
			if p.DistSquared(closest) >= tolSquared {
				continue
			}

			if vertexIncidentOnEdge(v, edge.a, edge.b, v2t, tris) {
				continue
			}

			qualifies = true
			break
		}
		if qualifies {
			result = append(result, uint32(v))
		}
	}
	return result
}

// vertexIncidentOnEdge reports whether v already belongs to a
// triangle that also contains both endpoints of the candidate edge,
// i.e. v is a legitimate corner rather than a T-junction.
func vertexIncidentOnEdge(v int, a, b uint32, v2t vertexTriangles, tris [][3]uint32) bool {
	for _, t := range v2t[v] {
		tri := tris[t]
		hasA, hasB := false, false
		for _, corner := range tri {
			if corner == a {
				hasA = true
			}
			if corner == b {
				hasB = true
			}
		}
		if hasA && hasB {
			return true
		}
	}
	return false
}
