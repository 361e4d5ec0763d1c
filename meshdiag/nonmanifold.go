package meshdiag

// nonManifoldVertices finds every vertex whose incident faces form
// two or more disjoint fans (a pinch point / bowtie).
//
// For each vertex v with at least two incident triangles, it builds
// v's link graph: a node per "other" vertex of each incident
// triangle, with an edge between the two other vertices of each
// triangle. A single breadth-first search from any node must reach
// every node in the link graph; if it doesn't, the fans around v are
// disconnected and v is non-manifold.
func nonManifoldVertices(tris [][3]uint32, v2t vertexTriangles) []uint32 {
	var result []uint32
	for v, incident := range v2t {
		if len(incident) < 2 {
			continue
		}

		adjacency := make(map[uint32][]uint32, len(incident)*2)
		for _, t := range incident {
			tri := tris[t]
			var others [2]uint32
			oi := 0
			for _, corner := range tri {
				if corner != uint32(v) {
					others[oi] = corner
					oi++
				}
			}
			a, b := others[0], others[1]
			adjacency[a] = append(adjacency[a], b)
			adjacency[b] = append(adjacency[b], a)
		}

		var start uint32
		for node := range adjacency {
			start = node
			break
		}

		visited := map[uint32]bool{start: true}
		queue := []uint32{start}
		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			for _, neighbor := range adjacency[node] {
				if !visited[neighbor] {
					visited[neighbor] = true
					queue = append(queue, neighbor)
				}
			}
		}

		if len(visited) != len(adjacency) {
			result = append(result, uint32(v))
		}
	}
	return result
}
