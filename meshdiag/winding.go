package meshdiag

// windingResult holds the outputs of the winding-consistency pass.
type windingResult struct {
	inconsistentEdgeCount int
	consistencyPercent    float64
}

// analyzeWinding counts directed-edge traversals and flags edges
// whose two incident triangles traverse the shared edge in the same
// direction instead of opposite directions. Only edges with
// forward+backward count exactly 2 participate; among those, an edge
// with multiplicity {2,0} (both triangles traversing it in the same
// direction) is counted as inconsistent. Boundary edges (one
// traversal) and non-manifold edges (three or more) are excluded from
// both the numerator and the denominator.
func analyzeWinding(tris [][3]uint32, edgeFaces edgeFaceMap) windingResult {
	directed := make(map[DirectedEdgeKey]int, len(tris)*3)
	for _, tri := range tris {
		for i := 0; i < 3; i++ {
			from, to := tri[i], tri[(i+1)%3]
			directed[DirectedEdgeKey{From: from, To: to}]++
		}
	}

	var manifoldForWinding, inconsistent int
	for edge := range edgeFaces {
		f := directed[DirectedEdgeKey{From: edge.A, To: edge.B}]
		g := directed[DirectedEdgeKey{From: edge.B, To: edge.A}]
		if f+g != 2 {
			continue
		}
		manifoldForWinding++
		if f != 1 || g != 1 {
			inconsistent++
		}
	}

	percent := 100.0
	if manifoldForWinding > 0 {
		percent = 100 * float64(manifoldForWinding-inconsistent) / float64(manifoldForWinding)
	}

	return windingResult{
		inconsistentEdgeCount: inconsistent,
		consistencyPercent:    percent,
	}
}
