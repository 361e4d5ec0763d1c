package meshdiag

// buildOverlay assembles the problem-geometry coordinate arrays a
// viewer highlights in 3D. Each sub-extraction only runs when its
// corresponding diagnostic count is positive.
func buildOverlay(
	positions []Vec3,
	edgeFaces edgeFaceMap,
	nonManifoldVerts []uint32,
	intersections []intersectingPair,
	tris [][3]uint32,
	tJunctionVerts []uint32,
	boundaryEdgeCount, nonManifoldEdgeCount int,
) Overlay {
	var overlay Overlay

	if boundaryEdgeCount > 0 || nonManifoldEdgeCount > 0 {
		for edge, faces := range edgeFaces {
			pa, pb := positions[edge.A], positions[edge.B]
			switch {
			case len(faces) == 1:
				overlay.BoundaryEdges = appendVec3(overlay.BoundaryEdges, pa)
				overlay.BoundaryEdges = appendVec3(overlay.BoundaryEdges, pb)
			case len(faces) >= 3:
				overlay.NonManifoldEdges = appendVec3(overlay.NonManifoldEdges, pa)
				overlay.NonManifoldEdges = appendVec3(overlay.NonManifoldEdges, pb)
			}
		}
	}

	if len(nonManifoldVerts) > 0 {
		for _, v := range nonManifoldVerts {
			overlay.NonManifoldVertices = appendVec3(overlay.NonManifoldVertices, positions[v])
		}
	}

	if len(intersections) > 0 {
		for _, pair := range intersections {
			t1, t2 := tris[pair.t1], tris[pair.t2]
			sum := Vec3{}
			for _, v := range t1 {
				sum = sum.Add(positions[v])
			}
			for _, v := range t2 {
				sum = sum.Add(positions[v])
			}
			overlay.SelfIntersectionCentroids = appendVec3(overlay.SelfIntersectionCentroids, sum.Scale(1.0/6))
		}
	}

	if len(tJunctionVerts) > 0 {
		for _, v := range tJunctionVerts {
			overlay.TJunctionVertices = appendVec3(overlay.TJunctionVertices, positions[v])
		}
	}

	return overlay
}
