package meshdiag

import "math"

// coincidentFaceCount counts pairs of triangles that lie on the same
// plane, have centroids no farther apart than one hash cell, and share
// no vertex. Actual overlap of the two triangles is not tested.
func coincidentFaceCount(positions []Vec3, tris [][3]uint32, normals []Vec3, diagonal float64) int {
	t := len(tris)
	if t == 0 {
		return 0
	}

	cellSize := math.Max(diagonal/math.Sqrt(float64(t)/10), 1e-6)
	hash := newSpatialHash(cellSize)

	centroids := make([]Vec3, t)
	for i, tri := range tris {
		v0, v1, v2 := positions[tri[0]], positions[tri[1]], positions[tri[2]]
		centroid := v0.Add(v1).Add(v2).Scale(1.0 / 3)
		centroids[i] = centroid
		hash.Insert(centroid, i)
	}

	planeTolerance := diagonal * defaultCoincidentPlaneEps
	seen := make(map[[2]int]bool)
	count := 0
	for i := range tris {
		for _, j := range hash.QueryNeighborhood(centroids[i]) {
			if j <= i || seen[[2]int{i, j}] {
				continue
			}
			seen[[2]int{i, j}] = true

			if sharesAnyVertex(tris[i], tris[j]) {
				continue
			}

			norm1, norm2 := normals[i].Norm(), normals[j].Norm()
			if norm1 < 1e-10 || norm2 < 1e-10 {
				continue
			}
			n1 := normals[i].Scale(1 / norm1)
			n2 := normals[j].Scale(1 / norm2)
			if math.Abs(n1.Dot(n2)) <= defaultCoincidentNormalDot {
				continue
			}

			if centroids[i].Dist(centroids[j]) > cellSize {
				continue
			}

			offset := n1.Dot(centroids[j].Sub(centroids[i]))
			if math.Abs(offset) >= planeTolerance {
				continue
			}

			count++
		}
	}
	return count
}

func sharesAnyVertex(a, b [3]uint32) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
