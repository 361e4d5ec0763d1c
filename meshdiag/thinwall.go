package meshdiag

// findThinWalls flags a vertex whose position comes within threshold
// of some other vertex it is not topologically connected to: two
// surfaces of the mesh pinching close together without sharing
// geometry.
func findThinWalls(positions []Vec3, neighbors []map[uint32]bool, threshold float64) int {
	if threshold <= 0 {
		return 0
	}
	cellSize := 3 * threshold
	hash := newSpatialHash(cellSize)
	for i, p := range positions {
		hash.Insert(p, i)
	}

	thresholdSquared := threshold * threshold
	const minSquared = 1e-20 // (1e-10)^2

	count := 0
	for v, p := range positions {
		found := false
		for _, candidate := range hash.QueryNeighborhood(p) {
			if candidate == v {
				continue
			}
			if neighbors[v][uint32(candidate)] {
				continue
			}
			d2 := p.DistSquared(positions[candidate])
			if d2 > minSquared && d2 < thresholdSquared {
				found = true
				break
			}
		}
		if found {
			count++
		}
	}
	return count
}
