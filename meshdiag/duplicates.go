package meshdiag

// duplicateVertexCount counts vertices that sit within epsilon of an
// earlier vertex, using a spatial hash with cell size 10·epsilon. Only
// a vertex's own cell is probed, not its 27-cell neighborhood, so a
// duplicate straddling a cell boundary can be missed.
func duplicateVertexCount(positions []Vec3, epsilon float64) int {
	cellSize := 10 * epsilon
	epsSquared := epsilon * epsilon
	hash := newSpatialHash(cellSize)

	count := 0
	for i, p := range positions {
		isDuplicate := false
		for _, priorIdx := range hash.QueryCell(p) {
			if p.DistSquared(positions[priorIdx]) < epsSquared {
				isDuplicate = true
				break
			}
		}
		if isDuplicate {
			count++
		}
		hash.Insert(p, i)
	}
	return count
}
