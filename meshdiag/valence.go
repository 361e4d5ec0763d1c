package meshdiag

// valenceDistribution builds a histogram of per-vertex triangle
// incidence. Valence-0 vertices (isolated, or simply absent from any
// triangle) are omitted from the histogram.
func valenceDistribution(vertexCount int, tris [][3]uint32) map[int]int {
	valence := make([]int, vertexCount)
	for _, tri := range tris {
		valence[tri[0]]++
		valence[tri[1]]++
		valence[tri[2]]++
	}

	histogram := make(map[int]int)
	for _, v := range valence {
		if v > 0 {
			histogram[v]++
		}
	}
	return histogram
}
