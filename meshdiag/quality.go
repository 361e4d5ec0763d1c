package meshdiag

import (
	"math"
	"sort"
)

// triangleQuality holds the per-triangle measurements computed once
// and shared with the dihedral and coincident-face passes instead of
// recomputing face normals a second time.
type triangleQuality struct {
	degenerateCount int
	tinyCount       int
	needleCount     int
	edgeLengths     []float64
	aspectRatios    []float64
	areas           []float64
	normals         []Vec3 // unnormalized face normal per triangle
}

func triangleEdgeLengths(v0, v1, v2 Vec3) (e0, e1, e2 float64) {
	return v0.Dist(v1), v1.Dist(v2), v2.Dist(v0)
}

func triangleNormal(v0, v1, v2 Vec3) Vec3 {
	return v1.Sub(v0).Cross(v2.Sub(v0))
}

func triangleArea(normal Vec3) float64 {
	return 0.5 * normal.Norm()
}

func computeTriangleQuality(positions []Vec3, tris [][3]uint32) triangleQuality {
	t := len(tris)
	edgeLengths := make([]float64, 0, t*3)
	aspectRatios := make([]float64, 0, t)
	areas := make([]float64, t)
	aspects := make([]float64, t)
	normals := make([]Vec3, t)
	fourAreaSquared := make([]float64, t)

	sampleCount := t
	if sampleCount > 1000 {
		sampleCount = 1000
	}
	var sampleEdgeSum float64
	var sampleEdgeN int

	for i, tri := range tris {
		v0, v1, v2 := positions[tri[0]], positions[tri[1]], positions[tri[2]]
		e0, e1, e2 := triangleEdgeLengths(v0, v1, v2)
		edgeLengths = append(edgeLengths, e0, e1, e2)

		normal := triangleNormal(v0, v1, v2)
		normals[i] = normal
		area := triangleArea(normal)
		areas[i] = area
		fourAreaSquared[i] = 4 * area * area

		maxEdge := math.Max(e0, math.Max(e1, e2))
		var aspect float64
		if area <= 0 {
			aspect = math.Inf(1)
		} else {
			hMin := 2 * area / maxEdge
			if hMin < 1e-10 {
				aspect = math.Inf(1)
			} else {
				aspect = maxEdge / hMin
			}
		}
		aspects[i] = aspect
		if !math.IsInf(aspect, 1) {
			aspectRatios = append(aspectRatios, aspect)
		}

		if i < sampleCount {
			sampleEdgeSum += e0 + e1 + e2
			sampleEdgeN += 3
		}
	}

	var avgEdge float64
	if sampleEdgeN > 0 {
		avgEdge = sampleEdgeSum / float64(sampleEdgeN)
	}
	expectedAreaSquared := 0.1875 * avgEdge * avgEdge

	medianArea := median(areas)

	var degenerate, tiny, needle int
	for i := range tris {
		if fourAreaSquared[i] < defaultDegenerateAreaRatio*expectedAreaSquared {
			degenerate++
		}
		if areas[i] > 0 && areas[i] < defaultTinyAreaFraction*medianArea {
			tiny++
		}
		// A fully collapsed sliver reports an infinite aspect ratio,
		// which still satisfies the needle threshold; aspects is
		// checked directly here rather than the aspectRatios slice,
		// which drops infinities before they reach the distribution
		// stats.
		if aspects[i] > defaultNeedleAspectRatio {
			needle++
		}
	}

	return triangleQuality{
		degenerateCount: degenerate,
		tinyCount:       tiny,
		needleCount:     needle,
		edgeLengths:     edgeLengths,
		aspectRatios:    aspectRatios,
		areas:           areas,
		normals:         normals,
	}
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
