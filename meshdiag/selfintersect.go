package meshdiag

import "math"

// intersectingPair is one confirmed self-intersecting triangle pair,
// kept around so the overlay pass can derive its centroid without
// re-deriving which pairs qualified.
type intersectingPair struct {
	t1, t2 int
}

// findSelfIntersections finds pairs of non-adjacent triangles that
// actually intersect in space, using a uniform spatial hash broad
// phase over triangle AABBs followed by a Möller triangle-triangle
// test narrow phase.
func findSelfIntersections(positions []Vec3, tris [][3]uint32, diagonal float64) []intersectingPair {
	t := len(tris)
	if t == 0 {
		return nil
	}

	avgEdge := diagonal / math.Sqrt(float64(t)/2)
	if math.IsNaN(avgEdge) || math.IsInf(avgEdge, 0) {
		avgEdge = 0
	}
	cellSize := math.Max(2*avgEdge, 1e-6)
	hash := newSpatialHash(cellSize)

	mins := make([]Vec3, t)
	maxs := make([]Vec3, t)
	for i, tri := range tris {
		v0, v1, v2 := positions[tri[0]], positions[tri[1]], positions[tri[2]]
		min := v0.Min(v1).Min(v2)
		max := v0.Max(v1).Max(v2)
		mins[i], maxs[i] = min, max
		hash.InsertAABB(min, max, i)
	}

	seen := make(map[[2]int]bool)
	var pairs []intersectingPair
	for i := range tris {
		candidates := hash.QueryAABB(mins[i], maxs[i])
		for _, j := range candidates {
			if j <= i {
				continue
			}
			key := [2]int{i, j}
			if seen[key] {
				continue
			}
			seen[key] = true

			if sharesAtLeastTwoVertices(tris[i], tris[j]) {
				continue
			}
			if trianglesIntersect(positions, tris[i], tris[j]) {
				pairs = append(pairs, intersectingPair{t1: i, t2: j})
			}
		}
	}
	return pairs
}

func sharesAtLeastTwoVertices(a, b [3]uint32) bool {
	shared := 0
	for _, x := range a {
		for _, y := range b {
			if x == y {
				shared++
			}
		}
	}
	return shared >= 2
}

const selfIntersectTolerance = defaultSelfIntersectTolerance

// trianglesIntersect runs the Möller triangle-triangle test: a
// plane-distance separation test against each triangle's plane, an
// intersection-line axis projection for the general case, and a 2D
// overlap test when the two triangles are coplanar.
func trianglesIntersect(positions []Vec3, triA, triB [3]uint32) bool {
	a := [3]Vec3{positions[triA[0]], positions[triA[1]], positions[triA[2]]}
	b := [3]Vec3{positions[triB[0]], positions[triB[1]], positions[triB[2]]}

	nA := triangleNormal(a[0], a[1], a[2])
	nB := triangleNormal(b[0], b[1], b[2])
	dA := nA.Dot(a[0])
	dB := nB.Dot(b[0])

	distB := [3]float64{nA.Dot(b[0]) - dA, nA.Dot(b[1]) - dA, nA.Dot(b[2]) - dA}
	if allSameSign(distB, selfIntersectTolerance) {
		return false
	}
	distA := [3]float64{nB.Dot(a[0]) - dB, nB.Dot(a[1]) - dB, nB.Dot(a[2]) - dB}
	if allSameSign(distA, selfIntersectTolerance) {
		return false
	}

	d := nA.Cross(nB)
	if d.NormSquared() < 1e-20 {
		return coplanarTrianglesIntersect(a, b, nA)
	}

	axis := dominantAxis(d)
	loA, hiA := triangleAxisInterval(a, distA, axis)
	loB, hiB := triangleAxisInterval(b, distB, axis)

	// The intervals must overlap by more than the tolerance: triangles
	// that only touch at a point (e.g. faces sharing a single vertex)
	// are not reported.
	return math.Max(loA, loB) < math.Min(hiA, hiB)-selfIntersectTolerance
}

func allSameSign(d [3]float64, tol float64) bool {
	allPositive := d[0] > tol && d[1] > tol && d[2] > tol
	allNegative := d[0] < -tol && d[1] < -tol && d[2] < -tol
	return allPositive || allNegative
}

func dominantAxis(v Vec3) int {
	arr := v.Array()
	axis := 0
	best := math.Abs(arr[0])
	for i := 1; i < 3; i++ {
		if math.Abs(arr[i]) > best {
			best = math.Abs(arr[i])
			axis = i
		}
	}
	return axis
}

func axisComponent(v Vec3, axis int) float64 {
	return v.Array()[axis]
}

// triangleAxisInterval finds the interval, along the given axis, that
// a triangle's intersection with the other triangle's plane can
// occupy. dist holds the signed distance of each of the triangle's
// own vertices to the other triangle's plane; an edge whose endpoints
// have opposite-signed (or near-zero) distances crosses the plane,
// and its crossing point's axis coordinate is a candidate interval
// bound.
func triangleAxisInterval(tri [3]Vec3, dist [3]float64, axis int) (lo, hi float64) {
	var points []float64
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		di, dj := dist[i], dist[j]
		if math.Abs(di) <= selfIntersectTolerance {
			points = append(points, axisComponent(tri[i], axis))
		}
		if di*dj < 0 {
			t := di / (di - dj)
			p := tri[i].Add(tri[j].Sub(tri[i]).Scale(t))
			points = append(points, axisComponent(p, axis))
		}
	}
	if len(points) == 0 {
		// Degenerate: the triangle doesn't actually cross the other
		// triangle's plane within tolerance; collapse to a single
		// point so the interval overlap test below fails cleanly.
		c := axisComponent(tri[0], axis)
		return c, c
	}
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}
	return lo, hi
}

// coplanarTrianglesIntersect is the fallback for two triangles on
// (nearly) the same plane: project onto the 2D plane obtained by
// dropping the axis along which the shared normal has its
// largest-magnitude component, then test for edge crossings or vertex
// containment.
func coplanarTrianglesIntersect(a, b [3]Vec3, normal Vec3) bool {
	drop := dominantAxis(normal)
	u, v := 0, 1
	switch drop {
	case 0:
		u, v = 1, 2
	case 1:
		u, v = 0, 2
	case 2:
		u, v = 0, 1
	}
	project := func(p Vec3) [2]float64 {
		arr := p.Array()
		return [2]float64{arr[u], arr[v]}
	}

	pa := [3][2]float64{project(a[0]), project(a[1]), project(a[2])}
	pb := [3][2]float64{project(b[0]), project(b[1]), project(b[2])}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if segmentsCrossStrict(pa[i], pa[(i+1)%3], pb[j], pb[(j+1)%3]) {
				return true
			}
		}
	}

	for _, p := range pa {
		if pointStrictlyInsideTriangle(p, pb) {
			return true
		}
	}
	for _, p := range pb {
		if pointStrictlyInsideTriangle(p, pa) {
			return true
		}
	}
	return false
}

func cross2(o, a, b [2]float64) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}

// segmentsCrossStrict reports a 2D segment crossing, with endpoints
// excluded to a small tolerance.
func segmentsCrossStrict(p1, p2, p3, p4 [2]float64) bool {
	const tol = 1e-8
	d1 := cross2(p3, p4, p1)
	d2 := cross2(p3, p4, p2)
	d3 := cross2(p1, p2, p3)
	d4 := cross2(p1, p2, p4)
	return ((d1 > tol && d2 < -tol) || (d1 < -tol && d2 > tol)) &&
		((d3 > tol && d4 < -tol) || (d3 < -tol && d4 > tol))
}

// pointStrictlyInsideTriangle uses a barycentric test with
// u>eps, v>eps, u+v<1-eps (eps = 1e-8), so a point exactly on an edge
// does not count.
func pointStrictlyInsideTriangle(p [2]float64, tri [3][2]float64) bool {
	v0 := [2]float64{tri[2][0] - tri[0][0], tri[2][1] - tri[0][1]}
	v1 := [2]float64{tri[1][0] - tri[0][0], tri[1][1] - tri[0][1]}
	v2 := [2]float64{p[0] - tri[0][0], p[1] - tri[0][1]}

	dot00 := v0[0]*v0[0] + v0[1]*v0[1]
	dot01 := v0[0]*v1[0] + v0[1]*v1[1]
	dot02 := v0[0]*v2[0] + v0[1]*v2[1]
	dot11 := v1[0]*v1[0] + v1[1]*v1[1]
	dot12 := v1[0]*v2[0] + v1[1]*v2[1]

	denom := dot00*dot11 - dot01*dot01
	if math.Abs(denom) < 1e-20 {
		return false
	}
	invDenom := 1 / denom
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom

	const eps = 1e-8
	return u > eps && v > eps && u+v < 1-eps
}
