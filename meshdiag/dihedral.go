package meshdiag

import "math"

type dihedralResult struct {
	sharpCount    int
	coplanarCount int
	angles        []float64
}

// analyzeDihedral computes the dihedral angle at every edge shared by
// exactly two triangles with non-degenerate normals, reusing the
// unnormalized face normals the triangle-quality pass already
// computed.
func analyzeDihedral(edgeFaces edgeFaceMap, normals []Vec3) dihedralResult {
	var result dihedralResult
	for _, faces := range edgeFaces {
		if len(faces) != 2 {
			continue
		}
		n1, n2 := normals[faces[0]], normals[faces[1]]
		norm1, norm2 := n1.Norm(), n2.Norm()
		if norm1 < 1e-10 || norm2 < 1e-10 {
			continue
		}
		cosTheta := clamp(n1.Scale(1/norm1).Dot(n2.Scale(1/norm2)), -1, 1)
		alpha := math.Acos(cosTheta) * 180 / math.Pi
		delta := 180 - alpha

		result.angles = append(result.angles, delta)
		if delta < defaultSharpAngleDegrees {
			result.sharpCount++
		}
		if delta > defaultCoplanarAngleDegrees {
			result.coplanarCount++
		}
	}
	return result
}
