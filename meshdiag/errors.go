package meshdiag

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// InputError reports a contract violation in the (positions, indices)
// pair handed to Analyze: a ragged array, an out-of-range index, or a
// non-finite coordinate. Analyze fails fast on the first offense
// rather than attempting a partial analysis; every other numerical
// situation (empty mesh, zero-area triangles, degenerate normals, ...)
// is in-contract and never produces an InputError.
type InputError struct {
	cause error
}

func (e *InputError) Error() string {
	return e.cause.Error()
}

func (e *InputError) Unwrap() error {
	return e.cause
}

func raggedPositionsError(n int) error {
	return &InputError{cause: errors.Errorf(
		"meshdiag: positions length %d is not a multiple of 3", n)}
}

func raggedIndicesError(n int) error {
	return &InputError{cause: errors.Errorf(
		"meshdiag: indices length %d is not a multiple of 3", n)}
}

func indexOutOfRangeError(triangle, slot int, index, vertexCount int) error {
	return &InputError{cause: errors.Wrapf(
		fmt.Errorf("index %d is out of range for %d vertices", index, vertexCount),
		"meshdiag: triangle %d, corner %d", triangle, slot)}
}

func nonFiniteCoordinateError(vertex, axis int, value float64) error {
	axisName := [3]string{"x", "y", "z"}[axis]
	return &InputError{cause: errors.Wrapf(
		fmt.Errorf("%s coordinate %v is not finite", axisName, value),
		"meshdiag: vertex %d", vertex)}
}

// validate checks the raw arrays against the input contract and
// returns the decoded positions/triangles on success. It never returns
// a partial result: the first offense aborts validation.
func validate(positions []float32, indices []uint32) ([]Vec3, [][3]uint32, error) {
	if len(positions)%3 != 0 {
		return nil, nil, raggedPositionsError(len(positions))
	}
	if len(indices)%3 != 0 {
		return nil, nil, raggedIndicesError(len(indices))
	}
	vertexCount := len(positions) / 3
	triangleCount := len(indices) / 3

	verts := make([]Vec3, vertexCount)
	for i := 0; i < vertexCount; i++ {
		x := float64(positions[3*i])
		y := float64(positions[3*i+1])
		z := float64(positions[3*i+2])
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, nil, nonFiniteCoordinateError(i, 0, x)
		}
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, nil, nonFiniteCoordinateError(i, 1, y)
		}
		if math.IsNaN(z) || math.IsInf(z, 0) {
			return nil, nil, nonFiniteCoordinateError(i, 2, z)
		}
		verts[i] = Vec3{X: x, Y: y, Z: z}
	}

	tris := make([][3]uint32, triangleCount)
	for t := 0; t < triangleCount; t++ {
		for slot := 0; slot < 3; slot++ {
			idx := indices[3*t+slot]
			if int(idx) >= vertexCount {
				return nil, nil, indexOutOfRangeError(t, slot, int(idx), vertexCount)
			}
			tris[t][slot] = idx
		}
	}
	return verts, tris, nil
}
