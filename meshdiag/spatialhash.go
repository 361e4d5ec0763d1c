package meshdiag

import "math"

// cellKey identifies a cell in a uniform spatial hash grid.
type cellKey struct {
	X, Y, Z int64
}

// spatialHash is the single shared uniform grid implementation backing
// duplicate-vertex, self-intersection, T-junction, thin-wall and
// coincident-face detection, parameterized only by cell size.
type spatialHash struct {
	cellSize float64
	buckets  map[cellKey][]int
}

func newSpatialHash(cellSize float64) *spatialHash {
	if cellSize <= 0 {
		cellSize = 1e-6
	}
	return &spatialHash{cellSize: cellSize, buckets: make(map[cellKey][]int)}
}

func (h *spatialHash) cellOf(p Vec3) cellKey {
	return cellKey{
		X: int64(math.Floor(p.X / h.cellSize)),
		Y: int64(math.Floor(p.Y / h.cellSize)),
		Z: int64(math.Floor(p.Z / h.cellSize)),
	}
}

// Insert adds id to the single cell containing p.
func (h *spatialHash) Insert(p Vec3, id int) {
	key := h.cellOf(p)
	h.buckets[key] = append(h.buckets[key], id)
}

// InsertAABB adds id to every cell overlapped by [min,max].
func (h *spatialHash) InsertAABB(min, max Vec3, id int) {
	cMin := h.cellOf(min)
	cMax := h.cellOf(max)
	for x := cMin.X; x <= cMax.X; x++ {
		for y := cMin.Y; y <= cMax.Y; y++ {
			for z := cMin.Z; z <= cMax.Z; z++ {
				key := cellKey{x, y, z}
				h.buckets[key] = append(h.buckets[key], id)
			}
		}
	}
}

// QueryCell returns the ids stored in p's own cell only.
func (h *spatialHash) QueryCell(p Vec3) []int {
	return h.buckets[h.cellOf(p)]
}

// QueryNeighborhood returns the ids stored in p's cell and its 26
// neighbors (the full 3x3x3 block).
func (h *spatialHash) QueryNeighborhood(p Vec3) []int {
	center := h.cellOf(p)
	var out []int
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				key := cellKey{center.X + dx, center.Y + dy, center.Z + dz}
				out = append(out, h.buckets[key]...)
			}
		}
	}
	return out
}

// QueryAABB returns the ids stored in every cell overlapped by
// [min,max].
func (h *spatialHash) QueryAABB(min, max Vec3) []int {
	cMin := h.cellOf(min)
	cMax := h.cellOf(max)
	var out []int
	for x := cMin.X; x <= cMax.X; x++ {
		for y := cMin.Y; y <= cMax.Y; y++ {
			for z := cMin.Z; z <= cMax.Z; z++ {
				out = append(out, h.buckets[cellKey{x, y, z}]...)
			}
		}
	}
	return out
}
