// Package meshfixture reads the flat position/index arrays an
// analysis run needs from a JSON file on disk.
package meshfixture

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// MeshData is the on-disk shape of a mesh fixture: a flat array of
// vertex positions (length 3·V) and a flat array of triangle corner
// indices (length 3·T).
type MeshData struct {
	Positions []float32 `json:"positions"`
	Indices   []uint32  `json:"indices"`
}

// Load reads a mesh fixture from filename.
func Load(filename string) (MeshData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return MeshData{}, errors.Wrapf(err, "open mesh fixture %q", filename)
	}
	defer file.Close()

	var data MeshData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return MeshData{}, errors.Wrapf(err, "decode mesh fixture %q", filename)
	}
	return data, nil
}

// Save writes a mesh fixture to filename, useful for capturing a
// problem mesh extracted from a larger asset for later replay.
func Save(filename string, data MeshData) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "create mesh fixture %q", filename)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
