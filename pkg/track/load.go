package track

import (
	"fmt"
	"os"
	"path/filepath"
)

// Fixed file names inside a circuit directory.
const (
	VertexFileName  = "track.trv"
	FaceFileName    = "track.trf"
	SectionFileName = "track.trs"
)

// Load assembles a complete Track from the three circuit buffers:
// geometry from TRV/TRF, the section graph from TRS, and pickups
// derived from flagged faces.
func Load(trvData, trfData, trsData []byte, opts ...Option) (*Track, error) {
	mesh, faces, err := BuildGeometry(trvData, trfData)
	if err != nil {
		return nil, err
	}

	track, err := BuildGraph(trsData, opts...)
	if err != nil {
		return nil, err
	}

	track.Mesh = mesh
	track.Faces = faces
	track.Pickups = derivePickups(mesh, faces)

	return track, nil
}

// LoadDir loads a circuit from a directory using the fixed file names.
func LoadDir(dir string, opts ...Option) (*Track, error) {
	trv, err := os.ReadFile(filepath.Join(dir, VertexFileName))
	if err != nil {
		return nil, fmt.Errorf("reading track vertices: %w", err)
	}
	trf, err := os.ReadFile(filepath.Join(dir, FaceFileName))
	if err != nil {
		return nil, fmt.Errorf("reading track faces: %w", err)
	}
	trs, err := os.ReadFile(filepath.Join(dir, SectionFileName))
	if err != nil {
		return nil, fmt.Errorf("reading track sections: %w", err)
	}
	return Load(trv, trf, trs, opts...)
}
