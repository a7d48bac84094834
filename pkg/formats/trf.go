// TRF format parser for track face buffers.
package formats

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// TRF format errors.
var (
	ErrTruncatedTRFData = errors.New("truncated TRF data")
	ErrInvalidTRFSize   = errors.New("invalid TRF size: not a whole number of records")
)

// TRFRecordSize is the fixed size of one face record in bytes.
const TRFRecordSize = 20

// Normal components are stored as int16 fixed-point with this scale.
const trfNormalScale = 4096.0

// TrackFaceFlags mark special track faces. The animated markers are
// consumed by the pickup/boost blink animation outside the decoder.
type TrackFaceFlags uint8

// Face flag constants.
const (
	FaceWall      TrackFaceFlags = 1 << 0 // Vertical barrier face
	FacePickup    TrackFaceFlags = 1 << 1 // Collectable pickup tile (animated)
	FaceFlip      TrackFaceFlags = 1 << 2 // Texture flipped horizontally
	FaceStartGrid TrackFaceFlags = 1 << 3 // Starting grid tile
	FaceBoost     TrackFaceFlags = 1 << 4 // Speed boost tile (animated)
)

// IsPickup returns true if the face carries a collectable pickup.
func (f TrackFaceFlags) IsPickup() bool {
	return f&FacePickup != 0
}

// IsBoost returns true if the face is a speed boost tile.
func (f TrackFaceFlags) IsBoost() bool {
	return f&FaceBoost != 0
}

// IsAnimated returns true if the face blinks (pickup or boost).
func (f TrackFaceFlags) IsAnimated() bool {
	return f&(FacePickup|FaceBoost) != 0
}

// TrackFace is one quad of track surface, kept separate from the mesh
// primitives because its metadata must survive past mesh construction:
// the animation collaborator indexes faces by position in this list.
type TrackFace struct {
	Indices [4]int16       // Quad vertex indices into the TRV array
	Normal  mgl32.Vec3     // Face normal
	Texture uint8          // Tile index into the track texture atlas
	Flags   TrackFaceFlags // Face flag bitmask
	Color   uint32         // Face color (ARGB)
}

// Triangles returns the two triangles covering the quad.
func (f *TrackFace) Triangles() [2][3]int16 {
	return [2][3]int16{
		{f.Indices[0], f.Indices[1], f.Indices[2]},
		{f.Indices[2], f.Indices[3], f.Indices[0]},
	}
}

// ParseTRF parses a track face buffer. Vertex indices are not
// bounds-checked here; that happens against the paired TRV array during
// geometry assembly.
func ParseTRF(data []byte) ([]TrackFace, error) {
	if len(data) < TRFRecordSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedTRFData, len(data))
	}
	if len(data)%TRFRecordSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidTRFSize, len(data))
	}

	faces := make([]TrackFace, len(data)/TRFRecordSize)
	for i := range faces {
		rec := data[i*TRFRecordSize : (i+1)*TRFRecordSize]
		face := &faces[i]

		for j := 0; j < 4; j++ {
			face.Indices[j] = int16(binary.BigEndian.Uint16(rec[j*2 : j*2+2]))
		}
		face.Normal = mgl32.Vec3{
			float32(int16(binary.BigEndian.Uint16(rec[8:10]))) / trfNormalScale,
			float32(int16(binary.BigEndian.Uint16(rec[10:12]))) / trfNormalScale,
			float32(int16(binary.BigEndian.Uint16(rec[12:14]))) / trfNormalScale,
		}
		face.Texture = rec[14]
		face.Flags = TrackFaceFlags(rec[15])
		face.Color = binary.BigEndian.Uint32(rec[16:20])
	}
	return faces, nil
}

// ParseTRFFile parses a TRF file from disk.
func ParseTRFFile(path string) ([]TrackFace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading TRF file: %w", err)
	}
	return ParseTRF(data)
}
