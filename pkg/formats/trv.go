// TRV format parser for track vertex buffers.
package formats

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// TRV format errors.
var (
	ErrTruncatedTRVData = errors.New("truncated TRV data")
	ErrInvalidTRVSize   = errors.New("invalid TRV size: not a whole number of records")
)

// TRVRecordSize is the fixed size of one vertex record in bytes.
const TRVRecordSize = 16

// ParseTRV parses a track vertex buffer into track-space positions.
// Each record holds big-endian int32 x, y, z followed by 4 padding bytes.
func ParseTRV(data []byte) ([]mgl32.Vec3, error) {
	if len(data) < TRVRecordSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedTRVData, len(data))
	}
	if len(data)%TRVRecordSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidTRVSize, len(data))
	}

	vertices := make([]mgl32.Vec3, len(data)/TRVRecordSize)
	for i := range vertices {
		rec := data[i*TRVRecordSize : (i+1)*TRVRecordSize]
		vertices[i] = mgl32.Vec3{
			float32(int32(binary.BigEndian.Uint32(rec[0:4]))),
			float32(int32(binary.BigEndian.Uint32(rec[4:8]))),
			float32(int32(binary.BigEndian.Uint32(rec[8:12]))),
		}
	}
	return vertices, nil
}

// ParseTRVFile parses a TRV file from disk.
func ParseTRVFile(path string) ([]mgl32.Vec3, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading TRV file: %w", err)
	}
	return ParseTRV(data)
}
