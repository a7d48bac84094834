// TRS format parser for pre-computed track-section tables.
package formats

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// TRS format errors.
var (
	ErrTruncatedTRSData = errors.New("truncated TRS data")
	ErrInvalidTRSSize   = errors.New("invalid TRS size: not a whole number of records")
)

// TRSRecordSize is the fixed size of one section record in bytes. Only
// a handful of offsets are populated; the rest are reserved.
const TRSRecordSize = 156

// SectionFlags mark special circuit sections.
type SectionFlags int16

// Section flag constants.
const (
	SectionJunctionStart SectionFlags = 1 << 0 // First section of a branch
	SectionJunctionEnd   SectionFlags = 1 << 1 // Section where a branch merges back
	SectionJump          SectionFlags = 1 << 2 // Track gap, vehicles are airborne
)

// SectionRecord is one raw entry of the track-section table. The link
// fields are file indices, not yet bounds-checked against the table.
type SectionRecord struct {
	JunctionIndex int32        // Branch target section, or out of range if none
	PrevIndex     int32        // Previous section along the circuit
	NextIndex     int32        // Next section along the circuit
	Center        mgl32.Vec3   // Section center in track space
	FaceStart     int16        // First face owned by this section
	FaceCount     int16        // Number of owned faces
	Flags         SectionFlags // Section flag bitmask
	SectionNumber int16        // Position in the table
}

// ParseTRS parses a track-section table into raw records in file order.
func ParseTRS(data []byte) ([]SectionRecord, error) {
	if len(data) < TRSRecordSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedTRSData, len(data))
	}
	if len(data)%TRSRecordSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidTRSSize, len(data))
	}

	records := make([]SectionRecord, len(data)/TRSRecordSize)
	for i := range records {
		rec := data[i*TRSRecordSize : (i+1)*TRSRecordSize]
		s := &records[i]

		s.JunctionIndex = int32(binary.BigEndian.Uint32(rec[0:4]))
		s.PrevIndex = int32(binary.BigEndian.Uint32(rec[4:8]))
		s.NextIndex = int32(binary.BigEndian.Uint32(rec[8:12]))
		s.Center = mgl32.Vec3{
			float32(int32(binary.BigEndian.Uint32(rec[12:16]))),
			float32(int32(binary.BigEndian.Uint32(rec[16:20]))),
			float32(int32(binary.BigEndian.Uint32(rec[20:24]))),
		}
		s.FaceStart = int16(binary.BigEndian.Uint16(rec[104:106]))
		s.FaceCount = int16(binary.BigEndian.Uint16(rec[106:108]))
		s.Flags = SectionFlags(binary.BigEndian.Uint16(rec[132:134]))
		s.SectionNumber = int16(binary.BigEndian.Uint16(rec[134:136]))
	}
	return records, nil
}

// ParseTRSFile parses a TRS file from disk.
func ParseTRSFile(path string) ([]SectionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading TRS file: %w", err)
	}
	return ParseTRS(data)
}
