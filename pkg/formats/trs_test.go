package formats

import (
	"encoding/binary"
	"errors"
	"testing"
)

// createTestTRSRecord builds one 156-byte section record with the
// populated offsets filled in.
func createTestTRSRecord(junction, prev, next int32, center [3]int32, faceStart, faceCount, flags, number int16) []byte {
	rec := make([]byte, TRSRecordSize)
	binary.BigEndian.PutUint32(rec[0:4], uint32(junction))
	binary.BigEndian.PutUint32(rec[4:8], uint32(prev))
	binary.BigEndian.PutUint32(rec[8:12], uint32(next))
	binary.BigEndian.PutUint32(rec[12:16], uint32(center[0]))
	binary.BigEndian.PutUint32(rec[16:20], uint32(center[1]))
	binary.BigEndian.PutUint32(rec[20:24], uint32(center[2]))
	binary.BigEndian.PutUint16(rec[104:106], uint16(faceStart))
	binary.BigEndian.PutUint16(rec[106:108], uint16(faceCount))
	binary.BigEndian.PutUint16(rec[132:134], uint16(flags))
	binary.BigEndian.PutUint16(rec[134:136], uint16(number))
	return rec
}

func TestParseTRS_SingleRecord(t *testing.T) {
	data := createTestTRSRecord(-1, 4, 6, [3]int32{1000, -50, 2000}, 120, 8, int16(SectionJump), 5)

	records, err := ParseTRS(data)
	if err != nil {
		t.Fatalf("ParseTRS failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.JunctionIndex != -1 {
		t.Errorf("expected junction index -1, got %d", rec.JunctionIndex)
	}
	if rec.PrevIndex != 4 || rec.NextIndex != 6 {
		t.Errorf("expected prev/next 4/6, got %d/%d", rec.PrevIndex, rec.NextIndex)
	}
	if rec.Center.X() != 1000 || rec.Center.Y() != -50 || rec.Center.Z() != 2000 {
		t.Errorf("expected center (1000, -50, 2000), got %v", rec.Center)
	}
	if rec.FaceStart != 120 || rec.FaceCount != 8 {
		t.Errorf("expected face range 120+8, got %d+%d", rec.FaceStart, rec.FaceCount)
	}
	if rec.Flags != SectionJump {
		t.Errorf("expected flags %d, got %d", SectionJump, rec.Flags)
	}
	if rec.SectionNumber != 5 {
		t.Errorf("expected section number 5, got %d", rec.SectionNumber)
	}
}

func TestParseTRS_FileOrder(t *testing.T) {
	var data []byte
	for i := int16(0); i < 4; i++ {
		data = append(data, createTestTRSRecord(-1, int32(i-1), int32(i+1), [3]int32{int32(i) * 100, 0, 0}, 0, 0, 0, i)...)
	}

	records, err := ParseTRS(data)
	if err != nil {
		t.Fatalf("ParseTRS failed: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}
	for i, rec := range records {
		if int(rec.SectionNumber) != i {
			t.Errorf("record %d: expected section number %d, got %d", i, i, rec.SectionNumber)
		}
	}
}

func TestParseTRS_EmptyBuffer(t *testing.T) {
	_, err := ParseTRS(nil)
	if !errors.Is(err, ErrTruncatedTRSData) {
		t.Errorf("expected ErrTruncatedTRSData for empty buffer, got %v", err)
	}
}

func TestParseTRS_ShortBuffer(t *testing.T) {
	_, err := ParseTRS(make([]byte, TRSRecordSize-10))
	if !errors.Is(err, ErrTruncatedTRSData) {
		t.Errorf("expected ErrTruncatedTRSData for short buffer, got %v", err)
	}
}

func TestParseTRS_PartialRecord(t *testing.T) {
	_, err := ParseTRS(make([]byte, TRSRecordSize+77))
	if !errors.Is(err, ErrInvalidTRSSize) {
		t.Errorf("expected ErrInvalidTRSSize, got %v", err)
	}
}
