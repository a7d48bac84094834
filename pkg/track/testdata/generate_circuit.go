//go:build ignore

// This program generates a small test circuit (track.trv, track.trf,
// track.trs) for manual runs of the tracktool CLI.
// Run with: go run generate_circuit.go
package main

import (
	"bytes"
	"encoding/binary"
	"os"
)

const trsRecordSize = 156

func main() {
	// An 8-section closed loop laid out on a square, two quad faces per
	// section side, with one pickup tile.
	centers := [][3]int32{
		{0, 0, 0}, {2000, 0, 0}, {4000, 0, 0}, {4000, 0, 2000},
		{4000, 0, 4000}, {2000, 0, 4000}, {0, 0, 4000}, {0, 0, 2000},
	}

	// Vertices: a quad strip along the loop centerline.
	var trv bytes.Buffer
	for _, c := range centers {
		writeVertex(&trv, c[0]-500, c[1], c[2]-500)
		writeVertex(&trv, c[0]+500, c[1], c[2]+500)
	}

	var trf bytes.Buffer
	n := len(centers)
	for i := 0; i < n; i++ {
		a, b := int16(i*2), int16(((i+1)%n)*2)
		flags := uint8(0)
		if i == 3 {
			flags = 1 << 1 // pickup tile
		}
		writeFace(&trf, [4]int16{a, a + 1, b + 1, b}, flags)
	}

	var trs bytes.Buffer
	for i := range centers {
		writeSection(&trs, i, n, centers[i])
	}

	write("track.trv", trv.Bytes())
	write("track.trf", trf.Bytes())
	write("track.trs", trs.Bytes())

	println("Generated circuit:", n, "sections,", n, "faces")
}

func writeVertex(buf *bytes.Buffer, x, y, z int32) {
	binary.Write(buf, binary.BigEndian, x)
	binary.Write(buf, binary.BigEndian, y)
	binary.Write(buf, binary.BigEndian, z)
	binary.Write(buf, binary.BigEndian, int32(0)) // padding
}

func writeFace(buf *bytes.Buffer, indices [4]int16, flags uint8) {
	binary.Write(buf, binary.BigEndian, indices)
	binary.Write(buf, binary.BigEndian, [3]int16{0, 4096, 0}) // up normal
	buf.WriteByte(1)                                          // texture tile
	buf.WriteByte(flags)
	binary.Write(buf, binary.BigEndian, uint32(0xFFFFFFFF))
}

func writeSection(buf *bytes.Buffer, i, count int, center [3]int32) {
	rec := make([]byte, trsRecordSize)
	binary.BigEndian.PutUint32(rec[0:4], uint32(int32(-1))) // no junction
	binary.BigEndian.PutUint32(rec[4:8], uint32(int32((i+count-1)%count)))
	binary.BigEndian.PutUint32(rec[8:12], uint32(int32((i+1)%count)))
	binary.BigEndian.PutUint32(rec[12:16], uint32(center[0]))
	binary.BigEndian.PutUint32(rec[16:20], uint32(center[1]))
	binary.BigEndian.PutUint32(rec[20:24], uint32(center[2]))
	binary.BigEndian.PutUint16(rec[104:106], uint16(i))   // face start
	binary.BigEndian.PutUint16(rec[106:108], uint16(1))   // face count
	binary.BigEndian.PutUint16(rec[134:136], uint16(i))   // section number
	buf.Write(rec)
}

func write(name string, data []byte) {
	if err := os.WriteFile(name, data, 0644); err != nil {
		panic(err)
	}
}
