// PRM (Primitive Model) format parser for vehicle and scene meshes.
package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftline/slipstream/pkg/encoding"
)

// PRM format errors.
var (
	ErrTruncatedPRMData     = errors.New("truncated PRM data")
	ErrInvalidObjectIndex   = errors.New("PRM object index out of range")
	ErrInvalidPRMCount      = errors.New("invalid PRM element count")
	ErrUnknownPrimitiveType = errors.New("unknown PRM primitive type")
	ErrVertexIndexRange     = errors.New("PRM vertex index out of range")
)

// Sanity bound on declared element counts, well above anything the
// legacy assets contain.
const maxPRMElements = 100000

const prmNameLength = 16

// ParsePRM parses every object in a PRM buffer. Objects are laid out
// consecutively; a malformed object aborts the whole parse.
func ParsePRM(data []byte) ([]*Mesh, error) {
	if len(data) == 0 {
		return nil, ErrTruncatedPRMData
	}

	r := bytes.NewReader(data)
	var meshes []*Mesh
	for r.Len() > 0 {
		mesh, err := parsePRMObject(r)
		if err != nil {
			return nil, fmt.Errorf("parsing object %d: %w", len(meshes), err)
		}
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// ParsePRMObject parses the object at the given index from a PRM buffer.
// Preceding objects are decoded to find the record boundary, so an error
// in any of them fails the call.
func ParsePRMObject(data []byte, index int) (*Mesh, error) {
	if len(data) == 0 {
		return nil, ErrTruncatedPRMData
	}
	if index < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidObjectIndex, index)
	}

	r := bytes.NewReader(data)
	for i := 0; ; i++ {
		if r.Len() == 0 {
			return nil, fmt.Errorf("%w: %d (buffer holds %d objects)", ErrInvalidObjectIndex, index, i)
		}
		mesh, err := parsePRMObject(r)
		if err != nil {
			return nil, fmt.Errorf("parsing object %d: %w", i, err)
		}
		if i == index {
			return mesh, nil
		}
	}
}

// ParsePRMFile parses a PRM file from disk.
func ParsePRMFile(path string) ([]*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading PRM file: %w", err)
	}
	return ParsePRM(data)
}

// parsePRMObject parses a single object starting at the reader's position.
func parsePRMObject(r *bytes.Reader) (*Mesh, error) {
	name := make([]byte, prmNameLength)
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, fmt.Errorf("%w: reading name", ErrTruncatedPRMData)
	}

	mesh := &Mesh{Name: encoding.FixedStringToUTF8(name)}

	if err := readBE(r, &mesh.Flags); err != nil {
		return nil, fmt.Errorf("%w: reading flags", ErrTruncatedPRMData)
	}

	var origin [3]int32
	if err := readBE(r, &origin); err != nil {
		return nil, fmt.Errorf("%w: reading origin", ErrTruncatedPRMData)
	}
	mesh.Origin = mgl32.Vec3{float32(origin[0]), float32(origin[1]), float32(origin[2])}

	vertices, err := parsePRMVectors(r, "vertex")
	if err != nil {
		return nil, err
	}
	mesh.Vertices = vertices

	normals, err := parsePRMVectors(r, "normal")
	if err != nil {
		return nil, err
	}
	mesh.Normals = normals

	var primitiveCount int32
	if err := readBE(r, &primitiveCount); err != nil {
		return nil, fmt.Errorf("%w: reading primitive count", ErrTruncatedPRMData)
	}
	if primitiveCount < 0 || primitiveCount > maxPRMElements {
		return nil, fmt.Errorf("%w: %d primitives", ErrInvalidPRMCount, primitiveCount)
	}

	mesh.Primitives = make([]Primitive, 0, primitiveCount)
	for i := int32(0); i < primitiveCount; i++ {
		prim, err := parsePrimitive(r)
		if err != nil {
			return nil, fmt.Errorf("parsing primitive %d: %w", i, err)
		}
		if err := checkIndices(prim, len(mesh.Vertices)); err != nil {
			return nil, fmt.Errorf("primitive %d: %w", i, err)
		}
		mesh.Primitives = append(mesh.Primitives, prim)
	}

	mesh.Radius = BoundingRadius(mesh.Vertices)

	return mesh, nil
}

// parsePRMVectors parses a count-prefixed array of 8-byte vector records
// (int16 x, y, z plus int16 padding).
func parsePRMVectors(r *bytes.Reader, what string) ([]mgl32.Vec3, error) {
	var count int32
	if err := readBE(r, &count); err != nil {
		return nil, fmt.Errorf("%w: reading %s count", ErrTruncatedPRMData, what)
	}
	if count < 0 || count > maxPRMElements {
		return nil, fmt.Errorf("%w: %d %ss", ErrInvalidPRMCount, count, what)
	}

	out := make([]mgl32.Vec3, count)
	for i := int32(0); i < count; i++ {
		var x, y, z, pad int16
		if err := readBE(r, &x, &y, &z, &pad); err != nil {
			return nil, fmt.Errorf("%w: reading %s %d", ErrTruncatedPRMData, what, i)
		}
		out[i] = mgl32.Vec3{float32(x), float32(y), float32(z)}
	}
	return out, nil
}

// parsePrimitive parses one tagged primitive record.
func parsePrimitive(r *bytes.Reader) (Primitive, error) {
	var tag, flag uint16
	if err := readBE(r, &tag, &flag); err != nil {
		return nil, fmt.Errorf("%w: reading primitive header", ErrTruncatedPRMData)
	}

	var (
		prim Primitive
		pad  uint16
		err  error
	)
	switch PrimitiveType(tag) {
	case TypeF3:
		p := &F3{Flag: flag}
		err = readBE(r, &p.Indices, &pad, &p.Color)
		prim = p
	case TypeFT3:
		p := &FT3{Flag: flag}
		err = readBE(r, &p.Indices, &p.Texture, &p.UVs, &pad, &p.Color)
		prim = p
	case TypeF4:
		p := &F4{Flag: flag}
		err = readBE(r, &p.Indices, &p.Color)
		prim = p
	case TypeFT4:
		p := &FT4{Flag: flag}
		err = readBE(r, &p.Indices, &p.Texture, &p.UVs, &pad, &p.Color)
		prim = p
	case TypeG3:
		p := &G3{Flag: flag}
		err = readBE(r, &p.Indices, &pad, &p.Colors)
		prim = p
	case TypeGT3:
		p := &GT3{Flag: flag}
		err = readBE(r, &p.Indices, &p.Texture, &p.UVs, &pad, &p.Colors)
		prim = p
	case TypeG4:
		p := &G4{Flag: flag}
		err = readBE(r, &p.Indices, &p.Colors)
		prim = p
	case TypeGT4:
		p := &GT4{Flag: flag}
		err = readBE(r, &p.Indices, &p.Texture, &p.UVs, &pad, &p.Colors)
		prim = p
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPrimitiveType, tag)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s payload", ErrTruncatedPRMData, PrimitiveType(tag))
	}
	return prim, nil
}

// checkIndices fails on any vertex index beyond the decoded vertex array.
// Corrupt assets fail loudly here instead of being clamped into shape.
func checkIndices(p Primitive, vertexCount int) error {
	for _, idx := range p.VertexIndices() {
		if int(idx) >= vertexCount {
			return fmt.Errorf("%w: %d >= %d", ErrVertexIndexRange, idx, vertexCount)
		}
	}
	return nil
}

// readBE reads a sequence of big-endian values from r, stopping at the
// first failure.
func readBE(r *bytes.Reader, values ...interface{}) error {
	for _, v := range values {
		if err := binary.Read(r, binary.BigEndian, v); err != nil {
			return err
		}
	}
	return nil
}
