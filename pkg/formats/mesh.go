package formats

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// PrimitiveType identifies one of the eight mesh primitive encodings.
// The numeric values are fixed by the file format.
type PrimitiveType uint16

// Primitive type tags.
const (
	TypeF3  PrimitiveType = 1 // Flat triangle
	TypeFT3 PrimitiveType = 2 // Textured triangle
	TypeF4  PrimitiveType = 3 // Flat quad
	TypeFT4 PrimitiveType = 4 // Textured quad
	TypeG3  PrimitiveType = 5 // Gouraud triangle
	TypeGT3 PrimitiveType = 6 // Gouraud textured triangle
	TypeG4  PrimitiveType = 7 // Gouraud quad
	TypeGT4 PrimitiveType = 8 // Gouraud textured quad
)

// String returns the format's short name for the primitive type.
func (t PrimitiveType) String() string {
	switch t {
	case TypeF3:
		return "F3"
	case TypeFT3:
		return "FT3"
	case TypeF4:
		return "F4"
	case TypeFT4:
		return "FT4"
	case TypeG3:
		return "G3"
	case TypeGT3:
		return "GT3"
	case TypeG4:
		return "G4"
	case TypeGT4:
		return "GT4"
	default:
		return fmt.Sprintf("Unknown(%d)", uint16(t))
	}
}

// IsTextured returns true if the type carries per-vertex UV coordinates.
func (t PrimitiveType) IsTextured() bool {
	return t == TypeFT3 || t == TypeFT4 || t == TypeGT3 || t == TypeGT4
}

// IsGouraud returns true if the type carries per-vertex colors.
func (t PrimitiveType) IsGouraud() bool {
	return t >= TypeG3 && t <= TypeGT4
}

// IsQuad returns true if the type references four vertices.
func (t PrimitiveType) IsQuad() bool {
	return t == TypeF4 || t == TypeFT4 || t == TypeG4 || t == TypeGT4
}

// VertexCount returns the number of vertex indices the type references.
func (t PrimitiveType) VertexCount() int {
	if t.IsQuad() {
		return 4
	}
	return 3
}

// UV is a texture coordinate in source texel space (0-255 per axis).
type UV struct {
	U, V uint8
}

// Primitive is one decoded mesh surface. The concrete type is one of
// F3, FT3, F4, FT4, G3, GT3, G4 or GT4, keyed by PrimitiveType.
type Primitive interface {
	Type() PrimitiveType
	VertexIndices() []uint16
}

// F3 is a flat-shaded triangle with a solid color.
type F3 struct {
	Indices [3]uint16
	Flag    uint16
	Color   uint32
}

func (p *F3) Type() PrimitiveType     { return TypeF3 }
func (p *F3) VertexIndices() []uint16 { return p.Indices[:] }

// FT3 is a textured triangle. Texture is the atlas tile index from the
// file; Handle and STs are set by BindTextures.
type FT3 struct {
	Indices [3]uint16
	Flag    uint16
	Texture int16
	UVs     [3]UV
	Color   uint32

	Handle uint32
	STs    [3]mgl32.Vec2
}

func (p *FT3) Type() PrimitiveType     { return TypeFT3 }
func (p *FT3) VertexIndices() []uint16 { return p.Indices[:] }

// F4 is a flat-shaded quad with a solid color.
type F4 struct {
	Indices [4]uint16
	Flag    uint16
	Color   uint32
}

func (p *F4) Type() PrimitiveType     { return TypeF4 }
func (p *F4) VertexIndices() []uint16 { return p.Indices[:] }

// FT4 is a textured quad.
type FT4 struct {
	Indices [4]uint16
	Flag    uint16
	Texture int16
	UVs     [4]UV
	Color   uint32

	Handle uint32
	STs    [4]mgl32.Vec2
}

func (p *FT4) Type() PrimitiveType     { return TypeFT4 }
func (p *FT4) VertexIndices() []uint16 { return p.Indices[:] }

// G3 is a Gouraud-shaded triangle with one color per vertex.
type G3 struct {
	Indices [3]uint16
	Flag    uint16
	Colors  [3]uint32
}

func (p *G3) Type() PrimitiveType     { return TypeG3 }
func (p *G3) VertexIndices() []uint16 { return p.Indices[:] }

// GT3 is a Gouraud-shaded textured triangle.
type GT3 struct {
	Indices [3]uint16
	Flag    uint16
	Texture int16
	UVs     [3]UV
	Colors  [3]uint32

	Handle uint32
	STs    [3]mgl32.Vec2
}

func (p *GT3) Type() PrimitiveType     { return TypeGT3 }
func (p *GT3) VertexIndices() []uint16 { return p.Indices[:] }

// G4 is a Gouraud-shaded quad with one color per vertex.
type G4 struct {
	Indices [4]uint16
	Flag    uint16
	Colors  [4]uint32
}

func (p *G4) Type() PrimitiveType     { return TypeG4 }
func (p *G4) VertexIndices() []uint16 { return p.Indices[:] }

// GT4 is a Gouraud-shaded textured quad.
type GT4 struct {
	Indices [4]uint16
	Flag    uint16
	Texture int16
	UVs     [4]UV
	Colors  [4]uint32

	Handle uint32
	STs    [4]mgl32.Vec2
}

func (p *GT4) Type() PrimitiveType     { return TypeGT4 }
func (p *GT4) VertexIndices() []uint16 { return p.Indices[:] }

// Mesh represents one decoded model object.
type Mesh struct {
	Name       string       // Object name from the file header
	Origin     mgl32.Vec3   // Object-space origin
	Radius     float32      // Bounding-sphere radius around Origin
	Flags      uint32       // Object flag bitmask
	Vertices   []mgl32.Vec3 // Vertex positions
	Normals    []mgl32.Vec3 // Shared normals (typically few)
	Primitives []Primitive  // Surface primitives in file order
}

// BoundingRadius returns the bounding-sphere radius used for culling:
// the maximum absolute component over all vertices. Every vertex is
// guaranteed to lie within a sphere of this radius around the origin.
func BoundingRadius(vertices []mgl32.Vec3) float32 {
	var r float32
	for _, v := range vertices {
		r = math32.Max(r, math32.Abs(v.X()))
		r = math32.Max(r, math32.Abs(v.Y()))
		r = math32.Max(r, math32.Abs(v.Z()))
	}
	return r
}

// CountByType returns the count of primitives for each type.
func (m *Mesh) CountByType() map[PrimitiveType]int {
	counts := make(map[PrimitiveType]int)
	for _, p := range m.Primitives {
		counts[p.Type()]++
	}
	return counts
}

// Texture describes a bound texture for UV normalization.
type Texture struct {
	Handle        uint32
	Width, Height int
}

// TextureLookup resolves an atlas tile index to a bound texture.
// Implemented by the collaborator that owns image decoding and GPU state.
type TextureLookup interface {
	Lookup(index int) (Texture, bool)
}

// BindTextures resolves the texture tile referenced by every textured
// primitive and normalizes its UVs to 0-1 against the bound texture's
// actual dimensions. Raw decode leaves UVs in source texel space.
func (m *Mesh) BindTextures(lookup TextureLookup) error {
	for i, p := range m.Primitives {
		switch q := p.(type) {
		case *FT3:
			tex, ok := lookup.Lookup(int(q.Texture))
			if !ok {
				return fmt.Errorf("primitive %d: no texture for tile %d", i, q.Texture)
			}
			q.Handle = tex.Handle
			for j, uv := range q.UVs {
				q.STs[j] = normalizeUV(uv, tex)
			}
		case *FT4:
			tex, ok := lookup.Lookup(int(q.Texture))
			if !ok {
				return fmt.Errorf("primitive %d: no texture for tile %d", i, q.Texture)
			}
			q.Handle = tex.Handle
			for j, uv := range q.UVs {
				q.STs[j] = normalizeUV(uv, tex)
			}
		case *GT3:
			tex, ok := lookup.Lookup(int(q.Texture))
			if !ok {
				return fmt.Errorf("primitive %d: no texture for tile %d", i, q.Texture)
			}
			q.Handle = tex.Handle
			for j, uv := range q.UVs {
				q.STs[j] = normalizeUV(uv, tex)
			}
		case *GT4:
			tex, ok := lookup.Lookup(int(q.Texture))
			if !ok {
				return fmt.Errorf("primitive %d: no texture for tile %d", i, q.Texture)
			}
			q.Handle = tex.Handle
			for j, uv := range q.UVs {
				q.STs[j] = normalizeUV(uv, tex)
			}
		}
	}
	return nil
}

func normalizeUV(uv UV, tex Texture) mgl32.Vec2 {
	return mgl32.Vec2{
		float32(uv.U) / float32(tex.Width),
		float32(uv.V) / float32(tex.Height),
	}
}
