package track

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftline/slipstream/pkg/formats"
)

// Geometry assembly errors.
var ErrFaceIndexRange = errors.New("track face vertex index out of range")

// UV corners of one quad face, matching the winding of TrackFace.Indices.
var quadUVs = [4]formats.UV{{U: 0, V: 0}, {U: 255, V: 0}, {U: 255, V: 255}, {U: 0, V: 255}}

// Corner order for the two triangles covering a quad.
var quadTriangles = [2][3]int{{0, 1, 2}, {2, 3, 0}}

// BuildGeometry decodes paired TRV/TRF buffers into one renderable mesh
// plus the parallel face list. Each face expands to two textured
// triangles sharing the quad's vertices, normal, texture tile and
// color. A face referencing a vertex outside the decoded array fails
// the whole build.
func BuildGeometry(trvData, trfData []byte) (*formats.Mesh, []formats.TrackFace, error) {
	vertices, err := formats.ParseTRV(trvData)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing track vertices: %w", err)
	}
	faces, err := formats.ParseTRF(trfData)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing track faces: %w", err)
	}

	mesh := &formats.Mesh{
		Name:       "track",
		Vertices:   vertices,
		Normals:    make([]mgl32.Vec3, len(faces)),
		Primitives: make([]formats.Primitive, 0, len(faces)*2),
	}

	for i := range faces {
		face := &faces[i]
		for _, idx := range face.Indices {
			if idx < 0 || int(idx) >= len(vertices) {
				return nil, nil, fmt.Errorf("%w: face %d references vertex %d of %d",
					ErrFaceIndexRange, i, idx, len(vertices))
			}
		}

		mesh.Normals[i] = face.Normal
		for _, tri := range quadTriangles {
			mesh.Primitives = append(mesh.Primitives, &formats.FT3{
				Indices: [3]uint16{
					uint16(face.Indices[tri[0]]),
					uint16(face.Indices[tri[1]]),
					uint16(face.Indices[tri[2]]),
				},
				Texture: int16(face.Texture),
				UVs:     [3]formats.UV{quadUVs[tri[0]], quadUVs[tri[1]], quadUVs[tri[2]]},
				Color:   face.Color,
			})
		}
	}

	mesh.Radius = formats.BoundingRadius(vertices)

	return mesh, faces, nil
}
