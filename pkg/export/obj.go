// Package export writes decoded circuit data to interchange formats.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/driftline/slipstream/pkg/formats"
)

// WriteOBJ writes a decoded mesh as Wavefront OBJ. Positions, normals
// and faces are carried over; Gouraud colors and texture bindings have
// no OBJ equivalent and are dropped.
func WriteOBJ(mesh *formats.Mesh, w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "o %s\n", objName(mesh.Name))

	for _, v := range mesh.Vertices {
		fmt.Fprintf(bw, "v %f %f %f\n", v.X(), v.Y(), v.Z())
	}
	for _, n := range mesh.Normals {
		fmt.Fprintf(bw, "vn %f %f %f\n", n.X(), n.Y(), n.Z())
	}

	// OBJ indices are 1-based.
	for _, prim := range mesh.Primitives {
		fmt.Fprint(bw, "f")
		for _, idx := range prim.VertexIndices() {
			fmt.Fprintf(bw, " %d", idx+1)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// WriteOBJFile writes a mesh to an OBJ file on disk.
func WriteOBJFile(mesh *formats.Mesh, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating OBJ file: %w", err)
	}
	defer f.Close()

	if err := WriteOBJ(mesh, f); err != nil {
		return fmt.Errorf("writing OBJ file: %w", err)
	}
	return nil
}

// objName sanitizes a mesh name for use as an OBJ object name.
func objName(name string) string {
	if name == "" {
		return "mesh"
	}
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			return r
		}
		return '_'
	}, name)
}
