// Package track builds navigable circuits from decoded asset buffers.
package track

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftline/slipstream/pkg/formats"
)

// Section is one segment of a circuit's centerline. Next, Prev and
// Junction are indices into the owning Track's Sections slice, -1 when
// the file link points outside the table. Index-based links keep cycles
// and shared branch targets expressible: the structure is a graph, not
// a tree.
type Section struct {
	Number    int                  // Section number from the table
	Center    mgl32.Vec3           // Center in track space
	FaceStart int                  // First face owned by this section
	FaceCount int                  // Number of owned faces
	Flags     formats.SectionFlags // Section flag bitmask
	Next      int                  // Next section index, -1 if absent
	Prev      int                  // Previous section index, -1 if absent
	Junction  int                  // Branch target index, -1 if absent
}

// HasJunction returns true if the section starts or merges a branch.
func (s *Section) HasJunction() bool {
	return s.Junction >= 0
}

// Waypoint is a derived point on the circuit's navigable path, used for
// camera and debug spline rendering. It carries no back-reference to
// its source section.
type Waypoint struct {
	Position mgl32.Vec3
}

// Pickup is a collectable item derived from a flagged track face.
type Pickup struct {
	Face     int        // Index into the track's face list
	Position mgl32.Vec3 // Quad centroid
}

// Track owns a circuit's decoded geometry and section graph. It is
// immutable once Load or BuildGraph returns; loading a different
// circuit builds a fresh Track.
type Track struct {
	Sections []Section            // Section graph, index = section number
	Faces    []formats.TrackFace  // Flat face list shared by all sections
	Mesh     *formats.Mesh        // Renderable track mesh
	Pickups  []Pickup             // Derived from flagged faces
	Outliers OutlierReport        // Geometry anomaly report from the build

	wpOnce    sync.Once
	waypoints []Waypoint
}

// SectionCount returns the number of sections in the circuit.
func (t *Track) SectionCount() int {
	return len(t.Sections)
}

// Junctions returns the indices of all sections whose junction link is
// set. Informational only; the graph is not changed.
func (t *Track) Junctions() []int {
	var out []int
	for i := range t.Sections {
		if t.Sections[i].HasJunction() {
			out = append(out, i)
		}
	}
	return out
}

// NearestSection returns the index of the section whose center is
// closest to pos, or -1 for an empty track.
func (t *Track) NearestSection(pos mgl32.Vec3) int {
	best := -1
	bestDist := float32(math32.MaxFloat32)
	for i := range t.Sections {
		if d := t.Sections[i].Center.Sub(pos).Len(); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Closed reports whether the centerline walk from section 0 returns to
// its start.
func (t *Track) Closed() bool {
	if len(t.Sections) == 0 {
		return false
	}
	visited := make(map[int]bool, len(t.Sections))
	i := 0
	for !visited[i] {
		visited[i] = true
		next := t.Sections[i].Next
		if next < 0 {
			return false
		}
		i = next
	}
	return i == 0
}
