package track

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftline/slipstream/pkg/formats"
)

// derivePickups collects one pickup per face carrying the pickup flag,
// positioned at the quad centroid. Face indices were bounds-checked
// during geometry assembly.
func derivePickups(mesh *formats.Mesh, faces []formats.TrackFace) []Pickup {
	var pickups []Pickup
	for i := range faces {
		if !faces[i].Flags.IsPickup() {
			continue
		}
		var center mgl32.Vec3
		for _, idx := range faces[i].Indices {
			center = center.Add(mesh.Vertices[idx])
		}
		pickups = append(pickups, Pickup{Face: i, Position: center.Mul(0.25)})
	}
	return pickups
}

// Blink half-period for animated faces, in seconds.
const blinkPeriod = 0.25

// BlinkOn reports whether an animated face (pickup or boost) is lit at
// the given elapsed time. Pure, so the animation collaborator stays
// deterministic.
func BlinkOn(elapsed float32) bool {
	return math32.Mod(elapsed, blinkPeriod*2) < blinkPeriod
}
