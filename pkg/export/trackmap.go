package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/vector"

	"github.com/driftline/slipstream/pkg/track"
)

// Map rendering parameters.
const (
	mapMargin    = 24
	pathWidth    = 3.0
	markerRadius = 6.0
	startRadius  = 8.0
)

var (
	mapBackground = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	pathColor     = color.RGBA{R: 90, G: 200, B: 250, A: 255}
	junctionColor = color.RGBA{R: 250, G: 120, B: 90, A: 255}
	startColor    = color.RGBA{R: 120, G: 250, B: 120, A: 255}
)

// RenderTrackMap draws a top-down view of the circuit into a square
// image: the waypoint path as a stroked polyline (closed circuits are
// drawn closed), the start as a green marker, and junction-bearing
// sections as orange markers.
func RenderTrackMap(t *track.Track, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(mapBackground), image.Point{}, draw.Src)

	if t == nil || t.SectionCount() == 0 {
		return img
	}

	project := newProjection(t, size)

	// Waypoint path.
	waypoints := t.Waypoints()
	if len(waypoints) > 1 {
		r := vector.NewRasterizer(size, size)
		prev := project(waypoints[0].Position)
		for _, wp := range waypoints[1:] {
			next := project(wp.Position)
			strokeSegment(r, prev, next, pathWidth)
			prev = next
		}
		if t.Closed() {
			strokeSegment(r, prev, project(waypoints[0].Position), pathWidth)
		}
		r.Draw(img, img.Bounds(), image.NewUniform(pathColor), image.Point{})
	}

	// Junction markers.
	if junctions := t.Junctions(); len(junctions) > 0 {
		r := vector.NewRasterizer(size, size)
		for _, j := range junctions {
			fillCircle(r, project(t.Sections[j].Center), markerRadius)
		}
		r.Draw(img, img.Bounds(), image.NewUniform(junctionColor), image.Point{})
	}

	// Start marker.
	if len(waypoints) > 0 {
		r := vector.NewRasterizer(size, size)
		fillCircle(r, project(waypoints[0].Position), startRadius)
		r.Draw(img, img.Bounds(), image.NewUniform(startColor), image.Point{})
	}

	return img
}

// WriteTrackMapPNG renders the circuit map and encodes it as PNG.
func WriteTrackMapPNG(t *track.Track, size int, w io.Writer) error {
	return png.Encode(w, RenderTrackMap(t, size))
}

// WriteTrackMapFile writes the circuit map PNG to disk.
func WriteTrackMapFile(t *track.Track, size int, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating map file: %w", err)
	}
	defer f.Close()

	if err := WriteTrackMapPNG(t, size, f); err != nil {
		return fmt.Errorf("writing map file: %w", err)
	}
	return nil
}

// newProjection maps track-space X/Z onto image coordinates, preserving
// aspect ratio and centering the circuit inside the margins.
func newProjection(t *track.Track, size int) func(mgl32.Vec3) mgl32.Vec2 {
	first := t.Sections[0].Center
	minX, maxX := first.X(), first.X()
	minZ, maxZ := first.Z(), first.Z()
	for i := range t.Sections {
		c := t.Sections[i].Center
		minX = math32.Min(minX, c.X())
		maxX = math32.Max(maxX, c.X())
		minZ = math32.Min(minZ, c.Z())
		maxZ = math32.Max(maxZ, c.Z())
	}

	extent := math32.Max(maxX-minX, maxZ-minZ)
	if extent == 0 {
		extent = 1
	}
	scale := float32(size-2*mapMargin) / extent
	offsetX := (float32(size) - (maxX-minX)*scale) / 2
	offsetZ := (float32(size) - (maxZ-minZ)*scale) / 2

	return func(p mgl32.Vec3) mgl32.Vec2 {
		return mgl32.Vec2{
			(p.X()-minX)*scale + offsetX,
			(p.Z()-minZ)*scale + offsetZ,
		}
	}
}

// strokeSegment adds a filled quad covering the line from a to b with
// the given width. The rasterizer only fills paths, so strokes are
// built from offset quads.
func strokeSegment(r *vector.Rasterizer, a, b mgl32.Vec2, width float32) {
	dir := b.Sub(a)
	if dir.Len() == 0 {
		return
	}
	n := mgl32.Vec2{-dir.Y(), dir.X()}.Normalize().Mul(width / 2)

	p0, p1 := a.Add(n), b.Add(n)
	p2, p3 := b.Sub(n), a.Sub(n)
	r.MoveTo(p0.X(), p0.Y())
	r.LineTo(p1.X(), p1.Y())
	r.LineTo(p2.X(), p2.Y())
	r.LineTo(p3.X(), p3.Y())
	r.ClosePath()
}

// fillCircle adds a polygonal circle approximation around c.
func fillCircle(r *vector.Rasterizer, c mgl32.Vec2, radius float32) {
	const segments = 16
	for i := 0; i <= segments; i++ {
		angle := 2 * math32.Pi * float32(i) / segments
		x := c.X() + radius*math32.Cos(angle)
		y := c.Y() + radius*math32.Sin(angle)
		if i == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
	r.ClosePath()
}
