package track

import (
	"gonum.org/v1/gonum/stat"

	"github.com/driftline/slipstream/pkg/formats"
)

// Options control graph construction.
type Options struct {
	// SmoothOutliers replaces a flagged section's center with the
	// midpoint of its geometric neighbors. Off by default; the outlier
	// report carries the evidence either way.
	SmoothOutliers bool
}

// Option adjusts build Options.
type Option func(*Options)

// WithSmoothing enables outlier center smoothing.
func WithSmoothing() Option {
	return func(o *Options) { o.SmoothOutliers = true }
}

// A neighbor distance beyond this multiple of the mean flags the
// section as a likely digitization error.
const outlierFactor = 3.0

// OutlierReport summarizes sections whose distance to a geometric
// neighbor exceeds outlierFactor times the mean neighbor distance.
type OutlierReport struct {
	Mean    float64 // Mean distance between geometrically-adjacent sections
	StdDev  float64 // Standard deviation of those distances
	Indices []int   // Flagged section indices, ascending
}

// Count returns the number of flagged sections.
func (r OutlierReport) Count() int {
	return len(r.Indices)
}

// BuildGraph decodes a section table and links it into a directed graph.
// The build runs three passes: field extraction in file order, link
// resolution, and outlier detection. Cycles (closed circuits) and
// branches (junctions) are preserved as-is.
func BuildGraph(data []byte, opts ...Option) (*Track, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	records, err := formats.ParseTRS(data)
	if err != nil {
		return nil, err
	}

	track := &Track{Sections: make([]Section, len(records))}

	// Pass 1: field extraction. Links stay raw file indices.
	for i, rec := range records {
		track.Sections[i] = Section{
			Number:    int(rec.SectionNumber),
			Center:    rec.Center,
			FaceStart: int(rec.FaceStart),
			FaceCount: int(rec.FaceCount),
			Flags:     rec.Flags,
			Next:      int(rec.NextIndex),
			Prev:      int(rec.PrevIndex),
			Junction:  int(rec.JunctionIndex),
		}
	}

	// Pass 2: link resolution. An index outside the table means the
	// relation is absent, never an error.
	resolveLinks(track.Sections)

	// Pass 3: outlier detection, with smoothing as an explicit opt-in.
	track.Outliers = detectOutliers(track.Sections)
	if o.SmoothOutliers {
		smoothOutliers(track.Sections, track.Outliers.Indices)
	}

	return track, nil
}

// resolveLinks bounds-checks every raw link index against the section
// table. Resolution is idempotent: absent links stay -1.
func resolveLinks(sections []Section) {
	n := len(sections)
	for i := range sections {
		sections[i].Next = resolveIndex(sections[i].Next, n)
		sections[i].Prev = resolveIndex(sections[i].Prev, n)
		sections[i].Junction = resolveIndex(sections[i].Junction, n)
	}
}

func resolveIndex(idx, count int) int {
	if idx < 0 || idx >= count {
		return -1
	}
	return idx
}

// detectOutliers measures the distance between every pair of
// geometrically-adjacent sections and flags the later section of any
// pair whose distance exceeds outlierFactor times the mean.
func detectOutliers(sections []Section) OutlierReport {
	if len(sections) < 2 {
		return OutlierReport{}
	}

	dists := make([]float64, len(sections)-1)
	for i := 1; i < len(sections); i++ {
		dists[i-1] = float64(sections[i].Center.Sub(sections[i-1].Center).Len())
	}

	report := OutlierReport{
		Mean:   stat.Mean(dists, nil),
		StdDev: stat.StdDev(dists, nil),
	}

	limit := report.Mean * outlierFactor
	for i, d := range dists {
		if d > limit {
			report.Indices = append(report.Indices, i+1)
		}
	}
	return report
}

// smoothOutliers replaces each flagged section's center with the
// midpoint of its geometric neighbors. Sections at the table ends keep
// their decoded centers.
func smoothOutliers(sections []Section, indices []int) {
	for _, i := range indices {
		if i <= 0 || i >= len(sections)-1 {
			continue
		}
		sections[i].Center = sections[i-1].Center.Add(sections[i+1].Center).Mul(0.5)
	}
}
