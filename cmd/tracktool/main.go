// tracktool is a CLI utility for inspecting circuits built from
// TRV/TRF/TRS buffers.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/driftline/slipstream/internal/assets"
	"github.com/driftline/slipstream/internal/config"
	"github.com/driftline/slipstream/internal/logger"
	"github.com/driftline/slipstream/pkg/export"
	"github.com/driftline/slipstream/pkg/track"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "info":
		cmdInfo(cfg, args[1:])
	case "sections":
		cmdSections(cfg, args[1:])
	case "waypoints":
		cmdWaypoints(cfg, args[1:])
	case "outliers":
		cmdOutliers(cfg, args[1:])
	case "junctions":
		cmdJunctions(cfg, args[1:])
	case "map":
		cmdMap(cfg, args[1:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`tracktool - circuit inspection utility

Usage:
  tracktool [flags] <command> [options]

Commands:
  info <circuit>             Show circuit summary
  sections <circuit>         List sections with their links
  waypoints <circuit>        Print the centerline waypoint path
  outliers <circuit>         Show the geometric outlier report
  junctions <circuit>        List junction-bearing sections
  map <circuit> [options]    Render a top-down circuit map PNG
    -o <file>                Output file
    -size <pixels>           Image size

A circuit is a directory holding track.trv, track.trf and track.trs,
given as a path or as a name resolved against the asset roots.

Examples:
  tracktool info circuits/altima7
  tracktool -smooth-outliers sections circuits/altima7
  tracktool map circuits/altima7 -o altima7.png -size 2048`)
}

// resolveCircuit resolves name as a directory path first, then through
// the configured asset roots.
func resolveCircuit(cfg *config.Config, name string) (string, error) {
	if info, err := os.Stat(name); err == nil && info.IsDir() {
		return name, nil
	}
	lib := assets.NewLibrary(cfg.Assets.Roots...)
	return lib.FindDir(name)
}

func loadCircuit(cfg *config.Config, name string) *track.Track {
	dir, err := resolveCircuit(cfg, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var opts []track.Option
	if cfg.Track.SmoothOutliers {
		opts = append(opts, track.WithSmoothing())
	}

	t, err := track.LoadDir(dir, opts...)
	if err != nil {
		logger.Sugar.Errorf("loading circuit %s: %v", dir, err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Sugar.Debugf("loaded circuit %s: %d sections, %d faces, %d pickups, %d outliers",
		dir, t.SectionCount(), len(t.Faces), len(t.Pickups), t.Outliers.Count())
	return t
}

func cmdInfo(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tracktool info <circuit>")
		os.Exit(1)
	}

	t := loadCircuit(cfg, args[0])

	shape := "open"
	if t.Closed() {
		shape = "closed loop"
	}

	fmt.Printf("Circuit:   %s\n", args[0])
	fmt.Printf("Sections:  %d (%s)\n", t.SectionCount(), shape)
	fmt.Printf("Faces:     %d\n", len(t.Faces))
	fmt.Printf("Vertices:  %d\n", len(t.Mesh.Vertices))
	fmt.Printf("Pickups:   %d\n", len(t.Pickups))
	fmt.Printf("Waypoints: %d\n", len(t.Waypoints()))
	fmt.Printf("Junctions: %d\n", len(t.Junctions()))
	fmt.Printf("Outliers:  %d\n", t.Outliers.Count())
}

func cmdSections(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tracktool sections <circuit>")
		os.Exit(1)
	}

	t := loadCircuit(cfg, args[0])

	for i := range t.Sections {
		s := &t.Sections[i]
		fmt.Printf("%4d  center (%8.0f %8.0f %8.0f)  next %4s  prev %4s  junction %4s  faces %d+%d\n",
			s.Number, s.Center.X(), s.Center.Y(), s.Center.Z(),
			linkString(s.Next), linkString(s.Prev), linkString(s.Junction),
			s.FaceStart, s.FaceCount)
	}
}

func linkString(idx int) string {
	if idx < 0 {
		return "-"
	}
	return fmt.Sprintf("%d", idx)
}

func cmdWaypoints(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tracktool waypoints <circuit>")
		os.Exit(1)
	}

	t := loadCircuit(cfg, args[0])

	waypoints := t.Waypoints()
	for i, wp := range waypoints {
		fmt.Printf("%4d  %10.1f %10.1f %10.1f\n", i, wp.Position.X(), wp.Position.Y(), wp.Position.Z())
	}
	fmt.Fprintf(os.Stderr, "\n(%d waypoints, closed=%v)\n", len(waypoints), t.Closed())
}

func cmdOutliers(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tracktool outliers <circuit>")
		os.Exit(1)
	}

	t := loadCircuit(cfg, args[0])

	report := t.Outliers
	fmt.Printf("Mean neighbor distance: %.1f\n", report.Mean)
	fmt.Printf("Standard deviation:     %.1f\n", report.StdDev)
	fmt.Printf("Flagged sections:       %d\n", report.Count())
	for _, idx := range report.Indices {
		s := &t.Sections[idx]
		fmt.Printf("  %4d  center (%8.0f %8.0f %8.0f)\n", idx, s.Center.X(), s.Center.Y(), s.Center.Z())
	}
	if cfg.Track.SmoothOutliers && report.Count() > 0 {
		fmt.Println("\n(centers above already smoothed; rerun without -smooth-outliers for raw values)")
	}
}

func cmdJunctions(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tracktool junctions <circuit>")
		os.Exit(1)
	}

	t := loadCircuit(cfg, args[0])

	junctions := t.Junctions()
	if len(junctions) == 0 {
		fmt.Println("No junctions")
		return
	}
	for _, idx := range junctions {
		fmt.Printf("%4d -> %d\n", idx, t.Sections[idx].Junction)
	}
}

func cmdMap(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("map", flag.ExitOnError)
	outFile := fs.String("o", "", "Output file")
	size := fs.Int("size", cfg.Export.MapSize, "Image size in pixels")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: tracktool map <circuit> [-o file] [-size pixels]")
		os.Exit(1)
	}

	t := loadCircuit(cfg, fs.Arg(0))

	path := *outFile
	if path == "" {
		path = filepath.Join(cfg.Export.OutputDir, filepath.Base(fs.Arg(0))+".png")
	}

	if err := export.WriteTrackMapFile(t, *size, path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered: %s (%dx%d)\n", path, *size, *size)
}
