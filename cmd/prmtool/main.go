// prmtool is a CLI utility for inspecting and exporting PRM model files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/driftline/slipstream/internal/assets"
	"github.com/driftline/slipstream/internal/config"
	"github.com/driftline/slipstream/internal/logger"
	"github.com/driftline/slipstream/pkg/export"
	"github.com/driftline/slipstream/pkg/formats"
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
	case "list", "ls":
		cmdList(cfg, args[1:])
	case "export":
		cmdExport(cfg, args[1:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`prmtool - PRM model file utility

Usage:
  prmtool [flags] <command> [options]

Commands:
  info <file.prm>                 Show model information
  list <file.prm>                 List objects in the file
  export <file.prm> [options]     Export objects as Wavefront OBJ
    -i <index>                    Export a single object (default: all)
    -o <dir>                      Output directory

Examples:
  prmtool info ships/ship02.prm
  prmtool list scenes/pitlane.prm
  prmtool export ships/ship02.prm -i 0 -o ./out`)
}

// loadPRM resolves name as a plain file path first, then through the
// configured asset roots.
func loadPRM(cfg *config.Config, name string) ([]*formats.Mesh, error) {
	if _, err := os.Stat(name); err == nil {
		return formats.ParsePRMFile(name)
	}

	lib := assets.NewLibrary(cfg.Assets.Roots...)
	data, err := lib.Load(name)
	if err != nil {
		return nil, err
	}
	return formats.ParsePRM(data)
}

func cmdInfo(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: prmtool info <file.prm>")
		os.Exit(1)
	}

	meshes, err := loadPRM(cfg, args[0])
	if err != nil {
		logger.Sugar.Errorf("parsing %s: %v", args[0], err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Sugar.Debugf("parsed %s: %d objects", args[0], len(meshes))

	fmt.Printf("File:    %s\n", args[0])
	fmt.Printf("Objects: %d\n", len(meshes))
	fmt.Println()

	typeCounts := make(map[formats.PrimitiveType]int)
	var totalVertices, totalPrimitives int
	for _, mesh := range meshes {
		totalVertices += len(mesh.Vertices)
		totalPrimitives += len(mesh.Primitives)
		for typ, n := range mesh.CountByType() {
			typeCounts[typ] += n
		}
	}

	fmt.Printf("Vertices:   %d\n", totalVertices)
	fmt.Printf("Primitives: %d\n", totalPrimitives)
	fmt.Println()
	fmt.Println("Primitives by type:")

	types := make([]formats.PrimitiveType, 0, len(typeCounts))
	for typ := range typeCounts {
		types = append(types, typ)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	for _, typ := range types {
		fmt.Printf("  %-4s %d\n", typ, typeCounts[typ])
	}
}

func cmdList(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: prmtool list <file.prm>")
		os.Exit(1)
	}

	meshes, err := loadPRM(cfg, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for i, mesh := range meshes {
		name := mesh.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("%3d  %-16s  %5d vertices  %5d primitives  radius %.0f\n",
			i, name, len(mesh.Vertices), len(mesh.Primitives), mesh.Radius)
	}
}

func cmdExport(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	index := fs.Int("i", -1, "Object index to export (-1 = all)")
	outDir := fs.String("o", cfg.Export.OutputDir, "Output directory")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: prmtool export <file.prm> [-i index] [-o dir]")
		os.Exit(1)
	}

	meshes, err := loadPRM(cfg, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *index >= len(meshes) {
		fmt.Fprintf(os.Stderr, "Object index %d out of range (file holds %d objects)\n", *index, len(meshes))
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
		os.Exit(1)
	}

	base := strings.TrimSuffix(filepath.Base(fs.Arg(0)), filepath.Ext(fs.Arg(0)))
	for i, mesh := range meshes {
		if *index >= 0 && i != *index {
			continue
		}
		outPath := filepath.Join(*outDir, fmt.Sprintf("%s_%d.obj", base, i))
		if err := export.WriteOBJFile(mesh, outPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting object %d: %v\n", i, err)
			os.Exit(1)
		}
		logger.Sugar.Debugf("exported object %d to %s", i, outPath)
		fmt.Printf("Exported: %s (%d vertices)\n", outPath, len(mesh.Vertices))
	}
}
