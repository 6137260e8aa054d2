// planegen is a CLI utility for generating subdivided plane meshes.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/planegen/internal/config"
	"github.com/Faultbox/planegen/pkg/export"
	"github.com/Faultbox/planegen/pkg/genmesh"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "export", "x":
		cmdExport(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`planegen - subdivided plane mesh generator

Usage:
  planegen <command> [options]

Commands:
  info   [-x N] [-y N]                         Show mesh statistics for a grid
  export [-x N] [-y N] [-f obj|json] [-o path] Generate and write a mesh

Options default from planegen.yaml when present; flags override.

Examples:
  planegen info -x 4 -y 4
  planegen export -x 8 -y 8 -f obj -o plane.obj
  planegen export -x 2 -y 2 -f json`)
}

// loadGrid resolves the grid parameters from config file and flags and
// validates them before they reach the generator, which panics on misuse.
func loadGrid(configPath string, x, y int) (*config.Config, error) {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return nil, err
	}
	if x > 0 {
		cfg.Grid.SubdivideX = x
	}
	if y > 0 {
		cfg.Grid.SubdivideY = y
	}
	if cfg.Grid.SubdivideX < 1 || cfg.Grid.SubdivideY < 1 {
		return nil, fmt.Errorf("subdivisions must be at least 1, got %dx%d",
			cfg.Grid.SubdivideX, cfg.Grid.SubdivideY)
	}
	return cfg, nil
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	x := fs.Int("x", 0, "Subdivisions along the X axis")
	y := fs.Int("y", 0, "Subdivisions along the Y axis")
	configPath := fs.String("config", "", "Path to config file")
	fs.Parse(args)

	cfg, err := loadGrid(*configPath, *x, *y)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := genmesh.Subdivide(cfg.Grid.SubdivideX, cfg.Grid.SubdivideY)

	fmt.Printf("Grid:          %dx%d cells\n", p.SubdivideX(), p.SubdivideY())
	fmt.Printf("Vertices:      %d\n", p.VertexCount())
	fmt.Printf("Faces:         %d quads (%d triangles)\n", p.PolygonCount(), p.PolygonCount()*2)
	fmt.Printf("Vertex buffer: %d bytes\n", p.VertexCount()*8)
	fmt.Printf("Index buffer:  %d bytes\n", p.PolygonCount()*6*4)
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	x := fs.Int("x", 0, "Subdivisions along the X axis")
	y := fs.Int("y", 0, "Subdivisions along the Y axis")
	format := fs.String("f", "", "Output format: obj or json")
	output := fs.String("o", "", "Output path ('-' for stdout)")
	name := fs.String("name", "", "Object name for OBJ output")
	configPath := fs.String("config", "", "Path to config file")
	fs.Parse(args)

	cfg, err := loadGrid(*configPath, *x, *y)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *format != "" {
		cfg.Export.Format = *format
	}
	if *output != "" {
		cfg.Export.Output = *output
	}
	if *name != "" {
		cfg.Export.Name = *name
	}

	p := genmesh.Subdivide(cfg.Grid.SubdivideX, cfg.Grid.SubdivideY)

	var w io.Writer = os.Stdout
	if cfg.Export.Output != "-" {
		f, err := os.Create(cfg.Export.Output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	switch cfg.Export.Format {
	case "obj":
		err = export.WriteOBJ(w, p, export.OBJOptions{Name: cfg.Export.Name})
	case "json":
		err = export.WriteJSON(w, p)
	default:
		fmt.Fprintf(os.Stderr, "Unknown format: %s (want obj or json)\n", cfg.Export.Format)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing mesh: %v\n", err)
		os.Exit(1)
	}

	if cfg.Export.Output != "-" {
		fmt.Printf("Wrote %s: %d vertices, %d faces\n",
			cfg.Export.Output, p.VertexCount(), p.PolygonCount())
	}
}
