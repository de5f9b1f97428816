// navtool is a CLI utility for baking navigation meshes and querying
// paths over them.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/bifrost/internal/config"
	"github.com/Faultbox/bifrost/internal/logger"
	"github.com/Faultbox/bifrost/pkg/formats"
	"github.com/Faultbox/bifrost/pkg/navmesh"
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
	case "locate":
		cmdLocate(args)
	case "path":
		cmdPath(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`navtool - navigation mesh baking and query utility

Usage:
  navtool <command> [options] <args>

Commands:
  info <mesh.obj>                  Bake and show navmesh statistics
  locate <mesh.obj> <x,y,z>        Find the walkable triangle nearest a point
  path <mesh.obj> <x,y,z> <x,y,z>  Find a path between two points

Options (all commands):
  -config <file>      Path to config file
  -debug              Enable debug logging
  -log-file <file>    Write logs to this file
  -max-step <n>       Maximum climbable step height
  -max-slope <deg>    Maximum walkable slope in degrees
  -shaper <name>      Path shaper: smooth, funnel or none
  -smooth-passes <n>  Smoothing passes for the smooth shaper

Examples:
  navtool info level.obj
  navtool locate level.obj 12.5,0,3
  navtool path -shaper funnel level.obj 1,0,1 40,0,22`)
}

// setup finishes configuration for a parsed subcommand and brings the
// logger up.
func setup(fl *config.Flags) *config.Config {
	cfg, err := config.Load(*fl.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	fl.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// loadAndBake reads an OBJ soup and bakes it with the configured
// walkability limits.
func loadAndBake(path string, cfg *config.Config) (*formats.OBJ, *navmesh.NavMesh) {
	obj, err := formats.ParseOBJFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("loaded mesh",
		zap.String("file", path),
		zap.Int("vertices", len(obj.Verts)),
		zap.Int("triangles", len(obj.Tris)))

	m := navmesh.Bake(obj.Tris, cfg.Bake.MaxStep, cfg.Bake.MaxSlopeDegrees)
	m.SetPathShaper(shaperFor(cfg))
	logger.Info("baked navmesh",
		zap.Int("walkable", m.TriangleCount()),
		zap.Int("dropped", len(obj.Tris)-m.TriangleCount()))

	return obj, m
}

// shaperFor maps the configured shaper name to a PathShaper.
func shaperFor(cfg *config.Config) navmesh.PathShaper {
	switch cfg.Path.Shaper {
	case "funnel":
		return navmesh.FunnelShaper{}
	case "none":
		return navmesh.NopShaper{}
	default:
		return navmesh.SmoothShaper{Passes: cfg.Path.SmoothPasses}
	}
}

// parseVec3 parses an "x,y,z" argument.
func parseVec3(s string) (mgl32.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("want x,y,z, have %q", s)
	}

	var v mgl32.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return mgl32.Vec3{}, fmt.Errorf("bad coordinate %q", p)
		}
		v[i] = float32(f)
	}
	return v, nil
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	fl := config.AddFlags(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: navtool info [options] <mesh.obj>")
		os.Exit(1)
	}

	cfg := setup(fl)
	defer logger.Sync()

	obj, m := loadAndBake(fs.Arg(0), cfg)

	fmt.Printf("Mesh:   %s\n", fs.Arg(0))
	fmt.Printf("Soup:   %d vertices, %d triangles\n", len(obj.Verts), len(obj.Tris))
	if bounds, ok := obj.Bounds(); ok {
		fmt.Printf("Bounds: %v\n", bounds)
	}
	fmt.Println()
	fmt.Println(m.Summary())
}

func cmdLocate(args []string) {
	fs := flag.NewFlagSet("locate", flag.ExitOnError)
	fl := config.AddFlags(fs)
	fs.Parse(args)

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: navtool locate [options] <mesh.obj> <x,y,z>")
		os.Exit(1)
	}

	p, err := parseVec3(fs.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := setup(fl)
	defer logger.Sync()

	_, m := loadAndBake(fs.Arg(0), cfg)

	idx, ok := m.NearestTriangle(p)
	if !ok {
		fmt.Fprintln(os.Stderr, "No walkable triangles in mesh")
		os.Exit(1)
	}

	tri := m.TriangleAt(idx)
	fmt.Printf("Triangle:  %d\n", idx)
	fmt.Printf("Center:    %.3f, %.3f, %.3f\n", tri.Center.X(), tri.Center.Y(), tri.Center.Z())
	fmt.Printf("Slope:     %.1f deg\n", tri.SlopeDegrees())
	fmt.Printf("Distance:  %.3f\n", tri.DistanceTo(p))
	fmt.Printf("Neighbors: %d\n", tri.NeighborCount())
}

func cmdPath(args []string) {
	fs := flag.NewFlagSet("path", flag.ExitOnError)
	fl := config.AddFlags(fs)
	fs.Parse(args)

	if fs.NArg() < 3 {
		fmt.Fprintln(os.Stderr, "Usage: navtool path [options] <mesh.obj> <x,y,z> <x,y,z>")
		os.Exit(1)
	}

	start, err := parseVec3(fs.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	goal, err := parseVec3(fs.Arg(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := setup(fl)
	defer logger.Sync()

	_, m := loadAndBake(fs.Arg(0), cfg)

	path := m.FindPath(start, goal)
	if len(path) == 0 {
		fmt.Fprintln(os.Stderr, "No path found")
		os.Exit(1)
	}

	for _, p := range path {
		fmt.Printf("%g %g %g\n", p.X(), p.Y(), p.Z())
	}
	fmt.Fprintf(os.Stderr, "\n(%d waypoints)\n", len(path))
}
