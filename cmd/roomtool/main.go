// roomtool is a CLI utility for inspecting exported level scenes.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/mastrost/Coiil/internal/config"
	"github.com/mastrost/Coiil/internal/game/room"
	"github.com/mastrost/Coiil/internal/logger"
	"github.com/mastrost/Coiil/pkg/formats"
	"github.com/mastrost/Coiil/pkg/math"
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
	case "things":
		cmdThings(args)
	case "colliders":
		cmdColliders(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`roomtool - level scene inspection utility

Usage:
  roomtool <command> [options] <scene.obj>

Commands:
  info <scene.obj>       Show room summary (start, collider/thing counts)
  things <scene.obj>     List spawn directives with positions and arguments
  colliders <scene.obj>  List collision brushes and their planes

Options:
  -config <path>  Config file (default: search coiil.yaml)
  -skip-bad       Skip malformed spawn directives instead of failing
  -debug          Enable debug logging

Examples:
  roomtool info levels/e1m1.obj
  roomtool things -skip-bad levels/e1m1.obj`)
}

// loadRoom handles the flag/config/logging boilerplate shared by all
// commands and returns the loaded room.
func loadRoom(name string, args []string) *room.Room {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	skipBad := fs.Bool("skip-bad", false, "Skip malformed spawn directives")
	debug := fs.Bool("debug", false, "Enable debug logging")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: roomtool %s [options] <scene.obj>\n", name)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyOverrides(config.Overrides{
		SkipBadDirectives: *skipBad,
		Debug:             *debug,
	})

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	scene, err := formats.LoadOBJ(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := math.Vec3i{X: cfg.Room.Start.X, Y: cfg.Room.Start.Y, Z: cfg.Room.Start.Z}
	r, err := room.Load(scene, room.Options{
		Log:               logger.Sugar,
		SkipBadDirectives: cfg.Room.SkipBadDirectives,
		Start:             &start,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	return r
}

func cmdInfo(args []string) {
	r := loadRoom("info", args)

	planes := 0
	for _, c := range r.Colliders {
		planes += len(c.Planes)
	}

	fmt.Printf("Start:     (%d, %d, %d)\n", r.Start.X, r.Start.Y, r.Start.Z)
	fmt.Printf("Colliders: %d (%d planes)\n", len(r.Colliders), planes)
	fmt.Printf("Things:    %d\n", len(r.Things))

	// Count things by type
	typeCount := make(map[string]int)
	for _, thing := range r.Things {
		typeCount[thing.TypeName]++
	}

	var types []string
	for name := range typeCount {
		types = append(types, name)
	}
	sort.Strings(types)

	if len(types) > 0 {
		fmt.Println()
		fmt.Println("Things by type:")
		for _, name := range types {
			fmt.Printf("  %-16s %d\n", name, typeCount[name])
		}
	}
}

func cmdThings(args []string) {
	r := loadRoom("things", args)

	for i, thing := range r.Things {
		fmt.Printf("[%d] %s at (%.2f, %.2f, %.2f)\n", i, thing.TypeName,
			thing.Pos.X, thing.Pos.Y, thing.Pos.Z)

		var keys []string
		for k := range thing.Config {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("    %s = %q\n", k, thing.Config[k])
		}
	}
}

func cmdColliders(args []string) {
	r := loadRoom("colliders", args)

	for i, c := range r.Colliders {
		fmt.Printf("[%d] %d planes\n", i, len(c.Planes))
		for _, pl := range c.Planes {
			fmt.Printf("    n=(%+.3f, %+.3f, %+.3f) d=%.3f\n",
				pl.N.X, pl.N.Y, pl.N.Z, pl.D)
		}
	}
}
