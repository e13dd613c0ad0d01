// Command phiauto-plan loads one or more chart fixtures, runs the
// conservative or radical planner over each, writes the result to the
// on-disk cache, and prints a per-chart summary.
//
// Single chart:
//
//	phiauto-plan [-planner conservative|radical] [-config path] chart.json
//
// Batch mode plans every fixture concurrently:
//
//	phiauto-plan batch [-planner conservative|radical] [-config path] chart1.json chart2.json ...
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/qwe28256/phiauto/internal/cache"
	"github.com/qwe28256/phiauto/internal/chart"
	"github.com/qwe28256/phiauto/internal/config"
	"github.com/qwe28256/phiauto/internal/fixture"
	"github.com/qwe28256/phiauto/internal/logging"
	"github.com/qwe28256/phiauto/internal/planner"
	"github.com/qwe28256/phiauto/internal/screen"
	"github.com/qwe28256/phiauto/internal/timeline"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "batch" {
		runBatch(os.Args[2:])
		return
	}
	runSingle(os.Args[1:])
}

func parseFlags(args []string) (plannerName, configPath string, rest []string) {
	fs := flag.NewFlagSet("phiauto-plan", flag.ExitOnError)
	fs.StringVar(&plannerName, "planner", "conservative", "conservative or radical")
	fs.StringVar(&configPath, "config", "", "path to a JSON config file (defaults if empty)")
	fs.Parse(args)
	return plannerName, configPath, fs.Args()
}

func loadConfig(path string) config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func runSingle(args []string) {
	plannerName, configPath, rest := parseFlags(args)
	if len(rest) < 1 {
		fmt.Println("usage: phiauto-plan [-planner conservative|radical] [-config path] chart.json")
		os.Exit(1)
	}

	cfg := loadConfig(configPath)
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		os.Exit(1)
	}
	logging.Configure(cfg.LogLevel)

	if err := planOne(rest[0], plannerName, cfg); err != nil {
		fmt.Printf("FATAL: %v\n", err)
		os.Exit(1)
	}
}

func runBatch(args []string) {
	plannerName, configPath, rest := parseFlags(args)
	if len(rest) < 1 {
		fmt.Println("usage: phiauto-plan batch [-planner conservative|radical] [-config path] chart1.json chart2.json ...")
		os.Exit(1)
	}

	cfg := loadConfig(configPath)
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		os.Exit(1)
	}
	logging.Configure(cfg.LogLevel)

	var g errgroup.Group
	for _, path := range rest {
		path := path
		g.Go(func() error { return planOne(path, plannerName, cfg) })
	}
	if err := g.Wait(); err != nil {
		fmt.Printf("FATAL: %v\n", err)
		os.Exit(1)
	}
}

func planOne(path, plannerName string, cfg config.Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	c, err := fixture.Parse(raw)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	fmt.Printf("Planning: %s (%d lines, %d notes)\n", path, len(c.Lines), c.Stats().Total())

	scr := screen.New(c.Width, c.Height)

	var events []planner.Event
	switch plannerName {
	case "radical":
		events, err = planner.PlanRadical(context.Background(), c, scr, cfg)
	default:
		events, err = planner.PlanConservative(context.Background(), c, scr, cfg)
	}
	if err != nil {
		return fmt.Errorf("planning %s: %w", path, err)
	}

	frames := timeline.Build(events)
	if err := planner.CheckInvariants(frames, scr, cfg.MaxPointers); err != nil {
		return fmt.Errorf("invariant check failed for %s: %w", path, err)
	}

	fmt.Printf("  Frames: %d\n", len(frames))
	logging.Info("planned chart", logging.Fields{"path": path, "planner": plannerName, "frames": len(frames)})

	if cfg.CacheDir != "" {
		store := cache.NewStore(cfg.CacheDir)
		if err := store.Write(raw, cache.Screen{Width: uint32(c.Width), Height: uint32(c.Height)}, frames); err != nil {
			return fmt.Errorf("caching %s: %w", path, err)
		}
		fmt.Printf("  Cached under: %s\n", cache.KeyFor(raw))
	}

	printLineStats(c)
	return nil
}

func printLineStats(c *chart.Chart) {
	for _, l := range c.Stats().Lines {
		fmt.Printf("  Line %d: tap=%d hold=%d drag=%d flick=%d\n", l.LineID, l.Tap, l.Hold, l.Drag, l.Flick)
	}
}
