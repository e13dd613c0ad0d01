// Command phiauto-dump inspects an on-disk PSAP cache file: it prints
// the screen resolution and every frame's touch events, and can verify
// the timeline's invariants (pointer balance, screen containment,
// frame ordering) without re-running the planner.
//
//	phiauto-dump [-verify] [-max-pointers N] file.psap
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/qwe28256/phiauto/internal/cache"
	"github.com/qwe28256/phiauto/internal/planner"
	"github.com/qwe28256/phiauto/internal/screen"
)

func main() {
	verify := flag.Bool("verify", false, "check the timeline's invariants after dumping")
	maxPointers := flag.Int("max-pointers", 10, "pointer cap used by -verify")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("usage: phiauto-dump [-verify] [-max-pointers N] file.psap")
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", args[0], err)
		os.Exit(1)
	}

	scr, frames, err := cache.Load(data)
	if err != nil {
		fmt.Printf("FATAL: corrupt cache file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Screen: %dx%d\n", scr.Width, scr.Height)
	fmt.Printf("Frames: %d\n", len(frames))
	for _, f := range frames {
		fmt.Printf("  t=%dms\n", f.TimeMs)
		for _, ev := range f.Events {
			fmt.Printf("    pointer=%d action=%s pos=(%.1f,%.1f)\n", ev.PointerID, ev.Action, ev.Pos.X, ev.Pos.Y)
		}
	}

	if *verify {
		su := screen.New(int(scr.Width), int(scr.Height))
		if err := planner.CheckInvariants(frames, su, *maxPointers); err != nil {
			fmt.Printf("FATAL: invariant check failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Invariants OK")
	}
}
