// Command corewar is a minimal, non-interactive demo harness: it builds a
// couple of hard-coded warriors, runs a small tournament, and prints the
// tally. With -listen it also serves an eventstream hub over WebSocket; that
// hub is not attached to the tournament's matches, so it sends no events.
// It is not a REPL and not a Redcode source compiler — program bodies are
// built directly out of mars.Instruction values, matching the "engine sees
// only Point, after parsing" boundary of the embedding API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"corewar2d/eventstream"
	"corewar2d/mars"
	"corewar2d/tournament"
)

func dwarf() *mars.Warrior {
	// loop  ADD.AB #4, 3
	// start MOV.I  2, @2
	//       JMP.B  -2
	instructions := mars.Linear(
		mars.NewInstruction(mars.ADD, mars.ModAB, mars.StepNormal, mars.Immediate, mars.Pt(4), mars.Direct, mars.Pt(3)),
		mars.NewInstruction(mars.MOV, mars.ModI, mars.StepNormal, mars.Direct, mars.Pt(2), mars.IndirectB, mars.Pt(2)),
		mars.NewInstruction(mars.JMP, mars.ModB, mars.StepNormal, mars.Direct, mars.Pt(-2), mars.Direct, mars.Pt(0)),
	)
	return mars.NewWarrior("Dwarf", instructions)
}

func sittingDuck() *mars.Warrior {
	cells := make([]mars.Instruction, 5)
	for i := range cells {
		cells[i] = mars.NewInstruction(mars.NOP, mars.ModF, mars.StepNormal, mars.Direct, mars.Pt(0), mars.Direct, mars.Pt(0))
	}
	return mars.NewWarrior("Sitting Duck", mars.Linear(cells...))
}

func main() {
	rounds := flag.Int("rounds", 10, "number of independent rounds to run")
	coreSize := flag.Int("core-size", 8000, "core size in cells")
	coreWidth := flag.Int("core-width", 8000, "core width (height = size/width)")
	maxCycles := flag.Int("max-cycles", 8000, "cycles before a round ties out")
	maxProcesses := flag.Int("max-processes", 64, "per-warrior task queue cap")
	listen := flag.String("listen", "", "address to serve the event WebSocket on, e.g. :8080 (empty disables it)")
	flag.Parse()

	warriors := []*mars.Warrior{dwarf(), sittingDuck()}

	if *listen != "" {
		hub := eventstream.NewHub()
		http.Handle("/events", hub)
		go func() {
			log.Printf("eventstream: serving ws://%s/events", *listen)
			if err := http.ListenAndServe(*listen, nil); err != nil {
				log.Printf("eventstream: server stopped: %v", err)
			}
		}()
	}

	cfg := tournament.Config{
		Rounds:        *rounds,
		CoreSize:      *coreSize,
		CoreWidth:     *coreWidth,
		MaxCycles:     *maxCycles,
		MaxProcesses:  *maxProcesses,
		MinSeparation: 100,
		Randomize:     true,
	}

	report, err := tournament.Run(context.Background(), warriors, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "corewar: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("rounds: %d, ties: %d\n", len(report.Rounds), report.Ties)
	for name, wins := range report.Wins {
		fmt.Printf("  %-16s %d win(s)\n", name, wins)
	}
}
