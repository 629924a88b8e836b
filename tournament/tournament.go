// Package tournament runs a configured number of independent Core War
// rounds concurrently and tallies the outcome. It mirrors the driver loop
// found at the bottom of most Core War reference implementations, made
// concurrent across rounds: each round owns its own mars.Core and
// mars.MARS, so nothing but the (read-only, post-parse) warrior
// definitions is shared between goroutines.
package tournament

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"corewar2d/mars"
)

// Config parameterizes one tournament: how many rounds to run and how each
// round's Core and MARS are constructed.
type Config struct {
	Rounds        int
	CoreSize      int
	CoreWidth     int
	MaxCycles     int
	MaxProcesses  int
	MinSeparation int
	TotalEnergy   int
	Randomize     bool
}

// Round is the outcome of a single independent match.
type Round struct {
	ID        uuid.UUID
	Cycles    int
	Survivors []string // warrior names still alive when the round ended
	TiedOut   bool     // reached MaxCycles with >1 warrior still alive
}

// Report aggregates every round of a tournament.
type Report struct {
	Rounds []Round
	Wins   map[string]int // warrior name -> rounds it was the sole survivor of
	Ties   int            // rounds that hit MaxCycles with multiple survivors
}

// newWarriorSet deep-copies the program bodies so each round's loader can
// freely mutate per-cell energy without one goroutine's round affecting
// another's.
func newWarriorSet(warriors []*mars.Warrior) []*mars.Warrior {
	out := make([]*mars.Warrior, len(warriors))
	for i, w := range warriors {
		instructions := make(map[mars.Point]mars.Instruction, len(w.Instructions))
		for pos, ins := range w.Instructions {
			instructions[pos] = ins
		}
		nw := mars.NewWarrior(w.Name, instructions)
		nw.Author = w.Author
		nw.Date = w.Date
		nw.Version = w.Version
		nw.Strategy = w.Strategy
		nw.Start = w.Start
		out[i] = nw
	}
	return out
}

// runRound plays one match to completion (a warrior count <= 1 remaining,
// or cfg.MaxCycles reached) and reports its outcome.
func runRound(cfg Config, warriors []*mars.Warrior, seed int64) (Round, error) {
	core, err := mars.NewCore(cfg.CoreSize, cfg.CoreWidth, mars.DefaultInitialInstruction, 0, 0)
	if err != nil {
		return Round{}, err
	}
	m, err := mars.NewMARS(core, warriors, cfg.MinSeparation, cfg.Randomize, cfg.MaxProcesses, cfg.TotalEnergy)
	if err != nil {
		return Round{}, err
	}
	m.SetSeed(seed)
	m.Reset(mars.DefaultInitialInstruction)

	round := Round{ID: uuid.New()}
	for round.Cycles = 0; round.Cycles < cfg.MaxCycles; round.Cycles++ {
		if m.Done() {
			break
		}
		m.Step()
	}

	alive := 0
	for _, w := range warriors {
		if w.TaskCount() > 0 {
			round.Survivors = append(round.Survivors, w.Name)
			alive++
		}
	}
	round.TiedOut = alive > 1
	return round, nil
}

// Run plays cfg.Rounds independent rounds concurrently via errgroup,
// returning once every round has finished; if any round failed with a
// fatal (ConfigError/DecodeError) error, the first such error is returned
// and the report is empty. Per spec.md §5, this is the only
// concurrency boundary in the module: each goroutine constructs its own
// mars.Core and mars.MARS from a private copy of warriors, so no Core or
// task queue is ever touched by more than one goroutine.
func Run(ctx context.Context, warriors []*mars.Warrior, cfg Config) (Report, error) {
	if cfg.Rounds <= 0 {
		return Report{}, fmt.Errorf("tournament: rounds must be positive")
	}

	results := make([]Round, cfg.Rounds)
	g, _ := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Rounds; i++ {
		i := i
		g.Go(func() error {
			roundWarriors := newWarriorSet(warriors)
			r, err := runRound(cfg, roundWarriors, int64(i)+1)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{Rounds: results, Wins: map[string]int{}}
	for _, r := range results {
		if r.TiedOut {
			report.Ties++
		} else if len(r.Survivors) == 1 {
			report.Wins[r.Survivors[0]]++
		}
	}
	return report, nil
}
