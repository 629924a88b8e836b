package mars

import "math/rand"

// MARS (Memory Array Redcode Simulator) is one Core War match: a Core, the
// warriors loaded into it, and the round-robin scheduler that steps them.
// A MARS is single-threaded and deterministic; see spec.md §5 — callers
// MUST NOT step two MARS instances' warriors concurrently against the same
// Core, but independent MARS values (independent matches) are safe to run
// in parallel.
type MARS struct {
	core              *Core
	warriors          []*Warrior
	minimumSeparation int
	randomize         bool
	maxProcesses      int
	totalEnergy       int
	energyMode        bool
	stallPolicy       EnergyStallPolicy
	sink              EventSink
	cycle             int
	rng               *rand.Rand
}

// NewMARS constructs a match: core and warriors are retained by reference,
// minimumSeparation/randomize/maxProcesses/totalEnergy configure loading
// and the per-cycle rules of spec.md §4.4/§4.6. totalEnergy == 0 disables
// the energy model entirely. The warriors are loaded immediately.
func NewMARS(core *Core, warriors []*Warrior, minimumSeparation int, randomize bool, maxProcesses, totalEnergy int) (*MARS, error) {
	if core == nil {
		return nil, &ConfigError{Reason: "core is required"}
	}
	if len(warriors) == 0 {
		return nil, &ConfigError{Reason: "at least one warrior is required"}
	}
	m := &MARS{
		core:              core,
		warriors:          warriors,
		minimumSeparation: minimumSeparation,
		randomize:         randomize,
		maxProcesses:      maxProcesses,
		totalEnergy:       totalEnergy,
		energyMode:        totalEnergy > 0,
		stallPolicy:       DropTask,
		sink:              NullSink{},
		rng:               rand.New(rand.NewSource(1)),
	}
	m.Reset(DefaultInitialInstruction)
	return m, nil
}

// SetSeed reseeds the loader's random-offset source, for hosts that want
// reproducible randomized placement (spec.md §5: "randomness is seeded by
// the host").
func (m *MARS) SetSeed(seed int64) {
	m.rng = rand.New(rand.NewSource(seed))
}

// SetStallPolicy overrides the default energy-stall behavior (spec.md §9
// Open Question).
func (m *MARS) SetStallPolicy(p EnergyStallPolicy) {
	m.stallPolicy = p
}

// OnEvent attaches an observer. Passing nil restores the null sink.
func (m *MARS) OnEvent(sink EventSink) {
	if sink == nil {
		sink = NullSink{}
	}
	m.sink = sink
}

// Core exposes the underlying memory, e.g. for a disassembler dump.
func (m *MARS) Core() *Core { return m.core }

// Warriors exposes the loaded warriors in scheduling order.
func (m *MARS) Warriors() []*Warrior { return m.warriors }

// Cycle reports the number of completed Step calls since the last Reset.
func (m *MARS) Cycle() int { return m.cycle }

// Peek is the read-only subscript of spec.md §6: mars[point] -> instruction.
func (m *MARS) Peek(p Point) Instruction { return m.core.Read(p) }

// AliveCount reports how many warriors still have a non-empty task queue.
func (m *MARS) AliveCount() int {
	n := 0
	for _, w := range m.warriors {
		if len(w.TaskQueue) > 0 {
			n++
		}
	}
	return n
}

// Done reports whether the match has reached its natural end: at most one
// warrior remains alive. Callers combine this with their own max_cycles
// check (spec.md §4.5) to decide when to stop calling Step.
func (m *MARS) Done() bool {
	return len(m.warriors) >= 2 && m.AliveCount() <= 1
}

// Reset clears the core to initial and reloads every warrior from scratch,
// per spec.md §6's MARS::reset.
func (m *MARS) Reset(initial Instruction) {
	m.core.Clear(initial)
	m.cycle = 0
	loadWarriors(m.core, m.warriors, m.minimumSeparation, m.randomize, m.totalEnergy, m.rng, m.sink)
}

// Step advances every living warrior by exactly one instruction, in
// warrior-list order, implementing the pipeline of spec.md §4.5:
// pop -> fetch -> (energy gate) -> evaluate A -> evaluate B -> consume
// energy -> EXECUTED event -> dispatch -> write T -> fire deferred
// post-increments (A then B) -> enqueue successors.
func (m *MARS) Step() {
	m.cycle++
	for _, w := range m.warriors {
		if len(w.TaskQueue) == 0 {
			continue
		}
		pc, ok := w.PopTask()
		if !ok {
			continue
		}

		ir := m.core.Read(pc)

		if m.energyMode && !hasEnergy(ir) {
			if m.stallPolicy == RequeueTask {
				w.PushTask(pc)
			}
			// DropTask: pc was already popped above and is not
			// re-enqueued, so a single-task warrior dies here.
			continue
		}

		opA := evaluateOperand(m.core, m.sink, w, pc, ir.AMode, ir.AValue, ir.Stepping)
		opB := evaluateOperand(m.core, m.sink, w, pc, ir.BMode, ir.BValue, ir.Stepping)

		if m.energyMode {
			consumeEnergy(&ir)
			m.core.Write(pc, ir)
		}

		m.sink.Emit(w, pc, Executed)

		outcome := executeOpcode(m.core, m.sink, w, pc, ir, opA.rel, opB.rel)

		if outcome.wroteT {
			t := outcome.t
			if m.energyMode && outcome.moveEnergy {
				// MOV.I copies IRA's energy into t; equalize against the
				// target cell's own energy instead so the total is kept.
				t.Energy = m.core.Read(outcome.tAt).Energy
				irAAt := pc.Add(opA.rel)
				ira := m.core.Read(irAAt)
				equalizeEnergy(&ira, &t)
				m.core.Write(irAAt, ira)
			}
			m.core.Write(outcome.tAt, t)
		}

		fireDeferred(m.core, m.sink, w, opA.deferred)
		fireDeferred(m.core, m.sink, w, opB.deferred)

		for _, succ := range outcome.successors {
			if m.maxProcesses > 0 && len(w.TaskQueue) >= m.maxProcesses {
				continue
			}
			w.PushTask(succ)
		}
	}
}
