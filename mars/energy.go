package mars

import "sort"

// EnergyStallPolicy decides what happens to a task whose cell has zero
// energy when it is its turn to run. The task has already been popped off
// its warrior's queue; the Open Question (spec.md §9) is whether it comes
// back at all. DropTask mirrors the one concrete behavior observed in the
// reference sources: the popped task is simply not re-enqueued, so a
// single-task warrior that exhausts its only cell's energy dies.
type EnergyStallPolicy int

const (
	// DropTask leaves the stalled task popped and does not re-enqueue it.
	// This is the default, and the one the seed energy-depletion scenario
	// assumes: a warrior whose sole task stalls dies on that turn.
	DropTask EnergyStallPolicy = iota

	// RequeueTask re-enqueues the stalled task at the tail instead, so the
	// warrior survives a stall and simply waits its turn again. Exposed
	// for callers who want energy to be merely a progress throttle rather
	// than a cause of death; nothing in the reference sources restores a
	// cell's energy once consumed, so this can spin forever on a
	// permanently stalled task.
	RequeueTask
)

// initEnergy assigns each instruction of a freshly loaded warrior an equal
// share of total, per spec.md §4.4: total ÷ warrior_length, floored.
// Remainder units (total % length) are distributed one-per-cell, in a fixed
// (Y, then X) position order so the result is deterministic despite Go's
// randomized map iteration, so that the sum of assigned energy never
// exceeds total.
func initEnergy(instructions map[Point]Instruction, total int) {
	if len(instructions) == 0 {
		return
	}
	positions := make([]Point, 0, len(instructions))
	for pos := range instructions {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})

	share := total / len(instructions)
	remainder := total % len(instructions)
	for i, pos := range positions {
		e := share
		if i < remainder {
			e++
		}
		ins := instructions[pos]
		ins.Energy = e
		instructions[pos] = ins
	}
}

// hasEnergy reports whether ins may execute this cycle.
func hasEnergy(ins Instruction) bool {
	return ins.Energy > 0
}

// consumeEnergy deducts one unit, the cost of executing a single instruction.
func consumeEnergy(ins *Instruction) {
	if ins.Energy > 0 {
		ins.Energy--
	}
}

// equalizeEnergy implements MOV's energy-mode transfer: the two cells'
// energy levels are replaced by the floor and ceiling of their average,
// conserving the total. Per spec.md §4.3, src is IRA's cell, dst is T.
func equalizeEnergy(src, dst *Instruction) {
	sum := src.Energy + dst.Energy
	src.Energy = sum / 2
	dst.Energy = sum - src.Energy // ceiling, since src.Energy floors
}
