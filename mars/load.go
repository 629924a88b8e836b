package mars

import "math/rand"

// loadWarriors places every warrior equidistantly around the core and
// copies its instructions in, per spec.md §4.6. Spacing s = size/n; warrior
// k's base linear position is k*s, optionally perturbed by a random offset
// in [0, s - len(instructions) - minimumSeparation) when randomize is set.
// Each instruction is written at base + pos (Point-added, Core-normalized),
// where pos ranges over the warrior's own (possibly negative, possibly
// non-contiguous) Instructions map — the carry arithmetic in Core.index
// folds the result onto the 2-D grid, so no separate linear-to-grid
// conversion is needed regardless of how the program's cells are laid out.
func loadWarriors(core *Core, warriors []*Warrior, minimumSeparation int, randomize bool, totalEnergy int, rng *rand.Rand, sink EventSink) {
	n := len(warriors)
	if n == 0 {
		return
	}
	spacing := core.Size() / n
	for k, w := range warriors {
		base := k * spacing
		if randomize && rng != nil {
			maxOffset := spacing - len(w.Instructions) - minimumSeparation
			if maxOffset > 0 {
				base += rng.Intn(maxOffset)
			}
		}
		basePoint := Point{X: base}
		w.Origin = core.Normalize(basePoint)

		instructions := w.Instructions
		if totalEnergy > 0 {
			instructions = cloneInstructions(w.Instructions)
			initEnergy(instructions, totalEnergy)
		}
		for pos, ins := range instructions {
			at := basePoint.Add(pos)
			core.Write(at, ins)
			if sink != nil {
				sink.Emit(w, core.Normalize(at), IWrite)
			}
		}

		w.TaskQueue = nil
		entry := basePoint.Add(w.Start)
		w.Spawn(core.Normalize(entry))
	}
}

// cloneInstructions returns a shallow copy of a warrior's instructions map,
// so per-match energy assignment (initEnergy) never mutates the warrior's
// own program between rounds.
func cloneInstructions(instructions map[Point]Instruction) map[Point]Instruction {
	out := make(map[Point]Instruction, len(instructions))
	for pos, ins := range instructions {
		out[pos] = ins
	}
	return out
}
