package mars

// fieldPair names one (read-from-IRA, read-from-IRB, write-to-T) triple for
// an arithmetic or comparison opcode, per the modifier projection table of
// spec.md §4.3. a/b index 0 selects the A field, 1 selects the B field.
type fieldPair struct {
	aIdx, bIdx, wIdx int
}

// projection returns the field pairs a modifier selects, per the table in
// spec.md §4.3. ModI ("whole instruction") is handled specially by callers
// and never reaches here.
func projection(mod Modifier) []fieldPair {
	switch mod {
	case ModA:
		return []fieldPair{{0, 0, 0}}
	case ModB:
		return []fieldPair{{1, 1, 1}}
	case ModAB:
		return []fieldPair{{0, 1, 1}}
	case ModBA:
		return []fieldPair{{1, 0, 0}}
	case ModX:
		return []fieldPair{{0, 0, 1}, {1, 1, 0}}
	default: // ModF
		return []fieldPair{{0, 0, 0}, {1, 1, 1}}
	}
}

func getIdx(ins Instruction, idx int) Point {
	if idx == 0 {
		return ins.AValue
	}
	return ins.BValue
}

func setIdx(ins *Instruction, idx int, v Point) {
	if idx == 0 {
		ins.AValue = v
	} else {
		ins.BValue = v
	}
}

// execOutcome is what an opcode produced: the rewritten T cell (if any
// field was written), whether an energy-mode MOV must equalize energy
// between the source and T, and the successor Points to enqueue (0, 1 or 2 of
// them — the scheduler applies the max_processes cap on each).
type execOutcome struct {
	wroteT      bool
	t           Instruction
	tAt         Point
	successors  []Point
	moveEnergy  bool
}

// emitKind emits a single, already-determined event kind, for call sites
// that don't need the A/B dispatch evaluateOperand's emit helper provides.
func emitKind(sink EventSink, w *Warrior, p Point, k EventKind) {
	if sink != nil {
		sink.Emit(w, p, k)
	}
}

// readKind/writeKind/arithKind report the event kind a projected field
// index (0 == A field, 1 == B field) produces, so every read/write/
// recompute is reported against the field actually touched instead of a
// fixed B-side event. Mirrors original_source/corewar/mars.py's per-
// modifier core_event calls in execute_mov/do_arithmetic/do_comparison.
func readKind(idx int) EventKind {
	if idx == 0 {
		return ARead
	}
	return BRead
}

func writeKind(idx int) EventKind {
	if idx == 0 {
		return AWrite
	}
	return BWrite
}

func arithKind(idx int) EventKind {
	if idx == 0 {
		return AArith
	}
	return BArith
}

// executeOpcode runs ir (already fetched at pc, with IRA/IRB resolved at
// irAAt/irBAt) and reports the write to T (at the same address IRB was read
// from, per spec.md §4.3) and the successor set. Each opcode emits its own
// read/write/arith events keyed off the modifier's field projection, not a
// blanket A-side/B-side pair.
func executeOpcode(core *Core, sink EventSink, w *Warrior, pc Point, ir Instruction, relA, relB Point) execOutcome {
	irAAt := pc.Add(relA)
	irBAt := pc.Add(relB)
	ira := core.Read(irAAt)
	irb := core.Read(irBAt)

	normalSucc := pc.Add(Step(1, ir.Stepping))

	switch ir.Opcode {
	case DAT:
		return execOutcome{}

	case NOP:
		return execOutcome{successors: []Point{normalSucc}}

	case MOV:
		t := core.Read(irBAt)
		if ir.Modifier == ModI {
			t = ira
			emitKind(sink, w, irAAt, IRead)
			emitKind(sink, w, irBAt, IWrite)
		} else {
			for _, fp := range fieldsFor(ir.Modifier) {
				setIdx(&t, fp.wIdx, getIdx(ira, fp.aIdx))
				emitKind(sink, w, irAAt, readKind(fp.aIdx))
				emitKind(sink, w, irBAt, writeKind(fp.wIdx))
			}
		}
		return execOutcome{wroteT: true, t: t, tAt: irBAt, successors: []Point{normalSucc}, moveEnergy: true}

	case ADD, SUB, MUL, DIV, MOD:
		// Arithmetic operates on the scalar (X) component of each projected
		// field, matching the source's one-dimensional operand values; Y is
		// reserved for addressing and is untouched here. See component().
		t := core.Read(irBAt)
		for _, fp := range fieldsFor(ir.Modifier) {
			a := component(getIdx(ira, fp.aIdx))
			b := component(getIdx(irb, fp.bIdx))
			emitKind(sink, w, irAAt, readKind(fp.aIdx))
			emitKind(sink, w, irBAt, readKind(fp.bIdx))
			var r int
			switch ir.Opcode {
			case ADD:
				r = b + a
			case SUB:
				r = b - a
			case MUL:
				r = b * a
			case DIV:
				if a == 0 {
					return execOutcome{}
				}
				r = b / a
			case MOD:
				if a == 0 {
					return execOutcome{}
				}
				r = b % a
			}
			setIdx(&t, fp.wIdx, Point{X: r, Y: getIdx(t, fp.wIdx).Y})
			emitKind(sink, w, irBAt, arithKind(fp.wIdx))
		}
		return execOutcome{wroteT: true, t: t, tAt: irBAt, successors: []Point{normalSucc}}

	case JMP:
		return execOutcome{successors: []Point{pc.Add(relA)}}

	case JMZ:
		for _, fp := range fieldsFor(ir.Modifier) {
			emitKind(sink, w, irBAt, readKind(fp.bIdx))
		}
		if allZero(irb, ir.Modifier) {
			return execOutcome{successors: []Point{pc.Add(relA)}}
		}
		return execOutcome{successors: []Point{normalSucc}}

	case JMN:
		for _, fp := range fieldsFor(ir.Modifier) {
			emitKind(sink, w, irBAt, readKind(fp.bIdx))
		}
		if !allZero(irb, ir.Modifier) {
			return execOutcome{successors: []Point{pc.Add(relA)}}
		}
		return execOutcome{successors: []Point{normalSucc}}

	case DJN:
		t := core.Read(irBAt)
		for _, fp := range fieldsFor(ir.Modifier) {
			setIdx(&t, fp.wIdx, getIdx(t, fp.wIdx).Sub(Pt(1)))
			setIdx(&irb, fp.bIdx, getIdx(irb, fp.bIdx).Sub(Pt(1)))
			emitKind(sink, w, irBAt, arithKind(fp.wIdx))
		}
		out := execOutcome{wroteT: true, t: t, tAt: irBAt}
		if !allZero(irb, ir.Modifier) {
			out.successors = []Point{pc.Add(relA)}
		} else {
			out.successors = []Point{normalSucc}
		}
		return out

	case SPL:
		return execOutcome{successors: []Point{normalSucc, pc.Add(relA)}}

	case SLT:
		for _, fp := range fieldsFor(ir.Modifier) {
			emitKind(sink, w, irAAt, readKind(fp.aIdx))
			emitKind(sink, w, irBAt, readKind(fp.bIdx))
		}
		if lessAll(ira, irb, ir.Modifier) {
			return execOutcome{successors: []Point{pc.Add(Step(2, ir.Stepping))}}
		}
		return execOutcome{successors: []Point{normalSucc}}

	case CMP, SEQ:
		for _, fp := range fieldsFor(ir.Modifier) {
			emitKind(sink, w, irAAt, readKind(fp.aIdx))
			emitKind(sink, w, irBAt, readKind(fp.bIdx))
		}
		if equalAll(ira, irb, ir.Modifier) {
			return execOutcome{successors: []Point{pc.Add(Step(2, ir.Stepping))}}
		}
		return execOutcome{successors: []Point{normalSucc}}

	case SNE:
		for _, fp := range fieldsFor(ir.Modifier) {
			emitKind(sink, w, irAAt, readKind(fp.aIdx))
			emitKind(sink, w, irBAt, readKind(fp.bIdx))
		}
		if !equalAll(ira, irb, ir.Modifier) {
			return execOutcome{successors: []Point{pc.Add(Step(2, ir.Stepping))}}
		}
		return execOutcome{successors: []Point{normalSucc}}

	default:
		return execOutcome{}
	}
}

// fieldsFor is projection, named for readability at call sites that iterate
// "the fields this modifier projects."
func fieldsFor(mod Modifier) []fieldPair {
	return projection(mod)
}

// component extracts the scalar ICWS arithmetic operates on: the x-axis of
// a field value, per spec.md §9's note that arithmetic paths use only the
// x component.
func component(p Point) int { return p.X }

func allZero(ins Instruction, mod Modifier) bool {
	for _, fp := range fieldsFor(mod) {
		if getIdx(ins, fp.bIdx).X != 0 {
			return false
		}
	}
	return true
}

func lessAll(ira, irb Instruction, mod Modifier) bool {
	for _, fp := range fieldsFor(mod) {
		if !(getIdx(ira, fp.aIdx).X < getIdx(irb, fp.bIdx).X) {
			return false
		}
	}
	return true
}

func equalAll(ira, irb Instruction, mod Modifier) bool {
	if mod == ModI {
		return ira == irb
	}
	for _, fp := range fieldsFor(mod) {
		if getIdx(ira, fp.aIdx).X != getIdx(irb, fp.bIdx).X {
			return false
		}
	}
	return true
}
