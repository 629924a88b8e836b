package mars

// deferredIncrement is a post-increment that must fire after the opcode has
// executed but before the next task is dequeued, per spec.md §4.2/§4.3.
type deferredIncrement struct {
	at    Point
	isA   bool
	delta Point
}

// operand is the result of evaluating an (mode, value) pair at a given pc:
// a relative offset (added to pc by the caller to get the absolute address
// both IRA/IRB are fetched from, and T is written to) and, for the two
// post-increment modes, a deferred mutation.
type operand struct {
	rel      Point
	deferred *deferredIncrement
}

// evaluateOperand implements the addressing-mode table of spec.md §4.2.
// Pre-decrements are applied immediately (before the returned offset is
// computed, since the decremented value feeds the indirection); post-
// increments are returned as a deferredIncrement for the caller to apply
// once the opcode has executed.
func evaluateOperand(core *Core, sink EventSink, w *Warrior, pc Point, mode Mode, value Point, stepping Stepping) operand {
	switch mode {
	case Immediate:
		return operand{rel: Point{}}

	case Direct:
		return operand{rel: value}

	case IndirectA, IndirectB:
		isA := mode == IndirectA
		ptr := core.TrimRead(pc.Add(value))
		cell := core.Read(ptr)
		return operand{rel: value.Add(fieldOf(cell, isA))}

	case PredecA, PredecB:
		isA := mode == PredecA
		ptr := core.TrimWrite(pc.Add(value))
		cell := core.Read(ptr)
		setField(&cell, isA, fieldOf(cell, isA).Add(Step(-1, stepping)))
		core.Write(ptr, cell)
		emit(sink, w, ptr, isA, ADec, BDec)
		return operand{rel: value.Add(fieldOf(cell, isA))}

	case PostincA, PostincB:
		isA := mode == PostincA
		ptr := core.TrimWrite(pc.Add(value))
		cell := core.Read(ptr)
		rel := value.Add(fieldOf(cell, isA))
		return operand{
			rel: rel,
			deferred: &deferredIncrement{
				at:    ptr,
				isA:   isA,
				delta: Step(1, stepping),
			},
		}

	default:
		return operand{rel: value}
	}
}

// fireDeferred applies a post-increment recorded by evaluateOperand. Called
// once per operand, in A-then-B order, after the opcode has executed.
func fireDeferred(core *Core, sink EventSink, w *Warrior, d *deferredIncrement) {
	if d == nil {
		return
	}
	at := core.TrimWrite(d.at)
	cell := core.Read(at)
	setField(&cell, d.isA, fieldOf(cell, d.isA).Add(d.delta))
	core.Write(at, cell)
	emit(sink, w, at, d.isA, AInc, BInc)
}

func fieldOf(ins Instruction, isA bool) Point {
	if isA {
		return ins.AValue
	}
	return ins.BValue
}

func setField(ins *Instruction, isA bool, v Point) {
	if isA {
		ins.AValue = v
	} else {
		ins.BValue = v
	}
}

func emit(sink EventSink, w *Warrior, p Point, isA bool, aKind, bKind EventKind) {
	if sink == nil {
		return
	}
	if isA {
		sink.Emit(w, p, aKind)
	} else {
		sink.Emit(w, p, bKind)
	}
}
