package mars

import "testing"

func expectCell(t *testing.T, core *Core, p Point, want Instruction) {
	t.Helper()
	if got := core.Read(p); got != want {
		t.Errorf("cell at %v: exp %v, got %v", p, want, got)
	}
}

func TestEvaluateOperandImmediate(t *testing.T) {
	c := mustCore(t, 100, 10)
	op := evaluateOperand(c, NullSink{}, nil, Pt(5), Immediate, Pt(9), StepNormal)
	expectPoint(t, "immediate rel", op.rel, Pt(0))
	if op.deferred != nil {
		t.Error("immediate should have no deferred increment")
	}
}

func TestEvaluateOperandDirect(t *testing.T) {
	c := mustCore(t, 100, 10)
	op := evaluateOperand(c, NullSink{}, nil, Pt(5), Direct, Pt(9), StepNormal)
	expectPoint(t, "direct rel", op.rel, Pt(9))
}

func TestEvaluateOperandIndirect(t *testing.T) {
	c := mustCore(t, 100, 10)
	pc := Pt(5)
	ptr := pc.Add(Pt(3))
	c.Write(ptr, NewInstruction(DAT, ModF, StepNormal, Direct, Pt(7), Direct, Pt(11)))

	opA := evaluateOperand(c, NullSink{}, nil, pc, IndirectA, Pt(3), StepNormal)
	expectPoint(t, "indirect A rel", opA.rel, Pt(10)) // value(3) + a_value(7)

	opB := evaluateOperand(c, NullSink{}, nil, pc, IndirectB, Pt(3), StepNormal)
	expectPoint(t, "indirect B rel", opB.rel, Pt(14)) // value(3) + b_value(11)
}

func TestEvaluateOperandPredecrementAllSteppings(t *testing.T) {
	cases := []struct {
		s     Stepping
		delta Point
	}{
		{StepNormal, Pt(-1, 0)},
		{StepVertical, Pt(0, -1)},
		{StepBackward, Pt(1, 0)},
		{StepVerticalBackward, Pt(0, 1)},
	}
	for _, c := range cases {
		core := mustCore(t, 100, 10)
		pc := Pt(5)
		ptr := pc.Add(Pt(2))
		core.Write(ptr, NewInstruction(DAT, ModF, StepNormal, Direct, Pt(4, 4), Direct, Pt(4, 4)))

		evaluateOperand(core, NullSink{}, nil, pc, PredecA, Pt(2), c.s)
		got := core.Read(ptr).AValue
		want := Pt(4, 4).Add(c.delta)
		if got != want {
			t.Errorf("predecA stepping=%v: exp a_value %v, got %v", c.s, want, got)
		}
	}
}

func TestEvaluateOperandPostincrementAllSteppings(t *testing.T) {
	cases := []struct {
		s     Stepping
		delta Point
	}{
		{StepNormal, Pt(1, 0)},
		{StepVertical, Pt(0, 1)},
		{StepBackward, Pt(-1, 0)},
		{StepVerticalBackward, Pt(0, -1)},
	}
	for _, c := range cases {
		core := mustCore(t, 100, 10)
		pc := Pt(5)
		ptr := pc.Add(Pt(2))
		core.Write(ptr, NewInstruction(DAT, ModF, StepNormal, Direct, Pt(4, 4), Direct, Pt(4, 4)))

		op := evaluateOperand(core, NullSink{}, nil, pc, PostincB, Pt(2), c.s)
		// Before firing: cell unchanged.
		if core.Read(ptr).BValue != (Point{4, 4}) {
			t.Fatalf("postinc stepping=%v: cell mutated before firing", c.s)
		}
		fireDeferred(core, NullSink{}, nil, op.deferred)
		want := Pt(4, 4).Add(c.delta)
		if got := core.Read(ptr).BValue; got != want {
			t.Errorf("postincB stepping=%v: exp b_value %v, got %v", c.s, want, got)
		}
	}
}
