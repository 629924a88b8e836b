package mars

import "testing"

func TestLoadWarriorsEquidistantPlacement(t *testing.T) {
	core := mustCore(t, 100, 100)
	w1 := NewWarrior("A", Linear(NewInstruction(NOP, ModF, StepNormal, Direct, Pt(0), Direct, Pt(0))))
	w2 := NewWarrior("B", Linear(NewInstruction(NOP, ModF, StepNormal, Direct, Pt(0), Direct, Pt(0))))
	loadWarriors(core, []*Warrior{w1, w2}, 0, false, 0, nil, NullSink{})

	if w1.Origin != Pt(0) {
		t.Errorf("warrior 0 origin: exp (0,0), got %v", w1.Origin)
	}
	if w2.Origin != Pt(50) {
		t.Errorf("warrior 1 origin: exp (50,0), got %v", w2.Origin)
	}
}

func TestLoadWarriorsCopiesInstructions(t *testing.T) {
	// A 10x10 core, so the off-axis cell (-1,1) lands on its own cell
	// instead of wrapping onto (0,0) as it would on a single-row core.
	core := mustCore(t, 100, 10)
	ins := map[Point]Instruction{
		Pt(0):     NewInstruction(MOV, ModI, StepNormal, Direct, Pt(1), Direct, Pt(2)),
		Pt(1):     NewInstruction(JMP, ModB, StepNormal, Direct, Pt(-1), Direct, Pt(0)),
		Pt(-1, 1): NewInstruction(DAT, ModF, StepNormal, Immediate, Pt(0), Immediate, Pt(0)),
	}
	w := NewWarrior("A", ins)
	loadWarriors(core, []*Warrior{w}, 0, false, 0, nil, NullSink{})

	for pos, want := range ins {
		got := core.Read(w.Origin.Add(pos))
		if got != want {
			t.Errorf("cell %v: exp %v, got %v", pos, want, got)
		}
	}
}

func TestLoadWarriorsSpawnsEntryTask(t *testing.T) {
	core := mustCore(t, 100, 100)
	w := NewWarrior("A", Linear(
		NewInstruction(NOP, ModF, StepNormal, Direct, Pt(0), Direct, Pt(0)),
		NewInstruction(NOP, ModF, StepNormal, Direct, Pt(0), Direct, Pt(0)),
	))
	w.Start = Pt(1)
	loadWarriors(core, []*Warrior{w}, 0, false, 0, nil, NullSink{})

	if len(w.TaskQueue) != 1 || w.TaskQueue[0] != w.Origin.Add(Pt(1)) {
		t.Errorf("exp single entry task at origin+start, got %v", w.TaskQueue)
	}
}

func TestLoadWarriorsAssignsEnergyShares(t *testing.T) {
	core := mustCore(t, 100, 100)
	cells := make([]Instruction, 3)
	for i := range cells {
		cells[i] = NewInstruction(NOP, ModF, StepNormal, Direct, Pt(0), Direct, Pt(0))
	}
	w := NewWarrior("A", Linear(cells...))
	loadWarriors(core, []*Warrior{w}, 0, false, 90, nil, NullSink{})

	total := 0
	for i := 0; i < 3; i++ {
		total += core.Read(w.Origin.Add(Pt(i))).Energy
	}
	if total != 90 {
		t.Errorf("exp total loaded energy 90, got %d", total)
	}
}
