package mars

import "testing"

func TestStepDirections(t *testing.T) {
	cases := []struct {
		s    Stepping
		want Point
	}{
		{StepNormal, Pt(3, 0)},
		{StepVertical, Pt(0, 3)},
		{StepBackward, Pt(-3, 0)},
		{StepVerticalBackward, Pt(0, -3)},
	}
	for _, c := range cases {
		expectPoint(t, c.s.String()+" step", Step(3, c.s), c.want)
	}
}

func TestDefaultStepNormalSuccessor(t *testing.T) {
	pc := Pt(41)
	expectPoint(t, "normal successor", pc.Add(Step(1, StepNormal)), Pt(42))
}

func TestDefaultModifierTable(t *testing.T) {
	cases := []struct {
		op       Opcode
		aMode    Mode
		bMode    Mode
		expected Modifier
	}{
		{DAT, Direct, Direct, ModF},
		{NOP, Direct, Direct, ModF},
		{MOV, Immediate, Direct, ModAB},
		{MOV, Direct, Immediate, ModB},
		{MOV, Direct, Direct, ModI},
		{ADD, Immediate, Direct, ModAB},
		{ADD, Direct, Immediate, ModB},
		{ADD, Direct, Direct, ModF},
		{SLT, Immediate, Direct, ModAB},
		{SLT, Direct, Direct, ModB},
		{JMP, Direct, Direct, ModB},
		{SPL, Direct, Direct, ModB},
	}
	for _, c := range cases {
		ins := NewInstruction(c.op, DefaultModifier, StepNormal, c.aMode, Pt(0), c.bMode, Pt(0))
		if ins.Modifier != c.expected {
			t.Errorf("%v %v %v: exp modifier %v, got %v", c.op, c.aMode, c.bMode, c.expected, ins.Modifier)
		}
	}
}

func TestExplicitModifierNotOverridden(t *testing.T) {
	ins := NewInstruction(MOV, ModX, StepNormal, Direct, Pt(0), Direct, Pt(0))
	if ins.Modifier != ModX {
		t.Errorf("explicit modifier should be preserved, got %v", ins.Modifier)
	}
}
