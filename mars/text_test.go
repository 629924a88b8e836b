package mars

import "testing"

func TestInstructionString(t *testing.T) {
	cases := []struct {
		ins  Instruction
		want string
	}{
		{
			NewInstruction(DAT, ModF, StepNormal, Direct, Pt(0), Direct, Pt(0)),
			"DAT.F $0, $0",
		},
		{
			NewInstruction(MOV, ModI, StepNormal, Direct, Pt(2), IndirectB, Pt(2)),
			"MOV.I $2, @2",
		},
		{
			NewInstruction(JMP, ModB, StepVertical, Direct, Pt(-2, 3), Direct, Pt(0)),
			"JMP.B.S $-2:3, $0",
		},
	}
	for _, c := range cases {
		if got := c.ins.String(); got != c.want {
			t.Errorf("String(): exp %q, got %q", c.want, got)
		}
	}
}

func TestInstructionStringWithEnergy(t *testing.T) {
	ins := NewInstruction(NOP, ModF, StepNormal, Direct, Pt(0), Direct, Pt(0))
	ins.Energy = 7
	want := "NOP.F $0, $0 ; E:7"
	if got := ins.String(); got != want {
		t.Errorf("String() with energy: exp %q, got %q", want, got)
	}
}
