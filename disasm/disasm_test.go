package disasm_test

import (
	"strings"
	"testing"

	"corewar2d/disasm"
	"corewar2d/mars"
)

func TestFormatMatchesInstructionString(t *testing.T) {
	ins := mars.NewInstruction(mars.MOV, mars.ModI, mars.StepNormal, mars.Direct, mars.Pt(1), mars.IndirectB, mars.Pt(2))
	want := "MOV.I $1, @2"
	if got := disasm.Format(ins); got != want {
		t.Errorf("Format: exp %q, got %q", want, got)
	}
}

func TestDumpOneLinePerCell(t *testing.T) {
	core, err := mars.NewCore(10, 10, mars.DefaultInitialInstruction, 0, 0)
	if err != nil {
		t.Fatalf("NewCore: %v", err)
	}
	out := disasm.Dump(core, mars.Pt(0), mars.Pt(3))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("exp 3 lines, got %d: %q", len(lines), out)
	}
	for _, line := range lines {
		if !strings.Contains(line, "DAT.F $0, $0") {
			t.Errorf("expected default instruction text in line %q", line)
		}
	}
}
