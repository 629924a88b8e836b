package mars

import "testing"

func TestInitEnergyDistributesEvenly(t *testing.T) {
	instructions := Linear(make([]Instruction, 4)...)
	initEnergy(instructions, 100)
	for pos, ins := range instructions {
		if ins.Energy != 25 {
			t.Errorf("instruction %v: exp energy 25, got %d", pos, ins.Energy)
		}
	}
}

func TestInitEnergyDistributesRemainder(t *testing.T) {
	instructions := Linear(make([]Instruction, 3)...)
	initEnergy(instructions, 10)
	sum := 0
	for _, ins := range instructions {
		sum += ins.Energy
	}
	if sum != 10 {
		t.Errorf("exp total energy conserved at 10, got %d", sum)
	}
}

func TestEqualizeEnergyConservesSum(t *testing.T) {
	src := Instruction{Energy: 7}
	dst := Instruction{Energy: 2}
	before := src.Energy + dst.Energy
	equalizeEnergy(&src, &dst)
	after := src.Energy + dst.Energy
	if before != after {
		t.Errorf("energy not conserved: before %d, after %d", before, after)
	}
	if src.Energy != 4 || dst.Energy != 5 {
		t.Errorf("exp floor/ceil split 4/5, got %d/%d", src.Energy, dst.Energy)
	}
}

func TestHasEnergyConsumeEnergy(t *testing.T) {
	ins := Instruction{Energy: 1}
	if !hasEnergy(ins) {
		t.Fatal("energy=1 should be executable")
	}
	consumeEnergy(&ins)
	if hasEnergy(ins) {
		t.Fatal("energy should be 0 after consuming the last unit")
	}
	consumeEnergy(&ins)
	if ins.Energy != 0 {
		t.Error("consumeEnergy should not go negative")
	}
}
