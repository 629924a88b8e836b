package mars

// Opcode identifies a Redcode instruction's operation.
type Opcode byte

const (
	DAT Opcode = iota
	MOV
	ADD
	SUB
	MUL
	DIV
	MOD
	JMP
	JMZ
	JMN
	DJN
	SPL
	SLT
	CMP
	SEQ
	SNE
	NOP
)

// Modifier selects which instruction field(s) an opcode reads and writes.
type Modifier byte

const (
	ModA Modifier = iota
	ModB
	ModAB
	ModBA
	ModF
	ModX
	ModI
)

// Stepping controls how the program counter (and every pre/post-increment
// and successor calculation tied to an instruction) advances through the
// core's 2-D plane.
type Stepping byte

const (
	StepNormal Stepping = iota
	StepVertical
	StepBackward
	StepVerticalBackward
)

// Mode is an operand addressing mode.
type Mode byte

const (
	Immediate  Mode = iota // #
	Direct                 // $
	IndirectB              // @
	PredecB                // <
	PostincB               // >
	IndirectA              // *
	PredecA                // {
	PostincA               // }
)

// Step returns the unit-vector delta for stepping s scaled by k: (k,0),
// (0,k), (-k,0) or (0,-k) for NORMAL, VERTICAL, BACKWARD and
// VERTICAL_BACKWARD respectively. It threads through every positional
// change in the engine: PC advance, operand pre/post-modification, and SPL
// / JMP-family successor calculation.
func Step(k int, s Stepping) Point {
	switch s {
	case StepNormal:
		return Point{X: k, Y: 0}
	case StepVertical:
		return Point{X: 0, Y: k}
	case StepBackward:
		return Point{X: -k, Y: 0}
	case StepVerticalBackward:
		return Point{X: 0, Y: -k}
	default:
		return Point{X: k, Y: 0}
	}
}

// Instruction is an immutable-by-value core cell: an opcode, a modifier, a
// stepping mode, two (mode, value) operands and an optional per-cell energy
// level. Instructions are copied freely — the Core is the sole owner of the
// cells that back a running match; nothing else holds a live reference to
// one.
type Instruction struct {
	Opcode   Opcode
	Modifier Modifier
	Stepping Stepping
	AMode    Mode
	BMode    Mode
	AValue   Point
	BValue   Point

	// Energy is the cell's remaining execution budget. It is meaningless
	// (and ignored) unless the owning MARS was constructed with energy
	// mode on; zero then means "exhausted," not "unmetered."
	Energy int
}

// NewInstruction builds an Instruction, deriving Modifier from Opcode and
// the two addressing modes per the ICWS'88-to-'94 default-modifier table
// when mod is passed as DefaultModifier (0xff).
const DefaultModifier Modifier = 0xff

func NewInstruction(op Opcode, mod Modifier, step Stepping, aMode Mode, aVal Point, bMode Mode, bVal Point) Instruction {
	ins := Instruction{
		Opcode:   op,
		Stepping: step,
		AMode:    aMode,
		BMode:    bMode,
		AValue:   aVal,
		BValue:   bVal,
	}
	if mod == DefaultModifier {
		ins.Modifier = inferDefaultModifier(op, aMode, bMode)
	} else {
		ins.Modifier = mod
	}
	return ins
}

// modeClass groups addressing modes the way the ICWS default-modifier
// table does: immediate is its own class, and every other mode (direct,
// the four indirect/pre/post variants) shares the second class.
func modeClass(m Mode) int {
	if m == Immediate {
		return 0
	}
	return 1
}

// inferDefaultModifier implements spec.md's ICWS'88-to-'94 conversion
// table, transcribed from redcode.py's DEFAULT_MODIFIERS.
func inferDefaultModifier(op Opcode, aMode, bMode Mode) Modifier {
	a, b := modeClass(aMode), modeClass(bMode)
	switch op {
	case DAT, NOP:
		return ModF
	case MOV, CMP, SEQ, SNE:
		switch {
		case a == 0:
			return ModAB
		case b == 0:
			return ModB
		default:
			return ModI
		}
	case ADD, SUB, MUL, DIV, MOD:
		switch {
		case a == 0:
			return ModAB
		case b == 0:
			return ModB
		default:
			return ModF
		}
	case SLT:
		if a == 0 {
			return ModAB
		}
		return ModB
	case JMP, JMZ, JMN, DJN, SPL:
		return ModB
	default:
		return ModI
	}
}
