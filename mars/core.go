package mars

// DefaultInitialInstruction is the global default cell: a terminating
// instruction with both operands direct-zero, per spec.md §6.
var DefaultInitialInstruction = NewInstruction(DAT, ModF, StepNormal, Direct, Pt(0), Direct, Pt(0))

// Core is a fixed-size toroidal memory of Instructions. width*height ==
// size is enforced at construction. readLimit and writeLimit default to
// size; they let callers emulate ICWS implementations that restrict
// indirect-addressing ranges more tightly than the physical core.
// operand.go's indirect/predecrement/postincrement resolution consults
// TrimRead/TrimWrite when dereferencing a pointer cell, so a Core built
// with a limit narrower than its size actually constrains how far an
// indirect operand can reach.
type Core struct {
	size         int
	width        int
	height       int
	readLimit    int
	writeLimit   int
	instructions []Instruction
}

// NewCore constructs a Core. initial is written to every cell; if its zero
// value (an Instruction{}) is passed, DefaultInitialInstruction is used
// instead. readLimit/writeLimit of 0 default to size.
func NewCore(size, width int, initial Instruction, readLimit, writeLimit int) (*Core, error) {
	if width <= 0 || size <= 0 {
		return nil, &ConfigError{Reason: "size and width must be positive"}
	}
	if size%width != 0 {
		return nil, &ConfigError{Reason: "core size must be divisible by width"}
	}
	if initial == (Instruction{}) {
		initial = DefaultInitialInstruction
	}
	if readLimit == 0 {
		readLimit = size
	}
	if writeLimit == 0 {
		writeLimit = size
	}
	c := &Core{
		size:       size,
		width:      width,
		height:     size / width,
		readLimit:  readLimit,
		writeLimit: writeLimit,
	}
	c.Clear(initial)
	return c, nil
}

// Size returns the number of cells in the core.
func (c *Core) Size() int { return c.size }

// Width returns the core's x-extent.
func (c *Core) Width() int { return c.width }

// Height returns the core's y-extent (size / width).
func (c *Core) Height() int { return c.height }

// Clear re-fills every cell with initial.
func (c *Core) Clear(initial Instruction) {
	c.instructions = make([]Instruction, c.size)
	for i := range c.instructions {
		c.instructions[i] = initial
	}
}

// index converts a Point to a linear cell index using the carry-coupled
// 2-D wrap from spec.md §4.1: overflow along x carries into y, overflow
// along y carries into x. Both mod and floor-division are Euclidean, so
// negative coordinates wrap into [0, width) and [0, height). When
// width == size (height == 1) this reduces to x mod size.
func (c *Core) index(p Point) int {
	cx := floorDiv(p.X, c.width)
	wx := floorMod(p.X, c.width)
	ry := floorMod(p.Y+cx, c.height)
	cy := floorDiv(p.Y, c.height)
	fx := floorMod(wx+cy, c.width)
	return ry*c.width + fx
}

// indexLimited is index() but wrapping within [0, limit) instead of the
// full core, used where ICWS distinguishes read/write ranges from the
// physical core size. limit must be a positive divisor relationship is not
// required; the same carry formula is reused with an equivalent width/
// height derived by scaling — in practice read/write limits in ICWS are
// always <= size and apply to the *linear* address, so we apply them after
// the normal 2-D index is computed.
func (c *Core) indexLimited(p Point, limit int) int {
	i := c.index(p)
	if limit >= c.size {
		return i
	}
	return floorMod(i, limit)
}

// Normalize reduces p to its canonical representative: the Point whose
// linear index equals index(p) and whose components both lie in their
// respective [0, width)/[0, height) ranges.
func (c *Core) Normalize(p Point) Point {
	i := c.index(p)
	return Point{X: i % c.width, Y: i / c.width}
}

// LinearIndex exposes index(p), the toroidal Point-to-linear-offset
// mapping of spec.md §4.1, for callers (disasm) that need to convert a
// Point range into a linear Slice range.
func (c *Core) LinearIndex(p Point) int {
	return c.index(p)
}

// Read returns a copy of the cell at p.
func (c *Core) Read(p Point) Instruction {
	return c.instructions[c.index(p)]
}

// Write stores ins at p.
func (c *Core) Write(p Point, ins Instruction) {
	c.instructions[c.index(p)] = ins
}

// TrimRead normalizes p under the core's read limit instead of its full size.
func (c *Core) TrimRead(p Point) Point {
	i := c.indexLimited(p, c.readLimit)
	return Point{X: i % c.width, Y: i / c.width}
}

// TrimWrite normalizes p under the core's write limit instead of its full size.
func (c *Core) TrimWrite(p Point) Point {
	i := c.indexLimited(p, c.writeLimit)
	return Point{X: i % c.width, Y: i / c.width}
}

// Slice returns the cyclic range of cells [from, to) by linear index, with
// wraparound if from > to.
func (c *Core) Slice(from, to int) []Instruction {
	from = floorMod(from, c.size)
	to = floorMod(to, c.size)
	if from <= to {
		out := make([]Instruction, to-from)
		copy(out, c.instructions[from:to])
		return out
	}
	out := make([]Instruction, 0, c.size-from+to)
	out = append(out, c.instructions[from:]...)
	out = append(out, c.instructions[:to]...)
	return out
}

// Len reports the number of cells, satisfying the common Go container idiom.
func (c *Core) Len() int { return c.size }
