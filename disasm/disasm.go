// Package disasm renders mars.Instructions and Core ranges as the
// canonical text form of spec.md §6. It is one-directional: text out, never
// text back in (parsing Redcode source is an external collaborator's job).
package disasm

import (
	"fmt"
	"strings"

	"corewar2d/mars"
)

// Format renders a single instruction using Instruction.String(), the
// shared formatter also used by package mars itself for debug output.
func Format(ins mars.Instruction) string {
	return ins.String()
}

// Dump renders the cyclic range [from, to) of core as one instruction per
// line, each prefixed with its normalized (x,y) coordinate.
func Dump(core *mars.Core, from, to mars.Point) string {
	fromI, toI := core.LinearIndex(from), core.LinearIndex(to)
	cells := core.Slice(fromI, toI)
	var b strings.Builder
	for i, ins := range cells {
		p := core.Normalize(mars.Pt(fromI + i))
		fmt.Fprintf(&b, "(%d,%d)  %s\n", p.X, p.Y, Format(ins))
	}
	return b.String()
}
