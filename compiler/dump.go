package compiler

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/gogpu/rasterpipe"
)

// Dump writes a readable listing of the lowered stages. Value slots print
// as v3, stack slots as $3, uniforms as u3 and ranges as v3..5. When a
// DebugTrace is attached, each stage also shows its execution counts.
func (p *Program) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %d instructions, %d stages\n", len(p.instrs), len(p.stages))
	fmt.Fprintf(bw, "# %d value slots, %d uniform slots, %d stack slots\n",
		p.numValueSlots, p.numUniformSlots, p.stacks.total)
	ids := lo.Keys(p.stacks.depths)
	slices.Sort(ids)
	for _, id := range ids {
		fmt.Fprintf(bw, "# stack %d: depth %d at $%d\n", id, p.stacks.depths[id], p.stacks.bases[id])
	}
	fmt.Fprintf(bw, "# host %s\n", rasterpipe.HostFeatures())

	byStage := make(map[int][]int)
	for id, at := range p.labels {
		byStage[at] = append(byStage[at], id)
	}
	writeLabels := func(at int) {
		ids := byStage[at]
		slices.Sort(ids)
		for _, id := range ids {
			fmt.Fprintf(bw, "label %d:\n", id)
		}
	}
	for i := range p.stages {
		writeLabels(i)
		s := &p.stages[i]
		line := fmt.Sprintf("%4d. %-30s %s", i, s.op, s.describe())
		if p.trace != nil {
			if hits, lanes, ok := p.trace.counts(i); ok {
				line = fmt.Sprintf("%-64s hits=%d lanes=%d", line, hits, lanes)
			}
		}
		fmt.Fprintln(bw, strings.TrimRight(line, " "))
	}
	writeLabels(len(p.stages))
	return bw.Flush()
}

func (r ref) format(n int) string {
	var prefix string
	switch r.space {
	case spaceValue:
		prefix = "v"
	case spaceStack:
		prefix = "$"
	case spaceUniform:
		prefix = "u"
	default:
		return ""
	}
	if n <= 1 {
		return fmt.Sprintf("%s%d", prefix, r.index)
	}
	return fmt.Sprintf("%s%d..%d", prefix, r.index, r.index+n-1)
}

func (s *stage) describe() string {
	switch s.kind {
	case ctxOffset:
		return fmt.Sprintf("label %d (%+d)", s.label, s.offset)
	case ctxImmediate:
		return fmt.Sprintf("0x%08X (%g)", s.imm, math.Float32frombits(s.imm))
	case ctxRun:
		parts := []string{s.a.format(s.n)}
		for _, r := range []ref{s.b, s.c} {
			if r.space != spaceNone {
				parts = append(parts, r.format(s.n))
			}
		}
		return strings.Join(parts, ", ")
	case ctxPair:
		if fam, ok := rasterpipe.FamilyOf(s.op); ok && fam.Arity == 0 {
			return fmt.Sprintf("%s = %s", s.a.format(s.n), s.b.format(s.n))
		}
		return fmt.Sprintf("%s, %s", s.a.format(s.n), s.b.format(s.n))
	case ctxConstant:
		if s.b.space == spaceUniform {
			return fmt.Sprintf("%s = %s", s.a.format(s.n), s.b.format(s.n))
		}
		return fmt.Sprintf("%s = 0x%08X (%g)", s.a.format(s.n), s.imm, math.Float32frombits(s.imm))
	case ctxTernary:
		return fmt.Sprintf("%s, %s, %s", s.a.format(s.n), s.b.format(s.n), s.c.format(s.n))
	case ctxSwizzle:
		comps := make([]string, s.n)
		for i := range comps {
			switch off := s.swizzle[i]; off {
			case rasterpipe.SwizzleOffsetZero:
				comps[i] = "0"
			case rasterpipe.SwizzleOffsetOne:
				comps[i] = "1"
			default:
				comps[i] = fmt.Sprintf("$%d", s.a.index+int(off))
			}
		}
		return fmt.Sprintf("%s = (%s)", s.a.format(s.n), strings.Join(comps, ", "))
	}
	return ""
}
