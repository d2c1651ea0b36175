package compiler

import (
	"math"
	"strings"
	"testing"

	"github.com/gogpu/rasterpipe"
)

const lanes = rasterpipe.HighpStride

func finish(t *testing.T, b *Builder, numValues, numUniforms int, opts ...FinishOption) *Program {
	t.Helper()
	prog, err := b.Finish(numValues, numUniforms, opts...)
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	return prog
}

// bindAndRun appends prog to a new pipeline, lets init fill the value
// slots and runs one full lane group.
func bindAndRun(t *testing.T, prog *Program, uniforms []float32, init func(SlotData)) SlotData {
	t.Helper()
	p := rasterpipe.New()
	mem := prog.AppendStages(p, rasterpipe.NewArena(0), uniforms)
	if init != nil {
		init(mem)
	}
	p.Run(0, 0, lanes, 1)
	return mem
}

func fillSlot(mem SlotData, slot int, f func(lane int) float32) {
	for l := 0; l < lanes; l++ {
		mem.Values[slot*lanes+l] = f(l)
	}
}

func slotLanes(mem SlotData, slot int) []float32 {
	out := make([]float32, lanes)
	copy(out, mem.Values[slot*lanes:])
	return out
}

func intBits(v int32) float32 { return math.Float32frombits(uint32(v)) }

func uintBits(v uint32) float32 { return math.Float32frombits(v) }

func splat(v float32) []float32 {
	out := make([]float32, lanes)
	for i := range out {
		out[i] = v
	}
	return out
}

func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", want)
		}
		var msg string
		switch v := r.(type) {
		case string:
			msg = v
		case error:
			msg = v.Error()
		}
		if !strings.Contains(msg, want) {
			t.Errorf("panic = %q, want it to contain %q", msg, want)
		}
	}()
	fn()
}
