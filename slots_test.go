package rasterpipe

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCopySlotsMasked(t *testing.T) {
	ops := [4]Op{OpCopySlotMasked, OpCopy2SlotsMasked, OpCopy3SlotsMasked, OpCopy4SlotsMasked}
	for n, op := range ops {
		n++
		for _, mp := range maskPatterns {
			t.Run(op.String()+"/"+mp.name, func(t *testing.T) {
				dst := splatSlots(4, func(s, i int) float32 { return float32(s*10 + i) })
				src := splatSlots(4, func(s, i int) float32 { return float32(-100 - s*10 - i) })
				orig := append([]float32(nil), dst...)

				p := New()
				withConditionMask(p, mp.lanes)
				p.Append(op, &BinaryOpCtx{Dst: dst, Src: src})
				p.Run(0, 0, HighpStride, 1)

				for s := 0; s < 4; s++ {
					for i := 0; i < HighpStride; i++ {
						j := s*HighpStride + i
						want := orig[j]
						if s < n && mp.lanes[i] {
							want = src[j]
						}
						if dst[j] != want {
							t.Errorf("slot %d lane %d = %v, want %v", s, i, dst[j], want)
						}
					}
				}
			})
		}
	}
}

func TestCopySlotsUnmaskedIgnoresMask(t *testing.T) {
	ops := [4]Op{OpCopySlotUnmasked, OpCopy2SlotsUnmasked, OpCopy3SlotsUnmasked, OpCopy4SlotsUnmasked}
	for n, op := range ops {
		n++
		t.Run(op.String(), func(t *testing.T) {
			dst := splatSlots(4, func(s, i int) float32 { return 1 })
			src := splatSlots(4, func(s, i int) float32 { return float32(s*HighpStride + i + 2) })

			p := New()
			withConditionMask(p, maskPatterns[0].lanes)
			p.Append(op, &BinaryOpCtx{Dst: dst, Src: src})
			p.Run(0, 0, HighpStride, 1)

			for j := range dst {
				want := float32(1)
				if j < n*HighpStride {
					want = src[j]
				}
				if dst[j] != want {
					t.Errorf("element %d = %v, want %v", j, dst[j], want)
				}
			}
		})
	}
}

func TestZeroSlotsUnmasked(t *testing.T) {
	ops := [4]Op{OpZeroSlotUnmasked, OpZero2SlotsUnmasked, OpZero3SlotsUnmasked, OpZero4SlotsUnmasked}
	for n, op := range ops {
		n++
		dst := splatSlots(5, func(s, i int) float32 { return 7 })
		p := New()
		withConditionMask(p, maskPatterns[0].lanes)
		p.Append(op, dst)
		p.Run(0, 0, HighpStride, 1)

		for j, v := range dst {
			want := float32(7)
			if j < n*HighpStride {
				want = 0
			}
			if v != want {
				t.Errorf("%v: element %d = %v, want %v", op, j, v, want)
			}
		}
	}
}

func TestCopyConstants(t *testing.T) {
	ops := [4]Op{OpCopyConstant, OpCopy2Constants, OpCopy3Constants, OpCopy4Constants}
	uniforms := []float32{1.5, -2, 3.25, 9}
	for n, op := range ops {
		n++
		dst := make([]float32, 4*HighpStride)
		p := New()
		p.Append(op, &BinaryOpCtx{Dst: dst, Src: uniforms[:n]})
		p.Run(0, 0, 1, 1)

		want := splatSlots(4, func(s, _ int) float32 {
			if s < n {
				return uniforms[s]
			}
			return 0
		})
		if diff := cmp.Diff(want, dst); diff != "" {
			t.Errorf("%v (-want +got):\n%s", op, diff)
		}
	}
}

func TestSlotSwizzle(t *testing.T) {
	tests := []struct {
		op      Op
		offsets [4]uint16
		want    []float32 // per output slot, lanes all equal
	}{
		{OpSwizzle1, [4]uint16{2}, []float32{30, 20, 30, 40}},
		{OpSwizzle2, [4]uint16{1, 0}, []float32{20, 10, 30, 40}},
		{OpSwizzle3, [4]uint16{2, SwizzleOffsetZero, 0}, []float32{30, 0, 10, 40}},
		{OpSwizzle4, [4]uint16{3, 3, SwizzleOffsetOne, 0}, []float32{40, 40, 1, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			slots := splatSlots(4, func(s, _ int) float32 { return float32(10 * (s + 1)) })
			p := New()
			p.Append(tt.op, &SwizzleCtx{Slots: slots, Offsets: tt.offsets})
			p.Run(0, 0, 1, 1)

			want := splatSlots(4, func(s, _ int) float32 { return tt.want[s] })
			if diff := cmp.Diff(want, slots); diff != "" {
				t.Errorf("slots (-want +got):\n%s", diff)
			}
		})
	}
}

func TestImmediateAndStores(t *testing.T) {
	for _, mp := range maskPatterns {
		t.Run(mp.name, func(t *testing.T) {
			masked := splatSlots(1, func(_, i int) float32 { return -1 })
			unmasked := splatSlots(1, func(_, i int) float32 { return -1 })
			loaded := make([]float32, HighpStride)

			p := New()
			withConditionMask(p, mp.lanes)
			p.Append(OpImmediateF, math.Float32bits(2.5))
			p.Append(OpStoreMasked, masked)
			p.Append(OpStoreUnmasked, unmasked)
			p.Append(OpImmediateF, uint32(0))
			p.Append(OpLoadUnmasked, unmasked)
			p.Append(OpStoreUnmasked, loaded)
			p.Run(0, 0, HighpStride, 1)

			for i := 0; i < HighpStride; i++ {
				want := float32(-1)
				if mp.lanes[i] {
					want = 2.5
				}
				if masked[i] != want {
					t.Errorf("masked lane %d = %v, want %v", i, masked[i], want)
				}
				if unmasked[i] != 2.5 || loaded[i] != 2.5 {
					t.Errorf("unmasked lane %d = %v, loaded %v, want 2.5", i, unmasked[i], loaded[i])
				}
			}
		})
	}
}

func TestImmediateIntBits(t *testing.T) {
	out := make([]float32, HighpStride)
	p := New()
	p.Append(OpImmediateF, uint32(0xFFFFFFF6)) // int32(-10)
	p.Append(OpStoreUnmasked, out)
	p.Run(0, 0, 1, 1)
	for i, v := range out {
		if f2i(v) != -10 {
			t.Errorf("lane %d = %d, want -10", i, f2i(v))
		}
	}
}

func TestRegisterBlocks(t *testing.T) {
	in := splatSlots(4, func(s, i int) float32 { return float32(s) + float32(i)/10 })
	src := make([]float32, 4*HighpStride)
	dst := make([]float32, 4*HighpStride)
	rg := make([]float32, 2*HighpStride)

	p := New()
	p.Append(OpLoadSrc, in)
	p.Append(OpMoveSrcDst, nil)
	p.Append(OpSwapRB, nil)
	p.Append(OpStoreSrc, src)
	p.Append(OpStoreSrcRG, rg)
	p.Append(OpStoreDst, dst)
	p.Run(0, 0, 1, 1)

	if diff := cmp.Diff(in, dst); diff != "" {
		t.Errorf("dst registers (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(in[2*HighpStride:3*HighpStride], src[:HighpStride]); diff != "" {
		t.Errorf("r after swap_rb (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(src[:2*HighpStride], rg); diff != "" {
		t.Errorf("store_src_rg (-want +got):\n%s", diff)
	}
}

func TestRunDoesNotAllocate(t *testing.T) {
	const width = 800
	rgba := make([]float32, 4*HighpStride)
	rg := make([]float32, 2*HighpStride)
	tmp := make([]float32, 8*HighpStride)

	p := New()
	p.Append(OpSeedShader, nil)
	p.Append(OpStoreSrc, rgba)
	p.Append(OpStoreSrcRG, rg)
	p.Append(OpLoadDst, rgba)
	p.Append(OpStoreDst, tmp)
	p.Append(OpLoadSrc, tmp)
	p.Append(OpAdd4Floats, tmp)
	run := p.Compile()

	allocs := testing.AllocsPerRun(10, func() { run(0, 0, width, 1) })
	if allocs != 0 {
		t.Errorf("run over %d pixels made %v allocations, want 0", width, allocs)
	}
}
