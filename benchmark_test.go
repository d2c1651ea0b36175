package rasterpipe

import (
	"math/rand"
	"testing"
)

func benchmarkSrcOver(b *testing.B, prec Precision) {
	const w, h = 256, 64
	rng := rand.New(rand.NewSource(1))
	dst := premulPixels(rng, w*h)
	mem := &MemoryCtx{Pixels: dst, Stride: w}

	p := New(WithPrecision(prec))
	p.Append(OpLoad8888Dst, mem)
	p.AppendConstantColor(0.2, 0.1, 0, 0.5)
	p.Append(OpSrcOver, nil)
	p.Append(OpStore8888, mem)
	run := p.Compile()

	b.SetBytes(int64(len(dst)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		run(0, 0, w, h)
	}
}

func BenchmarkSrcOverLowp(b *testing.B)  { benchmarkSrcOver(b, PrecisionAuto) }
func BenchmarkSrcOverHighp(b *testing.B) { benchmarkSrcOver(b, PrecisionHigh) }

func BenchmarkSlotArithmetic(b *testing.B) {
	mem := make([]float32, 8*HighpStride)
	for i := range mem {
		mem[i] = float32(i)
	}
	p := New()
	for i := 0; i < 16; i++ {
		p.Append(OpMul4Floats, mem)
		p.Append(OpAdd4Floats, mem)
	}
	run := p.Compile()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		run(0, 0, HighpStride, 1)
	}
}

func BenchmarkRegisterBlocks(b *testing.B) {
	mem := make([]float32, 4*HighpStride)
	p := New()
	p.Append(OpSeedShader, nil)
	p.Append(OpStoreSrc, mem)
	p.Append(OpLoadDst, mem)
	p.Append(OpStoreDst, mem)
	p.Append(OpLoadSrc, mem)
	run := p.Compile()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		run(0, 0, 256, 1)
	}
}
