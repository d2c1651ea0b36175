package rasterpipe

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

// mustPanic runs fn and returns the recovered value, failing the test if
// fn returns normally.
func mustPanic(t *testing.T, fn func()) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Fatal("expected panic")
		}
	}()
	fn()
	return nil
}

// panicContains checks that fn panics with a message containing want.
func panicContains(t *testing.T, want string, fn func()) {
	t.Helper()
	r := mustPanic(t, fn)
	if msg := fmt.Sprint(r); !strings.Contains(msg, want) {
		t.Errorf("panic = %q, want it to contain %q", msg, want)
	}
}

// maskSlot returns one slot holding a lane mask.
func maskSlot(lanes [HighpStride]bool) []float32 {
	s := make([]float32, HighpStride)
	for i, on := range lanes {
		s[i] = boolBits(on)
	}
	return s
}

// splatSlots returns n slots where slot s, lane i holds f(s, i).
func splatSlots(n int, f func(s, i int) float32) []float32 {
	out := make([]float32, n*HighpStride)
	for s := 0; s < n; s++ {
		for i := 0; i < HighpStride; i++ {
			out[s*HighpStride+i] = f(s, i)
		}
	}
	return out
}

var maskPatterns = []struct {
	name  string
	lanes [HighpStride]bool
}{
	{"all-zero", [HighpStride]bool{}},
	{"all-one", [HighpStride]bool{true, true, true, true, true, true, true, true}},
	{"alternating", [HighpStride]bool{true, false, true, false, true, false, true, false}},
	{"single-bit", [HighpStride]bool{false, false, false, false, false, true, false, false}},
}

// withConditionMask appends stages that enable every lane and then set the
// condition mask to lanes.
func withConditionMask(p *Pipeline, lanes [HighpStride]bool) {
	p.Append(OpInitLaneMasks, nil)
	p.Append(OpLoadConditionMask, maskSlot(lanes))
}

// premulPixels returns n random premultiplied RGBA8888 pixels.
func premulPixels(rng *rand.Rand, n int) []byte {
	px := make([]byte, 4*n)
	for i := 0; i < n; i++ {
		a := rng.Intn(256)
		px[4*i+0] = byte(rng.Intn(a + 1))
		px[4*i+1] = byte(rng.Intn(a + 1))
		px[4*i+2] = byte(rng.Intn(a + 1))
		px[4*i+3] = byte(a)
	}
	return px
}
