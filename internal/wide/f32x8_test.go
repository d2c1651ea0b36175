package wide

import (
	"math"
	"testing"
)

func TestSplatF32(t *testing.T) {
	tests := []struct {
		name  string
		value float32
	}{
		{"zero", 0.0},
		{"one", 1.0},
		{"half", 0.5},
		{"negative", -1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplatF32(tt.value)
			for i, v := range result {
				if v != tt.value {
					t.Errorf("element %d = %f, want %f", i, v, tt.value)
				}
			}
		})
	}
}

func TestIotaF32(t *testing.T) {
	got := IotaF32(0.5)
	want := F32x8{0.5, 1.5, 2.5, 3.5, 4.5, 5.5, 6.5, 7.5}
	if got != want {
		t.Errorf("IotaF32(0.5) = %v, want %v", got, want)
	}
}

func TestF32x8_Arithmetic(t *testing.T) {
	a := F32x8{1, 2, 3, 4, -1, -2, 0.5, 8}
	b := F32x8{2, 2, 2, 2, 4, -4, 0.25, -8}

	tests := []struct {
		name string
		got  F32x8
		want F32x8
	}{
		{"Add", a.Add(b), F32x8{3, 4, 5, 6, 3, -6, 0.75, 0}},
		{"Sub", a.Sub(b), F32x8{-1, 0, 1, 2, -5, 2, 0.25, 16}},
		{"Mul", a.Mul(b), F32x8{2, 4, 6, 8, -4, 8, 0.125, -64}},
		{"Div", a.Div(b), F32x8{0.5, 1, 1.5, 2, -0.25, 0.5, 2, -1}},
		{"MulAdd", a.MulAdd(b, SplatF32(1)), F32x8{3, 5, 7, 9, -3, 9, 1.125, -63}},
		{"Min", a.Min(b), F32x8{1, 2, 2, 2, -1, -4, 0.25, -8}},
		{"Max", a.Max(b), F32x8{2, 2, 3, 4, 4, -2, 0.5, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestF32x8_DivByZero(t *testing.T) {
	got := F32x8{1, -1, 0}.Div(SplatF32(0))
	if !math.IsInf(float64(got[0]), 1) {
		t.Errorf("1/0 = %v, want +Inf", got[0])
	}
	if !math.IsInf(float64(got[1]), -1) {
		t.Errorf("-1/0 = %v, want -Inf", got[1])
	}
	if !math.IsNaN(float64(got[2])) {
		t.Errorf("0/0 = %v, want NaN", got[2])
	}
}

func TestF32x8_Clamp01(t *testing.T) {
	nan := float32(math.NaN())
	input := F32x8{-1, 0, 0.25, 1, 2, nan, -0.0001, 1.0001}
	want := F32x8{0, 0, 0.25, 1, 1, 0, 0, 1}
	if got := input.Clamp01(); got != want {
		t.Errorf("Clamp01() = %v, want %v", got, want)
	}
}

func TestF32x8_Lerp(t *testing.T) {
	tests := []struct {
		name string
		a, b F32x8
		t    F32x8
		want F32x8
	}{
		{"t=0", SplatF32(2), SplatF32(6), SplatF32(0), SplatF32(2)},
		{"t=1", SplatF32(2), SplatF32(6), SplatF32(1), SplatF32(6)},
		{"t=0.5", SplatF32(2), SplatF32(6), SplatF32(0.5), SplatF32(4)},
		{"extrapolate", SplatF32(2), SplatF32(6), SplatF32(2), SplatF32(10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Lerp(tt.b, tt.t); got != tt.want {
				t.Errorf("Lerp() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestF32x8_Inv(t *testing.T) {
	got := F32x8{0, 0.25, 1}.Inv()
	want := F32x8{1, 0.75, 0, 1, 1, 1, 1, 1}
	if got != want {
		t.Errorf("Inv() = %v, want %v", got, want)
	}
}

func TestF32x8_BitsRoundTrip(t *testing.T) {
	input := F32x8{0, 1, -1, 0.5, 123.25, float32(math.Inf(1)), -0.0, 3e-38}
	bits := input.Bits()
	if bits[1] != 0x3F800000 {
		t.Errorf("Bits()[1] = %#x, want 0x3f800000", bits[1])
	}
	if got := bits.Float(); got != input {
		t.Errorf("Bits().Float() = %v, want %v", got, input)
	}
}

func TestF32x8_Select(t *testing.T) {
	a := SplatF32(1)
	b := SplatF32(2)
	mask := LaneMask(3)
	want := F32x8{1, 1, 1, 2, 2, 2, 2, 2}
	if got := a.Select(mask, b); got != want {
		t.Errorf("Select() = %v, want %v", got, want)
	}
}
