package color

import (
	"math"
	"testing"

	"github.com/gogpu/rasterpipe/internal/wide"
)

func TestSRGBRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		s := float32(i) / 255
		got := LinearToSRGB(SRGBToLinear(s))
		if math.Abs(float64(got-s)) > 1e-5 {
			t.Errorf("round trip of %v = %v", s, got)
		}
	}
}

func TestSRGBToLinear(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"black", 0, 0},
		{"white", 1, 1},
		{"linear segment", 0.04, 0.04 / 12.92},
		{"mid gray", 0.5, 0.21404},
		{"negative mirrors", -0.5, -0.21404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SRGBToLinear(tt.in)
			if math.Abs(float64(got-tt.want)) > 1e-4 {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLaneConversions(t *testing.T) {
	in := wide.F32x8{0, 0.25, 0.5, 0.75, 1, 0.1, 0.9, 0.01}
	lin := FromSRGB(in)
	for i := range in {
		if want := SRGBToLinear(in[i]); lin[i] != want {
			t.Errorf("FromSRGB()[%d] = %v, want %v", i, lin[i], want)
		}
	}
	back := ToSRGB(lin)
	for i := range in {
		if math.Abs(float64(back[i]-in[i])) > 1e-5 {
			t.Errorf("ToSRGB(FromSRGB())[%d] = %v, want %v", i, back[i], in[i])
		}
	}
}

func TestToUnorm(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		in     float32
		want8  uint8
		want16 uint16
	}{
		{0, 0, 0},
		{1, 255, 65535},
		{0.5, 128, 32768},
		{-3, 0, 0},
		{7, 255, 65535},
		{nan, 0, 0},
	}

	for _, tt := range tests {
		if got := ToUnorm8(tt.in); got != tt.want8 {
			t.Errorf("ToUnorm8(%v) = %d, want %d", tt.in, got, tt.want8)
		}
		if got := ToUnorm16(tt.in); got != tt.want16 {
			t.Errorf("ToUnorm16(%v) = %d, want %d", tt.in, got, tt.want16)
		}
	}
}

func TestFromUnorm(t *testing.T) {
	for i := 0; i <= 255; i++ {
		if got := ToUnorm8(FromUnorm8(uint8(i))); got != uint8(i) {
			t.Errorf("ToUnorm8(FromUnorm8(%d)) = %d", i, got)
		}
	}
	if got := FromUnorm16(65535); got != 1 {
		t.Errorf("FromUnorm16(65535) = %v, want 1", got)
	}
}
