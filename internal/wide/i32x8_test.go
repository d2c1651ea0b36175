package wide

import "testing"

func TestLaneMask(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{5, 5},
		{8, 8},
		{12, 8},
	}

	for _, tt := range tests {
		m := LaneMask(tt.n)
		if got := m.Count(); got != tt.want {
			t.Errorf("LaneMask(%d).Count() = %d, want %d", tt.n, got, tt.want)
		}
		for i, x := range m {
			if i < tt.n && x != ^0 {
				t.Errorf("LaneMask(%d)[%d] = %#x, want all bits set", tt.n, i, x)
			}
			if i >= tt.n && x != 0 {
				t.Errorf("LaneMask(%d)[%d] = %#x, want 0", tt.n, i, x)
			}
		}
	}
}

func TestI32x8_Logic(t *testing.T) {
	a := I32x8{0, ^0, 0, ^0, 0x0F, 0x0F, 0x0F, 0x0F}
	b := I32x8{0, 0, ^0, ^0, 0x00, 0x03, 0x30, 0xFF}

	tests := []struct {
		name string
		got  I32x8
		want I32x8
	}{
		{"And", a.And(b), I32x8{0, 0, 0, ^0, 0x00, 0x03, 0x00, 0x0F}},
		{"Or", a.Or(b), I32x8{0, ^0, ^0, ^0, 0x0F, 0x0F, 0x3F, 0xFF}},
		{"AndNot", a.AndNot(b), I32x8{0, ^0, 0, 0, 0x0F, 0x0C, 0x0F, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestI32x8_Any(t *testing.T) {
	if (I32x8{}).Any() {
		t.Error("zero vector Any() = true, want false")
	}
	if !(I32x8{7: 1}).Any() {
		t.Error("last lane set Any() = false, want true")
	}
}
