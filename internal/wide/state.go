package wide

// FloatState is the high precision register file: source color in R..A and
// destination color in DR..DA, eight pixels per channel.
type FloatState struct {
	R, G, B, A     F32x8 // Source (working) color
	DR, DG, DB, DA F32x8 // Destination color
}

// MoveSrcToDst copies the source registers into the destination registers.
func (s *FloatState) MoveSrcToDst() {
	s.DR, s.DG, s.DB, s.DA = s.R, s.G, s.B, s.A
}

// MoveDstToSrc copies the destination registers into the source registers.
func (s *FloatState) MoveDstToSrc() {
	s.R, s.G, s.B, s.A = s.DR, s.DG, s.DB, s.DA
}

// SwapSrcDst exchanges the source and destination registers.
func (s *FloatState) SwapSrcDst() {
	s.R, s.DR = s.DR, s.R
	s.G, s.DG = s.DG, s.G
	s.B, s.DB = s.DB, s.B
	s.A, s.DA = s.DA, s.A
}

// Reset zeroes every register.
func (s *FloatState) Reset() {
	*s = FloatState{}
}

// BatchState is the low precision register file: 16 pixels per channel,
// each lane holding an 8-bit value.
//
// Traditional Array-of-Structures (AoS) layout:
//
//	[R0, G0, B0, A0, R1, G1, B1, A1, ...]
//
// Structure-of-Arrays (SoA) layout:
//
//	SR: [R0, R1, R2, ..., R15]
//	SG: [G0, G1, G2, ..., G15]
//	SB: [B0, B1, B2, ..., B15]
//	SA: [A0, A1, A2, ..., A15]
type BatchState struct {
	SR, SG, SB, SA U16x16 // Source RGBA (16 pixels)
	DR, DG, DB, DA U16x16 // Destination RGBA (16 pixels)
}

// LoadSrc loads n RGBA8888 pixels from src into the source channels.
// Lanes at n and beyond are zeroed. src must hold at least n*4 bytes.
func (b *BatchState) LoadSrc(src []byte, n int) {
	b.SR, b.SG, b.SB, b.SA = load8888(src, n)
}

// LoadDst loads n RGBA8888 pixels from dst into the destination channels.
func (b *BatchState) LoadDst(dst []byte, n int) {
	b.DR, b.DG, b.DB, b.DA = load8888(dst, n)
}

// StoreSrc writes the first n source lanes to dst as RGBA8888.
// Bytes past n pixels are left untouched.
func (b *BatchState) StoreSrc(dst []byte, n int) {
	for i := 0; i < n; i++ {
		offset := i * 4
		dst[offset+0] = uint8(b.SR[i]) // #nosec G115
		dst[offset+1] = uint8(b.SG[i]) // #nosec G115
		dst[offset+2] = uint8(b.SB[i]) // #nosec G115
		dst[offset+3] = uint8(b.SA[i]) // #nosec G115
	}
}

// MoveSrcToDst copies the source registers into the destination registers.
func (b *BatchState) MoveSrcToDst() {
	b.DR, b.DG, b.DB, b.DA = b.SR, b.SG, b.SB, b.SA
}

// MoveDstToSrc copies the destination registers into the source registers.
func (b *BatchState) MoveDstToSrc() {
	b.SR, b.SG, b.SB, b.SA = b.DR, b.DG, b.DB, b.DA
}

// SwapSrcDst exchanges the source and destination registers.
func (b *BatchState) SwapSrcDst() {
	b.SR, b.DR = b.DR, b.SR
	b.SG, b.DG = b.DG, b.SG
	b.SB, b.DB = b.DB, b.SB
	b.SA, b.DA = b.DA, b.SA
}

// Reset zeroes every register.
func (b *BatchState) Reset() {
	*b = BatchState{}
}

func load8888(src []byte, n int) (r, g, bl, a U16x16) {
	for i := 0; i < n; i++ {
		offset := i * 4
		r[i] = uint16(src[offset+0])
		g[i] = uint16(src[offset+1])
		bl[i] = uint16(src[offset+2])
		a[i] = uint16(src[offset+3])
	}
	return r, g, bl, a
}
