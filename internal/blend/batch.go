package blend

import "github.com/gogpu/rasterpipe/internal/wide"

// ClearBatch sets the source to transparent black.
// Formula: Result = 0
func ClearBatch(b *wide.BatchState) {
	zero := wide.SplatU16(0)
	b.SR = zero
	b.SG = zero
	b.SB = zero
	b.SA = zero
}

// SourceOverBatch composites source over destination.
// Formula: Result = S + D * (1 - Sa)
func SourceOverBatch(b *wide.BatchState) {
	invSA := b.SA.Inv()
	b.SR = b.SR.Add(b.DR.MulDiv255(invSA)).Clamp(255)
	b.SG = b.SG.Add(b.DG.MulDiv255(invSA)).Clamp(255)
	b.SB = b.SB.Add(b.DB.MulDiv255(invSA)).Clamp(255)
	b.SA = b.SA.Add(b.DA.MulDiv255(invSA)).Clamp(255)
}

// DestinationOverBatch composites destination over source.
// Formula: Result = D + S * (1 - Da)
func DestinationOverBatch(b *wide.BatchState) {
	invDA := b.DA.Inv()
	b.SR = b.SR.MulDiv255(invDA).Add(b.DR).Clamp(255)
	b.SG = b.SG.MulDiv255(invDA).Add(b.DG).Clamp(255)
	b.SB = b.SB.MulDiv255(invDA).Add(b.DB).Clamp(255)
	b.SA = b.SA.MulDiv255(invDA).Add(b.DA).Clamp(255)
}

// ModulateBatch multiplies source and destination colors.
// Formula: Result = S * D / 255
func ModulateBatch(b *wide.BatchState) {
	b.SR = b.SR.MulDiv255(b.DR)
	b.SG = b.SG.MulDiv255(b.DG)
	b.SB = b.SB.MulDiv255(b.DB)
	b.SA = b.SA.MulDiv255(b.DA)
}

// MultiplyBatch is the separable multiply blend.
// Formula: Result = S * (1 - Da) + D * (1 - Sa) + S * D
func MultiplyBatch(b *wide.BatchState) {
	invSA, invDA := b.SA.Inv(), b.DA.Inv()
	mul := func(sc, dc wide.U16x16) wide.U16x16 {
		return sc.MulDiv255(invDA).Add(dc.MulDiv255(invSA)).Add(sc.MulDiv255(dc)).Clamp(255)
	}
	b.SR = mul(b.SR, b.DR)
	b.SG = mul(b.SG, b.DG)
	b.SB = mul(b.SB, b.DB)
	b.SA = mul(b.SA, b.DA)
}

// ScreenBatch is the separable screen blend.
// Formula: Result = S + D - S * D / 255
func ScreenBatch(b *wide.BatchState) {
	scr := func(sc, dc wide.U16x16) wide.U16x16 {
		return sc.Add(dc).Sub(sc.MulDiv255(dc))
	}
	b.SR = scr(b.SR, b.DR)
	b.SG = scr(b.SG, b.DG)
	b.SB = scr(b.SB, b.DB)
	b.SA = scr(b.SA, b.DA)
}

// PlusBatch adds source and destination colors (clamped to 255).
// Formula: Result = min(S + D, 255)
func PlusBatch(b *wide.BatchState) {
	b.SR = b.SR.Add(b.DR).Clamp(255)
	b.SG = b.SG.Add(b.DG).Clamp(255)
	b.SB = b.SB.Add(b.DB).Clamp(255)
	b.SA = b.SA.Add(b.DA).Clamp(255)
}
