package blend

import "github.com/gogpu/rasterpipe/internal/wide"

// ClearFloat sets the source to transparent black.
// Formula: Result = 0
func ClearFloat(s *wide.FloatState) {
	s.R, s.G, s.B, s.A = wide.F32x8{}, wide.F32x8{}, wide.F32x8{}, wide.F32x8{}
}

// SourceOverFloat composites source over destination.
// Formula: Result = S + D * (1 - Sa)
func SourceOverFloat(s *wide.FloatState) {
	invSA := s.A.Inv()
	s.R = s.DR.MulAdd(invSA, s.R)
	s.G = s.DG.MulAdd(invSA, s.G)
	s.B = s.DB.MulAdd(invSA, s.B)
	s.A = s.DA.MulAdd(invSA, s.A)
}

// DestinationOverFloat composites destination over source.
// Formula: Result = D + S * (1 - Da)
func DestinationOverFloat(s *wide.FloatState) {
	invDA := s.DA.Inv()
	s.R = s.R.MulAdd(invDA, s.DR)
	s.G = s.G.MulAdd(invDA, s.DG)
	s.B = s.B.MulAdd(invDA, s.DB)
	s.A = s.A.MulAdd(invDA, s.DA)
}

// ModulateFloat multiplies source and destination.
// Formula: Result = S * D
func ModulateFloat(s *wide.FloatState) {
	s.R = s.R.Mul(s.DR)
	s.G = s.G.Mul(s.DG)
	s.B = s.B.Mul(s.DB)
	s.A = s.A.Mul(s.DA)
}

// MultiplyFloat is the separable multiply blend.
// Formula: Result = S * (1 - Da) + D * (1 - Sa) + S * D
func MultiplyFloat(s *wide.FloatState) {
	invSA, invDA := s.A.Inv(), s.DA.Inv()
	mul := func(sc, dc wide.F32x8) wide.F32x8 {
		return sc.Mul(invDA).Add(dc.Mul(invSA)).Add(sc.Mul(dc))
	}
	s.R = mul(s.R, s.DR)
	s.G = mul(s.G, s.DG)
	s.B = mul(s.B, s.DB)
	s.A = mul(s.A, s.DA)
}

// ScreenFloat is the separable screen blend.
// Formula: Result = S + D - S * D
func ScreenFloat(s *wide.FloatState) {
	scr := func(sc, dc wide.F32x8) wide.F32x8 {
		return sc.Add(dc).Sub(sc.Mul(dc))
	}
	s.R = scr(s.R, s.DR)
	s.G = scr(s.G, s.DG)
	s.B = scr(s.B, s.DB)
	s.A = scr(s.A, s.DA)
}

// PlusFloat adds source and destination, clamped to 1.
// Formula: Result = min(S + D, 1)
func PlusFloat(s *wide.FloatState) {
	one := wide.SplatF32(1)
	s.R = s.R.Add(s.DR).Min(one)
	s.G = s.G.Add(s.DG).Min(one)
	s.B = s.B.Add(s.DB).Min(one)
	s.A = s.A.Add(s.DA).Min(one)
}
