package rasterpipe

// Family groups the slot-count specializations of one slot operation: an
// optional N-slot op taking an explicit count, and fixed ops for 1 to 4
// slots. The compiler selects members through this table instead of
// relying on the order of the Op constants.
type Family struct {
	// N is the op taking an explicit slot count, or OpNone.
	N Op
	// Fixed holds the ops for 1, 2, 3 and 4 slots.
	Fixed [4]Op
	// Arity is the number of slot operands: 0 for copies and swizzles,
	// 1 for unary, 2 for binary and 3 for ternary arithmetic.
	Arity int
}

// Select returns the member to use for slots slots. For counts above 4 it
// returns the N op, or OpNone when the family has none; callers then split
// the work into chunks of at most 4.
func (f *Family) Select(slots int) Op {
	switch {
	case slots < 1:
		panic("rasterpipe: family member for zero slots")
	case slots <= 4:
		return f.Fixed[slots-1]
	default:
		return f.N
	}
}

// Contains reports whether op is a member of f.
func (f *Family) Contains(op Op) bool {
	if op == f.N {
		return op != OpNone
	}
	for _, m := range f.Fixed {
		if m == op {
			return true
		}
	}
	return false
}

var families = []Family{
	// Copies and swizzles
	{N: OpNone, Fixed: [4]Op{OpCopySlotMasked, OpCopy2SlotsMasked, OpCopy3SlotsMasked, OpCopy4SlotsMasked}, Arity: 0},
	{N: OpNone, Fixed: [4]Op{OpCopySlotUnmasked, OpCopy2SlotsUnmasked, OpCopy3SlotsUnmasked, OpCopy4SlotsUnmasked}, Arity: 0},
	{N: OpNone, Fixed: [4]Op{OpZeroSlotUnmasked, OpZero2SlotsUnmasked, OpZero3SlotsUnmasked, OpZero4SlotsUnmasked}, Arity: 0},
	{N: OpNone, Fixed: [4]Op{OpCopyConstant, OpCopy2Constants, OpCopy3Constants, OpCopy4Constants}, Arity: 0},
	{N: OpNone, Fixed: [4]Op{OpSwizzle1, OpSwizzle2, OpSwizzle3, OpSwizzle4}, Arity: 0},

	// Unary
	{N: OpNone, Fixed: [4]Op{OpBitwiseNotInt, OpBitwiseNot2Ints, OpBitwiseNot3Ints, OpBitwiseNot4Ints}, Arity: 1},
	{N: OpNone, Fixed: [4]Op{OpCastToFloatFromInt, OpCastToFloatFrom2Ints, OpCastToFloatFrom3Ints, OpCastToFloatFrom4Ints}, Arity: 1},
	{N: OpNone, Fixed: [4]Op{OpCastToFloatFromUint, OpCastToFloatFrom2Uints, OpCastToFloatFrom3Uints, OpCastToFloatFrom4Uints}, Arity: 1},
	{N: OpNone, Fixed: [4]Op{OpCastToIntFromFloat, OpCastToIntFrom2Floats, OpCastToIntFrom3Floats, OpCastToIntFrom4Floats}, Arity: 1},
	{N: OpNone, Fixed: [4]Op{OpCastToUintFromFloat, OpCastToUintFrom2Floats, OpCastToUintFrom3Floats, OpCastToUintFrom4Floats}, Arity: 1},
	{N: OpNone, Fixed: [4]Op{OpAbsFloat, OpAbs2Floats, OpAbs3Floats, OpAbs4Floats}, Arity: 1},
	{N: OpNone, Fixed: [4]Op{OpAbsInt, OpAbs2Ints, OpAbs3Ints, OpAbs4Ints}, Arity: 1},
	{N: OpNone, Fixed: [4]Op{OpFloorFloat, OpFloor2Floats, OpFloor3Floats, OpFloor4Floats}, Arity: 1},
	{N: OpNone, Fixed: [4]Op{OpCeilFloat, OpCeil2Floats, OpCeil3Floats, OpCeil4Floats}, Arity: 1},

	// Binary
	{N: OpAddNFloats, Fixed: [4]Op{OpAddFloat, OpAdd2Floats, OpAdd3Floats, OpAdd4Floats}, Arity: 2},
	{N: OpAddNInts, Fixed: [4]Op{OpAddInt, OpAdd2Ints, OpAdd3Ints, OpAdd4Ints}, Arity: 2},
	{N: OpSubNFloats, Fixed: [4]Op{OpSubFloat, OpSub2Floats, OpSub3Floats, OpSub4Floats}, Arity: 2},
	{N: OpSubNInts, Fixed: [4]Op{OpSubInt, OpSub2Ints, OpSub3Ints, OpSub4Ints}, Arity: 2},
	{N: OpMulNFloats, Fixed: [4]Op{OpMulFloat, OpMul2Floats, OpMul3Floats, OpMul4Floats}, Arity: 2},
	{N: OpMulNInts, Fixed: [4]Op{OpMulInt, OpMul2Ints, OpMul3Ints, OpMul4Ints}, Arity: 2},
	{N: OpDivNFloats, Fixed: [4]Op{OpDivFloat, OpDiv2Floats, OpDiv3Floats, OpDiv4Floats}, Arity: 2},
	{N: OpDivNInts, Fixed: [4]Op{OpDivInt, OpDiv2Ints, OpDiv3Ints, OpDiv4Ints}, Arity: 2},
	{N: OpDivNUints, Fixed: [4]Op{OpDivUint, OpDiv2Uints, OpDiv3Uints, OpDiv4Uints}, Arity: 2},
	{N: OpBitwiseAndNInts, Fixed: [4]Op{OpBitwiseAndInt, OpBitwiseAnd2Ints, OpBitwiseAnd3Ints, OpBitwiseAnd4Ints}, Arity: 2},
	{N: OpBitwiseOrNInts, Fixed: [4]Op{OpBitwiseOrInt, OpBitwiseOr2Ints, OpBitwiseOr3Ints, OpBitwiseOr4Ints}, Arity: 2},
	{N: OpBitwiseXorNInts, Fixed: [4]Op{OpBitwiseXorInt, OpBitwiseXor2Ints, OpBitwiseXor3Ints, OpBitwiseXor4Ints}, Arity: 2},
	{N: OpMinNFloats, Fixed: [4]Op{OpMinFloat, OpMin2Floats, OpMin3Floats, OpMin4Floats}, Arity: 2},
	{N: OpMinNInts, Fixed: [4]Op{OpMinInt, OpMin2Ints, OpMin3Ints, OpMin4Ints}, Arity: 2},
	{N: OpMinNUints, Fixed: [4]Op{OpMinUint, OpMin2Uints, OpMin3Uints, OpMin4Uints}, Arity: 2},
	{N: OpMaxNFloats, Fixed: [4]Op{OpMaxFloat, OpMax2Floats, OpMax3Floats, OpMax4Floats}, Arity: 2},
	{N: OpMaxNInts, Fixed: [4]Op{OpMaxInt, OpMax2Ints, OpMax3Ints, OpMax4Ints}, Arity: 2},
	{N: OpMaxNUints, Fixed: [4]Op{OpMaxUint, OpMax2Uints, OpMax3Uints, OpMax4Uints}, Arity: 2},
	{N: OpCmpLTNFloats, Fixed: [4]Op{OpCmpLTFloat, OpCmpLT2Floats, OpCmpLT3Floats, OpCmpLT4Floats}, Arity: 2},
	{N: OpCmpLTNInts, Fixed: [4]Op{OpCmpLTInt, OpCmpLT2Ints, OpCmpLT3Ints, OpCmpLT4Ints}, Arity: 2},
	{N: OpCmpLTNUints, Fixed: [4]Op{OpCmpLTUint, OpCmpLT2Uints, OpCmpLT3Uints, OpCmpLT4Uints}, Arity: 2},
	{N: OpCmpLENFloats, Fixed: [4]Op{OpCmpLEFloat, OpCmpLE2Floats, OpCmpLE3Floats, OpCmpLE4Floats}, Arity: 2},
	{N: OpCmpLENInts, Fixed: [4]Op{OpCmpLEInt, OpCmpLE2Ints, OpCmpLE3Ints, OpCmpLE4Ints}, Arity: 2},
	{N: OpCmpLENUints, Fixed: [4]Op{OpCmpLEUint, OpCmpLE2Uints, OpCmpLE3Uints, OpCmpLE4Uints}, Arity: 2},
	{N: OpCmpEQNFloats, Fixed: [4]Op{OpCmpEQFloat, OpCmpEQ2Floats, OpCmpEQ3Floats, OpCmpEQ4Floats}, Arity: 2},
	{N: OpCmpEQNInts, Fixed: [4]Op{OpCmpEQInt, OpCmpEQ2Ints, OpCmpEQ3Ints, OpCmpEQ4Ints}, Arity: 2},
	{N: OpCmpNENFloats, Fixed: [4]Op{OpCmpNEFloat, OpCmpNE2Floats, OpCmpNE3Floats, OpCmpNE4Floats}, Arity: 2},
	{N: OpCmpNENInts, Fixed: [4]Op{OpCmpNEInt, OpCmpNE2Ints, OpCmpNE3Ints, OpCmpNE4Ints}, Arity: 2},

	// Ternary
	{N: OpMixNFloats, Fixed: [4]Op{OpMixFloat, OpMix2Floats, OpMix3Floats, OpMix4Floats}, Arity: 3},
}

var familyIndex = func() [NumOps]int16 {
	var idx [NumOps]int16
	for i := range idx {
		idx[i] = -1
	}
	for i := range families {
		fam := &families[i]
		if fam.N != OpNone {
			idx[fam.N] = int16(i) // #nosec G115
		}
		for _, m := range fam.Fixed {
			idx[m] = int16(i) // #nosec G115
		}
	}
	return idx
}()

// FamilyOf returns the family op belongs to, found from any member.
// The second result is false for ops outside every family.
func FamilyOf(op Op) (*Family, bool) {
	if !op.Valid() || familyIndex[op] < 0 {
		return nil, false
	}
	return &families[familyIndex[op]], true
}

// Families returns every registered family.
func Families() []Family {
	out := make([]Family, len(families))
	copy(out, families)
	return out
}
