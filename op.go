package rasterpipe

import "fmt"

// Op identifies a native stage of a Pipeline.
//
// Every Op has a high precision implementation. Ops whose LowpSupported
// method reports true also have a low precision one.
type Op uint16

const (
	// Control flow and execution masks
	OpStackRewind Op = iota
	OpCallback
	OpJump
	OpBranchIfAnyActiveLanes
	OpBranchIfNoActiveLanes
	OpInitLaneMasks
	OpLoadConditionMask
	OpStoreConditionMask
	OpMergeConditionMask
	OpMergeInvConditionMask
	OpLoadLoopMask
	OpStoreLoopMask
	OpMaskOffLoopMask
	OpReenableLoopMask
	OpMergeLoopMask
	OpLoadReturnMask
	OpStoreReturnMask
	OpMaskOffReturnMask

	// Color registers
	OpSeedShader
	OpMatrix2x3
	OpUniformColor
	OpUniformColorDst
	OpBlackColor
	OpWhiteColor
	OpLoadSrc
	OpStoreSrc
	OpStoreSrcRG
	OpLoadDst
	OpStoreDst
	OpMoveSrcDst
	OpMoveDstSrc
	OpSwapSrcDst
	OpSwapRB
	OpSwizzle
	OpClamp01
	OpPremul
	OpUnpremul
	OpFromSRGB
	OpToSRGB

	// Blends
	OpClear
	OpSrcOver
	OpDstOver
	OpModulate
	OpMultiply
	OpScreen
	OpPlus

	// Pixel memory
	OpLoadA8
	OpLoadA8Dst
	OpStoreA8
	OpLoadRG88
	OpStoreRG88
	OpLoad8888
	OpLoad8888Dst
	OpStore8888
	OpLoadA16
	OpStoreA16
	OpLoadRG1616
	OpStoreRG1616
	OpLoad16161616
	OpStore16161616
	OpLoadAF16
	OpStoreAF16
	OpLoadRGF16
	OpStoreRGF16
	OpLoadF16
	OpLoadF16Dst
	OpStoreF16
	OpLoadRGF32
	OpStoreRGF32
	OpLoadF32
	OpStoreF32

	// Slots
	OpImmediateF
	OpLoadUnmasked
	OpStoreUnmasked
	OpStoreMasked
	OpCopySlotMasked
	OpCopy2SlotsMasked
	OpCopy3SlotsMasked
	OpCopy4SlotsMasked
	OpCopySlotUnmasked
	OpCopy2SlotsUnmasked
	OpCopy3SlotsUnmasked
	OpCopy4SlotsUnmasked
	OpZeroSlotUnmasked
	OpZero2SlotsUnmasked
	OpZero3SlotsUnmasked
	OpZero4SlotsUnmasked
	OpCopyConstant
	OpCopy2Constants
	OpCopy3Constants
	OpCopy4Constants
	OpSwizzle1
	OpSwizzle2
	OpSwizzle3
	OpSwizzle4

	// Unary arithmetic
	OpBitwiseNotInt
	OpBitwiseNot2Ints
	OpBitwiseNot3Ints
	OpBitwiseNot4Ints
	OpCastToFloatFromInt
	OpCastToFloatFrom2Ints
	OpCastToFloatFrom3Ints
	OpCastToFloatFrom4Ints
	OpCastToFloatFromUint
	OpCastToFloatFrom2Uints
	OpCastToFloatFrom3Uints
	OpCastToFloatFrom4Uints
	OpCastToIntFromFloat
	OpCastToIntFrom2Floats
	OpCastToIntFrom3Floats
	OpCastToIntFrom4Floats
	OpCastToUintFromFloat
	OpCastToUintFrom2Floats
	OpCastToUintFrom3Floats
	OpCastToUintFrom4Floats
	OpAbsFloat
	OpAbs2Floats
	OpAbs3Floats
	OpAbs4Floats
	OpAbsInt
	OpAbs2Ints
	OpAbs3Ints
	OpAbs4Ints
	OpFloorFloat
	OpFloor2Floats
	OpFloor3Floats
	OpFloor4Floats
	OpCeilFloat
	OpCeil2Floats
	OpCeil3Floats
	OpCeil4Floats

	// Binary arithmetic
	OpAddNFloats
	OpAddFloat
	OpAdd2Floats
	OpAdd3Floats
	OpAdd4Floats
	OpAddNInts
	OpAddInt
	OpAdd2Ints
	OpAdd3Ints
	OpAdd4Ints
	OpSubNFloats
	OpSubFloat
	OpSub2Floats
	OpSub3Floats
	OpSub4Floats
	OpSubNInts
	OpSubInt
	OpSub2Ints
	OpSub3Ints
	OpSub4Ints
	OpMulNFloats
	OpMulFloat
	OpMul2Floats
	OpMul3Floats
	OpMul4Floats
	OpMulNInts
	OpMulInt
	OpMul2Ints
	OpMul3Ints
	OpMul4Ints
	OpDivNFloats
	OpDivFloat
	OpDiv2Floats
	OpDiv3Floats
	OpDiv4Floats
	OpDivNInts
	OpDivInt
	OpDiv2Ints
	OpDiv3Ints
	OpDiv4Ints
	OpDivNUints
	OpDivUint
	OpDiv2Uints
	OpDiv3Uints
	OpDiv4Uints
	OpBitwiseAndNInts
	OpBitwiseAndInt
	OpBitwiseAnd2Ints
	OpBitwiseAnd3Ints
	OpBitwiseAnd4Ints
	OpBitwiseOrNInts
	OpBitwiseOrInt
	OpBitwiseOr2Ints
	OpBitwiseOr3Ints
	OpBitwiseOr4Ints
	OpBitwiseXorNInts
	OpBitwiseXorInt
	OpBitwiseXor2Ints
	OpBitwiseXor3Ints
	OpBitwiseXor4Ints
	OpMinNFloats
	OpMinFloat
	OpMin2Floats
	OpMin3Floats
	OpMin4Floats
	OpMinNInts
	OpMinInt
	OpMin2Ints
	OpMin3Ints
	OpMin4Ints
	OpMinNUints
	OpMinUint
	OpMin2Uints
	OpMin3Uints
	OpMin4Uints
	OpMaxNFloats
	OpMaxFloat
	OpMax2Floats
	OpMax3Floats
	OpMax4Floats
	OpMaxNInts
	OpMaxInt
	OpMax2Ints
	OpMax3Ints
	OpMax4Ints
	OpMaxNUints
	OpMaxUint
	OpMax2Uints
	OpMax3Uints
	OpMax4Uints
	OpCmpLTNFloats
	OpCmpLTFloat
	OpCmpLT2Floats
	OpCmpLT3Floats
	OpCmpLT4Floats
	OpCmpLTNInts
	OpCmpLTInt
	OpCmpLT2Ints
	OpCmpLT3Ints
	OpCmpLT4Ints
	OpCmpLTNUints
	OpCmpLTUint
	OpCmpLT2Uints
	OpCmpLT3Uints
	OpCmpLT4Uints
	OpCmpLENFloats
	OpCmpLEFloat
	OpCmpLE2Floats
	OpCmpLE3Floats
	OpCmpLE4Floats
	OpCmpLENInts
	OpCmpLEInt
	OpCmpLE2Ints
	OpCmpLE3Ints
	OpCmpLE4Ints
	OpCmpLENUints
	OpCmpLEUint
	OpCmpLE2Uints
	OpCmpLE3Uints
	OpCmpLE4Uints
	OpCmpEQNFloats
	OpCmpEQFloat
	OpCmpEQ2Floats
	OpCmpEQ3Floats
	OpCmpEQ4Floats
	OpCmpEQNInts
	OpCmpEQInt
	OpCmpEQ2Ints
	OpCmpEQ3Ints
	OpCmpEQ4Ints
	OpCmpNENFloats
	OpCmpNEFloat
	OpCmpNE2Floats
	OpCmpNE3Floats
	OpCmpNE4Floats
	OpCmpNENInts
	OpCmpNEInt
	OpCmpNE2Ints
	OpCmpNE3Ints
	OpCmpNE4Ints

	// Ternary arithmetic
	OpMixNFloats
	OpMixFloat
	OpMix2Floats
	OpMix3Floats
	OpMix4Floats

	// NumOps is the number of native stages.
	NumOps int = iota
)

// OpNone marks an absent member of a Family.
const OpNone Op = 1<<16 - 1

var opNames = [NumOps]string{
	OpStackRewind:            "stack_rewind",
	OpCallback:               "callback",
	OpJump:                   "jump",
	OpBranchIfAnyActiveLanes: "branch_if_any_active_lanes",
	OpBranchIfNoActiveLanes:  "branch_if_no_active_lanes",
	OpInitLaneMasks:          "init_lane_masks",
	OpLoadConditionMask:      "load_condition_mask",
	OpStoreConditionMask:     "store_condition_mask",
	OpMergeConditionMask:     "merge_condition_mask",
	OpMergeInvConditionMask:  "merge_inv_condition_mask",
	OpLoadLoopMask:           "load_loop_mask",
	OpStoreLoopMask:          "store_loop_mask",
	OpMaskOffLoopMask:        "mask_off_loop_mask",
	OpReenableLoopMask:       "reenable_loop_mask",
	OpMergeLoopMask:          "merge_loop_mask",
	OpLoadReturnMask:         "load_return_mask",
	OpStoreReturnMask:        "store_return_mask",
	OpMaskOffReturnMask:      "mask_off_return_mask",
	OpSeedShader:             "seed_shader",
	OpMatrix2x3:              "matrix_2x3",
	OpUniformColor:           "uniform_color",
	OpUniformColorDst:        "uniform_color_dst",
	OpBlackColor:             "black_color",
	OpWhiteColor:             "white_color",
	OpLoadSrc:                "load_src",
	OpStoreSrc:               "store_src",
	OpStoreSrcRG:             "store_src_rg",
	OpLoadDst:                "load_dst",
	OpStoreDst:               "store_dst",
	OpMoveSrcDst:             "move_src_dst",
	OpMoveDstSrc:             "move_dst_src",
	OpSwapSrcDst:             "swap_src_dst",
	OpSwapRB:                 "swap_rb",
	OpSwizzle:                "swizzle",
	OpClamp01:                "clamp_01",
	OpPremul:                 "premul",
	OpUnpremul:               "unpremul",
	OpFromSRGB:               "from_srgb",
	OpToSRGB:                 "to_srgb",
	OpClear:                  "clear",
	OpSrcOver:                "srcover",
	OpDstOver:                "dstover",
	OpModulate:               "modulate",
	OpMultiply:               "multiply",
	OpScreen:                 "screen",
	OpPlus:                   "plus_",
	OpLoadA8:                 "load_a8",
	OpLoadA8Dst:              "load_a8_dst",
	OpStoreA8:                "store_a8",
	OpLoadRG88:               "load_rg88",
	OpStoreRG88:              "store_rg88",
	OpLoad8888:               "load_8888",
	OpLoad8888Dst:            "load_8888_dst",
	OpStore8888:              "store_8888",
	OpLoadA16:                "load_a16",
	OpStoreA16:               "store_a16",
	OpLoadRG1616:             "load_rg1616",
	OpStoreRG1616:            "store_rg1616",
	OpLoad16161616:           "load_16161616",
	OpStore16161616:          "store_16161616",
	OpLoadAF16:               "load_af16",
	OpStoreAF16:              "store_af16",
	OpLoadRGF16:              "load_rgf16",
	OpStoreRGF16:             "store_rgf16",
	OpLoadF16:                "load_f16",
	OpLoadF16Dst:             "load_f16_dst",
	OpStoreF16:               "store_f16",
	OpLoadRGF32:              "load_rgf32",
	OpStoreRGF32:             "store_rgf32",
	OpLoadF32:                "load_f32",
	OpStoreF32:               "store_f32",
	OpImmediateF:             "immediate_f",
	OpLoadUnmasked:           "load_unmasked",
	OpStoreUnmasked:          "store_unmasked",
	OpStoreMasked:            "store_masked",
	OpCopySlotMasked:         "copy_slot_masked",
	OpCopy2SlotsMasked:       "copy_2_slots_masked",
	OpCopy3SlotsMasked:       "copy_3_slots_masked",
	OpCopy4SlotsMasked:       "copy_4_slots_masked",
	OpCopySlotUnmasked:       "copy_slot_unmasked",
	OpCopy2SlotsUnmasked:     "copy_2_slots_unmasked",
	OpCopy3SlotsUnmasked:     "copy_3_slots_unmasked",
	OpCopy4SlotsUnmasked:     "copy_4_slots_unmasked",
	OpZeroSlotUnmasked:       "zero_slot_unmasked",
	OpZero2SlotsUnmasked:     "zero_2_slots_unmasked",
	OpZero3SlotsUnmasked:     "zero_3_slots_unmasked",
	OpZero4SlotsUnmasked:     "zero_4_slots_unmasked",
	OpCopyConstant:           "copy_constant",
	OpCopy2Constants:         "copy_2_constants",
	OpCopy3Constants:         "copy_3_constants",
	OpCopy4Constants:         "copy_4_constants",
	OpSwizzle1:               "swizzle_1",
	OpSwizzle2:               "swizzle_2",
	OpSwizzle3:               "swizzle_3",
	OpSwizzle4:               "swizzle_4",
	OpBitwiseNotInt:          "bitwise_not_int",
	OpBitwiseNot2Ints:        "bitwise_not_2_ints",
	OpBitwiseNot3Ints:        "bitwise_not_3_ints",
	OpBitwiseNot4Ints:        "bitwise_not_4_ints",
	OpCastToFloatFromInt:     "cast_to_float_from_int",
	OpCastToFloatFrom2Ints:   "cast_to_float_from_2_ints",
	OpCastToFloatFrom3Ints:   "cast_to_float_from_3_ints",
	OpCastToFloatFrom4Ints:   "cast_to_float_from_4_ints",
	OpCastToFloatFromUint:    "cast_to_float_from_uint",
	OpCastToFloatFrom2Uints:  "cast_to_float_from_2_uints",
	OpCastToFloatFrom3Uints:  "cast_to_float_from_3_uints",
	OpCastToFloatFrom4Uints:  "cast_to_float_from_4_uints",
	OpCastToIntFromFloat:     "cast_to_int_from_float",
	OpCastToIntFrom2Floats:   "cast_to_int_from_2_floats",
	OpCastToIntFrom3Floats:   "cast_to_int_from_3_floats",
	OpCastToIntFrom4Floats:   "cast_to_int_from_4_floats",
	OpCastToUintFromFloat:    "cast_to_uint_from_float",
	OpCastToUintFrom2Floats:  "cast_to_uint_from_2_floats",
	OpCastToUintFrom3Floats:  "cast_to_uint_from_3_floats",
	OpCastToUintFrom4Floats:  "cast_to_uint_from_4_floats",
	OpAbsFloat:               "abs_float",
	OpAbs2Floats:             "abs_2_floats",
	OpAbs3Floats:             "abs_3_floats",
	OpAbs4Floats:             "abs_4_floats",
	OpAbsInt:                 "abs_int",
	OpAbs2Ints:               "abs_2_ints",
	OpAbs3Ints:               "abs_3_ints",
	OpAbs4Ints:               "abs_4_ints",
	OpFloorFloat:             "floor_float",
	OpFloor2Floats:           "floor_2_floats",
	OpFloor3Floats:           "floor_3_floats",
	OpFloor4Floats:           "floor_4_floats",
	OpCeilFloat:              "ceil_float",
	OpCeil2Floats:            "ceil_2_floats",
	OpCeil3Floats:            "ceil_3_floats",
	OpCeil4Floats:            "ceil_4_floats",
	OpAddNFloats:             "add_n_floats",
	OpAddFloat:               "add_float",
	OpAdd2Floats:             "add_2_floats",
	OpAdd3Floats:             "add_3_floats",
	OpAdd4Floats:             "add_4_floats",
	OpAddNInts:               "add_n_ints",
	OpAddInt:                 "add_int",
	OpAdd2Ints:               "add_2_ints",
	OpAdd3Ints:               "add_3_ints",
	OpAdd4Ints:               "add_4_ints",
	OpSubNFloats:             "sub_n_floats",
	OpSubFloat:               "sub_float",
	OpSub2Floats:             "sub_2_floats",
	OpSub3Floats:             "sub_3_floats",
	OpSub4Floats:             "sub_4_floats",
	OpSubNInts:               "sub_n_ints",
	OpSubInt:                 "sub_int",
	OpSub2Ints:               "sub_2_ints",
	OpSub3Ints:               "sub_3_ints",
	OpSub4Ints:               "sub_4_ints",
	OpMulNFloats:             "mul_n_floats",
	OpMulFloat:               "mul_float",
	OpMul2Floats:             "mul_2_floats",
	OpMul3Floats:             "mul_3_floats",
	OpMul4Floats:             "mul_4_floats",
	OpMulNInts:               "mul_n_ints",
	OpMulInt:                 "mul_int",
	OpMul2Ints:               "mul_2_ints",
	OpMul3Ints:               "mul_3_ints",
	OpMul4Ints:               "mul_4_ints",
	OpDivNFloats:             "div_n_floats",
	OpDivFloat:               "div_float",
	OpDiv2Floats:             "div_2_floats",
	OpDiv3Floats:             "div_3_floats",
	OpDiv4Floats:             "div_4_floats",
	OpDivNInts:               "div_n_ints",
	OpDivInt:                 "div_int",
	OpDiv2Ints:               "div_2_ints",
	OpDiv3Ints:               "div_3_ints",
	OpDiv4Ints:               "div_4_ints",
	OpDivNUints:              "div_n_uints",
	OpDivUint:                "div_uint",
	OpDiv2Uints:              "div_2_uints",
	OpDiv3Uints:              "div_3_uints",
	OpDiv4Uints:              "div_4_uints",
	OpBitwiseAndNInts:        "bitwise_and_n_ints",
	OpBitwiseAndInt:          "bitwise_and_int",
	OpBitwiseAnd2Ints:        "bitwise_and_2_ints",
	OpBitwiseAnd3Ints:        "bitwise_and_3_ints",
	OpBitwiseAnd4Ints:        "bitwise_and_4_ints",
	OpBitwiseOrNInts:         "bitwise_or_n_ints",
	OpBitwiseOrInt:           "bitwise_or_int",
	OpBitwiseOr2Ints:         "bitwise_or_2_ints",
	OpBitwiseOr3Ints:         "bitwise_or_3_ints",
	OpBitwiseOr4Ints:         "bitwise_or_4_ints",
	OpBitwiseXorNInts:        "bitwise_xor_n_ints",
	OpBitwiseXorInt:          "bitwise_xor_int",
	OpBitwiseXor2Ints:        "bitwise_xor_2_ints",
	OpBitwiseXor3Ints:        "bitwise_xor_3_ints",
	OpBitwiseXor4Ints:        "bitwise_xor_4_ints",
	OpMinNFloats:             "min_n_floats",
	OpMinFloat:               "min_float",
	OpMin2Floats:             "min_2_floats",
	OpMin3Floats:             "min_3_floats",
	OpMin4Floats:             "min_4_floats",
	OpMinNInts:               "min_n_ints",
	OpMinInt:                 "min_int",
	OpMin2Ints:               "min_2_ints",
	OpMin3Ints:               "min_3_ints",
	OpMin4Ints:               "min_4_ints",
	OpMinNUints:              "min_n_uints",
	OpMinUint:                "min_uint",
	OpMin2Uints:              "min_2_uints",
	OpMin3Uints:              "min_3_uints",
	OpMin4Uints:              "min_4_uints",
	OpMaxNFloats:             "max_n_floats",
	OpMaxFloat:               "max_float",
	OpMax2Floats:             "max_2_floats",
	OpMax3Floats:             "max_3_floats",
	OpMax4Floats:             "max_4_floats",
	OpMaxNInts:               "max_n_ints",
	OpMaxInt:                 "max_int",
	OpMax2Ints:               "max_2_ints",
	OpMax3Ints:               "max_3_ints",
	OpMax4Ints:               "max_4_ints",
	OpMaxNUints:              "max_n_uints",
	OpMaxUint:                "max_uint",
	OpMax2Uints:              "max_2_uints",
	OpMax3Uints:              "max_3_uints",
	OpMax4Uints:              "max_4_uints",
	OpCmpLTNFloats:           "cmplt_n_floats",
	OpCmpLTFloat:             "cmplt_float",
	OpCmpLT2Floats:           "cmplt_2_floats",
	OpCmpLT3Floats:           "cmplt_3_floats",
	OpCmpLT4Floats:           "cmplt_4_floats",
	OpCmpLTNInts:             "cmplt_n_ints",
	OpCmpLTInt:               "cmplt_int",
	OpCmpLT2Ints:             "cmplt_2_ints",
	OpCmpLT3Ints:             "cmplt_3_ints",
	OpCmpLT4Ints:             "cmplt_4_ints",
	OpCmpLTNUints:            "cmplt_n_uints",
	OpCmpLTUint:              "cmplt_uint",
	OpCmpLT2Uints:            "cmplt_2_uints",
	OpCmpLT3Uints:            "cmplt_3_uints",
	OpCmpLT4Uints:            "cmplt_4_uints",
	OpCmpLENFloats:           "cmple_n_floats",
	OpCmpLEFloat:             "cmple_float",
	OpCmpLE2Floats:           "cmple_2_floats",
	OpCmpLE3Floats:           "cmple_3_floats",
	OpCmpLE4Floats:           "cmple_4_floats",
	OpCmpLENInts:             "cmple_n_ints",
	OpCmpLEInt:               "cmple_int",
	OpCmpLE2Ints:             "cmple_2_ints",
	OpCmpLE3Ints:             "cmple_3_ints",
	OpCmpLE4Ints:             "cmple_4_ints",
	OpCmpLENUints:            "cmple_n_uints",
	OpCmpLEUint:              "cmple_uint",
	OpCmpLE2Uints:            "cmple_2_uints",
	OpCmpLE3Uints:            "cmple_3_uints",
	OpCmpLE4Uints:            "cmple_4_uints",
	OpCmpEQNFloats:           "cmpeq_n_floats",
	OpCmpEQFloat:             "cmpeq_float",
	OpCmpEQ2Floats:           "cmpeq_2_floats",
	OpCmpEQ3Floats:           "cmpeq_3_floats",
	OpCmpEQ4Floats:           "cmpeq_4_floats",
	OpCmpEQNInts:             "cmpeq_n_ints",
	OpCmpEQInt:               "cmpeq_int",
	OpCmpEQ2Ints:             "cmpeq_2_ints",
	OpCmpEQ3Ints:             "cmpeq_3_ints",
	OpCmpEQ4Ints:             "cmpeq_4_ints",
	OpCmpNENFloats:           "cmpne_n_floats",
	OpCmpNEFloat:             "cmpne_float",
	OpCmpNE2Floats:           "cmpne_2_floats",
	OpCmpNE3Floats:           "cmpne_3_floats",
	OpCmpNE4Floats:           "cmpne_4_floats",
	OpCmpNENInts:             "cmpne_n_ints",
	OpCmpNEInt:               "cmpne_int",
	OpCmpNE2Ints:             "cmpne_2_ints",
	OpCmpNE3Ints:             "cmpne_3_ints",
	OpCmpNE4Ints:             "cmpne_4_ints",
	OpMixNFloats:             "mix_n_floats",
	OpMixFloat:               "mix_float",
	OpMix2Floats:             "mix_2_floats",
	OpMix3Floats:             "mix_3_floats",
	OpMix4Floats:             "mix_4_floats",
}

// String returns the stage name as it appears in program dumps.
func (op Op) String() string {
	if int(op) < NumOps {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint16(op))
}

// Valid reports whether op names a native stage.
func (op Op) Valid() bool {
	return int(op) < NumOps
}
