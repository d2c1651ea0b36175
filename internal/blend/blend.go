// Package blend provides lane-wise blend modes for both register files of
// the raster pipeline.
//
// All modes work on premultiplied color. The source registers hold the
// result afterwards; the destination registers are left as they were.
package blend

import "github.com/gogpu/rasterpipe/internal/wide"

// Mode represents a blending mode.
type Mode uint8

const (
	// ModeClear clears to transparent black.
	ModeClear Mode = iota
	// ModeSourceOver is the default alpha blending mode.
	ModeSourceOver
	// ModeDestinationOver draws destination over source.
	ModeDestinationOver
	// ModeModulate multiplies source and destination channels.
	ModeModulate
	// ModeMultiply is the separable multiply blend.
	ModeMultiply
	// ModeScreen is the separable screen blend.
	ModeScreen
	// ModePlus adds source and destination, clamped to 1.
	ModePlus
)

var modeNames = [...]string{
	ModeClear:           "clear",
	ModeSourceOver:      "srcover",
	ModeDestinationOver: "dstover",
	ModeModulate:        "modulate",
	ModeMultiply:        "multiply",
	ModeScreen:          "screen",
	ModePlus:            "plus",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// FloatFunc blends in place on the high precision register file.
type FloatFunc func(s *wide.FloatState)

// BatchFunc blends in place on the low precision register file.
type BatchFunc func(b *wide.BatchState)

// GetFloatFunc returns the high precision implementation of mode.
// Returns SourceOverFloat for unknown modes.
func GetFloatFunc(mode Mode) FloatFunc {
	switch mode {
	case ModeClear:
		return ClearFloat
	case ModeDestinationOver:
		return DestinationOverFloat
	case ModeModulate:
		return ModulateFloat
	case ModeMultiply:
		return MultiplyFloat
	case ModeScreen:
		return ScreenFloat
	case ModePlus:
		return PlusFloat
	default:
		return SourceOverFloat
	}
}

// GetBatchFunc returns the low precision implementation of mode.
// Returns SourceOverBatch for unknown modes.
func GetBatchFunc(mode Mode) BatchFunc {
	switch mode {
	case ModeClear:
		return ClearBatch
	case ModeDestinationOver:
		return DestinationOverBatch
	case ModeModulate:
		return ModulateBatch
	case ModeMultiply:
		return MultiplyBatch
	case ModeScreen:
		return ScreenBatch
	case ModePlus:
		return PlusBatch
	default:
		return SourceOverBatch
	}
}
