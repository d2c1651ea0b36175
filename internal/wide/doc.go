// Package wide provides the lane vectors the raster pipeline runs on.
//
// Every stage of a pipeline operates on a group of pixels at once. The
// high precision path holds one float32 per lane in an [F32x8] and views
// the same bits as integers or lane masks through [I32x8]. The low
// precision path holds 8-bit color values widened to uint16 in a [U16x16],
// which leaves headroom for the products formed while blending.
//
// # Register files
//
// [FloatState] and [BatchState] are the two register files: source color
// (r, g, b, a) and destination color (dr, dg, db, da) in
// Structure-of-Arrays layout, one vector per channel:
//
//	R:  [R0, R1, R2, ..., R7]
//	G:  [G0, G1, G2, ..., G7]
//	...
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly, rely on compiler optimization
//   - Keep functions small and inlineable
package wide

const (
	// HighpLanes is the number of lanes in a high precision vector.
	HighpLanes = 8

	// LowpLanes is the number of lanes in a low precision vector.
	LowpLanes = 16
)
