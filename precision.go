package rasterpipe

// Precision selects the lane representation a compiled Pipeline runs with.
type Precision int

const (
	// PrecisionAuto uses the low precision path when every stage supports
	// it and the high precision path otherwise.
	PrecisionAuto Precision = iota

	// PrecisionHigh forces the float path.
	PrecisionHigh

	// PrecisionLow is only reported by Pipeline.Precision; it cannot be
	// requested, since not every program has a low precision form.
	PrecisionLow
)

// String returns the precision name.
func (p Precision) String() string {
	switch p {
	case PrecisionAuto:
		return "Auto"
	case PrecisionHigh:
		return "High"
	case PrecisionLow:
		return "Low"
	default:
		return "Unknown"
	}
}

// selectPrecision applies the all-or-nothing rule: a single stage without
// a low precision implementation keeps the whole program on floats.
func selectPrecision(stages []Stage, requested Precision) Precision {
	if requested == PrecisionHigh || len(stages) == 0 {
		return PrecisionHigh
	}
	for _, s := range stages {
		if !s.Op.LowpSupported() {
			return PrecisionHigh
		}
	}
	return PrecisionLow
}
