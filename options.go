package rasterpipe

// Option configures a Pipeline during creation.
//
// Example:
//
//	// Default: low precision when possible
//	p := rasterpipe.New()
//
//	// Always run on floats and record executed stages
//	p := rasterpipe.New(rasterpipe.WithPrecision(rasterpipe.PrecisionHigh), rasterpipe.WithTracer(t))
type Option func(*options)

// options holds optional configuration for Pipeline creation.
type options struct {
	precision Precision
	tracer    Tracer
}

// defaultOptions returns the default pipeline options.
func defaultOptions() options {
	return options{precision: PrecisionAuto}
}

// WithPrecision sets the precision policy. Only PrecisionAuto and
// PrecisionHigh are meaningful; anything else behaves like PrecisionAuto.
func WithPrecision(p Precision) Option {
	return func(o *options) {
		o.precision = p
	}
}

// WithTracer attaches a Tracer that observes every executed stage.
// Tracing slows execution considerably and is meant for debugging.
func WithTracer(t Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

// Tracer observes stage execution. TraceStage is called before each stage
// runs with the stage index, its op and the number of lanes it affects:
// the active lane count on the high precision path and the group width on
// the low precision path.
type Tracer interface {
	TraceStage(index int, op Op, activeLanes int)
}
