package permutation

// Tracer observes the state after every round. Round numbers start at 0 and
// count the rounds of the engine's reference description; the state slice is
// a copy the tracer may keep.
type Tracer[E comparable] func(round int, state []E)

// Options holds the settings shared by all engines.
type Options[E comparable] struct {
	Tracer Tracer[E]
}

// Option configures an engine at construction.
type Option[E comparable] func(*Options[E])

// WithTracer installs a round tracer.
func WithTracer[E comparable](tracer Tracer[E]) Option[E] {
	return func(o *Options[E]) {
		o.Tracer = tracer
	}
}

// NewOptions applies the options in order.
func NewOptions[E comparable](opts ...Option[E]) Options[E] {
	var o Options[E]
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Tracing reports whether a tracer is installed.
func (o Options[E]) Tracing() bool { return o.Tracer != nil }

// Trace reports the state after a round, if a tracer is installed.
func (o Options[E]) Trace(round int, state []E) {
	if o.Tracer != nil {
		o.Tracer(round, append([]E(nil), state...))
	}
}
