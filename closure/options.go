package closure

import "github.com/graphpick/graphpick/flow"

// DefaultSearchIterations is the number of penalty bisection rounds
// SolveClosureBySize performs. 36 halvings shrink the initial bracket by a
// factor of ~7e10, well past float64 noise for realistic weight ranges.
const DefaultSearchIterations = 36

// searchPadding widens the penalty bracket beyond [min(weight), max(weight)]
// so the extreme closures (everything, nothing) stay inside it.
const searchPadding = 5.0

// Option configures optional solver behavior.
// Use with MaximumWeightClosure(g, opts...) or SolveClosureBySize(g, k, opts...).
type Option func(*Options)

// Options holds configurable solver parameters.
type Options struct {
	// SearchIterations bounds the penalty binary search in
	// SolveClosureBySize. Defaults to DefaultSearchIterations.
	SearchIterations int

	// Epsilon is forwarded to the flow engine: residual capacities at or
	// below it count as zero. Defaults to flow.DefaultEpsilon.
	Epsilon float64
}

// DefaultOptions returns an Options struct with:
//   - SearchIterations = DefaultSearchIterations (36)
//   - Epsilon = flow.DefaultEpsilon (1e-9)
func DefaultOptions() Options {
	return Options{
		SearchIterations: DefaultSearchIterations,
		Epsilon:          flow.DefaultEpsilon,
	}
}

// WithSearchIterations returns an Option that sets the bisection round
// count. Non-positive values have no effect (the default is retained).
func WithSearchIterations(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.SearchIterations = n
		}
	}
}

// WithEpsilon returns an Option that sets the flow-engine zero-capacity
// threshold. Non-positive values have no effect.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps > 0 {
			o.Epsilon = eps
		}
	}
}

// applyOptions folds opts over DefaultOptions.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
