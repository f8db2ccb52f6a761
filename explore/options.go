package explore

import "github.com/rs/zerolog"

// Option customizes a Run call's observability. Every exploration
// algorithm (reach, covreach, ndfs, couvreur) accepts ...Option as its
// final parameter so callers that don't care about logging need not
// change; the zero value logs nothing, via zerolog.Nop().
type Option func(*Options)

// Options bundles what Run needs beyond the transition system and
// search parameters. Logger is threaded down from the CLI entry point,
// not constructed here.
type Options struct {
	Logger  zerolog.Logger
	OnVisit func(*Node)
}

// WithLogger attaches log to a Run call. Each algorithm logs at Debug
// for every transition taken or pruned, and at Info once on
// termination with the final Stats.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) { o.Logger = log }
}

// WithOnVisit registers fn to be called once for every node an
// algorithm visits (the point where it increments Stats.Visited),
// letting a caller collect the full explored fragment for rendering
// (output.Dot/Raw) without every algorithm needing to return it.
func WithOnVisit(fn func(*Node)) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// Visit invokes o.OnVisit if set; Run bodies call this instead of
// nil-checking OnVisit themselves.
func (o Options) Visit(n *Node) {
	if o.OnVisit != nil {
		o.OnVisit(n)
	}
}

// Build resolves opts into an Options value, defaulting Logger to a
// no-op logger so Run bodies never need a nil check.
func Build(opts ...Option) Options {
	o := Options{Logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
