package config

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/tchecker-go/explore"
	"github.com/katalvlaran/tchecker-go/explore/couvreur"
	"github.com/katalvlaran/tchecker-go/explore/covreach"
	"github.com/katalvlaran/tchecker-go/explore/ndfs"
	"github.com/katalvlaran/tchecker-go/explore/reach"
	"github.com/katalvlaran/tchecker-go/state"
	"github.com/katalvlaran/tchecker-go/system"
	"github.com/katalvlaran/tchecker-go/ts"
)

// Algorithm selects which exploration algorithm Run dispatches to.
type Algorithm int

const (
	Reach Algorithm = iota
	Covreach
	NDFS
	Couvreur
)

// SearchOrder selects the waiting container discipline shared by the
// reach and covreach algorithms; ndfs and couvreur ignore it, since
// their traversal order is fixed by the coloring/SCC discipline itself.
type SearchOrder int

const (
	BFS SearchOrder = iota
	DFS
)

// Option mutates a config before Run resolves it. As a rule, option
// constructors never panic and ignore nil/zero inputs that would leave
// the config unchanged.
type Option func(cfg *cfg)

type cfg struct {
	algorithm     Algorithm
	semantics     ts.Semantics
	extrapolation ts.ExtrapolationKind
	scope         ts.Scope
	async         bool
	refClocks     []int
	order         SearchOrder
	covering      covreach.Policy
	labelNames    []string
	blockSize     int
	tableSize     int
	logger        zerolog.Logger
	onVisit       func(*explore.Node)
}

func newConfig(opts ...Option) *cfg {
	c := &cfg{
		algorithm:     Reach,
		semantics:     ts.Standard,
		extrapolation: ts.NoExtra,
		scope:         ts.Global,
		order:         BFS,
		covering:      covreach.Inclusion,
		blockSize:     64,
		tableSize:     1024,
		logger:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithAlgorithm selects the exploration algorithm (spec 6: algorithm
// flag reach|covreach|ndfs|couvreur).
func WithAlgorithm(a Algorithm) Option { return func(c *cfg) { c.algorithm = a } }

// WithSemantics selects standard vs. elapsed time-elapse placement.
func WithSemantics(s ts.Semantics) Option { return func(c *cfg) { c.semantics = s } }

// WithExtrapolation selects the abstraction operator applied after every
// Initial/Next. Required (non-NoExtra) for covreach's aLU/aM policies.
func WithExtrapolation(e ts.ExtrapolationKind) Option {
	return func(c *cfg) { c.extrapolation = e }
}

// WithScope selects whether extrapolation bound maps are computed once
// globally or recomputed per-vloc.
func WithScope(s ts.Scope) Option { return func(c *cfg) { c.scope = s } }

// WithAsync enables the reference-clock zone variant; refClocks[pid] is
// the reference clock of process pid.
func WithAsync(refClocks []int) Option {
	return func(c *cfg) {
		if len(refClocks) > 0 {
			c.async = true
			c.refClocks = refClocks
		}
	}
}

// WithSearchOrder selects BFS or DFS for reach/covreach.
func WithSearchOrder(o SearchOrder) Option { return func(c *cfg) { c.order = o } }

// WithCoveringPolicy selects covreach's subsumption relation.
func WithCoveringPolicy(p covreach.Policy) Option { return func(c *cfg) { c.covering = p } }

// WithLabels names the accepting-label predicate reach/covreach target
// or ndfs/couvreur search for; names not declared on the system resolve
// to an always-false predicate bit, never an error, since the system's
// label table is the sole source of truth (spec 6).
func WithLabels(names ...string) Option {
	return func(c *cfg) {
		if len(names) > 0 {
			c.labelNames = names
		}
	}
}

// WithBlockSize sets the allocation block size for every pool the TS
// owns. If size is non-positive, this option is a no-op.
func WithBlockSize(size int) Option {
	return func(c *cfg) {
		if size > 0 {
			c.blockSize = size
		}
	}
}

// WithTableSize records an initial hash-cons table size, which is passed
// to ts.New. ts.New does not use it: the hash-cons table always starts
// at its own fixed size. If size is non-positive, this option is a no-op.
func WithTableSize(size int) Option {
	return func(c *cfg) {
		if size > 0 {
			c.tableSize = size
		}
	}
}

// WithLogger attaches a logger threaded down into the chosen
// algorithm's Run call.
func WithLogger(log zerolog.Logger) Option { return func(c *cfg) { c.logger = log } }

// WithOnVisit registers fn to observe every node the chosen algorithm
// visits, for callers (such as the dot renderer) that need the full
// explored fragment rather than just the final Stats and witness.
func WithOnVisit(fn func(*explore.Node)) Option { return func(c *cfg) { c.onVisit = fn } }

func (c *cfg) labels(sys *system.System) *state.Labels {
	l := state.NewLabels(uint(len(sys.LabelNames)))
	for _, name := range c.labelNames {
		if i := sys.LabelIndex(name); i >= 0 {
			l.Set(uint(i))
		}
	}
	return l
}

func (c *cfg) policy() ts.Policy {
	return ts.Policy{
		Semantics:     c.semantics,
		Extrapolation: c.extrapolation,
		Scope:         c.scope,
		Async:         c.async,
		RefClocks:     c.refClocks,
	}
}

// Run builds a ts.TS over sys per the resolved options and dispatches to
// the selected algorithm, returning its Stats and witness Node exactly
// as that algorithm's own Run would.
func Run(sys *system.System, opts ...Option) (explore.Stats, *explore.Node) {
	c := newConfig(opts...)
	tsys := ts.New(sys, c.policy(), c.blockSize, c.tableSize)
	target := c.labels(sys)
	eopts := []explore.Option{explore.WithLogger(c.logger)}
	if c.onVisit != nil {
		eopts = append(eopts, explore.WithOnVisit(c.onVisit))
	}

	switch c.algorithm {
	case Covreach:
		var order covreach.SearchOrder
		if c.order == DFS {
			order = covreach.DFS
		}
		return covreach.Run(tsys, target, order, c.covering, eopts...)
	case NDFS:
		return ndfs.Run(tsys, target, eopts...)
	case Couvreur:
		return couvreur.Run(tsys, target, eopts...)
	default:
		var order reach.SearchOrder
		if c.order == DFS {
			order = reach.DFS
		}
		return reach.Run(tsys, target, order, eopts...)
	}
}
