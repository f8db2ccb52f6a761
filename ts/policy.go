package ts

// Semantics selects when time elapse is applied, per spec 4.5 step 7.
type Semantics int

const (
	// Standard elapses in the source state, before evaluating guards.
	Standard Semantics = iota
	// Elapsed elapses eagerly in the target state, after applying resets.
	Elapsed
)

// ExtrapolationKind selects which of the four extrapolation operators
// (spec 4.1, 9's "tagged variant... one variant per policy") is applied
// after every Next/Initial. NoExtra performs no abstraction.
type ExtrapolationKind int

const (
	NoExtra ExtrapolationKind = iota
	ExtraM
	ExtraMPlus
	ExtraLU
	ExtraLUPlus
)

// Scope selects whether extrapolation bound maps are computed once for
// the whole system (Global) or recomputed per-vloc from only the
// currently reachable programs (Local).
type Scope int

const (
	Global Scope = iota
	Local
)

// Policy bundles the semantics and extrapolation choices the TS applies
// uniformly across Initial/Next/Prev.
type Policy struct {
	Semantics     Semantics
	Extrapolation ExtrapolationKind
	Scope         Scope
	// Async selects the reference-clock zone variant (spec 4.2.1). When
	// true, RefClocks must give each process's reference clock, and Next
	// constrains the reference clocks of all processes taking part in a
	// transition to be pairwise equal; Initial applies no such constraint.
	Async     bool
	RefClocks []int // RefClocks[pid] = reference clock id of process pid; unused unless Async
}
