package dbm

// ClockID is a clock identifier in [0, dim). Identifier 0 is the reference
// clock, whose value is always zero; 1..dim-1 are automaton clocks.
type ClockID int

// Reset is a clock reset xTarget := xSource + Value (spec 3.1). The four
// normal forms are distinguished by (Source, Value):
//
//	Source == 0, Value == 0: reset-to-zero
//	Source == 0, Value  > 0: reset-to-constant
//	Source != 0, Value == 0: reset-to-clock
//	Source != 0, Value  > 0: reset-to-sum
//
// Target must never be the reference clock 0; Value must never be negative.
type Reset struct {
	Target ClockID
	Source ClockID
	Value  int32
}

// IsToConstant reports whether r is reset-to-zero or reset-to-constant.
func (r Reset) IsToConstant() bool { return r.Source == 0 }

// Constraint is a clock constraint xi - xj # c (spec 3.1). A constraint is
// diagonal iff both I and J are non-zero.
type Constraint struct {
	I, J  ClockID
	Bound Bound
}

// IsDiagonal reports whether the constraint involves two automaton clocks
// rather than the reference clock.
func (c Constraint) IsDiagonal() bool { return c.I != 0 && c.J != 0 }
