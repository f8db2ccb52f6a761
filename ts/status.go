package ts

// Status is the full outcome taxonomy of spec 7. It is a value, not an
// error: the TS never panics or returns an error for these — only
// programming-error conditions (dimension mismatch, negative reset,
// allocator exhaustion) panic.
type Status int

const (
	Ok Status = iota
	IntvarsSrcInvariantViolated
	IntvarsGuardViolated
	IntvarsStatementFailed
	IntvarsTgtInvariantViolated
	ClocksSrcInvariantViolated
	ClocksGuardViolated
	ClocksTgtInvariantViolated
	ClocksResetFailed
	ClocksEmptySync
	IncompatibleEdge
)

// String renders the status for logging/diagnostics.
func (s Status) String() string {
	switch s {
	case Ok:
		return "Ok"
	case IntvarsSrcInvariantViolated:
		return "IntvarsSrcInvariantViolated"
	case IntvarsGuardViolated:
		return "IntvarsGuardViolated"
	case IntvarsStatementFailed:
		return "IntvarsStatementFailed"
	case IntvarsTgtInvariantViolated:
		return "IntvarsTgtInvariantViolated"
	case ClocksSrcInvariantViolated:
		return "ClocksSrcInvariantViolated"
	case ClocksGuardViolated:
		return "ClocksGuardViolated"
	case ClocksTgtInvariantViolated:
		return "ClocksTgtInvariantViolated"
	case ClocksResetFailed:
		return "ClocksResetFailed"
	case ClocksEmptySync:
		return "ClocksEmptySync"
	case IncompatibleEdge:
		return "IncompatibleEdge"
	default:
		return "Status(?)"
	}
}
